package rabbit

import (
	"testing"

	"github.com/vovakirdan/rabbit-run/internal/config"
	"github.com/vovakirdan/rabbit-run/internal/core"
)

// farAway is a player collider no obstacle or carrot can reach.
var farAway = core.NewRect(245, -1000, 130, 80)

// onGround is the default rabbit collider while standing.
var onGround = core.NewRect(245, 425, 130, 80)

// place appends an obstacle of kind k at x, built from the set's kind table.
func place(s *ObstacleSet, k Kind, x int) {
	info := s.kinds[k]
	s.obstacles = append(s.obstacles, Obstacle{
		Kind:   k,
		X:      x,
		Y:      430,
		Width:  info.width,
		Height: info.height,
		Radius: info.radius,
		Shape:  info.shape,
	})
}

func newTestSet() *ObstacleSet {
	return NewObstacleSet(1, config.DefaultRabbitConfig(), true, 0)
}

func TestSpawnInterval(t *testing.T) {
	s := newTestSet()

	s.Update(3999, farAway, false)
	if n := len(s.Obstacles()); n != 0 {
		t.Fatalf("spawned %d obstacles before the interval elapsed", n)
	}

	s.Update(4000, farAway, false)
	if n := len(s.Obstacles()); n != 1 {
		t.Fatalf("expected 1 obstacle at 4000ms, got %d", n)
	}

	s.Update(7999, farAway, false)
	if n := len(s.Obstacles()); n != 1 {
		t.Fatalf("expected no second spawn before 8000ms, got %d", n)
	}

	s.Update(8000, farAway, false)
	if n := len(s.Obstacles()); n != 2 {
		t.Fatalf("expected 2 obstacles at 8000ms, got %d", n)
	}
}

func TestSpawnIntervalAtFrameRate(t *testing.T) {
	s := newTestSet()
	const frame = 16

	var spawns []uint64
	prev := 0
	for now := uint64(0); now < 20000; now += frame {
		s.Update(now, farAway, false)
		if n := s.spawnedSoFar(); n > prev {
			spawns = append(spawns, now)
			prev = n
		}
	}

	if len(spawns) == 0 {
		t.Fatal("nothing spawned")
	}
	if spawns[0] < 4000 || spawns[0] >= 4000+frame {
		t.Errorf("first spawn at %dms, expected within one frame of 4000", spawns[0])
	}
	for i := 1; i < len(spawns); i++ {
		gap := spawns[i] - spawns[i-1]
		if gap < 4000 || gap >= 4000+frame {
			t.Errorf("spawn gap %dms, expected 4000ms within one frame", gap)
		}
	}
}

// spawnedSoFar counts live obstacles plus those already cleared and pruned.
// Over 20s at default speed nothing is pruned before it is counted.
func (s *ObstacleSet) spawnedSoFar() int {
	n := s.cleared
	for _, o := range s.obstacles {
		if !o.Passed {
			n++
		}
	}
	return n
}

func TestSpawnPlacement(t *testing.T) {
	s := newTestSet()
	s.Init(0)

	for i := 0; i < 30; i++ {
		s.spawn()
	}
	seen := map[Kind]bool{}
	for _, o := range s.Obstacles() {
		seen[o.Kind] = true
		if o.X != 800 || o.Y != 430 {
			t.Errorf("%s spawned at (%d, %d), expected (800, 430)", o.Kind, o.X, o.Y)
		}
		switch o.Kind {
		case KindRock, KindGrass:
			if o.Width != 140 || o.Height != 140 || o.Radius != 70 || o.Shape.Type != ShapeCircle {
				t.Errorf("%s has wrong shape: %+v", o.Kind, o)
			}
		case KindMushroom:
			if o.Width != 120 || o.Height != 120 || o.Radius != 0 || o.Shape.Type != ShapeRect {
				t.Errorf("mushroom has wrong shape: %+v", o)
			}
		}
	}
	if len(seen) != 3 {
		t.Errorf("expected all three kinds in 30 spawns, saw %v", seen)
	}
}

func TestObstacleMovesAndPrunes(t *testing.T) {
	s := newTestSet()

	s.Update(4000, farAway, false)
	if len(s.Obstacles()) != 1 {
		t.Fatal("expected one spawned obstacle")
	}
	w := s.Obstacles()[0].Width

	for k := 1; k <= 240; k++ {
		if k > 1 {
			s.Update(4000+uint64(k)*16, farAway, false)
		}
		want := 800 - 4*k
		if want+w < 0 {
			if n := len(s.Obstacles()); n != 0 {
				t.Fatalf("tick %d: obstacle at x=%d should be pruned", k, want)
			}
			return
		}
		if n := len(s.Obstacles()); n != 1 {
			t.Fatalf("tick %d: expected 1 obstacle, got %d", k, n)
		}
		if got := s.Obstacles()[0].X; got != want {
			t.Fatalf("tick %d: x=%d, expected %d", k, got, want)
		}
	}
	t.Fatal("obstacle was never pruned")
}

func TestPruneKeepsInsertionOrder(t *testing.T) {
	s := newTestSet()
	place(s, KindRock, -150)
	place(s, KindMushroom, 500)
	place(s, KindGrass, -200)
	place(s, KindGrass, 700)

	s.Update(1, farAway, false)

	obs := s.Obstacles()
	if len(obs) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(obs))
	}
	if obs[0].Kind != KindMushroom || obs[1].Kind != KindGrass {
		t.Errorf("survivors out of order: %s, %s", obs[0].Kind, obs[1].Kind)
	}
}

func TestScoringCountsEachObstacleOnce(t *testing.T) {
	s := newTestSet()
	place(s, KindMushroom, -20) // right edge 100, crosses the threshold after one move

	s.Update(1, farAway, false)
	if s.Cleared() != 1 || !s.Obstacles()[0].Passed {
		t.Fatalf("cleared=%d, expected 1", s.Cleared())
	}
	s.Update(2, farAway, false)
	if s.Cleared() != 1 {
		t.Errorf("obstacle counted twice: cleared=%d", s.Cleared())
	}
}

func TestGoalAppearsExactlyOnce(t *testing.T) {
	s := newTestSet()

	appearances := 0
	wasAppeared := false
	lastX := 0.0
	for now := uint64(0); s.Cleared() < 35; now += 16 {
		if now > 300000 {
			t.Fatal("did not clear 35 obstacles in time")
		}
		s.Update(now, farAway, false)

		g := s.Goal()
		if g.Appeared && !wasAppeared {
			appearances++
			if s.Cleared() != 30 {
				t.Errorf("goal appeared at %d clears, expected 30", s.Cleared())
			}
			if g.X != 796 {
				t.Errorf("goal starts at x=%v, expected 796 after its first move", g.X)
			}
		} else if g.Appeared && g.X != lastX-4 {
			t.Fatalf("goal x jumped from %v to %v", lastX, g.X)
		}
		if !g.Appeared && s.Cleared() >= 30 {
			t.Fatal("goal missing after 30 clears")
		}
		wasAppeared = g.Appeared
		lastX = g.X
	}

	if appearances != 1 {
		t.Errorf("goal appeared %d times, expected 1", appearances)
	}
}

func TestGoalDisabled(t *testing.T) {
	s := NewObstacleSet(1, config.DefaultRabbitConfig(), false, 0)
	for i := 0; i < 40; i++ {
		place(s, KindRock, -45)
	}
	s.Update(1, farAway, false)

	if s.Cleared() != 40 {
		t.Fatalf("cleared=%d, expected 40", s.Cleared())
	}
	if s.Goal().Appeared {
		t.Error("goal appeared with the goal feature off")
	}
}

func TestCollisionLoses(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		x    int // position after the update's move
		lost bool
	}{
		{"rock overlapping", KindRock, 340, true},
		{"rock box overlaps but circle misses", KindRock, 345, false},
		{"grass overlapping", KindGrass, 300, true},
		{"mushroom inset overlaps", KindMushroom, 359, true},
		{"mushroom inset touches", KindMushroom, 360, false},
		{"mushroom box overlaps but inset misses", KindMushroom, 370, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSet()
			place(s, tc.kind, tc.x+4)

			got := s.Update(1, onGround, false)
			if (got == OutcomeLost) != tc.lost {
				t.Errorf("outcome = %v, lost expected %v", got, tc.lost)
			}
		})
	}
}

func TestGoalWins(t *testing.T) {
	s := newTestSet()
	s.goal = Goal{X: 104, Appeared: true}

	if got := s.Update(1, onGround, false); got != OutcomeWon {
		t.Errorf("outcome = %v, expected OutcomeWon", got)
	}
	if s.Goal().X != 100 {
		t.Errorf("goal x = %v, expected 100", s.Goal().X)
	}
}

func TestLoseTakesPrecedenceOverWin(t *testing.T) {
	s := newTestSet()
	s.goal = Goal{X: 104, Appeared: true}
	place(s, KindRock, 300)

	if got := s.Update(1, onGround, false); got != OutcomeLost {
		t.Errorf("outcome = %v, expected OutcomeLost", got)
	}
}

func TestFrozenUpdateIsNoop(t *testing.T) {
	s := newTestSet()
	place(s, KindRock, 500)

	if got := s.Update(100000, onGround, true); got != OutcomeNone {
		t.Errorf("frozen outcome = %v", got)
	}
	if len(s.Obstacles()) != 1 || s.Obstacles()[0].X != 500 {
		t.Error("frozen update changed obstacles")
	}
}

func TestObstacleSetReset(t *testing.T) {
	s := newTestSet()
	place(s, KindGrass, 300)
	s.cleared = 31
	s.goal = Goal{X: 12, Appeared: true}

	s.Reset(10000)

	if len(s.Obstacles()) != 0 || s.Cleared() != 0 {
		t.Errorf("reset left %d obstacles, %d cleared", len(s.Obstacles()), s.Cleared())
	}
	if g := s.Goal(); g.Appeared || g.X != 800 {
		t.Errorf("reset goal = %+v", g)
	}
	if s.NextSpawnAt() != 11000 {
		t.Errorf("next spawn at %d, expected 11000", s.NextSpawnAt())
	}
}

func TestStoredRadiusDrivesCollider(t *testing.T) {
	cfg := config.DefaultRabbitConfig()
	cfg.Obstacles.Grass.Radius = 50
	s := NewObstacleSet(1, cfg, true, 0)
	place(s, KindGrass, 400)

	o := s.Obstacles()[0]
	if o.Radius != 50 || o.Shape.Radius != 50 {
		t.Fatalf("grass radius = %d/%d, expected 50", o.Radius, o.Shape.Radius)
	}
	if c := o.Circle(); c != (core.Circle{X: 450, Y: 480, R: 50}) {
		t.Errorf("Circle() = %+v", c)
	}
}
