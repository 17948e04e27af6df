package rabbit

import (
	"math/rand"

	"github.com/vovakirdan/rabbit-run/internal/config"
	"github.com/vovakirdan/rabbit-run/internal/core"
)

// Obstacle is a rock, mushroom or grass tuft scrolling toward the rabbit.
type Obstacle struct {
	Kind   Kind
	X      int // Left edge
	Y      int // Top edge, fixed at spawn
	Width  int
	Height int
	Radius int   // > 0 for circular kinds
	Shape  Shape // Collider descriptor resolved at spawn
	Passed bool  // Scrolled behind the rabbit and counted
}

// Goal is the carrot that ends the run with a win.
type Goal struct {
	X        float64
	Appeared bool
}

// Outcome is what an obstacle update decided about the run.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeLost
	OutcomeWon
)

// ObstacleSet spawns, moves, scores and prunes obstacles and owns the carrot.
type ObstacleSet struct {
	obstacles   []Obstacle
	goal        Goal
	cleared     int
	nextSpawnAt uint64
	rng         *rand.Rand
	kinds       [kindCount]kindInfo
	cfg         config.RabbitConfig
	goalEnabled bool
}

// NewObstacleSet creates an empty set whose first spawn is one interval
// after now.
func NewObstacleSet(seed int64, cfg config.RabbitConfig, goalEnabled bool, now uint64) *ObstacleSet {
	s := &ObstacleSet{
		obstacles:   make([]Obstacle, 0, 8),
		rng:         rand.New(rand.NewSource(seed)),
		goalEnabled: goalEnabled,
	}
	s.UpdateConfig(cfg)
	s.Init(now)
	return s
}

// UpdateConfig swaps the tuning used by future spawns and moves.
func (s *ObstacleSet) UpdateConfig(cfg config.RabbitConfig) {
	s.cfg = cfg
	s.kinds = kindTable(cfg.Obstacles)
}

// Init empties the set and schedules the first spawn.
func (s *ObstacleSet) Init(now uint64) {
	s.clear()
	s.nextSpawnAt = now + s.cfg.Obstacles.SpawnIntervalMs
}

// Reset empties the set and schedules the next spawn after the short
// restart grace period.
func (s *ObstacleSet) Reset(now uint64) {
	s.clear()
	s.nextSpawnAt = now + s.cfg.Obstacles.ResetGraceMs
}

func (s *ObstacleSet) clear() {
	s.obstacles = s.obstacles[:0]
	s.cleared = 0
	s.goal = Goal{X: float64(s.cfg.World.Width)}
}

// Update runs one frame: spawn, advance, score, prune, collide, then move
// and test the carrot. A frozen set does nothing.
func (s *ObstacleSet) Update(now uint64, player core.Rect, frozen bool) Outcome {
	if frozen {
		return OutcomeNone
	}

	if now >= s.nextSpawnAt {
		s.spawn()
		s.nextSpawnAt = now + s.cfg.Obstacles.SpawnIntervalMs
	}

	speed := s.cfg.Obstacles.Speed
	for i := range s.obstacles {
		o := &s.obstacles[i]
		o.X -= speed

		if !o.Passed && o.X+o.Width < s.cfg.Obstacles.PassThresholdX {
			o.Passed = true
			s.cleared++
			if s.goalEnabled && s.cleared >= s.cfg.Goal.ClearCount && !s.goal.Appeared {
				s.goal = Goal{X: float64(s.cfg.World.Width), Appeared: true}
			}
		}
	}

	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.X+o.Width >= 0 {
			kept = append(kept, o)
		}
	}
	s.obstacles = kept

	for _, o := range s.obstacles {
		if o.Hits(player) {
			return OutcomeLost
		}
	}

	if s.goal.Appeared {
		s.goal.X -= float64(speed)
		if player.Intersects(s.GoalCollider()) {
			return OutcomeWon
		}
	}
	return OutcomeNone
}

func (s *ObstacleSet) spawn() {
	kind := Kind(s.rng.Intn(int(kindCount)))
	info := s.kinds[kind]
	s.obstacles = append(s.obstacles, Obstacle{
		Kind:   kind,
		X:      s.cfg.World.Width,
		Y:      int(s.cfg.Physics.GroundY) + s.cfg.Obstacles.GroundOffset,
		Width:  info.width,
		Height: info.height,
		Radius: info.radius,
		Shape:  info.shape,
	})
}

// GoalCollider returns the carrot's collision rectangle.
func (s *ObstacleSet) GoalCollider() core.Rect {
	g := s.cfg.Goal
	return core.NewRect(
		int(s.goal.X)+g.OffsetX,
		int(s.cfg.Physics.GroundY)+g.OffsetY,
		g.Width,
		g.Height,
	)
}

// Obstacles returns the live obstacles in spawn order.
func (s *ObstacleSet) Obstacles() []Obstacle {
	return s.obstacles
}

// Goal returns the carrot state.
func (s *ObstacleSet) Goal() Goal {
	return s.goal
}

// Cleared returns how many obstacles were passed this run.
func (s *ObstacleSet) Cleared() int {
	return s.cleared
}

// NextSpawnAt returns the timestamp of the next spawn.
func (s *ObstacleSet) NextSpawnAt() uint64 {
	return s.nextSpawnAt
}
