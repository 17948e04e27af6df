package rabbit

import (
	"bytes"
	"io"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rabbit-run/internal/config"
	"github.com/vovakirdan/rabbit-run/internal/core"
	"github.com/vovakirdan/rabbit-run/internal/registry"
)

func variantByID(t *testing.T, id string) Variant {
	t.Helper()
	for _, v := range Variants {
		if v.ID == id {
			return v
		}
	}
	t.Fatalf("no variant %q", id)
	return Variant{}
}

func newTestGame(t *testing.T, id string, seed int64) *Game {
	t.Helper()
	g := New(variantByID(t, id))
	g.ApplyConfig(config.DefaultRabbitConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// runUntilEnded steps without input until the run ends and returns every
// event raised on the way.
func runUntilEnded(t *testing.T, g *Game) []core.Event {
	t.Helper()
	var events []core.Event
	for i := 0; i < 5000; i++ {
		res := g.Step(core.NewInputFrame())
		events = append(events, res.Events...)
		if res.State.Ended() {
			return events
		}
	}
	t.Fatal("run never ended")
	return nil
}

func count(events []core.Event, e core.Event) int {
	n := 0
	for _, got := range events {
		if got == e {
			n++
		}
	}
	return n
}

func TestGameDeterminism(t *testing.T) {
	run := func() *Game {
		g := newTestGame(t, "rabbit", 12345)
		for i := 0; i < 3000; i++ {
			in := core.NewInputFrame()
			if i%90 == 0 {
				in.Set(core.ActionJump)
			}
			if g.Step(in).State.Ended() {
				break
			}
		}
		return g
	}

	g1, g2 := run(), run()

	if g1.State() != g2.State() {
		t.Errorf("states differ: %+v vs %+v", g1.State(), g2.State())
	}
	if g1.Ticks() != g2.Ticks() {
		t.Errorf("ticks differ: %d vs %d", g1.Ticks(), g2.Ticks())
	}
	if !reflect.DeepEqual(g1.Obstacles().Obstacles(), g2.Obstacles().Obstacles()) {
		t.Error("obstacle sets differ")
	}
	if g1.Player().Y != g2.Player().Y {
		t.Errorf("rabbit y differs: %v vs %v", g1.Player().Y, g2.Player().Y)
	}
}

func TestStandingRabbitLoses(t *testing.T) {
	g := newTestGame(t, "rabbit", 7)

	events := runUntilEnded(t, g)

	st := g.State()
	if !st.GameOver || st.Won {
		t.Fatalf("expected a loss, got %+v", st)
	}
	if n := count(events, core.EventLose); n != 1 {
		t.Errorf("lose raised %d times, expected 1", n)
	}
	if n := count(events, core.EventMusicStart); n != 1 {
		t.Errorf("music start raised %d times, expected 1", n)
	}

	// The end state is frozen and silent.
	y := g.Player().Y
	for i := 0; i < 30; i++ {
		res := g.Step(input(core.ActionJump))
		if len(res.Events) != 0 {
			t.Fatalf("terminal frame raised %v", res.Events)
		}
	}
	if g.Player().Y != y || g.Player().Jumping {
		t.Error("rabbit moved after the run ended")
	}
}

func TestResetFromLost(t *testing.T) {
	g := newTestGame(t, "rabbit", 7)
	runUntilEnded(t, g)
	for i := 0; i < 20; i++ {
		g.Step(core.NewInputFrame())
	}

	res := g.Step(input(core.ActionRestart))

	if !slices.Equal(res.Events, []core.Event{core.EventReset}) {
		t.Errorf("restart events = %v, expected [reset]", res.Events)
	}
	if res.State.GameOver || res.State.Won {
		t.Errorf("state after restart = %+v", res.State)
	}
	if g.Player().Y != 380 || g.Player().VelocityY != 0 || g.Player().Jumping {
		t.Errorf("rabbit not reset: %+v", *g.Player())
	}
	if n := len(g.Obstacles().Obstacles()); n != 0 {
		t.Errorf("%d obstacles left after restart", n)
	}
	if g.Obstacles().Cleared() != 0 || g.Obstacles().Goal().Appeared {
		t.Error("cleared count or goal survived restart")
	}
	if g.Background().Offset != 0 {
		t.Errorf("background offset = %d, expected 0", g.Background().Offset)
	}
	if want := g.clock.NowMillis() + 1000; g.Obstacles().NextSpawnAt() != want {
		t.Errorf("next spawn at %d, expected %d", g.Obstacles().NextSpawnAt(), want)
	}

	// Music keeps playing across restarts.
	res = g.Step(core.NewInputFrame())
	if count(res.Events, core.EventMusicStart) != 0 {
		t.Error("music restarted after reset")
	}
}

func TestClassicHasNoRestart(t *testing.T) {
	g := newTestGame(t, "rabbit-classic", 7)
	runUntilEnded(t, g)

	res := g.Step(input(core.ActionRestart))

	if !res.State.GameOver {
		t.Error("classic variant left the end screen")
	}
	if count(res.Events, core.EventReset) != 0 {
		t.Error("classic variant raised a reset event")
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := newTestGame(t, "rabbit", 7)
	g.Step(core.NewInputFrame())
	g.Step(input(core.ActionJump))

	res := g.Step(input(core.ActionRestart))

	if count(res.Events, core.EventReset) != 0 {
		t.Error("restart accepted during play")
	}
	if !g.Player().Jumping {
		t.Error("restart during play reset the rabbit")
	}
}

func TestWinRaisesEventOnce(t *testing.T) {
	g := newTestGame(t, "rabbit", 1)
	g.obstacles.goal = Goal{X: 104, Appeared: true}

	res := g.Step(core.NewInputFrame())
	if !res.State.Won || res.State.GameOver {
		t.Fatalf("expected a win, got %+v", res.State)
	}
	if !slices.Equal(res.Events, []core.Event{core.EventMusicStart, core.EventWin}) {
		t.Errorf("events = %v, expected [music_start win]", res.Events)
	}

	for i := 0; i < 10; i++ {
		if res := g.Step(core.NewInputFrame()); len(res.Events) != 0 {
			t.Fatalf("won frame raised %v", res.Events)
		}
	}
}

func TestPhysicsVariantHasNoObstacles(t *testing.T) {
	g := newTestGame(t, "rabbit-physics", 3)

	for i := 0; i < 2000; i++ {
		in := core.NewInputFrame()
		if i%100 == 0 {
			in.Set(core.ActionJump)
		}
		res := g.Step(in)
		if res.State.Ended() {
			t.Fatalf("physics demo ended at tick %d", i)
		}
		if len(res.Events) != 0 {
			t.Fatalf("silent variant raised %v", res.Events)
		}
		if y := g.Player().Y; y < 240 || y > 380 {
			t.Fatalf("tick %d: y=%v out of bounds", i, y)
		}
	}
	if n := len(g.Obstacles().Obstacles()); n != 0 {
		t.Errorf("physics demo spawned %d obstacles", n)
	}
}

func TestBirdsVariant(t *testing.T) {
	g := newTestGame(t, "rabbit-birds", 3)
	if n := len(g.Birds()); n != 5 {
		t.Fatalf("flock size = %d, expected 5", n)
	}
	x := g.Birds()[0].X

	g.Step(core.NewInputFrame())

	if got := g.Birds()[0].X; got != x-1 {
		t.Errorf("bird x = %d, expected %d", got, x-1)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, "rabbit", 1)
	g.Step(core.NewInputFrame())
	now := g.clock.NowMillis()

	res := g.Step(input(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("pause not applied")
	}
	g.Step(input(core.ActionJump))
	if g.Player().Jumping {
		t.Error("rabbit jumped while paused")
	}
	if g.clock.NowMillis() != now {
		t.Error("frame clock advanced while paused")
	}

	if res := g.Step(input(core.ActionPause)); res.State.Paused {
		t.Error("second pause did not resume")
	}
}

func TestInjectedClockDrivesSpawns(t *testing.T) {
	clock := &core.ManualClock{}
	g := New(variantByID(t, "rabbit"))
	g.ApplyConfig(config.DefaultRabbitConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1, Clock: clock})

	for i := 0; i < 500; i++ {
		g.Step(core.NewInputFrame())
	}
	if n := len(g.Obstacles().Obstacles()); n != 0 {
		t.Fatalf("spawned %d obstacles without the clock moving", n)
	}

	clock.Set(4000)
	g.Step(core.NewInputFrame())
	if n := len(g.Obstacles().Obstacles()); n != 1 {
		t.Errorf("expected a spawn at 4000ms, got %d obstacles", n)
	}
}

func TestApplyConfigWaitsForRestart(t *testing.T) {
	g := newTestGame(t, "rabbit", 7)
	runUntilEnded(t, g)

	cfg := config.DefaultRabbitConfig()
	cfg.Obstacles.Speed = 8
	g.ApplyConfig(cfg)
	if g.Config().Obstacles.Speed != 4 {
		t.Error("new tuning applied mid-run")
	}

	g.Step(input(core.ActionRestart))
	if g.Config().Obstacles.Speed != 8 {
		t.Errorf("speed after restart = %d, expected 8", g.Config().Obstacles.Speed)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, "rabbit", 7)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	if !strings.ContainsRune(out, '█') {
		t.Error("rabbit not drawn")
	}
	if !strings.Contains(out, "Cleared: 0/30") {
		t.Error("HUD missing")
	}

	runUntilEnded(t, g)
	g.Render(screen)
	out = screen.String()
	if !strings.Contains(out, "YOU LOST!") || !strings.Contains(out, "Press R to restart") {
		t.Errorf("end overlay missing:\n%s", out)
	}
}

func TestVariantsRegistered(t *testing.T) {
	for _, v := range Variants {
		if !registry.Exists(v.ID) {
			t.Errorf("variant %q not registered", v.ID)
		}
	}

	g, err := registry.Create("rabbit-physics")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "rabbit-physics" || g.Title() == "" {
		t.Errorf("created %q / %q", g.ID(), g.Title())
	}
}

func TestUnusableTuningFallsBackLoudly(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(log.New(&buf))
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	t.Cleanup(func() {
		SetConfigPath("")
		SetLogger(log.New(io.Discard))
	})

	g := New(variantByID(t, "rabbit"))
	g.Reset(core.DefaultConfig())

	if !reflect.DeepEqual(g.Config(), config.DefaultRabbitConfig()) {
		t.Error("expected default tuning")
	}
	if !strings.Contains(buf.String(), "using defaults") {
		t.Errorf("fallback not logged, log = %q", buf.String())
	}
}
