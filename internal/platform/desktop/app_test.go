package desktop

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/rabbit-run/internal/config"
	"github.com/vovakirdan/rabbit-run/internal/core"
	"github.com/vovakirdan/rabbit-run/internal/games/rabbit"
	"github.com/vovakirdan/rabbit-run/internal/storage"
)

// stubGame loses after endAt steps.
type stubGame struct {
	seed    int64
	endAt   int
	score   int
	steps   int
	resets  int
	state   core.GameState
	cfg     config.RabbitConfig
	applied int
}

func (g *stubGame) ID() string                  { return "stub" }
func (g *stubGame) Title() string               { return "Stub" }
func (g *stubGame) Reset(c core.RuntimeConfig)  { g.resets++; g.seed = c.Seed; g.steps = 0; g.state = core.GameState{} }
func (g *stubGame) Draw(core.Canvas)            {}
func (g *stubGame) Render(*core.Screen)         {}
func (g *stubGame) State() core.GameState       { return g.state }
func (g *stubGame) Config() config.RabbitConfig { return g.cfg }

func (g *stubGame) ApplyConfig(cfg config.RabbitConfig) {
	g.cfg = cfg
	g.applied++
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	if g.state.Ended() {
		return core.StepResult{State: g.state}
	}
	g.steps++
	g.state.Score = g.score
	g.state.Paused = in.Has(core.ActionPause)
	if g.steps == g.endAt {
		g.state.GameOver = true
		return core.StepResult{State: g.state, Events: []core.Event{core.EventLose}}
	}
	return core.StepResult{State: g.state}
}

type countingAudio struct{ once, loops int }

func (a *countingAudio) PlayOnce(core.Sound) { a.once++ }
func (a *countingAudio) PlayLoop(core.Sound) { a.loops++ }

func newStub() *stubGame {
	g := &stubGame{endAt: 3, score: 2}
	g.cfg = config.DefaultRabbitConfig()
	g.cfg.World.Width = 640
	g.cfg.World.Height = 480
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestNewAppResetsAndSizesWorld(t *testing.T) {
	g := newStub()
	app := NewApp(g, core.DefaultConfig(), Options{Audio: &countingAudio{}})

	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
	if w, h := app.Layout(1920, 1080); w != 640 || h != 480 {
		t.Errorf("Layout() = %dx%d, want 640x480", w, h)
	}
}

func TestNewAppSizesWorldFromLoadedTuning(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	g := rabbit.New(rabbit.Variants[0])
	app := NewApp(g, core.DefaultConfig(), Options{Audio: core.NopAudio{}})

	want := config.DefaultRabbitConfig().World
	if w, h := app.Layout(1920, 1080); w != want.Width || h != want.Height {
		t.Errorf("Layout() = %dx%d, want %dx%d", w, h, want.Width, want.Height)
	}
}

func TestNewAppSeed(t *testing.T) {
	tests := []struct {
		name   string
		seed   int64
		random bool
	}{
		{"pinned", 42, false},
		{"zero picks one", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newStub()
			cfg := core.DefaultConfig()
			cfg.Seed = tt.seed
			NewApp(g, cfg, Options{Audio: core.NopAudio{}})

			if tt.random && g.seed == 0 {
				t.Error("seed 0 reached the game")
			}
			if !tt.random && g.seed != tt.seed {
				t.Errorf("seed = %d, want %d", g.seed, tt.seed)
			}
		})
	}
}

func TestAppStepRecordsAndPlays(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	audio := &countingAudio{}
	app := NewApp(newStub(), core.DefaultConfig(), Options{Store: store, Audio: audio})

	for i := 0; i < 5; i++ {
		if err := app.step(frame()); err != nil {
			t.Fatalf("step() error = %v", err)
		}
	}
	if !app.State().GameOver {
		t.Fatal("expected a lost run")
	}
	if audio.once != 1 {
		t.Errorf("one-shot sounds = %d, want 1", audio.once)
	}

	runs, err := store.TopRuns("stub", 10)
	if err != nil {
		t.Fatalf("TopRuns() error = %v", err)
	}
	if len(runs) != 1 || runs[0].Outcome != storage.OutcomeLost {
		t.Errorf("runs = %+v", runs)
	}
}

func TestAppLeaving(t *testing.T) {
	tests := []struct {
		name   string
		before []core.InputFrame
		press  core.InputFrame
		leaves bool
	}{
		{"quit while playing", nil, frame(core.ActionQuit), true},
		{"back while playing", nil, frame(core.ActionBack), false},
		{"back while paused", []core.InputFrame{frame(core.ActionPause)}, frame(core.ActionBack), true},
		{"back after losing", []core.InputFrame{frame(), frame(), frame()}, frame(core.ActionBack), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := NewApp(newStub(), core.DefaultConfig(), Options{Audio: core.NopAudio{}})
			for _, f := range tt.before {
				if err := app.step(f); err != nil {
					t.Fatalf("step() error = %v", err)
				}
			}
			err := app.step(tt.press)
			if got := errors.Is(err, ebiten.Termination); got != tt.leaves {
				t.Errorf("terminated = %v, want %v (err %v)", got, tt.leaves, err)
			}
		})
	}
}

func TestAppDrainsReloads(t *testing.T) {
	reloads := make(chan config.Reload, 3)
	g := newStub()
	app := NewApp(g, core.DefaultConfig(), Options{Audio: core.NopAudio{}, Reloads: reloads})

	good := config.DefaultRabbitConfig()
	good.Obstacles.Speed = 9
	reloads <- config.Reload{Path: "a.yaml", Config: good}
	reloads <- config.Reload{Path: "a.yaml", Err: errors.New("broken")}
	close(reloads)

	app.drainReloads()
	app.drainReloads()

	if g.applied != 1 || g.cfg.Obstacles.Speed != 9 {
		t.Errorf("applied = %d, speed = %d", g.applied, g.cfg.Obstacles.Speed)
	}
}
