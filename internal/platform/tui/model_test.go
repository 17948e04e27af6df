package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rabbit-run/internal/config"
	"github.com/vovakirdan/rabbit-run/internal/core"
	"github.com/vovakirdan/rabbit-run/internal/storage"
)

// scriptedGame ends after a fixed number of steps.
type scriptedGame struct {
	endAt   int
	won     bool
	score   int
	steps   int
	state   core.GameState
	applied []config.RabbitConfig
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.steps = 0
	g.state = core.GameState{}
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	if g.state.Ended() {
		if in.Has(core.ActionRestart) {
			g.Reset(core.RuntimeConfig{})
			return core.StepResult{State: g.state, Events: []core.Event{core.EventReset}}
		}
		return core.StepResult{State: g.state}
	}

	g.steps++
	g.state.Score = g.score
	var events []core.Event
	if g.steps == g.endAt {
		if g.won {
			g.state.Won = true
			events = append(events, core.EventWin)
		} else {
			g.state.GameOver = true
			events = append(events, core.EventLose)
		}
	}
	return core.StepResult{State: g.state, Events: events}
}

func (g *scriptedGame) Draw(core.Canvas) {}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState { return g.state }

func (g *scriptedGame) ApplyConfig(cfg config.RabbitConfig) {
	g.applied = append(g.applied, cfg)
}

type recordingAudio struct {
	once  []core.Sound
	loops []core.Sound
}

func (a *recordingAudio) PlayOnce(s core.Sound) { a.once = append(a.once, s) }
func (a *recordingAudio) PlayLoop(s core.Sound) { a.loops = append(a.loops, s) }

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}
}

func send(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func tick(t *testing.T, m GameModel, n int) GameModel {
	t.Helper()
	for i := 0; i < n; i++ {
		m = send(t, m, TickMsg{})
	}
	return m
}

func TestGameModelSavesRunOnce(t *testing.T) {
	store := openStore(t)
	game := &scriptedGame{endAt: 3, score: 4}
	m := NewGameModel(game, testConfig(), GameOptions{Store: store})
	m.Init()

	m = tick(t, m, 10)
	if !m.State().GameOver {
		t.Fatal("expected the run to be lost")
	}

	runs, err := store.TopRuns("scripted", 10)
	if err != nil {
		t.Fatalf("TopRuns() error = %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, want 1", len(runs))
	}
	if runs[0].Outcome != storage.OutcomeLost || runs[0].Cleared != 4 || runs[0].Ticks != 2 {
		t.Errorf("run = %+v", runs[0])
	}
}

func TestGameModelRestartStartsNewRun(t *testing.T) {
	store := openStore(t)
	game := &scriptedGame{endAt: 2, won: true, score: 30}
	m := NewGameModel(game, testConfig(), GameOptions{Store: store})
	m.Init()

	m = tick(t, m, 3)
	m = send(t, m, runeKey("r"))
	m = tick(t, m, 4)

	runs, err := store.TopRuns("scripted", 10)
	if err != nil {
		t.Fatalf("TopRuns() error = %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("saved %d runs, want 2", len(runs))
	}
	for _, r := range runs {
		if r.Outcome != storage.OutcomeWon {
			t.Errorf("outcome = %v, want won", r.Outcome)
		}
	}
}

func TestGameModelQuitRecordsProgress(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  int
	}{
		{"with progress", 3, 1},
		{"nothing cleared", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := openStore(t)
			game := &scriptedGame{endAt: 100, score: tt.score}
			m := NewGameModel(game, testConfig(), GameOptions{Store: store})
			m.Init()

			m = tick(t, m, 5)
			m = send(t, m, runeKey("q"))
			if !m.IsQuitting() {
				t.Fatal("expected quitting")
			}

			runs, err := store.TopRuns("scripted", 10)
			if err != nil {
				t.Fatalf("TopRuns() error = %v", err)
			}
			if len(runs) != tt.want {
				t.Fatalf("saved %d runs, want %d", len(runs), tt.want)
			}
			if tt.want == 1 && runs[0].Outcome != storage.OutcomeQuit {
				t.Errorf("outcome = %v, want quit", runs[0].Outcome)
			}
		})
	}
}

func TestGameModelBackToMenu(t *testing.T) {
	game := &scriptedGame{endAt: 2}

	standalone := NewGameModel(game, testConfig(), GameOptions{})
	standalone.Init()
	standalone = tick(t, standalone, 3)
	standalone = send(t, standalone, runeKey("b"))
	if standalone.BackToMenu() {
		t.Error("standalone model should ignore back")
	}

	game = &scriptedGame{endAt: 2}
	embedded := NewGameModel(game, testConfig(), GameOptions{Embedded: true})
	embedded.Init()
	embedded = send(t, embedded, runeKey("b"))
	if embedded.BackToMenu() {
		t.Error("back must wait until the run is over")
	}
	embedded = tick(t, embedded, 3)
	embedded = send(t, embedded, runeKey("b"))
	if !embedded.BackToMenu() {
		t.Error("back should leave an ended run")
	}
	if embedded.View() != "" {
		t.Error("view should be empty after leaving")
	}
}

func TestGameModelPlaysEvents(t *testing.T) {
	audio := &recordingAudio{}
	game := &scriptedGame{endAt: 2}
	m := NewGameModel(game, testConfig(), GameOptions{Audio: audio})
	m.Init()
	tick(t, m, 5)

	if len(audio.once) != 1 || audio.once[0] != core.SoundLose {
		t.Errorf("one-shots = %v, want [lose]", audio.once)
	}
	if len(audio.loops) != 0 {
		t.Errorf("loops = %v, want none", audio.loops)
	}
}

func TestGameModelReload(t *testing.T) {
	game := &scriptedGame{endAt: 100}
	m := NewGameModel(game, testConfig(), GameOptions{})
	m.Init()

	cfg := config.DefaultRabbitConfig()
	cfg.Obstacles.Speed = 7
	m = send(t, m, ReloadMsg(config.Reload{Path: "rabbit.yaml", Config: cfg}))
	m = send(t, m, ReloadMsg(config.Reload{Path: "rabbit.yaml", Err: errors.New("bad yaml")}))

	if len(game.applied) != 1 {
		t.Fatalf("applied %d configs, want 1", len(game.applied))
	}
	if game.applied[0].Obstacles.Speed != 7 {
		t.Errorf("speed = %v, want 7", game.applied[0].Obstacles.Speed)
	}
}

func TestGameModelView(t *testing.T) {
	m := NewGameModel(&scriptedGame{endAt: 100}, testConfig(), GameOptions{})
	m.Init()

	view := m.View()
	if !strings.Contains(view, "scripted") {
		t.Error("view should contain the rendered game")
	}
	if !strings.Contains(view, "jump") {
		t.Error("view should contain the help bar")
	}
}
