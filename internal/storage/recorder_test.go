package storage

import (
	"testing"

	"github.com/vovakirdan/rabbit-run/internal/core"
)

func playing(score int) core.StepResult {
	return core.StepResult{State: core.GameState{Score: score}}
}

func TestRecorderSavesOnEnd(t *testing.T) {
	tests := []struct {
		name    string
		final   core.GameState
		event   core.Event
		outcome Outcome
	}{
		{"lost", core.GameState{Score: 3, GameOver: true}, core.EventLose, OutcomeLost},
		{"won", core.GameState{Score: 30, Won: true}, core.EventWin, OutcomeWon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := openTestStore(t)
			r := NewRecorder(store, "rabbit", nil)

			r.Observe(playing(1))
			r.Observe(playing(2))
			end := core.StepResult{State: tt.final, Events: []core.Event{tt.event}}
			r.Observe(end)
			r.Observe(core.StepResult{State: tt.final})

			runs, err := store.TopRuns("rabbit", 10)
			if err != nil {
				t.Fatalf("TopRuns() failed: %v", err)
			}
			if len(runs) != 1 {
				t.Fatalf("got %d runs, want 1", len(runs))
			}
			got := runs[0]
			if got.Outcome != tt.outcome || got.Cleared != tt.final.Score || got.Ticks != 2 {
				t.Errorf("run = %+v", got)
			}
		})
	}
}

func TestRecorderPausedFramesNotCounted(t *testing.T) {
	r := NewRecorder(nil, "rabbit", nil)
	r.Observe(playing(0))
	r.Observe(core.StepResult{State: core.GameState{Paused: true}})
	r.Observe(core.StepResult{State: core.GameState{Paused: true}})
	r.Observe(playing(0))

	if r.Ticks() != 2 {
		t.Errorf("Ticks() = %d, want 2", r.Ticks())
	}
}

func TestRecorderResetStartsNewRun(t *testing.T) {
	store := openTestStore(t)
	r := NewRecorder(store, "rabbit", nil)

	lost := core.GameState{Score: 1, GameOver: true}
	r.Observe(playing(1))
	r.Observe(core.StepResult{State: lost, Events: []core.Event{core.EventLose}})
	r.Observe(core.StepResult{State: core.GameState{}, Events: []core.Event{core.EventReset}})
	if r.Ticks() != 1 {
		t.Errorf("Ticks() after reset = %d, want 1", r.Ticks())
	}
	r.Observe(core.StepResult{State: lost, Events: []core.Event{core.EventLose}})

	runs, err := store.TopRuns("rabbit", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("got %d runs, want 2", len(runs))
	}
}

func TestRecorderQuit(t *testing.T) {
	tests := []struct {
		name  string
		last  core.StepResult
		saved bool
	}{
		{"progress", playing(4), true},
		{"nothing cleared", playing(0), false},
		{"already ended", core.StepResult{State: core.GameState{Score: 4, GameOver: true}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := openTestStore(t)
			r := NewRecorder(store, "rabbit", nil)
			r.Observe(tt.last)
			runsBefore, _ := store.TopRuns("rabbit", 10)
			r.Quit()
			r.Quit()

			runs, err := store.TopRuns("rabbit", 10)
			if err != nil {
				t.Fatalf("TopRuns() failed: %v", err)
			}
			added := len(runs) - len(runsBefore)
			if (added == 1) != tt.saved || added > 1 {
				t.Fatalf("Quit() added %d runs, saved=%v", added, tt.saved)
			}
			if tt.saved && runs[0].Outcome != OutcomeQuit {
				t.Errorf("outcome = %v, want quit", runs[0].Outcome)
			}
		})
	}
}
