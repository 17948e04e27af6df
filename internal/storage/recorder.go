package storage

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rabbit-run/internal/core"
)

// Recorder follows the step results of one game and saves each run once,
// when it is won, lost, or abandoned with progress. A nil store only logs.
type Recorder struct {
	store   *Store
	variant string
	logger  *log.Logger
	state   core.GameState
	ticks   int
	saved   bool
}

// NewRecorder creates a recorder for the given variant.
func NewRecorder(store *Store, variant string, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{store: store, variant: variant, logger: logger}
}

// Observe consumes the result of one Step.
func (r *Recorder) Observe(res core.StepResult) {
	wasEnded := r.state.Ended()
	for _, e := range res.Events {
		if e == core.EventReset {
			r.logger.Info("game reset complete")
			r.ticks = 0
			r.saved = false
			wasEnded = false
		}
	}

	r.state = res.State
	if !r.state.Ended() && !r.state.Paused {
		r.ticks++
	}
	if r.state.Ended() && !wasEnded {
		outcome := OutcomeLost
		if r.state.Won {
			outcome = OutcomeWon
		}
		r.save(outcome)
	}
}

// Quit records an unfinished run that got far enough to matter.
func (r *Recorder) Quit() {
	if r.state.Ended() || r.state.Score == 0 {
		return
	}
	r.save(OutcomeQuit)
}

// State returns the last observed game state.
func (r *Recorder) State() core.GameState {
	return r.state
}

// Ticks returns the frames played in the current run.
func (r *Recorder) Ticks() int {
	return r.ticks
}

func (r *Recorder) save(outcome Outcome) {
	if r.saved {
		return
	}
	r.saved = true
	r.logger.Info("run finished", "outcome", outcome, "cleared", r.state.Score, "ticks", r.ticks)

	if r.store == nil {
		return
	}
	_, err := r.store.SaveRun(Run{
		Variant: r.variant,
		Outcome: outcome,
		Cleared: r.state.Score,
		Ticks:   r.ticks,
	})
	if err != nil {
		r.logger.Warn("could not save run", "error", err)
	}
}
