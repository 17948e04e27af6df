package tui

import (
	"io"
	"sync"

	"github.com/vovakirdan/rabbit-run/internal/core"
)

// BellAudio rings the terminal bell for win and lose stingers.
// Terminals cannot loop music, so PlayLoop is silent.
type BellAudio struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBellAudio rings the bell on w.
func NewBellAudio(w io.Writer) *BellAudio {
	return &BellAudio{w: w}
}

// PlayOnce implements core.Audio.
func (a *BellAudio) PlayOnce(s core.Sound) {
	if a == nil || a.w == nil || s == core.SoundNone {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	//nolint:errcheck // A missed bell is not worth reporting
	io.WriteString(a.w, "\a")
}

// PlayLoop implements core.Audio.
func (a *BellAudio) PlayLoop(core.Sound) {}
