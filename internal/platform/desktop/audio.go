package desktop

import (
	"bytes"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/rabbit-run/internal/core"
)

// SynthAudio plays generated jingles and a looping tune through Ebitengine.
type SynthAudio struct {
	mu     sync.Mutex
	ctx    *audio.Context
	logger *log.Logger
	win    *audio.Player
	lose   *audio.Player
	music  *audio.Player
	volume float64
	muted  bool
}

// NewSynthAudio renders every clip up front. ctx may be shared with other
// players; Ebitengine allows only one context per process.
func NewSynthAudio(ctx *audio.Context, st Settings, logger *log.Logger) *SynthAudio {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	st = st.normalized()
	return &SynthAudio{
		ctx:    ctx,
		logger: logger,
		win:    ctx.NewPlayerFromBytes(renderNotes(winJingle, 0.8)),
		lose:   ctx.NewPlayerFromBytes(renderNotes(loseJingle, 0.8)),
		volume: st.Volume,
		muted:  st.Muted,
	}
}

// PlayOnce implements core.Audio.
func (a *SynthAudio) PlayOnce(s core.Sound) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var p *audio.Player
	switch s {
	case core.SoundWin:
		p = a.win
	case core.SoundLose:
		p = a.lose
	default:
		return
	}
	if a.muted {
		return
	}
	p.SetVolume(a.volume)
	if err := p.Rewind(); err != nil {
		a.logger.Warn("rewind failed", "sound", s, "error", err)
	}
	p.Play()
}

// PlayLoop implements core.Audio. Only the background tune loops.
func (a *SynthAudio) PlayLoop(s core.Sound) {
	if s != core.MusicBackground {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.music == nil {
		pcm := renderNotes(musicLoop, 0.35)
		p, err := a.ctx.NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm))))
		if err != nil {
			a.logger.Warn("music unavailable", "error", err)
			return
		}
		a.music = p
	}
	a.music.SetVolume(a.musicVolume())
	if !a.music.IsPlaying() {
		a.music.Play()
	}
}

// SetMuted silences or restores all sound. Looping music keeps its position.
func (a *SynthAudio) SetMuted(muted bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.muted = muted
	if a.music != nil {
		a.music.SetVolume(a.musicVolume())
	}
}

// Muted reports whether sound is off.
func (a *SynthAudio) Muted() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.muted
}

func (a *SynthAudio) musicVolume() float64 {
	if a.muted {
		return 0
	}
	return a.volume
}
