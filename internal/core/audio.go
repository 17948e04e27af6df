package core

import "github.com/charmbracelet/log"

// Sound identifies a sound effect or music track.
type Sound int

const (
	SoundNone Sound = iota
	SoundWin
	SoundLose
	MusicBackground
)

// String returns the sound name used in logs.
func (s Sound) String() string {
	switch s {
	case SoundWin:
		return "win"
	case SoundLose:
		return "lose"
	case MusicBackground:
		return "music"
	default:
		return "none"
	}
}

// Audio is the fire-and-forget sound surface a frontend provides.
type Audio interface {
	PlayOnce(s Sound)
	PlayLoop(s Sound)
}

// Event is something a game tick wants the platform to react to.
type Event int

const (
	EventNone       Event = iota
	EventMusicStart       // background music should begin looping
	EventWin              // the run was just won
	EventLose             // the run was just lost
	EventReset            // the run was restarted
)

// String returns a human-readable event name.
func (e Event) String() string {
	switch e {
	case EventMusicStart:
		return "music_start"
	case EventWin:
		return "win"
	case EventLose:
		return "lose"
	case EventReset:
		return "reset"
	default:
		return "none"
	}
}

// PlayEvents forwards the sound-carrying events of a tick to a.
func PlayEvents(a Audio, events []Event) {
	if a == nil {
		return
	}
	for _, e := range events {
		switch e {
		case EventMusicStart:
			a.PlayLoop(MusicBackground)
		case EventWin:
			a.PlayOnce(SoundWin)
		case EventLose:
			a.PlayOnce(SoundLose)
		}
	}
}

// NopAudio discards every request.
type NopAudio struct{}

func (NopAudio) PlayOnce(Sound) {}
func (NopAudio) PlayLoop(Sound) {}

// LoggingAudio records each request before passing it on.
type LoggingAudio struct {
	Next   Audio
	Logger *log.Logger
}

// PlayOnce implements Audio.
func (a LoggingAudio) PlayOnce(s Sound) {
	if a.Logger != nil {
		a.Logger.Debug("play once", "sound", s)
	}
	if a.Next != nil {
		a.Next.PlayOnce(s)
	}
}

// PlayLoop implements Audio.
func (a LoggingAudio) PlayLoop(s Sound) {
	if a.Logger != nil {
		a.Logger.Debug("play loop", "sound", s)
	}
	if a.Next != nil {
		a.Next.PlayLoop(s)
	}
}
