package desktop

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/rabbit-run/internal/core"
)

func TestFrameFrom(t *testing.T) {
	tests := []struct {
		name    string
		pressed []ebiten.Key
		want    []core.Action
	}{
		{"nothing", nil, nil},
		{"space", []ebiten.Key{ebiten.KeySpace}, []core.Action{core.ActionJump}},
		{"arrow up", []ebiten.Key{ebiten.KeyArrowUp}, []core.Action{core.ActionJump}},
		{"restart and pause", []ebiten.Key{ebiten.KeyR, ebiten.KeyP}, []core.Action{core.ActionRestart, core.ActionPause}},
		{"escape", []ebiten.Key{ebiten.KeyEscape}, []core.Action{core.ActionBack}},
		{"q", []ebiten.Key{ebiten.KeyQ}, []core.Action{core.ActionQuit}},
		{"mute is not an action", []ebiten.Key{muteKey}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			down := map[ebiten.Key]bool{}
			for _, k := range tt.pressed {
				down[k] = true
			}
			f := frameFrom(func(k ebiten.Key) bool { return down[k] })

			for _, a := range tt.want {
				if !f.Has(a) {
					t.Errorf("missing %v", a)
				}
			}
			if got := countActions(f); got != len(tt.want) {
				t.Errorf("frame has %d actions, want %d", got, len(tt.want))
			}
		})
	}
}

func countActions(f core.InputFrame) int {
	n := 0
	for _, on := range f.Actions {
		if on {
			n++
		}
	}
	return n
}
