package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/rabbit-run/internal/core"
)

// keyBinding maps physical keys to one action.
type keyBinding struct {
	action core.Action
	keys   []ebiten.Key
}

var bindings = []keyBinding{
	{core.ActionJump, []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP}},
	{core.ActionBack, []ebiten.Key{ebiten.KeyEscape, ebiten.KeyB}},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ}},
}

// muteKey toggles sound. It is a frontend setting, not a game action.
const muteKey = ebiten.KeyM

// frameFrom builds the input of one tick from a key predicate.
func frameFrom(pressed func(ebiten.Key) bool) core.InputFrame {
	frame := core.NewInputFrame()
	for _, b := range bindings {
		for _, k := range b.keys {
			if pressed(k) {
				frame.Set(b.action)
				break
			}
		}
	}
	return frame
}

// pollInput reads the keys pressed since the previous tick. A click or a
// touch also counts as a jump.
func pollInput() core.InputFrame {
	frame := frameFrom(inpututil.IsKeyJustPressed)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		frame.Set(core.ActionJump)
	}
	return frame
}
