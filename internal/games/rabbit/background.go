package rabbit

import "github.com/vovakirdan/rabbit-run/internal/core"

// ScrollingBackground is a backdrop drawn twice side by side and shifted
// left a little every frame.
type ScrollingBackground struct {
	Offset int
	Width  int
}

// Scroll moves the backdrop left by distance, wrapping after one width.
func (b *ScrollingBackground) Scroll(distance int) {
	if b.Width <= 0 {
		return
	}
	b.Offset -= distance
	if b.Offset <= -b.Width {
		b.Offset += b.Width
	}
}

// SetX re-anchors the backdrop.
func (b *ScrollingBackground) SetX(x int) {
	b.Offset = x
}

// Draw paints both copies.
func (b ScrollingBackground) Draw(c core.Canvas, height int) {
	c.DrawRect(core.NewRect(b.Offset, 0, b.Width, height), core.SpriteBackground)
	c.DrawRect(core.NewRect(b.Offset+b.Width, 0, b.Width, height), core.SpriteBackground)
}

// Animator steps through sprite frames at a fixed delay.
type Animator struct {
	Frames  int
	DelayMs uint64
	Frame   int
	elapsed uint64
}

// Tick advances the animation clock by dt milliseconds.
func (a *Animator) Tick(dt uint64) {
	if a.Frames <= 1 || a.DelayMs == 0 {
		return
	}
	a.elapsed += dt
	for a.elapsed >= a.DelayMs {
		a.elapsed -= a.DelayMs
		a.Frame = (a.Frame + 1) % a.Frames
	}
}

// Rewind returns to the first frame.
func (a *Animator) Rewind() {
	a.Frame = 0
	a.elapsed = 0
}

// Bird is a decorative flier crossing the sky.
type Bird struct {
	X, Y  int
	Speed int
	Phase int // frame offset so the flock does not flap in unison
}

// newFlock lays out n birds across the upper sky.
func newFlock(n, worldW int) []Bird {
	birds := make([]Bird, n)
	for i := range birds {
		birds[i] = Bird{
			X:     150 + i*worldW/core.Max(n, 1),
			Y:     100 + (i%3)*40,
			Speed: 1 + i%2,
			Phase: i * 3,
		}
	}
	return birds
}

// fly moves every bird left, wrapping at the world edge.
func fly(birds []Bird, worldW int) {
	w, _ := core.SpriteSize(core.SpriteBird)
	for i := range birds {
		birds[i].X -= birds[i].Speed
		if birds[i].X+w < 0 {
			birds[i].X = worldW
		}
	}
}
