package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/rabbit-run/internal/core"
)

// Debug font cell size used by ebitenutil.DebugPrintAt.
const (
	glyphW = 6
	glyphH = 16
)

var (
	skyColor     = color.RGBA{R: 150, G: 205, B: 240, A: 255}
	hillColor    = color.RGBA{R: 110, G: 170, B: 90, A: 255}
	groundColor  = color.RGBA{R: 120, G: 84, B: 50, A: 255}
	rabbitColor  = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	earColor     = color.RGBA{R: 250, G: 190, B: 200, A: 255}
	rockColor    = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	capColor     = color.RGBA{R: 210, G: 40, B: 40, A: 255}
	stemColor    = color.RGBA{R: 240, G: 230, B: 200, A: 255}
	grassColor   = color.RGBA{R: 60, G: 160, B: 60, A: 255}
	carrotColor  = color.RGBA{R: 250, G: 140, B: 20, A: 255}
	leafColor    = color.RGBA{R: 40, G: 140, B: 40, A: 255}
	birdColor    = color.RGBA{R: 40, G: 50, B: 90, A: 255}
	overlayColor = color.RGBA{R: 0, G: 0, B: 0, A: 160}
	boardColor   = color.RGBA{R: 250, G: 240, B: 210, A: 255}
	boardEdge    = color.RGBA{R: 140, G: 100, B: 60, A: 255}
)

// hillSpacing is the world distance between two background hills.
const hillSpacing = 320

// ImageCanvas draws world coordinates onto an Ebitengine image. The window
// layout equals the world size, so no scaling happens here.
type ImageCanvas struct {
	dst *ebiten.Image
}

// NewImageCanvas wraps dst.
func NewImageCanvas(dst *ebiten.Image) *ImageCanvas {
	return &ImageCanvas{dst: dst}
}

// Target switches the image drawn onto.
func (c *ImageCanvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

// DrawRect implements core.Canvas.
func (c *ImageCanvas) DrawRect(r core.Rect, sprite core.Sprite) {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)

	switch sprite {
	case core.SpriteBackground:
		vector.DrawFilledRect(c.dst, x, y, w, h, skyColor, false)
		for hx := r.X; hx < r.Right(); hx += hillSpacing {
			vector.DrawFilledCircle(c.dst, float32(hx+hillSpacing/2), float32(r.Bottom()), hillSpacing/2, hillColor, true)
		}
	case core.SpriteGround:
		vector.DrawFilledRect(c.dst, x, y, w, h, groundColor, false)
		vector.DrawFilledRect(c.dst, x, y, w, 6, grassColor, false)
	case core.SpriteRock:
		vector.DrawFilledCircle(c.dst, x+w/2, y+h/2, min(w, h)/2, rockColor, true)
	case core.SpriteGrass:
		vector.DrawFilledCircle(c.dst, x+w/2, y+h/2, min(w, h)/2, grassColor, true)
	case core.SpriteMushroom:
		vector.DrawFilledRect(c.dst, x+w/3, y+h/2, w/3, h/2, stemColor, false)
		vector.DrawFilledCircle(c.dst, x+w/2, y+h/2, w/2, capColor, true)
	case core.SpriteCarrot:
		vector.DrawFilledRect(c.dst, x+w/3, y+h/4, w/3, h*3/4, carrotColor, false)
		vector.DrawFilledRect(c.dst, x+w/3, y, w/3, h/4, leafColor, false)
	case core.SpriteBoard:
		vector.DrawFilledRect(c.dst, x, y, w, h, boardColor, false)
		vector.StrokeRect(c.dst, x, y, w, h, 4, boardEdge, false)
	}
}

// DrawSprite implements core.Canvas.
func (c *ImageCanvas) DrawSprite(x, y int, sprite core.Sprite, frame int) {
	w, h := core.SpriteSize(sprite)
	fx, fy, fw, fh := float32(x), float32(y), float32(w), float32(h)

	switch sprite {
	case core.SpriteRabbit:
		// Hop cycle: the body bobs on odd frames.
		bob := float32(frame%2) * 4
		vector.DrawFilledRect(c.dst, fx+fw*0.55, fy+bob, fw*0.08, fh*0.35, earColor, false)
		vector.DrawFilledRect(c.dst, fx+fw*0.67, fy+bob, fw*0.08, fh*0.35, earColor, false)
		vector.DrawFilledCircle(c.dst, fx+fw*0.6, fy+fh*0.6+bob, fh*0.3, rabbitColor, true)
		vector.DrawFilledCircle(c.dst, fx+fw*0.3, fy+fh*0.68+bob, fh*0.08, rabbitColor, true)
	case core.SpriteBird:
		cx, cy := fx+fw/2, fy+fh/2
		wing := fh / 6
		if frame%2 == 1 {
			wing = -wing
		}
		vector.StrokeLine(c.dst, cx-fw/4, cy-wing, cx, cy, 4, birdColor, true)
		vector.StrokeLine(c.dst, cx, cy, cx+fw/4, cy-wing, 4, birdColor, true)
	default:
		c.DrawRect(core.NewRect(x, y, w, h), sprite)
	}
}

// DrawText implements core.Canvas.
func (c *ImageCanvas) DrawText(x, y int, text string) {
	ebitenutil.DebugPrintAt(c.dst, text, x, y)
}

// DrawOverlayText implements core.Canvas.
func (c *ImageCanvas) DrawOverlayText(title, subtitle string) {
	b := c.dst.Bounds()
	vector.DrawFilledRect(c.dst, 0, 0, float32(b.Dx()), float32(b.Dy()), overlayColor, false)

	cy := b.Dy() / 2
	ebitenutil.DebugPrintAt(c.dst, title, (b.Dx()-len(title)*glyphW)/2, cy-glyphH)
	ebitenutil.DebugPrintAt(c.dst, subtitle, (b.Dx()-len(subtitle)*glyphW)/2, cy+glyphH/2)
}
