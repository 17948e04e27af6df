package core

// glyph is the terminal look of a sprite.
type glyph struct {
	fill  rune
	color Color
	round bool // drawn as an ellipse inscribed in its rect
}

var spriteGlyphs = map[Sprite]glyph{
	SpriteGround:   {fill: '▀', color: ColorBrown},
	SpriteRabbit:   {fill: '█', color: ColorBrightWhite, round: true},
	SpriteRock:     {fill: '▓', color: ColorGray, round: true},
	SpriteMushroom: {fill: '▒', color: ColorRed},
	SpriteGrass:    {fill: '"', color: ColorBrightGreen, round: true},
	SpriteCarrot:   {fill: '▼', color: ColorOrange},
	SpriteBird:     {fill: 'v', color: ColorBlue},
	SpriteBoard:    {fill: ' ', color: ColorDefault},
}

// hillSpacing is the world distance between two background hills.
const hillSpacing = 160

// ScreenCanvas draws world coordinates onto a terminal Screen, scaling the
// world field to the screen size.
type ScreenCanvas struct {
	dst    *Screen
	worldW int
	worldH int
}

// NewScreenCanvas wraps dst for a world of worldW x worldH units.
func NewScreenCanvas(dst *Screen, worldW, worldH int) *ScreenCanvas {
	return &ScreenCanvas{dst: dst, worldW: worldW, worldH: worldH}
}

// ToScreen converts a world point to a screen cell.
func (c *ScreenCanvas) ToScreen(x, y int) (int, int) {
	if c.worldW <= 0 || c.worldH <= 0 {
		return x, y
	}
	return floorDiv(x*c.dst.Width(), c.worldW), floorDiv(y*c.dst.Height(), c.worldH)
}

// ToScreenRect converts a world rectangle to screen cells. Non-empty
// rectangles always cover at least one cell.
func (c *ScreenCanvas) ToScreenRect(r Rect) Rect {
	x0, y0 := c.ToScreen(r.X, r.Y)
	x1, y1 := c.ToScreen(r.Right(), r.Bottom())
	if r.W > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if r.H > 0 && y1 <= y0 {
		y1 = y0 + 1
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// DrawRect implements Canvas.
func (c *ScreenCanvas) DrawRect(r Rect, sprite Sprite) {
	if sprite == SpriteBackground {
		c.drawBackground(r)
		return
	}
	g, ok := spriteGlyphs[sprite]
	if !ok {
		return
	}
	sr := c.ToScreenRect(r)
	if !g.round {
		c.dst.FillRect(sr, g.fill, g.color)
		return
	}
	c.fillEllipse(sr, g)
}

// DrawSprite implements Canvas.
func (c *ScreenCanvas) DrawSprite(x, y int, sprite Sprite, frame int) {
	w, h := SpriteSize(sprite)
	r := NewRect(x, y, w, h)
	switch sprite {
	case SpriteRabbit:
		c.drawRabbit(c.ToScreenRect(r), frame)
	case SpriteBird:
		sx, sy := c.ToScreen(x+w/2, y+h/2)
		wing := 'v'
		if frame%2 == 1 {
			wing = '^'
		}
		c.dst.SetColored(sx-1, sy, wing, ColorBlue)
		c.dst.SetColored(sx, sy, '◆', ColorBlue)
		c.dst.SetColored(sx+1, sy, wing, ColorBlue)
	default:
		c.DrawRect(r, sprite)
	}
}

// DrawText implements Canvas.
func (c *ScreenCanvas) DrawText(x, y int, text string) {
	sx, sy := c.ToScreen(x, y)
	c.dst.DrawText(sx, sy, text)
}

// DrawOverlayText implements Canvas.
func (c *ScreenCanvas) DrawOverlayText(title, subtitle string) {
	w := c.dst.Width()
	h := c.dst.Height()

	boxW := Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := NewRect(boxX, boxY, boxW, boxH)
	c.dst.DrawRect(box, ' ')
	c.dst.DrawBox(box)

	c.dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	c.dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}

// drawBackground draws distant hills anchored at r.X so scrolling shows.
func (c *ScreenCanvas) drawBackground(r Rect) {
	for wx := r.X; wx < r.Right(); wx += hillSpacing {
		sx, sy := c.ToScreen(wx+hillSpacing/2, r.Y+r.H/2)
		c.dst.SetColored(sx-1, sy, '/', ColorGreen)
		c.dst.SetColored(sx, sy-1, '^', ColorGreen)
		c.dst.SetColored(sx+1, sy, '\\', ColorGreen)
	}
}

func (c *ScreenCanvas) fillEllipse(sr Rect, g glyph) {
	// Compare doubled coordinates of cell centers to keep the math integral.
	cx2 := 2*sr.X + sr.W
	cy2 := 2*sr.Y + sr.H
	rx := Max(sr.W, 1)
	ry := Max(sr.H, 1)
	for y := sr.Y; y < sr.Bottom(); y++ {
		for x := sr.X; x < sr.Right(); x++ {
			dx := 2*x + 1 - cx2
			dy := 2*y + 1 - cy2
			if dx*dx*ry*ry+dy*dy*rx*rx <= rx*rx*ry*ry {
				c.dst.SetColored(x, y, g.fill, g.color)
			}
		}
	}
}

func (c *ScreenCanvas) drawRabbit(sr Rect, frame int) {
	if sr.H < 3 || sr.W < 3 {
		c.fillEllipse(sr, spriteGlyphs[SpriteRabbit])
		return
	}
	// Ears on the top row, body in between, legs on the bottom row.
	earX := sr.X + sr.W/2
	c.dst.SetColored(earX, sr.Y, '╿', ColorBrightWhite)
	c.dst.SetColored(earX+1, sr.Y, '╿', ColorBrightWhite)
	body := NewRect(sr.X, sr.Y+1, sr.W, sr.H-2)
	c.fillEllipse(body, spriteGlyphs[SpriteRabbit])
	c.dst.SetColored(earX+1, sr.Y+1+body.H/2, '●', ColorRed)

	legY := sr.Bottom() - 1
	if frame%2 == 0 {
		c.dst.SetColored(sr.X+sr.W/3, legY, '╱', ColorBrightWhite)
		c.dst.SetColored(sr.X+2*sr.W/3, legY, '╲', ColorBrightWhite)
	} else {
		c.dst.SetColored(sr.X+sr.W/3, legY, '╲', ColorBrightWhite)
		c.dst.SetColored(sr.X+2*sr.W/3, legY, '╱', ColorBrightWhite)
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
