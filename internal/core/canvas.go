package core

// Sprite identifies a drawable image handle. Frontends decide how each one
// looks; the simulation only says where.
type Sprite int

const (
	SpriteBackground Sprite = iota
	SpriteGround
	SpriteRabbit
	SpriteRock
	SpriteMushroom
	SpriteGrass
	SpriteCarrot
	SpriteBird
	SpriteBoard
)

// String returns the sprite name.
func (s Sprite) String() string {
	switch s {
	case SpriteBackground:
		return "background"
	case SpriteGround:
		return "ground"
	case SpriteRabbit:
		return "rabbit"
	case SpriteRock:
		return "rock"
	case SpriteMushroom:
		return "mushroom"
	case SpriteGrass:
		return "grass"
	case SpriteCarrot:
		return "carrot"
	case SpriteBird:
		return "bird"
	case SpriteBoard:
		return "board"
	default:
		return "unknown"
	}
}

// SpriteSize returns the nominal frame size of a sprite in world units.
func SpriteSize(s Sprite) (w, h int) {
	switch s {
	case SpriteRabbit:
		return 200, 180
	case SpriteBird:
		return 182, 168
	case SpriteCarrot:
		return 100, 100
	case SpriteBoard:
		return 400, 240
	default:
		return 100, 100
	}
}

// Canvas is the draw surface a game renders onto. Coordinates are world
// units with the origin at the top-left and y growing downward.
type Canvas interface {
	// DrawSprite draws one animation frame of a sprite with its top-left at (x, y).
	DrawSprite(x, y int, sprite Sprite, frame int)
	// DrawRect stretches a sprite over r.
	DrawRect(r Rect, sprite Sprite)
	// DrawText draws a HUD string at (x, y).
	DrawText(x, y int, text string)
	// DrawOverlayText draws a centered end-of-run message.
	DrawOverlayText(title, subtitle string)
}
