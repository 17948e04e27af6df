package rabbit

import (
	"github.com/vovakirdan/rabbit-run/internal/config"
	"github.com/vovakirdan/rabbit-run/internal/core"
)

// Kind is an obstacle type.
type Kind int

const (
	KindRock Kind = iota
	KindMushroom
	KindGrass

	kindCount
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindRock:
		return "rock"
	case KindMushroom:
		return "mushroom"
	case KindGrass:
		return "grass"
	default:
		return "unknown"
	}
}

// Sprite returns the image used to draw an obstacle of this kind.
func (k Kind) Sprite() core.Sprite {
	switch k {
	case KindRock:
		return core.SpriteRock
	case KindMushroom:
		return core.SpriteMushroom
	default:
		return core.SpriteGrass
	}
}

// ShapeType selects how a collider is tested.
type ShapeType int

const (
	ShapeRect ShapeType = iota
	ShapeCircle
)

// Shape describes an obstacle collider relative to its bounding box.
// It is resolved once when the obstacle spawns.
type Shape struct {
	Type   ShapeType
	Radius int // ShapeCircle: circle of this radius centered at (X+Radius, Y+Radius)
	InsetX int // ShapeRect: bounding box shrunk by InsetX on both sides
	InsetY int // ShapeRect: bounding box shrunk by InsetY on top and bottom
}

// kindInfo holds the spawn dimensions and collider of one kind.
type kindInfo struct {
	width, height int
	radius        int
	shape         Shape
}

// kindTable builds the per-kind table from tuning.
func kindTable(o config.ObstaclesConfig) [kindCount]kindInfo {
	var t [kindCount]kindInfo
	for k, kc := range map[Kind]config.KindConfig{
		KindRock:     o.Rock,
		KindMushroom: o.Mushroom,
		KindGrass:    o.Grass,
	} {
		t[k] = kindInfo{width: kc.Width, height: kc.Height, radius: kc.Radius, shape: shapeFor(kc)}
	}
	return t
}

func shapeFor(kc config.KindConfig) Shape {
	if kc.Radius > 0 {
		return Shape{Type: ShapeCircle, Radius: kc.Radius}
	}
	return Shape{Type: ShapeRect, InsetX: kc.InsetX, InsetY: kc.InsetY}
}

// Bounds returns the obstacle's sprite bounding box.
func (o Obstacle) Bounds() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// Circle returns the circular collider. Only meaningful for ShapeCircle.
func (o Obstacle) Circle() core.Circle {
	return core.Circle{X: o.X + o.Radius, Y: o.Y + o.Radius, R: o.Radius}
}

// ColliderRect returns the rectangular collider. Only meaningful for ShapeRect.
func (o Obstacle) ColliderRect() core.Rect {
	return o.Bounds().Inset(o.Shape.InsetX, o.Shape.InsetY)
}

// Hits reports whether the player collider touches this obstacle.
// Circular obstacles compare against the circle inscribed in the player rect.
func (o Obstacle) Hits(player core.Rect) bool {
	switch o.Shape.Type {
	case ShapeCircle:
		return player.InscribedCircle().Intersects(o.Circle())
	default:
		return player.Intersects(o.ColliderRect())
	}
}
