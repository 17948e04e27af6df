package rabbit

import (
	"github.com/vovakirdan/rabbit-run/internal/config"
	"github.com/vovakirdan/rabbit-run/internal/core"
)

// Player is the rabbit's jump state. Y grows downward: the rabbit rests at
// GroundY and can never rise above MaxJumpHeight.
type Player struct {
	Y         float64
	VelocityY float64
	Jumping   bool

	phys config.PhysicsConfig
	body config.PlayerConfig
}

// NewPlayer creates a rabbit standing on the ground.
func NewPlayer(phys config.PhysicsConfig, body config.PlayerConfig) *Player {
	p := &Player{phys: phys, body: body}
	p.Init()
	return p
}

// Init puts the rabbit back on the ground at rest.
func (p *Player) Init() {
	p.Y = p.phys.GroundY
	p.VelocityY = 0
	p.Jumping = false
}

// HandleInput starts a jump. Requests while airborne or frozen are ignored.
func (p *Player) HandleInput(jump, frozen bool) {
	if frozen || p.Jumping || !jump {
		return
	}
	p.VelocityY = p.phys.JumpImpulse
	p.Jumping = true
}

// Update advances the jump by one frame.
func (p *Player) Update(frozen bool) {
	if frozen {
		return
	}

	if p.VelocityY < 0 {
		p.VelocityY += p.phys.GravityUp
	} else {
		p.VelocityY += p.phys.GravityDown
	}
	p.Y += p.VelocityY

	if p.Y < p.phys.MaxJumpHeight {
		p.Y = p.phys.MaxJumpHeight
		p.VelocityY = 0
	}
	if p.Y >= p.phys.GroundY {
		p.Y = p.phys.GroundY
		p.VelocityY = 0
		p.Jumping = false
	}
}

// Collider returns the rabbit's collision rectangle.
func (p *Player) Collider() core.Rect {
	return core.NewRect(
		p.body.X,
		int(p.Y)+p.body.ColliderOffsetY,
		p.body.ColliderWidth,
		p.body.ColliderHeight,
	)
}

// SpritePos returns the top-left corner of the rabbit sprite.
func (p *Player) SpritePos() (int, int) {
	return p.body.X - p.body.SpriteOffsetX, int(p.Y)
}
