package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate rejects tuning the simulation cannot run with.
func (c RabbitConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world size must be positive, got %dx%d", c.World.Width, c.World.Height)

	p := c.Physics
	check(p.JumpImpulse < 0, "physics.jump_impulse must be negative, got %v", p.JumpImpulse)
	check(p.GravityUp > 0, "physics.gravity_up must be positive, got %v", p.GravityUp)
	check(p.GravityDown > 0, "physics.gravity_down must be positive, got %v", p.GravityDown)
	check(p.MaxJumpHeight < p.GroundY, "physics.max_jump_height (%v) must be above ground_y (%v)", p.MaxJumpHeight, p.GroundY)

	check(c.Player.ColliderWidth > 0 && c.Player.ColliderHeight > 0, "player collider must have a positive size")

	o := c.Obstacles
	check(o.SpawnIntervalMs > 0, "obstacles.spawn_interval_ms must be positive")
	check(o.Speed > 0, "obstacles.speed must be positive, got %d", o.Speed)
	for name, k := range map[string]KindConfig{"rock": o.Rock, "mushroom": o.Mushroom, "grass": o.Grass} {
		check(k.Width > 0 && k.Height > 0, "obstacles.%s size must be positive", name)
		check(k.Radius >= 0, "obstacles.%s.radius must not be negative", name)
		check(k.Radius > 0 || (2*k.InsetX < k.Width && 2*k.InsetY < k.Height), "obstacles.%s insets leave no collider", name)
	}

	check(c.Goal.ClearCount > 0, "goal.clear_count must be positive, got %d", c.Goal.ClearCount)
	check(c.Goal.Width > 0 && c.Goal.Height > 0, "goal size must be positive")
	check(c.Background.Width > 0, "background.width must be positive")

	return errors.Join(errs...)
}
