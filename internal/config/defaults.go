package config

import (
	_ "embed"
)

//go:embed defaults/rabbit.yaml
var defaultRabbitYAML []byte

// DefaultRabbitConfig returns the built-in tuning. It mirrors
// defaults/rabbit.yaml and is used when the embedded file cannot be parsed.
func DefaultRabbitConfig() RabbitConfig {
	return RabbitConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Physics: PhysicsConfig{
			JumpImpulse:   -10.0,
			GravityUp:     0.20,
			GravityDown:   0.025,
			GroundY:       380.0,
			MaxJumpHeight: 240.0,
		},
		Player: PlayerConfig{
			X:               245,
			ColliderOffsetY: 45,
			ColliderWidth:   130,
			ColliderHeight:  80,
			SpriteOffsetX:   35,
		},
		Obstacles: ObstaclesConfig{
			SpawnIntervalMs: 4000,
			ResetGraceMs:    1000,
			Speed:           4,
			GroundOffset:    50,
			PassThresholdX:  100,
			Rock:            KindConfig{Width: 140, Height: 140, Radius: 70},
			Mushroom:        KindConfig{Width: 120, Height: 120, InsetX: 15, InsetY: 10},
			Grass:           KindConfig{Width: 140, Height: 140, Radius: 70},
		},
		Goal: GoalConfig{
			ClearCount: 30,
			Width:      100,
			Height:     100,
			OffsetX:    230,
			OffsetY:    50,
		},
		Background: BackgroundConfig{
			Width: 800,
			Speed: 1,
		},
		Animation: AnimationConfig{
			RabbitTickDelayMs: 90,
			RabbitFrames:      6,
			BirdTickDelayMs:   100,
			BirdFrames:        14,
		},
	}
}

// DefaultYAML returns the embedded default tuning file.
func DefaultYAML() []byte {
	return defaultRabbitYAML
}
