// Package config provides YAML/TOML tuning for the rabbit runner: physics,
// obstacles, goal and animation constants, with an embedded default, a
// search path, validation and hot reload.
package config

// RabbitConfig contains all tuning for the rabbit runner.
type RabbitConfig struct {
	World      WorldConfig      `yaml:"world" toml:"world"`
	Physics    PhysicsConfig    `yaml:"physics" toml:"physics"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Obstacles  ObstaclesConfig  `yaml:"obstacles" toml:"obstacles"`
	Goal       GoalConfig       `yaml:"goal" toml:"goal"`
	Background BackgroundConfig `yaml:"background" toml:"background"`
	Animation  AnimationConfig  `yaml:"animation" toml:"animation"`
}

// WorldConfig is the size of the visible field in world units.
type WorldConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// PhysicsConfig defines the jump model. Y grows downward, so the jump
// impulse is negative and MaxJumpHeight is smaller than GroundY.
type PhysicsConfig struct {
	JumpImpulse   float64 `yaml:"jump_impulse" toml:"jump_impulse"`
	GravityUp     float64 `yaml:"gravity_up" toml:"gravity_up"`     // applied while velocity < 0
	GravityDown   float64 `yaml:"gravity_down" toml:"gravity_down"` // applied while velocity >= 0
	GroundY       float64 `yaml:"ground_y" toml:"ground_y"`
	MaxJumpHeight float64 `yaml:"max_jump_height" toml:"max_jump_height"`
}

// PlayerConfig places the rabbit and its collider.
type PlayerConfig struct {
	X               int `yaml:"x" toml:"x"` // collider left edge
	ColliderOffsetY int `yaml:"collider_offset_y" toml:"collider_offset_y"`
	ColliderWidth   int `yaml:"collider_width" toml:"collider_width"`
	ColliderHeight  int `yaml:"collider_height" toml:"collider_height"`
	SpriteOffsetX   int `yaml:"sprite_offset_x" toml:"sprite_offset_x"` // sprite left edge = X - SpriteOffsetX
}

// ObstaclesConfig defines spawning, movement and scoring of obstacles.
type ObstaclesConfig struct {
	SpawnIntervalMs uint64     `yaml:"spawn_interval_ms" toml:"spawn_interval_ms"`
	ResetGraceMs    uint64     `yaml:"reset_grace_ms" toml:"reset_grace_ms"`
	Speed           int        `yaml:"speed" toml:"speed"`
	GroundOffset    int        `yaml:"ground_offset" toml:"ground_offset"` // obstacle top = GroundY + GroundOffset
	PassThresholdX  int        `yaml:"pass_threshold_x" toml:"pass_threshold_x"`
	Rock            KindConfig `yaml:"rock" toml:"rock"`
	Mushroom        KindConfig `yaml:"mushroom" toml:"mushroom"`
	Grass           KindConfig `yaml:"grass" toml:"grass"`
}

// KindConfig sizes one obstacle kind. A positive radius selects a circular
// collider; otherwise the collider is the bounding box shrunk by the insets.
type KindConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
	Radius int `yaml:"radius" toml:"radius"`
	InsetX int `yaml:"inset_x" toml:"inset_x"`
	InsetY int `yaml:"inset_y" toml:"inset_y"`
}

// GoalConfig defines the carrot.
type GoalConfig struct {
	ClearCount int `yaml:"clear_count" toml:"clear_count"`
	Width      int `yaml:"width" toml:"width"`
	Height     int `yaml:"height" toml:"height"`
	OffsetX    int `yaml:"offset_x" toml:"offset_x"` // collider x = goal x + OffsetX
	OffsetY    int `yaml:"offset_y" toml:"offset_y"` // collider y = GroundY + OffsetY
}

// BackgroundConfig defines the scrolling backdrop.
type BackgroundConfig struct {
	Width int `yaml:"width" toml:"width"`
	Speed int `yaml:"speed" toml:"speed"`
}

// AnimationConfig sets sprite frame delays.
type AnimationConfig struct {
	RabbitTickDelayMs uint64 `yaml:"rabbit_tick_delay_ms" toml:"rabbit_tick_delay_ms"`
	RabbitFrames      int    `yaml:"rabbit_frames" toml:"rabbit_frames"`
	BirdTickDelayMs   uint64 `yaml:"bird_tick_delay_ms" toml:"bird_tick_delay_ms"`
	BirdFrames        int    `yaml:"bird_frames" toml:"bird_frames"`
}
