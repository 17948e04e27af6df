package rabbit

import "github.com/vovakirdan/rabbit-run/internal/registry"

// Variants lists the presets registered at startup.
var Variants = []Variant{
	{
		ID:    "rabbit",
		Title: "Rabbit Run",
		Features: Features{
			Obstacles: true,
			Goal:      true,
			Audio:     true,
			Reset:     true,
		},
	},
	{
		ID:    "rabbit-classic",
		Title: "Rabbit Run Classic (no restart)",
		Features: Features{
			Obstacles: true,
			Goal:      true,
			Audio:     true,
		},
	},
	{
		ID:    "rabbit-physics",
		Title: "Rabbit Jump Physics",
	},
	{
		ID:       "rabbit-birds",
		Title:    "Rabbit and Birds",
		Features: Features{Birds: 5},
	},
}

// Register the variants with the registry
func init() {
	for _, v := range Variants {
		v := v
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}
