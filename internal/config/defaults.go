package config

import (
	_ "embed"
)

//go:embed defaults/particles.yaml
var defaultParticlesYAML []byte

//go:embed defaults/squares.yaml
var defaultSquaresYAML []byte

//go:embed defaults/backdrop.yaml
var defaultBackdropYAML []byte

//go:embed defaults/decorator.yaml
var defaultDecoratorYAML []byte

//go:embed defaults/bridge.yaml
var defaultBridgeYAML []byte

// DefaultParticlesConfig returns the default particles configuration.
func DefaultParticlesConfig() ParticlesConfig {
	return ParticlesConfig{
		Spawn: ParticlesSpawn{
			Initial:     120,
			Batch:       60,
			PresetBatch: 25,
		},
		Motion: ParticlesMotion{
			MinSpeed:   3,
			MaxSpeed:   15,
			Twinkle:    10,
			MinAlpha:   90,
			SpawnAlpha: 120,
		},
		Styles: []StyleConfig{
			{Shape: "circle", Size: 1, Color: "#87ceeb"},
			{Shape: "circle", Size: 2, Color: "#ffd700"},
			{Shape: "rect", Size: 2, Color: "#ff6347"},
			{Shape: "rect", Size: 1, Color: "#90ee90"},
			{Shape: "circle", Size: 3, Color: "#dda0dd"},
		},
		Presets: []int{0, 2, 4},
	}
}

// DefaultSquaresConfig returns the default squares configuration.
func DefaultSquaresConfig() SquaresConfig {
	return SquaresConfig{
		Clusters: SquaresClusters{
			Count:   3,
			Squares: 6,
		},
		Square: SquaresSquare{
			Size:   2,
			Colors: []string{"#ff6347", "#87ceeb", "#90ee90", "#ffd700", "#dda0dd", "#ffb6c1"},
		},
		Movement: SquaresMovement{
			Step: 1,
			Hold: 0.25,
		},
		Animation: SquaresAnimation{
			SpeedUp:    10,
			SlowDown:   6,
			TrailSteps: 4,
		},
	}
}

// DefaultBackdropConfig returns the default backdrop configuration.
func DefaultBackdropConfig() BackdropConfig {
	return BackdropConfig{
		Proxy: BackdropProxy{
			LoadDelay: 1.2,
			Stars:     90,
		},
		Physics: BackdropPhysics{
			Gravity:      60,
			MoveSpeed:    30,
			JumpPower:    28,
			GroundOffset: 3,
		},
		Runner: StyleConfig{Shape: "rect", Size: 1, Color: "#5adcdc"},
	}
}

// DefaultDecoratorConfig returns the default decorator runner configuration.
func DefaultDecoratorConfig() DecoratorConfig {
	return DecoratorConfig{
		Physics: RunnerPhysics{
			Gravity:      60,
			MoveSpeed:    22,
			JumpPower:    22,
			GroundOffset: 3,
		},
		Hero: DecoratorHero{
			HP:    3,
			Style: StyleConfig{Shape: "rect", Size: 2, Color: "#3c78ff"},
		},
		Effects: DecoratorEffects{
			SpeedDuration:   6,
			SpeedMultiplier: 1.6,
			JumpDuration:    6,
			JumpBonus:       10,
			ShieldDuration:  8,
		},
		World: DecoratorWorld{
			Slots:         8,
			PickupChance:  0.35,
			HazardChance:  0.30,
			PickupRespawn: 0.01,
			HazardRespawn: 0.008,
			MaxPickups:    7,
			MaxHazards:    6,
		},
	}
}

// DefaultBridgeConfig returns the default bridge renderers configuration.
func DefaultBridgeConfig() BridgeConfig {
	return BridgeConfig{
		Physics: RunnerPhysics{
			Gravity:      66,
			MoveSpeed:    27,
			JumpPower:    25,
			GroundOffset: 4,
		},
		Friction: 9,
		Patrol: BridgePatrol{
			NPCs:  1,
			Range: 15,
			Speed: 0.8,
		},
		Player: "#4682ff",
		NPC:    "#46c878",
	}
}

// GetDefaultYAML returns the embedded default YAML for a demo.
func GetDefaultYAML(demoID string) []byte {
	switch demoID {
	case "particles":
		return defaultParticlesYAML
	case "squares":
		return defaultSquaresYAML
	case "backdrop":
		return defaultBackdropYAML
	case "decorator":
		return defaultDecoratorYAML
	case "bridge":
		return defaultBridgeYAML
	default:
		return nil
	}
}
