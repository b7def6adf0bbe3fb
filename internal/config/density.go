package config

import (
	"fmt"
	"math"
	"strings"
)

// DensityPreset scales how many entities a demo spawns.
type DensityPreset string

const (
	DensitySparse DensityPreset = "sparse"
	DensityNormal DensityPreset = "normal"
	DensityDense  DensityPreset = "dense"
)

// ParseDensity parses a preset name; empty means normal.
func ParseDensity(s string) (DensityPreset, error) {
	switch DensityPreset(strings.ToLower(strings.TrimSpace(s))) {
	case "", DensityNormal:
		return DensityNormal, nil
	case DensitySparse:
		return DensitySparse, nil
	case DensityDense:
		return DensityDense, nil
	default:
		return "", fmt.Errorf("unknown density %q (want sparse, normal or dense)", s)
	}
}

// Factor returns the count multiplier for the preset.
func (p DensityPreset) Factor() float64 {
	switch p {
	case DensitySparse:
		return 0.5
	case DensityDense:
		return 2
	default:
		return 1
	}
}

// ApplyParticlesDensity scales particle spawn counts.
func ApplyParticlesDensity(cfg *ParticlesConfig, preset DensityPreset) {
	f := preset.Factor()
	cfg.Spawn.Initial = scale(cfg.Spawn.Initial, f)
	cfg.Spawn.Batch = scale(cfg.Spawn.Batch, f)
	cfg.Spawn.PresetBatch = scale(cfg.Spawn.PresetBatch, f)
}

// ApplySquaresDensity scales squares per cluster.
func ApplySquaresDensity(cfg *SquaresConfig, preset DensityPreset) {
	cfg.Clusters.Squares = scale(cfg.Clusters.Squares, preset.Factor())
}

// ApplyBackdropDensity scales the starfield.
func ApplyBackdropDensity(cfg *BackdropConfig, preset DensityPreset) {
	cfg.Proxy.Stars = scale(cfg.Proxy.Stars, preset.Factor())
}

// ApplyDecoratorDensity scales how crowded the level gets.
func ApplyDecoratorDensity(cfg *DecoratorConfig, preset DensityPreset) {
	f := preset.Factor()
	cfg.World.Slots = scale(cfg.World.Slots, f)
	cfg.World.MaxPickups = scale(cfg.World.MaxPickups, f)
	cfg.World.MaxHazards = scale(cfg.World.MaxHazards, f)
}

// ApplyBridgeDensity scales the number of patrolling NPCs.
func ApplyBridgeDensity(cfg *BridgeConfig, preset DensityPreset) {
	cfg.Patrol.NPCs = scale(cfg.Patrol.NPCs, preset.Factor())
}

// scale multiplies n by f, keeping positive counts at least 1.
func scale(n int, f float64) int {
	if n <= 0 {
		return n
	}
	return max(1, int(math.Round(float64(n)*f)))
}
