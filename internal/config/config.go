// Package config provides YAML-based demo configuration loading and
// density presets for the pattern demos.
package config

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-patterns/internal/core"
	"github.com/vovakirdan/tui-patterns/internal/flyweight"
)

// StyleConfig describes one shared sprite look.
type StyleConfig struct {
	Shape string `yaml:"shape"` // "circle" or "rect"
	Size  int    `yaml:"size"`
	Color string `yaml:"color"` // "#rrggbb"
}

// Key converts the style into a flyweight key.
func (s StyleConfig) Key() (flyweight.Key, error) {
	shape, err := flyweight.ParseShape(s.Shape)
	if err != nil {
		return flyweight.Key{}, err
	}
	c, err := ParseColor(s.Color)
	if err != nil {
		return flyweight.Key{}, err
	}
	k := flyweight.NewKey(shape, s.Size, c)
	return k, k.Validate()
}

// ParseColor parses a "#rrggbb" hex color.
func ParseColor(hex string) (core.RGB, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return core.RGB{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return core.NewRGB(r, g, b), nil
}

// ParticlesConfig contains all configuration for the Flyweight particles demo.
type ParticlesConfig struct {
	Spawn   ParticlesSpawn  `yaml:"spawn"`
	Motion  ParticlesMotion `yaml:"motion"`
	Styles  []StyleConfig   `yaml:"styles"`
	Presets []int           `yaml:"presets"` // style indices bound to keys 1/2/3
}

// ParticlesSpawn defines how many particles appear and when.
type ParticlesSpawn struct {
	Initial     int `yaml:"initial"`
	Batch       int `yaml:"batch"`        // Space
	PresetBatch int `yaml:"preset_batch"` // 1/2/3
}

// ParticlesMotion defines particle speed and twinkle.
type ParticlesMotion struct {
	MinSpeed   float64 `yaml:"min_speed"` // cells per second
	MaxSpeed   float64 `yaml:"max_speed"`
	Twinkle    int     `yaml:"twinkle"`     // max alpha change per tick
	MinAlpha   int     `yaml:"min_alpha"`   // twinkle floor
	SpawnAlpha int     `yaml:"spawn_alpha"` // lowest alpha at spawn
}

// Validate checks that the particles config can drive the demo.
func (c ParticlesConfig) Validate() error {
	if len(c.Styles) == 0 {
		return errors.New("particles: at least one style is required")
	}
	for i, s := range c.Styles {
		if _, err := s.Key(); err != nil {
			return fmt.Errorf("particles: style %d: %w", i, err)
		}
	}
	for _, p := range c.Presets {
		if p < 0 || p >= len(c.Styles) {
			return fmt.Errorf("particles: preset %d out of range", p)
		}
	}
	if c.Motion.MaxSpeed < c.Motion.MinSpeed {
		return errors.New("particles: max_speed below min_speed")
	}
	return nil
}

// SquaresConfig contains all configuration for the Composite squares demo.
type SquaresConfig struct {
	Clusters  SquaresClusters  `yaml:"clusters"`
	Square    SquaresSquare    `yaml:"square"`
	Movement  SquaresMovement  `yaml:"movement"`
	Animation SquaresAnimation `yaml:"animation"`
}

// SquaresClusters defines the tree shape.
type SquaresClusters struct {
	Count   int `yaml:"count"`
	Squares int `yaml:"squares"` // per cluster
}

// SquaresSquare defines the look of each square.
type SquaresSquare struct {
	Size   int      `yaml:"size"`
	Colors []string `yaml:"colors"`
}

// SquaresMovement defines how far one arrow press moves the whole tree.
type SquaresMovement struct {
	Step float64 `yaml:"step"` // cells per key press
	// Hold keeps the squares "moving" this long after a key press, in seconds,
	// since terminals report presses rather than held keys.
	Hold float64 `yaml:"hold"`
}

// SquaresAnimation defines squash/trail easing rates.
type SquaresAnimation struct {
	SpeedUp    float64 `yaml:"speed_up"`
	SlowDown   float64 `yaml:"slow_down"`
	TrailSteps int     `yaml:"trail_steps"`
}

// Validate checks that the squares config can drive the demo.
func (c SquaresConfig) Validate() error {
	if c.Clusters.Count <= 0 {
		return errors.New("squares: clusters.count must be positive")
	}
	if c.Square.Size <= 0 {
		return errors.New("squares: square.size must be positive")
	}
	if len(c.Square.Colors) == 0 {
		return errors.New("squares: at least one color is required")
	}
	for _, hex := range c.Square.Colors {
		if _, err := ParseColor(hex); err != nil {
			return fmt.Errorf("squares: %w", err)
		}
	}
	return nil
}

// BackdropConfig contains all configuration for the virtual proxy demo.
type BackdropConfig struct {
	Proxy   BackdropProxy   `yaml:"proxy"`
	Physics BackdropPhysics `yaml:"physics"`
	Runner  StyleConfig     `yaml:"runner"`
}

// BackdropProxy defines the lazily built starfield.
type BackdropProxy struct {
	LoadDelay float64 `yaml:"load_delay"` // seconds before the real backdrop is built
	Stars     int     `yaml:"stars"`
}

// BackdropPhysics defines runner physics, in cells and seconds.
type BackdropPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	MoveSpeed    float64 `yaml:"move_speed"`
	JumpPower    float64 `yaml:"jump_power"`
	GroundOffset int     `yaml:"ground_offset"`
}

// Validate checks that the backdrop config can drive the demo.
func (c BackdropConfig) Validate() error {
	if c.Proxy.LoadDelay < 0 {
		return errors.New("backdrop: load_delay must not be negative")
	}
	if _, err := c.Runner.Key(); err != nil {
		return fmt.Errorf("backdrop: runner: %w", err)
	}
	return nil
}

// RunnerPhysics defines platformer physics, in cells and seconds.
type RunnerPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	MoveSpeed    float64 `yaml:"move_speed"`
	JumpPower    float64 `yaml:"jump_power"`
	GroundOffset int     `yaml:"ground_offset"`
}

func (p RunnerPhysics) validate() error {
	if p.Gravity <= 0 || p.MoveSpeed <= 0 || p.JumpPower <= 0 {
		return errors.New("gravity, move_speed and jump_power must be positive")
	}
	if p.GroundOffset < 1 {
		return errors.New("ground_offset must be at least 1")
	}
	return nil
}

// DecoratorConfig contains all configuration for the decorator runner demo.
type DecoratorConfig struct {
	Physics RunnerPhysics    `yaml:"physics"`
	Hero    DecoratorHero    `yaml:"hero"`
	Effects DecoratorEffects `yaml:"effects"`
	World   DecoratorWorld   `yaml:"world"`
}

// DecoratorHero defines the undecorated character.
type DecoratorHero struct {
	HP    int         `yaml:"hp"`
	Style StyleConfig `yaml:"style"`
}

// DecoratorEffects defines the timed power-ups.
type DecoratorEffects struct {
	SpeedDuration   float64 `yaml:"speed_duration"`
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
	JumpDuration    float64 `yaml:"jump_duration"`
	JumpBonus       float64 `yaml:"jump_bonus"`
	ShieldDuration  float64 `yaml:"shield_duration"`
}

// DecoratorWorld defines pickup and hazard placement.
type DecoratorWorld struct {
	Slots         int     `yaml:"slots"`          // positions scanned when the level is built
	PickupChance  float64 `yaml:"pickup_chance"`  // per slot
	HazardChance  float64 `yaml:"hazard_chance"`  // per slot
	PickupRespawn float64 `yaml:"pickup_respawn"` // per tick
	HazardRespawn float64 `yaml:"hazard_respawn"` // per tick
	MaxPickups    int     `yaml:"max_pickups"`
	MaxHazards    int     `yaml:"max_hazards"`
}

// Validate checks that the decorator config can drive the demo.
func (c DecoratorConfig) Validate() error {
	if err := c.Physics.validate(); err != nil {
		return fmt.Errorf("decorator: %w", err)
	}
	if c.Hero.HP < 1 {
		return errors.New("decorator: hero hp must be at least 1")
	}
	if _, err := c.Hero.Style.Key(); err != nil {
		return fmt.Errorf("decorator: hero style: %w", err)
	}
	e := c.Effects
	if e.SpeedDuration <= 0 || e.JumpDuration <= 0 || e.ShieldDuration <= 0 {
		return errors.New("decorator: effect durations must be positive")
	}
	if e.SpeedMultiplier <= 0 {
		return errors.New("decorator: speed_multiplier must be positive")
	}
	w := c.World
	if w.PickupChance < 0 || w.HazardChance < 0 || w.PickupChance+w.HazardChance > 1 {
		return errors.New("decorator: pickup_chance and hazard_chance must be within [0, 1] together")
	}
	if w.Slots < 0 || w.MaxPickups < 0 || w.MaxHazards < 0 {
		return errors.New("decorator: world counts must not be negative")
	}
	return nil
}

// BridgeConfig contains all configuration for the bridge renderers demo.
type BridgeConfig struct {
	Physics  RunnerPhysics `yaml:"physics"`
	Friction float64       `yaml:"friction"` // horizontal easing per second without input
	Patrol   BridgePatrol  `yaml:"patrol"`
	Player   string        `yaml:"player_color"`
	NPC      string        `yaml:"npc_color"`
}

// BridgePatrol defines the NPC patrol.
type BridgePatrol struct {
	NPCs  int     `yaml:"npcs"`
	Range float64 `yaml:"range"` // cells either side of the spawn point
	Speed float64 `yaml:"speed"` // radians per second of the patrol cosine
}

// Validate checks that the bridge config can drive the demo.
func (c BridgeConfig) Validate() error {
	if err := c.Physics.validate(); err != nil {
		return fmt.Errorf("bridge: %w", err)
	}
	if c.Friction < 0 {
		return errors.New("bridge: friction must not be negative")
	}
	if c.Patrol.NPCs < 0 {
		return errors.New("bridge: npcs must not be negative")
	}
	if _, err := ParseColor(c.Player); err != nil {
		return fmt.Errorf("bridge: player_color: %w", err)
	}
	if _, err := ParseColor(c.NPC); err != nil {
		return fmt.Errorf("bridge: npc_color: %w", err)
	}
	return nil
}
