package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-patterns/internal/core"
	"github.com/vovakirdan/tui-patterns/internal/flyweight"
)

// isolate points the user config dir at an empty temp home.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	isolate(t)

	particles, err := LoadParticles("")
	if err != nil {
		t.Fatalf("LoadParticles() failed: %v", err)
	}
	if !reflect.DeepEqual(particles, DefaultParticlesConfig()) {
		t.Errorf("LoadParticles() = %+v, expected %+v", particles, DefaultParticlesConfig())
	}

	squares, err := LoadSquares("")
	if err != nil {
		t.Fatalf("LoadSquares() failed: %v", err)
	}
	if !reflect.DeepEqual(squares, DefaultSquaresConfig()) {
		t.Errorf("LoadSquares() = %+v, expected %+v", squares, DefaultSquaresConfig())
	}

	backdrop, err := LoadBackdrop("")
	if err != nil {
		t.Fatalf("LoadBackdrop() failed: %v", err)
	}
	if !reflect.DeepEqual(backdrop, DefaultBackdropConfig()) {
		t.Errorf("LoadBackdrop() = %+v, expected %+v", backdrop, DefaultBackdropConfig())
	}

	decorator, err := LoadDecorator("")
	if err != nil {
		t.Fatalf("LoadDecorator() failed: %v", err)
	}
	if !reflect.DeepEqual(decorator, DefaultDecoratorConfig()) {
		t.Errorf("LoadDecorator() = %+v, expected %+v", decorator, DefaultDecoratorConfig())
	}

	bridge, err := LoadBridge("")
	if err != nil {
		t.Fatalf("LoadBridge() failed: %v", err)
	}
	if !reflect.DeepEqual(bridge, DefaultBridgeConfig()) {
		t.Errorf("LoadBridge() = %+v, expected %+v", bridge, DefaultBridgeConfig())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "spawn:\n  initial: 7\nstyles:\n  - { shape: rect, size: 4, color: \"#000000\" }\npresets: [0]\n")

	cfg, err := LoadParticles(path)
	if err != nil {
		t.Fatalf("LoadParticles() failed: %v", err)
	}
	if cfg.Spawn.Initial != 7 {
		t.Errorf("Spawn.Initial = %d, expected 7", cfg.Spawn.Initial)
	}
	// Keys missing from the file keep their defaults.
	if cfg.Spawn.Batch != DefaultParticlesConfig().Spawn.Batch {
		t.Errorf("Spawn.Batch = %d, expected default %d", cfg.Spawn.Batch, DefaultParticlesConfig().Spawn.Batch)
	}
	if len(cfg.Styles) != 1 {
		t.Errorf("len(Styles) = %d, expected 1", len(cfg.Styles))
	}
}

func TestLoadUserConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".patterns", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "squares.yaml"), []byte("clusters:\n  count: 5\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadSquares("")
	if err != nil {
		t.Fatalf("LoadSquares() failed: %v", err)
	}
	if cfg.Clusters.Count != 5 {
		t.Errorf("Clusters.Count = %d, expected 5", cfg.Clusters.Count)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := LoadBackdrop(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadBackdrop() with missing file should fail")
	}

	broken := writeConfig(t, "proxy: [unclosed\n")
	if _, err := LoadBackdrop(broken); err == nil {
		t.Error("LoadBackdrop() with malformed YAML should fail")
	}

	invalid := writeConfig(t, "styles:\n  - { shape: hexagon, size: 2, color: \"#ffffff\" }\n")
	if _, err := LoadParticles(invalid); err == nil {
		t.Error("LoadParticles() with unknown shape should fail validation")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ParticlesConfig)
		wantErr bool
	}{
		{"defaults", func(*ParticlesConfig) {}, false},
		{"no styles", func(c *ParticlesConfig) { c.Styles = nil }, true},
		{"zero size", func(c *ParticlesConfig) { c.Styles[0].Size = 0 }, true},
		{"bad color", func(c *ParticlesConfig) { c.Styles[0].Color = "tomato" }, true},
		{"preset out of range", func(c *ParticlesConfig) { c.Presets = []int{99} }, true},
		{"inverted speed", func(c *ParticlesConfig) { c.Motion.MaxSpeed = c.Motion.MinSpeed - 1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultParticlesConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	squares := DefaultSquaresConfig()
	squares.Square.Colors = nil
	if err := squares.Validate(); err == nil {
		t.Error("SquaresConfig.Validate() with no colors should fail")
	}

	backdrop := DefaultBackdropConfig()
	backdrop.Proxy.LoadDelay = -1
	if err := backdrop.Validate(); err == nil {
		t.Error("BackdropConfig.Validate() with negative delay should fail")
	}
}

func TestValidateRunnerDemos(t *testing.T) {
	decoratorTests := []struct {
		name    string
		mutate  func(*DecoratorConfig)
		wantErr bool
	}{
		{"defaults", func(*DecoratorConfig) {}, false},
		{"zero gravity", func(c *DecoratorConfig) { c.Physics.Gravity = 0 }, true},
		{"no ground", func(c *DecoratorConfig) { c.Physics.GroundOffset = 0 }, true},
		{"dead hero", func(c *DecoratorConfig) { c.Hero.HP = 0 }, true},
		{"bad hero color", func(c *DecoratorConfig) { c.Hero.Style.Color = "blue" }, true},
		{"zero shield", func(c *DecoratorConfig) { c.Effects.ShieldDuration = 0 }, true},
		{"chances over one", func(c *DecoratorConfig) { c.World.PickupChance = 0.8 }, true},
	}
	for _, tt := range decoratorTests {
		t.Run("decorator "+tt.name, func(t *testing.T) {
			cfg := DefaultDecoratorConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	bridgeTests := []struct {
		name    string
		mutate  func(*BridgeConfig)
		wantErr bool
	}{
		{"defaults", func(*BridgeConfig) {}, false},
		{"no npcs", func(c *BridgeConfig) { c.Patrol.NPCs = 0 }, false},
		{"negative friction", func(c *BridgeConfig) { c.Friction = -1 }, true},
		{"bad npc color", func(c *BridgeConfig) { c.NPC = "#zz0000" }, true},
		{"zero jump", func(c *BridgeConfig) { c.Physics.JumpPower = 0 }, true},
	}
	for _, tt := range bridgeTests {
		t.Run("bridge "+tt.name, func(t *testing.T) {
			cfg := DefaultBridgeConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestStyleKey(t *testing.T) {
	k, err := StyleConfig{Shape: "circle", Size: 3, Color: "#87ceeb"}.Key()
	if err != nil {
		t.Fatalf("Key() failed: %v", err)
	}
	expected := flyweight.NewKey(flyweight.ShapeCircle, 3, core.NewRGB(135, 206, 235))
	if k != expected {
		t.Errorf("Key() = %v, expected %v", k, expected)
	}
}

func TestParseDensity(t *testing.T) {
	tests := []struct {
		in      string
		want    DensityPreset
		wantErr bool
	}{
		{"", DensityNormal, false},
		{"normal", DensityNormal, false},
		{"Sparse", DensitySparse, false},
		{" dense ", DensityDense, false},
		{"crowded", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDensity(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDensity(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDensity(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyDensity(t *testing.T) {
	cfg := DefaultParticlesConfig()
	ApplyParticlesDensity(&cfg, DensityDense)
	if cfg.Spawn.Initial != 240 {
		t.Errorf("dense Spawn.Initial = %d, expected 240", cfg.Spawn.Initial)
	}

	squares := DefaultSquaresConfig()
	squares.Clusters.Squares = 1
	ApplySquaresDensity(&squares, DensitySparse)
	if squares.Clusters.Squares != 1 {
		t.Errorf("sparse Squares = %d, expected 1 (never drops to zero)", squares.Clusters.Squares)
	}

	backdrop := DefaultBackdropConfig()
	ApplyBackdropDensity(&backdrop, DensityNormal)
	if backdrop.Proxy.Stars != DefaultBackdropConfig().Proxy.Stars {
		t.Errorf("normal Stars = %d, expected unchanged", backdrop.Proxy.Stars)
	}

	decorator := DefaultDecoratorConfig()
	ApplyDecoratorDensity(&decorator, DensitySparse)
	if decorator.World.Slots != 4 || decorator.World.MaxHazards != 3 {
		t.Errorf("sparse World = %+v, expected 4 slots and 3 hazards", decorator.World)
	}

	bridge := DefaultBridgeConfig()
	ApplyBridgeDensity(&bridge, DensityDense)
	if bridge.Patrol.NPCs != 2 {
		t.Errorf("dense NPCs = %d, expected 2", bridge.Patrol.NPCs)
	}
}
