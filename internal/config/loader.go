package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadParticles loads particles demo configuration.
// Search order: customPath -> ~/.patterns/configs/particles.yaml -> ./configs/particles.yaml -> embedded default
func LoadParticles(customPath string) (ParticlesConfig, error) {
	cfg, err := load(customPath, "particles.yaml", defaultParticlesYAML, DefaultParticlesConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadSquares loads squares demo configuration.
// Search order: customPath -> ~/.patterns/configs/squares.yaml -> ./configs/squares.yaml -> embedded default
func LoadSquares(customPath string) (SquaresConfig, error) {
	cfg, err := load(customPath, "squares.yaml", defaultSquaresYAML, DefaultSquaresConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadBackdrop loads backdrop demo configuration.
// Search order: customPath -> ~/.patterns/configs/backdrop.yaml -> ./configs/backdrop.yaml -> embedded default
func LoadBackdrop(customPath string) (BackdropConfig, error) {
	cfg, err := load(customPath, "backdrop.yaml", defaultBackdropYAML, DefaultBackdropConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadDecorator loads decorator runner configuration.
// Search order: customPath -> ~/.patterns/configs/decorator.yaml -> ./configs/decorator.yaml -> embedded default
func LoadDecorator(customPath string) (DecoratorConfig, error) {
	cfg, err := load(customPath, "decorator.yaml", defaultDecoratorYAML, DefaultDecoratorConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadBridge loads bridge renderers configuration.
// Search order: customPath -> ~/.patterns/configs/bridge.yaml -> ./configs/bridge.yaml -> embedded default
func LoadBridge(customPath string) (BridgeConfig, error) {
	cfg, err := load(customPath, "bridge.yaml", defaultBridgeYAML, DefaultBridgeConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// load decodes the first readable config over the hardcoded defaults,
// so a partial file only overrides the keys it names.
func load[T any](customPath, filename string, embedded []byte, defaults func() T) (T, error) {
	// Try custom path first
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(filename), filepath.Join("configs", filename)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := defaults()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := defaults()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".patterns", "configs", filename)
}
