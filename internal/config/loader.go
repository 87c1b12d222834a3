package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the user and local config directories.
const FileName = "runner.yaml"

// Load loads the runner configuration.
// Search order: customPath -> ~/.dino/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Files are applied on top of the defaults, so partial files are allowed.
func Load(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg RunnerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dino", "configs", filename)
}

// Validate reports every geometry or physics value the simulation cannot run with.
func (c RunnerConfig) Validate() error {
	var errs []error
	f := c.Field

	if f.Width < 2 {
		errs = append(errs, fmt.Errorf("field.width must be at least 2, got %d", f.Width))
	}
	if f.PlayerColumn < 0 || f.PlayerColumn >= f.Width {
		errs = append(errs, fmt.Errorf("field.player_column %d is outside the field width %d", f.PlayerColumn, f.Width))
	}
	if f.Floor < c.Spawn.MaxRise {
		errs = append(errs, fmt.Errorf("field.floor %d is lower than spawn.max_rise %d", f.Floor, c.Spawn.MaxRise))
	}
	if f.Floor+1 >= f.Height {
		errs = append(errs, fmt.Errorf("field.floor %d leaves no room for the ground line in height %d", f.Floor, f.Height))
	}
	if f.RetireDistance < 0 {
		errs = append(errs, fmt.Errorf("field.retire_distance must not be negative, got %d", f.RetireDistance))
	}
	if f.Lookahead <= 0 || f.Lookahead > 1 {
		errs = append(errs, fmt.Errorf("field.lookahead must be in (0, 1], got %g", f.Lookahead))
	}

	p := c.Physics
	if p.StepMillis <= 0 {
		errs = append(errs, fmt.Errorf("physics.step_ms must be positive, got %g", p.StepMillis))
	}
	if p.MaxFallSpeed <= 0 {
		errs = append(errs, fmt.Errorf("physics.max_fall_speed must be positive, got %d", p.MaxFallSpeed))
	}
	if p.JumpVelocity >= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_velocity must be negative (upward), got %d", p.JumpVelocity))
	}

	s := c.Spawn
	if s.MaxRise < 0 {
		errs = append(errs, fmt.Errorf("spawn.max_rise must not be negative, got %d", s.MaxRise))
	}
	if s.SpeedPerPoint < 0 {
		errs = append(errs, fmt.Errorf("spawn.speed_per_point must not be negative, got %g", s.SpeedPerPoint))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid runner config: %w", errors.Join(errs...))
	}
	return nil
}

// FitTo shrinks the playfield so it fits a terminal of the given size.
// The floor keeps its distance from the top; it only moves up when the
// ground line would fall off the bottom of the screen.
func (c RunnerConfig) FitTo(termW, termH int) RunnerConfig {
	if termW > 0 && termW < c.Field.Width {
		c.Field.Width = termW
	}
	if termH > 0 && termH < c.Field.Height {
		c.Field.Height = termH
	}
	if c.Field.Floor > c.Field.Height-2 {
		c.Field.Floor = c.Field.Height - 2
	}
	if c.Field.PlayerColumn >= c.Field.Width {
		c.Field.PlayerColumn = c.Field.Width / 8
	}
	return c
}
