package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Field: FieldConfig{
			Width:          80,
			Height:         50,
			Floor:          40,
			PlayerColumn:   10,
			RetireDistance: 5,
			Lookahead:      0.9,
		},
		Physics: PhysicsConfig{
			StepMillis:   35,
			MaxFallSpeed: 10,
			JumpVelocity: -3,
		},
		Spawn: SpawnConfig{
			MaxRise:       5,
			MinSpeed:      -1.5,
			SpeedPerPoint: 0.02,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
