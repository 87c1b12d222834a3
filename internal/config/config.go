// Package config provides YAML-based configuration loading for the runner:
// playfield geometry, physics constants and obstacle spawn ranges.
package config

// RunnerConfig contains all tunable parameters of the runner.
type RunnerConfig struct {
	Field   FieldConfig   `yaml:"field"`
	Physics PhysicsConfig `yaml:"physics"`
	Spawn   SpawnConfig   `yaml:"spawn"`
}

// FieldConfig defines the playfield geometry in cells.
type FieldConfig struct {
	Width          int     `yaml:"width"`           // Visible width in columns
	Height         int     `yaml:"height"`          // Visible height in rows
	Floor          int     `yaml:"floor"`           // Ground row; the ground line is drawn below it
	PlayerColumn   int     `yaml:"player_column"`   // Fixed screen column of the player
	RetireDistance int     `yaml:"retire_distance"` // Columns behind the player at which obstacles score
	Lookahead      float64 `yaml:"lookahead"`       // Fraction of width kept populated ahead of the player
}

// PhysicsConfig defines fixed-step physics parameters.
type PhysicsConfig struct {
	StepMillis   float64 `yaml:"step_ms"`        // Wall time per physics step
	MaxFallSpeed int     `yaml:"max_fall_speed"` // Gravity stops accelerating at this velocity
	JumpVelocity int     `yaml:"jump_velocity"`  // Upward impulse (negative = up)
}

// SpawnConfig defines the random ranges used when spawning obstacles.
type SpawnConfig struct {
	MaxRise       int     `yaml:"max_rise"`        // Highest obstacle row above the floor
	MinSpeed      float64 `yaml:"min_speed"`       // Lower bound of the speed draw
	SpeedPerPoint float64 `yaml:"speed_per_point"` // Upper bound of the speed draw per point of score
}
