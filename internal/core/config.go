package core

// RuntimeConfig contains settings supplied by the platform at startup.
// Surfaces use it to size their buffers and pace their tick loop.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Surface ticks per second (default 60)
	Seed     int64 // RNG seed for obstacle generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  50,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickMillis returns the nominal duration of one tick in milliseconds.
func (c RuntimeConfig) TickMillis() float64 {
	if c.TickRate <= 0 {
		return 1000.0 / 60
	}
	return 1000.0 / float64(c.TickRate)
}
