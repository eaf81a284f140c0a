package core

// RuntimeConfig contains configuration passed to the simulation at start-up by the platform.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Frame requests per second (default 60)
	Seed     int64  // RNG seed; 0 means use current time in platform layer
	Player   string // Validated player name, empty when unknown
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}
