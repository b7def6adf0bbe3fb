package core

// RuntimeConfig contains configuration passed to demos at initialization.
// Demos use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic runs
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Dt returns the fixed simulation step in seconds.
func (c RuntimeConfig) Dt() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// DemoState is the per-tick status a demo reports to the platform.
type DemoState struct {
	Frames   int  // Ticks simulated since the last Reset
	Entities int  // Live leaf entities in the scene
	Shared   int  // Distinct shared resources built so far
	Paused   bool // Whether the simulation is paused
}

// StepResult is returned by Demo.Step() after each simulation tick.
type StepResult struct {
	State DemoState
}
