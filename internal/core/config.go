// Package core provides fundamental types shared by the platform layer:
// runtime configuration, input intents and the screen buffer. It has no
// external dependencies so the game logic stays pure and testable.
package core

import "time"

// RuntimeConfig contains configuration passed to the platform at startup.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 30)
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// TickInterval returns the wall-clock duration of one simulation tick.
// This is the dt handed to the game core on every tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 30
	}
	return time.Second / time.Duration(rate)
}
