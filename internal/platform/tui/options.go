package tui

import "github.com/velmoga/skyrun/internal/sim"

// Options configures a terminal session.
type Options struct {
	Width  int // Screen width in characters
	Height int // Screen height in characters
	FPS    int // Simulation ticks per second
	Seed   int64
	Game   sim.Config
}

// DefaultOptions returns Options with sensible defaults.
// A zero Seed means the session picks a time-based one.
func DefaultOptions() Options {
	return Options{
		Width:  80,
		Height: 24,
		FPS:    60,
		Game:   sim.DefaultConfig(),
	}
}
