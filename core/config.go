package core

import (
	"strconv"

	"github.com/gobuffalo/envy"
)

// Configuration defines the tool's global configuration
type Configuration struct {
	Display DisplayConfiguration
}

// DisplayConfiguration is used to configure the window and its context
type DisplayConfiguration struct {
	// FullScreenDisplay selects the monitor to engage full screen on.
	// -1 stays windowed.
	FullScreenDisplay int

	Width  int
	Height int

	// RefreshRate is a refresh rate hint, applied only in full screen
	RefreshRate float64
}

// DefaultConfiguration returns the stock 8K configuration, with any
// TEARING_* environment overrides applied. A malformed override is
// ignored in favor of the built-in default.
func DefaultConfiguration() Configuration {
	return Configuration{
		Display: DisplayConfiguration{
			FullScreenDisplay: envInt("TEARING_FULLSCREEN_DISPLAY", 1),
			Width:             envInt("TEARING_WIDTH", 7680),
			Height:            envInt("TEARING_HEIGHT", 4320),
			RefreshRate:       envFloat("TEARING_FPS", 60.0),
		},
	}
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(envy.Get(key, strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}
	return v
}

func envFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(envy.Get(key, strconv.FormatFloat(fallback, 'f', -1, 64)), 64)
	if err != nil {
		return fallback
	}
	return v
}
