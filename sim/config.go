package sim

import (
	"os"
	"strconv"
)

// Config carries the simulator's knobs. Values come from the
// environment; cmd/dotgames loads a .env file into it first.
type Config struct {
	// AudioEnabled switches the beeper on.
	AudioEnabled bool
	// Intensity is the LED brightness the host applies after the
	// driver's own init, 0-15.
	Intensity uint8
	// SampleRate is the beeper's output rate in Hz.
	SampleRate int
}

// DefaultConfig returns the out-of-the-box settings.
func DefaultConfig() *Config {
	return &Config{
		AudioEnabled: true,
		Intensity:    12,
		SampleRate:   44100,
	}
}

// LoadConfig reads the DOTGAMES_* environment variables over the
// defaults. Malformed values are ignored.
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("DOTGAMES_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.AudioEnabled = val
		}
	}

	if intensity := os.Getenv("DOTGAMES_INTENSITY"); intensity != "" {
		if val, err := strconv.Atoi(intensity); err == nil && val >= 0 && val <= 15 {
			cfg.Intensity = uint8(val)
		}
	}

	if rate := os.Getenv("DOTGAMES_SAMPLE_RATE"); rate != "" {
		if val, err := strconv.Atoi(rate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
