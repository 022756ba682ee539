package strip

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-strip/dsp/character"
	"github.com/cwbudde/algo-strip/dsp/smooth"
)

const maxRampTime = 10.0

// Option configures an Engine at construction.
type Option func(*config) error

type config struct {
	rampTime float64
	drive    float64
	controls *Controls
}

func defaultConfig() config {
	return config{
		rampTime: smooth.DefaultRampTime,
		drive:    character.DefaultDrive,
	}
}

// WithRampTime sets the smoothing ramp for fader, pan and mute in seconds.
// Zero disables smoothing.
func WithRampTime(seconds float64) Option {
	return func(cfg *config) error {
		if !(seconds >= 0 && seconds <= maxRampTime) {
			return fmt.Errorf("%w: ramp time must be in [0, %g]: %f", ErrInvalidOption, maxRampTime, seconds)
		}

		cfg.rampTime = seconds

		return nil
	}
}

// WithSaturationDrive sets the saturation drive.
func WithSaturationDrive(drive float64) Option {
	return func(cfg *config) error {
		if drive <= 0 || math.IsNaN(drive) || math.IsInf(drive, 0) {
			return fmt.Errorf("%w: saturation drive must be > 0: %f", ErrInvalidOption, drive)
		}

		cfg.drive = drive

		return nil
	}
}

// WithControls shares an existing Controls with the engine, typically one
// owned by the control thread.
func WithControls(c *Controls) Option {
	return func(cfg *config) error {
		if c == nil {
			return fmt.Errorf("%w: controls must not be nil", ErrInvalidOption)
		}

		cfg.controls = c

		return nil
	}
}
