package character

import (
	"fmt"
	"math"
)

// DefaultDrive is the console saturation drive.
const DefaultDrive = 1.02

const maxDrive = 100.0

// Saturator is a normalized tanh waveshaper:
//
//	y = tanh(x*drive) / tanh(drive)
//
// so a full-scale input maps to full scale. The curve is odd, monotonic and
// bounded by 1/tanh(drive).
type Saturator struct {
	drive   float64
	invNorm float64
}

// NewSaturator returns a saturator with the given drive, which must be in
// (0, 100].
func NewSaturator(drive float64) (*Saturator, error) {
	if !(drive > 0 && drive <= maxDrive) {
		return nil, fmt.Errorf("character: drive must be in (0, %g]: %f", maxDrive, drive)
	}

	return &Saturator{
		drive:   drive,
		invNorm: 1 / tanhPositive(drive),
	}, nil
}

// Drive returns the configured drive.
func (s *Saturator) Drive() float64 {
	return s.drive
}

// Ceiling returns the output bound 1/tanh(drive).
func (s *Saturator) Ceiling() float64 {
	return s.invNorm
}

// Shape returns the saturated value of x.
func (s *Saturator) Shape(x float64) float64 {
	y := tanhPositive(math.Abs(x)*s.drive) * s.invNorm
	return math.Copysign(y, x)
}

// ProcessInPlace shapes every sample of buf.
func (s *Saturator) ProcessInPlace(buf []float64) {
	for i, x := range buf {
		buf[i] = s.Shape(x)
	}
}
