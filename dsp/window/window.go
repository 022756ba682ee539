// Package window generates the analysis windows used by the harmonic
// distortion measurements.
package window

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

// Supported window types. Rectangular is only useful as a reference.
const (
	TypeRectangular Type = iota
	TypeHann
	TypeBlackmanHarris4Term
	TypeFlatTop
)

var (
	hannCoeffs            = []float64{0.5, -0.5}
	blackmanHarris4Coeffs = []float64{0.35875, -0.48829, 0.14128, -0.01168}
	flatTopCoeffs         = []float64{0.21557895, -0.41663158, 0.277263158, -0.083578947, 0.006947368}
)

var errMismatchedLength = errors.New("samples and coefficients must have same length")

// Metadata holds spectral properties of a window type.
type Metadata struct {
	Name string
	// FirstMinimumBins is the main-lobe half width in FFT bins.
	FirstMinimumBins int
}

var metadataByType = map[Type]Metadata{
	TypeRectangular:         {Name: "rectangular", FirstMinimumBins: 1},
	TypeHann:                {Name: "hann", FirstMinimumBins: 2},
	TypeBlackmanHarris4Term: {Name: "blackman-harris", FirstMinimumBins: 4},
	TypeFlatTop:             {Name: "flattop", FirstMinimumBins: 5},
}

// Info returns static metadata for t.
func Info(t Type) Metadata {
	return metadataByType[t]
}

// String returns the window name.
func (t Type) String() string {
	if m, ok := metadataByType[t]; ok {
		return m.Name
	}

	return fmt.Sprintf("Type(%d)", int(t))
}

// Parse returns the window type with the given name.
func Parse(name string) (Type, error) {
	for t, m := range metadataByType {
		if m.Name == name {
			return t, nil
		}
	}

	return 0, fmt.Errorf("unknown window %q", name)
}

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic selects the periodic form (FFT framing) instead of the
// symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns window coefficients of the given length.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	den := float64(length - 1)
	if cfg.periodic || length == 1 {
		den = float64(length)
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = evalWindow(t, float64(i)/den)
	}

	return out
}

// ApplyCoefficientsInPlace multiplies samples by precomputed coeffs.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

// CoherentGain returns the mean coefficient value.
func CoherentGain(coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}

	return vecmath.Sum(coeffs) / float64(len(coeffs))
}

// EquivalentNoiseBandwidth returns the window ENBW in bins.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errors.New("window coefficients must not be empty")
	}

	sum := vecmath.Sum(coeffs)
	sumSq := vecmath.DotProduct(coeffs, coeffs)

	if sum == 0 {
		return 0, errors.New("window coherent gain is zero")
	}

	return float64(len(coeffs)) * sumSq / (sum * sum), nil
}

func evalWindow(t Type, x float64) float64 {
	switch t {
	case TypeHann:
		return cosineSum(x, hannCoeffs)
	case TypeBlackmanHarris4Term:
		return cosineSum(x, blackmanHarris4Coeffs)
	case TypeFlatTop:
		return cosineSum(x, flatTopCoeffs)
	default:
		return 1
	}
}

func cosineSum(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}
