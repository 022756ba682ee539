package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t unless got and want have the same length
// and every pair of samples is within eps.
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("got %d samples, want %d", len(got), len(want))
		return
	}

	for i := range got {
		if d := math.Abs(got[i] - want[i]); d > eps || math.IsNaN(d) {
			t.Fatalf("sample %d: got %v, want %v (|diff| %g > %g)", i, got[i], want[i], d, eps)
			return
		}
	}
}

// RequireFinite fails t at the first NaN or Inf sample.
func RequireFinite(t testing.TB, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("sample %d is not finite: %v", i, v)
			return
		}
	}
}

// RequireSilent fails t at the first non-zero sample.
func RequireSilent(t testing.TB, data []float64) {
	t.Helper()

	for i, v := range data {
		if v != 0 {
			t.Fatalf("sample %d = %v, want silence", i, v)
			return
		}
	}
}
