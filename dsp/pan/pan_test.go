package pan

import (
	"math"
	"testing"
)

func TestConstantPowerSumIsUnity(t *testing.T) {
	for i := 0; i <= 2000; i++ {
		p := -1 + float64(i)/1000
		l, r := ConstantPower(p)
		if d := math.Abs(l*l + r*r - 1); d > 1e-6 {
			t.Fatalf("pan %v: l²+r² deviates by %v", p, d)
		}
	}
}

func TestConstantPowerCenter(t *testing.T) {
	l, r := ConstantPower(0)
	want := math.Sqrt2 / 2
	if math.Abs(l-want) > 1e-6 || math.Abs(r-want) > 1e-6 {
		t.Fatalf("center gains = (%v, %v), want (%v, %v)", l, r, want, want)
	}
}

func TestConstantPowerEdges(t *testing.T) {
	tests := []struct {
		name  string
		pos   float64
		left  float64
		right float64
	}{
		{name: "hard-left", pos: -1, left: 1, right: 0},
		{name: "hard-right", pos: 1, left: 0, right: 1},
		{name: "clamped-left", pos: -7, left: 1, right: 0},
		{name: "clamped-right", pos: 3, left: 0, right: 1},
		{name: "nan-center", pos: math.NaN(), left: math.Sqrt2 / 2, right: math.Sqrt2 / 2},
		{name: "neg-inf", pos: math.Inf(-1), left: 1, right: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, r := ConstantPower(tt.pos)
			if math.Abs(l-tt.left) > 1e-12 || math.Abs(r-tt.right) > 1e-12 {
				t.Fatalf("ConstantPower(%v) = (%v, %v), want (%v, %v)", tt.pos, l, r, tt.left, tt.right)
			}
		})
	}
}

func TestConstantPowerMonotonic(t *testing.T) {
	prevL, prevR := ConstantPower(-1)
	for i := 1; i <= 200; i++ {
		l, r := ConstantPower(-1 + float64(i)/100)
		if l > prevL || r < prevR {
			t.Fatalf("step %d: left must fall and right must rise", i)
		}
		prevL, prevR = l, r
	}
}

func TestGainsByLaw(t *testing.T) {
	tests := []struct {
		law         Law
		pos         float64
		left, right float64
	}{
		{LawConstantPower, 0, math.Sqrt2 / 2, math.Sqrt2 / 2},
		{LawConstantPower, 1, 0, 1},
		{LawLinear, 0, 0.5, 0.5},
		{LawLinear, -0.5, 0.75, 0.25},
		{LawLinear, 2, 0, 1},
		{LawLinear, math.NaN(), 0.5, 0.5},
		{Law(42), 0.3, 0, 0},
	}

	for _, tt := range tests {
		l, r := Gains(tt.law, tt.pos)
		if math.Abs(l-tt.left) > 1e-12 || math.Abs(r-tt.right) > 1e-12 {
			t.Fatalf("%v at %v: got (%v, %v), want (%v, %v)", tt.law, tt.pos, l, r, tt.left, tt.right)
		}
	}
}

func TestLawNames(t *testing.T) {
	for _, law := range []Law{LawConstantPower, LawLinear} {
		got, err := ParseLaw(law.String())
		if err != nil || got != law {
			t.Fatalf("ParseLaw(%q)=%v, %v", law.String(), got, err)
		}
	}

	if Law(42).String() != "unknown" {
		t.Fatalf("Law(42).String()=%q", Law(42).String())
	}

	if _, err := ParseLaw("balanced"); err == nil {
		t.Fatal("expected error for unknown law")
	}
}
