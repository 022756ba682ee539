package strip

import (
	"errors"
	"math"
	"testing"
)

func TestEngineOptions(t *testing.T) {
	shared := NewControls(DefaultControlState())

	tests := []struct {
		name    string
		opts    []Option
		wantErr bool
	}{
		{"defaults", nil, false},
		{"nil option", []Option{nil}, false},
		{"ramp zero", []Option{WithRampTime(0)}, false},
		{"ramp 10ms", []Option{WithRampTime(0.01)}, false},
		{"ramp negative", []Option{WithRampTime(-1)}, true},
		{"ramp too long", []Option{WithRampTime(11)}, true},
		{"ramp nan", []Option{WithRampTime(math.NaN())}, true},
		{"drive", []Option{WithSaturationDrive(2)}, false},
		{"drive zero", []Option{WithSaturationDrive(0)}, true},
		{"drive huge", []Option{WithSaturationDrive(1000)}, true},
		{"controls", []Option{WithControls(shared)}, false},
		{"controls nil", []Option{WithControls(nil)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEngine(tt.opts...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err=%v, wantErr=%v", err, tt.wantErr)
			}

			if err != nil && !errors.Is(err, ErrInvalidOption) {
				t.Fatalf("error %v does not wrap ErrInvalidOption", err)
			}
		})
	}
}

func TestWithControlsIsShared(t *testing.T) {
	shared := NewControls(DefaultControlState())

	e, err := NewEngine(WithControls(shared))
	if err != nil {
		t.Fatal(err)
	}

	shared.SetFaderDB(-9)
	if e.FaderDB() != -9 || e.Controls() != shared {
		t.Fatal("engine does not read the shared controls")
	}
}
