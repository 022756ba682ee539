package main

import (
	"bytes"
	"strings"
	"testing"
)

func runCmd(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer

	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		t.Fatalf("stripinfo %v: %v\n%s", args, err, out.String())
	}

	return out.String()
}

func TestPanTable(t *testing.T) {
	out := runCmd(t, "pan", "--steps", "2")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("want header + 3 rows, got %d lines:\n%s", len(lines), out)
	}

	if !strings.Contains(lines[2], "0.7071") || !strings.Contains(lines[2], "-3.01") {
		t.Fatalf("center row missing -3 dB gains: %q", lines[2])
	}

	if !strings.Contains(lines[1], "-inf") {
		t.Fatalf("hard-left row should show -inf on the right: %q", lines[1])
	}
}

func TestPanLinearLaw(t *testing.T) {
	out := runCmd(t, "pan", "--steps", "2", "--law", "linear")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 || !strings.Contains(lines[2], "0.5000") || !strings.Contains(lines[2], "-6.02") {
		t.Fatalf("linear center row should be -6 dB:\n%s", out)
	}
}

func TestPanRejectsZeroSteps(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"pan", "--steps", "0"})

	if err := root.Execute(); err == nil {
		t.Fatal("expected error for --steps 0")
	}
}

func TestResponseTable(t *testing.T) {
	out := runCmd(t, "response", "--rate", "44100")

	if !strings.Contains(out, "Magnitude (dB)") {
		t.Fatalf("missing header:\n%s", out)
	}

	if strings.Contains(out, "\n  22050") || strings.Contains(out, " 25000") {
		t.Fatalf("frequencies at or above Nyquist printed:\n%s", out)
	}
}

func TestResponseInvalidRate(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"response", "--rate", "0"})

	if err := root.Execute(); err == nil {
		t.Fatal("expected error for zero rate")
	}
}

func TestTHDReport(t *testing.T) {
	out := runCmd(t, "thd", "--amp", "0.5", "--emulation")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("want header + 2 rows, got:\n%s", out)
	}

	for _, row := range lines[1:] {
		if !strings.HasPrefix(strings.TrimSpace(row), "L") && !strings.HasPrefix(strings.TrimSpace(row), "R") {
			t.Fatalf("unexpected row %q", row)
		}
	}
}

func TestTHDWindowFlag(t *testing.T) {
	out := runCmd(t, "thd", "--window", "blackman-harris")
	if !strings.Contains(out, "Fundamental") {
		t.Fatalf("missing fundamental column:\n%s", out)
	}

	for _, name := range []string{"rectangular", "kaiser"} {
		root := newRootCmd()
		root.SetOut(&bytes.Buffer{})
		root.SetErr(&bytes.Buffer{})
		root.SetArgs([]string{"thd", "--window", name})

		if err := root.Execute(); err == nil {
			t.Fatalf("expected error for --window %s", name)
		}
	}
}
