// SPDX-License-Identifier: EPL-2.0

package zc

import (
	"slices"
	"testing"

	"gozc/internal/zctest"
)

func TestPulseStarts(t *testing.T) {
	t.Parallel()

	// Three pulses of four dots each, 50ms of silence between pulses.
	times := zctest.PulseTrain(3, 4, 0.001, 0.05)
	freqs := make([]float64, len(times))

	z, err := New(times, freqs, nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got := z.PulseStarts(DefaultPulseGap)
	want := []int{4, 8}

	if !slices.Equal(got, want) {
		t.Errorf("PulseStarts() = %v, want %v", got, want)
	}
}

func TestPulseStarts_SinglePulse(t *testing.T) {
	t.Parallel()

	times, freqs := zctest.ConstantTone(20, 40000, 0.001)

	z, err := New(times, freqs, nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got := z.PulseStarts(DefaultPulseGap); len(got) != 0 {
		t.Errorf("PulseStarts() = %v, want none within one pulse", got)
	}
}

func TestPulseStarts_GapNotStrictlyGreater(t *testing.T) {
	t.Parallel()

	// A gap exactly equal to the threshold does not start a new pulse.
	times := []float64{0, 0.5, 1.0}
	freqs := []float64{40000, 40000, 40000}

	z, err := New(times, freqs, nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got := z.PulseStarts(0.5); len(got) != 0 {
		t.Errorf("PulseStarts(0.5) = %v, want none for exact-threshold gaps", got)
	}
}

func TestPulseStarts_Degenerate(t *testing.T) {
	t.Parallel()

	z, err := New(nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got := z.PulseStarts(DefaultPulseGap); len(got) != 0 {
		t.Errorf("PulseStarts() = %v, want none for empty signal", got)
	}
}
