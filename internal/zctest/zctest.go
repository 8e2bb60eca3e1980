// SPDX-License-Identifier: EPL-2.0

// Package zctest generates synthetic zero-cross dot series for tests.
package zctest

// OctaveSweep returns n dots spaced dt seconds apart whose frequency
// doubles at every dot, starting from f0 Hz. Its slope is exactly 1/dt
// octaves per second everywhere.
func OctaveSweep(n int, f0, dt float64) (times, freqs []float64) {
	times = make([]float64, n)
	freqs = make([]float64, n)
	f := f0

	for i := 0; i < n; i++ {
		times[i] = float64(i) * dt
		freqs[i] = f
		f *= 2
	}

	return times, freqs
}

// ConstantTone returns n dots spaced dt seconds apart at a fixed
// frequency.
func ConstantTone(n int, freq, dt float64) (times, freqs []float64) {
	times = make([]float64, n)
	freqs = make([]float64, n)

	for i := 0; i < n; i++ {
		times[i] = float64(i) * dt
		freqs[i] = freq
	}

	return times, freqs
}

// PulseTrain returns dot times for a series of pulses. Each pulse holds
// dots dots spaced dt seconds apart; consecutive pulses are separated by
// gap seconds of silence.
func PulseTrain(pulses, dots int, dt, gap float64) []float64 {
	times := make([]float64, 0, pulses*dots)
	t := 0.0

	for p := 0; p < pulses; p++ {
		if p > 0 {
			t += gap
		}

		for d := 0; d < dots; d++ {
			times = append(times, t)
			t += dt
		}
	}

	return times
}

// Ramp returns n values evenly stepped from start by step.
func Ramp(n int, start, step float64) []float64 {
	values := make([]float64, n)

	for i := 0; i < n; i++ {
		values[i] = start + float64(i)*step
	}

	return values
}
