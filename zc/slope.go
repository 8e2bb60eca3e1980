// SPDX-License-Identifier: EPL-2.0

package zc

import "math"

// DefaultMaxSlope is the slope magnitude, in octaves per second, above
// which a computed slope is considered a detector artifact and zeroed.
const DefaultMaxSlope = 5000.0

// smoothWindow is the moving-average width used by Smooth.
const smoothWindow = 3

// ComputeSlopes calculates the instantaneous slope at each dot, in octaves
// per second, as the forward difference of log2 frequency over time.
// Slopes are absolute values; magnitudes above maxSlope and non-finite
// values are zeroed. The last slope is duplicated so the result has one
// value per dot. A frequency series of all zeros yields all-zero slopes.
func ComputeSlopes(times, freqs []float64, maxSlope float64) []float64 {
	n := len(times)
	switch n {
	case 0:
		return nil
	case 1:
		return []float64{0}
	}

	allZero := true

	for _, f := range freqs {
		if f != 0 {
			allZero = false

			break
		}
	}

	if allZero {
		return make([]float64, n)
	}

	octaves := make([]float64, n)

	for i, f := range freqs {
		o := math.Log2(f)
		if !isFinite(o) {
			o = 0
		}

		octaves[i] = o
	}

	slopes := make([]float64, n)

	for i := 0; i < n-1; i++ {
		slopes[i] = (octaves[i+1] - octaves[i]) / (times[i+1] - times[i])
	}

	// one slope per dot
	slopes[n-1] = slopes[n-2]

	for i, s := range slopes {
		s = math.Abs(s)
		if s > maxSlope || !isFinite(s) {
			s = 0
		}

		slopes[i] = s
	}

	return slopes
}

// Smooth applies a moving average of fixed width 3 to a slope series,
// padding the ends with the first and last averaged value so the result
// keeps the input length. Series of three values or fewer come back as all
// zeros. Non-finite inputs are treated as zero.
func Smooth(slopes []float64) []float64 {
	n := len(slopes)
	if n <= smoothWindow {
		return make([]float64, n)
	}

	sums := make([]float64, n+1)

	for i, s := range slopes {
		if !isFinite(s) {
			s = 0
		}

		sums[i+1] = sums[i] + s
	}

	averaged := make([]float64, n-smoothWindow+1)

	for i := range averaged {
		averaged[i] = (sums[i+smoothWindow] - sums[i]) / smoothWindow
	}

	smoothed := make([]float64, 0, n)
	smoothed = append(smoothed, averaged[0])
	smoothed = append(smoothed, averaged...)
	smoothed = append(smoothed, averaged[len(averaged)-1])

	return smoothed
}

// Slopes returns the per-dot slope series of the signal using
// DefaultMaxSlope, optionally smoothed.
func (z *ZeroCross) Slopes(smoothed bool) []float64 {
	slopes := ComputeSlopes(z.times, z.freqs, DefaultMaxSlope)
	if smoothed {
		slopes = Smooth(slopes)
	}

	return slopes
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
