// SPDX-License-Identifier: EPL-2.0

package zc

// DefaultPulseGap is the inter-dot time gap in seconds beyond which a new
// pulse is considered to begin.
const DefaultPulseGap = 0.01

// PulseStarts returns the indices of dots that begin a new pulse: every
// dot whose time distance from the previous dot is strictly greater than
// timeGap seconds. The first dot of the signal is not reported.
func (z *ZeroCross) PulseStarts(timeGap float64) []int {
	var starts []int

	for i := 1; i < len(z.times); i++ {
		if z.times[i]-z.times[i-1] > timeGap {
			starts = append(starts, i)
		}
	}

	return starts
}
