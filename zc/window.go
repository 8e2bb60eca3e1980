// SPDX-License-Identifier: EPL-2.0

package zc

import (
	"log/slog"
	"sort"
)

// bisect returns the insertion index for v in the sorted slice xs, after
// any run of elements equal to v.
func bisect(xs []float64, v float64) int {
	return sort.Search(len(xs), func(i int) bool { return xs[i] > v })
}

// Window extracts the dots visible in a view of the given duration in
// seconds starting at start, as a new signal with shared metadata. Signals
// with fewer than two dots are returned as-is.
//
// When the recording is shorter than the window, the whole recording is
// used. When the window would run past the final dot, its start is pulled
// back so the right edge lands on the final dot.
//
// The result is padded with synthetic boundary dots so that, except for
// the degenerate case, it always spans exactly [start, start+duration]:
// the leading pad reuses the start value as a frequency placeholder, the
// trailing pad carries frequency 0. The trailing pad keeps frequency 0
// even in the pulled-back end-of-recording case, for compatibility with
// legacy renderings. Amplitude pads mirror the frequency pads.
func (z *ZeroCross) Window(start, duration float64) *ZeroCross {
	n := len(z.times)
	if n < 2 {
		return z
	}

	last := z.times[n-1]

	var from, to int

	switch {
	case last-start >= duration:
		from, to = bisect(z.times, start), bisect(z.times, start+duration)
	case duration >= last:
		from, to = 0, n-1
	default:
		start = last - duration
		from, to = bisect(z.times, start), n-1
	}

	times := z.times[from:to]
	freqs := z.freqs[from:to]

	var amplitudes []float64
	if z.amplitudes != nil {
		amplitudes = z.amplitudes[from:to]
	}

	end := start + duration
	padFront := len(times) == 0 || times[0] > start
	padBack := len(times) == 0 || times[len(times)-1] < end

	size := len(times)
	if padFront {
		size++
	}

	if padBack {
		size++
	}

	windowed := &ZeroCross{
		times:    make([]float64, 0, size),
		freqs:    make([]float64, 0, size),
		metadata: z.metadata,
	}

	if padFront {
		windowed.times = append(windowed.times, start)
		windowed.freqs = append(windowed.freqs, start)
	}

	windowed.times = append(windowed.times, times...)
	windowed.freqs = append(windowed.freqs, freqs...)

	if padBack {
		windowed.times = append(windowed.times, end)
		windowed.freqs = append(windowed.freqs, 0)
	}

	if z.amplitudes != nil {
		windowed.amplitudes = make([]float64, 0, size)

		if padFront {
			windowed.amplitudes = append(windowed.amplitudes, start)
		}

		windowed.amplitudes = append(windowed.amplitudes, amplitudes...)

		if padBack {
			windowed.amplitudes = append(windowed.amplitudes, 0)
		}
	}

	slog.Debug("windowed signal",
		"window_secs", duration,
		"start", start,
		"dots", len(windowed.times),
	)

	return windowed
}
