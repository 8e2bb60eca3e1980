// SPDX-License-Identifier: EPL-2.0

package zc

// Metadata carries descriptive fields attached to a signal (timestamp,
// species, notes, source path). It is opaque to the numeric operations and
// is shared, not copied, when a signal is sliced or windowed.
type Metadata map[string]any

// ZeroCross is a zero-cross signal: one (time, frequency) dot per detected
// zero-crossing event, optionally annotated with amplitude. Times are
// seconds from the start of the recording and must be sorted ascending;
// frequencies are Hz. The dot arrays are treated as immutable.
type ZeroCross struct {
	times      []float64
	freqs      []float64
	amplitudes []float64
	metadata   Metadata
}

// New builds a signal from parallel dot arrays. amplitudes may be nil for
// detectors that do not record amplitude. Returns ErrShapeMismatch unless
// freqs, and amplitudes when present, have the same length as times.
func New(times, freqs, amplitudes []float64, metadata Metadata) (*ZeroCross, error) {
	if len(freqs) != len(times) {
		return nil, ErrShapeMismatch
	}

	if amplitudes != nil && len(amplitudes) != len(times) {
		return nil, ErrShapeMismatch
	}

	return &ZeroCross{
		times:      times,
		freqs:      freqs,
		amplitudes: amplitudes,
		metadata:   metadata,
	}, nil
}

// Times returns the dot times in seconds.
func (z *ZeroCross) Times() []float64 { return z.times }

// Freqs returns the dot frequencies in Hz.
func (z *ZeroCross) Freqs() []float64 { return z.freqs }

// Amplitudes returns the amplitude series, or nil when the signal carries
// none.
func (z *ZeroCross) Amplitudes() []float64 { return z.amplitudes }

// Metadata returns the attached metadata map.
func (z *ZeroCross) Metadata() Metadata { return z.metadata }

// Len returns the number of dots.
func (z *ZeroCross) Len() int { return len(z.times) }

// HasAmplitude reports whether the signal carries an amplitude series.
func (z *ZeroCross) HasAmplitude() bool { return z.amplitudes != nil }

// Duration returns the time span covered by the dots in seconds, or 0 for
// signals with fewer than two dots.
func (z *ZeroCross) Duration() float64 {
	if len(z.times) < 2 {
		return 0
	}

	return z.times[len(z.times)-1] - z.times[0]
}

// Slice returns a new signal over the dot index range [from, to). The
// amplitude series is sliced alongside when present; metadata is shared
// with the receiver. Indices must satisfy 0 <= from <= to <= Len().
func (z *ZeroCross) Slice(from, to int) *ZeroCross {
	sliced := &ZeroCross{
		times:    z.times[from:to],
		freqs:    z.freqs[from:to],
		metadata: z.metadata,
	}

	if z.amplitudes != nil {
		sliced.amplitudes = z.amplitudes[from:to]
	}

	return sliced
}
