// SPDX-License-Identifier: EPL-2.0

package playback

import "errors"

var (
	// ErrNotWav marks files that are not valid RIFF/WAVE audio.
	ErrNotWav = errors.New("not a valid wav file")

	// ErrNotMono marks recordings with more than one channel.
	ErrNotMono = errors.New("only mono recordings are supported")

	// ErrUnsupportedDepth marks recordings that are not 16-bit PCM.
	ErrUnsupportedDepth = errors.New("only 16-bit PCM recordings are supported")

	// ErrBadTimeExpansion marks non-positive time-expansion factors.
	ErrBadTimeExpansion = errors.New("time-expansion factor must be positive")
)
