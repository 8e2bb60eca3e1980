// SPDX-License-Identifier: EPL-2.0

package zc

import "errors"

// ErrShapeMismatch is returned by New when the dot arrays disagree in
// length.
var ErrShapeMismatch = errors.New("times, freqs, and amplitudes must have equal lengths")
