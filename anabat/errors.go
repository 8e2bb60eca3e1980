// SPDX-License-Identifier: EPL-2.0

package anabat

import "errors"

// ErrHeaderNotWritten is returned by WriteIntervals when WriteHeader has
// not been called yet.
var ErrHeaderNotWritten = errors.New("header must be written before intervals")
