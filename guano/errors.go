// SPDX-License-Identifier: EPL-2.0

package guano

import "errors"

// ErrMalformedBlock is returned by Parse for input that is not a valid
// serialized metadata block.
var ErrMalformedBlock = errors.New("malformed metadata block")

// ErrBadAmplitudes is returned by DecodeAmplitudes for payloads that are
// not a whole number of little-endian float64 values.
var ErrBadAmplitudes = errors.New("amplitude payload is not a whole number of float64 values")
