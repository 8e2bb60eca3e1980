// SPDX-License-Identifier: EPL-2.0

package guano

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"math"
)

// EncodeAmplitudes packs an amplitude series into the AmplitudesKey field
// value: standard base64 over the little-endian float64 bytes.
func EncodeAmplitudes(amplitudes []float64) string {
	raw := make([]byte, 8*len(amplitudes))

	for i, a := range amplitudes {
		binary.LittleEndian.PutUint64(raw[i*8:], math.Float64bits(a))
	}

	return base64.StdEncoding.EncodeToString(raw)
}

// DecodeAmplitudes unpacks an AmplitudesKey field value back into an
// amplitude series, bit-for-bit.
func DecodeAmplitudes(value string) ([]float64, error) {
	raw, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("decoding amplitude payload: %w", err)
	}

	if len(raw)%8 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrBadAmplitudes, len(raw))
	}

	amplitudes := make([]float64, len(raw)/8)

	for i := range amplitudes {
		amplitudes[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[i*8:]))
	}

	return amplitudes, nil
}
