// SPDX-License-Identifier: EPL-2.0

package anabat

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"time"

	"gozc/guano"
)

// Anabat 132 file layout. The fixed header occupies 0x150 bytes; an
// embedded GUANO metadata block, when present, sits between the fixed
// header and the interval data.
const (
	fileType        = 132
	dataInfoPointer = 0x011A
	headerSize      = 0x0150

	// data info table defaults
	timeFactor = 25000 // dimensionless time factor, 2.5e4 * 1e-6 s ticks
	vres       = 0x52  // vertical resolution flag used by legacy software

	// text header field widths
	tapeLen    = 8
	dateLen    = 8
	locLen     = 40
	speciesLen = 50
	specLen    = 16
	note1Len   = 73
	note2Len   = 80
	idLen      = 6
)

// Header holds the descriptive fields written into the fixed-size Anabat
// 132 text header. String fields are space-padded and silently truncated
// to their slot widths. A zero Timestamp writes an all-zero timestamp
// block. Guano, when non-nil, is embedded after the fixed header.
type Header struct {
	Timestamp time.Time
	Tape      string
	Loc       string
	Species   string
	Spec      string
	Note1     string
	Note2     string
	ID        string
	DivRatio  uint8
	Guano     *guano.Block
}

// Writer emits a zero-cross signal in Anabat 132 format: WriteHeader
// once, then WriteIntervals with the microsecond zero-cross intervals,
// in one or more calls.
type Writer struct {
	w             io.Writer
	headerWritten bool
	byteCount     int
	intervalCount int
	lengthMicros  uint64
	prev          uint32
	hasPrev       bool
}

// NewWriter returns a Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// ByteCount returns the number of bytes written so far.
func (wr *Writer) ByteCount() int { return wr.byteCount }

// IntervalCount returns the number of intervals consumed so far,
// including any too large to encode.
func (wr *Writer) IntervalCount() int { return wr.intervalCount }

// Length returns the summed duration of the intervals written so far.
func (wr *Writer) Length() time.Duration {
	return time.Duration(wr.lengthMicros) * time.Microsecond
}

// WriteHeader writes the fixed 0x150-byte header followed by the
// embedded GUANO block, if any.
func (wr *Writer) WriteHeader(h Header) error {
	buf := make([]byte, headerSize)

	binary.LittleEndian.PutUint16(buf[0x000:], dataInfoPointer)
	buf[0x003] = fileType

	putPadded(buf[0x006:], h.Tape, tapeLen)

	date := ""
	if !h.Timestamp.IsZero() {
		date = h.Timestamp.Format("20060102")
	}

	putPadded(buf[0x00E:], date, dateLen)
	putPadded(buf[0x016:], h.Loc, locLen)
	putPadded(buf[0x03E:], h.Species, speciesLen)
	putPadded(buf[0x070:], h.Spec, specLen)
	putPadded(buf[0x080:], h.Note1, note1Len)
	putPadded(buf[0x0C9:], h.Note2, note2Len)

	var embedded []byte
	if h.Guano != nil {
		embedded = h.Guano.Bytes()
	}

	// data info table
	binary.LittleEndian.PutUint16(buf[0x11A:], uint16(headerSize+len(embedded)))
	binary.LittleEndian.PutUint16(buf[0x11C:], timeFactor)
	buf[0x11E] = h.DivRatio
	buf[0x11F] = vres

	if ts := h.Timestamp; !ts.IsZero() {
		binary.LittleEndian.PutUint16(buf[0x120:], uint16(ts.Year()))
		buf[0x122] = uint8(ts.Month())
		buf[0x123] = uint8(ts.Day())
		buf[0x124] = uint8(ts.Hour())
		buf[0x125] = uint8(ts.Minute())
		buf[0x126] = uint8(ts.Second())

		micros := ts.Nanosecond() / 1000
		buf[0x127] = uint8(micros / 10000)
		binary.LittleEndian.PutUint16(buf[0x128:], uint16(micros%10000))
	}

	putPadded(buf[0x12A:], h.ID, idLen)
	// 0x130..0x14F: GPS position block, left blank

	if _, err := wr.w.Write(buf); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	wr.byteCount = len(buf)

	if len(embedded) > 0 {
		if _, err := wr.w.Write(embedded); err != nil {
			return fmt.Errorf("writing embedded metadata: %w", err)
		}

		wr.byteCount += len(embedded)
	}

	wr.headerWritten = true

	return nil
}

// WriteIntervals appends microsecond zero-cross intervals to the data
// body, delta-coded against the previously written interval. Intervals
// of 0x20000000us or more cannot be represented; they are logged and
// skipped but still count as the previous interval for delta coding.
func (wr *Writer) WriteIntervals(intervals []uint32) error {
	if !wr.headerWritten {
		return ErrHeaderNotWritten
	}

	var scratch [4]byte

	for _, interval := range intervals {
		wr.intervalCount++
		wr.lengthMicros += uint64(interval)

		diff := int64(interval) - int64(wr.prev)

		var n int

		switch {
		case wr.hasPrev && diff > -64 && diff < 64:
			// 7-bit two's-complement delta, high bit clear
			scratch[0] = byte(diff) & 0x7F
			n = 1
		case interval < 0x2000:
			scratch[0] = 0x80 | byte(interval>>8)
			scratch[1] = byte(interval)
			n = 2
		case interval < 0x200000:
			scratch[0] = 0xA0 | byte(interval>>16)
			scratch[1] = byte(interval >> 8)
			scratch[2] = byte(interval)
			n = 3
		case interval < 0x20000000:
			scratch[0] = 0xC0 | byte(interval>>24)
			scratch[1] = byte(interval >> 16)
			scratch[2] = byte(interval >> 8)
			scratch[3] = byte(interval)
			n = 4
		default:
			slog.Warn("interval too large to encode, skipping",
				"interval_us", interval,
			)

			wr.prev, wr.hasPrev = interval, true

			continue
		}

		if _, err := wr.w.Write(scratch[:n]); err != nil {
			return fmt.Errorf("writing interval: %w", err)
		}

		wr.byteCount += n
		wr.prev, wr.hasPrev = interval, true
	}

	return nil
}

// putPadded copies s into a fixed-width slot, space-padded and truncated
// to width bytes.
func putPadded(dst []byte, s string, width int) {
	for i := 0; i < width; i++ {
		dst[i] = ' '
	}

	if len(s) > width {
		s = s[:width]
	}

	copy(dst, s)
}
