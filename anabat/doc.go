// SPDX-License-Identifier: EPL-2.0

// Package anabat writes zero-cross signals in the Anabat 132 file
// format, the de-facto interchange format of the zero-cross bat-call
// ecosystem.
//
// An Anabat 132 file is a fixed 0x150-byte header (descriptive text
// fields, a data info table, a timestamp block) followed by the dot
// data as delta-coded microsecond intervals between zero crossings.
// Small deltas take one byte; larger intervals take two to four bytes
// with a tag in the high bits. The byte layout is owned by the legacy
// ecosystem and is reproduced here bit-for-bit, including truncation
// (not rounding) of fractional microseconds.
//
// The format predates amplitude-recording detectors, so Save embeds the
// amplitude series of amplitude-bearing signals as a GUANO metadata
// block between header and data, where legacy readers ignore it.
//
// Save writes synchronously; SaveAsync wraps it in a fire-and-forget
// background task for interactive callers.
package anabat
