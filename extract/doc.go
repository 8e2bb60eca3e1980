// SPDX-License-Identifier: EPL-2.0

// Package extract turns recording files into zero-cross signals through
// background extraction tasks.
//
// Decoding itself is pluggable: a Decoder reads one file format and
// returns raw dot arrays, and Config wires one decoder for legacy
// zero-cross files (.zc and the '#'-numbered Anabat scheme) and one for
// full-spectrum .wav recordings. The package dispatches by extension,
// augments the decoded metadata with the source path and filename, and
// validates the arrays into a zc.ZeroCross.
//
// Tasks follow the fire-and-forget model of interactive analysis
// front-ends: Start returns immediately, the work runs on its own
// goroutine, and the callback always receives exactly one result, nil
// on failure. Failures never propagate as errors to the caller; they
// are logged with the offending path. A Config.Deliver executor routes
// callbacks onto a UI event loop when one exists.
package extract
