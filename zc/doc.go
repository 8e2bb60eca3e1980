// SPDX-License-Identifier: EPL-2.0

// Package zc implements the zero-cross signal value and its numeric
// operations.
//
// A ZeroCross is a sparse series of (time, frequency) dots, one per
// zero-crossing event detected in a bat-call recording, with an optional
// parallel amplitude series. Signals are built once with New and then
// treated as immutable; Slice and Window return new values that share the
// underlying metadata.
//
// # Slopes
//
// ComputeSlopes derives the per-dot slope in octaves per second, the
// standard unit for describing bat-call shape: the forward difference of
// log2 frequency over time, as an absolute value. Magnitudes above the
// maximum slope and non-finite values (from zero or duplicate-time dots)
// are reported as 0 rather than propagated. Smooth runs a short moving
// average over a slope series to suppress dot-to-dot jitter before
// display or classification.
//
// # Windowing
//
// Window extracts the dots visible in a fixed-duration view, the way a
// scrolling display consumes a recording. The result always spans the
// full window: synthetic boundary dots are added at the window edges when
// the recording leaves them empty, so downstream consumers can rely on
// the first and last times.
//
// # Pulses
//
// PulseStarts segments a signal into pulses by time gap. Dots inside one
// echolocation pulse sit microseconds apart; the silence between pulses
// is orders of magnitude longer, so a fixed threshold (DefaultPulseGap)
// separates them cleanly.
package zc
