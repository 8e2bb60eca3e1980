// SPDX-License-Identifier: EPL-2.0

// Package gozc provides the core signal model for zero-cross bat-call
// analysis: sparse (time, frequency) dot series as produced by
// zero-crossing bat detectors, together with the math, serialization, and
// background tasks that analysis front-ends build on.
//
// # Packages
//
//   - zc: the ZeroCross signal value and its numeric operations
//     (slopes, smoothing, windowing, pulse segmentation)
//   - anabat: Anabat 132 file writer and background save task
//   - guano: embedded GUANO metadata block and amplitude payload codec
//   - extract: file-to-signal extraction tasks with pluggable decoders
//   - playback: time-expanded playback of companion .WAV recordings
//
// # Quick Start
//
// Build a signal from parallel dot arrays and persist it as an Anabat 132
// file:
//
//	z, err := zc.New(times, freqs, nil, zc.Metadata{"species": "Mylu"})
//	if err != nil {
//		return err
//	}
//	if err := anabat.Save(z, "out/mylu.zc", 8); err != nil {
//		return err
//	}
//
// Extraction runs in the background and hands the result to a callback:
//
//	extract.Start("night1/call.zc", cfg, func(z *zc.ZeroCross) {
//		if z == nil {
//			return // extraction failed, already logged
//		}
//		plot(z.Times(), z.Freqs())
//	})
//
// # Signal Model
//
// A zero-cross signal holds one dot per detected zero-crossing event.
// Times are seconds from the start of the recording, sorted ascending;
// frequencies are Hz. An optional amplitude series of the same length may
// accompany signals extracted from full-spectrum recordings. All numeric
// operations treat the dot arrays as immutable.
package gozc
