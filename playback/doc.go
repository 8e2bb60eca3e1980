// SPDX-License-Identifier: EPL-2.0

// Package playback plays the full-spectrum .WAV companions of
// zero-cross recordings with time expansion: the signal is slowed down
// (10x by default) so ultrasonic bat calls become audible.
//
// Playback runs on a background goroutine through a portaudio output
// stream; the caller owns portaudio.Initialize and Terminate. Sample
// rates at or below 48kHz are assumed to belong to recordings that were
// already time-expanded 10x in the detector.
package playback
