// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-audio/wav"
)

// teThreshold is the sample rate at or below which a recording is
// assumed to be an already 10x time-expanded capture of an ultrasonic
// signal rather than a direct high-speed recording.
const teThreshold = 48000

// clip is decoded audio ready for playback: mono float32 samples and the
// effective (real-time) sample rate of the recorded signal.
type clip struct {
	rate    int
	samples []float32
}

// loadWAV decodes a mono 16-bit PCM .WAV companion recording. Sample
// rates at or below 48kHz are scaled up 10x on the assumption that the
// file is a time-expanded capture.
func loadWAV(path string) (clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return clip{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return clip{}, fmt.Errorf("%w: %s", ErrNotWav, path)
	}

	if decoder.BitDepth != 16 {
		return clip{}, fmt.Errorf("%w: %d bits", ErrUnsupportedDepth, decoder.BitDepth)
	}

	pcm, err := decoder.FullPCMBuffer()
	if err != nil {
		return clip{}, fmt.Errorf("decoding %s: %w", path, err)
	}

	if pcm.Format.NumChannels != 1 {
		return clip{}, fmt.Errorf("%w: %d channels", ErrNotMono, pcm.Format.NumChannels)
	}

	c := clip{
		rate:    pcm.Format.SampleRate,
		samples: make([]float32, len(pcm.Data)),
	}

	for i, s := range pcm.Data {
		c.samples[i] = float32(s) / 32768.0
	}

	if c.rate <= teThreshold {
		slog.Debug("assuming 10x time-expanded recording", "samplerate", c.rate)
		c.rate *= 10
	}

	return c, nil
}

// window slices the samples covering [start, start+duration) in
// recording time, clamped to the clip bounds.
func (c clip) window(start, duration float64) clip {
	from := int(start * float64(c.rate))
	to := int((start + duration) * float64(c.rate))

	from = max(from, 0)
	to = min(to, len(c.samples))

	if from >= to {
		return clip{rate: c.rate}
	}

	return clip{rate: c.rate, samples: c.samples[from:to]}
}
