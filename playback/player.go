// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gordonklaus/portaudio"
)

// DefaultTimeExpansion is the slow-down factor that brings typical bat
// echolocation frequencies into human hearing range.
const DefaultTimeExpansion = 10

// framesPerWrite is the portaudio buffer size in frames.
const framesPerWrite = 2048

// Player is one stoppable playback of a recording. Create one with Play
// or PlayWindowed; a Player cannot be restarted.
type Player struct {
	samples  []float32
	playing  atomic.Bool
	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// Play starts time-expanded playback of the .WAV file at path, slowed
// down by the factor te (0 selects DefaultTimeExpansion). The caller is
// responsible for portaudio.Initialize and Terminate around all
// playback.
func Play(path string, te int) (*Player, error) {
	c, err := loadWAV(path)
	if err != nil {
		return nil, err
	}

	return start(c, te)
}

// PlayWindowed plays only the part of the recording covering
// [start, start+duration), in recording-time seconds.
func PlayWindowed(path string, te int, startSec, duration float64) (*Player, error) {
	c, err := loadWAV(path)
	if err != nil {
		return nil, err
	}

	return start(c.window(startSec, duration), te)
}

func start(c clip, te int) (*Player, error) {
	if te == 0 {
		te = DefaultTimeExpansion
	}

	if te < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadTimeExpansion, te)
	}

	rate := c.rate / te

	out, err := portaudio.DefaultOutputDevice()
	if err != nil {
		return nil, fmt.Errorf("no output device: %w", err)
	}

	buf := make([]float32, framesPerWrite)

	params := portaudio.HighLatencyParameters(nil, out)
	params.Output.Channels = 1
	params.SampleRate = float64(rate)
	params.FramesPerBuffer = framesPerWrite

	stream, err := portaudio.OpenStream(params, buf)
	if err != nil {
		return nil, fmt.Errorf("opening output stream: %w", err)
	}

	p := &Player{
		samples: c.samples,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}

	p.playing.Store(true)

	slog.Debug("starting playback",
		"samples", len(c.samples),
		"te", te,
		"playback_rate", rate,
	)

	go p.run(stream, buf)

	return p, nil
}

func (p *Player) run(stream *portaudio.Stream, buf []float32) {
	defer close(p.done)
	defer p.playing.Store(false)
	defer stream.Close()

	if err := stream.Start(); err != nil {
		slog.Error("starting output stream", "error", err)

		return
	}

	defer func() {
		if err := stream.Stop(); err != nil {
			slog.Error("stopping output stream", "error", err)
		}
	}()

	for pos := 0; pos < len(p.samples); pos += framesPerWrite {
		select {
		case <-p.stop:
			return
		default:
		}

		n := copy(buf, p.samples[pos:])

		// zero-fill the tail of the final buffer
		for i := n; i < len(buf); i++ {
			buf[i] = 0
		}

		if err := stream.Write(); err != nil {
			slog.Error("writing to output stream", "error", err)

			return
		}
	}
}

// Stop ends playback early. Safe to call repeatedly and after the
// playback has finished on its own.
func (p *Player) Stop() {
	p.stopOnce.Do(func() { close(p.stop) })
}

// IsPlaying reports whether playback is still running.
func (p *Player) IsPlaying() bool { return p.playing.Load() }

// Wait blocks until playback has finished or been stopped.
func (p *Player) Wait() { <-p.done }
