// SPDX-License-Identifier: EPL-2.0

package extract

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"gozc/zc"
)

// Options carries decoder-specific settings (division ratio, filters,
// conversion tuning). It is forwarded to decoders verbatim and never
// interpreted here.
type Options map[string]any

// Decoded is the raw result of a decoder: parallel dot arrays plus
// whatever metadata the file carried. Amplitudes and Metadata may be nil.
type Decoded struct {
	Times      []float64
	Freqs      []float64
	Amplitudes []float64
	Metadata   zc.Metadata
}

// Decoder turns one file into raw dot arrays.
type Decoder func(path string, opts Options) (Decoded, error)

// Callback receives the result of an extraction task: the extracted
// signal, or nil when extraction failed (the failure is logged).
type Callback func(*zc.ZeroCross)

// Config wires decoders and delivery for extraction tasks.
//
// Anabat handles legacy zero-cross files, Wav full-spectrum recordings.
// Either may be nil, making files of that type fail extraction.
//
// Deliver, when set, marshals the completion callback onto the caller's
// context (an event loop, a render goroutine). When nil the callback
// runs directly on the task's goroutine.
type Config struct {
	Anabat  Decoder
	Wav     Decoder
	Options Options
	Deliver func(func())
}

// registry builds the extension dispatch table for this configuration.
func (cfg Config) registry() *Registry {
	r := NewRegistry()

	if cfg.Anabat != nil {
		r.Register(".zc", cfg.Anabat)
		r.Register(anabatKey, cfg.Anabat)
	}

	if cfg.Wav != nil {
		r.Register(".wav", cfg.Wav)
	}

	return r
}

// Task is one extraction in flight. Tasks are fire-and-forget: they run
// to completion, cannot be cancelled, and always deliver exactly one
// result to their callback.
type Task struct {
	path     string
	filename string
	cfg      Config
	cb       Callback
	done     chan struct{}
}

// Start launches the extraction of path on a background goroutine and
// returns immediately. Concurrent tasks are independent; each delivers
// to its own callback. Done reports when the task has handed off its
// result.
func Start(path string, cfg Config, cb Callback) *Task {
	t := &Task{
		path:     path,
		filename: filepath.Base(path),
		cfg:      cfg,
		cb:       cb,
		done:     make(chan struct{}),
	}

	go t.run()

	return t
}

// Done returns a channel closed once the result has been handed off.
// With a Deliver executor the callback itself may still be pending on
// the executor at that point.
func (t *Task) Done() <-chan struct{} { return t.done }

func (t *Task) run() {
	defer close(t.done)

	result := t.extract()

	if t.cfg.Deliver != nil {
		t.cfg.Deliver(func() { t.cb(result) })

		return
	}

	t.cb(result)
}

func (t *Task) extract() *zc.ZeroCross {
	decoder, ok := t.cfg.registry().Lookup(t.path)
	if !ok {
		slog.Error("extraction failed",
			"path", t.path,
			"error", fmt.Errorf("%w: %s", ErrUnsupportedFile, t.filename),
		)

		return nil
	}

	decoded, err := decoder(t.path, t.cfg.Options)
	if err != nil {
		slog.Error("extraction failed", "path", t.path, "error", err)

		return nil
	}

	md := decoded.Metadata
	if md == nil {
		md = zc.Metadata{}
	}

	md["path"] = t.path
	md["filename"] = t.filename

	z, err := zc.New(decoded.Times, decoded.Freqs, decoded.Amplitudes, md)
	if err != nil {
		slog.Error("decoder produced inconsistent dot arrays",
			"path", t.path,
			"error", err,
		)

		return nil
	}

	slog.Debug("extracted signal", "file", t.filename, "dots", z.Len())

	return z
}
