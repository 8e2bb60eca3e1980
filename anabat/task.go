// SPDX-License-Identifier: EPL-2.0

package anabat

import (
	"log/slog"

	"gozc/zc"
)

// SaveTask is a background save in flight. It runs to completion; there
// is no cancellation.
type SaveTask struct {
	done chan struct{}
	err  error
}

// SaveAsync writes the signal to path on a background goroutine. When
// done is non-nil it is called from that goroutine with the save result;
// otherwise a failure is logged. The returned task can be joined with
// Done or Err.
func SaveAsync(z *zc.ZeroCross, path string, divratio uint8, done func(error)) *SaveTask {
	t := &SaveTask{done: make(chan struct{})}

	go func() {
		defer close(t.done)

		t.err = Save(z, path, divratio)

		switch {
		case done != nil:
			done(t.err)
		case t.err != nil:
			slog.Error("background save failed", "path", path, "error", t.err)
		}
	}()

	return t
}

// Done returns a channel closed when the save has finished.
func (t *SaveTask) Done() <-chan struct{} { return t.done }

// Err blocks until the save has finished and returns its result.
func (t *SaveTask) Err() error {
	<-t.done

	return t.err
}
