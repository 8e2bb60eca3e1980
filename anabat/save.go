// SPDX-License-Identifier: EPL-2.0

package anabat

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gozc"
	"gozc/guano"
	"gozc/zc"
)

// signature identifies files produced by this library in a note field.
var signature = "gozc " + gozc.Version

// Intervals converts dot times in seconds to whole-microsecond intervals
// between consecutive dots. Fractional microseconds are truncated toward
// zero, not rounded, for byte compatibility with legacy writers.
func Intervals(times []float64) []uint32 {
	if len(times) < 2 {
		return nil
	}

	intervals := make([]uint32, len(times)-1)

	for i := 1; i < len(times); i++ {
		intervals[i-1] = uint32(int64(times[i]*1e6 - times[i-1]*1e6))
	}

	return intervals
}

// headerFromMetadata maps signal metadata onto the fixed header fields.
// The species field accepts either a string or a []string, joined with
// commas. The format has two note slots: when the source already filled
// the first, the library signature goes into the second instead of
// overwriting, otherwise it takes the first slot.
func headerFromMetadata(md zc.Metadata, divratio uint8) Header {
	h := Header{
		Tape:     metaString(md, "tape"),
		Loc:      metaString(md, "loc"),
		Spec:     metaString(md, "spec"),
		ID:       metaString(md, "id"),
		DivRatio: divratio,
	}

	if ts, ok := md["timestamp"].(time.Time); ok {
		h.Timestamp = ts
	}

	switch species := md["species"].(type) {
	case string:
		h.Species = species
	case []string:
		h.Species = strings.Join(species, ", ")
	}

	if note := metaString(md, "note1"); note != "" {
		h.Note1 = note
		h.Note2 = signature
	} else {
		h.Note1 = signature
	}

	return h
}

func metaString(md zc.Metadata, key string) string {
	s, _ := md[key].(string)

	return s
}

// Save writes the signal to path in Anabat 132 format with the given
// division ratio, creating missing parent directories. The amplitude
// series, when the signal carries one, travels in an embedded GUANO
// block; the format itself has no amplitude channel.
func Save(z *zc.ZeroCross, path string, divratio uint8) (err error) {
	h := headerFromMetadata(z.Metadata(), divratio)

	if z.HasAmplitude() {
		g := guano.New()
		g.Set(guano.AmplitudesKey, guano.EncodeAmplitudes(z.Amplitudes()))
		h.Guano = g
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	buffered := bufio.NewWriter(f)
	w := NewWriter(buffered)

	if err := w.WriteHeader(h); err != nil {
		return err
	}

	if err := w.WriteIntervals(Intervals(z.Times())); err != nil {
		return err
	}

	if err := buffered.Flush(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}

	slog.Debug("wrote anabat file",
		"path", path,
		"dots", z.Len(),
		"bytes", w.ByteCount(),
		"divratio", divratio,
	)

	return nil
}
