// SPDX-License-Identifier: EPL-2.0

package extract

import (
	"errors"
	"sync"
	"testing"
	"time"

	"gozc/zc"
)

// stubDecoder returns a fixed three-dot result and records the calls it
// receives.
type stubDecoder struct {
	mtx   sync.Mutex
	paths []string
	opts  []Options
}

func (d *stubDecoder) decode(path string, opts Options) (Decoded, error) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	d.paths = append(d.paths, path)
	d.opts = append(d.opts, opts)

	return Decoded{
		Times: []float64{0, 0.001, 0.002},
		Freqs: []float64{40000, 39000, 38000},
	}, nil
}

func (d *stubDecoder) calls() []string {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	return append([]string(nil), d.paths...)
}

// await collects one result with a timeout so a broken task cannot hang
// the test suite.
func await(t *testing.T, results <-chan *zc.ZeroCross) *zc.ZeroCross {
	t.Helper()

	select {
	case z := <-results:
		return z
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for extraction result")

		return nil
	}
}

func TestStart_DispatchZC(t *testing.T) {
	t.Parallel()

	stub := &stubDecoder{}
	results := make(chan *zc.ZeroCross, 1)

	Start("night1/call.zc", Config{Anabat: stub.decode}, func(z *zc.ZeroCross) { results <- z })

	z := await(t, results)
	if z == nil {
		t.Fatal("result = nil, want a signal")
	}

	if z.Len() != 3 {
		t.Errorf("Len() = %d, want 3", z.Len())
	}

	if calls := stub.calls(); len(calls) != 1 || calls[0] != "night1/call.zc" {
		t.Errorf("decoder calls = %v, want the task path once", calls)
	}
}

func TestStart_DispatchAnabatNumbered(t *testing.T) {
	t.Parallel()

	stub := &stubDecoder{}
	results := make(chan *zc.ZeroCross, 1)

	Start("night1/CALL.00#", Config{Anabat: stub.decode}, func(z *zc.ZeroCross) { results <- z })

	if z := await(t, results); z == nil {
		t.Fatal("result = nil, want a signal for '#'-numbered files")
	}
}

func TestStart_DispatchWav(t *testing.T) {
	t.Parallel()

	anabatStub := &stubDecoder{}
	wavStub := &stubDecoder{}
	results := make(chan *zc.ZeroCross, 1)

	cfg := Config{Anabat: anabatStub.decode, Wav: wavStub.decode}

	Start("night1/call.WAV", cfg, func(z *zc.ZeroCross) { results <- z })

	if z := await(t, results); z == nil {
		t.Fatal("result = nil, want a signal")
	}

	if len(wavStub.calls()) != 1 {
		t.Errorf("wav decoder calls = %v, want exactly one", wavStub.calls())
	}

	if len(anabatStub.calls()) != 0 {
		t.Errorf("anabat decoder calls = %v, want none", anabatStub.calls())
	}
}

func TestStart_UnsupportedExtension(t *testing.T) {
	t.Parallel()

	stub := &stubDecoder{}
	results := make(chan *zc.ZeroCross, 1)

	Start("notes.txt", Config{Anabat: stub.decode, Wav: stub.decode}, func(z *zc.ZeroCross) { results <- z })

	if z := await(t, results); z != nil {
		t.Errorf("result = %v, want nil for unsupported extension", z)
	}

	if len(stub.calls()) != 0 {
		t.Errorf("decoder calls = %v, want none", stub.calls())
	}
}

func TestStart_MissingDecoder(t *testing.T) {
	t.Parallel()

	results := make(chan *zc.ZeroCross, 1)

	// A .wav file with no wav decoder configured fails like any other
	// unsupported file.
	Start("call.wav", Config{}, func(z *zc.ZeroCross) { results <- z })

	if z := await(t, results); z != nil {
		t.Errorf("result = %v, want nil without a decoder", z)
	}
}

func TestStart_DecoderFailure(t *testing.T) {
	t.Parallel()

	results := make(chan *zc.ZeroCross, 1)

	failing := func(string, Options) (Decoded, error) {
		return Decoded{}, errors.New("corrupt data table")
	}

	Start("call.zc", Config{Anabat: failing}, func(z *zc.ZeroCross) { results <- z })

	if z := await(t, results); z != nil {
		t.Errorf("result = %v, want nil on decoder failure", z)
	}
}

func TestStart_InconsistentArrays(t *testing.T) {
	t.Parallel()

	results := make(chan *zc.ZeroCross, 1)

	broken := func(string, Options) (Decoded, error) {
		return Decoded{Times: []float64{0, 1}, Freqs: []float64{40000}}, nil
	}

	Start("call.zc", Config{Anabat: broken}, func(z *zc.ZeroCross) { results <- z })

	if z := await(t, results); z != nil {
		t.Errorf("result = %v, want nil for mismatched dot arrays", z)
	}
}

func TestStart_AugmentsMetadata(t *testing.T) {
	t.Parallel()

	withMeta := func(string, Options) (Decoded, error) {
		return Decoded{
			Times:    []float64{0},
			Freqs:    []float64{40000},
			Metadata: zc.Metadata{"species": "Mylu"},
		}, nil
	}

	results := make(chan *zc.ZeroCross, 1)

	Start("night1/call.zc", Config{Anabat: withMeta}, func(z *zc.ZeroCross) { results <- z })

	z := await(t, results)
	if z == nil {
		t.Fatal("result = nil, want a signal")
	}

	md := z.Metadata()

	if md["path"] != "night1/call.zc" {
		t.Errorf("metadata path = %v, want night1/call.zc", md["path"])
	}

	if md["filename"] != "call.zc" {
		t.Errorf("metadata filename = %v, want call.zc", md["filename"])
	}

	// decoder-provided fields survive the augmentation
	if md["species"] != "Mylu" {
		t.Errorf("metadata species = %v, want Mylu", md["species"])
	}
}

func TestStart_ForwardsOptions(t *testing.T) {
	t.Parallel()

	stub := &stubDecoder{}
	results := make(chan *zc.ZeroCross, 1)
	opts := Options{"divratio": 8, "hpf_khz": 17.5}

	Start("call.zc", Config{Anabat: stub.decode, Options: opts}, func(z *zc.ZeroCross) { results <- z })

	await(t, results)

	stub.mtx.Lock()
	defer stub.mtx.Unlock()

	if len(stub.opts) != 1 || stub.opts[0]["divratio"] != 8 || stub.opts[0]["hpf_khz"] != 17.5 {
		t.Errorf("forwarded options = %v, want %v", stub.opts, opts)
	}
}

func TestStart_DeliverExecutor(t *testing.T) {
	t.Parallel()

	stub := &stubDecoder{}

	// A single-goroutine executor standing in for a UI event loop.
	queue := make(chan func(), 1)
	results := make(chan *zc.ZeroCross, 1)

	task := Start("call.zc", Config{
		Anabat:  stub.decode,
		Deliver: func(f func()) { queue <- f },
	}, func(z *zc.ZeroCross) { results <- z })

	select {
	case f := <-queue:
		f()
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for delivery")
	}

	if z := await(t, results); z == nil {
		t.Fatal("result = nil, want a signal through the executor")
	}

	<-task.Done()
}

func TestStart_ConcurrentTasks(t *testing.T) {
	t.Parallel()

	const n = 16

	stub := &stubDecoder{}
	results := make(chan *zc.ZeroCross, n)

	for i := 0; i < n; i++ {
		Start("call.zc", Config{Anabat: stub.decode}, func(z *zc.ZeroCross) { results <- z })
	}

	for i := 0; i < n; i++ {
		if z := await(t, results); z == nil {
			t.Fatal("result = nil, want a signal from every task")
		}
	}

	if calls := stub.calls(); len(calls) != n {
		t.Errorf("decoder calls = %d, want %d", len(calls), n)
	}
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	marker := func(string, Options) (Decoded, error) { return Decoded{}, nil }
	r.Register(".ZC", marker)

	if _, ok := r.Lookup("a/b/call.zc"); !ok {
		t.Error("Lookup() missed a decoder registered with different case")
	}

	if _, ok := r.Lookup("call.wav"); ok {
		t.Error("Lookup() found a decoder for an unregistered extension")
	}

	r.Register(anabatKey, marker)

	if _, ok := r.Lookup("CALL.07#"); !ok {
		t.Error("Lookup() missed the '#'-numbered scheme")
	}
}
