// SPDX-License-Identifier: EPL-2.0

package extract

import (
	"path/filepath"
	"strings"
	"sync"
)

// anabatKey is the registry key for legacy Anabat files, whose
// "extension" is a sequence number ending in '#' (call.00#, call.01#).
const anabatKey = "#"

// Registry maps file extensions to decoders. Keys are lower-case
// extensions with the leading dot (".zc", ".wav"), or anabatKey for the
// '#'-style Anabat naming scheme. Safe for concurrent use.
type Registry struct {
	mtx      sync.Mutex
	decoders map[string]Decoder
}

// NewRegistry returns an empty decoder registry.
func NewRegistry() *Registry {
	return &Registry{decoders: make(map[string]Decoder)}
}

// Register adds or replaces the decoder for an extension key.
func (r *Registry) Register(ext string, decoder Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.decoders[strings.ToLower(ext)] = decoder
}

// Lookup resolves the decoder for a path by its extension.
func (r *Registry) Lookup(path string) (Decoder, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if strings.HasSuffix(ext, anabatKey) {
		ext = anabatKey
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	decoder, ok := r.decoders[ext]

	return decoder, ok
}
