// SPDX-License-Identifier: EPL-2.0

package guano

import (
	"bytes"
	"fmt"
	"strings"
)

// versionLine is the mandatory first line of every serialized block.
const versionLine = "GUANO|Version: 1.0"

// AmplitudesKey is the namespaced field under which the amplitude series
// of a zero-cross signal is embedded.
const AmplitudesKey = "GOZC|Amplitudes"

// Block is an ordered set of GUANO metadata fields. Keys are namespaced
// as "Namespace|Key" by convention; values are arbitrary UTF-8 text
// without newlines.
type Block struct {
	keys   []string
	fields map[string]string
}

// New returns an empty metadata block.
func New() *Block {
	return &Block{fields: make(map[string]string)}
}

// Set stores a field. First-set order is preserved by Bytes; setting an
// existing key overwrites its value in place.
func (b *Block) Set(key, value string) {
	if _, ok := b.fields[key]; !ok {
		b.keys = append(b.keys, key)
	}

	b.fields[key] = value
}

// Get returns a field value and whether the key is present.
func (b *Block) Get(key string) (string, bool) {
	value, ok := b.fields[key]

	return value, ok
}

// Len returns the number of fields in the block.
func (b *Block) Len() int { return len(b.keys) }

// Bytes serializes the block: the version line followed by one
// "key: value" line per field, newline-separated UTF-8.
func (b *Block) Bytes() []byte {
	var buf bytes.Buffer

	buf.WriteString(versionLine)

	for _, key := range b.keys {
		buf.WriteByte('\n')
		buf.WriteString(key)
		buf.WriteString(": ")
		buf.WriteString(b.fields[key])
	}

	return buf.Bytes()
}

// Parse reads a serialized block back into field form. Blank lines are
// skipped; the version line is recognized and not stored as a field. A
// line without a colon separator fails with ErrMalformedBlock.
func Parse(data []byte) (*Block, error) {
	block := New()

	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("%w: line %q", ErrMalformedBlock, line)
		}

		key = strings.TrimSpace(key)
		if key == "GUANO|Version" {
			continue
		}

		block.Set(key, strings.TrimSpace(value))
	}

	return block, nil
}
