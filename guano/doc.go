// SPDX-License-Identifier: EPL-2.0

// Package guano builds and parses GUANO metadata blocks, the plain-text
// "Grand Unified Acoustic Notation Ontology" format embedded in bat
// recordings. A block is a version line followed by namespaced
// "Namespace|Key: value" lines.
//
// The AmplitudesKey field carries the amplitude series of a zero-cross
// signal through file formats that have no native amplitude channel,
// encoded with EncodeAmplitudes.
package guano
