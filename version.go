// SPDX-License-Identifier: EPL-2.0

package gozc

// Version is the library version, embedded as an attribution signature in
// the note fields of files produced by the anabat package.
const Version = "0.1.0"
