// Package hash provides xxHash64-based identifiers and checksums for
// observation series.
package hash

import "github.com/cespare/xxhash/v2"

// SeriesID computes the xxHash64 of a series name. Dataset containers index
// series by this 64-bit ID instead of storing name strings in the hot path.
func SeriesID(name string) uint64 {
	return xxhash.Sum64String(name)
}

// Checksum computes the xxHash64 of a payload, used to detect container
// corruption on decode.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
