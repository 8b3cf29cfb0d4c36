// Package hash derives cache keys from text.
package hash

import "github.com/cespare/xxhash/v2"

// Key returns the xxHash64 of text. Keys may collide, so callers must compare
// the text itself before trusting a match.
func Key(text string) uint64 {
	return xxhash.Sum64String(text)
}

// KeyBytes returns the same key as Key(string(b)) without converting.
func KeyBytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}
