// Package hash derives the 64-bit trace identifiers used by archive
// indexes.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given trace key, typically its
// net.sta.loc.chan channel code.
func ID(key string) uint64 {
	return xxhash.Sum64String(key)
}
