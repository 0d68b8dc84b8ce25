// Package hash provides message identity hashing for decoded transmissions.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given payload bytes.
func ID(data []byte) uint64 {
	return xxhash.Sum64(data)
}
