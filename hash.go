// Copyright (c) 2026 pglz authors
// SPDX-License-Identifier: MIT

package pglz

import "encoding/binary"

// fingerprintMultiplier is the Knuth multiplicative-hash constant; its top
// bits scramble the low bits of a little-endian 4-byte read well enough to
// spread 4-grams across the bucket table.
const fingerprintMultiplier = 2654435761

// fingerprint4 computes a match-finder fingerprint from the 4 bytes at
// data[0:4]. Callers must guarantee len(data) >= 4.
func fingerprint4(data []byte) uint32 {
	v := binary.LittleEndian.Uint32(data)
	return (v * fingerprintMultiplier) >> 19
}

// fingerprintTail computes a fingerprint for the final 1-3 bytes of input,
// where a full 4-byte read is unavailable. It degrades to hashing whatever
// single byte is at the cursor, which still buckets same-byte runs together.
func fingerprintTail(b byte) uint32 {
	return (uint32(b) * fingerprintMultiplier) >> 19
}

// bucketCountForInputLen picks the hash table width for a given input size,
// trading memory and reset cost for collision rate on larger inputs. Always
// a power of two so bucketMask can be used directly.
func bucketCountForInputLen(n int) int {
	switch {
	case n < 128:
		return 512
	case n < 256:
		return 1024
	case n < 512:
		return 2048
	case n < 1024:
		return 4096
	default:
		return maxBucketCount
	}
}
