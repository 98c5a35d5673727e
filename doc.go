// Copyright (c) 2026 pglz authors
// SPDX-License-Identifier: MIT

/*
Package pglz implements the legacy PostgreSQL-style LZ77 byte stream:
a 4096-byte sliding window, 2/3-byte back-reference tags, and a
bitstream of control-byte-prefixed literal/match groups.

There is no framing header. The raw stream this package produces is
the complete compressed artifact; callers store the original length
out-of-band and pass it back in on decompression.

# Compress

Strategy gates whether compression is attempted at all and how hard the
match finder looks before giving up. Use a predefined strategy or build one:

	out, err := pglz.Compress(data, pglz.DefaultStrategy)
	if errors.Is(err, pglz.ErrIncompressible) {
		// store data verbatim instead
	}

For a preallocated destination buffer:

	dst := make([]byte, pglz.MaxCompressedSize(len(data), len(data)))
	n, err := pglz.CompressInto(dst, data, pglz.DefaultStrategy)

# Decompress

The original length must be known ahead of time:

	out, err := pglz.Decompress(compressed, len(data), true)

Or into a caller-owned buffer:

	dst := make([]byte, len(data))
	n, err := pglz.DecompressInto(dst, compressed, true)
*/
package pglz
