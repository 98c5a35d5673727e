// Copyright (c) 2026 pglz authors
// SPDX-License-Identifier: MIT

package pglz

import "fmt"

// Decompress decompresses src, whose uncompressed length is known ahead of
// time to be rawSize, allocating and returning the result. If strict is
// true, the stream must consume exactly len(src) bytes and produce exactly
// rawSize bytes: a stream that would write more returns ErrOutputOverrun,
// and one that ends short returns ErrLengthMismatch.
func Decompress(src []byte, rawSize int, strict bool) ([]byte, error) {
	dst := make([]byte, rawSize)
	n, err := DecompressInto(dst, src, strict)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// DecompressInto decompresses src into dst, returning the number of bytes
// written. In strict mode a stream that would write past len(dst) is
// reported as ErrOutputOverrun. In non-strict mode dst may be shorter than
// the original input: decoding stops once dst is full, the final
// back-reference is clamped to fit, and the prefix length is returned.
func DecompressInto(dst, src []byte, strict bool) (int, error) {
	si := 0
	di := 0

outer:
	for si < len(src) {
		ctrl := src[si]
		si++

		for bit := 0; bit < 8; bit++ {
			if si >= len(src) {
				// Trailing padding bits of the final, partially-filled
				// control byte: nothing left to decode, not an error.
				break
			}

			if di >= len(dst) {
				// dst is exactly full. In strict mode every declared byte
				// must still be consumed, so running out of room early is
				// malformed. In non-strict mode the caller deliberately
				// sized dst to decode only a prefix of the stream; stop
				// cleanly and hand back what was produced.
				if strict {
					return 0, outputOverrun()
				}
				break outer
			}

			if ctrl&(1<<uint(bit)) == 0 {
				dst[di] = src[si]
				di++
				si++
				continue
			}

			if si+1 >= len(src) {
				return 0, tagTruncated()
			}
			b0 := src[si]
			lo := src[si+1]
			lenCode := b0 & 0x0F

			var length, consumed int
			if lenCode == 0x0F {
				if si+2 >= len(src) {
					return 0, tagTruncated()
				}
				length = int(src[si+2]) + longTagLenBias
				consumed = 3
			} else {
				length = int(lenCode) + minMatchLen
				consumed = 2
			}

			offset := (int(b0&0xF0) << 4) | int(lo)
			if offset == 0 {
				return 0, zeroOffset()
			}
			if offset > di {
				return 0, offsetOutOfRange()
			}
			if di+length > len(dst) {
				if strict {
					return 0, outputOverrun()
				}
				// Clamp to the remaining output capacity (spec §4.E): a
				// prefix-only decode truncates the final tag's expansion
				// rather than failing.
				length = len(dst) - di
			}

			copyBackRef(dst, di, offset, length)
			di += length
			si += consumed
		}
	}

	if strict && (si != len(src) || di != len(dst)) {
		return 0, lengthMismatch()
	}
	return di, nil
}

func tagTruncated() error {
	return fmt.Errorf("%w: %w", ErrTagTruncated, ErrMalformed)
}

func zeroOffset() error {
	return fmt.Errorf("%w: %w", ErrZeroOffset, ErrMalformed)
}

func offsetOutOfRange() error {
	return fmt.Errorf("%w: %w", ErrOffsetOutOfRange, ErrMalformed)
}

func outputOverrun() error {
	return fmt.Errorf("%w: %w", ErrOutputOverrun, ErrMalformed)
}

func lengthMismatch() error {
	return fmt.Errorf("%w: %w", ErrLengthMismatch, ErrMalformed)
}
