// Copyright (c) 2026 pglz authors
// SPDX-License-Identifier: MIT

package pglz

import "fmt"

// MaxCompressedSize returns the largest number of bytes CompressInto could
// ever write for a rawSize-byte prefix of a total-byte input: ceil(rawSize *
// 9/8) + 2, the +2 covering the worst case where a near-complete prefix is
// all literals and a final tag straddles the prefix boundary. The result is
// capped at the same worst-case bound computed for total, since a prefix can
// never need more room than the buffer it is a prefix of would. Most callers
// pass the same value for both arguments, in which case the cap is a no-op.
func MaxCompressedSize(rawSize, total int) int {
	prefixBound := worstCaseCompressedSize(rawSize)
	totalBound := worstCaseCompressedSize(total)
	if prefixBound > totalBound {
		return totalBound
	}
	return prefixBound
}

func worstCaseCompressedSize(n int) int {
	if n < 0 {
		n = 0
	}
	return n + (n+7)/8 + 2
}

// Compress compresses src under strategy s, allocating and returning the
// result. It returns an error wrapping ErrIncompressible if s refuses src
// outright or the compressed size never beats s's budget.
func Compress(src []byte, s Strategy) ([]byte, error) {
	dst := make([]byte, MaxCompressedSize(len(src), len(src)))
	n, err := CompressInto(dst, src, s)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// CompressInto compresses src under strategy s into dst, returning the
// number of bytes written. dst must be at least MaxCompressedSize(len(src),
// len(src)) bytes or ErrDestTooSmall may be returned before src is fully
// consumed.
func CompressInto(dst, src []byte, s Strategy) (int, error) {
	if len(src) < s.MinInputSize || len(src) > s.MaxInputSize {
		return 0, refused()
	}
	if s.MatchSizeGood <= 0 {
		return 0, refused()
	}
	if len(src) == 0 {
		return 0, nil
	}

	good := clampGood(s.MatchSizeGood)
	drop := clampDrop(s.MatchSizeDrop)
	rate := clampRate(s.MinCompRate)
	budget := len(src) * (100 - rate) / 100

	scratch := AcquireScratch()
	defer ReleaseScratch(scratch)
	h := &scratch.store
	h.reset(bucketCountForInputLen(len(src)))
	scratch.stats = matchStats{}

	bw := newBitWriter(dst)
	n := len(src)
	cursor := 0
	anyMatch := false

	for cursor < n && n-cursor >= 4 {
		length, offset, found := findMatch(src, cursor, h, good, drop, &scratch.stats)
		if found {
			if !bw.emitTag(length, offset) {
				return 0, ErrDestTooSmall
			}
			anyMatch = true

			if s.SkipAfterMatch {
				h.insert(cursor, fingerprint4(src[cursor:]))
			} else {
				end := cursor + length
				for p := cursor; p < end && n-p >= 4; p++ {
					h.insert(p, fingerprint4(src[p:]))
				}
			}
			cursor += length
		} else {
			if !bw.emitLiteral(src[cursor]) {
				return 0, ErrDestTooSmall
			}
			h.insert(cursor, fingerprint4(src[cursor:]))
			cursor++
		}

		if bw.pos >= budget {
			return 0, budgetExceeded()
		}
		if !anyMatch && bw.pos >= s.FirstSuccessBy {
			return 0, budgetExceeded()
		}
	}

	// Tail: fewer than 4 bytes remain, so no fingerprint or match is
	// possible, but each byte is still inserted into history per spec.md
	// §4.D Tail (fingerprintTail covers the <4-byte-remaining case that
	// fingerprint4 can't). FirstSuccessBy is not re-checked here; it only
	// governs whether the match-capable portion of the loop is making
	// progress.
	for cursor < n {
		if !bw.emitLiteral(src[cursor]) {
			return 0, ErrDestTooSmall
		}
		h.insert(cursor, fingerprintTail(src[cursor]))
		cursor++
		if bw.pos >= budget {
			return 0, budgetExceeded()
		}
	}

	total := bw.finish()
	if total >= budget {
		return 0, budgetExceeded()
	}
	return total, nil
}

func refused() error {
	return fmt.Errorf("%w: %w", ErrStrategyRefused, ErrIncompressible)
}

func budgetExceeded() error {
	return fmt.Errorf("%w: %w", ErrBudgetExceeded, ErrIncompressible)
}
