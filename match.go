// Copyright (c) 2026 pglz authors
// SPDX-License-Identifier: MIT

package pglz

import (
	"encoding/binary"
	"math/bits"
)

// matchStats accumulates white-box counters used only by tests to verify
// spec property 8 (chain walk bound). Never read in the hot path.
type matchStats struct {
	chainEntriesVisited int
	callsMade           int
	maxVisitedPerCall   int
}

// findMatch walks the bucket chain for the fingerprint at src[cursor:] and
// returns the longest acceptable back-reference, if any. Callers guarantee
// len(src)-cursor >= 4 and h.bucketMask already reflects this call's table
// size. good and dropPct come from the driver's already-clamped Strategy.
func findMatch(src []byte, cursor int, h *historyStore, good, dropPct int, stats *matchStats) (length, offset int, ok bool) {
	fp := fingerprint4(src[cursor:])
	bucket := int(fp) & h.bucketMask

	node := h.bucketHead[bucket]
	limit := len(src)
	maxLen := maxMatchLen
	if limit-cursor < maxLen {
		maxLen = limit - cursor
	}

	bestLen := 0
	bestOff := 0
	visited := 0

	for node != -1 && visited < maxChainLen {
		visited++
		e := h.entries[node]
		p := e.pos

		// off grows monotonically as the chain is walked from newest to
		// oldest; once it reaches maxOffset the rest of the chain is out
		// of window and the walk can stop outright.
		off := cursor - p
		if off >= maxOffset {
			break
		}

		if !equal4(src, cursor, p) {
			node = e.next
			continue
		}

		var length int
		if bestLen >= 16 {
			if !regionsEqual(src, cursor+4, p+4, bestLen-4) {
				node = e.next
				continue
			}
			length = bestLen + extendMatch(src, cursor+bestLen, p+bestLen, maxLen-bestLen)
		} else {
			length = 4 + extendMatch(src, cursor+4, p+4, maxLen-4)
		}

		if length > bestLen {
			bestLen = length
			bestOff = off
		}

		if bestLen >= good {
			node = e.next
			break
		}
		good -= (good * dropPct) / 100
		node = e.next
	}

	if stats != nil {
		stats.chainEntriesVisited += visited
		stats.callsMade++
		if visited > stats.maxVisitedPerCall {
			stats.maxVisitedPerCall = visited
		}
	}

	if bestLen < minMatchLen {
		return 0, 0, false
	}
	return bestLen, bestOff, true
}

// equal4 reports whether the 4 bytes at a and b are identical. Callers
// guarantee a+4<=len(data) and b+4<=len(data).
func equal4(data []byte, a, b int) bool {
	return binary.LittleEndian.Uint32(data[a:]) == binary.LittleEndian.Uint32(data[b:])
}

// regionsEqual reports whether the n bytes starting at a and b are
// identical, bounds-checked against data's length.
func regionsEqual(data []byte, a, b, n int) bool {
	if n < 0 || a+n > len(data) || b+n > len(data) {
		return false
	}
	for n >= 8 {
		if binary.LittleEndian.Uint64(data[a:]) != binary.LittleEndian.Uint64(data[b:]) {
			return false
		}
		a += 8
		b += 8
		n -= 8
	}
	for i := 0; i < n; i++ {
		if data[a+i] != data[b+i] {
			return false
		}
	}
	return true
}

// extendMatch counts how many of the next maxLen bytes starting at x and y
// are equal, using a 16-byte-at-a-time comparison when wideCompareSupported
// and the full window is available, falling back to a scalar byte loop at
// the tail or when the feature gate is off.
func extendMatch(data []byte, x, y, maxLen int) int {
	n := 0
	if wideCompareSupported {
		for n+16 <= maxLen && x+n+16 <= len(data) && y+n+16 <= len(data) {
			x0 := binary.LittleEndian.Uint64(data[x+n:])
			y0 := binary.LittleEndian.Uint64(data[y+n:])
			if x0 != y0 {
				return n + bits.TrailingZeros64(x0^y0)/8
			}
			x1 := binary.LittleEndian.Uint64(data[x+n+8:])
			y1 := binary.LittleEndian.Uint64(data[y+n+8:])
			if x1 != y1 {
				return n + 8 + bits.TrailingZeros64(x1^y1)/8
			}
			n += 16
		}
	}
	for n < maxLen && x+n < len(data) && y+n < len(data) && data[x+n] == data[y+n] {
		n++
	}
	return n
}
