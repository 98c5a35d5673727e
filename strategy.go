// Copyright (c) 2026 pglz authors
// SPDX-License-Identifier: MIT

package pglz

import "math"

// Strategy is an immutable configuration record gating compression
// eligibility and shaping match-finder aggressiveness. Zero value is not
// meaningful on its own; use DefaultStrategy, AlwaysStrategy, SkipStrategy,
// or build a custom value.
type Strategy struct {
	// MinInputSize and MaxInputSize gate compression by input length;
	// inputs outside [MinInputSize, MaxInputSize] are refused outright.
	MinInputSize int
	MaxInputSize int

	// MinCompRate is an integer percent in [0,99]. The compressed output
	// must beat len(src) * (100-MinCompRate) / 100 bytes or compression
	// fails with ErrBudgetExceeded.
	MinCompRate int

	// FirstSuccessBy: if no back-reference has been emitted yet and output
	// has reached this many bytes, compression gives up.
	FirstSuccessBy int

	// MatchSizeGood: once a candidate match reaches this length, the match
	// finder stops walking the bucket chain for a better one.
	MatchSizeGood int

	// MatchSizeDrop is an integer percent in [0,100] decay applied to the
	// "good enough" threshold after each chain step, so the finder gets
	// less picky the longer it searches.
	MatchSizeDrop int

	// SkipAfterMatch: when true, only the first byte of a match is
	// inserted into the history and the cursor jumps by the full match
	// length, trading ratio for throughput on highly compressible data.
	// Read once per match, never per byte.
	SkipAfterMatch bool
}

// DefaultStrategy is the general-purpose strategy: moderate input gate,
// 25% minimum compression rate, and a first-success budget of 1024 bytes.
var DefaultStrategy = Strategy{
	MinInputSize:   32,
	MaxInputSize:   math.MaxInt32,
	MinCompRate:    25,
	FirstSuccessBy: 1024,
	MatchSizeGood:  128,
	MatchSizeDrop:  10,
	SkipAfterMatch: false,
}

// AlwaysStrategy accepts any input size, demands no minimum compression
// rate and has no first-success limit. The output must still be smaller
// than the input; an input that does not shrink fails with
// ErrBudgetExceeded.
var AlwaysStrategy = Strategy{
	MinInputSize:   0,
	MaxInputSize:   math.MaxInt32,
	MinCompRate:    0,
	FirstSuccessBy: math.MaxInt32,
	MatchSizeGood:  128,
	MatchSizeDrop:  6,
	SkipAfterMatch: false,
}

// SkipStrategy is DefaultStrategy with SkipAfterMatch enabled: only the
// first byte of each match is inserted into history, trading a few
// percentage points of ratio for higher throughput on compressible data.
var SkipStrategy = Strategy{
	MinInputSize:   DefaultStrategy.MinInputSize,
	MaxInputSize:   DefaultStrategy.MaxInputSize,
	MinCompRate:    DefaultStrategy.MinCompRate,
	FirstSuccessBy: DefaultStrategy.FirstSuccessBy,
	MatchSizeGood:  DefaultStrategy.MatchSizeGood,
	MatchSizeDrop:  DefaultStrategy.MatchSizeDrop,
	SkipAfterMatch: true,
}

// clampGood clamps a match-size-good value to the encodable tag length range.
func clampGood(good int) int {
	if good < 17 {
		return 17
	}
	if good > maxMatchLen {
		return maxMatchLen
	}
	return good
}

// clampDrop clamps a decay percent to [0,100].
func clampDrop(drop int) int {
	if drop < 0 {
		return 0
	}
	if drop > 100 {
		return 100
	}
	return drop
}

// clampRate clamps a minimum-compression-rate percent to [0,99].
func clampRate(rate int) int {
	if rate < 0 {
		return 0
	}
	if rate > 99 {
		return 99
	}
	return rate
}
