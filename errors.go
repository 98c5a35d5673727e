// Copyright (c) 2026 pglz authors
// SPDX-License-Identifier: MIT

package pglz

import "errors"

// Sentinel errors returned by Compress/CompressInto and Decompress/DecompressInto.
var (
	// ErrIncompressible is the umbrella sentinel for every reason compression
	// was refused or abandoned for the given strategy. Callers that only care
	// "should I store this verbatim instead" can use errors.Is(err, ErrIncompressible)
	// without caring which of ErrStrategyRefused/ErrBudgetExceeded applies.
	ErrIncompressible = errors.New("pglz: incompressible for this strategy")

	// ErrStrategyRefused wraps ErrIncompressible: the input length fell
	// outside the strategy's [MinInputSize, MaxInputSize] gate, or the
	// strategy's MatchSizeGood was non-positive.
	ErrStrategyRefused = errors.New("pglz: strategy refused input")

	// ErrBudgetExceeded wraps ErrIncompressible: output size reached the
	// strategy's compression-rate budget, or FirstSuccessBy was reached
	// without any back-reference having been emitted yet.
	ErrBudgetExceeded = errors.New("pglz: compression budget exceeded")

	// ErrDestTooSmall is returned by CompressInto when the encoded output
	// runs past the end of dst. dst is not checked against the worst-case
	// size up front.
	ErrDestTooSmall = errors.New("pglz: destination buffer too small")

	// ErrMalformed is the umbrella sentinel for every reason a compressed
	// stream failed to decode. Wrapped by the more specific errors below.
	ErrMalformed = errors.New("pglz: malformed compressed stream")

	// ErrTagTruncated wraps ErrMalformed: a back-reference tag's second or
	// third byte was not available in the input.
	ErrTagTruncated = errors.New("pglz: back-reference tag truncated")

	// ErrZeroOffset wraps ErrMalformed: a back-reference tag encoded offset 0,
	// which is never valid (offsets are 1..4095).
	ErrZeroOffset = errors.New("pglz: back-reference offset is zero")

	// ErrOffsetOutOfRange wraps ErrMalformed: a back-reference's offset
	// reaches further back than the number of bytes already produced.
	ErrOffsetOutOfRange = errors.New("pglz: back-reference offset exceeds output written so far")

	// ErrLengthMismatch wraps ErrMalformed: in strict mode, the stream ended
	// without exactly filling the destination and consuming all input.
	ErrLengthMismatch = errors.New("pglz: decompressed length does not match expected size")

	// ErrOutputOverrun wraps ErrMalformed: in strict mode, a literal copy or
	// back-reference expansion would write past the end of the destination
	// buffer. In non-strict mode this is not an error — dst is assumed to be
	// a deliberately undersized prefix buffer, so the final copy is clamped
	// to fit instead of failing.
	ErrOutputOverrun = errors.New("pglz: output buffer overrun")
)
