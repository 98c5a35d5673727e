// Copyright (c) 2026 pglz authors
// SPDX-License-Identifier: MIT

package pglz

import "sync"

// HistoryScratch holds the match-finder's working state: the history ring
// and bucket-head table. It is expensive to zero (the bucket table alone
// can be 16KB), so CompressInto takes one from a shared pool on every call
// and returns it afterwards. No entry point accepts a caller-held
// HistoryScratch; AcquireScratch/ReleaseScratch draw on that same pool.
type HistoryScratch struct {
	store historyStore
	stats matchStats
}

var scratchPool = sync.Pool{
	New: func() any { return new(HistoryScratch) },
}

// AcquireScratch returns a HistoryScratch from the shared pool, or a fresh
// one if the pool is empty. The returned value's contents are undefined;
// CompressInto resets the scratch it takes from the pool before use.
func AcquireScratch() *HistoryScratch {
	return scratchPool.Get().(*HistoryScratch)
}

// ReleaseScratch returns s to the shared pool for reuse. s must not be used
// again by the caller afterward.
func ReleaseScratch(s *HistoryScratch) {
	if s == nil {
		return
	}
	scratchPool.Put(s)
}
