// Copyright (c) 2026 pglz authors
// SPDX-License-Identifier: MIT

package pglz

import "golang.org/x/sys/cpu"

// wideCompareSupported gates the 16-byte-at-a-time match extension in
// extendMatch. On architectures x/sys/cpu does not probe, every field
// it reports stays false and the scalar byte loop is used instead; the
// result is always correct, only the constant factor changes.
var wideCompareSupported = cpu.X86.HasSSE2 || cpu.ARM64.HasASIMD
