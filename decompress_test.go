// Copyright (c) 2026 pglz authors
// SPDX-License-Identifier: MIT

package pglz

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecompressMalformedStreams(t *testing.T) {
	cases := []struct {
		name    string
		stream  []byte
		rawSize int
		wantErr error
	}{
		{
			name:    "tag truncated after first byte",
			stream:  []byte{0x01, 0xF0},
			rawSize: 4,
			wantErr: ErrTagTruncated,
		},
		{
			name:    "long tag truncated before length byte",
			stream:  []byte{0x01, 0x0F, 0x00},
			rawSize: 20,
			wantErr: ErrTagTruncated,
		},
		{
			name:    "zero offset",
			stream:  []byte{0x01, 0x00, 0x00},
			rawSize: 4,
			wantErr: ErrZeroOffset,
		},
		{
			name:    "offset before start of output",
			stream:  []byte{0x02, 'A', 0x00, 0x02},
			rawSize: 8,
			wantErr: ErrOffsetOutOfRange,
		},
		{
			name:    "length overruns destination",
			stream:  []byte{0x02, 'A', 0x00, 0x01},
			rawSize: 2,
			wantErr: ErrOutputOverrun,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decompress(tc.stream, tc.rawSize, true)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got %v, want wrapping %v", err, tc.wantErr)
			}
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("error %v does not wrap ErrMalformed", err)
			}
		})
	}
}

func TestDecompressStrictLengthMismatch(t *testing.T) {
	data := []byte("hello, world! hello, world!")
	out, err := Compress(data, AlwaysStrategy)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	if _, err := Decompress(out, len(data)+1, true); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch for wrong rawSize, got %v", err)
	}

	if _, err := Decompress(out, len(data)+1, false); err != nil {
		t.Fatalf("non-strict mode should tolerate size mismatch, got %v", err)
	}
}

// TestDecompressNonStrictPrefixClamps exercises spec §4.E's "caller only
// wants a prefix" case: a non-strict decode into a dst shorter than the full
// decompressed length must clamp the final copy and return the prefix
// rather than failing with ErrOutputOverrun.
func TestDecompressNonStrictPrefixClamps(t *testing.T) {
	data := bytes.Repeat([]byte("prefix please prefix please "), 20)
	compressed, err := Compress(data, AlwaysStrategy)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	const prefixLen = 20
	dst := make([]byte, prefixLen)
	n, err := DecompressInto(dst, compressed, false)
	if err != nil {
		t.Fatalf("non-strict prefix decode: %v", err)
	}
	if n != prefixLen {
		t.Fatalf("got %d bytes, want exactly %d", n, prefixLen)
	}
	if !bytes.Equal(dst, data[:prefixLen]) {
		t.Fatalf("prefix mismatch: got %q, want %q", dst, data[:prefixLen])
	}
}

// TestDecompressTruncatedTagAtStreamBoundary exercises the scenario where a
// tag's control bit is set and its first byte is present, but the stream
// ends before the second (low offset) byte arrives, distinct from a clean
// end-of-stream after a whole number of groups.
func TestDecompressTruncatedTagAtStreamBoundary(t *testing.T) {
	stream := []byte{0x01, 0x20}
	_, err := Decompress(stream, 10, true)
	if !errors.Is(err, ErrTagTruncated) {
		t.Fatalf("expected ErrTagTruncated, got %v", err)
	}
}

func TestDecompressIntoDestTooSmall(t *testing.T) {
	data := bytes.Repeat([]byte("repeat repeat repeat "), 20)
	compressed, err := Compress(data, AlwaysStrategy)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	dst := make([]byte, len(data)-1)
	_, err = DecompressInto(dst, compressed, true)
	if !errors.Is(err, ErrOutputOverrun) {
		t.Fatalf("expected ErrOutputOverrun, got %v", err)
	}
}
