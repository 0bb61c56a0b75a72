// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package zstd

import (
	"bytes"
	"io"
	"testing"
)

// TestFrameErrors covers spec.md's E2E-2 through E2E-5 concrete scenarios.
func TestFrameErrors(t *testing.T) {
	vectors := []struct {
		desc  string
		input []byte
		err   error
	}{{
		desc:  "E2E-2 magic mismatch",
		input: []byte{0x00, 0x00, 0x00, 0x00},
		err:   ErrMagicNumber,
	}, {
		desc:  "E2E-3 reserved bits set in frame header descriptor",
		input: []byte{0x28, 0xB5, 0x2F, 0xFD, 0x18},
		err:   ErrFrameHeaderDesc,
	}, {
		desc: "E2E-4 undersized window (derived window size is 0)",
		// single_segment_flag=1, FCSF=0 (1-byte FCS, no bias), FCS=0.
		input: []byte{0x28, 0xB5, 0x2F, 0xFD, 0x20, 0x00},
		err:   ErrWindowSize,
	}, {
		desc: "E2E-5 no blocks (first block header is last and empty)",
		// single_segment_flag=0, window descriptor E=0,M=0 (window=1024),
		// block header: last=1, type=Raw, size=0.
		input: []byte{0x28, 0xB5, 0x2F, 0xFD, 0x00, 0x00, 0x01, 0x00, 0x00},
		err:   ErrNoBlocks,
	}, {
		desc: "property-5 2-byte FCS below window floor (999 < 1000)",
		// single_segment_flag=1, FCSF=1 (2-byte FCS field, no bias), FCS=999.
		input: []byte{0x28, 0xB5, 0x2F, 0xFD, 0x60, 0xE7, 0x03},
		err:   ErrWindowSize,
	}}

	for _, v := range vectors {
		t.Run(v.desc, func(t *testing.T) {
			zr := NewReader(bytes.NewReader(v.input))
			buf := make([]byte, 64)
			n, err := zr.Read(buf)
			if n != 0 {
				t.Errorf("Read() n = %d, want 0", n)
			}
			if err != v.err {
				t.Errorf("Read() err = %v, want %v", err, v.err)
			}
		})
	}
}

func TestFrameCleanEOF(t *testing.T) {
	zr := NewReader(bytes.NewReader(nil))
	buf := make([]byte, 16)
	n, err := zr.Read(buf)
	if n != 0 || err != io.EOF {
		t.Fatalf("Read() on empty source = (%d, %v), want (0, io.EOF)", n, err)
	}
}

// TestFrameContentSizeTwoByteField is property-5's boundary case the other
// way: FCS=1000 (the window floor itself) via a 2-byte field must decode
// cleanly with no bias applied, per spec.md §4.2 step 6 and
// original_source/src/lib.rs's `2 => decode_u16(input).into()`.
func TestFrameContentSizeTwoByteField(t *testing.T) {
	// single_segment_flag=1, FCSF=1 (2-byte FCS field), FCS=1000; one Raw
	// block, last=1, size=3, carrying "abc".
	input := []byte{
		0x28, 0xB5, 0x2F, 0xFD, // magic
		0x60,       // descriptor: FCSF=1, single_segment_flag=1
		0xE8, 0x03, // FCS = 1000 LE, unbiased
		0x19, 0x00, 0x00, // block header: last=1, type=Raw, size=3
		0x61, 0x62, 0x63, // "abc"
	}
	zr := NewReader(bytes.NewReader(input))
	buf := make([]byte, 16)
	n, err := zr.Read(buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got := string(buf[:n]); got != "abc" {
		t.Fatalf("Read() = %q, want %q", got, "abc")
	}
	if _, err := zr.Read(buf); err != io.EOF {
		t.Fatalf("second Read() err = %v, want io.EOF", err)
	}
}

func TestReadBlockHeader(t *testing.T) {
	// last=1, type=RLE(1), size=5: value = 1 | (1<<1) | (5<<3) = 0x2B.
	var br bitReader
	br.Init(bytes.NewReader([]byte{0x2B, 0x00, 0x00}))
	last, bt, size := readBlockHeader(&br)
	if !last || bt != blockRLE || size != 5 {
		t.Fatalf("readBlockHeader() = (%v, %v, %v), want (true, blockRLE, 5)", last, bt, size)
	}
}
