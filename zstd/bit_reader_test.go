// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package zstd

import (
	"bytes"
	"testing"
)

func TestBitReaderUnaligned(t *testing.T) {
	// spec.md E2E-6: source bytes C2 3D, reading u(4,0) then u(8,4) then
	// u(4,4) yields 0x2, 0xDC, 0x3.
	var br bitReader
	br.Init(bytes.NewReader([]byte{0xC2, 0x3D}))

	if v := br.ReadBits(4, 0); v != 0x2 {
		t.Fatalf("ReadBits(4, 0) = %#x, want 0x2", v)
	}
	if v := br.ReadBits(8, 4); v != 0xDC {
		t.Fatalf("ReadBits(8, 4) = %#x, want 0xdc", v)
	}
	if v := br.ReadBits(4, 4); v != 0x3 {
		t.Fatalf("ReadBits(4, 4) = %#x, want 0x3", v)
	}
}

func TestBitReaderAligned(t *testing.T) {
	src := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}

	var br bitReader
	br.Init(bytes.NewReader(src))
	if v := br.ReadU8(); v != 0x01 {
		t.Fatalf("ReadU8() = %#x, want 0x01", v)
	}

	br.Init(bytes.NewReader(src))
	if v := br.ReadU16(); v != 0x0201 {
		t.Fatalf("ReadU16() = %#x, want 0x0201", v)
	}

	br.Init(bytes.NewReader(src))
	if v := br.ReadU24(); v != 0x030201 {
		t.Fatalf("ReadU24() = %#x, want 0x030201", v)
	}

	br.Init(bytes.NewReader(src))
	if v := br.ReadU32(); v != 0x04030201 {
		t.Fatalf("ReadU32() = %#x, want 0x04030201", v)
	}

	br.Init(bytes.NewReader(src))
	if v := br.ReadU64(); v != 0x0807060504030201 {
		t.Fatalf("ReadU64() = %#x, want 0x0807060504030201", v)
	}
}

func TestBitReaderReadBytes(t *testing.T) {
	src := []byte{0xAA, 0xBB, 0xCC}
	var br bitReader
	br.Init(bytes.NewReader(src))

	buf := make([]byte, 3)
	br.ReadBytes(buf)
	if !bytes.Equal(buf, src) {
		t.Fatalf("ReadBytes() = %x, want %x", buf, src)
	}
}

func TestBitReaderTryReadU8EOF(t *testing.T) {
	var br bitReader
	br.Init(bytes.NewReader(nil))
	if _, eof := br.TryReadU8(); !eof {
		t.Fatalf("TryReadU8() on empty source: eof = false, want true")
	}
}
