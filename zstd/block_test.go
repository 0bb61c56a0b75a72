// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package zstd

import (
	"bytes"
	"testing"
)

func TestReadLiteralsHeaderRawRLE(t *testing.T) {
	vectors := []struct {
		desc    string
		input   []byte
		typ     literalsType
		wantLen int
	}{{
		desc:    "raw u5",
		input:   packRawRLELiteralsHeader5Bit(0, 10),
		typ:     literalsRaw,
		wantLen: 10,
	}, {
		// type=RLE(1), size-format=1 (u12): nibble=sizeFormat<<2|typ = 1<<2|1 = 0x5.
		// regenLen=300 (0x12C) packed into the 12 bits following the nibble.
		desc:    "rle u12",
		input:   packLiteralsHeaderNibbleAndValue(1, 1, 300, 12),
		typ:     literalsRLE,
		wantLen: 300,
	}}

	for _, v := range vectors {
		t.Run(v.desc, func(t *testing.T) {
			var br bitReader
			br.Init(bytes.NewReader(v.input))
			lh := readLiteralsHeader(&br)
			if lh.typ != v.typ {
				t.Errorf("typ = %v, want %v", lh.typ, v.typ)
			}
			if lh.regeneratedLen != v.wantLen {
				t.Errorf("regeneratedLen = %d, want %d", lh.regeneratedLen, v.wantLen)
			}
		})
	}
}

// packLiteralsHeaderNibbleAndValue builds the minimal little-endian byte
// sequence for a literals-section header whose first nibble is
// (sizeFormat<<2 | typ) and whose single following variable-width field
// (width bits wide) holds value, continuing unaligned from leftover 4 per
// bitReader.ReadBits's contract. Used for the u12/u20 Raw/RLE formats and
// the Huffman u10/u14/u18 formats, none of which reuse a size-format bit as
// part of the size.
func packLiteralsHeaderNibbleAndValue(typ, sizeFormat, value uint32, width uint) []byte {
	nibble := (sizeFormat << 2) | typ
	total := uint64(nibble) | uint64(value)<<4
	nbytes := (4 + int(width) + 7) / 8
	buf := make([]byte, nbytes)
	for i := range buf {
		buf[i] = byte(total >> uint(8*i))
	}
	return buf
}

// packRawRLELiteralsHeader5Bit builds the single-byte header real Zstandard
// uses for a Raw/RLE literals section with a 5-bit regenerated size: the
// size's low bit is the size-format field's high bit, and its remaining 4
// bits occupy the byte's top nibble.
func packRawRLELiteralsHeader5Bit(typ, value uint32) []byte {
	sizeFormat := value & 0x1 << 1
	nibble := (sizeFormat << 2) | typ
	b := byte(nibble) | byte((value>>1)&0xF)<<4
	return []byte{b}
}

func TestDecodeCompressedBlockRawLiteralsStillUnsupported(t *testing.T) {
	// A literals-only Raw section is fully decodable, but every compressed
	// block also carries a Sequences section this decoder does not execute,
	// so the overall block must still fail.
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("decodeCompressedBlock did not panic")
		}
		if err, ok := r.(error); !ok || err != ErrUnsupportedBlock {
			t.Fatalf("panic value = %v, want ErrUnsupportedBlock", r)
		}
	}()

	// 1-byte header: type=Raw(0), regenLen=3; then 3 literal bytes.
	header := packRawRLELiteralsHeader5Bit(0, 3)
	input := append(append([]byte{}, header...), 0xAA, 0xBB, 0xCC)
	var br bitReader
	br.Init(bytes.NewReader(input))
	fr := &frame{data: make([]byte, 16)}
	decodeCompressedBlock(&br, fr, len(input))
}

func TestDecodeCompressedBlockHuffmanUnsupported(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("decodeCompressedBlock did not panic")
		}
		if err, ok := r.(error); !ok || err != ErrUnsupportedBlock {
			t.Fatalf("panic value = %v, want ErrUnsupportedBlock", r)
		}
	}()

	// nibble: type=HuffmanTree(2), size-format=0 (single stream, u10/u10),
	// with both length fields zeroed; the header alone is 3 bytes.
	input := []byte{0x02, 0x00, 0x00}
	var br bitReader
	br.Init(bytes.NewReader(input))
	fr := &frame{data: make([]byte, 16)}
	decodeCompressedBlock(&br, fr, len(input))
}
