// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package zstd

import "github.com/dsnet/golib/errs"

// literalsHeader is the parsed form of a Zstd-compressed block's literals
// section header, per spec.md §4.2.1 paragraph 1.
type literalsHeader struct {
	typ            literalsType
	regeneratedLen int
	compressedLen  int // 0 for Raw/RLE
	numStreams     int // 1 or 4; 0 for Raw/RLE
}

// readLiteralsHeader parses the literals-section header. The first nibble
// (low 2 bits: type, high 2 bits: size-format) is read unaligned with
// leftover 0, exactly the case bitReader.ReadBits documents: a nibble-aligned
// variable-width field follows, continuing from whatever leftover the first
// nibble's consumption leaves behind.
func readLiteralsHeader(br *bitReader) literalsHeader {
	first := br.ReadBits(4, 0)
	typ := literalsType(first & 0x3)
	sizeFormat := (first >> 2) & 0x3

	var h literalsHeader
	h.typ = typ

	switch typ {
	case literalsRaw, literalsRLE:
		switch sizeFormat {
		case 0, 2: // u5, continuing from the 4 bits already consumed
			h.regeneratedLen = int(br.ReadBits(5, 4))
		case 1: // u12
			h.regeneratedLen = int(br.ReadBits(12, 4))
		case 3: // u20
			h.regeneratedLen = int(br.ReadBits(20, 4))
		}
	case literalsHuffmanTree, literalsHuffmanTreeless:
		switch sizeFormat {
		case 0: // single stream, u10/u10
			h.numStreams = 1
			h.regeneratedLen = int(br.ReadBits(10, 4))
			h.compressedLen = int(br.ReadBits(10, 2))
		case 1: // four streams, u10/u10
			h.numStreams = 4
			h.regeneratedLen = int(br.ReadBits(10, 4))
			h.compressedLen = int(br.ReadBits(10, 2))
		case 2: // four streams, u14/u14
			h.numStreams = 4
			h.regeneratedLen = int(br.ReadBits(14, 4))
			h.compressedLen = int(br.ReadBits(14, 6))
		case 3: // four streams, u18/u18
			h.numStreams = 4
			h.regeneratedLen = int(br.ReadBits(18, 4))
			h.compressedLen = int(br.ReadBits(18, 2))
		}
	}
	return h
}

// decodeCompressedBlock handles a Zstd-compressed block. It parses the
// literals-section header and copies Raw/RLE literal bodies into fr's
// window. A Huffman-coded literals body, the Sequences section, and Sequence
// Execution are not implemented. Every compressed block carries a Sequences
// section after its literals, so every call ends in ErrUnsupportedBlock
// (after any Raw/RLE literals were written) rather than silently producing
// wrong bytes. blockSize is the block's declared byte count; it is only
// checked to be non-zero, and the parsed header and literals are not checked
// against it.
func decodeCompressedBlock(br *bitReader, fr *frame, blockSize int) {
	errs.Assert(blockSize > 0, ErrCorrupt)

	lh := readLiteralsHeader(br)
	switch lh.typ {
	case literalsRaw:
		br.ReadBytes(fr.writeSlice(lh.regeneratedLen))
	case literalsRLE:
		fill(fr.writeSlice(lh.regeneratedLen), br.ReadU8())
	default:
		// literalsHuffmanTree / literalsHuffmanTreeless: the Huffman tree
		// description (for HuffmanTree) and the compressed stream(s) follow
		// here per the Zstandard specification; decoding them, the
		// Sequences section that follows, and Sequence Execution against
		// the sliding window are all out of scope (spec.md §4.2.1, §9
		// item 1; DESIGN.md Open Question 1).
		errs.Panic(ErrUnsupportedBlock)
	}

	// The Sequences section that follows the literals (present in every
	// compressed block, even one with zero sequences) is not read, so a
	// block whose literals were Raw/RLE fails here as well.
	errs.Panic(ErrUnsupportedBlock)
}


