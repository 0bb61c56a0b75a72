// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package zstd

import (
	"io"

	"github.com/dsnet/golib/errs"
)

// frame holds one decoded Zstandard frame: its header fields (kept only for
// the duration of block processing, except dictID/hasChecksum which are
// exposed to callers per SPEC_FULL.md's "Supplemented Features") and the
// window buffer its blocks were written into.
//
// A frame is reused across Reader.Read calls the way flate.Reader reuses its
// dictDecoder: decode resets and resizes data in place rather than
// reallocating, per spec.md §5's resource policy.
type frame struct {
	data []byte // Output bytes for this frame, length == regenerated size
	cur  int    // Write cursor into data during block processing

	windowSize  uint64
	dictID      uint32
	hasDictID   bool
	hasChecksum bool
}

// DictionaryID reports the frame's dictionary ID, if one was present. The ID
// is parsed and remembered but never applied (spec.md §1 non-goals).
func (fr *frame) DictionaryID() (id uint32, ok bool) { return fr.dictID, fr.hasDictID }

// HasChecksum reports whether the frame header declared a trailing content
// checksum. The checksum itself is read and discarded, never verified
// (DESIGN.md Open Question 2).
func (fr *frame) HasChecksum() bool { return fr.hasChecksum }

// String reports the frame's window size in human-readable form, e.g. for
// use in logging by a caller; the teacher's own bench tool formats sizes the
// same way (internal/tool/bench/common.go).
func (fr *frame) String() string {
	return "zstd.frame{window:" + formatSize(fr.windowSize) + "}"
}

// decode reads exactly one frame from rd into fr, growing/reusing fr.data in
// place. On success, fr.data holds the full regenerated payload and fr.cur
// is reset to 0; the Reader drains fr.data with its own cursor.
//
// decode panics internally (bitReader reads panic on I/O failure; format
// violations panic with one of the Err* sentinels in error.go) and the
// caller is expected to recover at its own boundary — mirroring
// flate.Reader.Read and brotli.Reader.Read, except the recover happens in
// the Reader that owns this frame (see reader.go) rather than in decode
// itself, since decode's entire body is one unit of work with no partial
// results to preserve across a panic.
//
// decode reports atEOF true only when the underlying source was exhausted
// before any byte of a new frame was read — the one case that is not an
// error, since a stream of concatenated frames legitimately ends there.
func (fr *frame) decode(rd io.Reader) (atEOF bool) {
	var br bitReader
	br.Init(rd)

	b0, eof := br.TryReadU8()
	if eof {
		return true
	}
	magic := uint32(b0) | br.ReadU24()<<8
	errs.Assert(magic == frameMagic, ErrMagicNumber)

	fr.readHeader(&br)

	fr.data = fr.data[:0]
	if cap(fr.data) < int(fr.windowSize) {
		fr.data = make([]byte, fr.windowSize)
	} else {
		fr.data = fr.data[:fr.windowSize]
	}
	fr.cur = 0

	firstBlock := true
	for {
		last, bt, size := readBlockHeader(&br)
		// A first block that is both last and empty carries no data at all
		// (the degenerate empty-frame case spec.md's NoBlocks names); an
		// ordinary single-block frame also has its one block marked last,
		// which is not an error.
		errs.Assert(!(firstBlock && last && size == 0), ErrNoBlocks)
		firstBlock = false

		switch bt {
		case blockRaw:
			br.ReadBytes(fr.writeSlice(size))
		case blockRLE:
			fill(fr.writeSlice(size), br.ReadU8())
		case blockCompressed:
			decodeCompressedBlock(&br, fr, size)
		default:
			errs.Panic(ErrInvalidBlockType)
		}

		if last {
			break
		}
	}

	if fr.hasChecksum {
		// Read and discard the trailing 4-byte XXH64-low checksum;
		// see DESIGN.md Open Question 2.
		br.ReadU32()
	}

	fr.data = fr.data[:fr.cur]
	fr.cur = 0
	return false
}

// writeSlice returns the next n bytes of the window buffer to write into,
// advancing the write cursor. Panics if the block would overflow the window,
// which the format itself should never produce for a well-formed frame.
func (fr *frame) writeSlice(n int) []byte {
	errs.Assert(fr.cur+n <= len(fr.data), ErrCorrupt)
	s := fr.data[fr.cur : fr.cur+n]
	fr.cur += n
	return s
}

func fill(buf []byte, v byte) {
	for i := range buf {
		buf[i] = v
	}
}

// readHeader parses the frame header descriptor, window descriptor,
// dictionary ID, and frame content size, per spec.md §4.2 steps 2-7.
func (fr *frame) readHeader(br *bitReader) {
	desc := br.ReadU8()
	fcsf := desc >> 6        // bits 7-6
	singleSeg := desc&0x20 != 0
	reserved := desc & 0x18 // bits 4-3
	checksumFlag := desc&0x04 != 0
	dictIDFlag := desc & 0x03 // bits 1-0

	errs.Assert(reserved == 0, ErrFrameHeaderDesc)

	fr.hasChecksum = checksumFlag

	fcsFieldSize := 0
	switch fcsf {
	case 0:
		if singleSeg {
			fcsFieldSize = 1
		}
	case 1:
		fcsFieldSize = 2
	case 2:
		fcsFieldSize = 4
	case 3:
		fcsFieldSize = 8
	}

	var windowSize uint64
	var haveWindowFromDescriptor bool
	if !singleSeg {
		wd := br.ReadU8()
		exp := uint(wd >> 3)   // bits 7-3
		mantissa := uint64(wd & 0x7) // bits 2-0
		base := uint64(1) << (10 + exp)
		add := (base / 8) * mantissa
		windowSize = base + add
		haveWindowFromDescriptor = true
	}

	switch dictIDFlag {
	case 0:
		fr.hasDictID = false
	case 1:
		fr.dictID = uint32(br.ReadU8())
		fr.hasDictID = true
	case 2:
		fr.dictID = uint32(br.ReadU16())
		fr.hasDictID = true
	case 3:
		fr.dictID = br.ReadU32()
		fr.hasDictID = true
	}

	var fcs uint64
	var haveFCS bool
	switch fcsFieldSize {
	case 0:
		// No FCS field: single_segment_flag is 0, FCSF is 0. FCS is unknown.
	case 1:
		fcs = uint64(br.ReadU8())
		haveFCS = true
	case 2:
		// 2-byte FCS is biased by 256 per the Zstandard format.
		fcs = uint64(br.ReadU16()) + 256
		haveFCS = true
	case 4:
		fcs = uint64(br.ReadU32())
		haveFCS = true
	case 8:
		fcs = br.ReadU64()
		haveFCS = true
	}

	if !haveWindowFromDescriptor {
		// single_segment_flag was set: window size comes from FCS.
		errs.Assert(haveFCS, ErrFrameHeaderDesc)
		windowSize = fcs
	}

	errs.Assert(windowSize >= minWindowSize && windowSize <= maxWindowSize, ErrWindowSize)
	fr.windowSize = windowSize
}

// readBlockHeader decodes a 3-byte little-endian block header: bit 0 is the
// last-block flag, bits 1-2 are the block type, bits 3-23 are the size,
// clamped to maxBlockSize. Per spec.md §9 item (3), the type is bits 1-2 of
// the 24-bit header — not the inconsistent mask the un-implemented reference
// source used.
func readBlockHeader(br *bitReader) (last bool, bt blockType, size int) {
	h := br.ReadU24()
	last = h&0x1 != 0
	bt = blockType((h >> 1) & 0x3)
	sz := int(h >> 3)
	if sz > maxBlockSize {
		sz = maxBlockSize
	}
	return last, bt, sz
}


