// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package zstd

import (
	"bufio"
	"io"

	"github.com/dsnet/golib/ioutil"
)

// bitReader wraps an opaque byte source and offers typed little-endian
// reads: byte-aligned fixed widths, and an unaligned read of up to 32 bits
// that carries leftover high bits of the last byte it consumed across calls.
//
// Unlike flate's and brotli's bitReader (which buffer many bits at once for
// speed), this one mirrors the wire format directly: Zstandard's header
// fields are either byte-aligned already, or packed at most a nibble past a
// byte boundary, so there is no benefit to a wide internal bit buffer. A
// single carry byte, as brotli's bitReader also keeps, is enough.
type bitReader struct {
	rd     ioutil.ByteReader
	offset int64 // Number of bytes read from the underlying reader
	carry  byte  // Most recently read byte, for leftover bits to reuse
}

// Init resets br to read from r, wrapping it in a bufio.Reader if it does
// not already implement ioutil.ByteReader (the io.Reader + io.ByteReader
// pair), the same fallback flate.bitReader.Init uses.
func (br *bitReader) Init(r io.Reader) {
	*br = bitReader{}
	if rr, ok := r.(ioutil.ByteReader); ok {
		br.rd = rr
	} else {
		br.rd = bufio.NewReader(r)
	}
}

// readByte reads one byte, panicking with io.ErrUnexpectedEOF on a clean EOF
// and with the underlying error otherwise — the same translation every
// reader in the teacher's packages performs at this layer.
func (br *bitReader) readByte() byte {
	c, err := br.rd.ReadByte()
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		panic(err)
	}
	br.offset++
	br.carry = c
	return c
}

// TryReadU8 reads one byte, reporting eof=true only when the underlying
// reader is exhausted with zero bytes consumed — the one case a Reader
// needs to distinguish a clean end-of-source (no more frames) from a
// truncated one (a frame header cut off mid-magic-number), since every
// other read in this package treats any EOF as corruption.
func (br *bitReader) TryReadU8() (v uint8, eof bool) {
	c, err := br.rd.ReadByte()
	if err == io.EOF {
		return 0, true
	}
	if err != nil {
		panic(err)
	}
	br.offset++
	br.carry = c
	return c, false
}

// ReadBytes fills buf entirely from the underlying reader.
func (br *bitReader) ReadBytes(buf []byte) {
	for i := range buf {
		buf[i] = br.readByte()
	}
}

// readAligned reads n bytes and assembles them into a little-endian value,
// least-significant byte first.
func (br *bitReader) readAligned(n int) uint64 {
	var v uint64
	for i := 0; i < n; i++ {
		v |= uint64(br.readByte()) << uint(8*i)
	}
	return v
}

// ReadU8 reads one byte.
func (br *bitReader) ReadU8() uint8 { return br.readByte() }

// ReadU16 reads a 16-bit little-endian unsigned integer.
func (br *bitReader) ReadU16() uint16 { return uint16(br.readAligned(2)) }

// ReadU24 reads a 24-bit little-endian unsigned integer.
func (br *bitReader) ReadU24() uint32 { return uint32(br.readAligned(3)) }

// ReadU32 reads a 32-bit little-endian unsigned integer.
func (br *bitReader) ReadU32() uint32 { return uint32(br.readAligned(4)) }

// ReadU48 reads a 48-bit little-endian unsigned integer.
func (br *bitReader) ReadU48() uint64 { return br.readAligned(6) }

// ReadU64 reads a 64-bit little-endian unsigned integer.
func (br *bitReader) ReadU64() uint64 { return br.readAligned(8) }

// Uint128 is a 128-bit little-endian unsigned integer split into two halves,
// since Go has no native 128-bit integer type.
type Uint128 struct {
	Lo, Hi uint64
}

// ReadU128 reads a 128-bit little-endian unsigned integer.
func (br *bitReader) ReadU128() Uint128 {
	lo := br.readAligned(8)
	hi := br.readAligned(8)
	return Uint128{Lo: lo, Hi: hi}
}

// ReadBits reads a b-bit (b <= 32) unaligned value, where leftover declares
// how many high bits of the most recently read byte (br.carry) were not
// consumed by the previous unaligned read and so form the low leftover bits
// of this result; leftover == 0 means "start fresh on the next byte."
//
// Callers must not request b < leftover. This is how a nibble-aligned
// variable-width field (e.g. the Zstd literals-section header) is read: see
// block.go's literals-section-header parse.
func (br *bitReader) ReadBits(b, leftover uint) uint32 {
	var val uint32
	var shift uint
	if leftover > 0 {
		val = uint32(br.carry>>(8-leftover)) & (1<<leftover - 1)
		shift = leftover
	}
	remaining := b - leftover
	for ; remaining >= 8; remaining -= 8 {
		val |= uint32(br.readByte()) << shift
		shift += 8
	}
	if remaining > 0 {
		c := br.readByte()
		val |= (uint32(c) & (1<<remaining - 1)) << shift
	}
	return val
}


