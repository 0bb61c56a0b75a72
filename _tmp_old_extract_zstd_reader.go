// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package zstd

import (
	"bufio"
	"io"
)

// Reader is a pull-based decompressor for a stream of one or more
// concatenated Zstandard frames. It is not safe for concurrent use; distinct
// Readers over distinct sources are independent (spec.md §5).
//
// Reader owns its byte source and its current frame exclusively; the frame
// owns its output buffer. Dropping a Reader (simply no longer calling Read
// on it) is how cancellation works — there is nothing else to release.
type Reader struct {
	InputOffset  int64 // Never updated by this Reader; stays 0
	OutputOffset int64 // Total bytes emitted from Read

	rd  io.Reader
	fr  frame
	cur int // Drain cursor into fr.data
	err error
}

// NewReader constructs a Reader pulling compressed bytes from r.
func NewReader(r io.Reader) *Reader {
	zr := new(Reader)
	zr.Reset(r)
	return zr
}

// Reset reassigns zr to read a fresh stream from r, reusing zr's frame
// buffer the way flate.Reader.Reset reuses its dictDecoder. A source that
// is not an io.ByteReader is wrapped in one bufio.Reader here, shared by
// every frame decode, so bytes buffered past one frame stay available to the
// next.
func (zr *Reader) Reset(r io.Reader) error {
	if _, ok := r.(io.ByteReader); !ok {
		r = bufio.NewReader(r)
	}
	*zr = Reader{rd: r, fr: frame{data: zr.fr.data[:0]}}
	return nil
}

// DictionaryID reports the current frame's dictionary ID, if any (parsed but
// never applied; spec.md §1 non-goals).
func (zr *Reader) DictionaryID() (id uint32, ok bool) { return zr.fr.DictionaryID() }

// HasChecksum reports whether the current frame declared a trailing content
// checksum (never verified; DESIGN.md Open Question 2).
func (zr *Reader) HasChecksum() bool { return zr.fr.HasChecksum() }

// Read implements the pull interface of spec.md §4.3: it fills buf with as
// much decompressed data as is immediately available, decoding additional
// frames from the source as needed, and returns a short count (possibly
// zero) only once the source is exhausted at a frame boundary. Loop
// invariants: bytes in fr.data[0:cur) have already been delivered and are
// never re-delivered; a short return means the source ended cleanly between
// frames.
func (zr *Reader) Read(buf []byte) (int, error) {
	var total int
	for len(buf) > 0 {
		if zr.cur < len(zr.fr.data) {
			n := copy(buf, zr.fr.data[zr.cur:])
			zr.cur += n
			buf = buf[n:]
			total += n
			zr.OutputOffset += int64(n)
			continue
		}
		if zr.err != nil {
			break
		}
		if !zr.decodeNextFrame() {
			break
		}
	}
	if total > 0 {
		return total, nil
	}
	return 0, zr.err
}

// decodeNextFrame decodes the next frame into zr.fr, recovering any panic
// raised during decode into zr.err (mirroring brotli.Reader.Read's use of
// errRecover, but through the teacher's own errs.Recover; see error.go).
// It reports false whenever a new frame did not become available: either a
// clean end-of-source (zr.err is set to io.EOF) or a genuine decode error
// (zr.err holds the Err* in question).
func (zr *Reader) decodeNextFrame() (ok bool) {
	defer recoverErr(&zr.err)
	atEOF := zr.fr.decode(zr.rd)
	if atEOF {
		zr.err = io.EOF
		return false
	}
	zr.cur = 0
	return true
}


