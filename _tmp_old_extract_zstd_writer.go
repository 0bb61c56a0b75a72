// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package zstd

import "io"

// Writer is the encoder side of this package, specified only as "writes
// bytes that Reader can read back losslessly" (spec.md §6). It is not
// implemented: the teacher repository this module is modeled on sketches an
// encoder interface symmetric to its reader before filling in the body, and
// this package stops at the same point — an encoder is out of scope for the
// frame-decoder core (spec.md §1), kept here only so the two interfaces
// exist in symmetric shape.
type Writer struct {
	wr         io.Writer
	windowSize int
}

// NewWriter constructs a Writer that will write to w using windowSize as its
// maximum block/window size. A windowSize of 0 selects the default
// (100000 bytes); windowSize is clamped to maxWindowSize (8000000).
func NewWriter(w io.Writer, windowSize int) *Writer {
	if windowSize <= 0 {
		windowSize = defaultEncoderWindowSize
	}
	if windowSize > maxWindowSize {
		windowSize = maxWindowSize
	}
	return &Writer{wr: w, windowSize: windowSize}
}

// Write is not implemented; see the Writer doc comment.
func (zw *Writer) Write(p []byte) (int, error) {
	return 0, ErrNotImplemented
}

// Close is not implemented; see the Writer doc comment.
func (zw *Writer) Close() error {
	return ErrNotImplemented
}

