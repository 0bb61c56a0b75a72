// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package zstd

import (
	"github.com/dsnet/golib/errs"
	"github.com/dsnet/golib/strconv"
)

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "zstd: " + string(e) }

var (
	// ErrMagicNumber is raised when the first four bytes of a frame are not
	// the Zstandard magic number.
	ErrMagicNumber error = Error("invalid magic number")

	// ErrFrameHeaderDesc is raised when the reserved bits of the frame
	// header descriptor byte are non-zero.
	ErrFrameHeaderDesc error = Error("reserved bits set in frame header descriptor")

	// ErrWindowSize is raised when the derived window size falls outside
	// [1000, 8000000].
	ErrWindowSize error = Error("window size out of bounds")

	// ErrNoBlocks is raised when a frame's first block header has the
	// last-block flag set and a block size of 0, meaning the frame carries
	// no data.
	ErrNoBlocks error = Error("frame contains no blocks")

	// ErrInvalidBlockType is raised when a block header's type field is the
	// reserved value.
	ErrInvalidBlockType error = Error("invalid block type")

	// ErrUnsupportedBlock is raised for every Zstd-compressed block: Huffman
	// literals decoding, the Sequences section, and sequence execution are
	// the part of the pipeline this decoder does not implement, and every
	// compressed block carries a Sequences section. See DESIGN.md Open
	// Question 1.
	ErrUnsupportedBlock error = Error("compressed block requires unimplemented literals/sequences decode")

	// ErrNotImplemented is returned by the encoder stub; see writer.go.
	ErrNotImplemented error = Error("encoder not implemented")

	// ErrCorrupt is a generic decode failure for conditions spec.md's
	// taxonomy does not name individually (e.g. a block whose declared size
	// would overflow the frame's window) but that are still format
	// violations rather than one of the five enumerated kinds.
	ErrCorrupt error = Error("stream is corrupted")
)

// formatSize renders a byte count the way the teacher's own benchmark
// tooling does (internal/tool/bench/common.go), for use in debug output.
func formatSize(n uint64) string {
	return strconv.FormatPrefix(float64(n), strconv.Base1024, 2) + "B"
}

// recoverErr turns a panic raised anywhere during a frame decode into a
// returned error, the way every reader in the teacher's packages does at its
// Read-loop boundary — wired through the teacher's own errs package
// (see xflate/meta) rather than the hand-rolled errRecover that flate,
// brotli, and internal each repeat verbatim.
func recoverErr(err *error) {
	errs.Recover(err)
}
