// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package zstd implements a streaming decoder for the Zstandard compressed
// data format, described at https://github.com/facebook/zstd.
//
// This package currently implements the outer framing layer: the magic
// number, frame header, window sizing, and block dispatcher. The innermost
// compressed-block body (Huffman-coded literals, FSE-coded sequences, and
// sequence execution) is only partially implemented; see ErrUnsupportedBlock.
package zstd

const (
	// frameMagic is the 4-byte little-endian magic number that opens every
	// Zstandard frame (wire bytes 28 B5 2F FD).
	frameMagic = 0xFD2FB528

	minWindowSize = 1000
	maxWindowSize = 8000000

	// maxBlockSize is the largest permissible block size, regardless of what
	// the block header's size field claims.
	maxBlockSize = 128000

	// defaultEncoderWindowSize is the encoder's default window size absent
	// an explicit override (see NewWriter).
	defaultEncoderWindowSize = 100000
)

// blockType is the closed set of values a block header's 2-bit type field
// may take. blockReserved can never be decoded successfully.
type blockType uint8

const (
	blockRaw blockType = iota
	blockRLE
	blockCompressed
	blockReserved
)

// literalsType mirrors the low 2 bits of a literals-section header.
type literalsType uint8

const (
	literalsRaw literalsType = iota
	literalsRLE
	literalsHuffmanTree
	literalsHuffmanTreeless
)
