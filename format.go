// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"errors"
	"io"
)

// Constants of the compressed format.
const (
	// number of literal codes
	literals = 256
	// eofCode marks the end of the stream
	eofCode = 256
	// firstCode is the first code assigned to a dictionary entry
	firstCode = 257
	// code widths in bits
	minWidth = 9
	maxWidth = 16
	// maxCodes is the number of codes that can be represented with
	// maxWidth bits
	maxCodes = 1 << maxWidth
	// modeBits is the size of the mode header in bits
	modeBits = 2
)

// Errors returned by the package. Detailed errors wrap them; use
// errors.Is to test for them.
var (
	// ErrCorrupt indicates an undefined codeword in the compressed
	// stream.
	ErrCorrupt = errors.New("lzw: corrupt stream")
	// ErrUnexpectedEOF indicates that the compressed stream ended
	// before the end-of-stream codeword.
	ErrUnexpectedEOF = errors.New("lzw: unexpected end of stream")
	// ErrMode indicates an unsupported mode.
	ErrMode = errors.New("lzw: unsupported mode")
	// ErrClosed is returned for writes after Close.
	ErrClosed = errors.New("lzw: writer is closed")
)

// BitWriter is the output port of the encoder. WriteBits writes the n
// lowest bits of u, most significant bit first. The higher bits of u are
// zero. A BitWriter implementing io.Closer is closed by Writer.Close,
// which must write out pending bits padded with zeros to a byte
// boundary.
//
// *bitio.Writer from github.com/icza/bitio implements the interface.
type BitWriter interface {
	WriteBits(u uint64, n uint8) error
}

// BitReader is the input port of the decoder. ReadBits reads n bits and
// returns them in the lowest bits of u, the first bit read being the
// most significant one. It returns io.EOF or io.ErrUnexpectedEOF if the
// input is exhausted.
//
// *bitio.Reader from github.com/icza/bitio implements the interface.
type BitReader interface {
	ReadBits(n uint8) (u uint64, err error)
}

// writeHeader writes the mode header.
func writeHeader(bw BitWriter, m Mode) error {
	if err := m.Verify(); err != nil {
		return err
	}
	return bw.WriteBits(uint64(m), modeBits)
}

// readHeader reads the mode header and verifies it.
func readHeader(br BitReader) (m Mode, err error) {
	u, err := br.ReadBits(modeBits)
	if err != nil {
		return 0, eofError(err)
	}
	m = Mode(u)
	if err = m.Verify(); err != nil {
		return 0, err
	}
	return m, nil
}

// eofError converts end-of-file conditions of the bit reader into
// ErrUnexpectedEOF. The end of the stream is marked by eofCode only.
func eofError(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrUnexpectedEOF
	}
	return err
}
