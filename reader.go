// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"errors"
	"io"

	"github.com/icza/bitio"
	"github.com/ulikunitz/lzw/internal/xlog"
)

// ReaderConfig describes the parameters for an LZW reader.
type ReaderConfig struct {
	// Trace receives the codebook events synchronously if not nil.
	Trace func(Event)

	// Logger receives debug output if not nil.
	Logger xlog.Outputter
}

// Verify checks the configuration for errors.
func (c *ReaderConfig) Verify() error {
	if c == nil {
		return errors.New("lzw: reader configuration is nil")
	}
	return nil
}

// Reader decompresses an LZW stream. The mode is read from the stream
// header.
type Reader struct {
	dec decoder
	log xlog.Outputter
	// decoded data not yet read
	buf []byte
	off int
	err error
}

// NewReader creates a reader for the compressed stream provided by r.
// It reads the mode header.
func NewReader(r io.Reader) (*Reader, error) {
	return NewReaderConfig(r, ReaderConfig{})
}

// NewReaderConfig creates a reader using the configuration. The
// compressed stream is read with an MSB-first bit reader from
// github.com/icza/bitio, which buffers r if it doesn't implement
// io.ByteReader. So more data than the stream might be consumed from r.
func NewReaderConfig(r io.Reader, cfg ReaderConfig) (*Reader, error) {
	if r == nil {
		return nil, errors.New("lzw: reader must not be nil")
	}
	return NewBitsReader(bitio.NewReader(r), cfg)
}

// NewBitsReader creates a reader that reads codewords from the given bit
// reader port.
func NewBitsReader(br BitReader, cfg ReaderConfig) (*Reader, error) {
	if br == nil {
		return nil, errors.New("lzw: bit reader must not be nil")
	}
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	r := &Reader{log: cfg.Logger}
	if err := r.dec.init(br, cfg.Trace, cfg.Logger); err != nil {
		return nil, err
	}
	xlog.Printf(r.log, "lzw: mode %s", r.dec.mode)
	return r, nil
}

// Mode returns the mode read from the stream header.
func (r *Reader) Mode() Mode { return r.dec.mode }

// Read decompresses data into p. It returns io.EOF after the
// end-of-stream codeword has been read. All other errors are fatal and
// returned by every further call.
func (r *Reader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if r.off < len(r.buf) {
			k := copy(p[n:], r.buf[r.off:])
			r.off += k
			n += k
			continue
		}
		if r.err != nil {
			break
		}
		r.buf, r.off = r.buf[:0], 0
		r.buf, r.err = r.dec.decode(r.buf)
		if r.err == io.EOF {
			s := r.Stats()
			xlog.Printf(r.log,
				"lzw: decompressed %d codewords; resets %d",
				s.Codewords, s.Resets)
		}
	}
	if n > 0 {
		return n, nil
	}
	return 0, r.err
}

// Stats returns the statistics of the stream read so far.
func (r *Reader) Stats() Stats {
	return r.dec.pol.stats()
}

// Expand decompresses the stream read from r and writes the
// uncompressed data to w. It returns the number of bytes written.
func Expand(w io.Writer, r io.Reader) (n int64, err error) {
	lr, err := NewReader(r)
	if err != nil {
		return 0, err
	}
	return io.Copy(w, lr)
}
