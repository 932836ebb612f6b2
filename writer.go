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

// WriterConfig describes the parameters for an LZW writer.
type WriterConfig struct {
	// Mode selects the management of the full codebook (default:
	// Static).
	Mode Mode

	// Trace receives the codebook events synchronously if not nil.
	Trace func(Event)

	// Logger receives debug output if not nil.
	Logger xlog.Outputter
}

// ApplyDefaults sets the defaults for unset fields. There are currently
// no fields requiring defaults; the method is provided for symmetry with
// the Verify method.
func (c *WriterConfig) ApplyDefaults() {}

// Verify checks the configuration for errors.
func (c *WriterConfig) Verify() error {
	if c == nil {
		return errors.New("lzw: writer configuration is nil")
	}
	return c.Mode.Verify()
}

// Writer compresses data written to it. Close must be called to write
// the end-of-stream codeword and the pending bits.
type Writer struct {
	enc    encoder
	closer io.Closer
	log    xlog.Outputter
	n      int64
	err    error
}

// NewWriter creates a writer for the given mode that writes the
// compressed stream to w.
func NewWriter(w io.Writer, m Mode) (*Writer, error) {
	return NewWriterConfig(w, WriterConfig{Mode: m})
}

// NewWriterConfig creates a writer using the configuration. The writer
// uses an MSB-first bit writer from github.com/icza/bitio. Buffering is
// provided if w doesn't implement io.ByteWriter.
func NewWriterConfig(w io.Writer, cfg WriterConfig) (*Writer, error) {
	if w == nil {
		return nil, errors.New("lzw: writer must not be nil")
	}
	return NewBitsWriter(bitio.NewWriter(w), cfg)
}

// NewBitsWriter creates a writer that writes codewords to the given bit
// writer port. If bw implements io.Closer it will be closed by the Close
// method of the writer.
func NewBitsWriter(bw BitWriter, cfg WriterConfig) (*Writer, error) {
	if bw == nil {
		return nil, errors.New("lzw: bit writer must not be nil")
	}
	cfg.ApplyDefaults()
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	w := &Writer{log: cfg.Logger}
	if err := w.enc.init(bw, cfg.Mode, cfg.Trace, cfg.Logger); err != nil {
		return nil, err
	}
	if c, ok := bw.(io.Closer); ok {
		w.closer = c
	}
	return w, nil
}

// WriteByte compresses a single byte.
func (w *Writer) WriteByte(c byte) error {
	if w.err != nil {
		return w.err
	}
	if w.err = w.enc.writeByte(c); w.err != nil {
		return w.err
	}
	w.n++
	return nil
}

// Write compresses the data in p.
func (w *Writer) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	for i, c := range p {
		if err = w.enc.writeByte(c); err != nil {
			w.err = err
			w.n += int64(i)
			return i, err
		}
	}
	w.n += int64(len(p))
	return len(p), nil
}

// Close writes the pending codewords, the end-of-stream codeword and the
// trailing bits. It doesn't close the underlying writer. Writes after
// Close return ErrClosed.
func (w *Writer) Close() error {
	if w.err != nil {
		if w.err == ErrClosed {
			return nil
		}
		return w.err
	}
	if err := w.enc.close(); err != nil {
		w.err = err
		return err
	}
	if w.closer != nil {
		if err := w.closer.Close(); err != nil {
			w.err = err
			return err
		}
	}
	s := w.Stats()
	xlog.Printf(w.log, "lzw: compressed %d bytes into %d codewords; resets %d",
		w.n, s.Codewords+1, s.Resets)
	w.err = ErrClosed
	return nil
}

// Stats returns the statistics of the stream written so far. Bytes
// waiting for a longer match are not included.
func (w *Writer) Stats() Stats {
	return w.enc.pol.stats()
}

// Compress compresses all data from r using the given mode and writes
// the compressed stream to w. It returns the number of bytes read from
// r.
func Compress(w io.Writer, r io.Reader, m Mode) (n int64, err error) {
	lw, err := NewWriter(w, m)
	if err != nil {
		return 0, err
	}
	if n, err = io.Copy(lw, r); err != nil {
		return n, err
	}
	err = lw.Close()
	return n, err
}
