// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xio provides helpers for chaining writers. The
// [WriteCloserStack] combines a file, a buffer and a compressor into a
// single [io.WriteCloser] that is closed from the top down.
package xio

import (
	"bufio"
	"errors"
	"io"
)

// WriteCloserStack handles multiple WriteClosers as a single WriteCloser.
// Data is written to the top of the stack.
type WriteCloserStack struct {
	Stack []io.WriteCloser
}

// NewWriteCloserStack creates a stack containing the given WriteClosers.
// The first argument is the bottom of the stack.
func NewWriteCloserStack(wcs ...io.WriteCloser) *WriteCloserStack {
	s := &WriteCloserStack{}
	for _, wc := range wcs {
		s.Push(wc)
	}
	return s
}

// Write writes data to the top WriteCloser. Writing to an empty stack
// discards the data.
func (s *WriteCloserStack) Write(p []byte) (n int, err error) {
	k := len(s.Stack)
	if k == 0 {
		return len(p), nil
	}
	return s.Stack[k-1].Write(p)
}

// Close closes all WriteClosers from the top to the bottom and joins the
// errors. The stack is empty afterwards.
func (s *WriteCloserStack) Close() error {
	var errs []error
	for k := len(s.Stack) - 1; k >= 0; k-- {
		if err := s.Stack[k].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.Stack = nil
	return errors.Join(errs...)
}

// Push adds a WriteCloser on top of the stack. It panics for nil.
func (s *WriteCloserStack) Push(wc io.WriteCloser) {
	if wc == nil {
		panic("xio: nil WriteCloser pushed on stack")
	}
	s.Stack = append(s.Stack, wc)
}

// Len returns the number of WriteClosers on the stack.
func (s *WriteCloserStack) Len() int { return len(s.Stack) }

// flushCloser flushes the buffer on Close.
type flushCloser struct {
	*bufio.Writer
}

func (f flushCloser) Close() error { return f.Flush() }

// FlushCloser returns a WriteCloser for the buffered writer whose Close
// method flushes the buffer. The underlying writer is not closed.
func FlushCloser(bw *bufio.Writer) io.WriteCloser {
	return flushCloser{bw}
}

// NopCloser returns a WriteCloser with a Close method doing nothing. It
// is used to put standard output on the stack.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
