// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/lzw"
	"github.com/ulikunitz/lzw/internal/xio"
	"github.com/ulikunitz/lzw/internal/xlog"
)

const lzwSuffix = ".lzw"

// packer is implemented by compression and decompression.
type packer interface {
	outputPaths(path string) (outputPath, tmpPath string, err error)
	pack(w io.Writer, r io.Reader, opts *options) (lzw.Stats, error)
}

type lzwPacker struct{}

func (p lzwPacker) outputPaths(path string) (out, tmp string, err error) {
	if path == "-" {
		return "-", "-", nil
	}
	if path == "" {
		return "", "", errors.New("path is empty")
	}
	if strings.HasSuffix(path, lzwSuffix) {
		return "", "", fmt.Errorf("path %s has suffix %s -- ignored",
			path, lzwSuffix)
	}
	out = path + lzwSuffix
	tmp = out + ".pack"
	return out, tmp, nil
}

func config(opts *options) (wcfg lzw.WriterConfig, rcfg lzw.ReaderConfig) {
	wcfg.Mode = opts.mode
	if opts.verbose {
		wcfg.Logger = xlog.Default()
		rcfg.Logger = xlog.Default()
	}
	return wcfg, rcfg
}

func (p lzwPacker) pack(w io.Writer, r io.Reader, opts *options) (s lzw.Stats, err error) {
	if w == nil {
		panic("writer w is nil")
	}
	if r == nil {
		panic("reader r is nil")
	}
	cfg, _ := config(opts)
	bw := bufio.NewWriter(w)
	z, err := lzw.NewWriterConfig(bw, cfg)
	if err != nil {
		return s, err
	}
	// w is closed by the caller
	stack := xio.NewWriteCloserStack(xio.NopCloser(w), xio.FlushCloser(bw), z)
	if _, err = io.Copy(stack, bufio.NewReader(r)); err != nil {
		stack.Close()
		return s, err
	}
	if err = stack.Close(); err != nil {
		return s, err
	}
	return z.Stats(), nil
}

type lzwUnpacker struct{}

func (u lzwUnpacker) outputPaths(path string) (out, tmp string, err error) {
	if path == "-" {
		return "-", "-", nil
	}
	if !strings.HasSuffix(path, lzwSuffix) {
		return "", "", fmt.Errorf("path %s has no suffix %s",
			path, lzwSuffix)
	}
	if filepath.Base(path) == lzwSuffix {
		return "", "", fmt.Errorf(
			"path %s has only suffix %s as filename",
			path, lzwSuffix)
	}
	out = path[:len(path)-len(lzwSuffix)]
	tmp = out + ".unpack"
	return out, tmp, nil
}

func (u lzwUnpacker) pack(w io.Writer, r io.Reader, opts *options) (s lzw.Stats, err error) {
	if w == nil {
		panic("writer w is nil")
	}
	if r == nil {
		panic("reader r is nil")
	}
	// pack actually unpacks
	_, cfg := config(opts)
	z, err := lzw.NewReaderConfig(bufio.NewReader(r), cfg)
	if err != nil {
		return s, err
	}
	stack := xio.NewWriteCloserStack(xio.NopCloser(w),
		xio.FlushCloser(bufio.NewWriter(w)))
	if _, err = io.Copy(stack, z); err != nil {
		stack.Close()
		return s, err
	}
	if err = stack.Close(); err != nil {
		return s, err
	}
	return z.Stats(), nil
}

// signalHandler removes the temporary file if the program is
// interrupted. The returned channel must be closed to stop the handler.
func signalHandler(tmpPath string) chan<- struct{} {
	quit := make(chan struct{})
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, termsigs...)
	go func() {
		select {
		case <-quit:
			signal.Stop(sigch)
			return
		case <-sigch:
			if tmpPath != "-" {
				os.Remove(tmpPath)
			}
			os.Exit(7)
		}
	}()
	return quit
}

// packFile opens the input file and the temporary output file and calls
// the packer.
func packFile(pck packer, path, tmpPath string, opts *options) (s lzw.Stats, err error) {
	// open reader
	var r *os.File
	if path == "-" {
		r = os.Stdin
	} else {
		fi, err := os.Lstat(path)
		if err != nil {
			return s, err
		}
		if !fi.Mode().IsRegular() {
			return s, fmt.Errorf("%s is not a regular file", path)
		}
		if r, err = os.Open(path); err != nil {
			return s, err
		}
	}
	defer func() {
		if err != nil {
			r.Close()
		} else {
			err = r.Close()
		}
	}()

	// open writer
	var w *os.File
	if tmpPath == "-" {
		w = os.Stdout
	} else {
		if opts.force {
			os.Remove(tmpPath)
		}
		w, err = os.OpenFile(tmpPath,
			os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
		if err != nil {
			return s, err
		}
		defer func() {
			if err != nil {
				w.Close()
			} else {
				err = w.Close()
			}
		}()
	}

	return pck.pack(w, r, opts)
}

// isTerminal reports whether the file is a character device.
func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// userPathError represents a path error presentable to a user. It
// doesn't contain the operation of os.PathError.
type userPathError struct {
	Path string
	Err  error
}

func (e *userPathError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

// userError removes the operation information from path errors.
func userError(err error) error {
	var pe *os.PathError
	if !errors.As(err, &pe) {
		return err
	}
	return &userPathError{Path: pe.Path, Err: pe.Err}
}

func processFile(path string, opts *options) error {
	var pck packer
	if opts.decompress {
		pck = lzwUnpacker{}
	} else {
		pck = lzwPacker{}
	}
	outputPath, tmpPath, err := pck.outputPaths(path)
	if err != nil {
		return err
	}
	if opts.stdout {
		outputPath, tmpPath = "-", "-"
	}
	if tmpPath == "-" && !opts.decompress && !opts.force &&
		isTerminal(os.Stdout) {
		return errors.New(
			"compressed data not written to a terminal; use -f to force")
	}
	if outputPath != "-" {
		if _, err = os.Lstat(outputPath); err == nil && !opts.force {
			return fmt.Errorf("file %s exists", outputPath)
		}
	}
	defer func() {
		if tmpPath != "-" {
			os.Remove(tmpPath)
		}
	}()
	quit := signalHandler(tmpPath)
	defer close(quit)

	s, err := packFile(pck, path, tmpPath, opts)
	if err != nil {
		return err
	}
	if tmpPath != "-" && outputPath != "-" {
		if err = os.Rename(tmpPath, outputPath); err != nil {
			return err
		}
	}
	xlog.Debugf("%s: mode %s, %d codewords, %d resets, ratio %.3f",
		path, s.Mode, s.Codewords, s.Resets, s.Ratio())
	if !opts.keep && !opts.stdout && path != "-" {
		if err = os.Remove(path); err != nil {
			return err
		}
	}
	return nil
}
