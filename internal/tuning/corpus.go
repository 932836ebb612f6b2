// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tuning supports measuring the compression of the LZW modes on
// test corpora.
package tuning

import (
	"bytes"
	"io"
	"io/fs"

	"github.com/ulikunitz/lzw"
)

type File struct {
	Name string
	Data []byte
}

// Files reads all regular files of the corpus.
func Files(corpus fs.FS) (files []File, err error) {
	err = fs.WalkDir(corpus, ".",
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			data, err := fs.ReadFile(corpus, path)
			if err != nil {
				return err
			}
			files = append(files, File{Name: path, Data: data})
			return nil
		})
	return files, err
}

func Size(files []File) int64 {
	n := int64(0)
	for _, f := range files {
		n += int64(len(f.Data))
	}
	return n
}

type countWriter struct {
	n int64
}

func (w *countWriter) Write(p []byte) (n int, err error) {
	n = len(p)
	w.n += int64(n)
	return n, nil
}

// Result describes the compression of a single file.
type Result struct {
	Name           string
	Size           int64
	CompressedSize int64
	Stats          lzw.Stats
}

// LZWCompress compresses every file in its own stream and returns the
// total compressed size.
func LZWCompress(files []File, cfg lzw.WriterConfig) (compressedSize int64, err error) {
	for _, f := range files {
		r, err := CompressFile(f, cfg)
		compressedSize += r.CompressedSize
		if err != nil {
			return compressedSize, err
		}
	}
	return compressedSize, nil
}

// CompressFile compresses a single file and reports the result.
func CompressFile(f File, cfg lzw.WriterConfig) (r Result, err error) {
	r = Result{Name: f.Name, Size: int64(len(f.Data))}
	cw := &countWriter{}
	w, err := lzw.NewWriterConfig(cw, cfg)
	if err != nil {
		return r, err
	}
	if _, err = io.Copy(w, bytes.NewReader(f.Data)); err != nil {
		return r, err
	}
	if err = w.Close(); err != nil {
		return r, err
	}
	r.CompressedSize = cw.n
	r.Stats = w.Stats()
	return r, nil
}

// Point is a sample of the cumulative compression.
type Point struct {
	// Offset is the number of uncompressed bytes written.
	Offset int64
	// Ratio is the uncompressed size divided by the compressed size.
	Ratio float64
}

// Curve compresses the data in chunks of the given size and samples the
// cumulative compression ratio after each chunk. The resets of the
// codebook are returned as separate points.
func Curve(data []byte, m lzw.Mode, chunk int) (points, resets []Point, err error) {
	if chunk <= 0 {
		chunk = 64 << 10
	}
	var offset int64
	cfg := lzw.WriterConfig{
		Mode: m,
		Trace: func(e lzw.Event) {
			if e.Kind == lzw.EventReset {
				resets = append(resets,
					Point{Offset: e.InBits / 8, Ratio: e.Ratio})
			}
		},
	}
	cw := &countWriter{}
	w, err := lzw.NewWriterConfig(cw, cfg)
	if err != nil {
		return nil, nil, err
	}
	for len(data) > 0 {
		n := chunk
		if n > len(data) {
			n = len(data)
		}
		if _, err = w.Write(data[:n]); err != nil {
			return points, resets, err
		}
		data = data[n:]
		offset += int64(n)
		s := w.Stats()
		points = append(points, Point{Offset: offset, Ratio: s.Ratio()})
	}
	if err = w.Close(); err != nil {
		return points, resets, err
	}
	return points, resets, nil
}
