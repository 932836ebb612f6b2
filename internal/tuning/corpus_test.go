// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tuning

import (
	"bytes"
	"crypto/sha256"
	"io"
	"testing"

	"github.com/ulikunitz/lzw"
	"github.com/ulikunitz/zdata"
)

var modes = []lzw.Mode{lzw.Static, lzw.ResetOnFull, lzw.Monitor}

func TestSilesia(t *testing.T) {
	if testing.Short() {
		t.Skip("slow test")
	}
	files, err := Files(zdata.Silesia)
	if err != nil {
		t.Fatalf("Files(zdata.Silesia) error %s", err)
	}

	for _, m := range modes {
		m := m
		for _, f := range files {
			f := f
			t.Run(m.String()+":"+f.Name, func(t *testing.T) {
				s := sha256.Sum256(f.Data)
				hsum := s[:]

				buf := new(bytes.Buffer)
				w, err := lzw.NewWriter(buf, m)
				if err != nil {
					t.Fatalf("lzw.NewWriter error %s", err)
				}
				_, err = io.Copy(w, bytes.NewReader(f.Data))
				if err != nil {
					t.Fatalf("%s: io.Copy compression error %s",
						f.Name, err)
				}
				if err = w.Close(); err != nil {
					t.Fatalf("%s: w.Close() error %s",
						f.Name, err)
				}

				h := sha256.New()
				r, err := lzw.NewReader(buf)
				if err != nil {
					t.Fatalf("%s: lzw.NewReader error %s",
						f.Name, err)
				}
				if r.Mode() != m {
					t.Fatalf("%s: mode %s; want %s", f.Name,
						r.Mode(), m)
				}
				_, err = io.Copy(h, r)
				if err != nil {
					t.Fatalf("%s: io.Copy decompression error %s",
						f.Name, err)
				}
				gsum := h.Sum(nil)
				if !bytes.Equal(gsum, hsum) {
					t.Errorf("%s: got %x; want %x",
						f.Name, gsum, hsum)
					return
				}
			})
		}
	}
}

func TestCompressFile(t *testing.T) {
	f := File{Name: "abc", Data: bytes.Repeat([]byte("abc"), 10000)}
	for _, m := range modes {
		r, err := CompressFile(f, lzw.WriterConfig{Mode: m})
		if err != nil {
			t.Fatalf("%s: CompressFile error %s", m, err)
		}
		if r.Size != 30000 || r.CompressedSize <= 0 ||
			r.CompressedSize >= r.Size {
			t.Fatalf("%s: unexpected result %+v", m, r)
		}
		if r.Stats.Mode != m {
			t.Fatalf("%s: stats mode %s", m, r.Stats.Mode)
		}
		n, err := LZWCompress([]File{f, f}, lzw.WriterConfig{Mode: m})
		if err != nil {
			t.Fatalf("%s: LZWCompress error %s", m, err)
		}
		if n != 2*r.CompressedSize {
			t.Fatalf("%s: LZWCompress returned %d; want %d", m, n,
				2*r.CompressedSize)
		}
	}
}

func TestCurve(t *testing.T) {
	data := make([]byte, 1<<20)
	x := uint32(1)
	for i := range data {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		data[i] = byte(x)
	}
	points, resets, err := Curve(data, lzw.ResetOnFull, 1<<16)
	if err != nil {
		t.Fatalf("Curve error %s", err)
	}
	if len(points) != 16 {
		t.Fatalf("got %d points; want 16", len(points))
	}
	if points[len(points)-1].Offset != int64(len(data)) {
		t.Fatalf("last offset %d; want %d",
			points[len(points)-1].Offset, len(data))
	}
	if len(resets) == 0 {
		t.Fatalf("no resets for random data")
	}
	for i := 1; i < len(resets); i++ {
		if resets[i].Offset <= resets[i-1].Offset {
			t.Fatalf("reset offsets not increasing: %v", resets)
		}
	}
	if _, r, err := Curve(data, lzw.Static, 0); err != nil || len(r) != 0 {
		t.Fatalf("static curve: resets %v, error %v", r, err)
	}
}
