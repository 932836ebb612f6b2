// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ulikunitz/lzw"
)

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		pck  packer
		path string
		out  string
		tmp  string
		err  bool
	}{
		{lzwPacker{}, "-", "-", "-", false},
		{lzwPacker{}, "a.txt", "a.txt.lzw", "a.txt.lzw.pack", false},
		{lzwPacker{}, "a.lzw", "", "", true},
		{lzwPacker{}, "", "", "", true},
		{lzwUnpacker{}, "a.txt.lzw", "a.txt", "a.txt.unpack", false},
		{lzwUnpacker{}, "a.txt", "", "", true},
		{lzwUnpacker{}, "dir/.lzw", "", "", true},
	}
	for _, tc := range tests {
		out, tmp, err := tc.pck.outputPaths(tc.path)
		if tc.err {
			if err == nil {
				t.Errorf("%T.outputPaths(%q) returned no error",
					tc.pck, tc.path)
			}
			continue
		}
		if err != nil {
			t.Errorf("%T.outputPaths(%q) error %s", tc.pck, tc.path, err)
			continue
		}
		if out != tc.out || tmp != tc.tmp {
			t.Errorf("%T.outputPaths(%q) = %q, %q; want %q, %q",
				tc.pck, tc.path, out, tmp, tc.out, tc.tmp)
		}
	}
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fox.txt")
	data := []byte(strings.Repeat(
		"The quick brown fox jumps over the lazy dog.\n", 1000))
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	for _, m := range []lzw.Mode{lzw.Static, lzw.ResetOnFull, lzw.Monitor} {
		opts := &options{keep: true, force: true, mode: m}
		if err := processFile(path, opts); err != nil {
			t.Fatalf("%s: compress error %s", m, err)
		}
		z, err := os.ReadFile(path + lzwSuffix)
		if err != nil {
			t.Fatal(err)
		}
		if len(z) >= len(data) {
			t.Errorf("%s: compressed size %d not smaller than %d",
				m, len(z), len(data))
		}
		if err = os.Remove(path); err != nil {
			t.Fatal(err)
		}
		opts = &options{decompress: true}
		if err = processFile(path+lzwSuffix, opts); err != nil {
			t.Fatalf("%s: decompress error %s", m, err)
		}
		if _, err = os.Stat(path + lzwSuffix); !os.IsNotExist(err) {
			t.Errorf("%s: compressed file not removed", m)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("%s: decompressed data differs", m)
		}
	}
}

func TestProcessFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a")
	if err := os.WriteFile(path, []byte("aaaa"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path+lzwSuffix, nil, 0644); err != nil {
		t.Fatal(err)
	}
	err := processFile(path, &options{keep: true})
	if err == nil || !strings.Contains(err.Error(), "exists") {
		t.Fatalf("processFile returned %v; want exists error", err)
	}
}

func TestUserError(t *testing.T) {
	_, err := os.Lstat(filepath.Join(t.TempDir(), "missing"))
	err = userError(err)
	if strings.Contains(err.Error(), "lstat") {
		t.Fatalf("user error %q contains operation", err)
	}
}

// closeCounter counts the Close calls of the writer.
type closeCounter struct {
	bytes.Buffer
	closed int
}

func (c *closeCounter) Close() error {
	c.closed++
	return nil
}

func TestPackKeepsWriterOpen(t *testing.T) {
	data := []byte(strings.Repeat("abcabcabd", 500))
	for _, m := range []lzw.Mode{lzw.Static, lzw.ResetOnFull, lzw.Monitor} {
		var z closeCounter
		opts := &options{mode: m}
		s, err := lzwPacker{}.pack(&z, bytes.NewReader(data), opts)
		if err != nil {
			t.Fatalf("%s: pack error %s", m, err)
		}
		if z.closed != 0 {
			t.Fatalf("%s: pack closed its writer %d times", m, z.closed)
		}
		if s.Mode != m || s.InBits != 8*int64(len(data)) {
			t.Fatalf("%s: pack stats %+v", m, s)
		}
		var out closeCounter
		if _, err = (lzwUnpacker{}).pack(&out, &z, opts); err != nil {
			t.Fatalf("%s: unpack error %s", m, err)
		}
		if out.closed != 0 {
			t.Fatalf("%s: unpack closed its writer %d times", m,
				out.closed)
		}
		if !bytes.Equal(out.Bytes(), data) {
			t.Fatalf("%s: unpacked data differs", m)
		}
	}
}

// closingPacker closes the input file before packing.
type closingPacker struct{ lzwPacker }

func (p closingPacker) pack(w io.Writer, r io.Reader, opts *options) (lzw.Stats, error) {
	if f, ok := r.(*os.File); ok {
		f.Close()
	}
	return p.lzwPacker.pack(w, bytes.NewReader(nil), opts)
}

func TestPackFileInputCloseError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a")
	if err := os.WriteFile(path, []byte("aaaa"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := packFile(closingPacker{}, path, path+".tmp", &options{})
	if !errors.Is(err, os.ErrClosed) {
		t.Fatalf("packFile returned %v; want %v", err, os.ErrClosed)
	}
}
