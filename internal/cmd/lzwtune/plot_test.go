// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ulikunitz/lzw/internal/tuning"
)

func testFiles() []tuning.File {
	text := strings.Repeat("It was the best of times, it was the worst of times.\n", 4000)
	return []tuning.File{
		{Name: "text", Data: []byte(text)},
		{Name: "zeros", Data: make([]byte, 100000)},
	}
}

func TestPlotCurves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curves.svg")
	if err := plotCurves(path, testFiles(), 16<<10); err != nil {
		t.Fatalf("plotCurves error %s", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Fatalf("output is not an SVG file")
	}
}

func TestCompare(t *testing.T) {
	var buf bytes.Buffer
	if err := compare(&buf, testFiles(), true); err != nil {
		t.Fatalf("compare error %s", err)
	}
	out := buf.String()
	for _, s := range []string{"static", "reset", "monitor", "Result"} {
		if !strings.Contains(out, s) {
			t.Errorf("output doesn't contain %q", s)
		}
	}
}
