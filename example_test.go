// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw_test

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ulikunitz/lzw"
)

func ExampleWriter() {
	const text = "TOBEORNOTTOBEORTOBEORNOT"
	var buf bytes.Buffer
	w, err := lzw.NewWriter(&buf, lzw.Monitor)
	if err != nil {
		log.Fatalf("lzw.NewWriter error %s", err)
	}
	if _, err = io.WriteString(w, text); err != nil {
		log.Fatalf("WriteString error %s", err)
	}
	if err = w.Close(); err != nil {
		log.Fatalf("w.Close() error %s", err)
	}
	r, err := lzw.NewReader(&buf)
	if err != nil {
		log.Fatalf("lzw.NewReader error %s", err)
	}
	fmt.Println(r.Mode())
	if _, err = io.Copy(os.Stdout, r); err != nil {
		log.Fatalf("io.Copy error %s", err)
	}
	fmt.Println()
	// Output:
	// monitor
	// TOBEORNOTTOBEORTOBEORNOT
}

func ExampleCompress() {
	var buf bytes.Buffer
	_, err := lzw.Compress(&buf,
		strings.NewReader("The quick brown fox jumps over the lazy dog."),
		lzw.ResetOnFull)
	if err != nil {
		log.Fatalf("lzw.Compress error %s", err)
	}
	if _, err = lzw.Expand(os.Stdout, &buf); err != nil {
		log.Fatalf("lzw.Expand error %s", err)
	}
	// Output:
	// The quick brown fox jumps over the lazy dog.
}
