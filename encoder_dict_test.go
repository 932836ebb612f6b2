// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import "testing"

func TestEncoderDictLongestPrefix(t *testing.T) {
	var d encoderDict
	d.reset()
	d.insert([]byte("ab"), 257)
	d.insert([]byte("abc"), 258)
	d.insert([]byte("bc"), 259)
	tests := []struct {
		in   string
		code int
		n    int
	}{
		{"", eofCode, 0},
		{"x", 'x', 1},
		{"a", 'a', 1},
		{"ab", 257, 2},
		{"abd", 257, 2},
		{"abcd", 258, 3},
		{"bcb", 259, 2},
		{"\xff\x00", 0xff, 1},
	}
	for _, tc := range tests {
		code, n := d.longestPrefix([]byte(tc.in))
		if code != tc.code || n != tc.n {
			t.Errorf("longestPrefix(%q) = %d, %d; want %d, %d",
				tc.in, code, n, tc.code, tc.n)
		}
	}
}

func TestEncoderDictDetachedEntry(t *testing.T) {
	var d encoderDict
	d.reset()
	// an entry without its prefixes, as inserted after a reset
	d.insert([]byte("abcd"), 257)
	if code, n := d.longestPrefix([]byte("abcx")); code != 'a' || n != 1 {
		t.Fatalf("longestPrefix(abcx) = %d, %d; want 'a', 1", code, n)
	}
	if code, n := d.longestPrefix([]byte("abcde")); code != 257 || n != 4 {
		t.Fatalf("longestPrefix(abcde) = %d, %d; want 257, 4", code, n)
	}
	// the node for ab exists already without code
	j, ok := d.child('a', 'b')
	if !ok || d.code(j) != noCode {
		t.Fatalf("node for ab: %d, %t", j, ok)
	}
	d.insertChild('a', 'b', 258)
	if code, n := d.longestPrefix([]byte("abcx")); code != 258 || n != 2 {
		t.Fatalf("longestPrefix(abcx) = %d, %d; want 258, 2", code, n)
	}
	if d.entries != 2 {
		t.Fatalf("entries %d; want 2", d.entries)
	}
}

func TestEncoderDictReset(t *testing.T) {
	var d encoderDict
	d.reset()
	d.insert([]byte("ab"), 257)
	d.reset()
	if _, ok := d.child('a', 'b'); ok {
		t.Fatalf("child ab exists after reset")
	}
	if len(d.nodes) != literals || d.entries != 0 {
		t.Fatalf("dictionary has %d nodes and %d entries after reset",
			len(d.nodes), d.entries)
	}
}

func TestEncoderDictDuplicatePanics(t *testing.T) {
	var d encoderDict
	d.reset()
	d.insertChild('a', 'b', 257)
	defer func() {
		if recover() == nil {
			t.Fatalf("duplicate insert didn't panic")
		}
	}()
	d.insert([]byte("ab"), 258)
}
