// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"errors"
	"testing"
)

func TestDecoderDictGet(t *testing.T) {
	var d decoderDict
	d.reset()
	if c := d.append('a', 'b'); c != 257 {
		t.Fatalf("append returned %d; want 257", c)
	}
	if c := d.append(257, 'c'); c != 258 {
		t.Fatalf("append returned %d; want 258", c)
	}
	if c := d.appendSeq([]byte("xyz")); c != 259 {
		t.Fatalf("appendSeq returned %d; want 259", c)
	}
	if c := d.append(259, 'q'); c != 260 {
		t.Fatalf("append returned %d; want 260", c)
	}
	tests := []struct {
		code int
		want string
	}{
		{'a', "a"},
		{0, "\x00"},
		{257, "ab"},
		{258, "abc"},
		{259, "xyz"},
		{260, "xyzq"},
	}
	p := []byte("pre")
	for _, tc := range tests {
		q, err := d.get(p, tc.code)
		if err != nil {
			t.Fatalf("get(%d) error %s", tc.code, err)
		}
		if got := string(q[len(p):]); got != tc.want {
			t.Errorf("get(%d) = %q; want %q", tc.code, got, tc.want)
		}
		if string(q[:len(p)]) != "pre" {
			t.Errorf("get(%d) modified prefix", tc.code)
		}
		if d.first(tc.code) != tc.want[0] {
			t.Errorf("first(%d) = %q; want %q", tc.code,
				d.first(tc.code), tc.want[0])
		}
		if d.length(tc.code) != len(tc.want) {
			t.Errorf("length(%d) = %d; want %d", tc.code,
				d.length(tc.code), len(tc.want))
		}
	}
}

func TestDecoderDictUndefined(t *testing.T) {
	var d decoderDict
	d.reset()
	d.append('a', 'a')
	for _, code := range []int{eofCode, 258, 400, -1} {
		_, err := d.get(nil, code)
		if !errors.Is(err, ErrCorrupt) {
			t.Errorf("get(%d) error %v; want %v", code, err,
				ErrCorrupt)
		}
	}
	d.reset()
	if d.defined(257) || d.nextCode() != firstCode {
		t.Fatalf("reset didn't clear the dictionary")
	}
}
