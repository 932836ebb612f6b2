// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import "fmt"

// dictEntry describes the sequence for a code. The sequence is the one of
// the prefix code followed by last. Entries that continue a sequence of a
// previous epoch store the sequence directly in seq.
type dictEntry struct {
	prefix uint16
	first  byte
	last   byte
	n      int32
	seq    []byte
}

// decoderDict maps codes to byte sequences. The codes of the literals
// and the end-of-stream code are not stored; entry k has the code
// firstCode+k.
type decoderDict struct {
	entries []dictEntry
}

// reset restores the dictionary to the literals.
func (d *decoderDict) reset() {
	for i := range d.entries {
		d.entries[i].seq = nil
	}
	d.entries = d.entries[:0]
}

// nextCode returns the code the next appended entry will get.
func (d *decoderDict) nextCode() int { return firstCode + len(d.entries) }

// defined reports whether the code resolves to a sequence.
func (d *decoderDict) defined(code int) bool {
	return (0 <= code && code < literals) ||
		(firstCode <= code && code < d.nextCode())
}

// length returns the length of the sequence for a defined code.
func (d *decoderDict) length(code int) int {
	if code < literals {
		return 1
	}
	return int(d.entries[code-firstCode].n)
}

// first returns the first byte of the sequence for a defined code.
func (d *decoderDict) first(code int) byte {
	if code < literals {
		return byte(code)
	}
	return d.entries[code-firstCode].first
}

// append adds the sequence of the defined prefix code followed by c.
func (d *decoderDict) append(prefix int, c byte) int {
	code := d.nextCode()
	if code >= maxCodes {
		panic("lzw: decoder dictionary overflow")
	}
	d.entries = append(d.entries, dictEntry{
		prefix: uint16(prefix),
		first:  d.first(prefix),
		last:   c,
		n:      int32(d.length(prefix) + 1),
	})
	return code
}

// appendSeq adds the sequence s directly. It is used for the sequences
// extending a sequence of the previous epoch. The dictionary takes
// ownership of s.
func (d *decoderDict) appendSeq(s []byte) int {
	code := d.nextCode()
	if code >= maxCodes {
		panic("lzw: decoder dictionary overflow")
	}
	d.entries = append(d.entries, dictEntry{
		first: s[0],
		last:  s[len(s)-1],
		n:     int32(len(s)),
		seq:   s,
	})
	return code
}

// get appends the sequence for code to p.
func (d *decoderDict) get(p []byte, code int) ([]byte, error) {
	if !d.defined(code) {
		return p, fmt.Errorf("%w: code %d undefined; next code %d",
			ErrCorrupt, code, d.nextCode())
	}
	n := d.length(code)
	k := len(p)
	if cap(p)-k < n {
		q := make([]byte, k, 2*cap(p)+n)
		copy(q, p)
		p = q
	}
	p = p[:k+n]
	i := k + n - 1
	for code >= firstCode {
		e := &d.entries[code-firstCode]
		if e.seq != nil {
			copy(p[k:i+1], e.seq)
			return p, nil
		}
		p[i] = e.last
		i--
		code = int(e.prefix)
	}
	p[i] = byte(code)
	return p, nil
}
