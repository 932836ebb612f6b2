// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import "github.com/ulikunitz/lzw/internal/xlog"

// encoder converts bytes into codewords. Bytes are collected in pend
// until the longest dictionary entry matching the start of pend is
// known.
type encoder struct {
	bw   BitWriter
	dict encoderDict
	pol  policy

	// pending bytes; pend[:scan] have been matched
	pend []byte
	scan int
	// trie node for pend[:scan]
	node int32
	// longest entry found: code, node and length
	last     int
	lastNode int32
	lastLen  int
}

// init initializes the encoder and writes the mode header.
func (e *encoder) init(bw BitWriter, m Mode, trace func(Event), log xlog.Outputter) error {
	*e = encoder{bw: bw, pend: e.pend[:0]}
	e.pol.init(m, trace, log)
	e.dict.reset()
	return writeHeader(bw, m)
}

// advance extends the match over the pending bytes. It returns false if
// a pending byte cannot be matched.
func (e *encoder) advance() bool {
	if e.scan == 0 && len(e.pend) > 0 {
		c := e.pend[0]
		e.node = int32(c)
		e.last, e.lastNode, e.lastLen = int(c), int32(c), 1
		e.scan = 1
	}
	for e.scan < len(e.pend) {
		j, ok := e.dict.child(e.node, e.pend[e.scan])
		if !ok {
			return false
		}
		e.node = j
		e.scan++
		if c := e.dict.code(j); c != noCode {
			e.last, e.lastNode, e.lastLen = int(c), j, e.scan
		}
	}
	return true
}

// step writes the codeword for the longest match and inserts the match
// extended by the following byte into the dictionary. The remaining
// pending bytes start the next match.
func (e *encoder) step() error {
	if err := e.bw.WriteBits(uint64(e.last), uint8(e.pol.width)); err != nil {
		return err
	}
	n := e.lastLen
	e.pol.account(n)
	a := e.pol.prepare()
	if a == reset {
		e.dict.reset()
	}
	if n < len(e.pend) && !e.pol.full() {
		code := e.pol.assign()
		if a == reset {
			e.dict.insert(e.pend[:n+1], code)
		} else {
			e.dict.insertChild(e.lastNode, e.pend[n], code)
		}
	}
	k := copy(e.pend, e.pend[n:])
	e.pend = e.pend[:k]
	e.scan = 0
	return nil
}

// writeByte encodes the byte c.
func (e *encoder) writeByte(c byte) error {
	e.pend = append(e.pend, c)
	for !e.advance() {
		if err := e.step(); err != nil {
			return err
		}
	}
	return nil
}

// close encodes all pending bytes and writes the end-of-stream codeword.
func (e *encoder) close() error {
	for len(e.pend) > 0 {
		e.advance()
		if err := e.step(); err != nil {
			return err
		}
	}
	return e.bw.WriteBits(eofCode, uint8(e.pol.width))
}
