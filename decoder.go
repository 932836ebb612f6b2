// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"fmt"
	"io"

	"github.com/ulikunitz/lzw/internal/xlog"
)

// decoder converts codewords into bytes.
type decoder struct {
	br   BitReader
	dict decoderDict
	pol  policy
	mode Mode

	started bool
	eos     bool
	// code and first byte of the previous sequence
	prev      int
	prevFirst byte
	// detached is set after a reset; prev refers then to the previous
	// epoch and prevSeq holds its sequence.
	detached bool
	prevSeq  []byte
}

// init reads the mode header and initializes the decoder.
func (d *decoder) init(br BitReader, trace func(Event), log xlog.Outputter) error {
	m, err := readHeader(br)
	if err != nil {
		return err
	}
	*d = decoder{br: br, mode: m}
	d.pol.init(m, trace, log)
	d.dict.reset()
	return nil
}

// readCode reads a single codeword with the current width.
func (d *decoder) readCode() (int, error) {
	u, err := d.br.ReadBits(uint8(d.pol.width))
	if err != nil {
		return 0, eofError(err)
	}
	if u >= uint64(d.pol.limit) {
		return 0, fmt.Errorf("%w: codeword %d exceeds width %d",
			ErrCorrupt, u, d.pol.width)
	}
	return int(u), nil
}

// addEntry appends the previous sequence extended by c to the
// dictionary.
func (d *decoder) addEntry(c byte) {
	code := d.pol.assign()
	var k int
	if d.detached {
		s := make([]byte, len(d.prevSeq)+1)
		copy(s, d.prevSeq)
		s[len(s)-1] = c
		k = d.dict.appendSeq(s)
	} else {
		k = d.dict.append(d.prev, c)
	}
	if k != code {
		panic("lzw: decoder dictionary out of sync")
	}
}

// decode reads the next codeword and appends its sequence to p. It
// returns io.EOF after the end-of-stream codeword.
func (d *decoder) decode(p []byte) ([]byte, error) {
	if d.eos {
		return p, io.EOF
	}
	code, err := d.readCode()
	if err != nil {
		return p, err
	}
	if code == eofCode {
		d.eos = true
		return p, io.EOF
	}
	if !d.started {
		if code >= literals {
			return p, fmt.Errorf("%w: first codeword %d is no literal",
				ErrCorrupt, code)
		}
		d.started = true
	} else if !d.pol.full() {
		var c byte
		switch {
		case code == d.pol.next:
			c = d.prevFirst
		case d.dict.defined(code):
			c = d.dict.first(code)
		default:
			return p, fmt.Errorf(
				"%w: code %d undefined; next code %d",
				ErrCorrupt, code, d.pol.next)
		}
		d.addEntry(c)
	}
	k := len(p)
	if p, err = d.dict.get(p, code); err != nil {
		return p, err
	}
	seq := p[k:]
	d.pol.account(len(seq))
	d.prev, d.prevFirst = code, seq[0]
	d.detached = false
	if d.pol.prepare() == reset {
		d.dict.reset()
		d.detached = true
		d.prevSeq = append(d.prevSeq[:0], seq...)
	}
	return p, nil
}
