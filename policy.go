// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"fmt"

	"github.com/ulikunitz/lzw/internal/xlog"
)

// degradation is the factor by which the compression ratio must fall
// below the baseline to trigger a reset in Monitor mode.
const degradation = 1.1

// EventKind identifies the kind of a codebook event.
type EventKind int

// Codebook events reported to the trace function.
const (
	// EventGrow reports the increase of the code width.
	EventGrow EventKind = iota + 1
	// EventFull reports that the codebook is full at the maximum code
	// width. It is reported once per epoch.
	EventFull
	// EventBaseline reports the recording of the baseline ratio in
	// Monitor mode.
	EventBaseline
	// EventReset reports the reset of the codebook.
	EventReset
)

var eventNames = map[EventKind]string{
	EventGrow:     "grow",
	EventFull:     "full",
	EventBaseline: "baseline",
	EventReset:    "reset",
}

func (k EventKind) String() string {
	if s, ok := eventNames[k]; ok {
		return s
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event describes a change of the codebook state. The fields reflect the
// state after the change.
type Event struct {
	Kind EventKind
	// Width is the code width in bits.
	Width int
	// NextCode is the code that will be assigned next.
	NextCode int
	// Codewords is the number of data codewords processed.
	Codewords int64
	// InBits and OutBits count the uncompressed and compressed bits
	// of all codewords processed.
	InBits  int64
	OutBits int64
	// Ratio is InBits/OutBits.
	Ratio float64
}

// action is the decision of the policy after a codeword.
type action int

const (
	keep action = iota
	grow
	reset
)

// policy controls the code width and decides about resets of the
// codebook. The encoder and the decoder must call the methods in exactly
// the same order with the same arguments to keep their dictionaries
// synchronized.
type policy struct {
	mode Mode
	// maximum code width; tests use smaller values
	maxw int
	// code width
	width int
	// limit is 1 << width
	limit int
	// next is the code to be assigned next
	next int

	codewords int64
	inBits    int64
	outBits   int64

	baseline   float64
	monitoring bool
	// full has been reported in the current epoch
	frozen bool
	resets int

	trace func(Event)
	log   xlog.Outputter
}

// init initializes the policy for a new stream.
func (p *policy) init(m Mode, trace func(Event), log xlog.Outputter) {
	*p = policy{mode: m, maxw: maxWidth, trace: trace, log: log}
	p.clear()
}

// clear starts a new epoch.
func (p *policy) clear() {
	p.width = minWidth
	p.limit = 1 << minWidth
	p.next = firstCode
	p.frozen = false
}

// full reports whether no further codes can be assigned.
func (p *policy) full() bool { return p.next >= p.limit }

// assign returns the next code. It panics if the table is full; callers
// must check full first.
func (p *policy) assign() int {
	if p.full() {
		panic("lzw: code assigned to full table")
	}
	c := p.next
	p.next++
	return c
}

// account records a codeword for a sequence of n bytes written with the
// current width.
func (p *policy) account(n int) {
	p.codewords++
	p.inBits += 8 * int64(n)
	p.outBits += int64(p.width)
}

// ratio returns the compression ratio of all codewords accounted.
func (p *policy) ratio() float64 {
	if p.outBits == 0 {
		return 0
	}
	return float64(p.inBits) / float64(p.outBits)
}

// prepare must be called after every data codeword. It grows the code
// width if the next code doesn't fit and handles the full table
// according to the mode. If reset is returned the caller must reset its
// dictionary.
func (p *policy) prepare() action {
	if p.next < p.limit {
		return keep
	}
	if p.width < p.maxw {
		p.width++
		p.limit = 1 << p.width
		p.emit(EventGrow)
		return grow
	}
	if !p.frozen {
		p.frozen = true
		p.emit(EventFull)
	}
	switch p.mode {
	case ResetOnFull:
		p.restart()
		return reset
	case Monitor:
		r := p.ratio()
		if !p.monitoring {
			p.baseline = r
			p.monitoring = true
			p.emit(EventBaseline)
			return keep
		}
		if p.baseline/r > degradation {
			p.monitoring = false
			p.restart()
			return reset
		}
	}
	return keep
}

// restart resets the codebook state and reports it.
func (p *policy) restart() {
	p.clear()
	p.resets++
	p.emit(EventReset)
}

func (p *policy) event(k EventKind) Event {
	return Event{
		Kind:      k,
		Width:     p.width,
		NextCode:  p.next,
		Codewords: p.codewords,
		InBits:    p.inBits,
		OutBits:   p.outBits,
		Ratio:     p.ratio(),
	}
}

func (p *policy) emit(k EventKind) {
	if p.trace == nil && p.log == nil {
		return
	}
	e := p.event(k)
	xlog.Printf(p.log, "lzw: %s width %d next %d codewords %d ratio %.4f",
		k, e.Width, e.NextCode, e.Codewords, e.Ratio)
	if p.trace != nil {
		p.trace(e)
	}
}

// Stats provides statistics about a stream.
type Stats struct {
	Mode Mode
	// Codewords counts the data codewords without the end-of-stream
	// codeword.
	Codewords int64
	// InBits counts the uncompressed bits covered by the codewords.
	InBits int64
	// OutBits counts the bits of the codewords without the mode header
	// and the end-of-stream codeword.
	OutBits int64
	// Resets counts the resets of the codebook.
	Resets int
	// Width is the current code width.
	Width int
	// NextCode is the code that will be assigned next.
	NextCode int
}

// Ratio returns InBits/OutBits or zero if no codeword has been written.
func (s Stats) Ratio() float64 {
	if s.OutBits == 0 {
		return 0
	}
	return float64(s.InBits) / float64(s.OutBits)
}

func (p *policy) stats() Stats {
	return Stats{
		Mode:      p.mode,
		Codewords: p.codewords,
		InBits:    p.inBits,
		OutBits:   p.outBits,
		Resets:    p.resets,
		Width:     p.width,
		NextCode:  p.next,
	}
}
