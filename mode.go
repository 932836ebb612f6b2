// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"fmt"
	"strings"
)

// Mode selects how the codebook is managed after it has been filled
// completely with 16-bit codes. The mode is stored in the first two bits
// of the compressed stream.
type Mode byte

// Supported codebook modes.
const (
	// Static freezes the full codebook for the rest of the stream.
	Static Mode = iota
	// ResetOnFull resets the codebook to the literals as soon as it is
	// full.
	ResetOnFull
	// Monitor freezes the full codebook and resets it when the
	// compression ratio degrades by more than 10 percent compared to
	// the ratio measured when the codebook became full.
	Monitor
)

// maxMode is the largest valid mode value.
const maxMode = Monitor

var modeNames = [...]string{
	Static:      "static",
	ResetOnFull: "reset",
	Monitor:     "monitor",
}

// String returns the name of the mode.
func (m Mode) String() string {
	if m > maxMode {
		return fmt.Sprintf("Mode(%d)", byte(m))
	}
	return modeNames[m]
}

// Verify returns ErrMode if the mode is not supported.
func (m Mode) Verify() error {
	if m > maxMode {
		return fmt.Errorf("%w %d", ErrMode, byte(m))
	}
	return nil
}

// ParseMode converts a mode name into the mode value. Beside the names
// returned by String the single letters n (do nothing), r (reset) and m
// (monitor) are accepted. Case is ignored.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "static", "n":
		return Static, nil
	case "reset", "r":
		return ResetOnFull, nil
	case "monitor", "m":
		return Monitor, nil
	}
	return 0, fmt.Errorf("%w %q", ErrMode, s)
}
