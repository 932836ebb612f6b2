// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lzw implements an adaptive LZW compressor and decompressor with
// variable code widths.
//
// The compressed stream starts with a 2-bit mode header followed by
// codewords written most significant bit first. Codewords start with a
// width of 9 bits; the width grows up to 16 bits as the codebook fills.
// The codes 0 to 255 represent the literal bytes, 256 marks the end of
// the stream and the codes from 257 on are assigned to the codebook
// entries. The last byte is padded with zero bits.
//
// The mode determines what happens if the codebook is full:
//
//	Static       the codebook is frozen
//	ResetOnFull  the codebook is reset to the literals
//	Monitor      the codebook is reset if the compression ratio has
//	             fallen by more than 10% since the codebook got full
//
// Use Compress and Expand for whole streams or NewWriter and NewReader
// for streaming.
package lzw
