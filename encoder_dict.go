// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

// noCode marks a trie node that doesn't represent a dictionary entry.
const noCode = -1

// trieNode is a node of the encoder dictionary. The root nodes with the
// indexes 0 to 255 represent the literals.
type trieNode struct {
	code     int32
	children map[byte]int32
}

// encoderDict maps byte sequences to codes. The nodes are stored in an
// arena and refer to each other by index.
//
// Usually the prefix of an entry is itself an entry. The only exception
// is the first entry after a reset, which extends a sequence of the
// previous epoch. So nodes without code may exist on the path to an
// entry.
type encoderDict struct {
	nodes []trieNode
	// number of entries without the literals
	entries int
}

// reset restores the dictionary to the 256 literals.
func (d *encoderDict) reset() {
	if cap(d.nodes) < literals {
		d.nodes = make([]trieNode, literals, 4*literals)
	}
	d.nodes = d.nodes[:literals]
	for i := range d.nodes {
		d.nodes[i] = trieNode{code: int32(i)}
	}
	d.entries = 0
}

// child returns the node for the sequence of node i extended by c.
func (d *encoderDict) child(i int32, c byte) (j int32, ok bool) {
	j, ok = d.nodes[i].children[c]
	return j, ok
}

// code returns the code of node i or noCode.
func (d *encoderDict) code(i int32) int32 { return d.nodes[i].code }

// addChild returns the child of node i for c and creates it if required.
func (d *encoderDict) addChild(i int32, c byte) int32 {
	n := &d.nodes[i]
	if j, ok := n.children[c]; ok {
		return j
	}
	j := int32(len(d.nodes))
	if n.children == nil {
		n.children = make(map[byte]int32, 2)
	}
	n.children[c] = j
	d.nodes = append(d.nodes, trieNode{code: noCode})
	return j
}

// setCode assigns the code to node j. It panics if the node has
// already a code.
func (d *encoderDict) setCode(j int32, code int) {
	n := &d.nodes[j]
	if n.code != noCode {
		panic("lzw: sequence already in dictionary")
	}
	n.code = int32(code)
	d.entries++
}

// insertChild adds the sequence of node i extended by c with the given
// code.
func (d *encoderDict) insertChild(i int32, c byte, code int) {
	d.setCode(d.addChild(i, c), code)
}

// insert adds the sequence s with the given code. The sequence must have
// at least two bytes.
func (d *encoderDict) insert(s []byte, code int) {
	if len(s) < 2 {
		panic("lzw: sequence too short for insert")
	}
	i := int32(s[0])
	for _, c := range s[1:] {
		i = d.addChild(i, c)
	}
	d.setCode(i, code)
}

// longestPrefix returns the code of the longest entry that is a prefix
// of p and its length. For an empty p n is zero.
func (d *encoderDict) longestPrefix(p []byte) (code int, n int) {
	if len(p) == 0 {
		return eofCode, 0
	}
	i := int32(p[0])
	code, n = int(p[0]), 1
	for k := 1; k < len(p); k++ {
		var ok bool
		if i, ok = d.child(i, p[k]); !ok {
			break
		}
		if c := d.code(i); c != noCode {
			code, n = int(c), k+1
		}
	}
	return code, n
}
