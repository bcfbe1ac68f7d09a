// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package artradix

import "sort"

// node16 holds up to 16 children in a sorted key array, same layout as
// node4 but wide enough that lookups use binary search instead of a linear
// scan.
type node16[V any] struct {
	header
	keyBytes [16]byte
	kids     [16]node[V]
}

func newNode16[V any]() *node16[V] {
	return &node16[V]{}
}

func (n *node16[V]) kind() nodeKind { return kind16 }
func (n *node16[V]) isLeaf() bool   { return false }
func (n *node16[V]) hdr() *header   { return &n.header }

func (n *node16[V]) numChildren() uint8        { return n.header.getNumChildren() }
func (n *node16[V]) setNumChildren(c uint8)    { n.header.setNumChildren(c) }
func (n *node16[V]) keys() []byte              { return n.keyBytes[:] }
func (n *node16[V]) keyAt(i int) byte          { return n.keyBytes[i] }
func (n *node16[V]) setKeyAt(i int, b byte)    { n.keyBytes[i] = b }
func (n *node16[V]) children() []node[V]       { return n.kids[:] }
func (n *node16[V]) child(i int) node[V]       { return n.kids[i] }
func (n *node16[V]) setChild(i int, c node[V]) { n.kids[i] = c }

func (n *node16[V]) leafKey() []byte { return nil }
func (n *node16[V]) leafValue() V    { var zero V; return zero }
func (n *node16[V]) setLeafValue(V)  {}

// findChild16 binary searches the sorted key array.
func findChild16[V any](n *node16[V], c byte) (node[V], int) {
	nc := int(n.numChildren())
	idx := sort.Search(nc, func(i int) bool { return n.keyBytes[i] >= c })
	if idx < nc && n.keyBytes[idx] == c {
		return n.kids[idx], idx
	}
	return nil, -1
}

// addChild16 inserts into sorted position if there's room, otherwise
// promotes to node48 and recurses.
func addChild16[V any](n *node16[V], c byte, child node[V]) node[V] {
	if n.numChildren() < 16 {
		nc := int(n.numChildren())
		idx := sort.Search(nc, func(i int) bool { return n.keyBytes[i] >= c })
		copy(n.keyBytes[idx+1:nc+1], n.keyBytes[idx:nc])
		copy(n.kids[idx+1:nc+1], n.kids[idx:nc])
		n.keyBytes[idx] = c
		n.kids[idx] = child
		n.setNumChildren(uint8(nc + 1))
		return n
	}

	n48 := newNode48[V]()
	copyHeader(&n48.header, &n.header)
	for i := 0; i < 16; i++ {
		n48.kids[i] = n.kids[i]
		n48.keyBytes[n.keyBytes[i]] = byte(i + 1)
	}
	return addChild48[V](n48, c, child)
}
