// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package artradix

// node48 indexes up to 48 children through a 256-entry byte index:
// keyBytes[b] holds pos+1 (0 means absent), referencing a slot in the
// 48-element child pool. Unreferenced pool slots are nil.
type node48[V any] struct {
	header
	keyBytes [256]byte
	kids     [48]node[V]
}

func newNode48[V any]() *node48[V] {
	return &node48[V]{}
}

func (n *node48[V]) kind() nodeKind { return kind48 }
func (n *node48[V]) isLeaf() bool   { return false }
func (n *node48[V]) hdr() *header   { return &n.header }

func (n *node48[V]) numChildren() uint8        { return n.header.getNumChildren() }
func (n *node48[V]) setNumChildren(c uint8)    { n.header.setNumChildren(c) }
func (n *node48[V]) keys() []byte              { return n.keyBytes[:] }
func (n *node48[V]) keyAt(i int) byte          { return n.keyBytes[i] }
func (n *node48[V]) setKeyAt(i int, b byte)    { n.keyBytes[i] = b }
func (n *node48[V]) children() []node[V]       { return n.kids[:] }
func (n *node48[V]) child(i int) node[V]       { return n.kids[i] }
func (n *node48[V]) setChild(i int, c node[V]) { n.kids[i] = c }

func (n *node48[V]) leafKey() []byte { return nil }
func (n *node48[V]) leafValue() V    { var zero V; return zero }
func (n *node48[V]) setLeafValue(V)  {}

// findChild48 is a two-step O(1) lookup: byte -> index into the pool.
func findChild48[V any](n *node48[V], c byte) (node[V], int) {
	i := n.keyBytes[c]
	if i == 0 {
		return nil, -1
	}
	return n.kids[i-1], int(i - 1)
}

// addChild48 places the child in the first free pool slot if there's
// room, otherwise promotes to node256 and recurses.
func addChild48[V any](n *node48[V], c byte, child node[V]) node[V] {
	if n.numChildren() < 48 {
		pos := 0
		for n.kids[pos] != nil {
			pos++
		}
		n.kids[pos] = child
		n.keyBytes[c] = byte(pos + 1)
		n.setNumChildren(n.numChildren() + 1)
		return n
	}

	n256 := newNode256[V]()
	copyHeader(&n256.header, &n.header)
	for b := 0; b < 256; b++ {
		if n.keyBytes[b] != 0 {
			n256.kids[b] = n.kids[n.keyBytes[b]-1]
		}
	}
	return addChild256[V](n256, c, child)
}
