// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package artradix

// findChild dispatches to the variant-specific lookup. The returned index
// is variant-internal (a slot for N4/N16/N48, the byte itself for N256)
// and is the index that n.setChild expects.
func findChild[V any](n node[V], c byte) (node[V], int) {
	switch n.kind() {
	case kind4:
		return findChild4[V](n.(*node4[V]), c)
	case kind16:
		return findChild16[V](n.(*node16[V]), c)
	case kind48:
		return findChild48[V](n.(*node48[V]), c)
	case kind256:
		return findChild256[V](n.(*node256[V]), c)
	default:
		panic("adaptive radix tree: findChild on non-interior node")
	}
}

// addChild dispatches to the variant-specific insertion, which may promote
// to the next fan-out variant and return a different node.
func addChild[V any](n node[V], c byte, child node[V]) node[V] {
	switch n.kind() {
	case kind4:
		return addChild4[V](n.(*node4[V]), c, child)
	case kind16:
		return addChild16[V](n.(*node16[V]), c, child)
	case kind48:
		return addChild48[V](n.(*node48[V]), c, child)
	case kind256:
		return addChild256[V](n.(*node256[V]), c, child)
	default:
		panic("adaptive radix tree: addChild on non-interior node")
	}
}

// minimum descends leftmost to find the smallest-keyed leaf beneath n.
func minimum[V any](n node[V]) *leafNode[V] {
	if n == nil {
		return nil
	}
	if n.isLeaf() {
		return n.(*leafNode[V])
	}
	switch n.kind() {
	case kind4, kind16:
		if n.numChildren() == 0 {
			return nil
		}
		return minimum[V](n.child(0))
	case kind48:
		keys := n.keys()
		idx := 0
		for idx < 256 && keys[idx] == 0 {
			idx++
		}
		if idx == 256 {
			return nil
		}
		return minimum[V](n.child(int(keys[idx]) - 1))
	case kind256:
		idx := 0
		for idx < 256 && n.child(idx) == nil {
			idx++
		}
		if idx == 256 {
			return nil
		}
		return minimum[V](n.child(idx))
	default:
		panic("adaptive radix tree: unknown node kind")
	}
}

// maximum descends rightmost to find the largest-keyed leaf beneath n.
func maximum[V any](n node[V]) *leafNode[V] {
	if n == nil {
		return nil
	}
	if n.isLeaf() {
		return n.(*leafNode[V])
	}
	switch n.kind() {
	case kind4, kind16:
		nc := int(n.numChildren())
		if nc == 0 {
			return nil
		}
		return maximum[V](n.child(nc - 1))
	case kind48:
		keys := n.keys()
		idx := 255
		for idx >= 0 && keys[idx] == 0 {
			idx--
		}
		if idx < 0 {
			return nil
		}
		return maximum[V](n.child(int(keys[idx]) - 1))
	case kind256:
		idx := 255
		for idx >= 0 && n.child(idx) == nil {
			idx--
		}
		if idx < 0 {
			return nil
		}
		return maximum[V](n.child(idx))
	default:
		panic("adaptive radix tree: unknown node kind")
	}
}

// iterate performs an in-order traversal of the leaves beneath n, invoking
// fn(value) for each. It returns true (and stops immediately, propagating
// true upward) the moment fn returns true.
func iterate[V any](n node[V], fn func(V) bool) bool {
	if n == nil {
		return false
	}
	if n.isLeaf() {
		return fn(n.(*leafNode[V]).value)
	}
	switch n.kind() {
	case kind4, kind16:
		nc := int(n.numChildren())
		for i := 0; i < nc; i++ {
			if iterate[V](n.child(i), fn) {
				return true
			}
		}
	case kind48:
		keys := n.keys()
		for b := 0; b < 256; b++ {
			if keys[b] == 0 {
				continue
			}
			if iterate[V](n.child(int(keys[b])-1), fn) {
				return true
			}
		}
	case kind256:
		for b := 0; b < 256; b++ {
			if c := n.child(b); c != nil {
				if iterate[V](c, fn) {
					return true
				}
			}
		}
	default:
		panic("adaptive radix tree: unknown node kind")
	}
	return false
}

// removeChild deletes the child at byte c from n, compacting the variant's
// storage and demoting to a narrower variant (or, for node4, collapsing
// into its sole remaining child) when the hysteretic threshold is crossed.
func removeChild[V any](n node[V], c byte) node[V] {
	switch n.kind() {
	case kind4:
		return removeChild4[V](n.(*node4[V]), c)
	case kind16:
		return removeChild16[V](n.(*node16[V]), c)
	case kind48:
		return removeChild48[V](n.(*node48[V]), c)
	case kind256:
		return removeChild256[V](n.(*node256[V]), c)
	default:
		panic("adaptive radix tree: removeChild on non-interior node")
	}
}

func removeChild4[V any](n *node4[V], c byte) node[V] {
	nc := int(n.numChildren())
	pos := 0
	for pos < nc && n.keyBytes[pos] != c {
		pos++
	}
	if pos == nc {
		panic("adaptive radix tree: removeChild4 on absent byte")
	}
	copy(n.keyBytes[pos:nc-1], n.keyBytes[pos+1:nc])
	copy(n.kids[pos:nc-1], n.kids[pos+1:nc])
	n.kids[nc-1] = nil
	n.setNumChildren(uint8(nc - 1))

	if n.numChildren() != 1 {
		return n
	}
	return collapseNode4[V](n)
}

// collapseNode4 merges a node4 reduced to a single child into that child,
// concatenating prefixes as [n.partial | discriminating byte | child's
// partial] capped to maxPrefixLen for the cache but summed honestly into
// partialLen. The leading bytes come from n's own header and n's
// discriminating byte (n is the node being collapsed away); only the
// trailing bytes come from childNode's own cached partial, which is read
// before childNode's header is overwritten.
func collapseNode4[V any](n *node4[V]) node[V] {
	discriminant := n.keyBytes[0]
	childNode := n.kids[0]
	if childNode.isLeaf() {
		return childNode
	}

	ch := childNode.hdr()
	var merged [maxPrefixLen]byte
	prefix := min(int(n.header.partialLen), maxPrefixLen)
	copy(merged[:], n.header.partial[:prefix])
	if prefix < maxPrefixLen {
		merged[prefix] = discriminant
		prefix++
	}
	if prefix < maxPrefixLen {
		sub := min(int(ch.partialLen), maxPrefixLen-prefix)
		copy(merged[prefix:], ch.partial[:sub])
		prefix += sub
	}

	ch.partialLen = n.header.partialLen + 1 + ch.partialLen
	ch.partial = merged
	return childNode
}

func removeChild16[V any](n *node16[V], c byte) node[V] {
	nc := int(n.numChildren())
	pos := 0
	for pos < nc && n.keyBytes[pos] != c {
		pos++
	}
	if pos == nc {
		panic("adaptive radix tree: removeChild16 on absent byte")
	}
	copy(n.keyBytes[pos:nc-1], n.keyBytes[pos+1:nc])
	copy(n.kids[pos:nc-1], n.kids[pos+1:nc])
	n.kids[nc-1] = nil
	n.setNumChildren(uint8(nc - 1))

	if n.numChildren() != 3 {
		return n
	}
	n4 := newNode4[V]()
	copyHeader(&n4.header, &n.header)
	copy(n4.keyBytes[:3], n.keyBytes[:3])
	copy(n4.kids[:3], n.kids[:3])
	return n4
}

func removeChild48[V any](n *node48[V], c byte) node[V] {
	pos := n.keyBytes[c]
	n.keyBytes[c] = 0
	n.kids[pos-1] = nil
	n.setNumChildren(n.numChildren() - 1)

	if n.numChildren() != 12 {
		return n
	}
	n16 := newNode16[V]()
	copyHeader(&n16.header, &n.header)
	slot := 0
	for b := 0; b < 256; b++ {
		if n.keyBytes[b] == 0 {
			continue
		}
		n16.keyBytes[slot] = byte(b)
		n16.kids[slot] = n.kids[n.keyBytes[b]-1]
		slot++
	}
	return n16
}

func removeChild256[V any](n *node256[V], c byte) node[V] {
	n.kids[c] = nil
	n.setNumChildren(n.numChildren() - 1)

	// Resize to node48 only at 37 children, well below its capacity of 48,
	// to avoid thrashing if inserts and deletes sit right on 48/49.
	if n.numChildren() != 37 {
		return n
	}
	n48 := newNode48[V]()
	copyHeader(&n48.header, &n.header)
	pos := 0
	for b := 0; b < 256; b++ {
		if n.kids[b] == nil {
			continue
		}
		n48.kids[pos] = n.kids[b]
		n48.keyBytes[b] = byte(pos + 1)
		pos++
	}
	return n48
}
