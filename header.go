// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package artradix

// header holds the compressed path prefix shared by all four interior
// fan-out variants. partialLen is the true prefix length; when it exceeds
// maxPrefixLen only the first maxPrefixLen bytes are cached here, and the
// rest are reconstructed on demand by descending to any leaf beneath the
// node (see prefixMismatch).
type header struct {
	partialLen uint32
	childCount uint8
	partial    [maxPrefixLen]byte
}

func (h *header) getPartialLen() uint32  { return h.partialLen }
func (h *header) setPartialLen(n uint32) { h.partialLen = n }
func (h *header) getNumChildren() uint8  { return h.childCount }
func (h *header) setNumChildren(n uint8) { h.childCount = n }
func (h *header) partialBytes() []byte   { return h.partial[:] }

// copyHeader copies num children and the cached prefix bytes from src to
// dest. Used whenever a node is promoted to the next fan-out variant.
func copyHeader(dest, src *header) {
	dest.childCount = src.childCount
	dest.partialLen = src.partialLen
	n := min(maxPrefixLen, int(src.partialLen))
	copy(dest.partial[:n], src.partial[:n])
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// checkPrefix compares key[depth:] against the cached prefix bytes and
// returns the number of matching bytes. Lookups use only this cached
// portion (optimistic prefix matching): a full match
// over min(partialLen, maxPrefixLen) bytes is treated as "prefix matched",
// any divergence beyond the cache is caught later at the leaf.
func checkPrefix(h *header, key []byte, depth int) int {
	maxCmp := min(min(int(h.partialLen), maxPrefixLen), len(key)-depth)
	var idx int
	for idx = 0; idx < maxCmp; idx++ {
		if h.partial[idx] != key[depth+idx] {
			return idx
		}
	}
	return idx
}

// prefixMismatch computes the first divergence index between the node's
// full prefix and key[depth:], descending to a leaf to recover bytes past
// the inline cache when the true prefix is longer than maxPrefixLen.
func prefixMismatch[V any](n node[V], key []byte, depth int) int {
	h := n.hdr()
	maxCmp := min(min(maxPrefixLen, int(h.partialLen)), len(key)-depth)
	var idx int
	for idx = 0; idx < maxCmp; idx++ {
		if h.partial[idx] != key[depth+idx] {
			return idx
		}
	}

	if int(h.partialLen) > maxPrefixLen {
		l := minimum[V](n)
		if l == nil {
			return idx
		}
		maxCmp = min(len(l.key), len(key)) - depth
		for ; idx < maxCmp; idx++ {
			if l.key[depth+idx] != key[depth+idx] {
				return idx
			}
		}
	}
	return idx
}
