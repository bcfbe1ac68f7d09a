// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package artradix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckPrefix_StopsAtFirstDivergence(t *testing.T) {
	h := &header{partialLen: 4, partial: [maxPrefixLen]byte{1, 2, 3, 4}}
	matched := checkPrefix(h, []byte{1, 2, 9, 4, 5}, 0)
	require.Equal(t, 2, matched)
}

func TestCheckPrefix_FullMatchWithinCache(t *testing.T) {
	h := &header{partialLen: 3, partial: [maxPrefixLen]byte{7, 8, 9}}
	matched := checkPrefix(h, []byte{7, 8, 9, 10}, 0)
	require.Equal(t, 3, matched)
}

func TestPrefixMismatch_FallsBackToLeafBeyondCache(t *testing.T) {
	n4 := newNode4[int]()
	n4.header.partialLen = maxPrefixLen + 5
	for i := 0; i < maxPrefixLen; i++ {
		n4.header.partial[i] = byte(i)
	}
	fullKey := make([]byte, maxPrefixLen+5)
	for i := range fullKey {
		fullKey[i] = byte(i)
	}
	fullKey[maxPrefixLen+2] = 0xFF // diverges at index maxPrefixLen+2
	leaf := newLeaf(append(append([]byte{}, fullKey...), 0x01), 0)
	n4.setNumChildren(1)
	n4.keyBytes[0] = leaf.key[maxPrefixLen+5]
	n4.kids[0] = leaf

	queryKey := make([]byte, maxPrefixLen+5)
	for i := range queryKey {
		queryKey[i] = byte(i)
	}

	diff := prefixMismatch[int](n4, queryKey, 0)
	require.Equal(t, maxPrefixLen+2, diff)
}

func TestLongestCommonPrefix_BoundedByShorterKey(t *testing.T) {
	a := newLeaf([]byte{1, 2, 3}, 0)
	b := newLeaf([]byte{1, 2, 3, 4, 5}, 0)
	require.Equal(t, 3, a.longestCommonPrefix(b, 0))
	require.Equal(t, 1, a.longestCommonPrefix(b, 2))
}

func TestCopyHeader_CopiesCountAndCachedPrefix(t *testing.T) {
	src := &header{partialLen: 3, childCount: 7, partial: [maxPrefixLen]byte{1, 2, 3}}
	dest := &header{}
	copyHeader(dest, src)
	require.Equal(t, src.partialLen, dest.partialLen)
	require.Equal(t, src.childCount, dest.childCount)
	require.Equal(t, src.partial, dest.partial)
}
