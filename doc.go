// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package artradix implements an in-memory, mutable, ordered map keyed by
// variable-length byte strings, backed by an Adaptive Radix Tree (ART).
//
// An ART is a trie whose interior nodes switch representation based on
// how many children they actually hold — N4, N16, N48 and N256 — so that
// sparse subtrees stay compact while dense ones get O(1) child lookup,
// and whose single-child chains are path-compressed into an inline
// prefix rather than materialized as a run of one-child nodes.
//
// Tree and its key-typed wrappers (Uint64Map, BinaryMap) are not safe
// for concurrent use without external synchronization.
package artradix
