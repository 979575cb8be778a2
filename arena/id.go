// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package arena

import (
	"strconv"
)

// NodeID - identifies a node slot within a particular arena
//
// the zero value is "no node", so links can hold a NodeID directly
// without a separate presence flag
type NodeID struct {
	index1 uint64 // one-based index, 0 = none
}

// None - the "no node" identifier
var None = NodeID{}

// NodeIDFromIndex - create an identifier from a zero-based slot index
//
// intended for code that walks the flat slot sequence, e.g. a
// serialiser; the identifier is only meaningful for the arena that
// owns that slot
func NodeIDFromIndex(index0 int) NodeID {
	if index0 < 0 {
		return None
	}
	return NodeID{index1: uint64(index0) + 1}
}

// IsNone - true if this is the "no node" identifier
func (id NodeID) IsNone() bool {
	return 0 == id.index1
}

// Index - zero-based slot index, -1 for None
func (id NodeID) Index() int {
	return int(id.index1) - 1
}

// Uint64 - the raw one-based value, 0 for None
func (id NodeID) Uint64() uint64 {
	return id.index1
}

// NodeIDFromUint64 - inverse of Uint64
func NodeIDFromUint64(index1 uint64) NodeID {
	return NodeID{index1: index1}
}

// Compare - order by slot index: -1, 0, +1
func (id NodeID) Compare(other NodeID) int {
	switch {
	case id.index1 < other.index1:
		return -1
	case id.index1 > other.index1:
		return +1
	default:
		return 0
	}
}

// String - the one-based index, or "none"
func (id NodeID) String() string {
	if id.IsNone() {
		return "none"
	}
	return strconv.FormatUint(id.index1, 10)
}
