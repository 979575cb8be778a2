// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package arena

import (
	"iter"
	"slices"

	"github.com/bitmark-inc/arenatree/fault"
)

// Arena - owns every node of a forest
type Arena[T any] struct {
	nodes []Node[T]
	live  int // nodes not yet removed
}

// New - create an initially empty arena
func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

// NewWithCapacity - create an empty arena with room for n nodes
func NewWithCapacity[T any](n int) *Arena[T] {
	if n < 0 {
		n = 0
	}
	return &Arena[T]{
		nodes: make([]Node[T], 0, n),
	}
}

// NewNode - add an unlinked node holding value and return its identifier
func (a *Arena[T]) NewNode(value T) NodeID {
	a.nodes = append(a.nodes, Node[T]{value: value})
	a.live += 1
	return NodeIDFromIndex(len(a.nodes) - 1)
}

// Get - the node for an identifier
//
// removed nodes are still returned, check IsRemoved; false only if
// the identifier lies outside this arena
func (a *Arena[T]) Get(id NodeID) (*Node[T], bool) {
	i := id.Index()
	if i < 0 || i >= len(a.nodes) {
		return nil, false
	}
	return &a.nodes[i], true
}

// At - the node for an identifier that must belong to this arena
//
// panics if the identifier is out of range, which means it was issued
// by some other arena or before a Clear
func (a *Arena[T]) At(id NodeID) *Node[T] {
	i := id.Index()
	if i < 0 || i >= len(a.nodes) {
		fault.Panicf("arena: node id: %s out of range, arena has %d slots", id, len(a.nodes))
	}
	return &a.nodes[i]
}

// Count - number of nodes that have not been removed
func (a *Arena[T]) Count() int {
	return a.live
}

// Len - number of slots, including removed nodes
func (a *Arena[T]) Len() int {
	return len(a.nodes)
}

// IsEmpty - true if there are no live nodes
func (a *Arena[T]) IsEmpty() bool {
	return 0 == a.live
}

// Capacity - number of slots available before the storage grows
func (a *Arena[T]) Capacity() int {
	return cap(a.nodes)
}

// Reserve - ensure room for at least additional more nodes
func (a *Arena[T]) Reserve(additional int) {
	if additional > 0 {
		a.nodes = slices.Grow(a.nodes, additional)
	}
}

// Clear - discard every node
//
// all previously issued identifiers become invalid; the storage is
// kept for reuse
func (a *Arena[T]) Clear() {
	clear(a.nodes)
	a.nodes = a.nodes[:0]
	a.live = 0
}

// All - every slot in creation order, including removed nodes
func (a *Arena[T]) All() iter.Seq2[NodeID, *Node[T]] {
	return func(yield func(NodeID, *Node[T]) bool) {
		for i := range a.nodes {
			if !yield(NodeIDFromIndex(i), &a.nodes[i]) {
				return
			}
		}
	}
}

// Roots - every live node without a parent, in creation order
func (a *Arena[T]) Roots() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for i := range a.nodes {
			if a.nodes[i].IsRoot() && !yield(NodeIDFromIndex(i)) {
				return
			}
		}
	}
}

// Depth - number of ancestors of a node, zero for a root
func (a *Arena[T]) Depth(id NodeID) int {
	depth := 0
	for p := a.At(id).parent; !p.IsNone(); p = a.nodes[p.Index()].parent {
		depth += 1
	}
	return depth
}

// IsAncestor - true if ancestor is id itself or lies on its parent chain
func (a *Arena[T]) IsAncestor(ancestor NodeID, id NodeID) bool {
	for n := id; !n.IsNone(); n = a.At(n).parent {
		if n == ancestor {
			return true
		}
	}
	return false
}
