// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package arena

import (
	"iter"
)

// Iterator - lazy walk along one kind of link
//
// an iterator holds only the next identifier, so it costs nothing to
// abandon part way; it must not be used across a mutation of the arena
type Iterator[T any] struct {
	arena *Arena[T]
	next  NodeID
	step  func(*Node[T]) NodeID
}

func parentOf[T any](n *Node[T]) NodeID          { return n.parent }
func nextSiblingOf[T any](n *Node[T]) NodeID     { return n.nextSibling }
func previousSiblingOf[T any](n *Node[T]) NodeID { return n.previousSibling }

func predecessorOf[T any](n *Node[T]) NodeID {
	if !n.previousSibling.IsNone() {
		return n.previousSibling
	}
	return n.parent
}

// Ancestors - the node itself, its parent, grandparent and so on up to its root
func (a *Arena[T]) Ancestors(id NodeID) Iterator[T] {
	return Iterator[T]{arena: a, next: id, step: parentOf[T]}
}

// Children - children of a node, first to last
func (a *Arena[T]) Children(id NodeID) Iterator[T] {
	return Iterator[T]{arena: a, next: a.At(id).firstChild, step: nextSiblingOf[T]}
}

// ReverseChildren - children of a node, last to first
func (a *Arena[T]) ReverseChildren(id NodeID) Iterator[T] {
	return Iterator[T]{arena: a, next: a.At(id).lastChild, step: previousSiblingOf[T]}
}

// PrecedingSiblings - the node itself, then its previous siblings nearest first
func (a *Arena[T]) PrecedingSiblings(id NodeID) Iterator[T] {
	return Iterator[T]{arena: a, next: id, step: previousSiblingOf[T]}
}

// FollowingSiblings - the node itself, then its next siblings nearest first
func (a *Arena[T]) FollowingSiblings(id NodeID) Iterator[T] {
	return Iterator[T]{arena: a, next: id, step: nextSiblingOf[T]}
}

// Predecessors - the node itself, then repeatedly the previous sibling
// or, at the start of a sibling list, the parent
//
// this is the reverse of document order back to the root
func (a *Arena[T]) Predecessors(id NodeID) Iterator[T] {
	return Iterator[T]{arena: a, next: id, step: predecessorOf[T]}
}

// Next - the next identifier, false when exhausted
func (it *Iterator[T]) Next() (NodeID, bool) {
	id := it.next
	if id.IsNone() {
		return None, false
	}
	it.next = it.step(it.arena.At(id))
	return id, true
}

// All - range over the remaining identifiers
//
// the iterator is copied, so ranging does not advance the receiver
func (it Iterator[T]) All() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for {
			id, ok := it.Next()
			if !ok || !yield(id) {
				return
			}
		}
	}
}

// Collect - the remaining identifiers as a slice
func (it Iterator[T]) Collect() []NodeID {
	ids := []NodeID{}
	for id := range it.All() {
		ids = append(ids, id)
	}
	return ids
}

// Count - number of remaining identifiers
func (it Iterator[T]) Count() int {
	n := 0
	for range it.All() {
		n += 1
	}
	return n
}

// Traverse - depth first walk of a subtree yielding Start and End edges
type Traverse[T any] struct {
	arena   *Arena[T]
	last    NodeEdge
	next    NodeEdge
	done    bool
	reverse bool
}

// Traverse - forward walk of the subtree rooted at id, from Start(id)
// to End(id)
//
// siblings of id itself are never visited
func (a *Arena[T]) Traverse(id NodeID) Traverse[T] {
	a.At(id)
	return Traverse[T]{
		arena: a,
		last:  EndEdge(id),
		next:  StartEdge(id),
	}
}

// ReverseTraverse - mirrored walk of the subtree rooted at id, from
// End(id) to Start(id) with children last to first
func (a *Arena[T]) ReverseTraverse(id NodeID) Traverse[T] {
	a.At(id)
	return Traverse[T]{
		arena:   a,
		last:    StartEdge(id),
		next:    EndEdge(id),
		reverse: true,
	}
}

// Next - the next edge, false when the walk is complete
func (t *Traverse[T]) Next() (NodeEdge, bool) {
	if t.done {
		return NodeEdge{}, false
	}
	edge := t.next
	if edge == t.last {
		t.done = true
		return edge, true
	}

	var ok bool
	if t.reverse {
		t.next, ok = t.arena.PrevEdge(edge)
	} else {
		t.next, ok = t.arena.NextEdge(edge)
	}
	if !ok {
		t.done = true
	}
	return edge, true
}

// All - range over the remaining edges
func (t Traverse[T]) All() iter.Seq[NodeEdge] {
	return func(yield func(NodeEdge) bool) {
		for {
			edge, ok := t.Next()
			if !ok || !yield(edge) {
				return
			}
		}
	}
}

// Collect - the remaining edges as a slice
func (t Traverse[T]) Collect() []NodeEdge {
	edges := []NodeEdge{}
	for edge := range t.All() {
		edges = append(edges, edge)
	}
	return edges
}

// Count - number of remaining edges
func (t Traverse[T]) Count() int {
	n := 0
	for range t.All() {
		n += 1
	}
	return n
}

// Descendants - pre-order walk of a subtree, the root first
type Descendants[T any] struct {
	traverse Traverse[T]
}

// Descendants - the node itself followed by all its descendants in pre-order
func (a *Arena[T]) Descendants(id NodeID) Descendants[T] {
	return Descendants[T]{traverse: a.Traverse(id)}
}

// Next - the next identifier, false when exhausted
func (d *Descendants[T]) Next() (NodeID, bool) {
	for {
		edge, ok := d.traverse.Next()
		if !ok {
			return None, false
		}
		if Start == edge.Kind {
			return edge.ID, true
		}
	}
}

// All - range over the remaining identifiers
func (d Descendants[T]) All() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for {
			id, ok := d.Next()
			if !ok || !yield(id) {
				return
			}
		}
	}
}

// Collect - the remaining identifiers as a slice
func (d Descendants[T]) Collect() []NodeID {
	ids := []NodeID{}
	for id := range d.All() {
		ids = append(ids, id)
	}
	return ids
}

// Count - number of remaining identifiers
func (d Descendants[T]) Count() int {
	n := 0
	for range d.All() {
		n += 1
	}
	return n
}
