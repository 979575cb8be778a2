// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package arena

// the link primitives below do no validation, the callers in
// mutate.go and checked.go are responsible for that
//
//        parent
//    ______/|\_____
//   /       |      \
// prev -> (node) -> next

// internal: make prev and next adjacent children of parent
//
// when either end is None the parent's first/last child is updated
// instead; a None parent means the siblings are roots
func (a *Arena[T]) connect(parent NodeID, prev NodeID, next NodeID) {
	if !prev.IsNone() {
		a.nodes[prev.Index()].nextSibling = next
	} else if !parent.IsNone() {
		a.nodes[parent.Index()].firstChild = next
	}
	if !next.IsNone() {
		a.nodes[next.Index()].previousSibling = prev
	} else if !parent.IsNone() {
		a.nodes[parent.Index()].lastChild = prev
	}
}

// internal: take a node out of its sibling list, its children stay
func (a *Arena[T]) unlink(id NodeID) {
	n := a.At(id)
	parent, prev, next := n.parent, n.previousSibling, n.nextSibling
	n.parent = None
	n.previousSibling = None
	n.nextSibling = None
	a.connect(parent, prev, next)
}

// internal: put an unlinked node between prev and next under parent
func (a *Arena[T]) link(id NodeID, parent NodeID, prev NodeID, next NodeID) {
	n := a.At(id)
	n.parent = parent
	a.connect(parent, prev, id)
	a.connect(parent, id, next)
}

// internal: move the sibling range first..last between prev and next
// under parent
//
// the range must already be cut out of its old list, i.e. first has
// no previous sibling and last has no next sibling
func (a *Arena[T]) transplant(first NodeID, last NodeID, parent NodeID, prev NodeID, next NodeID) {
	for c := first; !c.IsNone(); c = a.nodes[c.Index()].nextSibling {
		a.nodes[c.Index()].parent = parent
	}
	a.connect(parent, prev, first)
	a.connect(parent, last, next)
}

// internal: mark a node removed, it must already be unlinked from
// its neighbours
func (a *Arena[T]) tombstone(id NodeID) {
	n := a.At(id)
	n.parent = None
	n.previousSibling = None
	n.nextSibling = None
	n.firstChild = None
	n.lastChild = None
	n.removed = true
	a.live -= 1
}
