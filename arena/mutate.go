// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package arena

import (
	"github.com/bitmark-inc/arenatree/fault"
)

// Append - make child the last child of parent
//
// child is first detached from wherever it is, so an attached node
// moves; the caller must ensure child is not an ancestor of parent
// and that neither node is removed, see CheckedAppend
func (a *Arena[T]) Append(parent NodeID, child NodeID) {
	if parent == child {
		fault.Panicf("arena: append node: %s to itself", child)
	}
	a.unlink(child)
	a.link(child, parent, a.At(parent).lastChild, None)
}

// Prepend - make child the first child of parent
//
// same preconditions as Append, see CheckedPrepend
func (a *Arena[T]) Prepend(parent NodeID, child NodeID) {
	if parent == child {
		fault.Panicf("arena: prepend node: %s to itself", child)
	}
	a.unlink(child)
	a.link(child, parent, None, a.At(parent).firstChild)
}

// InsertAfter - make sibling the next sibling of node
//
// if node is a root the sibling becomes a root too, linked after it
func (a *Arena[T]) InsertAfter(node NodeID, sibling NodeID) {
	if node == sibling {
		fault.Panicf("arena: insert node: %s after itself", sibling)
	}
	a.unlink(sibling)
	n := a.At(node)
	a.link(sibling, n.parent, node, n.nextSibling)
}

// InsertBefore - make sibling the previous sibling of node
func (a *Arena[T]) InsertBefore(node NodeID, sibling NodeID) {
	if node == sibling {
		fault.Panicf("arena: insert node: %s before itself", sibling)
	}
	a.unlink(sibling)
	n := a.At(node)
	a.link(sibling, n.parent, n.previousSibling, node)
}

// Detach - unlink a node from its parent and siblings
//
// its children are unaffected and the node becomes a root; detaching
// a root without siblings does nothing
func (a *Arena[T]) Detach(id NodeID) {
	a.unlink(id)
}

// Remove - remove a single node, keeping its children
//
// the children take the removed node's place in its parent (or become
// roots), in their original order
func (a *Arena[T]) Remove(id NodeID) {
	n := a.At(id)
	if n.removed {
		fault.Panicf("arena: remove already removed node: %s", id)
	}
	parent, prev, next := n.parent, n.previousSibling, n.nextSibling
	first, last := n.firstChild, n.lastChild

	a.tombstone(id)

	if first.IsNone() {
		a.connect(parent, prev, next)
		return
	}
	a.transplant(first, last, parent, prev, next)
}

// RemoveSubtree - remove a node together with all of its descendants
//
// nodes are marked removed in post-order, nothing is reparented
func (a *Arena[T]) RemoveSubtree(id NodeID) {
	if a.At(id).removed {
		fault.Panicf("arena: remove subtree of already removed node: %s", id)
	}
	a.unlink(id)

	last := EndEdge(id)
	edge := StartEdge(id)
	for {
		if edge == last {
			a.tombstone(id)
			return
		}

		// find the successor before the links of the current node
		// are cleared
		next, ok := a.NextEdge(edge)
		if End == edge.Kind {
			a.tombstone(edge.ID)
		}
		if !ok {
			fault.Panicf("arena: remove subtree of: %s lost its way at: %s", id, edge)
		}
		edge = next
	}
}
