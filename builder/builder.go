// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package builder creates whole trees in an arena from a nested
// description
//
//	items := []builder.Item[string]{
//	    builder.Branch("root",
//	        builder.Leaf("1"),
//	        builder.Branch("2", builder.Leaf("2_1")),
//	    ),
//	}
//	ids, err := builder.Roots(a, items...)
package builder

import (
	"github.com/bitmark-inc/arenatree/arena"
	"github.com/bitmark-inc/arenatree/fault"
)

// Item - a payload and the items to be created below it
type Item[T any] struct {
	Value    T
	Children []Item[T]
}

// Leaf - an item without children
func Leaf[T any](value T) Item[T] {
	return Item[T]{Value: value}
}

// Branch - an item with children
func Branch[T any](value T, children ...Item[T]) Item[T] {
	return Item[T]{Value: value, Children: children}
}

// Size - number of nodes the item will create
func (item Item[T]) Size() int {
	n := 0
	stack := []Item[T]{item}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n += 1
		stack = append(stack, top.Children...)
	}
	return n
}

// AppendTo - create the items, in order, as the last children of parent
//
// nodes are created in pre-order; returns the identifiers of the
// top level items. On error every node created by the call is removed
// again, so the live count is unchanged
func AppendTo[T any](a *arena.Arena[T], parent arena.NodeID, items ...Item[T]) ([]arena.NodeID, error) {
	if a.At(parent).IsRemoved() {
		return nil, fault.ErrNodeRemoved
	}

	ids := make([]arena.NodeID, 0, len(items))
	for _, item := range items {
		id := a.NewNode(item.Value)
		ids = append(ids, id)
		if err := a.CheckedAppend(parent, id); nil != err {
			discard(a, ids)
			return nil, err
		}
		if err := appendChildren(a, id, item.Children); nil != err {
			discard(a, ids)
			return nil, err
		}
	}
	return ids, nil
}

// Roots - create each item as a separate tree
func Roots[T any](a *arena.Arena[T], items ...Item[T]) ([]arena.NodeID, error) {
	size := 0
	for _, item := range items {
		size += item.Size()
	}
	a.Reserve(size)

	ids := make([]arena.NodeID, 0, len(items))
	for _, item := range items {
		id := a.NewNode(item.Value)
		ids = append(ids, id)
		if err := appendChildren(a, id, item.Children); nil != err {
			discard(a, ids)
			return nil, err
		}
	}
	return ids, nil
}

// internal: undo a partial build
func discard[T any](a *arena.Arena[T], ids []arena.NodeID) {
	for _, id := range ids {
		if !a.At(id).IsRemoved() {
			a.RemoveSubtree(id)
		}
	}
}

type pending[T any] struct {
	parent arena.NodeID
	item   Item[T]
}

// internal: depth first creation with an explicit stack
func appendChildren[T any](a *arena.Arena[T], parent arena.NodeID, children []Item[T]) error {
	stack := make([]pending[T], 0, len(children))
	push := func(parent arena.NodeID, items []Item[T]) {
		for i := len(items) - 1; i >= 0; i -= 1 {
			stack = append(stack, pending[T]{parent: parent, item: items[i]})
		}
	}
	push(parent, children)

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		id := a.NewNode(top.item.Value)
		if err := a.CheckedAppend(top.parent, id); nil != err {
			a.RemoveSubtree(id)
			return err
		}
		push(id, top.item.Children)
	}
	return nil
}
