// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/arenatree/arena"
	"github.com/bitmark-inc/arenatree/fault"
)

func TestCheckedSelf(t *testing.T) {
	a := arena.New[string]()
	n := a.NewNode("1")

	assert.Equal(t, fault.ErrAppendSelf, a.CheckedAppend(n, n), "append")
	assert.Equal(t, fault.ErrPrependSelf, a.CheckedPrepend(n, n), "prepend")
	assert.Equal(t, fault.ErrInsertAfterSelf, a.CheckedInsertAfter(n, n), "insert after")
	assert.Equal(t, fault.ErrInsertBeforeSelf, a.CheckedInsertBefore(n, n), "insert before")

	assert.True(t, a.At(n).IsRoot(), "node was modified")
	assert.True(t, a.At(n).IsLeaf(), "node was modified")
}

func TestCheckedCycle(t *testing.T) {
	a, ids := makeTree(t)
	before := a.Traverse(ids["1"]).Collect()

	tests := []struct {
		name     string
		op       func() error
		expected error
	}{
		{"append root under grandchild", func() error { return a.CheckedAppend(ids["1_2_1"], ids["1"]) }, fault.ErrAppendSelf},
		{"prepend parent under child", func() error { return a.CheckedPrepend(ids["1_2_2"], ids["1_2"]) }, fault.ErrPrependSelf},
		{"insert parent after child", func() error { return a.CheckedInsertAfter(ids["1_2_1"], ids["1_2"]) }, fault.ErrInsertAfterSelf},
		{"insert root before grandchild", func() error { return a.CheckedInsertBefore(ids["1_2_2"], ids["1"]) }, fault.ErrInsertBeforeSelf},
	}

	for _, item := range tests {
		err := item.op()
		assert.Equal(t, item.expected, err, item.name)
		assert.True(t, fault.IsErrNode(err), "%s: error class", item.name)
	}

	assert.Equal(t, before, a.Traverse(ids["1"]).Collect(), "arena modified by a failed operation")
	assert.NoError(t, a.Check(), "check")
}

func TestCheckedSuccess(t *testing.T) {
	a, ids := makeTree(t)

	require.NoError(t, a.CheckedAppend(ids["1_1"], ids["1_3"]), "append")
	require.NoError(t, a.CheckedPrepend(ids["1_2_2"], ids["1_2_1"]), "prepend")
	extra := a.NewNode("x")
	require.NoError(t, a.CheckedInsertAfter(ids["1_1"], extra), "insert after")
	other := a.NewNode("y")
	require.NoError(t, a.CheckedInsertBefore(extra, other), "insert before")

	assert.Equal(t, []string{"1", "1_1", "1_3", "y", "x", "1_2", "1_2_2", "1_2_1"}, values(a, a.Descendants(ids["1"]).Collect()), "descendants")
	assert.NoError(t, a.Check(), "check")

	require.NoError(t, a.CheckedDetach(ids["1_2"]), "detach")
	require.NoError(t, a.CheckedRemove(ids["1_1"]), "remove")
	require.NoError(t, a.CheckedRemoveSubtree(ids["1_2"]), "remove subtree")
	assert.Equal(t, 4, a.Count(), "count")
	assert.NoError(t, a.Check(), "check")
}

func TestCheckedRemovedOperand(t *testing.T) {
	a, ids := makeTree(t)
	gone := a.NewNode("gone")
	a.Remove(gone)

	operations := map[string]func() error{
		"append parent":        func() error { return a.CheckedAppend(gone, ids["1_1"]) },
		"append child":         func() error { return a.CheckedAppend(ids["1"], gone) },
		"prepend":              func() error { return a.CheckedPrepend(ids["1"], gone) },
		"insert after":         func() error { return a.CheckedInsertAfter(gone, ids["1_1"]) },
		"insert before":        func() error { return a.CheckedInsertBefore(ids["1_1"], gone) },
		"detach":               func() error { return a.CheckedDetach(gone) },
		"remove":               func() error { return a.CheckedRemove(gone) },
		"remove subtree":       func() error { return a.CheckedRemoveSubtree(gone) },
		"remove removed child": func() error { a.Remove(ids["1_3"]); return a.CheckedRemove(ids["1_3"]) },
	}

	for name, op := range operations {
		assert.Equal(t, fault.ErrNodeRemoved, op(), name)
	}

	assert.Equal(t, 5, a.Count(), "count")
	assert.Equal(t, []string{"1_1", "1_2"}, values(a, a.Children(ids["1"]).Collect()), "children")
	assert.NoError(t, a.Check(), "check")
}

func TestAncestorScenario(t *testing.T) {
	a := arena.New[int]()
	na := a.NewNode(1)
	nb := a.NewNode(2)

	require.NoError(t, a.CheckedAppend(na, nb), "append")
	assert.Equal(t, 2, a.Ancestors(nb).Count(), "ancestors")
	assert.Equal(t, []arena.NodeID{nb, na}, a.Ancestors(nb).Collect(), "ancestors order")
	assert.Equal(t, []arena.NodeID{na, nb}, a.Descendants(na).Collect(), "descendants")

	err := a.CheckedAppend(nb, na)
	assert.Error(t, err, "cycle accepted")
	assert.True(t, fault.IsErrNode(err), "error class")
}
