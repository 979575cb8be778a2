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
)

func TestAppend(t *testing.T) {
	a := arena.New[string]()
	p := a.NewNode("p")
	c1 := a.NewNode("c1")
	c2 := a.NewNode("c2")

	a.Append(p, c1)
	a.Append(p, c2)

	parent, ok := a.At(c2).Parent()
	require.True(t, ok, "no parent")
	assert.Equal(t, p, parent, "parent")
	last, _ := a.At(p).LastChild()
	assert.Equal(t, c2, last, "last child")
	first, _ := a.At(p).FirstChild()
	assert.Equal(t, c1, first, "first child")
	assert.Equal(t, []string{"c1", "c2"}, values(a, a.Children(p).Collect()), "children")
	assert.NoError(t, a.Check(), "check")
}

func TestAppendMovesAttachedNode(t *testing.T) {
	a, ids := makeTree(t)

	a.Append(ids["1_3"], ids["1_2"])

	assert.Equal(t, []string{"1_1", "1_3"}, values(a, a.Children(ids["1"]).Collect()), "old parent")
	assert.Equal(t, []string{"1_2"}, values(a, a.Children(ids["1_3"]).Collect()), "new parent")
	assert.Equal(t, []string{"1_2_1", "1_2_2"}, values(a, a.Children(ids["1_2"]).Collect()), "children travel along")
	assert.Equal(t, 6, a.Count(), "count")
	assert.NoError(t, a.Check(), "check")
}

func TestPrepend(t *testing.T) {
	a, ids := makeTree(t)
	n := a.NewNode("1_0")

	a.Prepend(ids["1"], n)
	assert.Equal(t, []string{"1_0", "1_1", "1_2", "1_3"}, values(a, a.Children(ids["1"]).Collect()), "children")

	first, _ := a.At(ids["1"]).FirstChild()
	assert.Equal(t, n, first, "first child")
	assert.NoError(t, a.Check(), "check")

	leaf := a.NewNode("only")
	a.Prepend(ids["1_1"], leaf)
	first, _ = a.At(ids["1_1"]).FirstChild()
	last, _ := a.At(ids["1_1"]).LastChild()
	assert.Equal(t, leaf, first, "first of single")
	assert.Equal(t, leaf, last, "last of single")
	assert.NoError(t, a.Check(), "check")
}

func TestInsertSiblings(t *testing.T) {
	a, ids := makeTree(t)
	before := a.NewNode("before")
	after := a.NewNode("after")
	tail := a.NewNode("tail")

	a.InsertBefore(ids["1_2"], before)
	a.InsertAfter(ids["1_2"], after)
	a.InsertAfter(ids["1_3"], tail)

	assert.Equal(t, []string{"1_1", "before", "1_2", "after", "1_3", "tail"}, values(a, a.Children(ids["1"]).Collect()), "children")
	assert.Equal(t, []string{"tail", "1_3", "after", "1_2", "before", "1_1"}, values(a, a.ReverseChildren(ids["1"]).Collect()), "reverse children")

	last, _ := a.At(ids["1"]).LastChild()
	assert.Equal(t, tail, last, "last child")
	assert.NoError(t, a.Check(), "check")
}

func TestInsertBesideRoot(t *testing.T) {
	a := arena.New[string]()
	r1 := a.NewNode("r1")
	r2 := a.NewNode("r2")
	r0 := a.NewNode("r0")

	a.InsertAfter(r1, r2)
	a.InsertBefore(r1, r0)

	assert.Equal(t, []string{"r0", "r1", "r2"}, values(a, a.FollowingSiblings(r0).Collect()), "root chain")
	assert.True(t, a.At(r2).IsRoot(), "sibling of root is not a root")
	assert.NoError(t, a.Check(), "check")
}

func TestDetach(t *testing.T) {
	a, ids := makeTree(t)

	a.Detach(ids["1_2"])
	assert.True(t, a.At(ids["1_2"]).IsRoot(), "detached node is not a root")
	assert.Equal(t, []string{"1_1", "1_3"}, values(a, a.Children(ids["1"]).Collect()), "remaining children")
	assert.Equal(t, []string{"1_2_1", "1_2_2"}, values(a, a.Children(ids["1_2"]).Collect()), "children travel along")
	require.NoError(t, a.Check(), "check")

	linksBefore := a.At(ids["1_2"]).Links()
	a.Detach(ids["1_2"])
	assert.Equal(t, linksBefore, a.At(ids["1_2"]).Links(), "second detach changed links")
	assert.Equal(t, 1, a.Ancestors(ids["1_2"]).Count(), "ancestors of detached")
	assert.NoError(t, a.Check(), "check")
}

func TestDetachReappend(t *testing.T) {
	a, ids := makeTree(t)
	expected := a.Descendants(ids["1"]).Collect()

	a.Detach(ids["1_3"])
	a.Append(ids["1"], ids["1_3"])

	assert.Equal(t, expected, a.Descendants(ids["1"]).Collect(), "round trip")
	assert.NoError(t, a.Check(), "check")
}

func TestRemoveToplevelWithNoChild(t *testing.T) {
	a := arena.New[string]()
	n1 := a.NewNode("1")

	a.Remove(n1)
	assert.True(t, a.At(n1).IsRemoved(), "not removed")
	assert.True(t, a.IsEmpty(), "not empty")
	assert.NoError(t, a.Check(), "check")
}

func TestRemoveToplevelWithChildren(t *testing.T) {
	a := arena.New[string]()
	n1 := a.NewNode("1")
	n11 := a.NewNode("1_1")
	n12 := a.NewNode("1_2")
	a.Append(n1, n11)
	a.Append(n1, n12)

	a.Remove(n1)

	assert.True(t, a.At(n11).IsRoot(), "1_1 is not a root")
	assert.True(t, a.At(n12).IsRoot(), "1_2 is not a root")
	assert.Equal(t, []arena.NodeID{n11, n12}, a.FollowingSiblings(n11).Collect(), "former children")
	assert.Equal(t, 2, a.Count(), "count")
	assert.NoError(t, a.Check(), "check")
}

func TestRemoveSplicesChildren(t *testing.T) {
	a, ids := makeTree(t)
	count := a.Count()

	a.Remove(ids["1_2"])

	assert.Equal(t, count-1, a.Count(), "count")
	assert.Equal(t, []string{"1_1", "1_2_1", "1_2_2", "1_3"}, values(a, a.Children(ids["1"]).Collect()), "spliced children")
	for _, name := range []string{"1_2_1", "1_2_2"} {
		parent, _ := a.At(ids[name]).Parent()
		assert.Equal(t, ids["1"], parent, "parent of %s", name)
	}
	removed := a.At(ids["1_2"])
	assert.True(t, removed.IsRemoved(), "not removed")
	assert.Equal(t, arena.Links{}, removed.Links(), "removed node still linked")
	assert.NoError(t, a.Check(), "check")
}

func TestRemoveFirstAndLastChild(t *testing.T) {
	a, ids := makeTree(t)

	a.Remove(ids["1_1"])
	first, _ := a.At(ids["1"]).FirstChild()
	assert.Equal(t, ids["1_2"], first, "first child")

	a.Remove(ids["1_2_2"])
	last, _ := a.At(ids["1_2"]).LastChild()
	assert.Equal(t, ids["1_2_1"], last, "last child")

	a.Remove(ids["1_3"])
	last, _ = a.At(ids["1"]).LastChild()
	assert.Equal(t, ids["1_2"], last, "last child of root")

	a.Remove(ids["1_2"])
	first, _ = a.At(ids["1"]).FirstChild()
	last, _ = a.At(ids["1"]).LastChild()
	assert.Equal(t, ids["1_2_1"], first, "only child first")
	assert.Equal(t, ids["1_2_1"], last, "only child last")

	assert.Equal(t, 2, a.Count(), "count")
	assert.NoError(t, a.Check(), "check")
}

func TestRemoveTwicePanics(t *testing.T) {
	a, ids := makeTree(t)
	a.Remove(ids["1_1"])
	assert.Panics(t, func() {
		a.Remove(ids["1_1"])
	}, "second remove did not panic")
}

func TestRemoveSubtree(t *testing.T) {
	a, ids := makeTree(t)

	a.RemoveSubtree(ids["1_2"])

	assert.Equal(t, 3, a.Count(), "count")
	for _, name := range []string{"1_2", "1_2_1", "1_2_2"} {
		n := a.At(ids[name])
		assert.True(t, n.IsRemoved(), "%s not removed", name)
		assert.Equal(t, arena.Links{}, n.Links(), "%s still linked", name)
	}
	assert.Equal(t, []string{"1_1", "1_3"}, values(a, a.Children(ids["1"]).Collect()), "remaining children")
	assert.NoError(t, a.Check(), "check")

	a.RemoveSubtree(ids["1"])
	assert.True(t, a.IsEmpty(), "not empty")
	assert.Equal(t, 6, a.Len(), "slots are not reused")
	assert.NoError(t, a.Check(), "check")
}

func TestRemoveSubtreeKeepsRootSiblings(t *testing.T) {
	a := arena.New[string]()
	r1 := a.NewNode("r1")
	r2 := a.NewNode("r2")
	r3 := a.NewNode("r3")
	a.InsertAfter(r1, r2)
	a.InsertAfter(r2, r3)
	c := a.NewNode("c")
	a.Append(r2, c)

	a.RemoveSubtree(r2)

	assert.Equal(t, []arena.NodeID{r1, r3}, a.FollowingSiblings(r1).Collect(), "root chain")
	assert.False(t, a.At(r3).IsRemoved(), "next root removed")
	assert.Equal(t, 2, a.Count(), "count")
	assert.NoError(t, a.Check(), "check")
}

func TestUncheckedSelfPanics(t *testing.T) {
	a := arena.New[int]()
	n := a.NewNode(1)

	assert.Panics(t, func() { a.Append(n, n) }, "append")
	assert.Panics(t, func() { a.Prepend(n, n) }, "prepend")
	assert.Panics(t, func() { a.InsertAfter(n, n) }, "insert after")
	assert.Panics(t, func() { a.InsertBefore(n, n) }, "insert before")
}

// the order of operations below gives: 5 [6, 7, 1 [4, 2, 3], 9, 10]
func TestDescendantsAfterMixedOperations(t *testing.T) {
	a := arena.New[int]()
	counter := 0
	next := func() arena.NodeID {
		counter += 1
		return a.NewNode(counter)
	}

	n1 := next()
	a.Append(n1, next())
	a.Append(n1, next())
	a.Prepend(n1, next())
	n5 := next()
	a.Append(n5, n1)
	a.InsertBefore(n1, next())
	a.InsertBefore(n1, next())
	a.InsertAfter(n1, next())
	a.InsertAfter(n1, next())
	n10 := next()
	a.Append(n5, n10)

	previous, ok := a.At(n10).PreviousSibling()
	require.True(t, ok, "no previous sibling")
	a.Detach(previous)

	got := []int{}
	for id := range a.Descendants(n5).All() {
		got = append(got, a.At(id).Value())
	}
	assert.Equal(t, []int{5, 6, 7, 1, 4, 2, 3, 9, 10}, got, "descendants")
	assert.NoError(t, a.Check(), "check")
}
