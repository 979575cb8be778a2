// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package arena

// Record - the complete state of one slot
type Record[T any] struct {
	Links   Links
	Removed bool
	Value   T
}

// Record - the state of a slot, for saving
func (a *Arena[T]) Record(id NodeID) Record[T] {
	n := a.At(id)
	return Record[T]{
		Links:   n.Links(),
		Removed: n.removed,
		Value:   n.value,
	}
}

// Restore - rebuild an arena from the records of every slot, in slot
// order
//
// the identifiers of the original arena remain valid in the result;
// the structure is verified by Check and a broken one is rejected
func Restore[T any](records []Record[T]) (*Arena[T], error) {
	a := NewWithCapacity[T](len(records))
	for _, r := range records {
		a.nodes = append(a.nodes, Node[T]{
			parent:          r.Links.Parent,
			previousSibling: r.Links.PreviousSibling,
			nextSibling:     r.Links.NextSibling,
			firstChild:      r.Links.FirstChild,
			lastChild:       r.Links.LastChild,
			removed:         r.Removed,
			value:           r.Value,
		})
		if !r.Removed {
			a.live += 1
		}
	}
	if err := a.Check(); nil != err {
		return nil, err
	}
	return a, nil
}
