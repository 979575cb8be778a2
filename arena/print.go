// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package arena

import (
	"fmt"
	"io"
	"strings"
)

const (
	branchPrefix = "|-- "
	lastPrefix   = "`-- "
	branchIndent = "|   "
	lastIndent   = "    "
)

// Fprint - draw the subtree rooted at id on w, one node per line
//
//	root
//	|-- 1
//	|-- 2
//	|   `-- 2_1
//	`-- 3
//
// format renders a payload; a label containing newlines has its
// later lines indented to stay under the node
func (a *Arena[T]) Fprint(w io.Writer, id NodeID, format func(T) string) error {

	// one entry per level below the root: is the node at that level
	// the last of its siblings
	lasts := []bool{}

	t := a.Traverse(id)
	for {
		edge, ok := t.Next()
		if !ok {
			return nil
		}
		n := a.At(edge.ID)

		if End == edge.Kind {
			if edge.ID != id {
				lasts = lasts[:len(lasts)-1]
			}
			continue
		}

		indent := ""
		connector := ""
		continuation := ""
		if edge.ID != id {
			lasts = append(lasts, n.nextSibling.IsNone())
			b := strings.Builder{}
			for _, last := range lasts[:len(lasts)-1] {
				if last {
					b.WriteString(lastIndent)
				} else {
					b.WriteString(branchIndent)
				}
			}
			indent = b.String()
			if lasts[len(lasts)-1] {
				connector = lastPrefix
				continuation = lastIndent
			} else {
				connector = branchPrefix
				continuation = branchIndent
			}
		}

		for i, line := range strings.Split(format(n.value), "\n") {
			prefix := connector
			if i > 0 {
				prefix = continuation
			}
			if _, err := fmt.Fprintf(w, "%s%s%s\n", indent, prefix, line); nil != err {
				return err
			}
		}
	}
}

// PrettyPrint - the subtree rooted at id drawn as by Fprint, with
// payloads formatted by %v
func (a *Arena[T]) PrettyPrint(id NodeID) string {
	b := strings.Builder{}
	_ = a.Fprint(&b, id, func(value T) string {
		return fmt.Sprintf("%v", value)
	})
	return b.String()
}
