// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"

	"github.com/bitmark-inc/arenatree/builder"
	"github.com/bitmark-inc/arenatree/fault"
)

// a tree file looks like:
//
//	return {
//	    roots = {
//	        {
//	            value = "root",
//	            children = {
//	                { value = "1" },
//	                { value = "2", children = { { value = "2_1" } } },
//	            },
//	        },
//	    },
//	}

type treeItem struct {
	Value    string     `gluamapper:"value"`
	Children []treeItem `gluamapper:"children"`
}

type treeFile struct {
	Roots []treeItem `gluamapper:"roots"`
}

// LoadTreeFile - read a Lua tree description
//
// returns one item per root, every item must have a non-empty value
func LoadTreeFile(fileName string) ([]builder.Item[string], error) {
	var tree treeFile
	err := ParseConfigurationFile(fileName, &tree)
	switch err {
	case nil:
	case fault.ErrNotFoundConfigFile:
		return nil, fault.ErrNotFoundTreeFile
	case fault.ErrInvalidLuaResult:
		return nil, fault.ErrInvalidTreeFile
	default:
		return nil, err
	}
	if 0 == len(tree.Roots) {
		return nil, fault.ErrInvalidTreeFile
	}

	items := make([]builder.Item[string], 0, len(tree.Roots))
	for i, r := range tree.Roots {
		item, err := convert(r, fmt.Sprintf("roots[%d]", i+1))
		if nil != err {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// internal: check and convert one item with all its children
func convert(t treeItem, path string) (builder.Item[string], error) {
	if "" == t.Value {
		return builder.Item[string]{}, fmt.Errorf("%s: %w", path, fault.ErrEmptyTreeValue)
	}
	item := builder.Item[string]{
		Value: t.Value,
	}
	for i, c := range t.Children {
		child, err := convert(c, fmt.Sprintf("%s.children[%d]", path, i+1))
		if nil != err {
			return builder.Item[string]{}, err
		}
		item.Children = append(item.Children, child)
	}
	return item, nil
}
