// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/arenatree/builder"
	"github.com/bitmark-inc/arenatree/configuration"
	"github.com/bitmark-inc/arenatree/fault"
)

func TestLoadTreeFile(t *testing.T) {
	fileName := writeLua(t, "tree.lua", `
local function leaf(v) return { value = v } end
return {
    roots = {
        {
            value = "root",
            children = {
                leaf("1"),
                { value = "2", children = { leaf("2_1") } },
            },
        },
        leaf("other"),
    },
}
`)

	items, err := configuration.LoadTreeFile(fileName)
	require.NoError(t, err, "load")

	expected := []builder.Item[string]{
		builder.Branch("root",
			builder.Leaf("1"),
			builder.Branch("2", builder.Leaf("2_1")),
		),
		builder.Leaf("other"),
	}
	assert.Equal(t, expected, items, "items")
}

func TestLoadTreeFileFailures(t *testing.T) {
	_, err := configuration.LoadTreeFile(filepath.Join(t.TempDir(), "missing.lua"))
	assert.Equal(t, fault.ErrNotFoundTreeFile, err, "missing")

	fileName := writeLua(t, "string.lua", `return "tree"`)
	_, err = configuration.LoadTreeFile(fileName)
	assert.Equal(t, fault.ErrInvalidTreeFile, err, "not a table")

	fileName = writeLua(t, "noroots.lua", `return { trees = {} }`)
	_, err = configuration.LoadTreeFile(fileName)
	assert.Equal(t, fault.ErrInvalidTreeFile, err, "no roots")

	fileName = writeLua(t, "empty.lua", `return { roots = { { value = "a", children = { {} } } } }`)
	_, err = configuration.LoadTreeFile(fileName)
	assert.ErrorIs(t, err, fault.ErrEmptyTreeValue, "empty value")
	assert.Contains(t, err.Error(), "roots[1].children[1]", "location")
}
