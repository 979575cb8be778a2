// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse Lua configuration and tree files
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items. A file must end
// by returning a table, which is mapped onto a Go structure using the
// gluamapper tags of its fields.
package configuration
