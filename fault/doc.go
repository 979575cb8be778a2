// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// The errors are grouped into classes so that callers can test for a
// whole category, e.g. IsErrNode for any structural error returned
// by the checked arena operations.
package fault
