// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package serial

import (
	"encoding/json"
)

// Codec - converts node payloads to and from bytes
type Codec[T any] interface {
	Marshal(T) ([]byte, error)
	Unmarshal([]byte) (T, error)
}

// StringCodec - payloads that are plain strings, stored as UTF-8
type StringCodec struct{}

// Marshal - the bytes of the string
func (StringCodec) Marshal(s string) ([]byte, error) {
	return []byte(s), nil
}

// Unmarshal - the string of the bytes
func (StringCodec) Unmarshal(data []byte) (string, error) {
	return string(data), nil
}

// JSONCodec - any payload that encoding/json can handle
type JSONCodec[T any] struct{}

// Marshal - JSON encode a payload
func (JSONCodec[T]) Marshal(value T) ([]byte, error) {
	return json.Marshal(value)
}

// Unmarshal - JSON decode a payload
func (JSONCodec[T]) Unmarshal(data []byte) (T, error) {
	var value T
	err := json.Unmarshal(data, &value)
	return value, err
}
