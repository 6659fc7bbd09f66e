// SPDX-FileCopyrightText: 2022 The slz Authors
//
// SPDX-License-Identifier: MIT

package slz

// NewCodecFunc returns a codec that decodes into values of the type of tipe.
type NewCodecFunc func(tipe interface{}) Codec

// Codec turns application values into the blobs stored by PutValue.
type Codec interface {
	// Marshal encodes a single value and returns the serialized byte slice.
	Marshal(value interface{}) ([]byte, error)

	// Unmarshal decodes and returns the value stored in data.
	Unmarshal(data []byte) (interface{}, error)
}
