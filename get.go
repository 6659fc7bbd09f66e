// SPDX-FileCopyrightText: 2022 The slz Authors
//
// SPDX-License-Identifier: MIT

package slz

import "encoding/binary"

// GetBool reads one byte. Anything but zero is true.
func (src *Source) GetBool() bool {
	return src.GetUint8() != 0
}

func (src *Source) GetUint8() uint8 {
	var b [1]byte
	src.ReadBytes(b[:])
	return b[0]
}

func (src *Source) GetInt8() int8 {
	return int8(src.GetUint8())
}

func (src *Source) GetUint16() uint16 {
	var b [2]byte
	src.ReadBytes(b[:])
	return binary.BigEndian.Uint16(b[:])
}

func (src *Source) GetInt16() int16 {
	return int16(src.GetUint16())
}

func (src *Source) GetUint32() uint32 {
	hi := uint32(src.GetUint16())
	lo := uint32(src.GetUint16())
	return hi<<16 | lo
}

func (src *Source) GetInt32() int32 {
	return int32(src.GetUint32())
}

func (src *Source) GetUint64() uint64 {
	hi := uint64(src.GetUint32())
	lo := uint64(src.GetUint32())
	return hi<<32 | lo
}

func (src *Source) GetInt64() int64 {
	return int64(src.GetUint64())
}
