// SPDX-FileCopyrightText: 2022 The slz Authors
//
// SPDX-License-Identifier: MIT

package slz

import (
	"math"

	"github.com/pkg/errors"
)

// Blobs are a uint64 byte count followed by that many raw bytes. The core
// doesn't require them; they are the convention the front-ends use.

// PutBlob writes len(b) as uint64, then b.
func (sink *Sink) PutBlob(b []byte) {
	sink.PutUint64(uint64(len(b)))
	sink.PutBytes(b)
}

// GetBlob reads a blob written by PutBlob. Lengths above the context's
// alloc limit raise KindOutOfMemory before anything is allocated.
func (src *Source) GetBlob() []byte {
	n := src.GetUint64()
	src.checkAlloc(n)
	if n > math.MaxInt {
		src.ctx.raise(&Error{Kind: KindOutOfMemory, Origin: OriginSource, Source: src,
			Err: errors.Errorf("length %d does not fit in int", n)})
	}
	return src.GetBytes(int(n))
}

func (sink *Sink) PutString(s string) {
	sink.PutBlob([]byte(s))
}

func (src *Source) GetString() string {
	return string(src.GetBlob())
}

// PutStrings writes an int32 count followed by each string.
func (sink *Sink) PutStrings(strs []string) {
	if len(strs) > math.MaxInt32 {
		sink.ctx.raise(&Error{Kind: KindCodec, Origin: OriginSink, Sink: sink,
			Err: errors.Errorf("%d strings don't fit an int32 count", len(strs))})
	}
	sink.PutInt32(int32(len(strs)))
	for _, s := range strs {
		sink.PutString(s)
	}
}

// GetStrings reads a list written by PutStrings.
func (src *Source) GetStrings() []string {
	n := src.GetInt32()
	if n < 0 {
		src.ctx.raise(&Error{Kind: KindCodec, Origin: OriginSource, Source: src,
			Err: errors.Errorf("negative string count %d", n)})
	}
	strs := make([]string, 0, minInt(int(n), 1024))
	for i := int32(0); i < n; i++ {
		strs = append(strs, src.GetString())
	}
	return strs
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// PutValue marshals v with c and writes the result as a blob.
func (sink *Sink) PutValue(c Codec, v interface{}) {
	sink.ctx.mustBeClean()
	data, err := c.Marshal(v)
	if err != nil {
		sink.ctx.raise(&Error{Kind: KindCodec, Origin: OriginSink, Sink: sink,
			Err: errors.Wrap(err, "marshal failed")})
	}
	sink.PutBlob(data)
}

// GetValue reads a blob and unmarshals it with c.
func (src *Source) GetValue(c Codec) interface{} {
	data := src.GetBlob()
	v, err := c.Unmarshal(data)
	if err != nil {
		src.ctx.raise(&Error{Kind: KindCodec, Origin: OriginSource, Source: src,
			Err: errors.Wrap(err, "unmarshal failed")})
	}
	return v
}
