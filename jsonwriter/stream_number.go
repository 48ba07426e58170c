/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package jsonwriter

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
)

// WriteInt writes an int.
func (stream *Stream) WriteInt(i int) {
	stream.WriteInt64(int64(i))
}

// WriteInt64 writes an int64.
func (stream *Stream) WriteInt64(i int64) {
	stream.write(strconv.AppendInt(stream.scratch[:0], i, 10))
}

// WriteUint64 writes an uint64.
func (stream *Stream) WriteUint64(i uint64) {
	stream.write(strconv.AppendUint(stream.scratch[:0], i, 10))
}

// WriteFloat32 writes a float32.
func (stream *Stream) WriteFloat32(f float32) {
	stream.writeFloat(float64(f), 32, reflect.ValueOf(f))
}

// WriteFloat64 writes a float64.
func (stream *Stream) WriteFloat64(f float64) {
	stream.writeFloat(f, 64, reflect.ValueOf(f))
}

// writeFloat formats f the way encoding/json does: plain notation unless the magnitude is below
// 1e-6 or at least 1e21. NaN and infinities are rejected with json.UnsupportedValueError.
//
// See https://go.googlesource.com/go/+/5fae09b/src/encoding/json/encode.go#546.
func (stream *Stream) writeFloat(f float64, bits int, value reflect.Value) {
	if stream.err != nil {
		return
	}

	if math.IsInf(f, 0) || math.IsNaN(f) {
		stream.err = &json.UnsupportedValueError{
			Value: value,
			Str:   strconv.FormatFloat(f, 'g', -1, bits),
		}
		return
	}

	abs := math.Abs(f)
	fmt := byte('f')
	if abs != 0 {
		// Must use float32 comparisons for underlying float32 value to get precise cutoffs right.
		if bits == 64 && (abs < 1e-6 || abs >= 1e21) ||
			bits == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			fmt = 'e'
		}
	}

	b := strconv.AppendFloat(stream.scratch[:0], f, fmt, -1, bits)
	if fmt == 'e' {
		// clean up e-09 to e-9
		n := len(b)
		if n >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
	}

	stream.write(b)
}
