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
	"io"

	jsoniter "github.com/json-iterator/go"
)

const defaultStreamBufSize = 512

// StreamOption configures a Stream.
type StreamOption func(*Stream)

// BufferSize sets the number of bytes buffered in front of the underlying writer before a write is
// issued. Values not greater than zero are ignored.
func BufferSize(size int) StreamOption {
	return func(stream *Stream) {
		if size > 0 {
			stream.bufSize = size
		}
	}
}

// FallbackConfig sets the json-iterator configuration used for values that the stream cannot
// encode by itself. Default to jsoniter.ConfigCompatibleWithStandardLibrary.
func FallbackConfig(api jsoniter.API) StreamOption {
	return func(stream *Stream) {
		stream.api = api
	}
}

// Stream provides functions for writing JSON encoding. Unlike encoding/json, the writes are
// directly sent to the output via io.Writer so a sequence can be written without being
// materialized first.
type Stream struct {
	// Output stream
	w io.Writer

	// Buffer that sits in front of write to w
	buf     []byte
	bufSize int

	// Buffer for number conversion
	scratch [64]byte

	// Encoder for values that cannot be processed by this writer
	api             jsoniter.API
	fallbackEncoder *jsoniter.Encoder

	// Error occurred during writing
	err error
}

// NewStream creates a stream for writing data in JSON encoding.
func NewStream(w io.Writer, opts ...StreamOption) *Stream {
	stream := &Stream{
		w:       w,
		bufSize: defaultStreamBufSize,
		api:     jsoniter.ConfigCompatibleWithStandardLibrary,
	}
	for _, opt := range opts {
		opt(stream)
	}
	stream.buf = make([]byte, 0, stream.bufSize)
	return stream
}

// Error returns error occurred during use of the stream.
func (stream *Stream) Error() error {
	return stream.err
}

// Buffered returns the number of bytes that have not been written to the underlying writer.
func (stream *Stream) Buffered() int {
	return len(stream.buf)
}

// write is the lowest level that performs writes. It writes the contents given in b into w.
func (stream *Stream) write(b []byte) {
	// Discard writes if error already occurred in prior to the write.
	if stream.err != nil {
		return
	}

	buf := stream.buf
	bufSize := len(buf)
	if bufSize+len(b) < stream.bufSize {
		stream.buf = append(buf, b...)
		return
	}

	if bufSize > 0 {
		_, err := stream.w.Write(buf)
		// Reset buf.
		stream.buf = buf[:0]
		if err != nil {
			stream.err = err
			return
		}
	}

	if len(b) > 0 {
		if _, err := stream.w.Write(b); err != nil {
			stream.err = err
		}
	}
}

// Flush writes any buffered data to the underlying io.Writer.
func (stream *Stream) Flush() error {
	if stream.err != nil {
		return stream.err
	}

	buf := stream.buf
	if len(buf) > 0 {
		_, err := stream.w.Write(buf)
		// Reset buf.
		stream.buf = buf[:0]
		if err != nil {
			stream.err = err
			return err
		}
	}

	return nil
}

func (stream *Stream) writeByte(b byte) {
	if stream.err != nil {
		return
	}
	stream.buf = append(stream.buf, b)
}

// WriteRaw writes s into output without any escaping.
func (stream *Stream) WriteRaw(s string) {
	stream.write([]byte(s))
}

// WriteMore writes a ",".
func (stream *Stream) WriteMore() {
	stream.writeByte(',')
}

// WriteNewline writes a "\n".
func (stream *Stream) WriteNewline() {
	stream.writeByte('\n')
}

// WriteArrayStart writes a "[".
func (stream *Stream) WriteArrayStart() {
	stream.writeByte('[')
}

// WriteArrayEnd writes a "]".
func (stream *Stream) WriteArrayEnd() {
	stream.writeByte(']')
}

// WriteEmptyArray writes a "[]".
func (stream *Stream) WriteEmptyArray() {
	stream.WriteRaw("[]")
}

// WriteObjectStart writes a "{".
func (stream *Stream) WriteObjectStart() {
	stream.writeByte('{')
}

// WriteObjectField writes a quoted field name followed by a ":".
func (stream *Stream) WriteObjectField(field string) {
	stream.WriteString(field)
	stream.writeByte(':')
}

// WriteObjectEnd writes a "}".
func (stream *Stream) WriteObjectEnd() {
	stream.writeByte('}')
}

// WriteEmptyObject writes a "{}".
func (stream *Stream) WriteEmptyObject() {
	stream.WriteRaw("{}")
}

// WriteBool writes a boolean value.
func (stream *Stream) WriteBool(b bool) {
	if b {
		stream.WriteRaw("true")
	} else {
		stream.WriteRaw("false")
	}
}

// WriteNil writes "null".
func (stream *Stream) WriteNil() {
	stream.WriteRaw("null")
}

// streamWriter wraps a Stream into an io.Writer object.
type streamWriter struct {
	stream *Stream
}

func (writer streamWriter) Write(p []byte) (n int, err error) {
	stream := writer.stream
	// The fallback encoder terminates every value with a newline which is not part of the value.
	if len(p) > 0 && p[len(p)-1] == '\n' {
		stream.write(p[:len(p)-1])
	} else {
		stream.write(p)
	}
	err = stream.err
	if err == nil {
		n = len(p)
	}
	return
}

// WriteInterface writes an arbitrary value. Scalars are written by the stream itself; values
// implementing ValueMarshaler are asked to write themselves; anything else is encoded with the
// fallback json-iterator encoder.
func (stream *Stream) WriteInterface(v interface{}) {
	if stream.err != nil {
		return
	}

	switch v := v.(type) {
	case nil:
		stream.WriteNil()
	case bool:
		stream.WriteBool(v)
	case string:
		stream.WriteString(v)
	case int:
		stream.WriteInt64(int64(v))
	case int8:
		stream.WriteInt64(int64(v))
	case int16:
		stream.WriteInt64(int64(v))
	case int32:
		stream.WriteInt64(int64(v))
	case int64:
		stream.WriteInt64(v)
	case uint:
		stream.WriteUint64(uint64(v))
	case uint8:
		stream.WriteUint64(uint64(v))
	case uint16:
		stream.WriteUint64(uint64(v))
	case uint32:
		stream.WriteUint64(uint64(v))
	case uint64:
		stream.WriteUint64(v)
	case float32:
		stream.WriteFloat32(v)
	case float64:
		stream.WriteFloat64(v)
	case ValueMarshaler:
		stream.WriteValue(v)
	default:
		stream.writeInterfaceFallback(v)
	}
}

// writeInterfaceFallback is the fallback for WriteInterface which encodes the value using
// json-iterator.
func (stream *Stream) writeInterfaceFallback(v interface{}) {
	encoder := stream.fallbackEncoder
	if encoder == nil {
		encoder = stream.api.NewEncoder(streamWriter{stream})
		stream.fallbackEncoder = encoder
	}

	if err := encoder.Encode(v); err != nil {
		if stream.err == nil {
			stream.err = err
		}
	}
}
