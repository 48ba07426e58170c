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
	"github.com/botobag/flatten/iterator"
)

// WriteArray drains it into stream as a single JSON array. Values are written as they are pulled
// so the sequence is never held in memory. An error from it or from the stream stops the write and
// is returned; the array is left unterminated in that case. The stream is not flushed.
func WriteArray[T any](stream *Stream, it iterator.Iterator[T]) error {
	first := true
	stream.WriteArrayStart()
	for {
		value, err := it.Next()
		if err == iterator.Done {
			break
		} else if err != nil {
			return err
		}

		if first {
			first = false
		} else {
			stream.WriteMore()
		}
		stream.WriteInterface(value)
		if err := stream.Error(); err != nil {
			return err
		}
	}
	stream.WriteArrayEnd()
	return stream.Error()
}

// WriteLines drains it into stream writing one JSON value per line (newline-delimited JSON). Lines
// already written stay in the stream when an error stops the write.
func WriteLines[T any](stream *Stream, it iterator.Iterator[T]) error {
	for {
		value, err := it.Next()
		if err == iterator.Done {
			return stream.Error()
		} else if err != nil {
			return err
		}

		stream.WriteInterface(value)
		stream.WriteNewline()
		if err := stream.Error(); err != nil {
			return err
		}
	}
}
