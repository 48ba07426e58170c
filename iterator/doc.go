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

// Package iterator defines the pull-based iteration protocol shared by every package in this
// module. The pattern draws significant inspiration from the Iterator Guidelines established for
// Google Cloud Client Libraries for Go [0].
//
// First, an "iterable" resource provides a method named Iterator which returns an iterator over its
// elements:
//
//	type Iterable[T any] interface {
//		Iterator() Iterator[T]
//	}
//
// The result iterator has just one method Next for iterating over individual elements:
//
//	type Iterator[T any] interface {
//		Next() (T, error)
//	}
//
// Next returns Done to indicate that there's no more element. Any other error comes from the
// underlying source and is returned as-is. A typical loop looks like,
//
//	it := shelf.Books().Iterator()
//	for {
//		book, err := it.Next()
//		if err == iterator.Done {
//			break
//		} else if err != nil {
//			handleError(err)
//		}
//		process(book)
//	}
//
// Consumers that don't care about the two-valued protocol can use Collect, ForEach and Count, or
// bridge into range-over-func loops with All and Seq2.
//
// Iterators are not safe for concurrent use. A single goroutine owns an iterator and decides when
// to pull next; there's nothing to close when it stops pulling.
//
// [0]: https://github.com/googleapis/google-cloud-go/wiki/Iterator-Guidelines
package iterator
