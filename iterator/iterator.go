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

package iterator

// done is defined to serve as type for Done. It allows us to define an immutable global variable.
type done int

// Error implements Go's error inteface for "done".
func (done) Error() string {
	return "no more items in iterator"
}

var _ error = done(0)

// Done is returned by an iterator's Next method when the iteration is complete; when there are no
// more items to return. Once an iterator returns Done, it keeps returning Done.
const Done done = 0

// Iterator is a cursor over a sequence of values of type T. Next returns:
//
//  - (value, nil): the next value in sequence.
//  - (<zero>, Done): the iterator is past the end of the sequence.
//  - (<zero>, <error>): an error occurred when fetching the next value. Whether a later call can
//    make progress is up to the implementation.
type Iterator[T any] interface {
	Next() (T, error)
}

// Iterable is anything that can produce an Iterator over its values. Each call to Iterator returns
// a cursor positioned before the first value. Whether two cursors from the same Iterable see the
// same values is up to the implementation; the ones in this package do.
type Iterable[T any] interface {
	Iterator() Iterator[T]
}

// SizedIterable provides hint about size of iterable.
type SizedIterable[T any] interface {
	Iterable[T]

	// Size provides hint about number of values in the sequence.
	Size() int
}

// IteratorFunc adapts an ordinary function to an Iterator.
type IteratorFunc[T any] func() (T, error)

// Next implements Iterator by calling f.
func (f IteratorFunc[T]) Next() (T, error) {
	return f()
}

// IterableFunc adapts an ordinary function to an Iterable.
type IterableFunc[T any] func() Iterator[T]

// Iterator implements Iterable by calling f.
func (f IterableFunc[T]) Iterator() Iterator[T] {
	return f()
}

// emptyIterable is an Iterable that yields nothing.
type emptyIterable[T any] struct{}

// Empty returns an Iterable without any value.
func Empty[T any]() SizedIterable[T] {
	return emptyIterable[T]{}
}

func (emptyIterable[T]) Iterator() Iterator[T] {
	return emptyIterable[T]{}
}

func (emptyIterable[T]) Size() int {
	return 0
}

func (emptyIterable[T]) Next() (T, error) {
	var zero T
	return zero, Done
}
