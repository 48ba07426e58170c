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

//===----------------------------------------------------------------------------------------====//
// SliceIterable
//===----------------------------------------------------------------------------------------====//

// SliceIterable wraps a Go slice into an Iterable which yields copies of its elements. The slice is
// never modified and each call to Iterator starts from the first element. A nil *SliceIterable is
// empty.
type SliceIterable[T any] struct {
	s []T
}

// FromSlice creates a SliceIterable over s. s is not copied.
func FromSlice[T any](s []T) *SliceIterable[T] {
	return &SliceIterable[T]{s}
}

// FromValues creates a SliceIterable over the given values.
func FromValues[T any](values ...T) *SliceIterable[T] {
	return &SliceIterable[T]{values}
}

// Iterator implements Iterable.
func (iterable *SliceIterable[T]) Iterator() Iterator[T] {
	if iterable == nil {
		return &SliceIterator[T]{}
	}
	return &SliceIterator[T]{s: iterable.s}
}

// Size implements SizedIterable. It returns the length of the slice.
func (iterable *SliceIterable[T]) Size() int {
	if iterable == nil {
		return 0
	}
	return len(iterable.s)
}

// SliceIterator implements Iterator to loop over the elements in a slice.
type SliceIterator[T any] struct {
	s []T
	i int
}

// Next implements Iterator.
func (iter *SliceIterator[T]) Next() (T, error) {
	if iter.i >= len(iter.s) {
		var zero T
		return zero, Done
	}
	value := iter.s[iter.i]
	iter.i++
	return value, nil
}

//===----------------------------------------------------------------------------------------====//
// SliceRefsIterable
//===----------------------------------------------------------------------------------------====//

// SliceRefsIterable wraps a Go slice into an Iterable which yields pointers to its elements instead
// of copies. Writes through the pointers are visible in the slice. A nil *SliceRefsIterable is
// empty.
type SliceRefsIterable[T any] struct {
	s []T
}

// FromSliceRefs creates a SliceRefsIterable over s.
func FromSliceRefs[T any](s []T) *SliceRefsIterable[T] {
	return &SliceRefsIterable[T]{s}
}

// Iterator implements Iterable.
func (iterable *SliceRefsIterable[T]) Iterator() Iterator[*T] {
	if iterable == nil {
		return &SliceRefsIterator[T]{}
	}
	return &SliceRefsIterator[T]{s: iterable.s}
}

// Size implements SizedIterable.
func (iterable *SliceRefsIterable[T]) Size() int {
	if iterable == nil {
		return 0
	}
	return len(iterable.s)
}

// SliceRefsIterator implements Iterator to loop over the addresses of elements in a slice.
type SliceRefsIterator[T any] struct {
	s []T
	i int
}

// Next implements Iterator.
func (iter *SliceRefsIterator[T]) Next() (*T, error) {
	if iter.i >= len(iter.s) {
		return nil, Done
	}
	ref := &iter.s[iter.i]
	iter.i++
	return ref, nil
}
