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

package flatten

import (
	"github.com/botobag/flatten/iterator"
)

// Of returns the flattened view of source as an Iterable. Each call to Iterator wraps a fresh
// Iterator around source, so the view can be iterated as many times as source itself can.
//
// Because the result is an Iterable, deeper nesting can be flattened by composition:
//
//	// outer is an iterator.Iterable[iterator.Iterable[iterator.Iterable[T]]]
//	flat := flatten.Wrap(iterator.MapIterable(outer, flatten.Of[T]))
func Of[T any](source iterator.Iterable[iterator.Iterable[T]]) iterator.Iterable[T] {
	return iterator.IterableFunc[T](func() iterator.Iterator[T] {
		return Wrap(source)
	})
}

// Slices flattens a slice of slices. Values are copied out of v as they're pulled; v is never
// modified.
func Slices[T any](v [][]T) *Iterator[T] {
	return Wrap(iterator.MapIterable(iterator.FromSlice(v), fromSlice[T]))
}

// SliceRefs flattens a slice of slices into pointers to its elements. No value is copied and
// writes through the returned pointers are visible in v.
func SliceRefs[T any](v [][]T) *Iterator[*T] {
	return Wrap(iterator.MapIterable(iterator.FromSlice(v), fromSliceRefs[T]))
}

// Iterators flattens a cursor over cursors. Unlike the other constructors, the result consumes
// outer and every inner cursor it gets from it, so it can only be iterated once. A nil interface
// value as inner cursor is treated as an empty one.
func Iterators[T any](outer iterator.Iterator[iterator.Iterator[T]]) *Iterator[T] {
	return Wrap(iterator.Once(iterator.Map(outer, once[T])))
}

func fromSlice[T any](s []T) iterator.Iterable[T] {
	return iterator.FromSlice(s)
}

func fromSliceRefs[T any](s []T) iterator.Iterable[*T] {
	return iterator.FromSliceRefs(s)
}

func once[T any](it iterator.Iterator[T]) iterator.Iterable[T] {
	if it == nil {
		return nil
	}
	return iterator.Once(it)
}
