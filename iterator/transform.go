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

import (
	"context"
)

// mapIterator applies fn to every value pulled from source.
type mapIterator[T any, U any] struct {
	source Iterator[T]
	fn     func(T) U
}

// Map returns an Iterator yielding fn(v) for every value v of it. Errors (including Done) from it
// are returned unchanged and fn is not called for them.
func Map[T any, U any](it Iterator[T], fn func(T) U) Iterator[U] {
	return &mapIterator[T, U]{it, fn}
}

// Next implements Iterator.
func (iter *mapIterator[T, U]) Next() (U, error) {
	value, err := iter.source.Next()
	if err != nil {
		var zero U
		return zero, err
	}
	return iter.fn(value), nil
}

// MapIterable is like Map but works on an Iterable. Each call to Iterator on the result maps a new
// iterator from iterable.
func MapIterable[T any, U any](iterable Iterable[T], fn func(T) U) Iterable[U] {
	return IterableFunc[U](func() Iterator[U] {
		return Map(iterable.Iterator(), fn)
	})
}

// takeIterator yields at most n values from source.
type takeIterator[T any] struct {
	source Iterator[T]
	n      int
}

// Take returns an Iterator yielding at most the first n values of it. Once n values have been
// returned, it is not pulled anymore.
func Take[T any](it Iterator[T], n int) Iterator[T] {
	return &takeIterator[T]{it, n}
}

// Next implements Iterator.
func (iter *takeIterator[T]) Next() (T, error) {
	if iter.n <= 0 {
		var zero T
		return zero, Done
	}
	value, err := iter.source.Next()
	if err != nil {
		return value, err
	}
	iter.n--
	return value, nil
}

// Once turns a one-shot cursor into an Iterable. Every call to Iterator returns it as-is, so all of
// them share the same position.
func Once[T any](it Iterator[T]) Iterable[T] {
	return IterableFunc[T](func() Iterator[T] {
		return it
	})
}

// repeatIterator yields value forever.
type repeatIterator[T any] struct {
	value T
}

// Repeat returns an Iterable that yields value infinitely.
func Repeat[T any](value T) Iterable[T] {
	return IterableFunc[T](func() Iterator[T] {
		return repeatIterator[T]{value}
	})
}

// Next implements Iterator.
func (iter repeatIterator[T]) Next() (T, error) {
	return iter.value, nil
}

// contextIterator checks ctx before every pull.
type contextIterator[T any] struct {
	ctx    context.Context
	source Iterator[T]
}

// WithContext returns an Iterator that fails with ctx.Err() once ctx is done. The context is checked
// before each pull from it; a pull already in progress is not interrupted.
func WithContext[T any](ctx context.Context, it Iterator[T]) Iterator[T] {
	return &contextIterator[T]{ctx, it}
}

// Next implements Iterator.
func (iter *contextIterator[T]) Next() (T, error) {
	if err := iter.ctx.Err(); err != nil {
		var zero T
		return zero, err
	}
	return iter.source.Next()
}
