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

// Package jsonsource reads a JSON document of the shape [[...], [...], ...] as a two-level source
// for the flatten package. The document is decoded incrementally with json-iterator: an inner array
// is not read until it is pulled and an element is decoded only when it is pulled.
package jsonsource

import (
	"io"

	"github.com/botobag/flatten/iterator"

	jsoniter "github.com/json-iterator/go"
)

const defaultBufferSize = 4096

// Option specifies an option to configure a Source created by New.
type Option func(*options)

type options struct {
	bufferSize int
	api        jsoniter.API
}

// BufferSize specifies size of the read buffer. Default to 4096 bytes.
func BufferSize(size int) Option {
	return func(opts *options) {
		if size > 0 {
			opts.bufferSize = size
		}
	}
}

// Config specifies the json-iterator configuration used to decode elements. Default to
// jsoniter.ConfigCompatibleWithStandardLibrary.
func Config(api jsoniter.API) Option {
	return func(opts *options) {
		if api != nil {
			opts.api = api
		}
	}
}

// Stats counts what a Source has read so far.
type Stats struct {
	// Number of inner arrays opened
	Arrays int

	// Number of elements decoded; Elements skipped without being pulled are not counted.
	Elements int
}

// Source is an iterator.Iterable[iterator.Iterable[T]] over a JSON array of arrays. It can only be
// iterated once; subsequent calls to Iterator return an iterator that fails with ErrConsumed.
//
// Each inner array is yielded as a single-use Iterable that shares the underlying stream. Pulling
// the next inner array skips whatever is left of the current one.
//
// A null document is an empty outer sequence and a null inner array is an empty inner sequence.
// Content after the top-level array is never read.
type Source[T any] struct {
	iter     *jsoniter.Iterator
	consumed bool

	// Sticky error; Once set, every pull from the source and its arrays returns it.
	err error

	// Set once the opening bracket (or null) of the top-level array has been checked
	opened bool

	// Set when the top-level array has been read to the end
	done bool

	// The inner array that was yielded most recently
	current *array[T]

	stats Stats
}

var _ iterator.Iterable[iterator.Iterable[int]] = (*Source[int])(nil)

// New creates a Source reading from r. Nothing is read until the first pull.
func New[T any](r io.Reader, opts ...Option) *Source[T] {
	config := options{
		bufferSize: defaultBufferSize,
		api:        jsoniter.ConfigCompatibleWithStandardLibrary,
	}
	for _, opt := range opts {
		opt(&config)
	}

	return &Source[T]{
		iter: jsoniter.Parse(config.api, r, config.bufferSize),
	}
}

// Iterator implements iterator.Iterable.
func (source *Source[T]) Iterator() iterator.Iterator[iterator.Iterable[T]] {
	if source.consumed {
		return iterator.IteratorFunc[iterator.Iterable[T]](func() (iterator.Iterable[T], error) {
			return nil, ErrConsumed
		})
	}
	source.consumed = true
	return outerIterator[T]{source}
}

// Stats returns counters of what has been read.
func (source *Source[T]) Stats() Stats {
	return source.stats
}

// check converts the error recorded in the json-iterator into an *Error and makes it sticky. It
// returns nil if there's no error. io.EOF alone is not an error; json-iterator records it when it
// hits the end of input after a complete value and reports a real error if more was expected.
func (source *Source[T]) check(arrayIndex int, elementIndex int) error {
	if source.err != nil {
		return source.err
	}

	err := source.iter.Error
	if err == nil || err == io.EOF {
		return nil
	}

	source.err = &Error{
		Array:   arrayIndex,
		Element: elementIndex,
		Message: err.Error(),
		Err:     err,
	}
	return source.err
}

// expectArray reports an error unless the next value is an array or null. ReadArray alone would
// also take a "," or "]" as the continuation or the end of an array that was never opened.
func (source *Source[T]) expectArray(arrayIndex int) error {
	switch source.iter.WhatIsNext() {
	case jsoniter.ArrayValue, jsoniter.NilValue:
		return source.check(arrayIndex, -1)
	}
	source.iter.ReportError("ReadArray", "expect [ or n")
	return source.check(arrayIndex, -1)
}

// outerIterator pulls inner arrays from a Source.
type outerIterator[T any] struct {
	source *Source[T]
}

// Next implements iterator.Iterator.
func (iter outerIterator[T]) Next() (iterator.Iterable[T], error) {
	source := iter.source
	if source.err != nil {
		return nil, source.err
	} else if source.done {
		return nil, iterator.Done
	}

	if current := source.current; current != nil {
		if err := current.skip(); err != nil {
			return nil, err
		}
		source.current = nil
	}

	if !source.opened {
		source.opened = true
		if err := source.expectArray(-1); err != nil {
			return nil, err
		}
	}

	if !source.iter.ReadArray() {
		if err := source.check(-1, -1); err != nil {
			return nil, err
		}
		source.done = true
		return nil, iterator.Done
	}
	if err := source.check(-1, -1); err != nil {
		return nil, err
	}

	current := &array[T]{
		source: source,
		index:  source.stats.Arrays,
	}
	source.current = current
	source.stats.Arrays++
	return iterator.Once[T](current), nil
}

// array pulls elements of an inner array from a Source.
type array[T any] struct {
	source *Source[T]

	// Index of the array in the top-level array
	index int

	// Number of elements read so far
	n int

	// Set once the opening bracket (or null) has been checked
	opened bool

	// Set when the closing bracket has been read
	done bool
}

// Next implements iterator.Iterator.
func (a *array[T]) Next() (T, error) {
	var (
		zero   T
		source = a.source
	)

	if source.err != nil {
		return zero, source.err
	} else if a.done {
		return zero, iterator.Done
	}

	if err := a.open(); err != nil {
		return zero, err
	}

	if !source.iter.ReadArray() {
		if err := source.check(a.index, -1); err != nil {
			return zero, err
		}
		a.done = true
		return zero, iterator.Done
	}

	var value T
	source.iter.ReadVal(&value)
	if err := source.check(a.index, a.n); err != nil {
		return zero, err
	}

	a.n++
	source.stats.Elements++
	return value, nil
}

// open checks the start of the array on its first use.
func (a *array[T]) open() error {
	if a.opened {
		return nil
	}
	a.opened = true
	return a.source.expectArray(a.index)
}

// skip reads past the rest of the array without decoding elements.
func (a *array[T]) skip() error {
	source := a.source
	if !a.done {
		if err := a.open(); err != nil {
			return err
		}
	}
	for !a.done {
		if !source.iter.ReadArray() {
			if err := source.check(a.index, -1); err != nil {
				return err
			}
			a.done = true
			break
		}

		source.iter.Skip()
		if err := source.check(a.index, a.n); err != nil {
			return err
		}
		a.n++
	}
	return nil
}
