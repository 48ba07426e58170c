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

package testutil

import (
	"github.com/botobag/flatten/iterator"
)

// Probe wraps an Iterable and records how it is used, so tests can tell when a source was touched.
type Probe[T any] struct {
	source iterator.Iterable[T]

	// Number of calls to Iterator
	Opened int

	// Number of calls to Next on any iterator obtained from the probe, including the ones that
	// returned an error
	Pulled int

	// Number of calls to Next made after an iterator obtained from the probe had returned
	// iterator.Done
	PulledAfterDone int
}

// NewProbe creates a Probe around source.
func NewProbe[T any](source iterator.Iterable[T]) *Probe[T] {
	return &Probe[T]{source: source}
}

// Iterator implements iterator.Iterable.
func (probe *Probe[T]) Iterator() iterator.Iterator[T] {
	probe.Opened++
	return &probeIterator[T]{
		probe:  probe,
		source: probe.source.Iterator(),
	}
}

type probeIterator[T any] struct {
	probe  *Probe[T]
	source iterator.Iterator[T]
	done   bool
}

// Next implements iterator.Iterator.
func (iter *probeIterator[T]) Next() (T, error) {
	iter.probe.Pulled++
	if iter.done {
		iter.probe.PulledAfterDone++
	}
	value, err := iter.source.Next()
	if err == iterator.Done {
		iter.done = true
	}
	return value, err
}

// FailingIterable is an Iterable whose iterators yield Values and then fail with Err on every
// subsequent pull.
type FailingIterable[T any] struct {
	Values []T
	Err    error
}

// Iterator implements iterator.Iterable.
func (iterable *FailingIterable[T]) Iterator() iterator.Iterator[T] {
	i := 0
	return iterator.IteratorFunc[T](func() (T, error) {
		if i < len(iterable.Values) {
			i++
			return iterable.Values[i-1], nil
		}
		var zero T
		return zero, iterable.Err
	})
}
