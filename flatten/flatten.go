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
	"fmt"

	"github.com/botobag/flatten/iterator"
)

// state of an Iterator
type state uint8

// Enumeration of state
const (
	// The outer cursor hasn't been obtained from the source yet.
	stateNotStarted state = iota

	// No inner cursor is held; the next pull goes to the outer cursor.
	stateSeeking

	// An inner cursor is held and hasn't returned Done yet.
	stateDraining

	// The outer cursor has returned Done. Nothing will be pulled anymore.
	stateTerminal
)

// Iterator flattens a sequence of sequences into a single sequence. It yields every value of the
// first inner sequence, then every value of the second, and so on. Empty inner sequences contribute
// nothing.
//
// Iterator is lazy: nothing is pulled from the source until the first call to Next, and each call
// to Next pulls only as far as the next value. At most one inner cursor is held at a time.
//
// Iterator is not safe for concurrent use.
type Iterator[T any] struct {
	state state

	// Source to obtain the outer cursor from; Dropped once the outer cursor is obtained.
	source iterator.Iterable[iterator.Iterable[T]]

	// Cursor over inner sequences; Valid in stateSeeking and stateDraining.
	outer iterator.Iterator[iterator.Iterable[T]]

	// Cursor over the current inner sequence; Valid only in stateDraining.
	inner iterator.Iterator[T]
}

var _ iterator.Iterator[int] = (*Iterator[int])(nil)

// Wrap creates an Iterator that flattens source. It doesn't touch source; the outer cursor is
// obtained on first call to Next. A nil interface value, as source or as an inner sequence, is
// treated as an empty sequence. A typed nil pointer is not nil here; it is asked for its iterator
// like any other value, which the slice iterables in package iterator answer with an empty one.
func Wrap[T any](source iterator.Iterable[iterator.Iterable[T]]) *Iterator[T] {
	return &Iterator[T]{
		source: source,
	}
}

// Next implements iterator.Iterator. It returns the next value from the current inner sequence,
// moving on to the next non-empty inner sequence when the current one is exhausted. It returns
// iterator.Done once the outer sequence is exhausted, and on every call after that without pulling
// the source again.
//
// Errors from the outer or inner cursors are returned unchanged. The iterator stays where it was
// so a subsequent call pulls the failing cursor again.
func (iter *Iterator[T]) Next() (T, error) {
	var zero T
	for {
		switch iter.state {
		case stateDraining:
			value, err := iter.inner.Next()
			if err == nil {
				return value, nil
			} else if err != iterator.Done {
				return zero, err
			}
			iter.inner = nil
			iter.state = stateSeeking

		case stateSeeking:
			next, err := iter.outer.Next()
			if err == iterator.Done {
				iter.outer = nil
				iter.state = stateTerminal
				return zero, iterator.Done
			} else if err != nil {
				return zero, err
			}
			// A nil inner sequence is an empty one.
			if next != nil {
				iter.inner = next.Iterator()
				iter.state = stateDraining
			}

		case stateNotStarted:
			source := iter.source
			iter.source = nil
			if source == nil {
				iter.state = stateTerminal
				return zero, iterator.Done
			}
			iter.outer = source.Iterator()
			iter.state = stateSeeking

		case stateTerminal:
			return zero, iterator.Done

		default:
			panic(fmt.Sprintf("flatten: iterator in unknown state %d", iter.state))
		}
	}
}
