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
	"iter"
)

// Collect pulls it until Done and returns all values in order. If it fails, Collect stops and
// returns the values collected so far along with the error.
func Collect[T any](it Iterator[T]) ([]T, error) {
	var values []T
	for {
		value, err := it.Next()
		if err == Done {
			return values, nil
		} else if err != nil {
			return values, err
		}
		values = append(values, value)
	}
}

// ForEach calls fn for every value of it until it returns Done. It stops at the first error from
// either it or fn and returns the error.
func ForEach[T any](it Iterator[T], fn func(T) error) error {
	for {
		value, err := it.Next()
		if err == Done {
			return nil
		} else if err != nil {
			return err
		}
		if err := fn(value); err != nil {
			return err
		}
	}
}

// Count pulls it until Done and returns number of values seen.
func Count[T any](it Iterator[T]) (int, error) {
	n := 0
	for {
		_, err := it.Next()
		if err == Done {
			return n, nil
		} else if err != nil {
			return n, err
		}
		n++
	}
}

// All returns a single-use sequence that pulls from it for range-over-func loops. The sequence
// ends at Done or at the first error; the error is dropped. Use Seq2 when errors matter.
func All[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			value, err := it.Next()
			if err != nil {
				return
			}
			if !yield(value) {
				return
			}
		}
	}
}

// Seq2 returns a single-use sequence of (value, error) pairs pulled from it. Done ends the sequence
// cleanly. Any other error is yielded once with a zero value and ends the sequence.
func Seq2[T any](it Iterator[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			value, err := it.Next()
			if err == Done {
				return
			}
			if !yield(value, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}
