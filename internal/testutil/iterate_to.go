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
	"fmt"
	"reflect"

	"github.com/botobag/flatten/iterator"

	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"
)

type iterateToMatcher[T any] struct {
	expected []T
	actual   []T
	// Error returned from the extra call to Next after the iterator reported Done
	extra error
}

// IterateTo returns a Gomega matcher that drains an iterator.Iterator[T] and succeeds if it yields
// exactly the expected values in order and then keeps returning iterator.Done. An error other than
// iterator.Done from the iterator fails the match with that error.
func IterateTo[T any](expected ...T) types.GomegaMatcher {
	return &iterateToMatcher[T]{
		expected: expected,
	}
}

// Match implements types.GomegaMatcher.
func (matcher *iterateToMatcher[T]) Match(actual interface{}) (success bool, err error) {
	it, ok := actual.(iterator.Iterator[T])
	if !ok {
		return false, fmt.Errorf("IterateTo matcher expects an iterator.Iterator[%s], got %T",
			reflect.TypeOf((*T)(nil)).Elem(), actual)
	}

	matcher.actual, err = iterator.Collect(it)
	if err != nil {
		return false, err
	}

	// Exhaustion should be sticky.
	_, matcher.extra = it.Next()
	if matcher.extra != iterator.Done {
		return false, nil
	}

	if len(matcher.actual) == 0 && len(matcher.expected) == 0 {
		return true, nil
	}
	return reflect.DeepEqual(matcher.actual, matcher.expected), nil
}

// FailureMessage implements types.GomegaMatcher.
func (matcher *iterateToMatcher[T]) FailureMessage(actual interface{}) (message string) {
	if matcher.extra != iterator.Done {
		return format.Message(matcher.extra, "to be iterator.Done after the iterator was exhausted")
	}
	return format.Message(matcher.actual, "to equal", matcher.expected)
}

// NegatedFailureMessage implements types.GomegaMatcher.
func (matcher *iterateToMatcher[T]) NegatedFailureMessage(actual interface{}) (message string) {
	return format.Message(matcher.actual, "not to equal", matcher.expected)
}
