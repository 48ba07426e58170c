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

package jsonsource

import (
	"errors"
	"fmt"
)

// ErrConsumed is returned when pulling from a Source that has already been iterated. A Source reads
// its input once.
var ErrConsumed = errors.New("jsonsource: source has already been consumed")

// Error describes a failure to read the input document, either because it's malformed, a value
// cannot be decoded into the element type, or the underlying reader failed.
type Error struct {
	// Index of the inner array being read; -1 when the failure occurs at the top level.
	Array int

	// Index of the element in the inner array being decoded; -1 when the failure occurs outside an
	// element (e.g., at the opening bracket or between elements).
	Element int

	// Description of the failure
	Message string

	// The underlying error
	Err error
}

// Error implements Go's error interface.
func (e *Error) Error() string {
	switch {
	case e.Array < 0:
		return fmt.Sprintf("jsonsource: %s", e.Message)
	case e.Element < 0:
		return fmt.Sprintf("jsonsource: array %d: %s", e.Array, e.Message)
	default:
		return fmt.Sprintf("jsonsource: array %d, element %d: %s", e.Array, e.Element, e.Message)
	}
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}
