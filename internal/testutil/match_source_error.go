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
	"github.com/onsi/gomega"
	"github.com/onsi/gomega/gstruct"
	"github.com/onsi/gomega/types"
)

// ErrorFieldsMatcher sets up fields to match.
type ErrorFieldsMatcher func(gstruct.Fields)

// MessageEqual matches message in a source error to be the same as the specified string.
func MessageEqual(s string) ErrorFieldsMatcher {
	return func(fields gstruct.Fields) {
		fields["Message"] = gomega.Equal(s)
	}
}

// MessageContainSubstring matches message in a source error to contain the specified string.
func MessageContainSubstring(s string) ErrorFieldsMatcher {
	return func(fields gstruct.Fields) {
		fields["Message"] = gomega.ContainSubstring(s)
	}
}

// ArrayEqual matches the index of the inner array in a jsonsource.Error.
func ArrayEqual(index int) ErrorFieldsMatcher {
	return func(fields gstruct.Fields) {
		fields["Array"] = gomega.Equal(index)
	}
}

// ElementEqual matches the index of the element in a jsonsource.Error.
func ElementEqual(index int) ErrorFieldsMatcher {
	return func(fields gstruct.Fields) {
		fields["Element"] = gomega.Equal(index)
	}
}

// LineEqual matches the line number in a yamlsource.Error.
func LineEqual(line int) ErrorFieldsMatcher {
	return func(fields gstruct.Fields) {
		fields["Line"] = gomega.Equal(line)
	}
}

// MatchSourceError matches a pointer to an error struct reported by one of the document sources
// with given fields.
//
// The following example matches a *jsonsource.Error including "expect [" in the message when
// reading the second inner array.
//
//		Expect(err).Should(MatchSourceError(
//			MessageContainSubstring("expect ["),
//			ArrayEqual(1),
//		))
func MatchSourceError(matchers ...ErrorFieldsMatcher) types.GomegaMatcher {
	fields := gstruct.Fields{}
	for _, matcher := range matchers {
		matcher(fields)
	}
	return gstruct.PointTo(gstruct.MatchFields(gstruct.IgnoreExtras, fields))
}
