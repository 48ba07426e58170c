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

package yamlsource_test

import (
	"strings"

	"github.com/botobag/flatten/flatten"
	"github.com/botobag/flatten/internal/testutil"
	"github.com/botobag/flatten/iterator"
	"github.com/botobag/flatten/yamlsource"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Source", func() {
	newSource := func(doc string) *yamlsource.Source[int] {
		return yamlsource.New[int](strings.NewReader(doc))
	}

	It("flattens a block sequence of sequences", func() {
		source := newSource(`
- [1, 2, 3, 7]
- - 4
  - 5
  - 6
`)
		Expect(flatten.Wrap[int](source)).Should(testutil.IterateTo(1, 2, 3, 7, 4, 5, 6))
	})

	It("skips empty and null inner sequences", func() {
		source := newSource(`[[1, 2], [], ~, null, [3, 4], []]`)
		Expect(flatten.Wrap[int](source)).Should(testutil.IterateTo(1, 2, 3, 4))
	})

	It("reads empty and null documents as empty outer sequences", func() {
		Expect(flatten.Wrap[int](newSource(``))).Should(testutil.IterateTo[int]())
		Expect(flatten.Wrap[int](newSource(`~`))).Should(testutil.IterateTo[int]())
		Expect(flatten.Wrap[int](newSource(`[]`))).Should(testutil.IterateTo[int]())
	})

	It("follows aliases", func() {
		source := newSource(`
- &first [1, 2]
- *first
`)
		Expect(flatten.Wrap[int](source)).Should(testutil.IterateTo(1, 2, 1, 2))
	})

	It("decodes elements of any type", func() {
		type point struct {
			X int `yaml:"x"`
			Y int `yaml:"y"`
		}
		source := yamlsource.New[point](strings.NewReader(`[[{x: 1, y: 2}], [{y: 4, x: 3}]]`))
		Expect(flatten.Wrap[point](source)).Should(testutil.IterateTo(point{1, 2}, point{3, 4}))
	})

	It("can be iterated more than once", func() {
		source := yamlsource.New[string](strings.NewReader(`[[a, b], [c]]`))
		Expect(flatten.Wrap[string](source)).Should(testutil.IterateTo("a", "b", "c"))
		Expect(flatten.Wrap[string](source)).Should(testutil.IterateTo("a", "b", "c"))
	})

	Describe("errors", func() {
		It("reports a top-level value that isn't a sequence", func() {
			_, err := flatten.Wrap[int](newSource(`a: 1`)).Next()
			Expect(err).Should(testutil.MatchSourceError(
				testutil.LineEqual(1),
				testutil.MessageEqual("expect a sequence, but found a mapping"),
			))
		})

		It("reports an inner value that isn't a sequence after yielding preceding values", func() {
			source := newSource(`
- [1]
- 2
`)
			values, err := iterator.Collect[int](flatten.Wrap[int](source))
			Expect(values).Should(Equal([]int{1}))
			Expect(err).Should(testutil.MatchSourceError(
				testutil.LineEqual(3),
				testutil.MessageEqual(`expect a sequence, but found scalar "2"`),
			))
		})

		It("reports an element that cannot be decoded", func() {
			source := newSource(`
- [1, two]
`)
			values, err := iterator.Collect[int](flatten.Wrap[int](source))
			Expect(values).Should(Equal([]int{1}))
			Expect(err).Should(testutil.MatchSourceError(
				testutil.LineEqual(2),
				testutil.MessageContainSubstring("cannot unmarshal"),
			))
		})

		It("reports malformed documents", func() {
			_, err := flatten.Wrap[int](newSource("[[1, 2]")).Next()
			Expect(err).Should(BeAssignableToTypeOf(&yamlsource.Error{}))
			Expect(err.Error()).Should(HavePrefix("yamlsource: yaml: "))
		})
	})
})
