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

package jsonwriter_test

import (
	"bytes"
	"errors"
	"strings"

	"github.com/botobag/flatten/flatten"
	"github.com/botobag/flatten/internal/testutil"
	"github.com/botobag/flatten/iterator"
	"github.com/botobag/flatten/jsonwriter"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("WriteArray", func() {
	var (
		buf    bytes.Buffer
		stream *jsonwriter.Stream
	)

	BeforeEach(func() {
		buf.Reset()
		stream = jsonwriter.NewStream(&buf)
	})

	It("writes a flattened sequence as one array", func() {
		it := flatten.Slices([][]int{{1, 2, 3, 7}, {4, 5, 6}})
		Expect(jsonwriter.WriteArray[int](stream, it)).Should(Succeed())
		Expect(stream.Flush()).Should(Succeed())
		Expect(buf.String()).Should(Equal("[1,2,3,7,4,5,6]"))
	})

	It("writes an empty array for an empty sequence", func() {
		Expect(jsonwriter.WriteArray(stream, iterator.Empty[string]().Iterator())).Should(Succeed())
		Expect(stream.Flush()).Should(Succeed())
		Expect(buf.String()).Should(Equal("[]"))
	})

	It("writes values that need the fallback encoder", func() {
		type pair struct {
			Key   string `json:"key"`
			Value int    `json:"value"`
		}
		it := flatten.Slices([][]pair{{{"a", 1}}, {}, {{"b", 2}}})
		Expect(jsonwriter.WriteArray[pair](stream, it)).Should(Succeed())
		Expect(stream.Flush()).Should(Succeed())
		Expect(buf.String()).Should(MatchJSON(`[{"key":"a","value":1},{"key":"b","value":2}]`))
	})

	It("streams more than fits in the buffer", func() {
		stream = jsonwriter.NewStream(&buf, jsonwriter.BufferSize(8))
		values := iterator.Take(iterator.Map(
			flatten.Of(iterator.Repeat[iterator.Iterable[string]](iterator.FromValues("ab", "cd"))).Iterator(),
			strings.ToUpper,
		), 1000)
		Expect(jsonwriter.WriteArray(stream, values)).Should(Succeed())
		// Most of the output reached the writer before the final flush.
		Expect(buf.Len()).Should(BeNumerically(">", 4900))
		Expect(stream.Flush()).Should(Succeed())
		Expect(buf.String()).Should(HavePrefix(`["AB","CD","AB"`))
		Expect(buf.Len()).Should(Equal(2 + 1000*4 + 999))
	})

	It("stops at the first upstream error", func() {
		errBroken := errors.New("broken source")
		it := flatten.Wrap[int](iterator.FromValues[iterator.Iterable[int]](
			iterator.FromValues(1, 2),
			&testutil.FailingIterable[int]{Values: []int{3}, Err: errBroken},
			iterator.FromValues(4),
		))
		Expect(jsonwriter.WriteArray[int](stream, it)).Should(MatchError(errBroken))
		Expect(stream.Flush()).Should(Succeed())
		Expect(buf.String()).Should(Equal("[1,2,3"))
	})

	It("stops at the first encoding error", func() {
		it := iterator.FromValues[interface{}](1, make(chan int), 2).Iterator()
		Expect(jsonwriter.WriteArray(stream, it)).Should(HaveOccurred())
		Expect(stream.Error()).Should(HaveOccurred())
	})
})

var _ = Describe("WriteLines", func() {
	It("writes one value per line", func() {
		var buf bytes.Buffer
		stream := jsonwriter.NewStream(&buf)
		it := flatten.Slices([][]string{{"a", "b"}, {}, {"c"}})
		Expect(jsonwriter.WriteLines[string](stream, it)).Should(Succeed())
		Expect(stream.Flush()).Should(Succeed())
		Expect(buf.String()).Should(Equal("\"a\"\n\"b\"\n\"c\"\n"))
	})

	It("writes nothing for an empty sequence", func() {
		var buf bytes.Buffer
		stream := jsonwriter.NewStream(&buf)
		Expect(jsonwriter.WriteLines(stream, iterator.Empty[int]().Iterator())).Should(Succeed())
		Expect(stream.Flush()).Should(Succeed())
		Expect(buf.Len()).Should(Equal(0))
	})

	It("keeps the lines written before an error", func() {
		var buf bytes.Buffer
		stream := jsonwriter.NewStream(&buf)
		errBroken := errors.New("broken source")
		it := (&testutil.FailingIterable[int]{Values: []int{1, 2}, Err: errBroken}).Iterator()
		Expect(jsonwriter.WriteLines(stream, it)).Should(MatchError(errBroken))
		Expect(stream.Flush()).Should(Succeed())
		Expect(buf.String()).Should(Equal("1\n2\n"))
	})
})
