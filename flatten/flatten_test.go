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

package flatten_test

import (
	"errors"

	"github.com/botobag/flatten/flatten"
	"github.com/botobag/flatten/internal/testutil"
	"github.com/botobag/flatten/iterator"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// nested builds an outer Iterable from slices where each inner Iterable is probed.
func nested[T any](v ...[]T) (iterator.Iterable[iterator.Iterable[T]], []*testutil.Probe[T]) {
	var (
		inners = make([]iterator.Iterable[T], len(v))
		probes = make([]*testutil.Probe[T], len(v))
	)
	for i, s := range v {
		probes[i] = testutil.NewProbe[T](iterator.FromSlice(s))
		inners[i] = probes[i]
	}
	return iterator.FromSlice(inners), probes
}

var _ = Describe("Iterator", func() {
	It("flattens in outer order first and inner order second", func() {
		Expect(flatten.Slices([][]int{{1, 2, 3, 7}, {4, 5, 6}})).Should(
			testutil.IterateTo(1, 2, 3, 7, 4, 5, 6))
	})

	It("returns Done on first pull for an empty outer sequence", func() {
		it := flatten.Slices([][]int{})
		_, err := it.Next()
		Expect(err).Should(Equal(iterator.Done))

		Expect(flatten.Slices[int](nil)).Should(testutil.IterateTo[int]())
	})

	It("skips empty inner sequences", func() {
		it := flatten.Slices([][]int{{1, 2}, {}, {}, {3, 4}, {}})
		Expect(it).Should(testutil.IterateTo(1, 2, 3, 4))

		_, err := it.Next()
		Expect(err).Should(Equal(iterator.Done))
	})

	It("walks through all empty inner sequences without yielding", func() {
		source, probes := nested([]int{}, nil, []int{})
		Expect(flatten.Wrap(source)).Should(testutil.IterateTo[int]())
		for _, probe := range probes {
			Expect(probe.Opened).Should(Equal(1))
			Expect(probe.Pulled).Should(Equal(1))
		}
	})

	It("keeps relative order for any arrangement of empty inner sequences", func() {
		Expect(flatten.Slices([][]int{{}, {1}, {}, {}, {2, 3}})).Should(testutil.IterateTo(1, 2, 3))
		Expect(flatten.Slices([][]int{{}, {}, {}, {1}})).Should(testutil.IterateTo(1))
		Expect(flatten.Slices([][]int{{1}, {}, {}, {}})).Should(testutil.IterateTo(1))
	})

	It("flattens runes", func() {
		Expect(flatten.Slices([][]rune{{'a', 'b'}, {'c'}})).Should(testutil.IterateTo('a', 'b', 'c'))
	})

	It("yields the same sequence when the same source is wrapped again", func() {
		source := [][]int{{1, 2, 3, 7}, {4, 5, 6}}

		first, err := iterator.Collect(flatten.Slices(source))
		Expect(err).ShouldNot(HaveOccurred())

		second, err := iterator.Collect(flatten.Slices(source))
		Expect(err).ShouldNot(HaveOccurred())

		Expect(second).Should(Equal(first))
		Expect(source).Should(Equal([][]int{{1, 2, 3, 7}, {4, 5, 6}}))
	})

	It("treats nil inner iterable as an empty one", func() {
		source := iterator.FromValues[iterator.Iterable[int]](
			iterator.FromValues(1),
			nil,
			iterator.FromValues(2),
		)
		Expect(flatten.Wrap[int](source)).Should(testutil.IterateTo(1, 2))
	})

	It("treats nil source as an empty one", func() {
		Expect(flatten.Wrap[int](nil)).Should(testutil.IterateTo[int]())
	})

	It("treats typed nil slice iterables as empty ones", func() {
		source := iterator.FromValues[iterator.Iterable[int]](
			iterator.FromValues(1),
			(*iterator.SliceIterable[int])(nil),
			iterator.FromValues(2),
		)
		Expect(flatten.Wrap[int](source)).Should(testutil.IterateTo(1, 2))

		Expect(flatten.Wrap[int]((*iterator.SliceIterable[iterator.Iterable[int]])(nil))).
			Should(testutil.IterateTo[int]())
	})

	Describe("laziness", func() {
		It("doesn't touch the source on construction", func() {
			outer := testutil.NewProbe[iterator.Iterable[int]](iterator.FromValues[iterator.Iterable[int]](
				iterator.FromValues(1)))
			flatten.Wrap[int](outer)
			Expect(outer.Opened).Should(Equal(0))
			Expect(outer.Pulled).Should(Equal(0))
		})

		It("doesn't touch an inner sequence until its turn", func() {
			source, probes := nested([]int{1, 2}, []int{3})
			it := flatten.Wrap(source)

			value, err := it.Next()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(value).Should(Equal(1))
			Expect(probes[0].Pulled).Should(Equal(1))
			Expect(probes[1].Opened).Should(Equal(0))

			value, err = it.Next()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(value).Should(Equal(2))
			Expect(probes[1].Opened).Should(Equal(0))

			value, err = it.Next()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(value).Should(Equal(3))
			Expect(probes[1].Opened).Should(Equal(1))
		})

		It("doesn't pull the outer sequence while the inner one has values", func() {
			outer := testutil.NewProbe[iterator.Iterable[int]](iterator.FromValues[iterator.Iterable[int]](
				iterator.FromValues(1, 2, 3)))
			it := flatten.Wrap[int](outer)

			for i := 0; i < 3; i++ {
				_, err := it.Next()
				Expect(err).ShouldNot(HaveOccurred())
			}
			Expect(outer.Opened).Should(Equal(1))
			Expect(outer.Pulled).Should(Equal(1))
		})
	})

	Describe("termination", func() {
		It("doesn't pull any cursor again once exhausted", func() {
			outer := testutil.NewProbe[iterator.Iterable[int]](iterator.FromValues[iterator.Iterable[int]](
				iterator.FromValues(1), iterator.Empty[int]()))
			it := flatten.Wrap[int](outer)
			Expect(it).Should(testutil.IterateTo(1))

			pulled := outer.Pulled
			for i := 0; i < 5; i++ {
				_, err := it.Next()
				Expect(err).Should(Equal(iterator.Done))
			}
			Expect(outer.Pulled).Should(Equal(pulled))
			Expect(outer.PulledAfterDone).Should(Equal(0))
		})

		It("never pulls a spent inner cursor", func() {
			source, probes := nested([]int{1}, []int{}, []int{2, 3})
			Expect(flatten.Wrap(source)).Should(testutil.IterateTo(1, 2, 3))
			for _, probe := range probes {
				Expect(probe.PulledAfterDone).Should(Equal(0))
			}
		})
	})

	Describe("infinite outer sequence", func() {
		It("does bounded work per pull when inner sequences are non-empty", func() {
			inner := testutil.NewProbe[int](iterator.FromValues(1, 2))
			outer := testutil.NewProbe(iterator.Repeat[iterator.Iterable[int]](inner))
			it := flatten.Wrap[int](outer)

			Expect(iterator.Take[int](it, 5)).Should(testutil.IterateTo(1, 2, 1, 2, 1))
			Expect(outer.Pulled).Should(Equal(3))
			Expect(inner.Opened).Should(Equal(3))
		})

		It("skips an arbitrarily long run of empty inner sequences", func() {
			const n = 100000
			outer := make([][]int, n+1)
			outer[n] = []int{42}
			Expect(flatten.Slices(outer)).Should(testutil.IterateTo(42))
		})
	})

	Describe("errors", func() {
		var errFoo = errors.New("foo")

		It("propagates errors from an inner cursor unchanged", func() {
			source := iterator.FromValues[iterator.Iterable[int]](
				&testutil.FailingIterable[int]{Values: []int{1}, Err: errFoo},
				iterator.FromValues(2),
			)
			it := flatten.Wrap[int](source)

			value, err := it.Next()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(value).Should(Equal(1))

			_, err = it.Next()
			Expect(err).Should(BeIdenticalTo(errFoo))

			// Stays on the failing cursor.
			_, err = it.Next()
			Expect(err).Should(BeIdenticalTo(errFoo))
		})

		It("propagates errors from the outer cursor unchanged", func() {
			source := &testutil.FailingIterable[iterator.Iterable[int]]{
				Values: []iterator.Iterable[int]{iterator.FromValues(1)},
				Err:    errFoo,
			}
			it := flatten.Wrap[int](source)

			value, err := it.Next()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(value).Should(Equal(1))

			_, err = it.Next()
			Expect(err).Should(BeIdenticalTo(errFoo))
		})

		It("resumes once the outer cursor recovers", func() {
			failures := 1
			values := []iterator.Iterable[int]{iterator.FromValues(1), iterator.FromValues(2)}
			outer := iterator.IteratorFunc[iterator.Iterable[int]](func() (iterator.Iterable[int], error) {
				if len(values) == 1 && failures > 0 {
					failures--
					return nil, errFoo
				}
				if len(values) == 0 {
					return nil, iterator.Done
				}
				next := values[0]
				values = values[1:]
				return next, nil
			})
			it := flatten.Wrap[int](iterator.Once[iterator.Iterable[int]](outer))

			value, err := it.Next()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(value).Should(Equal(1))

			_, err = it.Next()
			Expect(err).Should(BeIdenticalTo(errFoo))

			Expect(it).Should(testutil.IterateTo(2))
		})
	})
})
