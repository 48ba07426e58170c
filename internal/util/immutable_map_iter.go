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

package util

// ImmutableMapIter provides iterator to loop over a map. The map is assumed to remain unmodified
// during iteration.
//
// On first iteration (i.e., first call to Next), map keys are populated into a slice and subsequent
// iterations loop over the slice. Value in current iteration is obtained by indexing the map with
// the current key. This does *NOT* follow the exact same iteration semantics as a range statement
// when the underlying map is modified during iteration:
//
//   - If the specified key is removed from the underlying map after first call to Next, you may get
//     the zero value from iter.Value.
//   - New entry added to the map after first call to Next won't be visible to the iterator.
//
// Call Next to advance the iterator, and Key/Value to access each entry. Next returns false when
// the iterator is exhausted.
//
// Example:
//
//	iter := NewImmutableMapIter(m)
//	for iter.Next() {
//		k := iter.Key()
//		v := iter.Value()
//		...
//	}
type ImmutableMapIter[K comparable, V any] struct {
	// The map
	m map[K]V
	// Keys of the map; It is lazily initialized in first Next call.
	keys []K
	// Index of keys of the iterator's current map entry; -1 before first call to Next.
	i int
}

// NewImmutableMapIter creates an ImmutableMapIter to loop over the given m.
func NewImmutableMapIter[K comparable, V any](m map[K]V) *ImmutableMapIter[K, V] {
	return &ImmutableMapIter[K, V]{
		m: m,
		i: -1,
	}
}

// Key returns the key of the iterator's current map entry. It panics if Next hasn't been called or
// the iterator is exhausted.
func (it *ImmutableMapIter[K, V]) Key() K {
	return it.keys[it.i]
}

// Value returns the value of the iterator's current map entry. It panics if Next hasn't been
// called or the iterator is exhausted.
func (it *ImmutableMapIter[K, V]) Value() V {
	return it.m[it.Key()]
}

// Next advances the map iterator and reports whether there is another entry. It returns false when
// the iterator is exhausted and keeps returning false afterwards.
func (it *ImmutableMapIter[K, V]) Next() bool {
	if it.i < 0 {
		it.keys = make([]K, 0, len(it.m))
		for k := range it.m {
			it.keys = append(it.keys, k)
		}
	}
	if it.i < len(it.keys) {
		it.i++
	}
	return it.i < len(it.keys)
}
