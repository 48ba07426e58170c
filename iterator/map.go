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
	"github.com/botobag/flatten/internal/util"
)

//===----------------------------------------------------------------------------------------====//
// MapKeysIterable
//===----------------------------------------------------------------------------------------====//

// MapKeysIterable wraps a Go map into an Iterable and provides an iterator to loop over keys in the
// map. Note that the given map should not be modified during iteration.
type MapKeysIterable[K comparable, V any] struct {
	m map[K]V
}

// NewMapKeysIterable creates a MapKeysIterable.
func NewMapKeysIterable[K comparable, V any](m map[K]V) *MapKeysIterable[K, V] {
	return &MapKeysIterable[K, V]{m}
}

// Iterator implements Iterable. It returns iterator for iterating map keys.
func (iterable *MapKeysIterable[K, V]) Iterator() Iterator[K] {
	return MapKeysIterator[K, V]{util.NewImmutableMapIter(iterable.m)}
}

// Size implements SizedIterable. It returns the number of entries in the map.
func (iterable *MapKeysIterable[K, V]) Size() int {
	return len(iterable.m)
}

// MapKeysIterator implements Iterator to loop over the keys in a map.
type MapKeysIterator[K comparable, V any] struct {
	iter *util.ImmutableMapIter[K, V]
}

// Next implements Iterator.
func (iter MapKeysIterator[K, V]) Next() (K, error) {
	mapIter := iter.iter
	if !mapIter.Next() {
		var zero K
		return zero, Done
	}
	return mapIter.Key(), nil
}

//===----------------------------------------------------------------------------------------====//
// MapValuesIterable
//===----------------------------------------------------------------------------------------====//

// MapValuesIterable wraps a Go map into an Iterable and provides an iterator to loop over the
// values in the map. Note that the given map should not be modified during iteration.
type MapValuesIterable[K comparable, V any] struct {
	m map[K]V
}

// NewMapValuesIterable creates a MapValuesIterable.
func NewMapValuesIterable[K comparable, V any](m map[K]V) *MapValuesIterable[K, V] {
	return &MapValuesIterable[K, V]{m}
}

// Iterator implements Iterable. It returns iterator for iterating map values.
func (iterable *MapValuesIterable[K, V]) Iterator() Iterator[V] {
	return MapValuesIterator[K, V]{util.NewImmutableMapIter(iterable.m)}
}

// Size implements SizedIterable. It returns the number of entries in the map.
func (iterable *MapValuesIterable[K, V]) Size() int {
	return len(iterable.m)
}

// MapValuesIterator implements Iterator to loop over the values in a map.
type MapValuesIterator[K comparable, V any] struct {
	iter *util.ImmutableMapIter[K, V]
}

// Next implements Iterator.
func (iter MapValuesIterator[K, V]) Next() (V, error) {
	mapIter := iter.iter
	if !mapIter.Next() {
		var zero V
		return zero, Done
	}
	return mapIter.Value(), nil
}
