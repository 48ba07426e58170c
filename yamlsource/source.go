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

// Package yamlsource reads a YAML document holding a sequence of sequences as a two-level source
// for the flatten package. The document is parsed into a node tree on first pull; elements are
// decoded from their nodes only when pulled.
package yamlsource

import (
	"fmt"
	"io"

	"github.com/botobag/flatten/iterator"

	"gopkg.in/yaml.v3"
)

// Error describes a failure to read the input document.
type Error struct {
	// Position of the offending node; Both are 0 when the document cannot be parsed.
	Line   int
	Column int

	// Description of the failure
	Message string

	// The underlying error, if any
	Err error
}

// Error implements Go's error interface.
func (e *Error) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("yamlsource: %s", e.Message)
	}
	return fmt.Sprintf("yamlsource: line %d, column %d: %s", e.Line, e.Column, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Source is an iterator.Iterable[iterator.Iterable[T]] over a YAML sequence of sequences. The
// input is read and parsed once, on first pull from any of its iterators; the parsed tree is kept
// so the Source can be iterated any number of times.
//
// An empty or null document is an empty outer sequence and a null inner sequence is an empty inner
// sequence. Aliases to sequences are followed.
type Source[T any] struct {
	r io.Reader

	// Parsed top-level sequence; nil for an empty document.
	root *yaml.Node

	// Set once the input has been parsed
	parsed bool

	// Sticky parse error
	err error
}

var _ iterator.Iterable[iterator.Iterable[int]] = (*Source[int])(nil)

// New creates a Source reading from r. Nothing is read until the first pull.
func New[T any](r io.Reader) *Source[T] {
	return &Source[T]{r: r}
}

// Iterator implements iterator.Iterable.
func (source *Source[T]) Iterator() iterator.Iterator[iterator.Iterable[T]] {
	return &outerIterator[T]{source: source}
}

// parse reads the document into root.
func (source *Source[T]) parse() error {
	if source.parsed {
		return source.err
	}
	source.parsed = true

	var document yaml.Node
	if err := yaml.NewDecoder(source.r).Decode(&document); err != nil {
		if err != io.EOF {
			source.err = &Error{
				Message: err.Error(),
				Err:     err,
			}
		}
		return source.err
	}

	root := &document
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	root, err := sequenceOf(root)
	if err != nil {
		source.err = err
		return err
	}
	source.root = root
	return nil
}

// sequenceOf resolves aliases and returns the sequence node in node. It returns nil for a null
// node.
func sequenceOf(node *yaml.Node) (*yaml.Node, error) {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	switch {
	case node.Kind == yaml.SequenceNode:
		return node, nil
	case node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null":
		return nil, nil
	default:
		return nil, &Error{
			Line:    node.Line,
			Column:  node.Column,
			Message: fmt.Sprintf("expect a sequence, but found %s", describe(node)),
		}
	}
}

func describe(node *yaml.Node) string {
	switch node.Kind {
	case yaml.MappingNode:
		return "a mapping"
	case yaml.ScalarNode:
		return fmt.Sprintf("scalar %q", node.Value)
	default:
		return fmt.Sprintf("node of kind %d", node.Kind)
	}
}

// outerIterator walks the top-level sequence.
type outerIterator[T any] struct {
	source *Source[T]
	i      int
}

// Next implements iterator.Iterator.
func (iter *outerIterator[T]) Next() (iterator.Iterable[T], error) {
	source := iter.source
	if err := source.parse(); err != nil {
		return nil, err
	}

	root := source.root
	if root == nil || iter.i >= len(root.Content) {
		return nil, iterator.Done
	}

	node, err := sequenceOf(root.Content[iter.i])
	if err != nil {
		return nil, err
	}
	iter.i++

	if node == nil {
		return iterator.Empty[T](), nil
	}
	return sequence[T]{node}, nil
}

// sequence is an inner sequence in the document.
type sequence[T any] struct {
	node *yaml.Node
}

// Iterator implements iterator.Iterable.
func (s sequence[T]) Iterator() iterator.Iterator[T] {
	return &sequenceIterator[T]{node: s.node}
}

// Size implements iterator.SizedIterable.
func (s sequence[T]) Size() int {
	return len(s.node.Content)
}

// sequenceIterator decodes elements of a sequence node one at a time.
type sequenceIterator[T any] struct {
	node *yaml.Node
	i    int
}

// Next implements iterator.Iterator.
func (iter *sequenceIterator[T]) Next() (T, error) {
	var value T
	if iter.i >= len(iter.node.Content) {
		return value, iterator.Done
	}

	element := iter.node.Content[iter.i]
	if err := element.Decode(&value); err != nil {
		var zero T
		return zero, &Error{
			Line:    element.Line,
			Column:  element.Column,
			Message: err.Error(),
			Err:     err,
		}
	}
	iter.i++
	return value, nil
}
