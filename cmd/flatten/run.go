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

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/botobag/flatten/flatten"
	"github.com/botobag/flatten/iterator"
	"github.com/botobag/flatten/jsonsource"
	"github.com/botobag/flatten/jsonwriter"
	"github.com/botobag/flatten/yamlsource"
)

// Summary describes a finished run.
type Summary struct {
	// Number of items written
	Items int

	// Number of inner sequences opened and elements decoded; only known for JSON input
	Arrays   int
	Elements int
}

// openSource creates the two-level source for the given input format.
func openSource(format string, r io.Reader, config *Config) (iterator.Iterable[iterator.Iterable[any]], func() jsonsource.Stats) {
	if format == InputYAML {
		return yamlsource.New[any](r), nil
	}
	source := jsonsource.New[any](r, jsonsource.BufferSize(config.BufferSize))
	return source, source.Stats
}

// run flattens the document read from r into w. name is used to infer the input format and in
// log entries.
func run(ctx context.Context, config *Config, name string, r io.Reader, w io.Writer, logger *zap.Logger) (Summary, error) {
	var summary Summary

	format := config.InputFor(name)
	source, stats := openSource(format, r, config)
	logger.Debug("reading input",
		zap.String("file", name),
		zap.String("input", format),
		zap.String("output", config.Output))

	var items iterator.Iterator[any] = flatten.Wrap(source)
	if config.Limit > 0 {
		items = iterator.Take(items, config.Limit)
	}
	items = iterator.Map(iterator.WithContext(ctx, items), func(v any) any {
		summary.Items++
		return v
	})

	stream := jsonwriter.NewStream(w)
	var err error
	if strings.ToLower(config.Output) == OutputLines {
		err = jsonwriter.WriteLines(stream, items)
	} else {
		err = jsonwriter.WriteArray(stream, items)
		if err == nil {
			stream.WriteNewline()
		}
	}

	// Write out whatever was produced, even on failure.
	if flushErr := stream.Flush(); err == nil {
		err = flushErr
	}

	if stats != nil {
		s := stats()
		summary.Arrays, summary.Elements = s.Arrays, s.Elements
	}

	if err != nil {
		return summary, fmt.Errorf("flatten %s: %w", name, err)
	}

	logger.Debug("flattened",
		zap.String("file", name),
		zap.Int("items", summary.Items),
		zap.Int("arrays", summary.Arrays),
		zap.Int("elements", summary.Elements))
	return summary, nil
}
