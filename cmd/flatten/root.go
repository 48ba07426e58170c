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
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/botobag/flatten/internal/log"
)

const stdinName = "-"

func newRootCommand() *cobra.Command {
	var values flagValues

	cmd := &cobra.Command{
		Use:   "flatten [file]",
		Short: "Flatten a sequence of sequences into a single sequence",
		Long: `flatten reads a document holding a sequence of sequences, such as [[1, 2], [], [3]],
and writes every element of every inner sequence in order, as one JSON array or as one JSON value
per line. Elements are decoded and written one at a time.

The document is read from the named file, or from standard input when the file is omitted or "-".`,
		Example: `  $ flatten batches.json
  $ flatten --output lines --limit 10 batches.yaml
  $ cat batches.json | flatten --config flatten.yaml`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		// Errors are reported through the logger.
		SilenceErrors: true,
	}

	values.register(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		config, err := values.resolve(cmd.Flags())
		if err != nil {
			// The configured level may be the problem; report with the default one.
			if logger, logErr := log.New(log.DefaultLevel, cmd.ErrOrStderr()); logErr == nil {
				logger.Error("invalid configuration", zap.Error(err))
			}
			return err
		}

		logger, err := log.New(config.LogLevel, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		name := stdinName
		if len(args) > 0 {
			name = args[0]
		}

		input := cmd.InOrStdin()
		if name != stdinName {
			file, err := os.Open(name)
			if err != nil {
				logger.Error("cannot open input", zap.String("file", name), zap.Error(err))
				return err
			}
			defer file.Close()
			input = file
		}

		if _, err := run(cmd.Context(), &config, name, input, cmd.OutOrStdout(), logger); err != nil {
			logger.Error("flatten failed", zap.Error(err))
			return err
		}
		return nil
	}

	return cmd
}
