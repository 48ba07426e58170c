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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/botobag/flatten/internal/log"
	"github.com/botobag/flatten/internal/util"
)

// Input formats
const (
	InputJSON = "json"
	InputYAML = "yaml"
)

// Output formats
const (
	OutputJSON  = "json"
	OutputLines = "lines"
)

const defaultBufferSize = 4096

var (
	inputFormats  = []string{InputJSON, InputYAML}
	outputFormats = []string{OutputJSON, OutputLines}
)

// Config controls a single run of the command. It is assembled from defaults, an optional YAML
// file and command line flags, in increasing order of precedence.
type Config struct {
	// Input format; empty means inferred from the file extension
	Input string `yaml:"input"`

	// Output format
	Output string `yaml:"output"`

	// Maximum number of items to write; 0 writes all of them
	Limit int `yaml:"limit"`

	// Read buffer size of the JSON decoder
	BufferSize int `yaml:"buffer_size"`

	// Log level name
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when nothing is specified.
func DefaultConfig() Config {
	return Config{
		Output:     OutputJSON,
		BufferSize: defaultBufferSize,
		LogLevel:   log.DefaultLevel,
	}
}

// LoadConfig reads a YAML configuration file on top of the defaults. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("read config: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return config, fmt.Errorf("parse config %s: %w", path, err)
	}

	return config, nil
}

// flagValues holds the values bound to command line flags.
type flagValues struct {
	configPath string
	Config
}

func (values *flagValues) register(flags *pflag.FlagSet) {
	defaults := DefaultConfig()
	flags.StringVar(&values.configPath, "config", "", "path to a YAML configuration file")
	flags.StringVarP(&values.Input, "input", "i", "", "input format: json or yaml (default: inferred from the file extension)")
	flags.StringVarP(&values.Output, "output", "o", defaults.Output, "output format: json or lines")
	flags.IntVarP(&values.Limit, "limit", "n", 0, "stop after writing this many items (0 = all)")
	flags.IntVar(&values.BufferSize, "buffer-size", defaults.BufferSize, "read buffer size of the JSON decoder")
	flags.StringVar(&values.LogLevel, "log-level", defaults.LogLevel, "log level: debug, info, warn or error")
}

// override copies the values of flags that were set explicitly into config.
func (values *flagValues) override(flags *pflag.FlagSet, config *Config) {
	if flags.Changed("input") {
		config.Input = values.Input
	}
	if flags.Changed("output") {
		config.Output = values.Output
	}
	if flags.Changed("limit") {
		config.Limit = values.Limit
	}
	if flags.Changed("buffer-size") {
		config.BufferSize = values.BufferSize
	}
	if flags.Changed("log-level") {
		config.LogLevel = values.LogLevel
	}
}

// resolve builds the effective configuration.
func (values *flagValues) resolve(flags *pflag.FlagSet) (Config, error) {
	config := DefaultConfig()
	if values.configPath != "" {
		var err error
		if config, err = LoadConfig(values.configPath); err != nil {
			return config, err
		}
	}
	values.override(flags, &config)
	return config, config.Validate()
}

// Validate reports the first invalid setting.
func (config *Config) Validate() error {
	if config.Input != "" {
		if err := checkChoice("input format", config.Input, inputFormats); err != nil {
			return err
		}
	}

	if err := checkChoice("output format", config.Output, outputFormats); err != nil {
		return err
	}

	if config.Limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", config.Limit)
	}

	if config.BufferSize <= 0 {
		return fmt.Errorf("buffer size must be positive, got %d", config.BufferSize)
	}

	if _, err := log.ParseLevel(config.LogLevel); err != nil {
		return err
	}

	return nil
}

// InputFor returns the input format for the named file: the configured one if any, otherwise the
// one implied by the extension, falling back to JSON.
func (config *Config) InputFor(name string) string {
	if config.Input != "" {
		return strings.ToLower(config.Input)
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return InputYAML
	default:
		return InputJSON
	}
}

// checkChoice verifies that value is one of choices, ignoring case.
func checkChoice(what string, value string, choices []string) error {
	for _, choice := range choices {
		if strings.EqualFold(value, choice) {
			return nil
		}
	}

	message := fmt.Sprintf("unknown %s %q, expected %s", what, value, util.OrList(choices, true))
	if suggestions := util.Suggest(value, choices); len(suggestions) > 0 {
		message += fmt.Sprintf("; did you mean %s?", util.OrList(suggestions, true))
	}
	return errors.New(message)
}
