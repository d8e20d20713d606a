// Package config defines configuration types for the smartmd
// pipeline. These are pure data structures; loading lives in yaml.go.
package config

import (
	"errors"
	"fmt"
)

// Markdown flavors accepted by the tokenizer.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// ErrInvalidConfig indicates a configuration value that fails
// validation.
var ErrInvalidConfig = errors.New("invalid config")

// QuoteGlyphs holds the four substitution glyphs used by the
// smartquotes rule, selected by quote kind (single or double) and
// role (open or close).
type QuoteGlyphs struct {
	DoubleOpen  string `yaml:"double_open"`
	DoubleClose string `yaml:"double_close"`
	SingleOpen  string `yaml:"single_open"`
	SingleClose string `yaml:"single_close"`
}

// Options is the shared options object consumed by core rules.
// It is treated as read-only for the duration of a pipeline run and
// may be shared across concurrent runs.
type Options struct {
	// Typographer gates all cosmetic text substitutions
	// (smartquotes, replacements). Off means those rules are no-ops.
	Typographer bool `yaml:"typographer"`

	// Quotes are the smartquote substitution glyphs.
	Quotes QuoteGlyphs `yaml:"quotes"`

	// Flavor selects the markdown dialect for tokenizing.
	Flavor string `yaml:"flavor"`

	// LogLevel sets the logger verbosity: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the stock options: typographer on, English quote
// glyphs, CommonMark flavor.
func Default() *Options {
	return &Options{
		Typographer: true,
		Quotes: QuoteGlyphs{
			DoubleOpen:  "“",
			DoubleClose: "”",
			SingleOpen:  "‘",
			SingleClose: "’",
		},
		Flavor:   FlavorCommonMark,
		LogLevel: "info",
	}
}

// Validate checks the options for values the pipeline cannot work
// with.
func (o *Options) Validate() error {
	switch o.Flavor {
	case FlavorCommonMark, FlavorGFM:
	default:
		return fmt.Errorf("%w: unknown flavor %q", ErrInvalidConfig, o.Flavor)
	}

	glyphs := map[string]string{
		"double_open":  o.Quotes.DoubleOpen,
		"double_close": o.Quotes.DoubleClose,
		"single_open":  o.Quotes.SingleOpen,
		"single_close": o.Quotes.SingleClose,
	}
	for name, glyph := range glyphs {
		if glyph == "" {
			return fmt.Errorf("%w: quote glyph %s is empty", ErrInvalidConfig, name)
		}
	}
	return nil
}
