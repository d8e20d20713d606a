// Package core implements the top-level processing pipeline: a ruler
// of core rules executed in order against a shared mutable state.
// The stock chain normalizes the source, tokenizes it through an
// external tokenizer, and applies the typographic rewriting rules.
package core

import (
	"fmt"

	"github.com/yaklabco/smartmd/pkg/config"
	"github.com/yaklabco/smartmd/pkg/ruler"
	"github.com/yaklabco/smartmd/pkg/token"
)

// RuleFunc is the core-rule signature: a rule receives the shared
// state and mutates it in place. Rules return an error only for
// internal failures (e.g. the tokenizer), never for content they
// merely leave untouched.
type RuleFunc func(*State) error

// State is the shared mutable state threaded through one pipeline
// run. It is exclusively owned by that run.
type State struct {
	// Src is the source text. Rules before tokenize may rewrite it.
	Src string

	// Tokens is the token stream. Nil until the tokenize rule runs.
	Tokens []*token.Token

	// Options is the shared read-only options object.
	Options *config.Options

	// Core is a back reference to the owning pipeline, giving rules
	// access to its collaborators.
	Core *Core
}

// Tokenizer produces the token stream for a source document. It is an
// external collaborator; pkg/parser/goldmark provides the stock
// implementation.
type Tokenizer interface {
	Tokenize(src string) ([]*token.Token, error)
}

// Core owns the core-rule chain and the tokenizer collaborator.
type Core struct {
	// Ruler holds the core rules. Callers may rearrange, toggle, or
	// extend it before processing.
	Ruler *ruler.Ruler[RuleFunc]

	// Tokenizer converts source text into the token stream.
	Tokenizer Tokenizer
}

// New creates a Core with the stock rule chain.
func New(tokenizer Tokenizer) *Core {
	c := &Core{
		Ruler:     ruler.New[RuleFunc](),
		Tokenizer: tokenizer,
	}
	c.Ruler.Push("normalize", Normalize)
	c.Ruler.Push("tokenize", Tokenize)
	c.Ruler.Push("replacements", Replacements)
	c.Ruler.Push("smartquotes", SmartQuotes)
	return c
}

// Process runs every enabled rule of the default chain, in order,
// against a fresh state for src. The returned state holds the
// rewritten token stream.
func (c *Core) Process(src string, opts *config.Options) (*State, error) {
	state := &State{
		Src:     src,
		Options: opts,
		Core:    c,
	}
	for _, fn := range c.Ruler.GetRules(ruler.DefaultChain) {
		if err := fn(state); err != nil {
			return nil, err
		}
	}
	return state, nil
}

// Tokenize is the core rule delegating to the tokenizer collaborator.
func Tokenize(state *State) error {
	toks, err := state.Core.Tokenizer.Tokenize(state.Src)
	if err != nil {
		return fmt.Errorf("tokenize: %w", err)
	}
	state.Tokens = toks
	return nil
}
