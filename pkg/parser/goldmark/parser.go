// Package goldmark adapts the goldmark markdown parser to the token
// stream consumed by core rules. It is the stock implementation of
// the core.Tokenizer collaborator.
package goldmark

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gtext "github.com/yuin/goldmark/text"

	"github.com/yaklabco/smartmd/pkg/config"
	"github.com/yaklabco/smartmd/pkg/token"
)

// Parser tokenizes markdown source using goldmark.
type Parser struct {
	flavor string
	md     goldmark.Markdown
}

// New creates a parser for the given flavor. Supported flavors are
// "commonmark" and "gfm"; anything else falls back to CommonMark.
func New(flavor string) *Parser {
	f := flavorOrDefault(flavor)
	return &Parser{
		flavor: f,
		md:     newGoldmarkInstance(f),
	}
}

// Flavor returns the configured markdown flavor.
func (p *Parser) Flavor() string {
	return p.flavor
}

// Tokenize parses src and returns the flattened token stream: block
// open/close tokens plus one "inline" token per leaf block, whose
// Children carry the level-tracked inline tokens.
func (p *Parser) Tokenize(src string) ([]*token.Token, error) {
	content := []byte(src)
	doc := p.md.Parser().Parse(gtext.NewReader(content))

	m := &mapper{src: content}
	m.mapBlocks(doc, 0)
	return m.toks, nil
}

func flavorOrDefault(flavor string) string {
	switch flavor {
	case config.FlavorCommonMark, config.FlavorGFM:
		return flavor
	default:
		return config.FlavorCommonMark
	}
}

//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(flavor string) goldmark.Markdown {
	var opts []goldmark.Option
	if flavor == config.FlavorGFM {
		opts = append(opts, goldmark.WithExtensions(extension.GFM))
	}
	return goldmark.New(opts...)
}
