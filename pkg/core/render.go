package core

import (
	"strings"

	"github.com/yaklabco/smartmd/pkg/token"
)

// RenderText flattens a processed token stream into plain text, one
// blank line between blocks. It is a preview surface for the CLI, not
// a markup renderer: emphasis markers are echoed back, link
// destinations are dropped.
func RenderText(tokens []*token.Token) string {
	var b strings.Builder

	for _, tok := range tokens {
		switch tok.Type {
		case token.TypeInline:
			renderInline(&b, tok.Children)
		case token.TypeFence, token.TypeCodeBlock:
			b.WriteString(tok.Content)
		case token.TypeHR:
			b.WriteString("---")
		case token.TypeHTMLBlock:
			b.WriteString(tok.Content)
		default:
			if tok.Block && tok.Nesting == token.NestingClose {
				b.WriteString("\n\n")
			}
		}
	}

	out := strings.TrimRight(b.String(), "\n")
	if out == "" {
		return ""
	}
	return out + "\n"
}

func renderInline(b *strings.Builder, children []*token.Token) {
	for _, tok := range children {
		switch tok.Type {
		case token.TypeText, token.TypeHTMLInline, token.TypeImage:
			b.WriteString(tok.Content)
		case token.TypeSoftbreak, token.TypeHardbreak:
			b.WriteString("\n")
		case token.TypeCodeInline:
			b.WriteString("`")
			b.WriteString(tok.Content)
			b.WriteString("`")
		default:
			// Emphasis and similar markers round-trip their markup.
			b.WriteString(tok.Markup)
		}
	}
}
