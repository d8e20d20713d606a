package token

import (
	"fmt"
	"strings"
)

// Dump renders a token stream as an indented text tree, one token per
// line, for debugging and golden tests.
func Dump(tokens []*Token) string {
	var b strings.Builder
	dumpTokens(&b, tokens, 0)
	return b.String()
}

func dumpTokens(b *strings.Builder, tokens []*Token, indent int) {
	for _, t := range tokens {
		b.WriteString(strings.Repeat("  ", indent))
		b.WriteString(t.Type)
		fmt.Fprintf(b, " [level=%d]", t.Level)
		if t.Content != "" {
			fmt.Fprintf(b, " %q", t.Content)
		}
		b.WriteString("\n")
		if len(t.Children) > 0 {
			dumpTokens(b, t.Children, indent+1)
		}
	}
}
