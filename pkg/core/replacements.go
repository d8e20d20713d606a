package core

import (
	"regexp"
	"strings"

	"github.com/yaklabco/smartmd/pkg/token"
)

// Typographic replacement patterns. Scoped abbreviations are applied
// everywhere; the rare patterns are skipped inside links.
var (
	scopedAbbrRE = regexp.MustCompile(`(?i)\((c|tm|r)\)`)
	rareTestRE   = regexp.MustCompile(`\+-|\.\.|\?\?\?\?|!!!!|,,|--`)

	plusMinusRE = regexp.MustCompile(`\+-`)
	ellipsisRE  = regexp.MustCompile(`\.{2,}`)
	bangRunRE   = regexp.MustCompile(`([?!]){4,}`)
	commaRunRE  = regexp.MustCompile(`,{2,}`)
)

var scopedAbbrs = map[string]string{
	"c":  "©",
	"r":  "®",
	"tm": "™",
}

// Replacements is the core rule for simple typographic substitutions:
// (c) (r) (tm), +-, ellipsis, ?!-run collapsing, comma runs, and
// en/em dashes. Gated by the typographer option.
func Replacements(state *State) error {
	if !state.Options.Typographer {
		return nil
	}
	for _, tok := range state.Tokens {
		if tok.Type != token.TypeInline {
			continue
		}
		if scopedAbbrRE.MatchString(tok.Content) {
			replaceScoped(tok.Children)
		}
		if rareTestRE.MatchString(tok.Content) {
			replaceRare(tok.Children)
		}
	}
	return nil
}

func replaceScoped(tokens []*token.Token) {
	for _, tok := range tokens {
		if tok.Type != token.TypeText {
			continue
		}
		tok.Content = scopedAbbrRE.ReplaceAllStringFunc(tok.Content, func(m string) string {
			return scopedAbbrs[strings.ToLower(m[1:len(m)-1])]
		})
	}
}

func replaceRare(tokens []*token.Token) {
	// Substitutions inside link text would rewrite visible URLs, so
	// anything below a link_open is left alone.
	linkDepth := 0
	for _, tok := range tokens {
		switch tok.Type {
		case token.TypeLinkOpen:
			linkDepth++
			continue
		case token.TypeLinkClose:
			if linkDepth > 0 {
				linkDepth--
			}
			continue
		}
		if tok.Type != token.TypeText || linkDepth > 0 {
			continue
		}
		if !rareTestRE.MatchString(tok.Content) {
			continue
		}
		s := plusMinusRE.ReplaceAllString(tok.Content, "±")
		s = ellipsisRE.ReplaceAllString(s, "…")
		// An ellipsis right after ? or ! reads better as two dots.
		s = strings.ReplaceAll(s, "?…", "?..")
		s = strings.ReplaceAll(s, "!…", "!..")
		s = bangRunRE.ReplaceAllString(s, "$1$1$1")
		s = commaRunRE.ReplaceAllString(s, ",")
		tok.Content = replaceDashes(s)
	}
}

// replaceDashes rewrites runs of hyphens: a run of exactly three not
// touching another hyphen becomes an em dash, a run of exactly two
// becomes an en dash. Longer runs are left untouched.
func replaceDashes(s string) string {
	if !strings.Contains(s, "--") {
		return s
	}
	runes := []rune(s)
	var out strings.Builder
	out.Grow(len(s))

	for i := 0; i < len(runes); {
		if runes[i] != '-' {
			out.WriteRune(runes[i])
			i++
			continue
		}
		start := i
		for i < len(runes) && runes[i] == '-' {
			i++
		}
		switch i - start {
		case 2:
			out.WriteRune('–')
		case 3:
			out.WriteRune('—')
		default:
			out.WriteString(strings.Repeat("-", i-start))
		}
	}
	return out.String()
}
