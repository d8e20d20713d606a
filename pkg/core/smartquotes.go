package core

import (
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/smartmd/pkg/config"
	"github.com/yaklabco/smartmd/pkg/token"
)

// apostrophe is the fixed glyph substituted for mid-word single
// quotes, independent of the configured quote glyphs.
const apostrophe = "’"

// quoteMark records a pending open quote while scanning one inline
// token's children.
type quoteMark struct {
	token  int  // index of the child token holding the quote
	pos    int  // rune offset of the quote within that token's content
	single bool // '-class quote, as opposed to "-class
	level  int  // nesting level at push time
}

// SmartQuotes is the core rule that rewrites straight quotation marks
// into typographic quotes and mid-word apostrophes. It is a no-op
// unless the typographer option is on.
//
// The rule mutates only Content fields of text children; it never
// inserts, removes, or reorders tokens.
func SmartQuotes(state *State) error {
	if !state.Options.Typographer {
		return nil
	}
	for _, tok := range state.Tokens {
		if tok.Type != token.TypeInline || !strings.ContainsAny(tok.Content, `'"`) {
			continue
		}
		processInlines(tok.Children, &state.Options.Quotes)
	}
	return nil
}

// processInlines scans one inline token's child sequence and rewrites
// quote pairs in place. The pending-quote stack lives for exactly one
// call.
func processInlines(tokens []*token.Token, quotes *config.QuoteGlyphs) {
	var stack []quoteMark

	for i, tok := range tokens {
		thisLevel := tok.Level

		// Quotes cannot close across a level boundary they did not
		// open within: drop pending entries above the current level.
		j := len(stack) - 1
		for j >= 0 && stack[j].level > thisLevel {
			j--
		}
		stack = stack[:j+1]

		if tok.Type != token.TypeText {
			continue
		}

		text := []rune(tok.Content)
		pos := 0

		for pos < len(text) {
			idx := indexQuote(text, pos)
			if idx < 0 {
				break
			}

			canOpen, canClose := true, true
			isSingle := text[idx] == '\''
			pos = idx + 1

			// Preceding character; a string start behaves as if
			// preceded by whitespace.
			lastChar := ' '
			if idx > 0 {
				lastChar = text[idx-1]
			} else {
				for k := i - 1; k >= 0; k-- {
					if tokens[k].IsBreak() {
						break
					}
					if tokens[k].Content == "" {
						continue
					}
					lastChar, _ = utf8.DecodeLastRuneInString(tokens[k].Content)
					break
				}
			}

			// Following character, symmetrically.
			nextChar := ' '
			if pos < len(text) {
				nextChar = text[pos]
			} else {
				for k := i + 1; k < len(tokens); k++ {
					if tokens[k].IsBreak() {
						break
					}
					if tokens[k].Content == "" {
						continue
					}
					nextChar, _ = utf8.DecodeRuneInString(tokens[k].Content)
					break
				}
			}

			isLastPunct := token.IsMdASCIIPunct(lastChar) || token.IsPunctChar(lastChar)
			isNextPunct := token.IsMdASCIIPunct(nextChar) || token.IsPunctChar(nextChar)
			isLastWhite := token.IsWhiteSpace(lastChar)
			isNextWhite := token.IsWhiteSpace(nextChar)

			if isNextWhite {
				canOpen = false
			} else if isNextPunct && !(isLastWhite || isLastPunct) {
				canOpen = false
			}

			if isLastWhite {
				canClose = false
			} else if isLastPunct && !(isNextWhite || isNextPunct) {
				canClose = false
			}

			if nextChar == '"' && !isSingle && lastChar >= '0' && lastChar <= '9' {
				// 1"" counts the first quote as an inch mark.
				canOpen, canClose = false, false
			}

			if canOpen && canClose {
				// Quote between two word characters stays put;
				// inside punctuation runs replacement is allowed.
				canOpen = isLastPunct
				canClose = isNextPunct
			}

			if !canOpen && !canClose {
				// Middle of a word.
				if isSingle {
					text = replaceRuneAt(text, idx, apostrophe)
					tok.Content = string(text)
				}
				continue
			}

			if canClose {
				// Could be a closing quote; rewind the stack for a
				// matching opener at the same level.
				matched := false
				for k := len(stack) - 1; k >= 0; k-- {
					if stack[k].level < thisLevel {
						break
					}
					if stack[k].single != isSingle || stack[k].level != thisLevel {
						continue
					}
					openQuote, closeQuote := quotes.DoubleOpen, quotes.DoubleClose
					if isSingle {
						openQuote, closeQuote = quotes.SingleOpen, quotes.SingleClose
					}

					// Rewrite the current token before the opener:
					// when both quotes sit in the same token, the
					// opener offset precedes idx and stays valid.
					text = replaceRuneAt(text, idx, closeQuote)
					tok.Content = string(text)

					opener := tokens[stack[k].token]
					openerText := replaceRuneAt([]rune(opener.Content), stack[k].pos, openQuote)
					opener.Content = string(openerText)

					pos += utf8.RuneCountInString(closeQuote) - 1
					if stack[k].token == i {
						pos += utf8.RuneCountInString(openQuote) - 1
					}

					text = []rune(tok.Content)
					stack = stack[:k]
					matched = true
					break
				}
				if matched {
					continue
				}
			}

			switch {
			case canOpen:
				stack = append(stack, quoteMark{
					token:  i,
					pos:    idx,
					single: isSingle,
					level:  thisLevel,
				})
			case canClose && isSingle:
				// Unmatched closing single quote: apostrophe.
				text = replaceRuneAt(text, idx, apostrophe)
				tok.Content = string(text)
			}
		}
	}
}

// indexQuote returns the index of the first ASCII quote character at
// or after from, or -1.
func indexQuote(text []rune, from int) int {
	for i := from; i < len(text); i++ {
		if text[i] == '\'' || text[i] == '"' {
			return i
		}
	}
	return -1
}

// replaceRuneAt replaces the single rune at idx with the given
// replacement string, which may be longer or shorter than one rune.
func replaceRuneAt(text []rune, idx int, repl string) []rune {
	out := make([]rune, 0, len(text)+utf8.RuneCountInString(repl)-1)
	out = append(out, text[:idx]...)
	out = append(out, []rune(repl)...)
	out = append(out, text[idx+1:]...)
	return out
}
