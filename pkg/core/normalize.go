package core

import "strings"

var newlineNormalizer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Normalize is the core rule that canonicalizes the raw source before
// tokenizing: CRLF and lone CR become LF, and NUL bytes become the
// Unicode replacement character.
func Normalize(state *State) error {
	src := newlineNormalizer.Replace(state.Src)
	src = strings.ReplaceAll(src, "\x00", "�")
	state.Src = src
	return nil
}
