package token

import "unicode"

// IsWhiteSpace reports whether r is a markdown whitespace character.
// The set matches the CommonMark definition: ASCII whitespace plus the
// Unicode Zs space separators.
func IsWhiteSpace(r rune) bool {
	switch r {
	case 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x20, 0xA0:
		return true
	case 0x1680, 0x202F, 0x205F, 0x3000:
		return true
	}
	return r >= 0x2000 && r <= 0x200A
}

// IsMdASCIIPunct reports whether r is one of the 32 ASCII punctuation
// characters CommonMark treats as punctuation. Intentionally narrower
// than unicode.IsPunct for the ASCII range.
func IsMdASCIIPunct(r rune) bool {
	switch {
	case r >= 0x21 && r <= 0x2F: // !"#$%&'()*+,-./
		return true
	case r >= 0x3A && r <= 0x40: // :;<=>?@
		return true
	case r >= 0x5B && r <= 0x60: // [\]^_`
		return true
	case r >= 0x7B && r <= 0x7E: // {|}~
		return true
	}
	return false
}

// IsPunctChar reports whether r is in the Unicode punctuation
// category P.
func IsPunctChar(r rune) bool {
	return unicode.IsPunct(r)
}
