// Package token defines the shared token stream produced by the
// tokenizer and mutated in place by core rules.
package token

// Common token types. The set is open: adapters may emit additional
// types, and rules must tolerate types they do not recognize.
const (
	TypeInline    = "inline"
	TypeText      = "text"
	TypeSoftbreak = "softbreak"
	TypeHardbreak = "hardbreak"

	TypeCodeInline = "code_inline"
	TypeHTMLInline = "html_inline"
	TypeImage      = "image"

	TypeParagraphOpen    = "paragraph_open"
	TypeParagraphClose   = "paragraph_close"
	TypeHeadingOpen      = "heading_open"
	TypeHeadingClose     = "heading_close"
	TypeBlockquoteOpen   = "blockquote_open"
	TypeBlockquoteClose  = "blockquote_close"
	TypeBulletListOpen   = "bullet_list_open"
	TypeBulletListClose  = "bullet_list_close"
	TypeOrderedListOpen  = "ordered_list_open"
	TypeOrderedListClose = "ordered_list_close"
	TypeListItemOpen     = "list_item_open"
	TypeListItemClose    = "list_item_close"
	TypeEmOpen           = "em_open"
	TypeEmClose          = "em_close"
	TypeStrongOpen       = "strong_open"
	TypeStrongClose      = "strong_close"
	TypeLinkOpen         = "link_open"
	TypeLinkClose        = "link_close"
	TypeCodeBlock        = "code_block"
	TypeFence            = "fence"
	TypeHR               = "hr"
	TypeHTMLBlock        = "html_block"
)

// Nesting values for Token.Nesting.
const (
	NestingOpen  = 1
	NestingSelf  = 0
	NestingClose = -1
)

// Token is a single node of the parsed-document stream.
//
// Block-level tokens form a flat open/close sequence; an "inline"
// token carries the flattened inline content of one block in Children.
// Core rules mutate only Content fields and never insert, remove, or
// reorder tokens.
type Token struct {
	// Type is the token type tag, e.g. "paragraph_open", "text".
	Type string

	// Tag is the corresponding markup tag name ("p", "em", ...).
	// Empty for tokens with no markup equivalent.
	Tag string

	// Nesting is NestingOpen for opening tokens, NestingClose for
	// closing tokens, and NestingSelf for self-contained tokens.
	Nesting int

	// Level is the nesting depth of this token. Children of an
	// inline token carry their own level scale starting at zero.
	Level int

	// Content is the text payload. Mutable; rules rewrite it in place.
	Content string

	// Markup is the source markup that produced this token ("**",
	// "`", ...), when meaningful.
	Markup string

	// Info carries extra adapter data, e.g. "auto" for autolinks or
	// the info string of a fenced code block.
	Info string

	// Children holds the inline child sequence. Non-nil only for
	// "inline" tokens.
	Children []*Token

	// Block is true for block-level tokens.
	Block bool
}

// IsBreak reports whether the token is a soft or hard line break.
// Breaks bound the sibling scans used by typographic rules.
func (t *Token) IsBreak() bool {
	return t.Type == TypeSoftbreak || t.Type == TypeHardbreak
}
