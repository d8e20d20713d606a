package goldmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/smartmd/pkg/config"
	"github.com/yaklabco/smartmd/pkg/token"
)

func tokenize(t *testing.T, src string) []*token.Token {
	t.Helper()
	toks, err := New(config.FlavorCommonMark).Tokenize(src)
	require.NoError(t, err)
	return toks
}

func types(toks []*token.Token) []string {
	out := make([]string, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Type)
	}
	return out
}

func TestParser_FlavorFallback(t *testing.T) {
	assert.Equal(t, config.FlavorCommonMark, New("").Flavor())
	assert.Equal(t, config.FlavorCommonMark, New("bogus").Flavor())
	assert.Equal(t, config.FlavorGFM, New(config.FlavorGFM).Flavor())
}

func TestParser_Paragraph(t *testing.T) {
	toks := tokenize(t, "hello world\n")
	require.Equal(t,
		[]string{token.TypeParagraphOpen, token.TypeInline, token.TypeParagraphClose},
		types(toks))

	assert.Equal(t, 0, toks[0].Level)
	assert.Equal(t, 1, toks[1].Level)
	assert.Equal(t, "hello world", toks[1].Content)
	assert.Equal(t, token.NestingClose, toks[2].Nesting)

	children := toks[1].Children
	require.Len(t, children, 1)
	assert.Equal(t, token.TypeText, children[0].Type)
	assert.Equal(t, "hello world", children[0].Content)
	assert.Equal(t, 0, children[0].Level)
}

func TestParser_Heading(t *testing.T) {
	toks := tokenize(t, "## Title\n")
	require.Equal(t,
		[]string{token.TypeHeadingOpen, token.TypeInline, token.TypeHeadingClose},
		types(toks))
	assert.Equal(t, "h2", toks[0].Tag)
	assert.Equal(t, "##", toks[0].Markup)
	assert.Equal(t, "Title", toks[1].Children[0].Content)
}

func TestParser_SoftAndHardBreaks(t *testing.T) {
	toks := tokenize(t, "one\ntwo  \nthree\n")
	children := toks[1].Children
	require.Len(t, children, 5)
	assert.Equal(t, token.TypeText, children[0].Type)
	assert.Equal(t, token.TypeSoftbreak, children[1].Type)
	assert.Equal(t, token.TypeText, children[2].Type)
	assert.Equal(t, token.TypeHardbreak, children[3].Type)
	assert.Equal(t, "three", children[4].Content)
}

func TestParser_EmphasisLevels(t *testing.T) {
	toks := tokenize(t, "*em* **strong**\n")
	children := toks[1].Children

	var sequence []string
	for _, c := range children {
		sequence = append(sequence, c.Type)
	}
	assert.Equal(t, []string{
		token.TypeEmOpen, token.TypeText, token.TypeEmClose,
		token.TypeText,
		token.TypeStrongOpen, token.TypeText, token.TypeStrongClose,
	}, sequence)

	// Open tokens sit at the outer level, their content one deeper.
	assert.Equal(t, 0, children[0].Level)
	assert.Equal(t, 1, children[1].Level)
	assert.Equal(t, 0, children[2].Level)
	assert.Equal(t, "**", children[4].Markup)
}

func TestParser_Link(t *testing.T) {
	toks := tokenize(t, "[text here](https://example.com)\n")
	children := toks[1].Children
	require.Len(t, children, 3)
	assert.Equal(t, token.TypeLinkOpen, children[0].Type)
	assert.Equal(t, "https://example.com", children[0].Info)
	assert.Equal(t, "text here", children[1].Content)
	assert.Equal(t, 1, children[1].Level)
	assert.Equal(t, token.TypeLinkClose, children[2].Type)
}

func TestParser_AutoLink(t *testing.T) {
	toks := tokenize(t, "<https://example.com>\n")
	children := toks[1].Children
	require.Len(t, children, 3)
	assert.Equal(t, token.TypeLinkOpen, children[0].Type)
	assert.Equal(t, "autolink", children[0].Markup)
	assert.Equal(t, "https://example.com", children[1].Content)
}

func TestParser_CodeSpanAndImage(t *testing.T) {
	toks := tokenize(t, "run `go build` ![alt text](img.png)\n")
	children := toks[1].Children

	var code, img *token.Token
	for _, c := range children {
		switch c.Type {
		case token.TypeCodeInline:
			code = c
		case token.TypeImage:
			img = c
		}
	}
	require.NotNil(t, code)
	assert.Equal(t, "go build", code.Content)
	require.NotNil(t, img)
	assert.Equal(t, "alt text", img.Content)
	assert.Equal(t, "img.png", img.Info)
}

func TestParser_RawHTMLInline(t *testing.T) {
	toks := tokenize(t, "before <em>word</em> after\n")
	children := toks[1].Children

	var html []string
	for _, c := range children {
		if c.Type == token.TypeHTMLInline {
			html = append(html, c.Content)
		}
	}
	assert.Equal(t, []string{"<em>", "</em>"}, html)
}

func TestParser_MultilineParagraphContent(t *testing.T) {
	// The inline token content covers every source line of the block.
	toks := tokenize(t, "first line\nsecond line\n")
	assert.Equal(t, "first line\nsecond line", toks[1].Content)
}

func TestParser_FencedCode(t *testing.T) {
	toks := tokenize(t, "```go\nfmt.Println(\"hi\")\n```\n")
	require.Equal(t, []string{token.TypeFence}, types(toks))
	assert.Equal(t, "go", toks[0].Info)
	assert.Equal(t, `fmt.Println("hi")`, toks[0].Content)
	assert.True(t, toks[0].Block)
	assert.Equal(t, token.NestingSelf, toks[0].Nesting)
}

func TestParser_Blockquote(t *testing.T) {
	toks := tokenize(t, "> quoted line\n")
	require.Equal(t, []string{
		token.TypeBlockquoteOpen,
		token.TypeParagraphOpen, token.TypeInline, token.TypeParagraphClose,
		token.TypeBlockquoteClose,
	}, types(toks))

	// Nested blocks pick up the parent's level plus one.
	assert.Equal(t, 0, toks[0].Level)
	assert.Equal(t, 1, toks[1].Level)
	assert.Equal(t, 2, toks[2].Level)
}

func TestParser_BulletList(t *testing.T) {
	toks := tokenize(t, "- one\n- two\n")
	require.Equal(t, []string{
		token.TypeBulletListOpen,
		token.TypeListItemOpen, token.TypeInline, token.TypeListItemClose,
		token.TypeListItemOpen, token.TypeInline, token.TypeListItemClose,
		token.TypeBulletListClose,
	}, types(toks))
	assert.Equal(t, "ul", toks[0].Tag)
	assert.Equal(t, "one", toks[2].Children[0].Content)
}

func TestParser_OrderedList(t *testing.T) {
	toks := tokenize(t, "1. one\n2. two\n")
	assert.Equal(t, token.TypeOrderedListOpen, toks[0].Type)
	assert.Equal(t, "ol", toks[0].Tag)
}

func TestParser_ThematicBreak(t *testing.T) {
	toks := tokenize(t, "---\n")
	require.Equal(t, []string{token.TypeHR}, types(toks))
	assert.Equal(t, "---", toks[0].Markup)
}

func TestParser_GFMStrikethrough(t *testing.T) {
	toks, err := New(config.FlavorGFM).Tokenize("~~gone~~\n")
	require.NoError(t, err)

	children := toks[1].Children
	require.Len(t, children, 3)
	assert.Equal(t, "s_open", children[0].Type)
	assert.Equal(t, "gone", children[1].Content)
	assert.Equal(t, 1, children[1].Level)
	assert.Equal(t, "s_close", children[2].Type)
}

func TestParser_Empty(t *testing.T) {
	toks := tokenize(t, "")
	assert.Empty(t, toks)
}
