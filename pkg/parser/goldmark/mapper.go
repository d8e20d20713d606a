package goldmark

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/yaklabco/smartmd/pkg/token"
)

// mapper converts the goldmark block AST into the flat token stream.
type mapper struct {
	src  []byte
	toks []*token.Token
}

func (m *mapper) push(t *token.Token) {
	m.toks = append(m.toks, t)
}

func (m *mapper) open(typ, tag, markup string, level int) {
	m.push(&token.Token{
		Type:    typ,
		Tag:     tag,
		Nesting: token.NestingOpen,
		Level:   level,
		Markup:  markup,
		Block:   true,
	})
}

func (m *mapper) close(typ, tag, markup string, level int) {
	m.push(&token.Token{
		Type:    typ,
		Tag:     tag,
		Nesting: token.NestingClose,
		Level:   level,
		Markup:  markup,
		Block:   true,
	})
}

func (m *mapper) mapBlocks(parent ast.Node, level int) {
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		m.mapBlock(child, level)
	}
}

func (m *mapper) mapBlock(n ast.Node, level int) {
	switch b := n.(type) {
	case *ast.Paragraph:
		m.open(token.TypeParagraphOpen, "p", "", level)
		m.push(m.inlineToken(b, level+1))
		m.close(token.TypeParagraphClose, "p", "", level)

	case *ast.TextBlock:
		// Tight list items carry bare text blocks; no paragraph wrapper.
		m.push(m.inlineToken(b, level))

	case *ast.Heading:
		tag := "h" + strconv.Itoa(b.Level)
		markup := strings.Repeat("#", b.Level)
		m.open(token.TypeHeadingOpen, tag, markup, level)
		m.push(m.inlineToken(b, level+1))
		m.close(token.TypeHeadingClose, tag, markup, level)

	case *ast.Blockquote:
		m.open(token.TypeBlockquoteOpen, "blockquote", ">", level)
		m.mapBlocks(b, level+1)
		m.close(token.TypeBlockquoteClose, "blockquote", ">", level)

	case *ast.List:
		typOpen, typClose, tag := token.TypeBulletListOpen, token.TypeBulletListClose, "ul"
		if b.IsOrdered() {
			typOpen, typClose, tag = token.TypeOrderedListOpen, token.TypeOrderedListClose, "ol"
		}
		markup := string(b.Marker)
		m.open(typOpen, tag, markup, level)
		m.mapBlocks(b, level+1)
		m.close(typClose, tag, markup, level)

	case *ast.ListItem:
		m.open(token.TypeListItemOpen, "li", "", level)
		m.mapBlocks(b, level+1)
		m.close(token.TypeListItemClose, "li", "", level)

	case *ast.FencedCodeBlock:
		info := ""
		if b.Info != nil {
			info = string(b.Info.Segment.Value(m.src))
		}
		m.push(&token.Token{
			Type:    token.TypeFence,
			Tag:     "code",
			Nesting: token.NestingSelf,
			Level:   level,
			Content: m.linesOf(b),
			Markup:  "```",
			Info:    info,
			Block:   true,
		})

	case *ast.CodeBlock:
		m.push(&token.Token{
			Type:    token.TypeCodeBlock,
			Tag:     "code",
			Nesting: token.NestingSelf,
			Level:   level,
			Content: m.linesOf(b),
			Block:   true,
		})

	case *ast.ThematicBreak:
		m.push(&token.Token{
			Type:    token.TypeHR,
			Tag:     "hr",
			Nesting: token.NestingSelf,
			Level:   level,
			Markup:  "---",
			Block:   true,
		})

	case *ast.HTMLBlock:
		m.push(&token.Token{
			Type:    token.TypeHTMLBlock,
			Nesting: token.NestingSelf,
			Level:   level,
			Content: m.linesOf(b),
			Block:   true,
		})

	default:
		// Unknown containers (tables, custom blocks) contribute their
		// children without wrapper tokens.
		m.mapBlocks(n, level)
	}
}

// inlineToken builds the "inline" token for one leaf block: raw
// source content plus the flattened, level-tracked children.
func (m *mapper) inlineToken(n ast.Node, level int) *token.Token {
	im := &inlineMapper{src: m.src}
	im.mapChildren(n)
	return &token.Token{
		Type:     token.TypeInline,
		Level:    level,
		Content:  m.linesOf(n),
		Children: im.toks,
	}
}

// linesOf returns the raw source covered by the node's line segments,
// without the trailing newline.
func (m *mapper) linesOf(n ast.Node) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(m.src))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// inlineMapper flattens one block's inline AST into tokens. Level
// starts at zero per block and tracks open/close nesting, which is
// what scopes quote-pair matching.
type inlineMapper struct {
	src   []byte
	toks  []*token.Token
	level int
}

func (im *inlineMapper) push(t *token.Token) {
	im.toks = append(im.toks, t)
}

func (im *inlineMapper) text(content string) {
	im.push(&token.Token{Type: token.TypeText, Level: im.level, Content: content})
}

func (im *inlineMapper) open(typ, tag, markup, info string) {
	im.push(&token.Token{
		Type:    typ,
		Tag:     tag,
		Nesting: token.NestingOpen,
		Level:   im.level,
		Markup:  markup,
		Info:    info,
	})
	im.level++
}

func (im *inlineMapper) close(typ, tag, markup string) {
	im.level--
	im.push(&token.Token{
		Type:    typ,
		Tag:     tag,
		Nesting: token.NestingClose,
		Level:   im.level,
		Markup:  markup,
	})
}

func (im *inlineMapper) mapChildren(n ast.Node) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		im.mapNode(child)
	}
}

func (im *inlineMapper) mapNode(n ast.Node) {
	switch gn := n.(type) {
	case *ast.Text:
		im.text(string(gn.Segment.Value(im.src)))
		switch {
		case gn.HardLineBreak():
			im.push(&token.Token{Type: token.TypeHardbreak, Tag: "br", Level: im.level})
		case gn.SoftLineBreak():
			im.push(&token.Token{Type: token.TypeSoftbreak, Level: im.level})
		}

	case *ast.String:
		im.text(string(gn.Value))

	case *ast.CodeSpan:
		im.push(&token.Token{
			Type:    token.TypeCodeInline,
			Tag:     "code",
			Level:   im.level,
			Content: im.textOf(gn),
			Markup:  "`",
		})

	case *ast.Emphasis:
		typOpen, typClose, tag, markup := token.TypeEmOpen, token.TypeEmClose, "em", "*"
		if gn.Level == 2 {
			typOpen, typClose, tag, markup = token.TypeStrongOpen, token.TypeStrongClose, "strong", "**"
		}
		im.open(typOpen, tag, markup, "")
		im.mapChildren(gn)
		im.close(typClose, tag, markup)

	case *ast.Link:
		im.open(token.TypeLinkOpen, "a", "", string(gn.Destination))
		im.mapChildren(gn)
		im.close(token.TypeLinkClose, "a", "")

	case *ast.AutoLink:
		url := string(gn.URL(im.src))
		im.open(token.TypeLinkOpen, "a", "autolink", "auto")
		im.text(url)
		im.close(token.TypeLinkClose, "a", "autolink")

	case *ast.Image:
		im.push(&token.Token{
			Type:    token.TypeImage,
			Tag:     "img",
			Level:   im.level,
			Content: im.textOf(gn),
			Info:    string(gn.Destination),
		})

	case *ast.RawHTML:
		var sb strings.Builder
		for i := 0; i < gn.Segments.Len(); i++ {
			seg := gn.Segments.At(i)
			sb.Write(seg.Value(im.src))
		}
		im.push(&token.Token{
			Type:    token.TypeHTMLInline,
			Level:   im.level,
			Content: sb.String(),
		})

	case *east.Strikethrough:
		im.open("s_open", "s", "~~", "")
		im.mapChildren(gn)
		im.close("s_close", "s", "~~")

	default:
		im.mapChildren(n)
	}
}

// textOf concatenates the text segments below a node, e.g. the code
// of a code span or the alt text of an image.
func (im *inlineMapper) textOf(n ast.Node) string {
	var sb strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			sb.Write(t.Segment.Value(im.src))
			continue
		}
		sb.WriteString(im.textOf(child))
	}
	return sb.String()
}
