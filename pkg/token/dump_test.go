package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDump(t *testing.T) {
	tokens := []*Token{
		{Type: TypeParagraphOpen, Level: 0, Nesting: NestingOpen, Block: true},
		{
			Type:    TypeInline,
			Level:   1,
			Content: `say "hi"`,
			Children: []*Token{
				{Type: TypeText, Level: 0, Content: `say "hi"`},
			},
		},
		{Type: TypeParagraphClose, Level: 0, Nesting: NestingClose, Block: true},
	}

	want := "paragraph_open [level=0]\n" +
		"inline [level=1] \"say \\\"hi\\\"\"\n" +
		"  text [level=0] \"say \\\"hi\\\"\"\n" +
		"paragraph_close [level=0]\n"
	assert.Equal(t, want, Dump(tokens))
}

func TestDump_Empty(t *testing.T) {
	assert.Equal(t, "", Dump(nil))
}
