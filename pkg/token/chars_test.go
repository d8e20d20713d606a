package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsWhiteSpace(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{"space", ' ', true},
		{"tab", '\t', true},
		{"newline", '\n', true},
		{"carriage return", '\r', true},
		{"nbsp", ' ', true},
		{"en quad", ' ', true},
		{"hair space", ' ', true},
		{"ideographic space", '　', true},
		{"letter", 'a', false},
		{"digit", '7', false},
		{"quote", '"', false},
		{"zero-width space", '​', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWhiteSpace(tt.r))
		})
	}
}

func TestIsMdASCIIPunct(t *testing.T) {
	for _, r := range `!"#$%&'()*+,-./:;<=>?@[\]^_` + "`{|}~" {
		assert.True(t, IsMdASCIIPunct(r), "expected %q to be ASCII punct", r)
	}

	for _, r := range "aZ09 \n¡" {
		assert.False(t, IsMdASCIIPunct(r), "expected %q to not be ASCII punct", r)
	}
}

func TestIsPunctChar(t *testing.T) {
	assert.True(t, IsPunctChar('—'))  // em dash, Pd
	assert.True(t, IsPunctChar('¡'))  // inverted exclamation, Po
	assert.True(t, IsPunctChar('«'))  // guillemet, Pi
	assert.True(t, IsPunctChar(','))
	assert.False(t, IsPunctChar('a'))
	assert.False(t, IsPunctChar(' '))
	assert.False(t, IsPunctChar('+')) // Sm, not P
}

func TestToken_IsBreak(t *testing.T) {
	assert.True(t, (&Token{Type: TypeSoftbreak}).IsBreak())
	assert.True(t, (&Token{Type: TypeHardbreak}).IsBreak())
	assert.False(t, (&Token{Type: TypeText}).IsBreak())
}
