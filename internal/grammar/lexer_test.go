package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexer(t *testing.T) {
	l := NewLexer(`12: "a" | 3 4`)

	n, err := l.Int()
	require.NoError(t, err)
	assert.Equal(t, 12, n)
	require.NoError(t, l.Lit(":"))
	assert.Equal(t, byte('"'), l.Peek())

	s, err := l.Quoted()
	require.NoError(t, err)
	assert.Equal(t, "a", s)

	assert.False(t, l.Accept("&"))
	assert.True(t, l.Accept("|"))
	assert.Equal(t, " 3 4", l.Rest())

	for _, want := range []int{3, 4} {
		n, err := l.Int()
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}
	assert.True(t, l.EOF())
	assert.Equal(t, byte(0), l.Peek())
}

func TestLexer_words(t *testing.T) {
	l := NewLexer("light red bags contain")
	for _, want := range []string{"light", "red", "bags", "contain"} {
		w, err := l.Word()
		require.NoError(t, err)
		assert.Equal(t, want, w)
	}
	_, err := l.Word()
	assert.EqualError(t, err, "column 23: expected word, found end of input")
}

func TestLexer_errors(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		parse func(l *Lexer) error
		err   string
	}{
		{
			name:  "number",
			input: "x: 1",
			parse: func(l *Lexer) error { _, err := l.Int(); return err },
			err:   `column 1: expected number, found "x:"`,
		},
		{
			name:  "literal",
			input: "1 - 2",
			parse: func(l *Lexer) error {
				if _, err := l.Int(); err != nil {
					return err
				}
				return l.Lit(":")
			},
			err: `column 3: expected ":", found "-"`,
		},
		{
			name:  "unterminated",
			input: `"ab`,
			parse: func(l *Lexer) error { _, err := l.Quoted(); return err },
			err:   `column 2: expected closing '"', found "ab"`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.parse(NewLexer(tc.input))
			assert.EqualError(t, err, tc.err)
			var serr *SyntaxError
			assert.ErrorAs(t, err, &serr)
		})
	}
}
