package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLexBasicOperators(t *testing.T) {
	toks, err := Lex(`a.b*c+d?(e|f)`)
	require.NoError(t, err)
	kinds := make([]Kind, len(toks))
	for i, tk := range toks {
		kinds[i] = tk.Kind
	}
	require.Equal(t, []Kind{
		Literal, Dot, Literal, Star, Literal, Plus, Literal, Questionmark,
		OpenParen, Literal, Pipe, Literal, CloseParen,
	}, kinds)
}

func TestLexShorthandClasses(t *testing.T) {
	toks, err := Lex(`\d\w\s`)
	require.NoError(t, err)
	require.Equal(t, []Kind{Digit, Word, Whitespace}, []Kind{toks[0].Kind, toks[1].Kind, toks[2].Kind})
}

func TestLexUppercaseShorthandsAreLiterals(t *testing.T) {
	toks, err := Lex(`\D\W\S`)
	require.NoError(t, err)
	require.Equal(t, Literal, toks[0].Kind)
	require.Equal(t, byte('D'), toks[0].Value)
	require.Equal(t, byte('W'), toks[1].Value)
	require.Equal(t, byte('S'), toks[2].Value)
}

func TestLexEscapedMetacharacter(t *testing.T) {
	toks, err := Lex(`\.\\\*`)
	require.NoError(t, err)
	require.Equal(t, []byte{'.', '\\', '*'}, []byte{toks[0].Value, toks[1].Value, toks[2].Value})
	for _, tk := range toks {
		require.Equal(t, Literal, tk.Kind)
	}
}

func TestLexTrailingBackslashFails(t *testing.T) {
	_, err := Lex(`abc\`)
	require.Error(t, err)
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
}

func TestLexAnchorsAndBrackets(t *testing.T) {
	toks, err := Lex(`^[a-z]{1,3}$`)
	require.NoError(t, err)
	kinds := make([]Kind, len(toks))
	for i, tk := range toks {
		kinds[i] = tk.Kind
	}
	require.Equal(t, []Kind{
		Caret, OpenBracket, Literal, Literal, Literal, CloseBracket,
		OpenBrace, Literal, Literal, Literal, CloseBrace, Dollar,
	}, kinds)
}
