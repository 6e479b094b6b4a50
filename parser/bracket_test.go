package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The original dialect this grammar descends from has a documented bug in
// negated brackets: [^ABC] discards the enumerated characters entirely and
// reconnects as a bare dot, so it ends up matching A, B and C too. This
// grammar builds negated brackets as a genuine excluded-set edge instead;
// these tests pin that corrected behavior so a future change can't regress
// back to the old one.
func TestNegatedBracketExcludesListedBytes(t *testing.T) {
	a := parse(t, "[^ABC]", nil)
	require.True(t, accepts(a, "D"))
	require.False(t, accepts(a, "A"))
	require.False(t, accepts(a, "B"))
	require.False(t, accepts(a, "C"))
}

func TestPositiveBracketMatchesOnlyListedBytes(t *testing.T) {
	a := parse(t, "[abc]", nil)
	require.True(t, accepts(a, "a"))
	require.True(t, accepts(a, "b"))
	require.True(t, accepts(a, "c"))
	require.False(t, accepts(a, "d"))
}

func TestBracketRange(t *testing.T) {
	a := parse(t, "[a-z]", nil)
	require.True(t, accepts(a, "m"))
	require.False(t, accepts(a, "M"))
	require.False(t, accepts(a, "5"))
}

func TestBracketDashAtEdgesIsLiteral(t *testing.T) {
	a := parse(t, "[a-]", nil)
	require.True(t, accepts(a, "a"))
	require.True(t, accepts(a, "-"))
	require.False(t, accepts(a, "b"))

	b := parse(t, "[-a]", nil)
	require.True(t, accepts(b, "a"))
	require.True(t, accepts(b, "-"))
	require.False(t, accepts(b, "b"))
}

func TestBracketCombinedRangesAndSingles(t *testing.T) {
	a := parse(t, "[a-c0-9X]", nil)
	require.True(t, accepts(a, "b"))
	require.True(t, accepts(a, "7"))
	require.True(t, accepts(a, "X"))
	require.False(t, accepts(a, "Y"))
}

func TestBracketOfMetacharactersIsLiteral(t *testing.T) {
	a := parse(t, "[()]", nil)
	require.True(t, accepts(a, "("))
	require.True(t, accepts(a, ")"))
	require.False(t, accepts(a, "a"))
}

func TestEmptyBracketIsError(t *testing.T) {
	_, err := New(mustLex(t, "[]"), nil).Parse()
	require.Error(t, err)
}

func TestUnterminatedBracketIsError(t *testing.T) {
	_, err := New(mustLex(t, "[abc"), nil).Parse()
	require.Error(t, err)
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
}

func TestNegatedBracketWithRange(t *testing.T) {
	a := parse(t, "[^a-z]", nil)
	require.True(t, accepts(a, "5"))
	require.True(t, accepts(a, "A"))
	require.False(t, accepts(a, "m"))
}
