package nfaregex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmptyPatternAcceptsOnlyEmptyString(t *testing.T) {
	re, err := Compile("", nil)
	require.NoError(t, err)
	require.True(t, re.FullMatch(""))
	require.False(t, re.FullMatch("x"))
}

func TestKleeneStarAcceptsEmptyPlusRejects(t *testing.T) {
	star, err := Compile("A*", nil)
	require.NoError(t, err)
	require.True(t, star.FullMatch(""))

	plus, err := Compile("A+", nil)
	require.NoError(t, err)
	require.False(t, plus.FullMatch(""))
}

func TestFullMatchImpliesPartialMatch(t *testing.T) {
	re, err := Compile(`(ab|xy|p{4}|o+){1,3}`, nil)
	require.NoError(t, err)
	for _, s := range []string{"", "ab", "xyppppooooo", "xy"} {
		if re.FullMatch(s) {
			require.True(t, re.PartialMatch(s), "FullMatch(%q) implies PartialMatch(%q)", s, s)
		}
	}
}

func TestAnchorRoundTrip(t *testing.T) {
	anchored, err := Compile("^abc$", nil)
	require.NoError(t, err)
	plain, err := Compile("abc", nil)
	require.NoError(t, err)
	for _, s := range []string{"abc", "xabc", "abcx", ""} {
		require.Equal(t, plain.FullMatch(s), anchored.FullMatch(s))
	}
}

func TestRepetitionBounds(t *testing.T) {
	re, err := Compile("a{2,4}", nil)
	require.NoError(t, err)
	for k := 0; k <= 6; k++ {
		s := strings.Repeat("a", k)
		want := k >= 2 && k <= 4
		require.Equal(t, want, re.FullMatch(s), "k=%d", k)
	}
}

func TestVariableSubstitutionEquivalentToInlining(t *testing.T) {
	octet, err := Compile(`\d{1,3}`, nil)
	require.NoError(t, err)
	withVar, err := Compile(`{o}\.{o}`, map[string]*Regex{"o": octet})
	require.NoError(t, err)
	inlined, err := Compile(`(\d{1,3})\.(\d{1,3})`, nil)
	require.NoError(t, err)
	for _, s := range []string{"1.2", "192.168", "1.2.3", ""} {
		require.Equal(t, inlined.FullMatch(s), withVar.FullMatch(s), "s=%q", s)
	}
}

func TestLinearTimeOnAmbiguousAlternationStar(t *testing.T) {
	re, err := Compile("(a|a)*b", nil)
	require.NoError(t, err)
	input := strings.Repeat("a", 5000)
	require.False(t, re.FullMatch(input))
	require.True(t, re.FullMatch(input+"b"))
}

func TestScenarioDotMiddle(t *testing.T) {
	re, err := Compile("a.b", nil)
	require.NoError(t, err)
	require.False(t, re.FullMatch("aaab"))
	require.True(t, re.PartialMatch("aaab"))
}

func TestScenarioGroupStar(t *testing.T) {
	re, err := Compile("(aab)*", nil)
	require.NoError(t, err)
	require.True(t, re.FullMatch("aabaab"))
	require.True(t, re.PartialMatch("aabaab"))
}

func TestScenarioAlternationWithRepetitionRange(t *testing.T) {
	re, err := Compile(`(ab|xy|p{4}|o+){1,3}`, nil)
	require.NoError(t, err)
	require.True(t, re.FullMatch("xyppppooooo"))
	require.True(t, re.PartialMatch("xyppppooooo"))
}

func TestScenarioNegatedClass(t *testing.T) {
	re, err := Compile("[^ABC]", nil)
	require.NoError(t, err)
	require.True(t, re.FullMatch("D"))
	require.True(t, re.PartialMatch("D"))
}

func TestScenarioWhitespaceShorthand(t *testing.T) {
	re, err := Compile(`a\sb`, nil)
	require.NoError(t, err)
	require.True(t, re.FullMatch("a\tb"))
	require.True(t, re.PartialMatch("a\tb"))
}

func TestScenarioDigitRange(t *testing.T) {
	re, err := Compile(`\d{1,3}`, nil)
	require.NoError(t, err)
	require.True(t, re.FullMatch("007"))
	require.True(t, re.PartialMatch("007"))
}

func TestScenarioLeadingAnchor(t *testing.T) {
	re, err := Compile("^a", nil)
	require.NoError(t, err)
	require.True(t, re.PartialMatch("ab"))
	require.False(t, re.PartialMatch("ba"))
}

func TestScenarioTrailingAnchor(t *testing.T) {
	re, err := Compile("a$", nil)
	require.NoError(t, err)
	require.True(t, re.PartialMatch("ba"))
	require.False(t, re.PartialMatch("ab"))
}

func TestScenarioOctetVariableIPv4(t *testing.T) {
	octet, err := Compile(`(\d|[1-9]\d|1\d\d|2([0-4]\d|5[0-5]))`, nil)
	require.NoError(t, err)
	ip, err := Compile(`{e}(\.{e}){3}`, map[string]*Regex{"e": octet})
	require.NoError(t, err)

	ok := ip.FullMatch("192.160.0.255")
	require.True(t, ok)
	require.True(t, ip.PartialMatch("192.160.0.255"))

	require.False(t, ip.FullMatch("192.160.0.256"))
	require.False(t, ip.PartialMatch("192.160.0.256"))
}

func TestCompileInvalidPatternReturnsCompileError(t *testing.T) {
	_, err := Compile("a(b", nil)
	require.Error(t, err)
	var compileErr *CompileError
	require.ErrorAs(t, err, &compileErr)
}

func TestCompileUndefinedVariableReturnsCompileError(t *testing.T) {
	_, err := Compile("{missing}", nil)
	require.Error(t, err)
	var compileErr *CompileError
	require.ErrorAs(t, err, &compileErr)
}

func TestMustCompilePanicsOnInvalidPattern(t *testing.T) {
	require.Panics(t, func() {
		MustCompile("a(b", nil)
	})
}
