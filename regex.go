// Package nfaregex is a small regular-expression engine built on an explicit
// Thompson-construction NFA: lexer -> recursive-descent parser -> automaton
// combinators -> subset-simulation matcher. It answers only full_match and
// partial_match; there are no capture groups, no backreferences, no
// lookaround and no match positions, by design.
//
// Basic usage:
//
//	re, err := nfaregex.Compile(`\d{3}-\d{4}`, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.FullMatch("555-1234")    // true
//	re.PartialMatch("x555-1234x") // true
//
// Named variables let a pattern reference another compiled pattern by name:
//
//	octet, _ := nfaregex.Compile(`\d{1,3}`, nil)
//	ip, _ := nfaregex.Compile(`{octet}\.{octet}\.{octet}\.{octet}`, map[string]*nfaregex.Regex{
//	    "octet": octet,
//	})
//	ip.FullMatch("192.168.0.1") // true
package nfaregex

import (
	"fmt"

	"github.com/coregx/nfaregex/automaton"
	"github.com/coregx/nfaregex/matcher"
	"github.com/coregx/nfaregex/parser"
	"github.com/coregx/nfaregex/token"
)

// Regex is a compiled pattern. It is immutable after Compile returns and
// safe to use concurrently from multiple goroutines: FullMatch and
// PartialMatch each build a private matcher.Matcher for the call, so no
// working state is shared across concurrent callers.
type Regex struct {
	pattern string
	full    automaton.Automaton
	partial automaton.Automaton
}

// Compile compiles pattern into a Regex. vars maps {Name} references to
// already-compiled patterns; it may be nil if pattern uses no variables.
//
// Two independent NFAs are built at construction time: one for the raw
// pattern (FullMatch) and one for the pattern wrapped in ".*" on whichever
// side isn't already anchored by a leading '^' or trailing '$' (PartialMatch).
// A leading '^' or trailing '$' token is consumed here, after lexing and
// before parsing; it plays no part in the grammar itself.
func Compile(pattern string, vars map[string]*Regex) (*Regex, error) {
	toks, err := token.Lex(pattern)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	anchoredStart := len(toks) > 0 && toks[0].Kind == token.Caret
	if anchoredStart {
		toks = toks[1:]
	}
	anchoredEnd := len(toks) > 0 && toks[len(toks)-1].Kind == token.Dollar
	if anchoredEnd {
		toks = toks[:len(toks)-1]
	}

	varsByName, err := resolveVars(vars)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	full, err := parser.New(toks, varsByName).Parse()
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	partialToks := toks
	if len(toks) > 0 {
		// Group the pattern so a top-level '|' stays inside the ".*" wrapping.
		partialToks = append([]token.Token{{Kind: token.OpenParen, Value: '('}}, toks...)
		partialToks = append(partialToks, token.Token{Kind: token.CloseParen, Value: ')'})
	}
	if !anchoredStart {
		dotStar, err := token.Lex(".*")
		if err != nil {
			return nil, &CompileError{Pattern: pattern, Err: err}
		}
		partialToks = append(append([]token.Token{}, dotStar...), partialToks...)
	}
	if !anchoredEnd {
		dotStar, err := token.Lex(".*")
		if err != nil {
			return nil, &CompileError{Pattern: pattern, Err: err}
		}
		partialToks = append(append([]token.Token{}, partialToks...), dotStar...)
	}
	partial, err := parser.New(partialToks, varsByName).Parse()
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	return &Regex{pattern: pattern, full: full, partial: partial}, nil
}

// MustCompile compiles pattern and panics if it fails. Intended for
// patterns known to be valid at init time, such as a package-level var.
func MustCompile(pattern string, vars map[string]*Regex) *Regex {
	re, err := Compile(pattern, vars)
	if err != nil {
		panic("nfaregex: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// resolveVars extracts each variable's raw (unanchored) automaton. The
// parser clones it into the current compile's own Builder wherever {Name}
// appears, so the variable's source Regex is never mutated and can be
// reused by any number of other patterns.
func resolveVars(vars map[string]*Regex) (map[string]automaton.Automaton, error) {
	if len(vars) == 0 {
		return nil, nil
	}
	out := make(map[string]automaton.Automaton, len(vars))
	for name, re := range vars {
		if re == nil {
			return nil, fmt.Errorf("variable %q is nil", name)
		}
		out[name] = re.full
	}
	return out, nil
}

// FullMatch reports whether s matches the pattern in its entirety.
func (r *Regex) FullMatch(s string) bool {
	return matcher.New(r.full).Accepts(s)
}

// PartialMatch reports whether s contains the pattern as a substring (or,
// if the pattern had a leading '^' or trailing '$', at the corresponding
// boundary only).
func (r *Regex) PartialMatch(s string) bool {
	return matcher.New(r.partial).Accepts(s)
}

// String returns the original source pattern.
func (r *Regex) String() string {
	return r.pattern
}

// Debug renders both compiled automatons as a human-readable dump, for
// troubleshooting a pattern that doesn't match what it was expected to.
func (r *Regex) Debug() string {
	return "full:\n" + r.full.String() + "partial:\n" + r.partial.String()
}

// CompileError represents a pattern compilation failure, wrapping either a
// token.LexError or a parser.SyntaxError.
type CompileError struct {
	Pattern string
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("nfaregex: invalid pattern %q: %s", e.Pattern, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}
