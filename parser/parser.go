// Package parser implements a recursive-descent, one-token-lookahead parser
// that turns a token.Token stream into an automaton.Automaton, one
// production per precedence level. It is the only caller of the automaton
// combinators.
package parser

import (
	"github.com/coregx/nfaregex/automaton"
	"github.com/coregx/nfaregex/token"
)

// Parser holds parse state for a single pattern. Grammar (lowest precedence
// first):
//
//	choice  := concat ('|' concat)*
//	concat  := clojure (clojure)*
//	clojure := optional ('*')?
//	optional:= oneplus   ('?')?
//	oneplus := range     ('+')?
//	range   := variable ( '{' repetition '}' )?
//	variable:= '{' Name '}' | bracket
//	bracket := '[' ['^'] class_item+ ']' | whitespace
//	whitespace:= '\s' | word
//	word    := '\w' | digit
//	digit   := '\d' | group
//	group   := '(' choice ')' | literal
//	literal := Literal | '.'
type Parser struct {
	toks []token.Token
	pos  int
	vars map[string]automaton.Automaton
	b    *automaton.Builder
}

// New creates a Parser over toks, substituting {Name} references from vars.
// vars may be nil if the pattern uses no variables.
func New(toks []token.Token, vars map[string]automaton.Automaton) *Parser {
	return &Parser{toks: toks, vars: vars, b: automaton.NewBuilder()}
}

// Parse parses the entire token stream and returns the resulting automaton.
// An empty token stream parses to automaton.Builder.Empty().
func (p *Parser) Parse() (automaton.Automaton, error) {
	if len(p.toks) == 0 {
		return p.b.Empty(), nil
	}
	a, err := p.parseChoice()
	if err != nil {
		return automaton.Automaton{}, err
	}
	if p.pos != len(p.toks) {
		return automaton.Automaton{}, errAt(p.curPos(), "unexpected %s after pattern", p.peek().Kind)
	}
	return a, nil
}

func (p *Parser) peek() token.Token {
	if p.pos >= len(p.toks) {
		return token.Token{Kind: token.EOF, Pos: p.curPos()}
	}
	return p.toks[p.pos]
}

// curPos returns the position to blame for an error at the current token, or
// just past the end of the pattern if the stream is exhausted.
func (p *Parser) curPos() int {
	if p.pos < len(p.toks) {
		return p.toks[p.pos].Pos
	}
	if len(p.toks) > 0 {
		return p.toks[len(p.toks)-1].Pos + 1
	}
	return 0
}

func (p *Parser) advance() token.Token {
	t := p.peek()
	p.pos++
	return t
}

func (p *Parser) at(kind token.Kind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) consume(kind token.Kind) bool {
	if p.at(kind) {
		p.pos++
		return true
	}
	return false
}

// ---- choice := concat ('|' concat)* ----

func (p *Parser) parseChoice() (automaton.Automaton, error) {
	left, err := p.parseConcat()
	if err != nil {
		return automaton.Automaton{}, err
	}
	var alts []automaton.Automaton
	for p.consume(token.Pipe) {
		right, err := p.parseConcat()
		if err != nil {
			return automaton.Automaton{}, err
		}
		alts = append(alts, right)
	}
	if len(alts) == 0 {
		return left, nil
	}
	return p.b.Choice(append([]automaton.Automaton{left}, alts...)...), nil
}

// startsAtom reports whether kind can begin a clojure production, i.e. the
// concat lookahead set from spec: Literal, Dot, '(', '[', '{', \d, \w, \s.
func startsAtom(kind token.Kind) bool {
	switch kind {
	case token.Literal, token.Dot, token.OpenParen, token.OpenBracket,
		token.OpenBrace, token.Digit, token.Word, token.Whitespace:
		return true
	default:
		return false
	}
}

// ---- concat := clojure (clojure)* ----

func (p *Parser) parseConcat() (automaton.Automaton, error) {
	left, err := p.parseClojure()
	if err != nil {
		return automaton.Automaton{}, err
	}
	for startsAtom(p.peek().Kind) {
		right, err := p.parseClojure()
		if err != nil {
			return automaton.Automaton{}, err
		}
		left = p.b.Concat(left, right)
	}
	return left, nil
}

// ---- clojure := optional ('*')? ----

func (p *Parser) parseClojure() (automaton.Automaton, error) {
	left, err := p.parseOptional()
	if err != nil {
		return automaton.Automaton{}, err
	}
	if p.consume(token.Star) {
		left = p.b.Kleene(left)
	}
	return left, nil
}

// ---- optional := oneplus ('?')? ----
// A? ≡ choice(A, empty())

func (p *Parser) parseOptional() (automaton.Automaton, error) {
	left, err := p.parseOnePlus()
	if err != nil {
		return automaton.Automaton{}, err
	}
	if p.consume(token.Questionmark) {
		left = p.b.Choice(left, p.b.Empty())
	}
	return left, nil
}

// ---- oneplus := range ('+')? ----
// A+ ≡ concat(A, clone(A).Kleene()); the clone is mandatory so the kleene
// loop never back-edges into the concrete first occurrence.

func (p *Parser) parseOnePlus() (automaton.Automaton, error) {
	left, err := p.parseRange()
	if err != nil {
		return automaton.Automaton{}, err
	}
	if p.consume(token.Plus) {
		tail := p.b.Kleene(p.b.Clone(left))
		left = p.b.Concat(left, tail)
	}
	return left, nil
}

// ---- range := variable ( '{' repetition '}' )? ----
// Repetition binds tighter than the postfix quantifiers by construction:
// range is evaluated (and any {m,n} suffix consumed) before oneplus ever
// looks for a trailing '+'. A{3}+ is therefore (A{3})+, never A(3+).

func (p *Parser) parseRange() (automaton.Automaton, error) {
	left, err := p.parseVariable()
	if err != nil {
		return automaton.Automaton{}, err
	}
	if !p.at(token.OpenBrace) {
		return left, nil
	}

	// Tentatively consume '{' and peek for a digit. If what follows isn't a
	// digit, this isn't a {m,n} suffix at all (it may be a {Name} variable
	// reference starting a fresh atom) — rewind and let the caller's concat
	// loop re-enter parseVariable from scratch.
	save := p.pos
	p.advance() // consume '{'
	if !(p.at(token.Literal) && isDigit(p.peek().Value)) {
		p.pos = save
		return left, nil
	}

	min := p.consumeNumber()
	max := min
	if p.consumeLiteralByte(',') {
		for p.at(token.Literal) && isSpace(p.peek().Value) {
			p.pos++
		}
		if !(p.at(token.Literal) && isDigit(p.peek().Value)) {
			return automaton.Automaton{}, errAt(p.curPos(), "{m,} with no upper bound is not supported, an explicit n is required")
		}
		max = p.consumeNumber()
	}
	if !p.consume(token.CloseBrace) {
		return automaton.Automaton{}, errAt(p.curPos(), "expected '}' to close repetition count")
	}
	if min > max {
		return automaton.Automaton{}, errAt(save, "repetition lower bound %d exceeds upper bound %d", min, max)
	}

	return p.buildRepetition(left, min, max), nil
}

// buildRepetition concatenates min mandatory fresh clones of a, followed by
// max-min optional fresh clones (each choice(empty(), clone(a))). {0}
// degenerates to Empty() because the loops simply never run.
func (p *Parser) buildRepetition(a automaton.Automaton, min, max int) automaton.Automaton {
	result := p.b.Empty()
	for i := 0; i < min; i++ {
		result = p.b.Concat(result, p.b.Clone(a))
	}
	for i := 0; i < max-min; i++ {
		result = p.b.Concat(result, p.b.Choice(p.b.Empty(), p.b.Clone(a)))
	}
	return result
}

// consumeNumber accumulates consecutive digit tokens into an integer,
// skipping interleaved whitespace literals so "{0, 3}" lexes the same as
// "{0,3}".
func (p *Parser) consumeNumber() int {
	n := 0
	for {
		if p.at(token.Literal) && isDigit(p.peek().Value) {
			n = n*10 + int(p.peek().Value-'0')
			p.pos++
			continue
		}
		if p.at(token.Literal) && isSpace(p.peek().Value) {
			p.pos++
			continue
		}
		break
	}
	return n
}

func (p *Parser) consumeLiteralByte(c byte) bool {
	// Skip whitespace before checking, matching the leniency applied around
	// the comma in "{0, 3}".
	for p.at(token.Literal) && isSpace(p.peek().Value) {
		p.pos++
	}
	if p.at(token.Literal) && p.peek().Value == c {
		p.pos++
		return true
	}
	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' }
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
func isAlnumOrUnderscore(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '_'
}

// ---- variable := '{' Name '}' | bracket ----

func (p *Parser) parseVariable() (automaton.Automaton, error) {
	if p.at(token.OpenBrace) {
		save := p.pos
		p.advance() // consume '{'
		if p.at(token.Literal) && isAlpha(p.peek().Value) {
			namePos := p.curPos()
			var name []byte
			for p.at(token.Literal) && isAlnumOrUnderscore(p.peek().Value) {
				name = append(name, p.peek().Value)
				p.pos++
			}
			if !p.consume(token.CloseBrace) {
				return automaton.Automaton{}, errAt(p.curPos(), "expected '}' to close variable reference")
			}
			src, ok := p.vars[string(name)]
			if !ok {
				return automaton.Automaton{}, errAt(namePos, "undefined variable %q", string(name))
			}
			return p.b.Clone(src), nil
		}
		// Not a {Name}: rewind, this '{' belongs to whatever comes next
		// (bracket/group/literal don't start with '{', so an unresolved
		// '{' here ultimately surfaces as a syntax error up the chain).
		p.pos = save
	}
	return p.parseBracket()
}

// ---- bracket := '[' ['^'] class_item+ ']' | whitespace ----

func (p *Parser) parseBracket() (automaton.Automaton, error) {
	if !p.consume(token.OpenBracket) {
		return p.parseWhitespace()
	}
	openPos := p.curPos()
	negated := p.consume(token.Caret)

	var items []byte
	for !p.at(token.CloseBracket) {
		if p.pos >= len(p.toks) {
			return automaton.Automaton{}, errAt(openPos, "unterminated character class")
		}
		// Bracket expressions reinterpret every token as its raw source
		// character (token.Value), regardless of Kind: "[()]" is the class
		// {'(', ')'}, not a group.
		items = append(items, p.peek().Value)
		p.pos++
	}
	p.advance() // consume ']'

	if len(items) == 0 {
		return automaton.Automaton{}, errAt(openPos, "empty character class")
	}

	// A '-' is a range dash only when it has a neighbour on both sides
	// within the class (never the first or last item); a dash at either
	// end is a literal '-'. Every item is visited at its own index, so an
	// item that also happens to be a range endpoint still contributes its
	// own literal byte; an interior dash with lo > hi (e.g. "z-a") simply
	// contributes an empty range and nothing else.
	var chars []byte
	for i, c := range items {
		if c == '-' && i > 0 && i < len(items)-1 {
			lo, hi := items[i-1], items[i+1]
			for b := int(lo); b <= int(hi); b++ {
				chars = append(chars, byte(b))
			}
			continue
		}
		chars = append(chars, c)
	}

	if negated {
		return p.b.NegatedClass(dedupBytes(chars)), nil
	}
	return p.buildPositiveClass(dedupBytes(chars)), nil
}

// buildPositiveClass builds an automaton matching any one of chars, via
// per-char Literal automata joined by Choice — built only from the
// existing automaton.Builder primitives.
func (p *Parser) buildPositiveClass(chars []byte) automaton.Automaton {
	alts := make([]automaton.Automaton, len(chars))
	for i, c := range chars {
		alts[i] = p.b.Literal(c)
	}
	if len(alts) == 1 {
		return alts[0]
	}
	return p.b.Choice(alts...)
}

func dedupBytes(in []byte) []byte {
	seen := make(map[byte]bool, len(in))
	out := in[:0:0]
	for _, c := range in {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// ---- whitespace := '\s' | word ----

func (p *Parser) parseWhitespace() (automaton.Automaton, error) {
	if p.consume(token.Whitespace) {
		return p.buildPositiveClass([]byte(" \t\r\n\f")), nil
	}
	return p.parseWord()
}

// ---- word := '\w' | digit ----

func (p *Parser) parseWord() (automaton.Automaton, error) {
	if p.consume(token.Word) {
		return p.buildPositiveClass(wordChars()), nil
	}
	return p.parseDigit()
}

func wordChars() []byte {
	var out []byte
	for c := byte('0'); c <= '9'; c++ {
		out = append(out, c)
	}
	for c := byte('a'); c <= 'z'; c++ {
		out = append(out, c)
	}
	for c := byte('A'); c <= 'Z'; c++ {
		out = append(out, c)
	}
	out = append(out, '_')
	return out
}

// ---- digit := '\d' | group ----

func (p *Parser) parseDigit() (automaton.Automaton, error) {
	if p.consume(token.Digit) {
		var out []byte
		for c := byte('0'); c <= '9'; c++ {
			out = append(out, c)
		}
		return p.buildPositiveClass(out), nil
	}
	return p.parseGroup()
}

// ---- group := '(' choice ')' | literal ----

func (p *Parser) parseGroup() (automaton.Automaton, error) {
	if p.consume(token.OpenParen) {
		inner, err := p.parseChoice()
		if err != nil {
			return automaton.Automaton{}, err
		}
		if !p.consume(token.CloseParen) {
			return automaton.Automaton{}, errAt(p.curPos(), "expected ')'")
		}
		return inner, nil
	}
	return p.parseLiteral()
}

// ---- literal := Literal | '.' ----

func (p *Parser) parseLiteral() (automaton.Automaton, error) {
	if p.consume(token.Dot) {
		return p.b.Dot(), nil
	}
	if p.at(token.Literal) {
		c := p.peek().Value
		p.pos++
		return p.b.Literal(c), nil
	}
	return automaton.Automaton{}, errAt(p.curPos(), "unexpected %s", p.peek().Kind)
}
