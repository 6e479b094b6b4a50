package token

// Lex scans pattern into a flat token sequence. It reads one character at a
// time; most bytes map directly to a token kind, and '\' introduces either a
// character-class shorthand (\d \w \s) or an escaped literal (\x for any
// other x, including \\ and \]). A trailing unescaped backslash is a
// LexError.
//
// Every token's Value carries the raw character that produced it, regardless
// of Kind (for an escape, the escaped character). The top-level grammar only
// reads Value off Literal tokens, but bracket parsing reuses Value to recover
// the source character of any token kind, since "[()]" is a class of '(' and
// ')' even though the lexer emitted OpenParen/CloseParen for them — the
// lexer is context-free and does not know it is inside a bracket expression;
// the parser re-interprets the stream (see parser.Parser.parseBracket).
func Lex(pattern string) ([]Token, error) {
	toks := make([]Token, 0, len(pattern))
	emit := func(kind Kind, value byte, pos int) {
		toks = append(toks, Token{Kind: kind, Value: value, Pos: pos})
	}
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		pos := i
		switch c {
		case '(':
			emit(OpenParen, c, pos)
		case ')':
			emit(CloseParen, c, pos)
		case '{':
			emit(OpenBrace, c, pos)
		case '}':
			emit(CloseBrace, c, pos)
		case '[':
			emit(OpenBracket, c, pos)
		case ']':
			emit(CloseBracket, c, pos)
		case '.':
			emit(Dot, c, pos)
		case '*':
			emit(Star, c, pos)
		case '+':
			emit(Plus, c, pos)
		case '?':
			emit(Questionmark, c, pos)
		case '|':
			emit(Pipe, c, pos)
		case '^':
			emit(Caret, c, pos)
		case '$':
			emit(Dollar, c, pos)
		case '\\':
			i++
			if i >= len(pattern) {
				return nil, &LexError{Pattern: pattern, Pos: pos, Msg: "trailing backslash"}
			}
			esc := pattern[i]
			switch esc {
			case 'd':
				emit(Digit, esc, pos)
			case 'w':
				emit(Word, esc, pos)
			case 's':
				emit(Whitespace, esc, pos)
			default:
				// \D \W \S and any other \x: literal x, including \\ and
				// escaped metacharacters. Matches the original dialect's
				// lexer, which never treats \D/\W/\S as negated classes.
				emit(Literal, esc, pos)
			}
		default:
			emit(Literal, c, pos)
		}
	}
	return toks, nil
}
