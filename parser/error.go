package parser

import "fmt"

// SyntaxError reports a parse-time failure at a token position: a named
// struct per error site rather than a single stringly-typed sentinel.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid pattern at position %d: %s", e.Pos, e.Msg)
}

func errAt(pos int, format string, args ...any) error {
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
