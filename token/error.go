package token

import "fmt"

// LexError reports a malformed pattern detected while scanning, with the
// byte offset at which scanning stopped: a named struct carrying enough
// context to produce a precise message, rather than a bare sentinel.
type LexError struct {
	Pattern string
	Pos     int
	Msg     string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("invalid pattern %q at position %d: %s", e.Pattern, e.Pos, e.Msg)
}
