package requisites

import (
	"errors"
	"fmt"
)

// ErrUnknownTokenType means a token carried a TokenType this package never
// produces. It signals a bug in the caller, not bad catalog text.
var ErrUnknownTokenType = errors.New("unknown token type")

// GapError is returned by Tokenize when no token pattern matches.
type GapError struct {
	Remaining string
}

func (e *GapError) Error() string {
	return fmt.Sprintf("unable to tokenize %q", e.Remaining)
}

// SyntaxError is an unexpected token, or an unexpected end of input when
// Token is nil.
type SyntaxError struct {
	Expected string
	Token    *Token
	Index    int
}

func (e *SyntaxError) Error() string {
	if e.Token == nil {
		return fmt.Sprintf("expected %v but reached end of input", e.Expected)
	}
	return fmt.Sprintf("expected %v but found %v at token %d", e.Expected, e.Token, e.Index)
}
