package requisites

import "fmt"

type TokenType int

const (
	TokenCourse TokenType = iota
	TokenGrade
	TokenAnd
	TokenOr
	TokenLParen
	TokenRParen
)

func (t TokenType) String() string {
	switch t {
	case TokenCourse:
		return "course"
	case TokenGrade:
		return "grade"
	case TokenAnd:
		return "and"
	case TokenOr:
		return "or"
	case TokenLParen:
		return "left parenthesis"
	case TokenRParen:
		return "right parenthesis"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

func (t TokenType) known() bool {
	return t >= TokenCourse && t <= TokenRParen
}

// Token is one lexical unit of a prerequisite string. For grade tokens Value
// holds only the grade, e.g. "C-".
type Token struct {
	Type  TokenType
	Value string
}

func (t Token) String() string {
	return fmt.Sprintf("%v %q", t.Type, t.Value)
}
