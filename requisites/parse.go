package requisites

import (
	"errors"
	"fmt"
)

// parser holds the cursor of a single Parse call.
type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) done() bool {
	return p.pos >= len(p.tokens)
}

func (p *parser) nextIs(tokenType TokenType) bool {
	return !p.done() && p.tokens[p.pos].Type == tokenType
}

func (p *parser) unexpected(expected string) error {
	if p.done() {
		return &SyntaxError{Expected: expected, Index: p.pos}
	}
	token := p.tokens[p.pos]
	if !token.Type.known() {
		return fmt.Errorf("%w: %d at token %d", ErrUnknownTokenType, int(token.Type), p.pos)
	}
	return &SyntaxError{Expected: expected, Token: &token, Index: p.pos}
}

func (p *parser) eat(tokenType TokenType) (Token, error) {
	if !p.nextIs(tokenType) {
		return Token{}, p.unexpected(tokenType.String())
	}
	token := p.tokens[p.pos]
	p.pos++
	return token, nil
}

// expression := term (OR term)*
func (p *parser) expression() (Expression, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.nextIs(TokenOr) {
		p.pos++
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = disjoin(left, right)
	}
	return left, nil
}

// term := factor (AND factor)*
func (p *parser) term() (Expression, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.nextIs(TokenAnd) {
		p.pos++
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = conjoin(left, right)
	}
	return left, nil
}

// factor := '(' expression ')' | COURSE GRADE?
func (p *parser) factor() (Expression, error) {
	switch {
	case p.nextIs(TokenCourse):
		code, _ := p.eat(TokenCourse)
		course := Course{Code: code.Value, MinimumGrade: AnyGrade}
		if p.nextIs(TokenGrade) {
			grade, _ := p.eat(TokenGrade)
			course.MinimumGrade = grade.Value
		}
		return course, nil
	case p.nextIs(TokenLParen):
		p.pos++
		expression, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(TokenRParen); err != nil {
			return nil, err
		}
		return expression, nil
	default:
		return nil, p.unexpected("course or left parenthesis")
	}
}

// Parse builds the prerequisite list of a token sequence. Every expression in
// the sequence becomes one entry; a lone conjunction is returned as the list
// itself.
func Parse(tokens []Token) (List, error) {
	p := parser{tokens: tokens}

	// Catalog text sometimes starts with a dangling connective.
	for p.nextIs(TokenAnd) || p.nextIs(TokenOr) {
		p.pos++
	}

	list := List{}
	for !p.done() {
		expression, err := p.expression()
		if err != nil {
			return nil, err
		}
		list = append(list, expression)
	}

	if len(list) == 1 {
		if all, ok := list[0].(AllOf); ok {
			return List(all), nil
		}
	}
	return list, nil
}

// ParsePrerequisites tokenizes and parses a prerequisite string. Text that
// cannot be tokenized is not an error, the untokenized remainder comes back as
// a single Raw entry. A *SyntaxError is returned for text that tokenizes but
// does not form an expression.
func ParsePrerequisites(text string) (List, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		var gap *GapError
		if errors.As(err, &gap) {
			return List{Raw(gap.Remaining)}, nil
		}
		return nil, err
	}
	return Parse(tokens)
}
