package requisites

import "regexp"

// Catalog pages separate codes with &#160; and RE2's \s is ASCII only, so
// the class also takes \v, U+0085 and the Unicode space separators.
const space = `[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]`

// "CS 171" -> "CS-171"
var courseCodeSpacing = regexp.MustCompile(`([A-Z])` + space + `(\d+)`)

type lexeme struct {
	tokenType TokenType
	skip      bool
	pattern   *regexp.Regexp
}

// Order matters, the first pattern matching at the current position wins.
var lexemes = []lexeme{
	{tokenType: TokenCourse, pattern: regexp.MustCompile(`^[A-Z]+-\d+`)},
	{skip: true, pattern: regexp.MustCompile(`^` + space + `+`)},
	{tokenType: TokenGrade, pattern: regexp.MustCompile(`^\[Min Grade: (.+?)\]`)},
	{tokenType: TokenAnd, pattern: regexp.MustCompile(`^and\b`)},
	{tokenType: TokenOr, pattern: regexp.MustCompile(`^or\b`)},
	{tokenType: TokenLParen, pattern: regexp.MustCompile(`^\(`)},
	{tokenType: TokenRParen, pattern: regexp.MustCompile(`^\)`)},
}

func NormalizeCourseCodes(text string) string {
	return courseCodeSpacing.ReplaceAllString(text, "$1-$2")
}

// Tokenize splits a prerequisite string into tokens. When some part of the
// string matches no pattern it returns the tokens read so far together with a
// *GapError holding the untokenized remainder.
func Tokenize(text string) ([]Token, error) {
	remaining := NormalizeCourseCodes(text)
	tokens := []Token{}

	for len(remaining) > 0 {
		matched := false
		for _, l := range lexemes {
			submatches := l.pattern.FindStringSubmatch(remaining)
			if submatches == nil {
				continue
			}

			if !l.skip {
				value := submatches[0]
				if l.tokenType == TokenGrade {
					value = submatches[1]
				}
				tokens = append(tokens, Token{Type: l.tokenType, Value: value})
			}
			remaining = remaining[len(submatches[0]):]
			matched = true
			break
		}
		if !matched {
			return tokens, &GapError{Remaining: remaining}
		}
	}

	return tokens, nil
}
