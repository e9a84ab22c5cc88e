package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid         TokenType = iota
	TokenOpenExpression            // Open parenthesis: "("
	TokenCloseExpression           // Close parenthesis: ")"
	TokenKeyword                   // Reserved words: "fn", "def"
	TokenSymbol                    // Any other run of non-separator characters
	TokenInteger                   // Decimal integers
	TokenString                    // Double quoted text
	TokenEOF                       // End of file
)

// Reserved words.
const (
	KeywordFn  = "fn"
	KeywordDef = "def"
)

var keywords = map[string]struct{}{
	KeywordFn:  {},
	KeywordDef: {},
}

var tokenValues = map[TokenType][]rune{
	TokenOpenExpression:  []rune{'('},
	TokenCloseExpression: []rune{')'},
	TokenString:          []rune{'"'},
	TokenInteger:         []rune("0123456789"),
}

// separators are skipped between tokens and end numbers and symbols
var separators = []rune(" \t\n\r\f")

var tokenNames = map[TokenType]string{
	TokenInvalid:         "invalid",
	TokenOpenExpression:  "open_expression",
	TokenCloseExpression: "close_expression",
	TokenKeyword:         "keyword",
	TokenSymbol:          "symbol",
	TokenInteger:         "integer",
	TokenString:          "string",
	TokenEOF:             "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

func isSeparator(r rune) bool {
	for _, v := range separators {
		if v == r {
			return true
		}
	}
	return false
}

// IsKeyword reports whether the given text is a reserved word.
func IsKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}
