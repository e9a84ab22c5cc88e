package lexer

import (
	"fmt"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt     TokenType
	lexeme string
	n      int64

	line int
	col  int
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, lexeme string, line int, col int) *Token {
	return &Token{
		tt:     tt,
		lexeme: lexeme,
		line:   line,
		col:    col,
	}
}

// NewIntegerToken creates a lexical unit that holds an already parsed
// integer.
func NewIntegerToken(n int64, lexeme string, line int, col int) *Token {
	tok := NewToken(TokenInteger, lexeme, line, col)
	tok.n = n
	return tok
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the line and column of the lexical unit
func (t Token) Pos() (int, int) {
	return t.line, t.col
}

// Text returns the raw text of the lexical unit. String tokens don't include
// their quotes.
func (t Token) Text() string {
	return t.lexeme
}

// Int returns the value of an integer token.
func (t Token) Int() int64 {
	return t.n
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d %d])", t.tt, t.lexeme, t.line, t.col)
}
