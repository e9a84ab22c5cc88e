package lexer

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInteger     = errors.New("invalid integer literal")
	ErrUnterminatedString = errors.New("unterminated string literal")
	ErrInvalidEncoding    = errors.New("invalid UTF-8 encoding")
)

// Error is a tokenizer failure at a given position.
type Error struct {
	Line int
	Col  int
	Text string
	Err  error
}

func (e *Error) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("%d:%d: %v", e.Line, e.Col, e.Err)
	}
	return fmt.Sprintf("%d:%d: %v: %q", e.Line, e.Col, e.Err, e.Text)
}

func (e *Error) Unwrap() error {
	return e.Err
}
