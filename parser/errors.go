package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/lispedit/lexer"
)

var (
	ErrMissingCloseParen    = errors.New("missing closing parenthesis")
	ErrUnexpectedCloseParen = errors.New("unexpected closing parenthesis")
	ErrFunctionLiteral      = errors.New("function definitions are not implemented")
	ErrTooDeep              = errors.New("expression nested too deeply")
)

// Error is a parser failure at a given position.
type Error struct {
	Line int
	Col  int
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %v", e.Line, e.Col, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func parserError(err error, tok *lexer.Token) error {
	line, col := tok.Pos()
	return &Error{Line: line, Col: col, Err: err}
}
