package lexer

import (
	"bytes"
	"io"
	"strconv"
	"text/scanner"
)

type lexState func(*Lexer) lexState

var (
	isOpenExpression  = isTokenType(TokenOpenExpression)
	isCloseExpression = isTokenType(TokenCloseExpression)
	isQuote           = isTokenType(TokenString)
	isDigit           = isTokenType(TokenInteger)
)

// New initializes a Lexer object. Tokens are produced on demand by Next,
// nothing is read from r before the first call.
func New(r io.Reader) *Lexer {
	lx := &Lexer{
		in:    &scanner.Scanner{},
		buf:   []rune{},
		state: lexDefaultState,
		line:  1,
		col:   1,
	}
	lx.in.Init(r)
	lx.in.Error = func(_ *scanner.Scanner, msg string) {
		if lx.lastErr == nil {
			lx.lastErr = &Error{Line: lx.line, Col: lx.col, Text: msg, Err: ErrInvalidEncoding}
		}
	}
	return lx
}

// Lexer represents a lexical analyzer
type Lexer struct {
	in *scanner.Scanner

	state   lexState
	tok     Token
	emitted bool
	lastErr error

	buf []rune

	// position of the next rune
	line int
	col  int

	// position of the first rune of the current token
	startLine int
	startCol  int
}

// Next advances the lexer to the next token, which will then be available
// through Token. It returns false after the EOF token has been consumed or
// when an error is found.
func (lx *Lexer) Next() bool {
	lx.emitted = false
	for lx.state != nil && !lx.emitted && lx.lastErr == nil {
		lx.state = lx.state(lx)
	}
	if lx.lastErr != nil {
		lx.state = nil
		return false
	}
	return lx.emitted
}

// Token returns the most recent token produced by Next.
func (lx *Lexer) Token() Token {
	return lx.tok
}

// Err returns the first error found while scanning, if any.
func (lx *Lexer) Err() error {
	return lx.lastErr
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tok = Token{
		tt:     tt,
		lexeme: string(lx.buf),

		line: lx.startLine,
		col:  lx.startCol,
	}
	lx.emitted = true
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) fail(err error) {
	lx.lastErr = &Error{
		Line: lx.startLine,
		Col:  lx.startCol,
		Text: string(lx.buf),
		Err:  err,
	}
}

func (lx *Lexer) mark() {
	lx.startLine, lx.startCol = lx.line, lx.col
}

func (lx *Lexer) peek() rune {
	return lx.in.Peek()
}

// skip consumes the next rune without adding it to the current token.
func (lx *Lexer) skip() (rune, error) {
	r := lx.in.Next()
	if r == scanner.EOF {
		return rune(0), io.EOF
	}
	if r == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	return r, nil
}

func (lx *Lexer) next() (rune, error) {
	r, err := lx.skip()
	if err != nil {
		return r, err
	}
	lx.buf = append(lx.buf, r)
	return r, nil
}

// atBoundary is true when the next rune ends a number or a symbol.
func (lx *Lexer) atBoundary() bool {
	p := lx.peek()
	return p == scanner.EOF || isSeparator(p) || isOpenExpression(p) || isCloseExpression(p)
}

func lexDefaultState(lx *Lexer) lexState {
	for isSeparator(lx.peek()) {
		if _, err := lx.skip(); err != nil {
			return lexStateEOF
		}
	}

	lx.mark()

	r := lx.peek()
	switch {
	case r == scanner.EOF:
		return lexStateEOF
	case isQuote(r):
		_, _ = lx.skip()
		return lexString
	case isDigit(r):
		return lexInteger
	}

	if _, err := lx.next(); err != nil {
		return lexStateEOF
	}

	switch {
	case isOpenExpression(r):
		return lexEmit(TokenOpenExpression)
	case isCloseExpression(r):
		return lexEmit(TokenCloseExpression)
	}

	return lexSymbol
}

func lexString(lx *Lexer) lexState {
	for {
		r, err := lx.skip()
		if err != nil {
			return lexStateError(ErrUnterminatedString)
		}
		if isQuote(r) {
			break
		}
		lx.buf = append(lx.buf, r)
	}
	return lexEmit(TokenString)
}

func lexInteger(lx *Lexer) lexState {
	for !lx.atBoundary() {
		if _, err := lx.next(); err != nil {
			break
		}
	}
	text := string(lx.buf)
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return lexStateError(ErrInvalidInteger)
	}
	lx.emit(TokenInteger)
	lx.tok.n = n
	return lexDefaultState
}

func lexSymbol(lx *Lexer) lexState {
	for !lx.atBoundary() {
		if _, err := lx.next(); err != nil {
			break
		}
	}
	if IsKeyword(string(lx.buf)) {
		return lexEmit(TokenKeyword)
	}
	return lexEmit(TokenSymbol)
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexStateError(err error) lexState {
	return func(lx *Lexer) lexState {
		lx.fail(err)
		return nil
	}
}

func lexStateEOF(lx *Lexer) lexState {
	lx.mark()
	lx.emit(TokenEOF)
	return nil
}

// Tokenize takes an array of bytes and returns all the tokens within it,
// including the trailing EOF token, or an error if a token can't be
// identified.
func Tokenize(in []byte) ([]Token, error) {
	tokens := []Token{}

	lx := New(bytes.NewReader(in))
	for lx.Next() {
		tokens = append(tokens, lx.Token())
	}
	if err := lx.Err(); err != nil {
		return nil, err
	}

	return tokens, nil
}
