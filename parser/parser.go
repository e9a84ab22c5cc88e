package parser

import (
	"bytes"
	"io"

	"github.com/xiam/lispedit/ast"
	"github.com/xiam/lispedit/lexer"
)

// DefaultMaxDepth is the deepest nesting of parentheses accepted by a Parser.
const DefaultMaxDepth = 10000

// Parser reads top-level forms from a token stream, one at a time.
type Parser struct {
	lx *lexer.Lexer

	nextTok *lexer.Token
	node    *ast.Node

	maxDepth int
	done     bool
	lastErr  error
}

// New creates a parser that reads source text from r.
func New(r io.Reader) *Parser {
	return NewFromLexer(lexer.New(r))
}

// NewFromLexer creates a parser that consumes tokens from lx.
func NewFromLexer(lx *lexer.Lexer) *Parser {
	return &Parser{
		lx:       lx,
		maxDepth: DefaultMaxDepth,
	}
}

// SetMaxDepth changes the maximum nesting of parentheses.
func (p *Parser) SetMaxDepth(depth int) {
	p.maxDepth = depth
}

// Next parses the next top-level form, which will then be available through
// Node. It returns false at the end of the input or after an error. Parsing
// can't be resumed after an error.
func (p *Parser) Next() bool {
	if p.done {
		return false
	}

	p.node = nil

	tok, err := p.peek()
	if err != nil {
		return p.fail(err)
	}
	if tok.Is(lexer.TokenEOF) {
		p.done = true
		return false
	}

	node, err := p.parseForm(0)
	if err != nil {
		return p.fail(err)
	}

	p.node = node
	return true
}

// Node returns the most recent form produced by Next.
func (p *Parser) Node() *ast.Node {
	return p.node
}

// Err returns the error that stopped the parser, if any.
func (p *Parser) Err() error {
	return p.lastErr
}

func (p *Parser) fail(err error) bool {
	p.lastErr = err
	p.done = true
	return false
}

func (p *Parser) read() (*lexer.Token, error) {
	if p.lx.Next() {
		tok := p.lx.Token()
		return &tok, nil
	}
	if err := p.lx.Err(); err != nil {
		return nil, err
	}
	return lexer.NewToken(lexer.TokenEOF, "", 0, 0), nil
}

func (p *Parser) peek() (*lexer.Token, error) {
	if p.nextTok != nil {
		return p.nextTok, nil
	}

	tok, err := p.read()
	if err != nil {
		return nil, err
	}
	p.nextTok = tok
	return tok, nil
}

func (p *Parser) next() (*lexer.Token, error) {
	if p.nextTok != nil {
		tok := p.nextTok
		p.nextTok = nil
		return tok, nil
	}
	return p.read()
}

func (p *Parser) parseForm(depth int) (*ast.Node, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	switch tok.Type() {
	case lexer.TokenInteger:
		return ast.NewInt(tok, tok.Int()), nil

	case lexer.TokenString:
		return ast.NewString(tok, tok.Text()), nil

	case lexer.TokenSymbol, lexer.TokenKeyword:
		return ast.NewSymbol(tok, tok.Text()), nil

	case lexer.TokenOpenExpression:
		return p.parseExpression(tok, depth)

	case lexer.TokenCloseExpression:
		return nil, parserError(ErrUnexpectedCloseParen, tok)
	}

	return nil, parserError(ErrMissingCloseParen, tok)
}

func (p *Parser) parseExpression(open *lexer.Token, depth int) (*ast.Node, error) {
	if depth >= p.maxDepth {
		return nil, parserError(ErrTooDeep, open)
	}

	head, err := p.peek()
	if err != nil {
		return nil, err
	}
	if head.Is(lexer.TokenKeyword) && head.Text() == lexer.KeywordFn {
		return nil, parserError(ErrFunctionLiteral, open)
	}

	expr := ast.NewExpression(open)
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}

		switch tok.Type() {
		case lexer.TokenEOF:
			return nil, parserError(ErrMissingCloseParen, open)

		case lexer.TokenCloseExpression:
			_, _ = p.next()
			return expr, nil
		}

		child, err := p.parseForm(depth + 1)
		if err != nil {
			return nil, err
		}
		if err := expr.Push(child); err != nil {
			return nil, err
		}
	}
}

// Parse reads all the top-level forms in the given input.
func Parse(in []byte) ([]*ast.Node, error) {
	p := New(bytes.NewReader(in))

	nodes := []*ast.Node{}
	for p.Next() {
		nodes = append(nodes, p.Node())
	}
	if err := p.Err(); err != nil {
		return nil, err
	}

	return nodes, nil
}
