package ast

import (
	"errors"
	"fmt"

	"github.com/xiam/lispedit/lexer"
)

// Node represents an expression value: either a parsed form or the result of
// evaluating one.
type Node struct {
	nt  NodeType
	tok *lexer.Token
	v   interface{}
}

func newNode(nt NodeType, tok *lexer.Token, v interface{}) *Node {
	return &Node{
		nt:  nt,
		v:   v,
		tok: tok,
	}
}

// NewExpression creates and returns a node of type "expression" holding the
// given children
func NewExpression(tok *lexer.Token, children ...*Node) *Node {
	list := make([]*Node, 0, len(children))
	return newNode(NodeTypeExpression, tok, append(list, children...))
}

// Push appends a child node to a node of type "expression". Expressions are
// only meant to be grown while being parsed.
func (n *Node) Push(node *Node) error {
	if n.IsVector() {
		n.v = append(n.v.([]*Node), node)
		return nil
	}
	return errors.New("nodes of type value can't accept children")
}

// Token returns the token associated to the node, nil for nodes that were not
// parsed from source
func (n *Node) Token() *lexer.Token {
	return n.tok
}

// Pos returns the source position of the node, or zeros if unknown
func (n *Node) Pos() (int, int) {
	if n.tok == nil {
		return 0, 0
	}
	return n.tok.Pos()
}

// Type returns the type of the node
func (n *Node) Type() NodeType {
	return n.nt
}

// Is returns true if the node matches the given type
func (n *Node) Is(nt NodeType) bool {
	return n.nt == nt
}

// Value returns the Go value of the node
func (n *Node) Value() interface{} {
	if fn, ok := n.v.(*function); ok {
		return fn.fn
	}
	return n.v
}

// List returns all the children elements of the node. The returned slice must
// not be modified.
func (n *Node) List() []*Node {
	return n.v.([]*Node)
}

func (n *Node) Int() int64 {
	return n.v.(int64)
}

func (n *Node) Str() string {
	return n.v.(string)
}

func (n *Node) Bool() bool {
	return n.v.(bool)
}

// Symbol returns the name of a symbol node.
func (n *Node) Symbol() string {
	return n.v.(string)
}

func (n *Node) Function() Function {
	return n.v.(*function).fn
}

// FunctionName returns the name the function was created with.
func (n *Node) FunctionName() string {
	return n.v.(*function).name
}

func (n *Node) String() string {
	switch n.nt {
	case NodeTypeExpression:
		return fmt.Sprintf("(%v)[%d]", n.nt, len(n.List()))
	}
	return fmt.Sprintf("(%v): %s", n.nt, Encode(n))
}

// IsValue returns true if the node is of type value
func (n *Node) IsValue() bool {
	return n.nt&nodeTypeValue > 0
}

// IsVector returns true if the node is of type vector
func (n *Node) IsVector() bool {
	return n.nt&nodeTypeVector > 0
}
