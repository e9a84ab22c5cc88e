package ast

import (
	"github.com/xiam/lispedit/lexer"
)

// Function is the signature of native functions. Arguments are already
// evaluated.
type Function func(args []*Node) (*Node, error)

type function struct {
	name string
	fn   Function
}

var (
	Nil   = newNode(NodeTypeNil, nil, nil)
	True  = newNode(NodeTypeBool, nil, true)
	False = newNode(NodeTypeBool, nil, false)
)

// NewInt creates a node of type int
func NewInt(tok *lexer.Token, v int64) *Node {
	return newNode(NodeTypeInt, tok, v)
}

// NewString creates a node of type string
func NewString(tok *lexer.Token, v string) *Node {
	return newNode(NodeTypeString, tok, v)
}

// NewSymbol creates a node of type symbol
func NewSymbol(tok *lexer.Token, name string) *Node {
	return newNode(NodeTypeSymbol, tok, name)
}

// NewBool returns the shared True or False node
func NewBool(v bool) *Node {
	if v {
		return True
	}
	return False
}

// NewFunction wraps a native function into a node. Function nodes can't be
// compared, see Equal.
func NewFunction(name string, fn Function) *Node {
	return newNode(NodeTypeFunction, nil, &function{name: name, fn: fn})
}
