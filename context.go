package lispedit

import (
	"fmt"

	"github.com/xiam/lispedit/ast"
)

// Context holds the state of one top-level evaluation: the environment it
// updates and how deep the evaluation currently is.
type Context struct {
	env *Environment

	depth int
}

// NewContext creates an evaluation context bound to env.
func NewContext(env *Environment) *Context {
	return &Context{env: env}
}

// Env returns the environment the context evaluates in.
func (ctx *Context) Env() *Environment {
	return ctx.env
}

func (ctx *Context) enter(node *ast.Node) error {
	if ctx.depth >= ctx.env.maxDepth {
		return newFault(node, fmt.Errorf("%w (%d)", ErrStackOverflow, ctx.env.maxDepth))
	}
	ctx.depth++
	return nil
}

func (ctx *Context) leave() {
	ctx.depth--
}

// Get resolves a symbol in the context's environment.
func (ctx *Context) Get(node *ast.Node) (*ast.Node, error) {
	value, err := ctx.env.Get(node.Symbol())
	if err != nil {
		return nil, newFault(node, err)
	}
	return value, nil
}

// Set binds a value in the context's environment.
func (ctx *Context) Set(name string, value *ast.Node) {
	ctx.env.Set(name, value)
}

// Eval evaluates a node within the context. Faults leave bindings made so far
// in place, see EvalNode for the atomic version.
func (ctx *Context) Eval(node *ast.Node) (*ast.Node, error) {
	return ctx.eval(node)
}
