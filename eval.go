package lispedit

import (
	"fmt"

	"github.com/xiam/lispedit/ast"
)

// Special form keywords.
const (
	FormIf     = "if"
	FormDef    = "def"
	FormDo     = "do"
	FormAssert = "assert"
)

type specialForm func(ctx *Context, node *ast.Node, args []*ast.Node) (*ast.Node, error)

func lookupSpecialForm(name string) (specialForm, bool) {
	switch name {
	case FormIf:
		return evalIf, true
	case FormDef:
		return evalDef, true
	case FormDo:
		return evalDo, true
	case FormAssert:
		return evalAssert, true
	}
	return nil, false
}

// IsSpecialForm reports whether name is handled as a special form when it
// leads an expression.
func IsSpecialForm(name string) bool {
	_, ok := lookupSpecialForm(name)
	return ok
}

func (ctx *Context) eval(node *ast.Node) (*ast.Node, error) {
	if err := ctx.enter(node); err != nil {
		return nil, err
	}
	defer ctx.leave()

	tracef("eval: %v", node)

	switch node.Type() {
	case ast.NodeTypeInt, ast.NodeTypeString, ast.NodeTypeBool, ast.NodeTypeNil, ast.NodeTypeFunction:
		return node, nil

	case ast.NodeTypeSymbol:
		return ctx.Get(node)

	case ast.NodeTypeExpression:
		return ctx.evalExpression(node)
	}

	panic("unreachable")
}

func (ctx *Context) evalExpression(node *ast.Node) (*ast.Node, error) {
	list := node.List()
	if len(list) == 0 {
		return nil, newFault(node, fmt.Errorf("%w: empty expression", ErrNotApplicable))
	}

	head := list[0]
	if head.Is(ast.NodeTypeSymbol) {
		if form, ok := lookupSpecialForm(head.Symbol()); ok {
			return form(ctx, node, list[1:])
		}
	}

	fn, err := ctx.eval(head)
	if err != nil {
		return nil, err
	}
	if !fn.Is(ast.NodeTypeFunction) {
		return nil, newFault(node, fmt.Errorf("%w: %s is a %v", ErrNotApplicable, ast.Encode(head), fn.Type()))
	}

	args := make([]*ast.Node, 0, len(list)-1)
	for _, arg := range list[1:] {
		value, err := ctx.eval(arg)
		if err != nil {
			return nil, err
		}
		args = append(args, value)
	}

	return ctx.apply(node, fn, args)
}

func (ctx *Context) apply(node *ast.Node, fn *ast.Node, args []*ast.Node) (value *ast.Node, err error) {
	tracef("call: %s %v", fn.FunctionName(), args)

	defer func() {
		if r := recover(); r != nil {
			value, err = nil, &Fault{
				Kind: FaultInternal,
				Node: node,
				Err:  fmt.Errorf("%s: %v", fn.FunctionName(), r),
			}
		}
	}()

	value, err = fn.Function()(args)
	if err != nil {
		return nil, newFault(node, err)
	}
	if value == nil {
		return ast.Nil, nil
	}
	return value, nil
}

func arityError(node *ast.Node, form string, expected string, got int) error {
	return newFault(node, fmt.Errorf("%w: %s expects %s, got %d", ErrArity, form, expected, got))
}

// evalIf evaluates (if cond then else). Only the branch selected by cond
// needs to be present.
func evalIf(ctx *Context, node *ast.Node, args []*ast.Node) (*ast.Node, error) {
	if len(args) < 1 || len(args) > 3 {
		return nil, arityError(node, FormIf, "1 to 3 arguments", len(args))
	}

	cond, err := ctx.eval(args[0])
	if err != nil {
		return nil, err
	}
	if !cond.Is(ast.NodeTypeBool) {
		return nil, newFault(args[0], fmt.Errorf("%w: if condition must be a bool, got %v", ErrTypeMismatch, cond.Type()))
	}

	if cond.Bool() {
		if len(args) < 2 {
			return nil, newFault(node, fmt.Errorf("%w: if needs a true branch", ErrMissingBranch))
		}
		return ctx.eval(args[1])
	}

	if len(args) < 3 {
		return nil, newFault(node, fmt.Errorf("%w: if needs a false branch", ErrMissingBranch))
	}
	return ctx.eval(args[2])
}

// evalDef evaluates (def name value), the name is only bound after the value
// was successfully evaluated.
func evalDef(ctx *Context, node *ast.Node, args []*ast.Node) (*ast.Node, error) {
	if len(args) != 2 {
		return nil, arityError(node, FormDef, "2 arguments", len(args))
	}

	name := args[0]
	if !name.Is(ast.NodeTypeSymbol) {
		return nil, newFault(name, fmt.Errorf("%w: def expects a name, got %v", ErrTypeMismatch, name.Type()))
	}

	value, err := ctx.eval(args[1])
	if err != nil {
		return nil, err
	}

	ctx.Set(name.Symbol(), value)
	return value, nil
}

func evalDo(ctx *Context, node *ast.Node, args []*ast.Node) (*ast.Node, error) {
	value := ast.Nil
	for _, arg := range args {
		var err error
		if value, err = ctx.eval(arg); err != nil {
			return nil, err
		}
	}
	return value, nil
}

func evalAssert(ctx *Context, node *ast.Node, args []*ast.Node) (*ast.Node, error) {
	if len(args) != 1 {
		return nil, arityError(node, FormAssert, "1 argument", len(args))
	}

	value, err := ctx.eval(args[0])
	if err != nil {
		return nil, err
	}
	if !value.Is(ast.NodeTypeBool) || !value.Bool() {
		return nil, newFault(node, fmt.Errorf("%w: %s is %s", ErrAssertionFailed, ast.Encode(args[0]), ast.Encode(value)))
	}

	return ast.True, nil
}
