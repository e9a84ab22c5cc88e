package lispedit

import (
	"fmt"
	"math"

	"github.com/xiam/lispedit/ast"
)

var builtins = map[string]ast.Function{
	"+":   builtinAdd,
	"-":   builtinSub,
	"*":   builtinMul,
	"/":   builtinDiv,
	"eq?": builtinEq,
}

func expectInt(name string, i int, arg *ast.Node) (int64, error) {
	if !arg.Is(ast.NodeTypeInt) {
		return 0, fmt.Errorf("%w: %s expects int arguments, got %v at position %d", ErrTypeMismatch, name, arg.Type(), i+1)
	}
	return arg.Int(), nil
}

func expectInts(name string, args []*ast.Node) ([]int64, error) {
	values := make([]int64, 0, len(args))
	for i := range args {
		n, err := expectInt(name, i, args[i])
		if err != nil {
			return nil, err
		}
		values = append(values, n)
	}
	return values, nil
}

func addInt(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, fmt.Errorf("%w: %d + %d", ErrIntegerOverflow, a, b)
	}
	return a + b, nil
}

func subInt(a, b int64) (int64, error) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, fmt.Errorf("%w: %d - %d", ErrIntegerOverflow, a, b)
	}
	return a - b, nil
}

func mulInt(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	c := a * b
	if c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, fmt.Errorf("%w: %d * %d", ErrIntegerOverflow, a, b)
	}
	return c, nil
}

func divInt(a, b int64) (int64, error) {
	if b == 0 {
		return 0, fmt.Errorf("%w: %d / %d", ErrDivideByZero, a, b)
	}
	if a == math.MinInt64 && b == -1 {
		return 0, fmt.Errorf("%w: %d / %d", ErrIntegerOverflow, a, b)
	}
	return a / b, nil
}

// fold applies op to a running total over every value.
func fold(total int64, values []int64, op func(a, b int64) (int64, error)) (*ast.Node, error) {
	var err error
	for _, n := range values {
		if total, err = op(total, n); err != nil {
			return nil, err
		}
	}
	return ast.NewInt(nil, total), nil
}

func builtinAdd(args []*ast.Node) (*ast.Node, error) {
	values, err := expectInts("+", args)
	if err != nil {
		return nil, err
	}
	return fold(0, values, addInt)
}

func builtinMul(args []*ast.Node) (*ast.Node, error) {
	values, err := expectInts("*", args)
	if err != nil {
		return nil, err
	}
	return fold(1, values, mulInt)
}

// builtinSub starts from the first argument and then subtracts every
// argument, the first one included: (- 10 3) is -3.
func builtinSub(args []*ast.Node) (*ast.Node, error) {
	values, err := expectInts("-", args)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: - expects at least 1 argument", ErrArity)
	}
	return fold(values[0], values, subInt)
}

// builtinDiv starts from the first argument and then divides by every
// argument, the first one included: (/ 10 2) is 0.
func builtinDiv(args []*ast.Node) (*ast.Node, error) {
	values, err := expectInts("/", args)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: / expects at least 1 argument", ErrArity)
	}
	return fold(values[0], values, divInt)
}

func conventionalSub(args []*ast.Node) (*ast.Node, error) {
	values, err := expectInts("-", args)
	if err != nil {
		return nil, err
	}
	switch len(values) {
	case 0:
		return nil, fmt.Errorf("%w: - expects at least 1 argument", ErrArity)
	case 1:
		return fold(0, values, subInt)
	}
	return fold(values[0], values[1:], subInt)
}

func conventionalDiv(args []*ast.Node) (*ast.Node, error) {
	values, err := expectInts("/", args)
	if err != nil {
		return nil, err
	}
	switch len(values) {
	case 0:
		return nil, fmt.Errorf("%w: / expects at least 1 argument", ErrArity)
	case 1:
		return fold(1, values, divInt)
	}
	return fold(values[0], values[1:], divInt)
}

func builtinEq(args []*ast.Node) (*ast.Node, error) {
	if len(args) < 2 {
		return ast.True, nil
	}
	first := args[0]
	for _, arg := range args[1:] {
		eq, err := ast.Equal(first, arg)
		if err != nil {
			return nil, fmt.Errorf("eq?: %w", err)
		}
		if !eq {
			return ast.False, nil
		}
	}
	return ast.True, nil
}
