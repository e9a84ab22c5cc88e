package lispedit

import (
	"fmt"

	"github.com/xiam/lispedit/ast"
	"github.com/xiam/lispedit/parser"
)

// DefaultMaxDepth is the default limit of nested evaluations.
const DefaultMaxDepth = parser.DefaultMaxDepth

// Environment is the global table of names. It is created by the caller and
// passed to every evaluation; it is not safe for concurrent use.
type Environment struct {
	st *symbolTable

	maxDepth int
}

// Option configures an Environment.
type Option func(*Environment)

// WithMaxDepth limits how deeply forms can nest, both while parsing and while
// evaluating.
func WithMaxDepth(depth int) Option {
	return func(env *Environment) {
		if depth > 0 {
			env.maxDepth = depth
		}
	}
}

// WithConstants binds the given values in the new environment.
func WithConstants(constants map[string]*ast.Node) Option {
	return func(env *Environment) {
		for name, value := range constants {
			env.Set(name, value)
		}
	}
}

// ConventionalArithmetic replaces "-" and "/" with versions that subtract or
// divide the rest of the arguments from the first one.
func ConventionalArithmetic() Option {
	return func(env *Environment) {
		env.Defn("-", conventionalSub)
		env.Defn("/", conventionalDiv)
	}
}

// NewEnvironment creates an environment with the native functions and the
// constants true, false and nil already bound.
func NewEnvironment(opts ...Option) *Environment {
	env := &Environment{
		st:       newSymbolTable(),
		maxDepth: DefaultMaxDepth,
	}

	env.Set("true", ast.True)
	env.Set("false", ast.False)
	env.Set("nil", ast.Nil)

	for name, fn := range builtins {
		env.Defn(name, fn)
	}

	for _, opt := range opts {
		opt(env)
	}

	return env
}

// Defn binds a native function to the given name.
func (env *Environment) Defn(name string, fn ast.Function) {
	env.Set(name, ast.NewFunction(name, fn))
}

// Set binds a value to a name, replacing any previous binding.
func (env *Environment) Set(name string, value *ast.Node) {
	tracef("env: %q -> %v", name, value)
	env.st.Set(name, value)
}

// Get returns the value bound to the given name.
func (env *Environment) Get(name string) (*ast.Node, error) {
	value, ok := env.st.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnboundIdentifier, name)
	}
	return value, nil
}

// Names returns all the bound names in lexicographical order.
func (env *Environment) Names() []string {
	return env.st.Names()
}

// MaxDepth returns the configured nesting limit.
func (env *Environment) MaxDepth() int {
	return env.maxDepth
}
