package lispedit

import (
	"errors"
	"fmt"

	"github.com/xiam/lispedit/ast"
	"github.com/xiam/lispedit/lexer"
	"github.com/xiam/lispedit/parser"
)

var (
	ErrUnboundIdentifier = errors.New("unbound identifier")
	ErrNotApplicable     = errors.New("not applicable")
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrArity             = errors.New("wrong number of arguments")
	ErrDivideByZero      = errors.New("division by zero")
	ErrIntegerOverflow   = errors.New("integer overflow")
	ErrAssertionFailed   = errors.New("assertion failed")
	ErrMissingBranch     = errors.New("missing branch")
	ErrIncomparable      = ast.ErrIncomparable
	ErrStackOverflow     = errors.New("maximum evaluation depth exceeded")
)

// FaultKind classifies the errors produced while evaluating source text.
type FaultKind uint8

// Fault kinds
const (
	FaultNone FaultKind = iota
	FaultTokenize
	FaultParse
	FaultUnboundIdentifier
	FaultNotApplicable
	FaultTypeMismatch
	FaultArity
	FaultArithmetic
	FaultAssertionFailed
	FaultMissingBranch
	FaultIncomparable
	FaultResourceExhausted
	FaultInternal
)

var faultKindNames = map[FaultKind]string{
	FaultNone:              "none",
	FaultTokenize:          "tokenize",
	FaultParse:             "parse",
	FaultUnboundIdentifier: "unbound identifier",
	FaultNotApplicable:     "not applicable",
	FaultTypeMismatch:      "type mismatch",
	FaultArity:             "arity",
	FaultArithmetic:        "arithmetic",
	FaultAssertionFailed:   "assertion failed",
	FaultMissingBranch:     "missing branch",
	FaultIncomparable:      "incomparable",
	FaultResourceExhausted: "resource exhausted",
	FaultInternal:          "internal",
}

func (k FaultKind) String() string {
	if s, ok := faultKindNames[k]; ok {
		return s
	}
	return faultKindNames[FaultInternal]
}

var sentinelKinds = []struct {
	err  error
	kind FaultKind
}{
	{ErrUnboundIdentifier, FaultUnboundIdentifier},
	{ErrNotApplicable, FaultNotApplicable},
	{ErrTypeMismatch, FaultTypeMismatch},
	{ErrArity, FaultArity},
	{ErrDivideByZero, FaultArithmetic},
	{ErrIntegerOverflow, FaultArithmetic},
	{ErrAssertionFailed, FaultAssertionFailed},
	{ErrMissingBranch, FaultMissingBranch},
	{ErrIncomparable, FaultIncomparable},
	{ErrStackOverflow, FaultResourceExhausted},
	{parser.ErrTooDeep, FaultResourceExhausted},
}

// Fault is the error type returned for every failed top-level form. It never
// leaves the environment half-updated.
type Fault struct {
	Kind FaultKind
	Node *ast.Node
	Err  error
}

func (f *Fault) Error() string {
	if f.Node != nil {
		if line, col := f.Node.Pos(); line > 0 {
			return fmt.Sprintf("%d:%d: %v", line, col, f.Err)
		}
	}
	return f.Err.Error()
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// KindOf returns the kind of fault err represents, or FaultNone for a nil
// error.
func KindOf(err error) FaultKind {
	if err == nil {
		return FaultNone
	}

	var fault *Fault
	if errors.As(err, &fault) {
		return fault.Kind
	}

	return classify(err)
}

func classify(err error) FaultKind {
	for _, s := range sentinelKinds {
		if errors.Is(err, s.err) {
			return s.kind
		}
	}

	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return FaultTokenize
	}

	var parseErr *parser.Error
	if errors.As(err, &parseErr) {
		return FaultParse
	}

	return FaultInternal
}

func newFault(node *ast.Node, err error) error {
	var fault *Fault
	if errors.As(err, &fault) {
		return err
	}
	return &Fault{
		Kind: classify(err),
		Node: node,
		Err:  err,
	}
}
