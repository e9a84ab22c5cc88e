package lispedit

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/xiam/lispedit/ast"
	"github.com/xiam/lispedit/parser"
)

var (
	logger  = log.New(io.Discard, "lispedit: ", log.LstdFlags)
	tracing = false
)

// SetLogger sets the logger used to trace evaluation. A nil logger disables
// tracing.
func SetLogger(l *log.Logger) {
	if l == nil {
		logger, tracing = log.New(io.Discard, "", 0), false
		return
	}
	logger, tracing = l, true
}

// Debug sends evaluation traces to stderr.
func Debug() {
	SetLogger(log.New(os.Stderr, "lispedit: ", log.LstdFlags))
}

func tracef(format string, v ...interface{}) {
	if tracing {
		logger.Printf(format, v...)
	}
}

// Result is the outcome of evaluating one top-level form: either a value or
// an error.
type Result struct {
	Value *ast.Node
	Err   error
}

func (r Result) String() string {
	if r.Err != nil {
		return "error: " + r.Err.Error()
	}
	return ast.Encode(r.Value)
}

// EvalNode evaluates a single top-level form. If evaluation fails every
// binding made by the form is undone and the returned error is a *Fault.
func EvalNode(env *Environment, node *ast.Node) (*ast.Node, error) {
	env.st.begin()

	value, err := NewContext(env).eval(node)
	if err != nil {
		env.st.rollback()
		logger.Printf("fault: %v", err)
		return nil, newFault(node, err)
	}

	env.st.commit()
	return value, nil
}

// Reader evaluates top-level forms read from an io.Reader, one at a time.
type Reader struct {
	env *Environment
	p   *parser.Parser

	result Result
	done   bool
}

// NewReader creates a Reader that evaluates forms from r in env. Nothing is
// read or evaluated until Next is called.
func NewReader(env *Environment, r io.Reader) *Reader {
	p := parser.New(r)
	p.SetMaxDepth(env.maxDepth)
	return &Reader{
		env: env,
		p:   p,
	}
}

// Next reads and evaluates the next top-level form. It returns false when
// there are no more forms. A tokenizer or parser error is reported as the
// last result, since nothing after it can be read.
func (rd *Reader) Next() bool {
	if rd.done {
		return false
	}

	if rd.p.Next() {
		value, err := EvalNode(rd.env, rd.p.Node())
		rd.result = Result{Value: value, Err: err}
		return true
	}

	rd.done = true
	if err := rd.p.Err(); err != nil {
		logger.Printf("fault: %v", err)
		rd.result = Result{Err: newFault(nil, err)}
		return true
	}

	return false
}

// Result returns the outcome of the form evaluated by the last call to Next.
func (rd *Reader) Result() Result {
	return rd.result
}

// Eval evaluates every top-level form in src and returns one result per form.
// Evaluation faults don't stop the following forms from being evaluated.
func Eval(env *Environment, src string) []Result {
	rd := NewReader(env, strings.NewReader(src))

	results := []Result{}
	for rd.Next() {
		results = append(results, rd.Result())
	}
	return results
}
