package lispedit

import (
	"sort"

	"github.com/xiam/lispedit/ast"
)

// change records the previous state of a name, so it can be restored.
type change struct {
	name    string
	prev    *ast.Node
	existed bool
}

type symbolTable struct {
	n map[string]*ast.Node

	journal   []change
	recording bool
}

func newSymbolTable() *symbolTable {
	return &symbolTable{
		n: make(map[string]*ast.Node),
	}
}

func (st *symbolTable) Set(name string, value *ast.Node) {
	if st.recording {
		prev, ok := st.n[name]
		st.journal = append(st.journal, change{name: name, prev: prev, existed: ok})
	}
	st.n[name] = value
}

func (st *symbolTable) Get(name string) (*ast.Node, bool) {
	value, ok := st.n[name]
	return value, ok
}

func (st *symbolTable) Names() []string {
	names := make([]string, 0, len(st.n))
	for name := range st.n {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// begin starts recording changes.
func (st *symbolTable) begin() {
	st.journal = st.journal[:0]
	st.recording = true
}

// commit keeps every change made since begin.
func (st *symbolTable) commit() {
	st.journal = st.journal[:0]
	st.recording = false
}

// rollback undoes every change made since begin, newest first.
func (st *symbolTable) rollback() {
	for i := len(st.journal) - 1; i >= 0; i-- {
		c := st.journal[i]
		if c.existed {
			st.n[c.name] = c.prev
		} else {
			delete(st.n, c.name)
		}
	}
	st.journal = st.journal[:0]
	st.recording = false
}
