package ast

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Print displays a human-readable representation of a node
func Print(n *Node) {
	Fprint(os.Stdout, n)
}

// Fprint writes a human-readable, indented representation of a node to w
func Fprint(w io.Writer, n *Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n *Node, level int) {
	indent := strings.Repeat("    ", level)
	if n == nil {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}
	fmt.Fprintf(w, "%s(%s): ", indent, n.Type())
	switch n.Type() {
	case NodeTypeExpression:
		fmt.Fprintf(w, "(%v)\n", n.Token())
		list := n.List()
		for i := range list {
			printLevel(w, list[i], level+1)
		}
	default:
		fmt.Fprintf(w, "%s (%v)\n", Encode(n), n.Token())
	}
}

// Encode transforms a node into its text representation
func Encode(n *Node) string {
	if n == nil {
		return "nil"
	}
	switch n.Type() {
	case NodeTypeExpression:
		nodes := make([]string, 0, len(n.List()))
		for _, child := range n.List() {
			nodes = append(nodes, Encode(child))
		}
		return "(" + strings.Join(nodes, " ") + ")"
	case NodeTypeInt:
		return strconv.FormatInt(n.Int(), 10)
	case NodeTypeString:
		return strconv.Quote(n.Str())
	case NodeTypeBool:
		return strconv.FormatBool(n.Bool())
	case NodeTypeSymbol:
		return n.Symbol()
	case NodeTypeNil:
		return "nil"
	case NodeTypeFunction:
		return fmt.Sprintf("<function %s>", n.FunctionName())
	}
	panic("unknown node type")
}
