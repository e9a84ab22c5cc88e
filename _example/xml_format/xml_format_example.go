package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/lispedit/ast"
	"github.com/xiam/lispedit/parser"
)

func printTree(node *ast.Node) {
	printIndentedTree(node, 0)
}

func printIndentedTree(node *ast.Node, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	if node.IsVector() {
		fmt.Printf("%s<%s>\n", indent, node.Type())
		children := node.List()
		for i := range children {
			printIndentedTree(children[i], indentationLevel+1)
		}
		fmt.Printf("%s</%s>\n", indent, node.Type())
		return
	}
	fmt.Printf("%s<%s>%s</%s>\n", indent, node.Type(), ast.Encode(node), node.Type())
}

func main() {
	input := `(do (def a (+ 89 67 3)) (if (eq? a 159) "Hello world!" "😊"))`

	nodes, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	for _, node := range nodes {
		printTree(node)
	}
}
