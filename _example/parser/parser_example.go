package main

import (
	"log"

	"github.com/xiam/lispedit/ast"
	"github.com/xiam/lispedit/parser"
)

func main() {
	input := `(do (def a (+ 89 67 3)) (if (eq? a 159) "Hello world!" "😊"))`

	nodes, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	for _, node := range nodes {
		ast.Print(node)
	}
}
