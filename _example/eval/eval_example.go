package main

import (
	"fmt"

	"github.com/xiam/lispedit"
)

func main() {
	env := lispedit.NewEnvironment()

	input := `
		(def a (+ 89 67 3))
		(if (eq? a 159) "Hello world!" "Bye")
		(assert (eq? a 0))
		a
	`

	for _, result := range lispedit.Eval(env, input) {
		fmt.Println(result)
	}
}
