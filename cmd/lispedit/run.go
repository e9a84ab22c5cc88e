package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xiam/lispedit"
	"github.com/xiam/lispedit/ast"
	"github.com/xiam/lispedit/parser"
)

var errFailed = errors.New("evaluation failed")

type runOptions struct {
	expression bool
	print      bool
	tree       bool
}

func newRunCmd(cfg *config) *cobra.Command {
	opts := &runOptions{}

	runCmd := &cobra.Command{
		Use:   "run [file|expression]...",
		Short: "Run lisp code",
		Long:  `Run lisp code provided supplied via the command line or a file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			exprs, err := runReadExpressions(args, opts.expression)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if opts.tree {
				for i := range exprs {
					nodes, err := parser.Parse(exprs[i])
					if err != nil {
						return err
					}
					for _, node := range nodes {
						ast.Fprint(out, node)
					}
				}
				return nil
			}

			env := cfg.environment()
			for i := range exprs {
				rd := lispedit.NewReader(env, bytes.NewReader(exprs[i]))
				for rd.Next() {
					result := rd.Result()
					if result.Err != nil {
						fmt.Fprintln(cmd.ErrOrStderr(), result.String())
						return errFailed
					}
					if opts.print {
						fmt.Fprintln(out, result.String())
					}
				}
			}
			return nil
		},
	}

	runCmd.Flags().BoolVarP(&opts.expression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&opts.print, "print", "p", false,
		"Print expression values to stdout")
	runCmd.Flags().BoolVar(&opts.tree, "ast", false,
		"Print the parsed tree instead of evaluating")

	return runCmd
}

func runReadExpressions(args []string, expression bool) ([][]byte, error) {
	exprs := make([][]byte, len(args))
	if expression {
		for i := range args {
			exprs[i] = []byte(args[i])
		}
		return exprs, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		exprs[i] = b
	}
	return exprs, nil
}
