package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/xiam/lispedit"
	"github.com/xiam/lispedit/repl"
)

type config struct {
	historyFile  string
	prompt       string
	debug        bool
	conventional bool
	maxDepth     int
}

func (c *config) environment() *lispedit.Environment {
	opts := []lispedit.Option{
		lispedit.WithMaxDepth(c.maxDepth),
	}
	if c.conventional {
		opts = append(opts, lispedit.ConventionalArithmetic())
	}
	return lispedit.NewEnvironment(opts...)
}

func (c *config) history() *repl.History {
	if c.historyFile != "" {
		return repl.NewHistory(c.historyFile)
	}
	path, err := repl.DefaultHistoryFile()
	if err != nil {
		log.Printf("history disabled: %v", err)
	}
	return repl.NewHistory(path)
}

func newRootCmd() *cobra.Command {
	cfg := &config{}

	rootCmd := &cobra.Command{
		Use:   "lispedit",
		Short: "Interactive lisp evaluator",
		Long:  `Evaluate parenthesized prefix expressions one line at a time.`,

		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cfg.debug {
				lispedit.Debug()
				repl.SetLogger(log.New(os.Stderr, "repl: ", log.LstdFlags))
			}
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			return repl.Run(repl.Options{
				Prompt:  cfg.prompt,
				History: cfg.history(),
				Env:     cfg.environment(),
				Out:     cmd.OutOrStdout(),
			})
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&cfg.debug, "debug", false,
		"Trace evaluation to stderr")
	flags.BoolVar(&cfg.conventional, "conventional-arith", false,
		"Make - and / subtract or divide the rest of the arguments from the first one")
	flags.IntVar(&cfg.maxDepth, "max-depth", lispedit.DefaultMaxDepth,
		"Maximum nesting of expressions")

	rootCmd.Flags().StringVar(&cfg.historyFile, "history", "",
		"History file (default $HOME/"+repl.HistoryFileName+")")
	rootCmd.Flags().StringVar(&cfg.prompt, "prompt", repl.DefaultPrompt,
		"Prompt shown before each line")

	rootCmd.AddCommand(newRunCmd(cfg))

	return rootCmd
}
