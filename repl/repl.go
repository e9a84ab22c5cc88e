package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/xiam/lispedit"
)

// DefaultPrompt is the prompt shown when Options.Prompt is empty.
const DefaultPrompt = "lispedit> "

// Options configures Run.
type Options struct {
	Prompt string

	// History is where entered lines are kept, nil disables it.
	History *History

	Env *lispedit.Environment
	Out io.Writer
}

// Run reads lines from the terminal and evaluates them until the user presses
// Ctrl-C or Ctrl-D. Errors in the evaluated forms are printed and never stop
// the loop.
func Run(opts Options) error {
	if opts.Prompt == "" {
		opts.Prompt = DefaultPrompt
	}
	if opts.Env == nil {
		opts.Env = lispedit.NewEnvironment()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.History == nil {
		opts.History = NewHistory("")
	}

	ln := liner.NewLiner()
	defer ln.Close()

	ln.SetCtrlCAborts(true)

	if _, err := opts.History.Load(ln); err != nil {
		logger.Printf("no previous history: %v", err)
	}

	session := NewSession(opts.Env, opts.Out)
	for {
		line, err := ln.Prompt(opts.Prompt)
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			fmt.Fprintln(opts.Out, "CTRL-C")
			return nil
		case errors.Is(err, io.EOF):
			fmt.Fprintln(opts.Out, "CTRL-D")
			return nil
		case err != nil:
			return err
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		ln.AppendHistory(line)
		if err := opts.History.Append(line); err != nil {
			logger.Printf("could not save history: %v", err)
		}

		session.Eval(line)
	}
}
