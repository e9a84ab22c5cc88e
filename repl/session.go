package repl

import (
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/xiam/lispedit"
)

var logger = log.New(io.Discard, "repl: ", log.LstdFlags)

// SetLogger sets the logger used to report sessions and history problems.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger = l
}

// Session evaluates lines of input in one environment and writes what each
// form evaluates to.
type Session struct {
	ID uuid.UUID

	env *lispedit.Environment
	out io.Writer
}

// NewSession creates a session that evaluates in env and writes to out.
func NewSession(env *lispedit.Environment, out io.Writer) *Session {
	s := &Session{
		ID:  uuid.New(),
		env: env,
		out: out,
	}
	logger.Printf("session %v: started", s.ID)
	return s
}

// Env returns the environment of the session.
func (s *Session) Env() *lispedit.Environment {
	return s.env
}

// Eval evaluates every form in line, printing values and errors. It returns
// false if any of the forms failed.
func (s *Session) Eval(line string) bool {
	logger.Printf("session %v: %q", s.ID, line)

	ok := true
	for _, result := range lispedit.Eval(s.env, line) {
		if result.Err != nil {
			ok = false
			logger.Printf("session %v: %v fault: %v", s.ID, lispedit.KindOf(result.Err), result.Err)
		}
		fmt.Fprintln(s.out, result.String())
	}
	return ok
}
