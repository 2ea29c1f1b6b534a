package report

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Sink is the shared output handle. Every print operation holds the lock for
// its whole duration, so blocks from different callers never interleave.
// Structured output and diagnostics go to separate writers.
type Sink struct {
	mu      sync.Mutex
	out     io.Writer
	diag    io.Writer
	program string
}

// NewSink wires the structured output and diagnostic writers. Nil writers
// default to stdout and stderr.
func NewSink(out, diag io.Writer, program string) *Sink {
	if out == nil {
		out = os.Stdout
	}
	if diag == nil {
		diag = os.Stderr
	}
	if program == "" {
		program = "adocscan"
	}
	return &Sink{out: out, diag: diag, program: program}
}

// Print runs fn against the output writer while holding the sink lock.
func (s *Sink) Print(fn func(w io.Writer) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.out)
}

// Diagnose writes one diagnostic line for err to the diagnostic writer.
func (s *Sink) Diagnose(err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.diag, "%s: %v\n", s.program, err)
}
