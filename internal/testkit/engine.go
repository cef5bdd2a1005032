// Package testkit provides scriptable stand-ins for the compiler
// backend used across the driver and batch tests.
package testkit

import (
	"fmt"
	"os"

	"fsdriver/internal/engine"
)

// StubEngine is a programmable backend. On each Compile call it emits
// the scripted diagnostics, writes the scripted console text (through
// the redirected os.Stdout/os.Stderr, so the capture sees it), then runs
// the configured termination behavior.
type StubEngine struct {
	Emit      []engine.Diagnostic // sent to the collector in order
	Stdout    string
	Stderr    string
	ExitCode  *int  // when set, request exit through the sink
	Err       error // returned verbatim when no exit is requested
	PanicWith any   // when set, panic instead of returning

	Calls    int
	LastArgv []string
}

func (s *StubEngine) Compile(args []string, _ engine.ReferenceResolver, _ bool, exit *engine.ExitSink, sink *engine.Collector) error {
	s.Calls++
	s.LastArgv = append([]string(nil), args...)
	for _, d := range s.Emit {
		sink.Collect(d)
	}
	if s.Stdout != "" {
		fmt.Fprint(os.Stdout, s.Stdout)
	}
	if s.Stderr != "" {
		fmt.Fprint(os.Stderr, s.Stderr)
	}
	if s.PanicWith != nil {
		panic(s.PanicWith)
	}
	if s.ExitCode != nil {
		return exit.Exit(*s.ExitCode)
	}
	return s.Err
}

// IntPtr is a convenience for StubEngine.ExitCode literals.
func IntPtr(v int) *int { return &v }
