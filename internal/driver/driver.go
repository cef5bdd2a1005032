// Package driver turns one in-process backend invocation into a pure
// (exit code, report lines) result: it fixes up the argument vector,
// captures console output, resolves the backend's termination outcome
// and renders normalized diagnostics in the requested legacy format.
package driver

import (
	"errors"
	"fmt"
	"os"

	"fsdriver/internal/argv"
	"fsdriver/internal/capture"
	"fsdriver/internal/diag"
	"fsdriver/internal/engine"
)

// internalErrorLine opens the synthetic report produced when an
// invocation faults outside the expected termination signals.
const internalErrorLine = "Internal compiler error"

// Options configures a Driver.
type Options struct {
	// Engine is the backend to drive; defaults to engine.Default().
	Engine engine.Engine
	// Resolver is handed to the backend untouched.
	Resolver engine.ReferenceResolver
	// Executable is the launcher name expected at argv[0]. Defaults to
	// "fsc".
	Executable string
}

// Driver runs compilations against one backend. Invocations redirect the
// process-wide console streams, so concurrent calls on any number of
// Drivers must be serialized by the caller.
type Driver struct {
	engine   engine.Engine
	resolver engine.ReferenceResolver
	exe      string
}

func New(opts *Options) *Driver {
	d := &Driver{}
	if opts != nil {
		d.engine = opts.Engine
		d.resolver = opts.Resolver
		d.exe = opts.Executable
	}
	if d.engine == nil {
		d.engine = engine.Default()
	}
	if d.exe == "" {
		d.exe = "fsc"
	}
	return d
}

// CompileFromArgs runs one compilation over args and returns the exit
// code with the combined report lines: captured stdout first, then the
// rendered diagnostics, errors ahead of warnings. An empty or nil vector
// is treated as the launcher placeholder alone. The error is non-nil
// only when the console redirection itself cannot be set up.
func (d *Driver) CompileFromArgs(args []string) (int, []string, error) {
	code, lines, _, err := d.compile(args, nil)
	return code, lines, err
}

// CompileFromCommandLine switches the process working directory to dir,
// tokenizes commandLine and compiles. The directory change is not undone
// afterwards; managing it is the caller's obligation. Captured stderr
// lines come back separately and are never merged into the combined
// report.
func (d *Driver) CompileFromCommandLine(dir, commandLine string) (int, []string, []string, error) {
	return d.compile(argv.Split(commandLine), func() error {
		if err := os.Chdir(dir); err != nil {
			return fmt.Errorf("switch working directory: %w", err)
		}
		return nil
	})
}

func (d *Driver) compile(args []string, setup func() error) (int, []string, []string, error) {
	args = argv.EnsureLauncher(args, d.exe)
	flags := argv.ScanFlags(args)

	red, err := capture.Redirect()
	if err != nil {
		return 0, nil, nil, err
	}
	code, out, fault := d.protectedInvoke(args, setup)
	stdout, stderr := red.Release()

	stderrLines := capture.SplitLines(stderr)
	if fault != nil {
		report := []string{internalErrorLine, diag.FlattenText(fault.Error())}
		return 1, report, stderrLines, nil
	}

	lines := append(capture.SplitLines(stdout), diag.Render(diag.NormalizeOutput(out), flags)...)
	return code, lines, stderrLines, nil
}

// protectedInvoke runs setup and the backend, converting panics into
// faults so the redirection in compile is always released.
func (d *Driver) protectedInvoke(args []string, setup func() error) (code int, out engine.Output, fault error) {
	defer func() {
		if r := recover(); r != nil {
			fault = fmt.Errorf("panic: %v", r)
		}
	}()
	if setup != nil {
		if err := setup(); err != nil {
			return 1, engine.Output{}, err
		}
	}
	return d.invoke(args)
}

// invoke resolves the backend call into one of three expected
// termination outcomes: an exit signal carries its recorded code, a
// reported failure forces code 1, and a plain return uses whatever the
// exit sink last recorded (zero by default). Anything else is a fault.
func (d *Driver) invoke(args []string) (int, engine.Output, error) {
	if d.engine == nil {
		return 1, engine.Output{}, errors.New("no compiler backend linked into this binary")
	}
	exit := &engine.ExitSink{}
	sink := &engine.Collector{}
	err := d.engine.Compile(args, d.resolver, true, exit, sink)

	var signal *engine.ExitSignal
	switch {
	case err == nil:
		return exit.Code(), sink.Output(), nil
	case errors.As(err, &signal):
		return signal.Code, sink.Output(), nil
	case errors.Is(err, engine.ErrReported):
		return 1, sink.Output(), nil
	default:
		return 1, engine.Output{}, err
	}
}
