// Package engine defines the narrow contract the driver consumes from an
// in-process compiler backend: the compile entry point, the exit
// capability that stands in for real process termination, and the raw
// diagnostic shapes the backend emits.
package engine

// ReferenceResolver is the assembly/reference resolution collaborator.
// The driver passes it through to the backend untouched and never
// inspects it.
type ReferenceResolver interface{}

// Engine is one in-process compiler backend.
type Engine interface {
	// Compile runs one compilation over argv. argv[0] is a launcher
	// placeholder the backend discards. Structured diagnostics go
	// through sink as they are emitted; termination requests go through
	// exit. suppressNestedExit disables exit propagation from the
	// backend's nested compilations.
	//
	// Compile returns nil on a plain return, the *ExitSignal produced
	// by exit, ErrReported (possibly wrapped once), or an internal
	// backend fault.
	Compile(argv []string, resolver ReferenceResolver, suppressNestedExit bool, exit *ExitSink, sink *Collector) error
}

var defaultEngine Engine

// SetDefault registers the backend linked into this binary. Hosts call
// it from an init function.
func SetDefault(e Engine) { defaultEngine = e }

// Default returns the registered backend, nil when none is linked.
func Default() Engine { return defaultEngine }
