package engine

import (
	"errors"
	"fmt"
)

// ErrReported signals that the backend already reported its failure
// through the diagnostics sink. The driver maps it to exit code 1.
var ErrReported = errors.New("compilation failure reported")

// ExitSignal unwinds the backend instead of terminating the host
// process. It carries the code the backend would have exited with.
type ExitSignal struct {
	Code int
}

func (s *ExitSignal) Error() string {
	return fmt.Sprintf("compiler requested exit with code %d", s.Code)
}

// ExitSink records the exit code a backend asks for. Backends must
// propagate the returned signal instead of calling os.Exit.
type ExitSink struct {
	code int
}

// Exit records code and returns the signal the backend should propagate.
func (s *ExitSink) Exit(code int) error {
	s.code = code
	return &ExitSignal{Code: code}
}

// Code returns the most recently recorded exit code, zero by default.
func (s *ExitSink) Code() int { return s.code }
