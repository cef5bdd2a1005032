// Package capture redirects the ambient standard output and error
// streams into memory for the duration of one compiler invocation.
package capture

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// Redirection holds the saved stream handles while a capture is active.
//
// The redirection is process-global state: exactly one Redirection may
// be live at a time, and concurrent callers must serialize around it.
type Redirection struct {
	prevStdout *os.File
	prevStderr *os.File
	outW       *os.File
	errW       *os.File
	outCh      <-chan string
	errCh      <-chan string
	released   bool
}

// Redirect swaps os.Stdout and os.Stderr for in-memory sinks. Callers
// must call Release on every exit path, including faults.
func Redirect() (*Redirection, error) {
	outR, outW, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("redirect stdout: %w", err)
	}
	errR, errW, err := os.Pipe()
	if err != nil {
		outR.Close()
		outW.Close()
		return nil, fmt.Errorf("redirect stderr: %w", err)
	}
	r := &Redirection{
		prevStdout: os.Stdout,
		prevStderr: os.Stderr,
		outW:       outW,
		errW:       errW,
		outCh:      drain(outR),
		errCh:      drain(errR),
	}
	os.Stdout = outW
	os.Stderr = errW
	return r, nil
}

// drain reads the pipe until the write end closes. A reader goroutine is
// required: an undrained pipe blocks writers once its buffer fills.
func drain(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		r.Close()
		ch <- buf.String()
	}()
	return ch
}

// Release restores the previous streams and returns everything written
// while the redirection was active. Idempotent; repeated calls return
// empty text.
func (r *Redirection) Release() (stdout, stderr string) {
	if r.released {
		return "", ""
	}
	r.released = true
	os.Stdout = r.prevStdout
	os.Stderr = r.prevStderr
	r.outW.Close()
	r.errW.Close()
	return <-r.outCh, <-r.errCh
}

// SplitLines splits captured text on carriage returns and line feeds,
// discarding empty segments.
func SplitLines(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '\r' || r == '\n'
	})
}
