package capture

import (
	"fmt"
	"os"
	"reflect"
	"testing"
)

func TestRedirectCapturesAndRestores(t *testing.T) {
	prevStdout, prevStderr := os.Stdout, os.Stderr

	red, err := Redirect()
	if err != nil {
		t.Fatalf("Redirect: %v", err)
	}
	fmt.Fprint(os.Stdout, "to stdout\n")
	fmt.Fprint(os.Stderr, "to stderr\n")
	stdout, stderr := red.Release()

	if os.Stdout != prevStdout || os.Stderr != prevStderr {
		t.Fatalf("streams not restored after Release")
	}
	if stdout != "to stdout\n" {
		t.Fatalf("stdout capture = %q", stdout)
	}
	if stderr != "to stderr\n" {
		t.Fatalf("stderr capture = %q", stderr)
	}
}

func TestReleaseIsIdempotent(t *testing.T) {
	red, err := Redirect()
	if err != nil {
		t.Fatalf("Redirect: %v", err)
	}
	fmt.Fprint(os.Stdout, "once")
	if out, _ := red.Release(); out != "once" {
		t.Fatalf("first Release = %q", out)
	}
	if out, errText := red.Release(); out != "" || errText != "" {
		t.Fatalf("second Release must return empty text, got %q / %q", out, errText)
	}
}

func TestRedirectLargeOutputDoesNotBlock(t *testing.T) {
	red, err := Redirect()
	if err != nil {
		t.Fatalf("Redirect: %v", err)
	}
	// Well past the pipe buffer; the drain goroutine must keep up.
	for i := 0; i < 20000; i++ {
		fmt.Fprintln(os.Stdout, "line of compiler banner output")
	}
	stdout, _ := red.Release()
	if len(SplitLines(stdout)) != 20000 {
		t.Fatalf("expected 20000 lines, got %d", len(SplitLines(stdout)))
	}
}

func TestSplitLines(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"\r\n\r\n", nil},
		{"a\r\nb\nc\r", []string{"a", "b", "c"}},
		{"no trailing break", []string{"no trailing break"}},
		{"\n\nmiddle\n\n", []string{"middle"}},
	}
	for _, tc := range cases {
		got := SplitLines(tc.in)
		if len(got) == 0 && len(tc.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("SplitLines(%q) = %#v, want %#v", tc.in, got, tc.want)
		}
	}
}
