package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"fsdriver/internal/driver"
	"fsdriver/internal/engine"
	"fsdriver/internal/testkit"
)

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func TestLoadScript(t *testing.T) {
	path := writeScript(t, `
[[job]]
name = "clean build"
dir = "proj"
args = "-o:out.dll main.fs"

[[job]]
args = "broken.fs /vserrors"
`)
	script, err := LoadScript(path)
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if len(script.Jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(script.Jobs))
	}
	if script.Jobs[0].Name != "clean build" || script.Jobs[0].Dir != "proj" {
		t.Fatalf("job 0 = %+v", script.Jobs[0])
	}
	if script.Jobs[1].Dir != "." {
		t.Fatalf("missing dir must default to \".\", got %q", script.Jobs[1].Dir)
	}
	if script.Jobs[1].Label() != "broken.fs /vserrors" {
		t.Fatalf("unnamed job label = %q", script.Jobs[1].Label())
	}
}

func TestLoadScriptMissingFile(t *testing.T) {
	if _, err := LoadScript(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatalf("expected an error for a missing script")
	}
}

func TestRunExecutesJobsInOrder(t *testing.T) {
	dir := t.TempDir()
	stub := &testkit.StubEngine{
		Emit:     []engine.Diagnostic{&engine.Short{Err: true, Text: "boom"}},
		ExitCode: testkit.IntPtr(1),
	}
	events := make(chan Event, 16)
	req := &Request{
		Jobs: []Job{
			{Name: "first", Dir: dir, Args: "a.fs"},
			{Name: "second", Dir: dir, Args: "b.fs"},
		},
		Driver:   driver.New(&driver.Options{Engine: stub}),
		Progress: ChannelSink{Ch: events},
	}
	res, err := Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	close(events)

	if len(res.Jobs) != 2 || res.Failures != 2 {
		t.Fatalf("result = %+v", res)
	}
	if stub.Calls != 2 {
		t.Fatalf("engine called %d times, want 2", stub.Calls)
	}
	if res.Jobs[0].Job.Name != "first" || res.Jobs[1].Job.Name != "second" {
		t.Fatalf("jobs out of order: %+v", res.Jobs)
	}
	if res.Jobs[0].ExitCode != 1 || len(res.Jobs[0].Lines) == 0 {
		t.Fatalf("job result = %+v", res.Jobs[0])
	}

	var got []Event
	for evt := range events {
		got = append(got, evt)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 events, got %d: %+v", len(got), got)
	}
	if got[0].Stage != StageCompiling || got[1].Stage != StageDone || !got[1].Failed {
		t.Fatalf("unexpected event sequence: %+v", got)
	}
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := &Request{
		Jobs:   []Job{{Dir: ".", Args: "a.fs"}},
		Driver: driver.New(&driver.Options{Engine: &testkit.StubEngine{}}),
	}
	if _, err := Run(ctx, req); err == nil {
		t.Fatalf("expected a context error")
	}
}

func TestCheckFlagsUnusableJobs(t *testing.T) {
	dir := t.TempDir()
	jobs := []Job{
		{Dir: dir, Args: "fine.fs"},
		{Dir: dir, Args: `"" ""`},
		{Dir: filepath.Join(dir, "missing"), Args: "x.fs"},
	}
	issues, err := Check(context.Background(), jobs, 2)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %+v", issues)
	}
	if issues[0].Index != 1 || issues[1].Index != 2 {
		t.Fatalf("issues must come back in job order, got %+v", issues)
	}
}
