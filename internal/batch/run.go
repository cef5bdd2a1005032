package batch

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"fsdriver/internal/argv"
	"fsdriver/internal/driver"
)

// runMu serializes whole invocations: the driver redirects the ambient
// console streams, which only one owner may hold at a time.
var runMu sync.Mutex

// Request configures a batch run.
type Request struct {
	Jobs     []Job
	Driver   *driver.Driver
	Progress Sink
}

// JobResult is one finished invocation.
type JobResult struct {
	Job         Job
	ExitCode    int
	Lines       []string
	StderrLines []string
}

// Result of a whole batch.
type Result struct {
	Jobs     []JobResult
	Failures int
}

// Run executes every job in script order. Non-zero exit codes do not
// stop the batch; a catastrophic driver error or a cancelled context
// does.
func Run(ctx context.Context, req *Request) (*Result, error) {
	if req == nil || req.Driver == nil {
		return nil, fmt.Errorf("missing batch request or driver")
	}
	res := &Result{Jobs: make([]JobResult, 0, len(req.Jobs))}
	for i, job := range req.Jobs {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		emit(req.Progress, Event{Index: i, Job: job, Stage: StageCompiling})

		runMu.Lock()
		code, lines, stderrLines, err := req.Driver.CompileFromCommandLine(job.Dir, job.Args)
		runMu.Unlock()
		if err != nil {
			emit(req.Progress, Event{Index: i, Job: job, Stage: StageDone, ExitCode: 1, Failed: true})
			return res, fmt.Errorf("job %d (%s): %w", i, job.Label(), err)
		}

		res.Jobs = append(res.Jobs, JobResult{Job: job, ExitCode: code, Lines: lines, StderrLines: stderrLines})
		failed := code != 0
		if failed {
			res.Failures++
		}
		emit(req.Progress, Event{Index: i, Job: job, Stage: StageDone, ExitCode: code, Failed: failed})
	}
	return res, nil
}

func emit(sink Sink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}

// CheckIssue flags a job that cannot produce a useful invocation.
type CheckIssue struct {
	Index int
	Job   Job
	Msg   string
}

// Check preflights every job concurrently. Tokenizing and stat-ing are
// pure with respect to the console, so jobs can fan out here even though
// running them cannot. workers <= 0 means one per CPU.
func Check(ctx context.Context, jobs []Job, workers int) ([]CheckIssue, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	var (
		mu     sync.Mutex
		issues []CheckIssue
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if msg, ok := checkJob(job); !ok {
				mu.Lock()
				issues = append(issues, CheckIssue{Index: i, Job: job, Msg: msg})
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(issues, func(a, b int) bool { return issues[a].Index < issues[b].Index })
	return issues, nil
}

func checkJob(job Job) (string, bool) {
	if len(argv.Split(job.Args)) == 0 {
		return "command line tokenizes to nothing", false
	}
	if job.Dir != "" && job.Dir != "." {
		if fi, err := os.Stat(job.Dir); err != nil || !fi.IsDir() {
			return fmt.Sprintf("working directory %q is not accessible", job.Dir), false
		}
	}
	return "", true
}
