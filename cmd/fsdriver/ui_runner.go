package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"fsdriver/internal/batch"
	"fsdriver/internal/ui"
)

type batchOutcome struct {
	result *batch.Result
	err    error
}

func runBatchWithUI(ctx context.Context, title string, req *batch.Request) (*batch.Result, error) {
	events := make(chan batch.Event, 256)
	outcomeCh := make(chan batchOutcome, 1)

	// The runner redirects os.Stdout during every invocation; the UI must
	// keep writing to the handle the process started with.
	terminal := os.Stdout

	go func() {
		reqCopy := *req
		reqCopy.Progress = batch.ChannelSink{Ch: events}
		res, err := batch.Run(ctx, &reqCopy)
		outcomeCh <- batchOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, req.Jobs, events)
	program := tea.NewProgram(model, tea.WithOutput(terminal))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
