package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"chisel/internal/driver"
	"chisel/internal/ui"
)

type fmtOutcome struct {
	results []driver.FormatResult
	err     error
}

// runFmtWithUI runs the parallel formatting pass behind a Bubble Tea
// progress view fed by driver events.
func runFmtWithUI(ctx context.Context, files []string, opts driver.FormatOptions, jobs int) ([]driver.FormatResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan fmtOutcome, 1)

	go func() {
		results, err := driver.FormatPathsParallel(ctx, files, opts, jobs, events)
		outcomeCh <- fmtOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("chisel fmt", files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
