package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"cxxdoc/internal/driver"
	"cxxdoc/internal/ui"
)

type analyzeOutcome struct {
	result *driver.Result
	err    error
}

func runAnalyzeWithUI(ctx context.Context, title string, files []string, opts driver.Options) (*driver.Result, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan analyzeOutcome, 1)

	go func() {
		runOpts := opts
		runOpts.Sink = driver.ChannelSink{Ch: events}
		res, err := driver.AnalyzeFiles(ctx, files, runOpts)
		outcomeCh <- analyzeOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// UI мог выйти раньше (ошибка, Ctrl+C): дочитываем события, иначе воркеры заблокируются
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
