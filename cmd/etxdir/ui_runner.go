package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"etxdir/internal/scaffold"
	"etxdir/internal/tree"
	"etxdir/internal/ui"
)

// runScaffoldWithUI applies the tree while a Bubble Tea program renders the
// progress. The apply runs in a goroutine feeding an event channel; closing
// the channel ends the UI. Counting happens on the apply goroutine, which
// finishes before the error lands in errCh, so the counters are settled by
// the time they are read.
func runScaffoldWithUI(root *tree.Node, opts scaffold.Options, dest string, count func(scaffold.Event)) error {
	events := make(chan scaffold.Event, 256)
	errCh := make(chan error, 1)

	sink := scaffold.ChannelSink{Ch: events}
	opts.Progress = scaffold.SinkFunc(func(ev scaffold.Event) {
		count(ev)
		sink.Publish(ev)
	})
	go func() {
		errCh <- scaffold.Apply(root, opts)
		close(events)
	}()

	model := ui.NewProgressModel("scaffolding "+dest, root.CountEntries(), events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	err := <-errCh
	if err == nil && uiErr != nil {
		err = uiErr
	}
	return err
}
