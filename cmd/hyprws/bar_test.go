package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/function61/gokit/log/logex"
	"github.com/function61/gokit/testing/assert"
	"github.com/function61/hyprws/pkg/barstatus"
	"github.com/function61/hyprws/pkg/compositor"
)

func TestBarWorkspace(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	output := &bytes.Buffer{}

	emitter, err := barstatus.New(4, 2, "", output)
	assert.Ok(t, err)

	events := &cancelAfterEvents{
		events: []compositor.Event{
			&compositor.WorkspaceChanged{Workspace: compositor.Regular(24)},
			&compositor.ActiveMonitorChanged{MonitorName: "DP-2", Workspace: compositor.Regular(31)},
			&compositor.WorkspaceChanged{Workspace: compositor.Special()},
		},
		cancel: cancel,
	}

	assert.Ok(t, barWorkspace(ctx, events, emitter, logex.Discard))

	assert.EqualString(t, output.String(), `{"text":" 4 ","class":["selected"]}
{"text":" 4 ","class":[""]}
`)
}

// delivers events, asks to stop, then waits for the stop
type cancelAfterEvents struct {
	events []compositor.Event
	cancel context.CancelFunc
}

func (c *cancelAfterEvents) Events(ctx context.Context, out chan<- compositor.Event) error {
	for _, event := range c.events {
		out <- event
	}

	c.cancel()
	<-ctx.Done()
	return nil
}
