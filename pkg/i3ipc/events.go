package i3ipc

import (
	"context"
	"errors"

	"github.com/function61/hyprws/pkg/compositor"
	"go.i3wm.org/i3/v4"
)

// i3's output events carry no details, so attached monitors are found by diffing the set of
// active outputs against the previous one
func (c *Client) Events(ctx context.Context, out chan<- compositor.Event) error {
	known, err := c.activeOutputNames()
	if err != nil {
		return err
	}

	recv := c.ipc.Subscribe(i3.WorkspaceEventType, i3.OutputEventType)

	streamCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		<-streamCtx.Done()
		_ = recv.Close() // unblocks Next()
	}()

	send := func(event compositor.Event) bool {
		select {
		case out <- event:
			return true
		case <-streamCtx.Done():
			return false
		}
	}

	for recv.Next() {
		switch ev := recv.Event().(type) {
		case *i3.WorkspaceEvent:
			if ev.Change != "focus" {
				continue
			}

			if !send(&compositor.WorkspaceChanged{Workspace: workspaceFromName(ev.Current.Name)}) {
				return nil
			}
		case *i3.OutputEvent:
			current, err := c.activeOutputNames()
			if err != nil {
				// keep the previous set so the attached output still shows up as new on the
				// next output event
				c.logl.Error.Printf("output event: %v", err)
				continue
			}

			for _, name := range current {
				if !contains(known, name) {
					if !send(&compositor.MonitorAdded{Name: name}) {
						return nil
					}
				}
			}

			known = current
		}
	}

	if ctx.Err() != nil {
		return nil
	}

	if err := recv.Close(); err != nil {
		return err
	}

	return errors.New("i3 event stream ended")
}

func (c *Client) activeOutputNames() ([]string, error) {
	outputs, err := c.ipc.GetOutputs()
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, output := range activeOutputs(outputs) {
		names = append(names, output.Name)
	}
	return names, nil
}

func contains(items []string, item string) bool {
	for _, candidate := range items {
		if candidate == item {
			return true
		}
	}
	return false
}
