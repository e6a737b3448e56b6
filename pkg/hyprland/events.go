package hyprland

import (
	"context"
	"errors"

	"github.com/function61/hyprws/pkg/compositor"
	"github.com/thiagokokada/hyprland-go/event"
)

var errEventStreamEnded = errors.New("event socket closed by Hyprland")

// streams events until ctx is canceled
func (c *Client) Events(ctx context.Context, out chan<- compositor.Event) error {
	streamCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	return c.subscribe(
		streamCtx,
		&eventHandler{ctx: streamCtx, out: out},
		event.EventMonitorAdded,
		event.EventWorkspace,
		event.EventFocusedMonitor)
}

// translates hyprland-go's callbacks into compositor events. everything we didn't subscribe to
// goes to the embedded no-op handler.
type eventHandler struct {
	event.DefaultEventHandler
	ctx context.Context
	out chan<- compositor.Event
}

var _ event.EventHandler = (*eventHandler)(nil)

func (h *eventHandler) MonitorAdded(m event.MonitorName) {
	if m == "" {
		return
	}

	h.send(&compositor.MonitorAdded{Name: string(m)})
}

func (h *eventHandler) Workspace(w event.WorkspaceName) {
	h.send(&compositor.WorkspaceChanged{Workspace: compositor.ParseWorkspaceName(string(w))})
}

func (h *eventHandler) FocusedMonitor(m event.FocusedMonitor) {
	h.send(&compositor.ActiveMonitorChanged{
		MonitorName: string(m.MonitorName),
		Workspace:   compositor.ParseWorkspaceName(string(m.WorkspaceName)),
	})
}

// drops the event once the stream is being torn down
func (h *eventHandler) send(ev compositor.Event) {
	select {
	case h.out <- ev:
	case <-h.ctx.Done():
	}
}

func subscribeFromEnv(ctx context.Context, handler event.EventHandler, eventTypes ...event.EventType) error {
	client, err := fromMust(event.MustClient)
	if err != nil {
		return err
	}

	streamCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		<-streamCtx.Done()
		_ = client.Close() // unblocks Subscribe()
	}()

	err = client.Subscribe(streamCtx, handler, eventTypes...)

	if ctx.Err() != nil { // we closed it
		return nil
	}

	if err != nil {
		return err
	}

	return errEventStreamEnded
}
