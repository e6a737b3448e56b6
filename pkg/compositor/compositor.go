// Compositor-agnostic vocabulary shared by the workspace/monitor logic and the IPC backends
// (Hyprland, i3/sway).
package compositor

import (
	"context"
	"errors"
)

var (
	ErrQueryFailure    = errors.New("query failed")
	ErrDispatchFailure = errors.New("dispatch failed")
)

// live snapshot of one output. never cache these: hot-plug can change the set and the ordering at any time.
type Monitor struct {
	ID              int
	Name            string // hardware/output identifier, e.g. "DP-1"
	X               int    // pixel offset, used for left-to-right ordering
	Focused         bool
	ActiveWorkspace Workspace
}

// stuff we need to ask the compositor
type Querier interface {
	Monitors(ctx context.Context) ([]Monitor, error)
}

// runs one command synchronously. failure reasons are wrapped in ErrDispatchFailure
type Dispatcher interface {
	Dispatch(ctx context.Context, cmd Command) error
}

// pushes events into out until ctx is canceled or the stream breaks. must not close out.
type EventSource interface {
	Events(ctx context.Context, out chan<- Event) error
}

type Compositor interface {
	Querier
	Dispatcher
	EventSource
}

// returns the monitor that currently has focus
func FocusedMonitor(monitors []Monitor) (*Monitor, bool) {
	for _, monitor := range monitors {
		if monitor.Focused {
			monitor := monitor
			return &monitor, true
		}
	}

	return nil, false
}

func MonitorByName(monitors []Monitor, name string) (*Monitor, bool) {
	for _, monitor := range monitors {
		if monitor.Name == name {
			monitor := monitor
			return &monitor, true
		}
	}

	return nil, false
}
