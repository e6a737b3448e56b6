// One-shot operations: query the live monitors, compute the target, dispatch once.
package wsctl

import (
	"context"
	"fmt"

	"github.com/function61/hyprws/pkg/compositor"
	"github.com/function61/hyprws/pkg/monitorring"
	"github.com/function61/hyprws/pkg/wsaddr"
)

type Compositor interface {
	compositor.Querier
	compositor.Dispatcher
}

// switches to local workspace of the focused monitor
func FocusWorkspace(ctx context.Context, comp Compositor, local int) error {
	id, err := focusedMonitorWorkspace(ctx, comp, local)
	if err != nil {
		return fmt.Errorf("FocusWorkspace: %w", err)
	}

	return comp.Dispatch(ctx, compositor.FocusWorkspace(id))
}

// moves the focused window to local workspace of the focused monitor
func MoveToWorkspace(ctx context.Context, comp Compositor, local int) error {
	id, err := focusedMonitorWorkspace(ctx, comp, local)
	if err != nil {
		return fmt.Errorf("MoveToWorkspace: %w", err)
	}

	return comp.Dispatch(ctx, compositor.MoveToWorkspace(id))
}

func FocusMonitor(ctx context.Context, comp Compositor, direction monitorring.Direction) error {
	next, err := neighbourOfFocused(ctx, comp, direction)
	if err != nil {
		return fmt.Errorf("FocusMonitor: %w", err)
	}

	return comp.Dispatch(ctx, compositor.FocusMonitor(*next))
}

func MoveWindowToMonitor(ctx context.Context, comp Compositor, direction monitorring.Direction) error {
	next, err := neighbourOfFocused(ctx, comp, direction)
	if err != nil {
		return fmt.Errorf("MoveWindowToMonitor: %w", err)
	}

	return comp.Dispatch(ctx, compositor.MoveWindowToMonitor(*next))
}

func focusedMonitorWorkspace(ctx context.Context, comp compositor.Querier, local int) (int, error) {
	ring, focused, err := snapshot(ctx, comp)
	if err != nil {
		return 0, err
	}

	ordinal, err := ring.Ordinal(focused.Name)
	if err != nil {
		return 0, err
	}

	return wsaddr.Encode(ordinal, local)
}

func neighbourOfFocused(
	ctx context.Context,
	comp compositor.Querier,
	direction monitorring.Direction,
) (*compositor.Monitor, error) {
	ring, focused, err := snapshot(ctx, comp)
	if err != nil {
		return nil, err
	}

	return ring.Next(focused.ID, direction)
}

func snapshot(ctx context.Context, comp compositor.Querier) (*monitorring.Ring, *compositor.Monitor, error) {
	monitors, err := comp.Monitors(ctx)
	if err != nil {
		return nil, nil, err
	}

	focused, found := compositor.FocusedMonitor(monitors)
	if !found {
		return nil, nil, fmt.Errorf("%w: no focused monitor", monitorring.ErrMonitorNotFound)
	}

	return monitorring.New(monitors), focused, nil
}
