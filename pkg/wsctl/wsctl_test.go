package wsctl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/function61/gokit/testing/assert"
	"github.com/function61/hyprws/pkg/binder"
	"github.com/function61/hyprws/pkg/compositor"
	"github.com/function61/hyprws/pkg/monitorring"
	"github.com/function61/hyprws/pkg/wsaddr"
)

func TestFocusWorkspaceSingleMonitor(t *testing.T) {
	comp := &testCompositor{monitors: []compositor.Monitor{
		{ID: 0, Name: "eDP-1", Focused: true},
	}}

	assert.Ok(t, FocusWorkspace(context.Background(), comp, 5))
	assert.EqualString(t, comp.log(), "focus-workspace 5")
}

func TestWorkspaceOperationsUseRingOrdinal(t *testing.T) {
	ctx := context.Background()

	comp := &testCompositor{monitors: []compositor.Monitor{
		{ID: 0, Name: "eDP-1", X: 0},
		{ID: 1, Name: "DP-1", X: 1920, Focused: true},
	}}

	assert.Ok(t, FocusWorkspace(ctx, comp, 3))
	assert.Ok(t, MoveToWorkspace(ctx, comp, 9))
	assert.EqualString(t, comp.log(), "focus-workspace 23; move-to-workspace 29")
}

// the laptop panel is alone at first, then DP-1 gets plugged in to its right. the workspaces the
// binder gave the laptop must be the ones a workspace key still reaches afterwards.
func TestLaptopWorkspacesSurviveHotplug(t *testing.T) {
	ctx := context.Background()

	laptop := compositor.Monitor{ID: 0, Name: "eDP-1", X: 0, Focused: true}
	comp := &testCompositor{monitors: []compositor.Monitor{laptop}}
	monitorBinder := binder.New(comp)

	assert.Assert(t, monitorBinder.MonitorAdded(ctx, "eDP-1").OK())
	assert.EqualString(t, comp.dispatched[2], "bind-workspace 3 eDP-1")

	comp.monitors = []compositor.Monitor{laptop, {ID: 1, Name: "DP-1", X: 1920}}
	comp.dispatched = nil

	assert.Assert(t, monitorBinder.MonitorAdded(ctx, "DP-1").OK())
	assert.EqualString(t, comp.dispatched[0], "bind-workspace 21 DP-1")

	comp.dispatched = nil

	assert.Ok(t, FocusWorkspace(ctx, comp, 3))
	assert.EqualString(t, comp.log(), "focus-workspace 3")
}

func TestFocusWorkspaceInvalid(t *testing.T) {
	comp := &testCompositor{monitors: []compositor.Monitor{
		{ID: 0, Name: "eDP-1", Focused: true},
	}}

	err := FocusWorkspace(context.Background(), comp, 10)
	assert.Assert(t, errors.Is(err, wsaddr.ErrInvalidWorkspace))
	assert.EqualString(t, comp.log(), "")
}

func TestQueryFailureIsNotDispatched(t *testing.T) {
	comp := &testCompositor{queryErr: fmt.Errorf("%w: socket gone", compositor.ErrQueryFailure)}

	err := MoveToWorkspace(context.Background(), comp, 1)
	assert.Assert(t, errors.Is(err, compositor.ErrQueryFailure))
	assert.EqualString(t, comp.log(), "")
}

func TestNoFocusedMonitor(t *testing.T) {
	comp := &testCompositor{monitors: []compositor.Monitor{
		{ID: 0, Name: "eDP-1"},
	}}

	err := FocusMonitor(context.Background(), comp, monitorring.Right)
	assert.Assert(t, errors.Is(err, monitorring.ErrMonitorNotFound))
}

func TestDisplayOperations(t *testing.T) {
	ctx := context.Background()

	comp := &testCompositor{monitors: []compositor.Monitor{
		{ID: 2, Name: "HDMI-A-1", X: 3840},
		{ID: 0, Name: "eDP-1", X: 0, Focused: true},
		{ID: 1, Name: "DP-1", X: 1920},
	}}

	assert.Ok(t, FocusMonitor(ctx, comp, monitorring.Right))
	assert.Ok(t, FocusMonitor(ctx, comp, monitorring.Left))
	assert.Ok(t, MoveWindowToMonitor(ctx, comp, monitorring.Left))
	assert.EqualString(t, comp.log(), "focus-monitor 1 (DP-1); focus-monitor 2 (HDMI-A-1); move-window-to-monitor 2 (HDMI-A-1)")
}

func TestDispatchFailurePropagates(t *testing.T) {
	comp := &testCompositor{
		monitors: []compositor.Monitor{
			{ID: 0, Name: "eDP-1", Focused: true},
		},
		dispatchErr: fmt.Errorf("%w: Invalid dispatcher", compositor.ErrDispatchFailure),
	}

	err := FocusMonitor(context.Background(), comp, monitorring.Left)
	assert.Assert(t, errors.Is(err, compositor.ErrDispatchFailure))
}

type testCompositor struct {
	monitors    []compositor.Monitor
	queryErr    error
	dispatchErr error
	dispatched  []string
}

func (c *testCompositor) Monitors(_ context.Context) ([]compositor.Monitor, error) {
	if c.queryErr != nil {
		return nil, c.queryErr
	}

	return c.monitors, nil
}

func (c *testCompositor) Dispatch(_ context.Context, cmd compositor.Command) error {
	c.dispatched = append(c.dispatched, cmd.String())
	return c.dispatchErr
}

func (c *testCompositor) log() string {
	return strings.Join(c.dispatched, "; ")
}
