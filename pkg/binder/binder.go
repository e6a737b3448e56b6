// Reacts to a monitor being attached by binding workspaces 1..9 of that monitor's address
// range to it, and then switching it to its first workspace.
//
// Bindings are best effort, not atomic: each command is attempted independently and its outcome
// recorded in the Report, so that the compositor rejecting one binding doesn't lose the rest.
package binder

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

// outcome of one command issued on behalf of a monitor-attached event
type Result struct {
	Command compositor.Command
	Err     error
}

type Report struct {
	Monitor string
	Err     error // set if the reaction was aborted before issuing any commands
	Results []Result
}

func (r Report) Failures() []Result {
	failures := []Result{}
	for _, result := range r.Results {
		if result.Err != nil {
			failures = append(failures, result)
		}
	}
	return failures
}

func (r Report) OK() bool {
	return r.Err == nil && len(r.Failures()) == 0
}

type Binder struct {
	comp Compositor
}

func New(comp Compositor) *Binder {
	return &Binder{comp}
}

// never returns an error, everything that went wrong is in the Report
func (b *Binder) MonitorAdded(ctx context.Context, name string) Report {
	report := Report{Monitor: name}

	// must reflect post-attach reality (monitor positions may have changed), so no caching
	monitors, err := b.comp.Monitors(ctx)
	if err != nil {
		report.Err = err
		return report
	}

	if _, found := compositor.MonitorByName(monitors, name); !found {
		report.Err = fmt.Errorf("%w: %s", monitorring.ErrMonitorNotFound, name)
		return report
	}

	ordinal, err := monitorring.New(monitors).Ordinal(name)
	if err != nil {
		report.Err = err
		return report
	}

	cmds, err := Plan(ordinal, name)
	if err != nil {
		report.Err = err
		return report
	}

	for _, cmd := range cmds {
		report.Results = append(report.Results, Result{
			Command: cmd,
			Err:     b.comp.Dispatch(ctx, cmd),
		})
	}

	return report
}

// binds for local workspaces 1..9, then activation of local workspace 1
func Plan(ordinal int, monitorName string) ([]compositor.Command, error) {
	cmds := []compositor.Command{}

	for local := wsaddr.MinLocal; local <= wsaddr.MaxLocal; local++ {
		id, err := wsaddr.Encode(ordinal, local)
		if err != nil {
			return nil, err
		}

		cmds = append(cmds, compositor.BindWorkspace(id, monitorName))
	}

	first, err := wsaddr.Encode(ordinal, wsaddr.MinLocal)
	if err != nil {
		return nil, err
	}

	return append(cmds, compositor.ActivateWorkspace(first, monitorName)), nil
}
