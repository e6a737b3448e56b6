package hyprland

import (
	"context"
	"fmt"

	"github.com/function61/hyprws/pkg/compositor"
	hyprgo "github.com/thiagokokada/hyprland-go"
)

func (c *Client) Monitors(_ context.Context) ([]compositor.Monitor, error) {
	monitors, err := c.requests.Monitors()
	if err != nil {
		return nil, fmt.Errorf("%w: monitors: %v", compositor.ErrQueryFailure, err)
	}

	return fromHyprMonitors(monitors), nil
}

// `monitors` (unlike `monitors all`) already leaves out disabled monitors
func fromHyprMonitors(hyprMonitors []hyprgo.Monitor) []compositor.Monitor {
	monitors := []compositor.Monitor{}
	for _, monitor := range hyprMonitors {
		// named and special workspaces have ids <= 0
		activeWorkspace := compositor.Special()
		if monitor.ActiveWorkspace.Id > 0 {
			activeWorkspace = compositor.Regular(monitor.ActiveWorkspace.Id)
		}

		monitors = append(monitors, compositor.Monitor{
			ID:              monitor.Id,
			Name:            monitor.Name,
			X:               monitor.X,
			Focused:         monitor.Focused,
			ActiveWorkspace: activeWorkspace,
		})
	}

	return monitors
}
