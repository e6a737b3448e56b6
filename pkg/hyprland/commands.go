package hyprland

import (
	"fmt"
	"strconv"

	"github.com/function61/hyprws/pkg/compositor"
)

// translates to hyprctl-style arguments, e.g. ["dispatch", "workspace", "31"]
func CommandArgs(cmd compositor.Command) ([]string, error) {
	switch cmd.Kind {
	case compositor.CommandFocusWorkspace:
		return []string{"dispatch", "workspace", strconv.Itoa(cmd.Workspace)}, nil
	case compositor.CommandMoveToWorkspace:
		return []string{"dispatch", "movetoworkspace", strconv.Itoa(cmd.Workspace)}, nil
	case compositor.CommandFocusMonitor:
		return []string{"dispatch", "focusmonitor", strconv.Itoa(cmd.MonitorID)}, nil
	case compositor.CommandMoveWindowToMonitor:
		return []string{"dispatch", "movewindow", "mon:" + strconv.Itoa(cmd.MonitorID)}, nil
	case compositor.CommandBindWorkspace:
		return []string{"keyword", "wsbind", fmt.Sprintf("%d,%s", cmd.Workspace, cmd.MonitorName)}, nil
	case compositor.CommandActivateWorkspace:
		// monitor's default workspace
		return []string{"keyword", "workspace", fmt.Sprintf("%s,%d", cmd.MonitorName, cmd.Workspace)}, nil
	default:
		return nil, fmt.Errorf("unsupported command kind: %s", cmd.Kind)
	}
}

// as you'd type it in a shell
func ShellCommand(cmd compositor.Command) ([]string, error) {
	args, err := CommandArgs(cmd)
	if err != nil {
		return nil, err
	}

	return append([]string{"hyprctl"}, args...), nil
}

func (c *Client) ShellCommand(cmd compositor.Command) ([]string, error) {
	return ShellCommand(cmd)
}
