package compositor

import (
	"fmt"
)

type CommandKind string

const (
	CommandFocusWorkspace      CommandKind = "focus-workspace"
	CommandMoveToWorkspace     CommandKind = "move-to-workspace"
	CommandFocusMonitor        CommandKind = "focus-monitor"
	CommandMoveWindowToMonitor CommandKind = "move-window-to-monitor"
	CommandBindWorkspace       CommandKind = "bind-workspace"
	CommandActivateWorkspace   CommandKind = "activate-workspace"
)

// backends translate these to their own command language.
// Workspace is set for workspace-targeting kinds, Monitor (+MonitorName) for monitor-targeting
// ones. bind/activate use both: workspace number and monitor name.
type Command struct {
	Kind        CommandKind
	Workspace   int
	MonitorID   int
	MonitorName string
}

func FocusWorkspace(id int) Command {
	return Command{Kind: CommandFocusWorkspace, Workspace: id}
}

func MoveToWorkspace(id int) Command {
	return Command{Kind: CommandMoveToWorkspace, Workspace: id}
}

func FocusMonitor(monitor Monitor) Command {
	return Command{Kind: CommandFocusMonitor, MonitorID: monitor.ID, MonitorName: monitor.Name}
}

func MoveWindowToMonitor(monitor Monitor) Command {
	return Command{Kind: CommandMoveWindowToMonitor, MonitorID: monitor.ID, MonitorName: monitor.Name}
}

// associates workspace id with the named monitor
func BindWorkspace(id int, monitorName string) Command {
	return Command{Kind: CommandBindWorkspace, Workspace: id, MonitorName: monitorName}
}

// makes workspace id the one the named monitor shows
func ActivateWorkspace(id int, monitorName string) Command {
	return Command{Kind: CommandActivateWorkspace, Workspace: id, MonitorName: monitorName}
}

func (c Command) String() string {
	switch c.Kind {
	case CommandFocusWorkspace, CommandMoveToWorkspace:
		return fmt.Sprintf("%s %d", c.Kind, c.Workspace)
	case CommandFocusMonitor, CommandMoveWindowToMonitor:
		return fmt.Sprintf("%s %d (%s)", c.Kind, c.MonitorID, c.MonitorName)
	default:
		return fmt.Sprintf("%s %d %s", c.Kind, c.Workspace, c.MonitorName)
	}
}
