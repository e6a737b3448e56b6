package compositor

import (
	"fmt"
)

// one of *MonitorAdded, *WorkspaceChanged, *ActiveMonitorChanged
type Event interface {
	event()
	String() string
}

type MonitorAdded struct {
	Name string
}

type WorkspaceChanged struct {
	Workspace Workspace
}

type ActiveMonitorChanged struct {
	MonitorName string
	Workspace   Workspace
}

var (
	_ Event = (*MonitorAdded)(nil)
	_ Event = (*WorkspaceChanged)(nil)
	_ Event = (*ActiveMonitorChanged)(nil)
)

func (*MonitorAdded) event()         {}
func (*WorkspaceChanged) event()     {}
func (*ActiveMonitorChanged) event() {}

func (e *MonitorAdded) String() string {
	return "monitoradded<" + e.Name + ">"
}

func (e *WorkspaceChanged) String() string {
	return fmt.Sprintf("workspace<%s>", e.Workspace)
}

func (e *ActiveMonitorChanged) String() string {
	return fmt.Sprintf("focusedmon<%s, %s>", e.MonitorName, e.Workspace)
}
