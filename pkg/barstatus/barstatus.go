// Feeds a bar (waybar "custom" module with `return-type: json`) one status line per workspace
// focus change, telling whether the watched workspace of the watched display is the focused one.
package barstatus

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/function61/hyprws/pkg/compositor"
	"github.com/function61/hyprws/pkg/wsaddr"
)

const DefaultSelectedClass = "selected"

// one line of output. Class always has exactly one element.
type Record struct {
	Text  string   `json:"text"`
	Class []string `json:"class"`
}

type Emitter struct {
	target        int // composite id, computed once
	label         string
	selectedClass string
	output        io.Writer
}

// display is the monitor ordinal, local the workspace number on that display
func New(local int, display int, selectedClass string, output io.Writer) (*Emitter, error) {
	target, err := wsaddr.Encode(display, local)
	if err != nil {
		return nil, fmt.Errorf("barstatus: %w", err)
	}

	if selectedClass == "" {
		selectedClass = DefaultSelectedClass
	}

	return &Emitter{
		target:        target,
		label:         fmt.Sprintf(" %d ", local),
		selectedClass: selectedClass,
		output:        output,
	}, nil
}

func (e *Emitter) Target() int {
	return e.target
}

// returns nil record for workspaces that are not shown on the bar
func (e *Emitter) RecordFor(workspace compositor.Workspace) *Record {
	if workspace.Special {
		return nil
	}

	class := ""
	if workspace.ID == e.target {
		class = e.selectedClass
	}

	return &Record{
		Text:  e.label,
		Class: []string{class},
	}
}

// handles both workspace-changed and active-monitor-changed, as either can be the first signal
// after a switch. no deduplication: each event gets its own line.
func (e *Emitter) Handle(event compositor.Event) error {
	switch ev := event.(type) {
	case *compositor.WorkspaceChanged:
		return e.Emit(ev.Workspace)
	case *compositor.ActiveMonitorChanged:
		return e.Emit(ev.Workspace)
	default:
		return nil
	}
}

func (e *Emitter) Emit(workspace compositor.Workspace) error {
	record := e.RecordFor(workspace)
	if record == nil {
		return nil
	}

	line, err := json.Marshal(record)
	if err != nil {
		return err
	}

	// single write per line so a pipe reader never sees a partial record
	_, err = e.output.Write(append(line, '\n'))
	return err
}
