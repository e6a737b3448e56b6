// i3/sway backend. i3 has no numeric output ids, so outputs are identified by their index in
// i3's output list (active outputs only).
package i3ipc

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/function61/gokit/log/logex"
	"github.com/function61/hyprws/pkg/compositor"
	"go.i3wm.org/i3/v4"
)

// the subset of go.i3wm.org/i3 we use, so tests can swap it out
type ipc interface {
	GetOutputs() ([]i3.Output, error)
	GetWorkspaces() ([]i3.Workspace, error)
	RunCommand(command string) ([]i3.CommandResult, error)
	Subscribe(eventTypes ...i3.EventType) eventReceiver
}

type eventReceiver interface {
	Next() bool
	Event() i3.Event
	Close() error
}

type Client struct {
	ipc  ipc
	sway bool
	logl *logex.Leveled
}

var _ compositor.Compositor = (*Client)(nil)

func IsRunning() bool {
	return os.Getenv("SWAYSOCK") != "" || os.Getenv("I3SOCK") != ""
}

func NewFromEnv(logger *log.Logger) *Client {
	swaySock := os.Getenv("SWAYSOCK")
	if swaySock != "" {
		// the library would otherwise ask `$ i3 --get-socketpath`
		i3.SocketPathHook = func() (string, error) {
			return swaySock, nil
		}
	}

	return newClient(i3lib{}, swaySock != "", logger)
}

func newClient(ipc ipc, sway bool, logger *log.Logger) *Client {
	return &Client{
		ipc:  ipc,
		sway: sway,
		logl: logex.Levels(logex.Prefix("i3ipc", logger)),
	}
}

func (c *Client) Monitors(_ context.Context) ([]compositor.Monitor, error) {
	outputs, err := c.ipc.GetOutputs()
	if err != nil {
		return nil, fmt.Errorf("%w: outputs: %v", compositor.ErrQueryFailure, err)
	}

	workspaces, err := c.ipc.GetWorkspaces()
	if err != nil {
		return nil, fmt.Errorf("%w: workspaces: %v", compositor.ErrQueryFailure, err)
	}

	focusedWorkspace := ""
	workspaceNums := map[string]int64{}
	for _, ws := range workspaces {
		workspaceNums[ws.Name] = ws.Num

		if ws.Focused {
			focusedWorkspace = ws.Name
		}
	}

	monitors := []compositor.Monitor{}
	for _, output := range activeOutputs(outputs) {
		activeWorkspace := compositor.Special()
		if num, found := workspaceNums[output.CurrentWorkspace]; found && num > 0 { // named workspaces have num -1
			activeWorkspace = compositor.Regular(int(num))
		}

		monitors = append(monitors, compositor.Monitor{
			ID:              len(monitors),
			Name:            output.Name,
			X:               int(output.Rect.X),
			Focused:         output.CurrentWorkspace != "" && output.CurrentWorkspace == focusedWorkspace,
			ActiveWorkspace: activeWorkspace,
		})
	}

	return monitors, nil
}

func (c *Client) Dispatch(_ context.Context, cmd compositor.Command) error {
	command, err := CommandLine(cmd)
	if err != nil {
		return fmt.Errorf("%w: %v", compositor.ErrDispatchFailure, err)
	}

	results, err := c.ipc.RunCommand(command)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", compositor.ErrDispatchFailure, cmd, err)
	}

	for _, result := range results {
		if !result.Success {
			return fmt.Errorf("%w: %s: %s", compositor.ErrDispatchFailure, cmd, result.Error)
		}
	}

	return nil
}

// as you'd type it in a shell
func (c *Client) ShellCommand(cmd compositor.Command) ([]string, error) {
	command, err := CommandLine(cmd)
	if err != nil {
		return nil, err
	}

	if c.sway {
		return []string{"swaymsg", command}, nil
	}

	return []string{"i3-msg", command}, nil
}

func CommandLine(cmd compositor.Command) (string, error) {
	switch cmd.Kind {
	case compositor.CommandFocusWorkspace:
		return fmt.Sprintf("workspace number %d", cmd.Workspace), nil
	case compositor.CommandMoveToWorkspace:
		return fmt.Sprintf("move container to workspace number %d", cmd.Workspace), nil
	case compositor.CommandFocusMonitor:
		return fmt.Sprintf(`focus output "%s"`, i3EscapeQuotes(cmd.MonitorName)), nil
	case compositor.CommandMoveWindowToMonitor:
		return fmt.Sprintf(`move container to output "%s"`, i3EscapeQuotes(cmd.MonitorName)), nil
	case compositor.CommandBindWorkspace:
		// works at runtime in sway. i3 only accepts this in its config file, and its rejection
		// gets logged by the binder
		return fmt.Sprintf(`workspace %d output "%s"`, cmd.Workspace, i3EscapeQuotes(cmd.MonitorName)), nil
	case compositor.CommandActivateWorkspace:
		return fmt.Sprintf(
			`focus output "%s"; workspace number %d`,
			i3EscapeQuotes(cmd.MonitorName),
			cmd.Workspace), nil
	default:
		return "", fmt.Errorf("unsupported command kind: %s", cmd.Kind)
	}
}

// "3", "3: web" => Regular(3). i3's scratchpad and names without a number prefix are Special.
func workspaceFromName(name string) compositor.Workspace {
	digits := len(name) - len(strings.TrimLeft(name, "0123456789"))

	num, err := strconv.Atoi(name[:digits])
	if err != nil || num < 1 {
		return compositor.Special()
	}

	return compositor.Regular(num)
}

func activeOutputs(outputs []i3.Output) []i3.Output {
	active := []i3.Output{}
	for _, output := range outputs {
		// i3 reports a virtual "xroot-0" output which is never active
		if output.Active {
			active = append(active, output)
		}
	}
	return active
}

func i3EscapeQuotes(input string) string {
	return strings.ReplaceAll(input, `"`, `\"`)
}

type i3lib struct{}

func (i3lib) GetOutputs() ([]i3.Output, error) {
	return i3.GetOutputs()
}

func (i3lib) GetWorkspaces() ([]i3.Workspace, error) {
	return i3.GetWorkspaces()
}

func (i3lib) RunCommand(command string) ([]i3.CommandResult, error) {
	return i3.RunCommand(command)
}

func (i3lib) Subscribe(eventTypes ...i3.EventType) eventReceiver {
	return i3.Subscribe(eventTypes...)
}
