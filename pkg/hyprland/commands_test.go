package hyprland

import (
	"strings"
	"testing"

	"github.com/function61/gokit/testing/assert"
	"github.com/function61/hyprws/pkg/compositor"
)

func TestCommandArgs(t *testing.T) {
	secondMonitor := compositor.Monitor{ID: 1, Name: "DP-1"}

	for _, tc := range []struct {
		input  compositor.Command
		output string
	}{
		{compositor.FocusWorkspace(5), "dispatch workspace 5"},
		{compositor.MoveToWorkspace(24), "dispatch movetoworkspace 24"},
		{compositor.FocusMonitor(secondMonitor), "dispatch focusmonitor 1"},
		{compositor.MoveWindowToMonitor(secondMonitor), "dispatch movewindow mon:1"},
		{compositor.BindWorkspace(31, "X"), "keyword wsbind 31,X"},
		{compositor.ActivateWorkspace(31, "X"), "keyword workspace X,31"},
		{compositor.BindWorkspace(1, "eDP-1"), "keyword wsbind 1,eDP-1"},
	} {
		tc := tc // pin

		t.Run(tc.output, func(t *testing.T) {
			args, err := CommandArgs(tc.input)
			assert.Ok(t, err)
			assert.EqualString(t, strings.Join(args, " "), tc.output)
		})
	}
}

func TestCommandArgsUnsupported(t *testing.T) {
	_, err := CommandArgs(compositor.Command{Kind: "reboot"})
	assert.EqualString(t, err.Error(), "unsupported command kind: reboot")
}

func TestShellCommand(t *testing.T) {
	args, err := ShellCommand(compositor.FocusWorkspace(12))
	assert.Ok(t, err)
	assert.EqualString(t, strings.Join(args, " "), "hyprctl dispatch workspace 12")
}
