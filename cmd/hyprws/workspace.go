package main

import (
	"context"

	"github.com/function61/gokit/log/logex"
	"github.com/function61/gokit/os/osutil"
	"github.com/function61/hyprws/pkg/wsctl"
	"github.com/spf13/cobra"
)

func workspaceEntry(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workspace",
		Short: "Workspace related commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "focus [workspace]",
		Short: "Focus workspace (1-9) of the focused display",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			osutil.ExitIfError(workspaceOneShot(
				osutil.CancelOnInterruptOrTerminate(nil),
				opts,
				args[0],
				wsctl.FocusWorkspace))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "move [workspace]",
		Short: "Move the focused window to workspace (1-9) of the focused display",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			osutil.ExitIfError(workspaceOneShot(
				osutil.CancelOnInterruptOrTerminate(nil),
				opts,
				args[0],
				wsctl.MoveToWorkspace))
		},
	})

	return cmd
}

func workspaceOneShot(
	ctx context.Context,
	opts *globalOptions,
	localArg string,
	operation func(context.Context, wsctl.Compositor, int) error,
) error {
	local, err := parseNumberArg("workspace", localArg)
	if err != nil {
		return err
	}

	_, comp, err := opts.setup(logex.StandardLogger())
	if err != nil {
		return err
	}

	return operation(ctx, comp, local)
}
