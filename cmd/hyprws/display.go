package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/function61/gokit/app/cli"
	"github.com/function61/gokit/log/logex"
	"github.com/function61/gokit/os/osutil"
	"github.com/function61/hyprws/pkg/binder"
	"github.com/function61/hyprws/pkg/compositor"
	"github.com/function61/hyprws/pkg/monitorring"
	"github.com/function61/hyprws/pkg/reactor"
	"github.com/function61/hyprws/pkg/wsaddr"
	"github.com/function61/hyprws/pkg/wsctl"
	"github.com/scylladb/termtables"
	"github.com/spf13/cobra"
)

func displayEntry(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "display",
		Short: "Display (monitor) related commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "focus [L|R]",
		Short: "Focus the next display in given direction, wraps around",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			osutil.ExitIfError(displayOneShot(
				osutil.CancelOnInterruptOrTerminate(nil),
				opts,
				args[0],
				wsctl.FocusMonitor))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "move [L|R]",
		Short: "Move the focused window to the next display in given direction, wraps around",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			osutil.ExitIfError(displayOneShot(
				osutil.CancelOnInterruptOrTerminate(nil),
				opts,
				args[0],
				wsctl.MoveWindowToMonitor))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "listener",
		Short: "Listen for attached displays and bind workspaces for them",
		Args:  cobra.NoArgs,
		Run: cli.RunnerNoArgs(func(ctx context.Context, logger *log.Logger) error {
			_, comp, err := opts.setup(logger)
			if err != nil {
				return err
			}

			return displayListener(ctx, comp, logger)
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List displays in left-to-right order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			osutil.ExitIfError(func() error {
				_, comp, err := opts.setup(logex.StandardLogger())
				if err != nil {
					return err
				}

				return displayList(osutil.CancelOnInterruptOrTerminate(nil), comp, os.Stdout)
			}())
		},
	})

	return cmd
}

func displayOneShot(
	ctx context.Context,
	opts *globalOptions,
	directionArg string,
	operation func(context.Context, wsctl.Compositor, monitorring.Direction) error,
) error {
	direction, err := monitorring.ParseDirection(directionArg)
	if err != nil {
		return err
	}

	_, comp, err := opts.setup(logex.StandardLogger())
	if err != nil {
		return err
	}

	return operation(ctx, comp, direction)
}

// runs until ctx is canceled (or the event stream breaks)
func displayListener(ctx context.Context, comp compositor.Compositor, logger *log.Logger) error {
	logl := logex.Levels(logex.Prefix("listener", logger))

	logl.Info.Println("listening for attached displays")

	return reactor.Run(ctx, comp, monitorAddedHandler(binder.New(comp), logger), logger)
}

func monitorAddedHandler(monitorBinder *binder.Binder, logger *log.Logger) reactor.Handler {
	logl := logex.Levels(logex.Prefix("binder", logger))

	return func(ctx context.Context, event compositor.Event) {
		added, is := event.(*compositor.MonitorAdded)
		if !is {
			return
		}

		report := monitorBinder.MonitorAdded(ctx, added.Name)

		if report.Err != nil {
			logl.Error.Printf("%s: %v", report.Monitor, report.Err)
			return
		}

		failures := report.Failures()
		for _, failure := range failures {
			logl.Error.Printf("%s: %v", report.Monitor, failure.Err)
		}

		logl.Info.Printf(
			"%s: %d/%d commands succeeded",
			report.Monitor,
			len(report.Results)-len(failures),
			len(report.Results))
	}
}

func displayList(ctx context.Context, comp compositor.Querier, output io.Writer) error {
	monitors, err := comp.Monitors(ctx)
	if err != nil {
		return err
	}

	ring := monitorring.New(monitors)

	tbl := termtables.CreateTable()
	tbl.AddHeaders("Ordinal", "ID", "Name", "X", "Focused", "Workspace")

	for _, monitor := range ring.Monitors() {
		ordinal, err := ring.Ordinal(monitor.Name)
		if err != nil {
			return err
		}

		focused := ""
		if monitor.Focused {
			focused = "✓"
		}

		tbl.AddRow(ordinal, monitor.ID, monitor.Name, monitor.X, focused, describeWorkspace(monitor.ActiveWorkspace))
	}

	_, err = fmt.Fprint(output, tbl.Render())
	return err
}

// "24 (display 2, #4)"
func describeWorkspace(workspace compositor.Workspace) string {
	if workspace.Special {
		return "special"
	}

	addr, err := wsaddr.Decode(workspace.ID)
	if err != nil {
		return fmt.Sprintf("%d", workspace.ID)
	}

	return fmt.Sprintf("%d (display %d, #%d)", workspace.ID, addr.Ordinal, addr.Local)
}
