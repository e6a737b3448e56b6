package main

import (
	"context"
	"log"
	"os"

	"github.com/function61/gokit/log/logex"
	"github.com/function61/gokit/os/osutil"
	"github.com/function61/hyprws/pkg/barstatus"
	"github.com/function61/hyprws/pkg/compositor"
	"github.com/function61/hyprws/pkg/reactor"
	"github.com/spf13/cobra"
)

func barEntry(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bar",
		Short: "Status bar feeds",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "workspace [workspace] [display]",
		Short: "Emit waybar-compatible JSON lines telling whether the workspace of the display is focused",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			rootLogger := logex.StandardLogger()

			osutil.ExitIfError(func() error {
				local, err := parseNumberArg("workspace", args[0])
				if err != nil {
					return err
				}

				display, err := parseNumberArg("display", args[1])
				if err != nil {
					return err
				}

				conf, comp, err := opts.setup(rootLogger)
				if err != nil {
					return err
				}

				emitter, err := barstatus.New(local, display, conf.BarSelectedClass, os.Stdout)
				if err != nil {
					return err
				}

				return barWorkspace(
					osutil.CancelOnInterruptOrTerminate(rootLogger),
					comp,
					emitter,
					rootLogger)
			}())
		},
	})

	return cmd
}

func barWorkspace(
	ctx context.Context,
	events compositor.EventSource,
	emitter *barstatus.Emitter,
	logger *log.Logger,
) error {
	return reactor.Run(ctx, events, barHandler(emitter, logger), logger)
}

func barHandler(emitter *barstatus.Emitter, logger *log.Logger) reactor.Handler {
	logl := logex.Levels(logex.Prefix("bar", logger))

	return func(_ context.Context, event compositor.Event) {
		if err := emitter.Handle(event); err != nil {
			logl.Error.Printf("%s: %v", event, err)
		}
	}
}
