package main

// Monitor-aware workspaces: every display owns workspaces 1..9 of its own, addressed by the
// display's left-to-right position.
//
//     $ hyprws workspace focus 3   # 3rd workspace of the focused display
//     $ hyprws display focus R     # focus display on the right, wraps around
//     $ hyprws display listener    # bind workspaces for hot-plugged displays
//     $ hyprws bar workspace 4 2   # waybar feed for 4th workspace of the 2nd display

import (
	"log"
	"os"
	"strconv"

	"github.com/function61/gokit/os/osutil"
	"github.com/spf13/cobra"
)

var version = "dev" // replaced dynamically at build time

func main() {
	opts := &globalOptions{}

	app := &cobra.Command{
		Use:     os.Args[0],
		Short:   "Monitor-aware workspaces for Hyprland (and i3/sway)",
		Version: version,
	}

	app.PersistentFlags().VarP(&opts.backend, "backend", "b", "Compositor backend (hyprland|i3). Autodetected if not given")
	app.PersistentFlags().BoolVarP(&opts.dryRun, "dry-run", "n", opts.dryRun, "Print compositor commands instead of running them")

	app.AddCommand(workspaceEntry(opts))
	app.AddCommand(displayEntry(opts))
	app.AddCommand(barEntry(opts))

	osutil.ExitIfError(app.Execute())
}

func (g *globalOptions) setup(logger *log.Logger) (*UserconfigFile, backend, error) {
	conf, err := loadUserconfigFile()
	if err != nil {
		return nil, nil, err
	}

	comp, err := g.resolveBackend(conf, logger)
	if err != nil {
		return nil, nil, err
	}

	return conf, comp, nil
}

func parseNumberArg(argName string, value string) (int, error) {
	number, err := strconv.Atoi(value)
	if err != nil {
		return 0, numberArgErr(argName, value)
	}

	return number, nil
}
