package main

// hyprws talks to the compositor through one of the backends. Hyprland is the primary one, the
// i3/sway one covers what the i3 IPC can express.

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"al.essio.dev/pkg/shellescape"
	"github.com/function61/hyprws/pkg/compositor"
	"github.com/function61/hyprws/pkg/hyprland"
	"github.com/function61/hyprws/pkg/i3ipc"
	"github.com/spf13/pflag"
)

type backend interface {
	compositor.Compositor
	// the command as you'd run it from a shell (for dry runs)
	ShellCommand(cmd compositor.Command) ([]string, error)
}

var (
	_ backend = (*hyprland.Client)(nil)
	_ backend = (*i3ipc.Client)(nil)
)

type backendKind string

const (
	backendAutodetect backendKind = ""
	backendHyprland   backendKind = "hyprland"
	backendI3         backendKind = "i3"
)

var _ pflag.Value = (*backendKind)(nil)

func (b *backendKind) String() string {
	return string(*b)
}

func (b *backendKind) Set(value string) error {
	switch kind := backendKind(strings.ToLower(value)); kind {
	case backendHyprland, backendI3:
		*b = kind
		return nil
	case "sway":
		*b = backendI3
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedBackend, value)
	}
}

func (b *backendKind) Type() string {
	return "backend"
}

// flags shared by all commands
type globalOptions struct {
	backend backendKind
	dryRun  bool
}

// flag beats config beats autodetect
func (g *globalOptions) resolveBackendKind(conf *UserconfigFile) (backendKind, error) {
	if g.backend != backendAutodetect {
		return g.backend, nil
	}

	if conf.Backend != "" {
		var kind backendKind
		if err := kind.Set(conf.Backend); err != nil {
			return backendAutodetect, err
		}

		return kind, nil
	}

	switch {
	case hyprland.IsRunning():
		return backendHyprland, nil
	case i3ipc.IsRunning():
		return backendI3, nil
	default:
		return backendAutodetect, ErrNoCompositor
	}
}

func (g *globalOptions) resolveBackend(conf *UserconfigFile, logger *log.Logger) (backend, error) {
	kind, err := g.resolveBackendKind(conf)
	if err != nil {
		return nil, err
	}

	var comp backend
	switch kind {
	case backendHyprland:
		client, err := hyprland.NewFromEnv()
		if err != nil {
			return nil, err
		}
		comp = client
	case backendI3:
		comp = i3ipc.NewFromEnv(logger)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBackend, kind)
	}

	if g.dryRun {
		return &dryRunBackend{comp, os.Stdout}, nil
	}

	return comp, nil
}

// queries (and events) still go to the compositor, but commands only get printed
type dryRunBackend struct {
	backend
	output io.Writer
}

func (d *dryRunBackend) Dispatch(_ context.Context, cmd compositor.Command) error {
	shellCmd, err := d.ShellCommand(cmd)
	if err != nil {
		return fmt.Errorf("%w: %v", compositor.ErrDispatchFailure, err)
	}

	_, err = fmt.Fprintln(d.output, shellescape.QuoteCommand(shellCmd))
	return err
}
