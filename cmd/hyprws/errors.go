package main

import (
	"errors"
	"fmt"
)

var (
	ErrNoCompositor       = errors.New("no supported compositor detected (set HYPRLAND_INSTANCE_SIGNATURE, SWAYSOCK or I3SOCK, or use --backend)")
	ErrUnsupportedBackend = errors.New("unsupported backend; expected hyprland or i3")
	ErrNotAnInteger       = errors.New("not an integer")
)

func numberArgErr(argName string, value string) error {
	return fmt.Errorf("%s '%s': %w", argName, value, ErrNotAnInteger)
}
