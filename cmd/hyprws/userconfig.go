package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/function61/gokit/encoding/jsonfile"
	"github.com/function61/gokit/os/osutil"
)

type UserconfigFile struct {
	Backend          string `json:"backend"`            // "" (autodetect) | "hyprland" | "i3"
	BarSelectedClass string `json:"bar_selected_class"` // CSS class for the bar's selected workspace. default "selected"
}

func (u UserconfigFile) Validate() error {
	if u.Backend != "" {
		var kind backendKind
		if err := kind.Set(u.Backend); err != nil {
			return err
		}
	}

	return nil
}

func userconfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "hyprws", "config.json"), nil
	}

	userHomedir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(userHomedir, ".config", "hyprws", "config.json"), nil
}

// if not found, returns default
func loadUserconfigFile() (*UserconfigFile, error) {
	confFilePath, err := userconfigPath()
	if err != nil {
		return nil, fmt.Errorf("loadUserconfigFile: %w", err)
	}

	exists, err := osutil.Exists(confFilePath)
	if err != nil {
		return nil, fmt.Errorf("loadUserconfigFile: %w", err)
	}

	conf := &UserconfigFile{}

	if !exists {
		// fully valid to run without user-specific config
		return conf, nil
	}

	if err := jsonfile.ReadDisallowUnknownFields(confFilePath, conf); err != nil {
		return nil, fmt.Errorf("loadUserconfigFile: %w", err)
	}

	return conf, maybeWrapErr("loadUserconfigFile: %w", conf.Validate())
}

func maybeWrapErr(formatString string, err error) error {
	if err != nil {
		return fmt.Errorf(formatString, err)
	}

	return nil
}
