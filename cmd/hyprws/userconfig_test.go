package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/function61/gokit/testing/assert"
)

func TestLoadUserconfigFileMissingIsDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	conf, err := loadUserconfigFile()
	assert.Ok(t, err)
	assert.EqualString(t, conf.Backend, "")
	assert.EqualString(t, conf.BarSelectedClass, "")
}

func TestLoadUserconfigFile(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	writeUserconfig(t, configHome, `{"backend": "i3", "bar_selected_class": "focused"}`)

	conf, err := loadUserconfigFile()
	assert.Ok(t, err)
	assert.EqualString(t, conf.Backend, "i3")
	assert.EqualString(t, conf.BarSelectedClass, "focused")
}

func TestLoadUserconfigFileInvalid(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	writeUserconfig(t, configHome, `{"backend": "kwin"}`)

	_, err := loadUserconfigFile()
	assert.Assert(t, errors.Is(err, ErrUnsupportedBackend))

	writeUserconfig(t, configHome, `{"backnd": "i3"}`)

	_, err = loadUserconfigFile()
	assert.Assert(t, err != nil)
}

func writeUserconfig(t *testing.T, configHome string, content string) {
	t.Helper()

	dir := filepath.Join(configHome, "hyprws")
	assert.Ok(t, os.MkdirAll(dir, 0755))
	assert.Ok(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0644))
}
