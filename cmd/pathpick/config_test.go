package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PATHPICK_CONFIG", "")
	return home
}

func TestLoadConfigDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, "zenity", cfg.Dialog.Backend)
	require.Equal(t, "file", cfg.Dialog.Kind)
	require.Equal(t, home, cfg.Dialog.StartDir)
	require.Equal(t, 50*time.Millisecond, cfg.UI.PollInterval)
	require.Equal(t, 600, cfg.UI.Width)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "pathpick.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[dialog]
backend = "sqweek"
kind = "dir"
start_dir = "/srv"

[ui]
title = "Pick one"
poll_interval = "20ms"

[log]
level = "debug"
`), 0o644))
	t.Setenv("PATHPICK_DIALOG_KIND", "save")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "sqweek", cfg.Dialog.Backend)
	require.Equal(t, "save", cfg.Dialog.Kind)
	require.Equal(t, "/srv", cfg.Dialog.StartDir)
	require.Equal(t, "Pick one", cfg.UI.Title)
	require.Equal(t, 20*time.Millisecond, cfg.UI.PollInterval)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigFromHome(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "pathpick")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[dialog]\nkind = \"files\"\n"), 0o644))

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, "files", cfg.Dialog.Kind)
}

func TestLoadConfigErrors(t *testing.T) {
	isolate(t)

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorContains(t, err, "read config")

	t.Setenv("PATHPICK_DIALOG_KIND", "printer")
	_, err = LoadConfig("")
	require.ErrorContains(t, err, "dialog.kind")

	t.Setenv("PATHPICK_DIALOG_KIND", "")
	t.Setenv("PATHPICK_LOG_LEVEL", "loud")
	_, err = LoadConfig("")
	require.ErrorContains(t, err, "log.level")
}

func TestNewLoggerToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pathpick.log")

	logger, closer, err := newLogger(LogConfig{Level: "warn", File: path})
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("dialog channel disconnected")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "hidden")
	require.Contains(t, string(data), "dialog channel disconnected")

	_, _, err = newLogger(LogConfig{Level: "loud"})
	require.Error(t, err)
}
