//go:build !gio
// +build !gio

package main

import "log/slog"

// RunGUI falls back to the terminal frontend in builds without the gio tag.
func RunGUI(cfg Config, p *picker, logger *slog.Logger) error {
	logger.Warn("built without the gio tag, using the terminal frontend")
	return RunTUI(cfg.UI, p)
}
