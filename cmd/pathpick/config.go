package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/leonwijng/imdialog/native"
)

// Config holds the demo's settings.
type Config struct {
	Dialog DialogConfig `mapstructure:"dialog"`
	UI     UIConfig     `mapstructure:"ui"`
	Log    LogConfig    `mapstructure:"log"`
}

// DialogConfig picks the backend and what the Browse button opens.
type DialogConfig struct {
	Backend  string `mapstructure:"backend"`
	StartDir string `mapstructure:"start_dir"`
	Kind     string `mapstructure:"kind"`
}

// UIConfig holds window and frame settings.
type UIConfig struct {
	Title        string        `mapstructure:"title"`
	Width        int           `mapstructure:"width"`
	Height       int           `mapstructure:"height"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

// LogConfig holds logger settings. An empty File logs to stderr.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

var kinds = []string{"file", "files", "dir", "save"}

// LoadConfig reads configuration from path, or from PATHPICK_CONFIG, or
// from ~/.config/pathpick/config.toml when present. Env vars with prefix
// PATHPICK_ override file values.
func LoadConfig(path string) (Config, error) {
	v := viper.New()

	home, _ := os.UserHomeDir()
	v.SetDefault("dialog.backend", native.DefaultBackend)
	v.SetDefault("dialog.start_dir", home)
	v.SetDefault("dialog.kind", "file")
	v.SetDefault("ui.title", "pathpick")
	v.SetDefault("ui.width", 600)
	v.SetDefault("ui.height", 240)
	v.SetDefault("ui.poll_interval", 50*time.Millisecond)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("PATHPICK_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "pathpick"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PATHPICK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	if !validKind(c.Dialog.Kind) {
		return fmt.Errorf("dialog.kind %q: must be one of %s", c.Dialog.Kind, strings.Join(kinds, ", "))
	}
	if c.UI.PollInterval <= 0 {
		return fmt.Errorf("ui.poll_interval must be positive, got %s", c.UI.PollInterval)
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

func validKind(kind string) bool {
	return slices.Contains(kinds, kind)
}

// newLogger builds the slog logger described by c. The returned closer
// releases the log file, if any.
func newLogger(c LogConfig) (*slog.Logger, io.Closer, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, nil, fmt.Errorf("log.level: %w", err)
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer = io.NopCloser(nil)
	)
	if c.File != "" {
		f, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), closer, nil
}
