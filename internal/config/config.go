// Package config loads the tunetree configuration file, falling back to
// defaults when it is missing.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything tunetree needs at startup.
type Config struct {
	DirectoryURL string // root of the station directory
	SocketPath   string // player IPC socket
	PlayerPath   string // player binary; empty means find mpv on PATH
	PollSeconds  int    // now-playing poll cadence
}

const (
	defaultConfigPath   = "~/.config/tunetree/config.toml"
	defaultDirectoryURL = "https://opml.radiotime.com/"
	defaultSocketPath   = "~/.cache/tunetree/mpv.sock"
	defaultPollSeconds  = 5
)

// Load locates and parses the config. A missing file yields the defaults;
// a present but malformed file is an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DirectoryURL string `toml:"directory_url"`
		SocketPath   string `toml:"socket_path"`
		PlayerPath   string `toml:"player_path"`
		PollSeconds  int    `toml:"poll_seconds"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if url := strings.TrimSpace(raw.DirectoryURL); url != "" {
		cfg.DirectoryURL = url
	}
	if sock := strings.TrimSpace(raw.SocketPath); sock != "" {
		cfg.SocketPath = sock
	}
	cfg.SocketPath = mustExpand(cfg.SocketPath)
	cfg.PlayerPath = strings.TrimSpace(raw.PlayerPath)
	if raw.PollSeconds > 0 {
		cfg.PollSeconds = raw.PollSeconds
	}

	return cfg, nil
}

func defaults() Config {
	return Config{
		DirectoryURL: defaultDirectoryURL,
		SocketPath:   mustExpand(defaultSocketPath),
		PollSeconds:  defaultPollSeconds,
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
