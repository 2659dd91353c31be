// Package app wires configuration, the directory tree, the player session
// and the status poller together and hands them to the UI.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tunetree/internal/config"
	"tunetree/internal/outline"
	"tunetree/internal/player"
	"tunetree/internal/prefs"
	"tunetree/internal/state"
	"tunetree/internal/ui"
)

// Version is the release tag shown in the header, set at build time.
var Version = "0.3.0"

// Options configure the tunetree application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/tunetree/prefs.toml
	PollEvery  int    // seconds; zero uses the config value
}

// Run boots the tunetree TUI until the context is cancelled or the user
// quits, then tears down the poller, the player and the favourites file in
// that order.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	if err := os.MkdirAll(filepath.Dir(cfg.SocketPath), 0o755); err != nil {
		return fmt.Errorf("create socket dir: %w", err)
	}

	command := player.DefaultCommand(cfg.SocketPath)
	if cfg.PlayerPath != "" {
		command[0] = cfg.PlayerPath
	}
	session := player.NewSession(cfg.SocketPath, command)

	store := &state.Store{}

	interval := time.Duration(cfg.PollSeconds) * time.Second
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}
	poller := NewPoller(store, session, interval)

	fetcher := outline.HTTPFetcher{}
	root := outline.New(map[string]string{"text": "tunetree", "URL": cfg.DirectoryURL})
	root.Populate(fetcher)
	favourites := outline.NewFavourites(root)
	favourites.Load()

	defer func() {
		poller.Stop()
		session.Stop()
		_ = favourites.Save()
	}()

	uiOpts := ui.Options{
		Context:    ctx,
		Root:       root,
		Favourites: favourites,
		Fetcher:    fetcher,
		Session:    session,
		Store:      store,
		Poller:     poller,
		ThemeName:  userPrefs.Theme,
		PrefsPath:  opts.PrefsPath,
		Version:    Version,
	}
	return ui.Run(uiOpts)
}
