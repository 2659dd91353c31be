package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tunetree/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tunetree: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := app.Options{}

	cmd := &cobra.Command{
		Use:          "tunetree",
		Short:        "Browse internet radio directories and play stations with mpv",
		Version:      app.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if os.Getenv("TUNETREE_DEBUG") != "" {
				f, err := tea.LogToFile("tunetree.log", "tunetree")
				if err != nil {
					return fmt.Errorf("open debug log: %w", err)
				}
				defer func() { _ = f.Close() }()
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			return app.Run(ctx, opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "override config path (optional)")
	cmd.Flags().StringVar(&opts.PrefsPath, "prefs", "", "override preferences path (optional)")
	cmd.Flags().IntVar(&opts.PollEvery, "poll", 0, "now-playing refresh interval in seconds (optional)")

	return cmd
}
