package main

import (
	"github.com/spf13/cobra"

	"locklight/internal/keystate"
	"locklight/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Show a live terminal view of the lock-key states",
	Long: `Poll the lock keys and render their states in the terminal,
updating live as they change. Useful over SSH or on setups without a
compositor that supports the overlay.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	return watch.Run(keystate.NewReader(), cfg.Display.PollingRate.Duration())
}
