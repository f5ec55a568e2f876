package main

import (
	"os"

	"github.com/spf13/cobra"

	"locklight/internal/keystate"
	"locklight/internal/output"
)

var statusOpts struct {
	format string
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the current lock-key states and exit",
	Long: `Print a one-shot snapshot of the Caps Lock, Num Lock and Scroll Lock
states.

The plain format matches the indicator label. JSON and YAML output is
meant for scripting, e.g. a Waybar custom module:

  "custom/locks": {
    "exec": "locklight status --output json",
    "interval": 5,
    "return-type": "json"
  }`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().StringVarP(&statusOpts.format, "output", "o", "plain",
		"Output format (plain, json, yaml)")
}

func runStatus(cmd *cobra.Command, args []string) error {
	reader := keystate.NewReader()
	status := output.NewStatus(reader.Read(), reader.Supported())

	formatter := output.NewFormatter(output.FormatType(statusOpts.format))
	return formatter.Format(os.Stdout, status)
}
