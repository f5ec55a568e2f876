package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"locklight/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available indicator themes",
	Long: `List bundled themes and user themes from
~/.config/locklight/themes. A user theme with the same name as a
bundled one overrides it.`,
	RunE: runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, info := range theme.ListAvailableThemes() {
		source := info.Path
		if info.IsBundled {
			source = "(bundled)"
		}
		marker := ""
		if info.Name == cfg.Theme.Name {
			marker = "*"
		}
		fmt.Fprintf(w, "%s%s\t%s\n", info.Name, marker, source)
	}
	return w.Flush()
}
