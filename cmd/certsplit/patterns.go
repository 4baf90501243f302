package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/certsplit/internal/pattern"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Show the loaded search patterns without processing any PDF",
	Long: `Patterns prints the ordered pattern list as it would be used by split:
file order is match priority, invalid lines are skipped with a warning.
Edit the pattern file to add or reorder patterns.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := stringSetting(cmd, "patterns", "patterns_file")

		ps, err := pattern.Load(path, os.Stderr)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Patterns from %s (%d):\n", path, ps.Len())
		for i, p := range ps.Patterns() {
			if p.Line > 0 {
				fmt.Fprintf(w, "  %d. %s  (line %d)\n", i+1, p.Source, p.Line)
			} else {
				fmt.Fprintf(w, "  %d. %s  (built-in)\n", i+1, p.Source)
			}
		}
		return nil
	},
}

func init() {
	patternsCmd.Flags().String("patterns", "patrones.txt", "pattern file with one regex per line")

	rootCmd.AddCommand(patternsCmd)
}
