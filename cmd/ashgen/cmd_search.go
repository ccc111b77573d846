package main

import (
	"fmt"

	"github.com/ashfoss/ashgen/pkg/search"
	"github.com/spf13/cobra"
)

var flagSearchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <prefix>",
	Short: "Complete application names by prefix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		index := search.FromApps(cat.Apps)
		matches := index.Complete(args[0], flagSearchLimit)
		if len(matches) == 0 {
			fmt.Printf("no applications match %q\n", args[0])
			return nil
		}
		for _, m := range matches {
			if m.Stars > 0 {
				fmt.Printf("%-30s ★ %-7d (%s)\n", m.Name, m.Stars, m.ID)
			} else {
				fmt.Printf("%-30s           (%s)\n", m.Name, m.ID)
			}
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVarP(&flagSearchLimit, "limit", "n", 10, "maximum matches to print")
	rootCmd.AddCommand(searchCmd)
}
