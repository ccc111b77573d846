package main

import (
	"fmt"

	"github.com/ashfoss/ashgen/pkg/catalog"
	"github.com/ashfoss/ashgen/pkg/related"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var flagRelatedLimit int

var relatedCmd = &cobra.Command{
	Use:   "related <app-id>",
	Short: "Show related applications for one catalog entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		var target *catalog.Application
		for _, app := range cat.Apps {
			if app.ID == args[0] {
				target = app
				break
			}
		}
		if target == nil {
			return fmt.Errorf("no application with id %q", args[0])
		}

		opts := cfg.Related
		if flagRelatedLimit > 0 {
			opts.MaxResults = flagRelatedLimit
		}
		finder := related.NewFinder(opts, cat.Licenses)
		matches := finder.FindRelated(target, related.NewCorpus(cat.Apps))

		nameStyle := lipgloss.NewStyle().Bold(true)
		dimStyle := lipgloss.NewStyle().Faint(true)

		fmt.Printf("related to %s:\n", nameStyle.Render(target.Name))
		if len(matches) == 0 {
			fmt.Println(dimStyle.Render("  (nothing above the score threshold)"))
			return nil
		}
		for i, app := range matches {
			line := fmt.Sprintf("  %d. %s", i+1, nameStyle.Render(app.Name))
			if app.Stars != nil {
				line += dimStyle.Render(fmt.Sprintf("  ★ %d", *app.Stars))
			}
			if len(app.Categories) > 0 {
				line += dimStyle.Render("  " + app.Categories[0])
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	relatedCmd.Flags().IntVarP(&flagRelatedLimit, "limit", "n", 0, "override max_results")
	rootCmd.AddCommand(relatedCmd)
}
