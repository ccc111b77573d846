package main

import (
	"fmt"

	"github.com/ashfoss/ashgen/pkg/catalog"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Load the dataset and cache the processed catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load(cfg.Data.Dir, loaderOptions())
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}
		path := snapshotPath()
		if err := catalog.SaveSnapshot(path, cat); err != nil {
			return err
		}
		log.Infof("cached %d applications to %s", len(cat.Apps), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
