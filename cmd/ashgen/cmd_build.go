package main

import (
	"fmt"

	"github.com/ashfoss/ashgen/pkg/catalog"
	"github.com/ashfoss/ashgen/pkg/site"
	"github.com/spf13/cobra"
)

var flagFetchFirst bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build all site data files",
	RunE: func(cmd *cobra.Command, args []string) error {
		var cat *catalog.Catalog
		var err error
		if flagFetchFirst {
			cat, err = catalog.Load(cfg.Data.Dir, loaderOptions())
			if err != nil {
				return fmt.Errorf("loading catalog: %w", err)
			}
			if err := catalog.SaveSnapshot(snapshotPath(), cat); err != nil {
				return err
			}
		} else {
			cat, err = loadCatalog()
			if err != nil {
				return err
			}
		}
		_, err = site.NewBuilder(cfg, cat).Build()
		return err
	},
}

func init() {
	buildCmd.Flags().BoolVar(&flagFetchFirst, "fetch-first", false, "reload the dataset before building")
	rootCmd.AddCommand(buildCmd)
}
