package main

import (
	"fmt"

	"github.com/ashfoss/ashgen/internal/utils"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show configuration and cache status",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgPath
		if path == "" {
			path = "(builtin defaults)"
		} else {
			path = utils.GetAbsolutePath(path)
		}
		fmt.Printf("config:      %s\n", path)
		fmt.Printf("data dir:    %s\n", cfg.Data.Dir)
		fmt.Printf("output dir:  %s\n", cfg.Build.OutputDir)
		fmt.Printf("cache dir:   %s\n", cfg.Build.CacheDir)
		fmt.Printf("min score:   %d\n", cfg.Related.MinScore)
		fmt.Printf("max results: %d\n", cfg.Related.MaxResults)
		fmt.Printf("tiebreakers: %v\n", cfg.Related.Tiebreakers)

		snap := snapshotPath()
		if utils.FileExists(snap) {
			fmt.Printf("snapshot:    %s\n", snap)
		} else {
			fmt.Println("snapshot:    (none, run `ashgen fetch`)")
		}
		if utils.FileExists(cfg.Build.OutputDir) {
			fmt.Printf("output size: %s\n", utils.FormatBytes(utils.DirSize(cfg.Build.OutputDir)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
