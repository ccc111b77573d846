package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the output directory and cached catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range []string{cfg.Build.OutputDir, cfg.Build.CacheDir} {
			if err := os.RemoveAll(path); err != nil {
				return err
			}
			log.Infof("removed %s", path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
