package main

import (
	"fmt"
	"path/filepath"

	"github.com/ashfoss/ashgen/pkg/catalog"
	"github.com/ashfoss/ashgen/pkg/config"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagVerbose bool

	cfg     *config.Config
	cfgPath string
)

var rootCmd = &cobra.Command{
	Use:           "ashgen",
	Short:         "Static site data generator for self-hosted software catalogs",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
			log.SetReportTimestamp(true)
		} else {
			log.SetLevel(log.InfoLevel)
		}
		var err error
		cfg, cfgPath, err = config.LoadConfigWithPriority(flagConfig)
		if err != nil {
			return err
		}
		if cfg.Related.Debug {
			log.SetLevel(log.DebugLevel)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "config file path (default ./config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

// snapshotPath returns where fetch caches the processed catalog.
func snapshotPath() string {
	return filepath.Join(cfg.Build.CacheDir, catalog.SnapshotFile)
}

// loaderOptions maps the data config onto the catalog loader.
func loaderOptions() catalog.LoaderOptions {
	return catalog.LoaderOptions{
		SoftwareGlob:        cfg.Data.SoftwareGlob,
		TagsGlob:            cfg.Data.TagsGlob,
		PlatformsGlob:       cfg.Data.PlatformsGlob,
		LicensesFile:        cfg.Data.LicensesFile,
		LicensesNonfreeFile: cfg.Data.LicensesNonfreeFile,
	}
}

// loadCatalog prefers the fetch snapshot and falls back to the raw dataset.
func loadCatalog() (*catalog.Catalog, error) {
	path := snapshotPath()
	if cat, err := catalog.LoadSnapshot(path); err == nil {
		return cat, nil
	} else {
		log.Debugf("snapshot unavailable (%v), loading dataset", err)
	}
	cat, err := catalog.Load(cfg.Data.Dir, loaderOptions())
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return cat, nil
}
