package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/ashfoss/ashgen/internal/watch"
	"github.com/ashfoss/ashgen/pkg/catalog"
	"github.com/ashfoss/ashgen/pkg/site"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var flagDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild site data whenever the dataset or config changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		rebuild := func() {
			cat, err := catalog.Load(cfg.Data.Dir, loaderOptions())
			if err != nil {
				log.Errorf("reload failed: %v", err)
				return
			}
			if _, err := site.NewBuilder(cfg, cat).Build(); err != nil {
				log.Errorf("rebuild failed: %v", err)
			}
		}

		// build once up front so the output is populated before the
		// first change arrives
		rebuild()

		paths := []string{cfg.Data.Dir}
		if cfgPath != "" {
			paths = append(paths, cfgPath)
		}
		log.Infof("watching %v (Ctrl+C to exit)", paths)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		err := watch.New(paths, flagDebounce, rebuild).Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	watchCmd.Flags().DurationVarP(&flagDebounce, "interval", "i", 500*time.Millisecond, "debounce interval between change and rebuild")
	rootCmd.AddCommand(watchCmd)
}
