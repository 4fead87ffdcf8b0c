package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmather/lhl-data/internal/config"
	"github.com/dmather/lhl-data/internal/logger"
	"github.com/dmather/lhl-data/internal/storage"
)

var flagSortOrder string

func newCombineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "combine",
		Short: "Merge month exports into one deduplicated CSV and JSON snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := newStore(cfg)
			if err != nil {
				return err
			}
			return runCombine(cfg, store)
		},
	}
	cmd.Flags().StringVar(&flagSortOrder, "sort", "asc", "Sort by game date: asc or desc")
	return cmd
}

func runCombine(cfg config.Config, store *storage.Store) error {
	if flagSortOrder != "asc" && flagSortOrder != "desc" {
		return fmt.Errorf("invalid sort order %q: must be asc or desc", flagSortOrder)
	}

	records, err := store.Combine(storage.CombineOptions{
		SeasonStartYear: cfg.SeasonStartYear,
		RolloverMonths:  cfg.RolloverMonths,
		Descending:      flagSortOrder == "desc",
	})
	if err != nil {
		return err
	}

	if err := store.WriteCombined(records); err != nil {
		return err
	}
	logger.Info("wrote combined snapshot", logger.Fields{
		"games": len(records),
		"csv":   store.CombinedCSVPath(),
		"json":  store.GamesJSONPath(),
	})
	return nil
}
