package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmather/lhl-data/internal/config"
	"github.com/dmather/lhl-data/internal/game"
	"github.com/dmather/lhl-data/internal/logger"
	"github.com/dmather/lhl-data/internal/snapshot"
	"github.com/dmather/lhl-data/internal/storage"
)

var flagMonths []string

func newScrapeGamesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape-games",
		Short: "Scrape game data for the given months",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := newStore(cfg)
			if err != nil {
				return err
			}
			return runScrapeGames(cmd.Context(), cfg, store, flagMonths)
		},
	}
	cmd.Flags().StringSliceVar(&flagMonths, "months", nil, "Months to scrape (YYYY-MM). Default: current and next month")
	return cmd
}

// runScrapeGames scrapes each month and writes its export, skipping the
// write when the freshly scraped snapshot matches the existing file.
func runScrapeGames(ctx context.Context, cfg config.Config, store *storage.Store, months []string) error {
	if len(months) == 0 {
		months = config.DefaultMonths(time.Now())
	}

	// Reject bad tokens before touching the network.
	for _, m := range months {
		if err := config.ValidateMonth(m); err != nil {
			return err
		}
	}

	sc := newScraper(cfg)

	for _, monthToken := range months {
		year, month, err := config.SplitMonth(monthToken)
		if err != nil {
			return err
		}
		path := store.MonthPath(monthToken)

		oldRecords, err := storage.ReadGames(path)
		if err != nil {
			return err
		}

		newRecords, err := sc.ScrapeMonth(ctx, year, month)
		if err != nil {
			return fmt.Errorf("scraping %s: %w", monthToken, err)
		}

		switch {
		case len(newRecords) == 0:
			if err := storage.WriteGames(path, nil, false); err != nil {
				return err
			}
			logger.Info("wrote empty export", logger.Fields{"month": monthToken, "path": path})
		case len(oldRecords) > 0 && !snapshot.Changed(oldRecords, newRecords, game.Record.ChangeKey):
			logger.Info("no changes detected, keeping existing file", logger.Fields{"month": monthToken})
		default:
			if err := storage.WriteGames(path, newRecords, false); err != nil {
				return err
			}
			logger.Info("wrote games", logger.Fields{"month": monthToken, "count": len(newRecords), "path": path})
		}
	}

	return nil
}
