package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmather/lhl-data/internal/config"
	"github.com/dmather/lhl-data/internal/logger"
	"github.com/dmather/lhl-data/internal/snapshot"
	"github.com/dmather/lhl-data/internal/standings"
	"github.com/dmather/lhl-data/internal/storage"
)

var (
	flagStandingsURL string
	flagStandingsOut string
)

func newScrapeStandingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape-standings",
		Short: "Scrape the standings table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := newStore(cfg)
			if err != nil {
				return err
			}
			return runScrapeStandings(cmd.Context(), cfg, store)
		},
	}
	cmd.Flags().StringVar(&flagStandingsURL, "url", "", "Standings page URL")
	cmd.Flags().StringVar(&flagStandingsOut, "out", "", "Output CSV path (default <exports-dir>/standings.csv)")
	return cmd
}

// runScrapeStandings fetches, parses, and sorts the standings table, then
// writes the export unless it matches the existing file. A structurally
// unusable page (no table, no header row, zero valid rows) aborts this
// target with an error.
func runScrapeStandings(ctx context.Context, cfg config.Config, store *storage.Store) error {
	url := flagStandingsURL
	if url == "" {
		url = cfg.StandingsURL
	}
	out := flagStandingsOut
	if out == "" {
		out = store.StandingsPath()
	}

	logger.Info("fetching standings", logger.Fields{"url": url})

	sc := newScraper(cfg)
	html, err := sc.FetchPage(ctx, url)
	if err != nil {
		return err
	}

	rows, err := standings.Parse(strings.NewReader(html))
	if err != nil {
		return fmt.Errorf("parsing standings: %w", err)
	}
	standings.Sort(rows)

	oldRows, err := storage.ReadStandings(out)
	if err != nil {
		return err
	}

	if len(oldRows) > 0 && !snapshot.Changed(oldRows, rows, standings.Row.ChangeKey) {
		logger.Info("no changes detected, keeping existing file", logger.Fields{"path": out})
		return nil
	}

	if err := storage.WriteStandings(out, rows); err != nil {
		return err
	}
	logger.Info("wrote standings", logger.Fields{"count": len(rows), "path": out})
	return nil
}
