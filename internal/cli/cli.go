// Package cli implements the lhl-data command line interface.
//
// Four subcommands mirror the pipeline stages: scrape-games fetches and
// parses month schedules, scrape-standings reads the standings table,
// combine merges the per-month exports into one deduplicated snapshot, and
// update runs all three in sequence. Flags override the config file, which
// overrides built-in defaults.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmather/lhl-data/internal/config"
	"github.com/dmather/lhl-data/internal/logger"
	"github.com/dmather/lhl-data/internal/scraper"
	"github.com/dmather/lhl-data/internal/storage"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig          string
	flagBaseURL         string
	flagGroupID         int
	flagSeasonStartYear int
	flagRolloverMonths  []string
	flagConcurrency     int
	flagTimeoutSeconds  int
	flagExportsDir      string
	flagDataDir         string
	flagVerbose         bool
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lhl-data",
		Short: "Scrape and reconcile Lakeshore Hockey League schedule data",
		Long: `lhl-data scrapes the LHL website (which exposes no API) for game
schedules, results, and standings, reconciles repeated scrapes, and writes
CSV/JSON exports only when the content has actually changed.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagVerbose {
				logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
			}
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Config file path (default ~/.lhl-data/config.yaml)")
	pf.StringVar(&flagBaseURL, "base-url", "", "League site base URL")
	pf.IntVar(&flagGroupID, "group-id", 0, "Schedule group ID")
	pf.IntVar(&flagSeasonStartYear, "season-start-year", 0, "Season start year (Oct-Dec games belong to this year)")
	pf.StringSliceVar(&flagRolloverMonths, "rollover-months", nil, "Month abbreviations belonging to the next calendar year")
	pf.IntVar(&flagConcurrency, "concurrency", 0, "Max concurrent detail-page fetches")
	pf.IntVar(&flagTimeoutSeconds, "timeout", 0, "Per-request timeout in seconds")
	pf.StringVar(&flagExportsDir, "exports-dir", "", "Directory for per-month and standings CSV exports")
	pf.StringVar(&flagDataDir, "data-dir", "", "Directory for combined CSV/JSON output")
	pf.BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(newScrapeGamesCmd())
	cmd.AddCommand(newScrapeStandingsCmd())
	cmd.AddCommand(newCombineCmd())
	cmd.AddCommand(newUpdateCmd())

	return cmd
}

// loadConfig merges the config file over defaults and flags over both.
// Configuration errors are fatal and precede any network activity.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagBaseURL != "" {
		cfg.BaseURL = flagBaseURL
	}
	if flagGroupID != 0 {
		cfg.GroupID = flagGroupID
	}
	if flagSeasonStartYear != 0 {
		cfg.SeasonStartYear = flagSeasonStartYear
	}
	if flagRolloverMonths != nil {
		cfg.RolloverMonths = flagRolloverMonths
	}
	if flagConcurrency != 0 {
		cfg.Concurrency = flagConcurrency
	}
	if flagTimeoutSeconds != 0 {
		cfg.TimeoutSeconds = flagTimeoutSeconds
	}
	if flagExportsDir != "" {
		cfg.ExportsDir = flagExportsDir
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	return cfg, nil
}

func newScraper(cfg config.Config) *scraper.Scraper {
	return scraper.New(scraper.Config{
		BaseURL:     cfg.BaseURL,
		GroupID:     cfg.GroupID,
		Concurrency: cfg.Concurrency,
		Timeout:     cfg.Timeout(),
	})
}

func newStore(cfg config.Config) (*storage.Store, error) {
	return storage.New(cfg.ExportsDir, cfg.DataDir)
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
