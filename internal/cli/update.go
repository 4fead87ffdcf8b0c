package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmather/lhl-data/internal/logger"
)

func newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Full pipeline: scrape games, scrape standings, combine",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := newStore(cfg)
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			logger.Info("update: scraping games", nil)
			if err := runScrapeGames(ctx, cfg, store, flagMonths); err != nil {
				return err
			}

			logger.Info("update: scraping standings", nil)
			if err := runScrapeStandings(ctx, cfg, store); err != nil {
				return err
			}

			logger.Info("update: combining exports", nil)
			if err := runCombine(cfg, store); err != nil {
				return err
			}

			logger.Info("update complete", logger.Fields{"timings": logger.TimingSnapshot()})
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&flagMonths, "months", nil, "Months to scrape (YYYY-MM). Default: current and next month")
	return cmd
}
