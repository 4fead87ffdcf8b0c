package scraper

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmather/lhl-data/internal/game"
	"github.com/dmather/lhl-data/internal/htmltext"
	"github.com/dmather/lhl-data/internal/logger"
)

// ScheduleURL returns the schedule page address for one month.
func (s *Scraper) ScheduleURL(year, month int) string {
	return fmt.Sprintf("%s/Groups/%d/Schedule/?Month=%d&Year=%d", s.baseURL, s.groupID, month, year)
}

// ScrapeMonth scrapes one month of games: fetch the schedule page, extract
// the game links, fetch every detail page concurrently, and parse each into
// a record. A schedule page with no game links yields an empty (non-nil
// error free) result. A failed detail fetch still produces a record with
// only scraped_at and game_url populated, so the identity is preserved.
func (s *Scraper) ScrapeMonth(ctx context.Context, year, month int) ([]game.Record, error) {
	scheduleURL := s.ScheduleURL(year, month)
	logger.Info("fetching schedule", logger.Fields{"url": scheduleURL})

	scheduleHTML, err := s.FetchPage(ctx, scheduleURL)
	if err != nil {
		return nil, fmt.Errorf("fetching schedule: %w", err)
	}

	links, err := ExtractGameLinks(strings.NewReader(scheduleHTML), s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("extracting game links: %w", err)
	}
	if len(links) == 0 {
		logger.Info("no game links on schedule page", logger.Fields{"year": year, "month": month})
		return nil, nil
	}

	logger.Info("fetching game details", logger.Fields{"count": len(links)})
	pages := s.FetchAll(ctx, links)

	// Links are already unique and sorted; the seen map is paranoia against
	// distinct hrefs resolving to one URL.
	seen := make(map[string]struct{}, len(links))
	records := make([]game.Record, 0, len(links))
	for _, link := range links {
		if _, dup := seen[link]; dup {
			continue
		}
		seen[link] = struct{}{}

		text, err := htmltext.Flatten(strings.NewReader(pages[link]))
		if err != nil {
			logger.Warn("flattening page failed", logger.Fields{"url": link, "error": err.Error()})
			text = ""
		}

		rec, err := game.Parse(text, link)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", link, err)
		}
		records = append(records, rec)
	}

	return records, nil
}
