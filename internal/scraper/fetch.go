package scraper

import (
	"context"
	"sync"
	"time"

	"github.com/dmather/lhl-data/internal/logger"
)

// FetchAll fetches many pages with at most s.concurrency requests in
// flight. Each address is attempted exactly once; a failed fetch (timeout,
// transport error, non-2xx status) yields an empty string for that address
// and never aborts the batch. The returned map holds one entry per input
// address. FetchAll returns only after every request has completed.
func (s *Scraper) FetchAll(ctx context.Context, urls []string) map[string]string {
	results := make([]string, len(urls))

	sem := make(chan struct{}, s.concurrency)
	var wg sync.WaitGroup

	for i, u := range urls {
		wg.Add(1)
		go func(i int, u string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			start := time.Now()
			html, err := s.FetchPage(ctx, u)
			logger.RecordTiming("fetch.page", time.Since(start))
			if err != nil {
				logger.Warn("fetch failed", logger.Fields{"url": u, "error": err.Error()})
				return
			}
			results[i] = html
		}(i, u)
	}
	wg.Wait()

	pages := make(map[string]string, len(urls))
	for i, u := range urls {
		pages[u] = results[i]
	}
	return pages
}
