// LinkedIn job search needs an authenticated session and is hostile to
// scraping. This adapter never sends a request; it only points the user at
// LinkedIn's own alerting channels.

package linkedin

import (
	"context"

	"go-job-alert/internal/logger"
	"go-job-alert/internal/scraper"

	"go.uber.org/zap"
)

const Advisory = "LinkedIn: use LinkedIn job alerts or the official API; scraping is discouraged"

type LinkedInScraper struct {
	log logger.Logger
}

func NewLinkedInScraper(log logger.Logger) *LinkedInScraper {
	return &LinkedInScraper{log: log.With(zap.String("source", "LinkedIn"))}
}

func New(_ *scraper.Fetcher, _ scraper.Options, log logger.Logger) scraper.Scraper {
	return NewLinkedInScraper(log)
}

func (s *LinkedInScraper) Name() string {
	return "LinkedIn"
}

// Scrape always returns no jobs.
func (s *LinkedInScraper) Scrape(_ context.Context, location string) ([]scraper.Job, error) {
	s.log.Warn("💼 "+Advisory, zap.String("location", location))
	return nil, nil
}
