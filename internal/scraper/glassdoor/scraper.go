// Glassdoor blocks anonymous scraping. The adapter is kept so the board shows
// up in runs, but it only logs where to get these postings instead.

package glassdoor

import (
	"context"

	"go-job-alert/internal/logger"
	"go-job-alert/internal/scraper"

	"go.uber.org/zap"
)

const Advisory = "Glassdoor: use Glassdoor job alerts or their API due to scraping protections"

type GlassdoorScraper struct {
	log logger.Logger
}

func NewGlassdoorScraper(log logger.Logger) *GlassdoorScraper {
	return &GlassdoorScraper{log: log.With(zap.String("source", "Glassdoor"))}
}

func New(_ *scraper.Fetcher, _ scraper.Options, log logger.Logger) scraper.Scraper {
	return NewGlassdoorScraper(log)
}

func (s *GlassdoorScraper) Name() string {
	return "Glassdoor"
}

func (s *GlassdoorScraper) Scrape(_ context.Context, location string) ([]scraper.Job, error) {
	s.log.Warn("🚪 "+Advisory, zap.String("location", location))
	return nil, nil
}
