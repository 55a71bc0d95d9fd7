package wellfound

import (
	"context"
	"fmt"
	"net/url"

	"go-job-alert/internal/logger"
	"go-job-alert/internal/scraper"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

const BaseURL = "https://wellfound.com"

var (
	cardSelector     = `li[data-test="job-card"], div[data-test="StartupResult"]`
	linkSelectors    = []string{`a[data-test="job-link"]`, `a[href*="/jobs/"]`}
	companySelectors = []string{`[data-test="job-card-company-name"]`, `a[href^="/company/"] h2`, `a[href^="/company/"]`}
)

type WellfoundScraper struct {
	fetcher *scraper.Fetcher
	opts    scraper.Options
	baseURL string
	log     logger.Logger
}

func NewWellfoundScraper(f *scraper.Fetcher, opts scraper.Options, log logger.Logger) *WellfoundScraper {
	return &WellfoundScraper{
		fetcher: f,
		opts:    opts,
		baseURL: BaseURL,
		log:     log.With(zap.String("source", "Wellfound")),
	}
}

func New(f *scraper.Fetcher, opts scraper.Options, log logger.Logger) scraper.Scraper {
	return NewWellfoundScraper(f, opts, log)
}

func (s *WellfoundScraper) WithBaseURL(base string) *WellfoundScraper {
	s.baseURL = base
	return s
}

func (s *WellfoundScraper) Name() string {
	return "Wellfound"
}

func SearchURL(base, keywords, location string) string {
	params := url.Values{}
	params.Set("search[query]", keywords)
	params.Set("search[locations][]", location)
	return base + "/jobs?" + params.Encode()
}

func (s *WellfoundScraper) Scrape(ctx context.Context, location string) ([]scraper.Job, error) {
	searchURL := SearchURL(s.baseURL, s.opts.Keywords, location)
	s.log.Debug("🔍 Searching", zap.String("location", location), zap.String("url", searchURL))

	doc, err := s.fetcher.Document(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("wellfound search %q: %w", location, err)
	}

	jobs := ParseListings(doc, scraper.ListingContext{
		Location:   location,
		SearchURL:  searchURL,
		BaseURL:    s.baseURL,
		MaxResults: s.opts.MaxResults,
	})
	s.log.Debug("📦 Parsed job cards", zap.String("location", location), zap.Int("count", len(jobs)))
	return jobs, nil
}

// ParseListings extracts one Job per card. Wellfound cards carry no reliable
// location, so every job takes the queried one.
func ParseListings(doc *goquery.Document, lc scraper.ListingContext) []scraper.Job {
	var jobs []scraper.Job

	scraper.Cards(doc, cardSelector).EachWithBreak(func(_ int, card *goquery.Selection) bool {
		if lc.MaxResults > 0 && len(jobs) >= lc.MaxResults {
			return false
		}

		link := lc.SearchURL
		if href := scraper.FirstAttr(card, "href", linkSelectors...); href != "" {
			link = scraper.ResolveURL(lc.BaseURL, href)
		}

		jobs = append(jobs, scraper.Job{
			Title:    scraper.OrDefault(scraper.FirstText(card, linkSelectors...), scraper.NotAvailable),
			Company:  scraper.OrDefault(scraper.FirstText(card, companySelectors...), scraper.NotAvailable),
			Location: lc.Location,
			Salary:   scraper.NotAvailable,
			URL:      link,
			Source:   "Wellfound",
			Summary:  scraper.SpacedText(card),
		})
		return true
	})

	return jobs
}
