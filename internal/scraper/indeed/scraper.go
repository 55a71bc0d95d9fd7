package indeed

import (
	"context"
	"fmt"
	"net/url"

	"go-job-alert/internal/logger"
	"go-job-alert/internal/scraper"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

const (
	BaseURL = "https://www.indeed.com"

	//restrict results to postings from the last 3 days
	recencyDays = "3"
)

// Card layouts seen on the public search page, oldest first. Current pages
// nest .job_seen_beacon inside .result; only the outer card is read.
var (
	cardSelector     = ".jobsearch-SerpJobCard, .result, .job_seen_beacon"
	titleSelectors   = []string{"h2.title", "h2.jobTitle"}
	companySelectors = []string{".company", ".companyName", `[data-testid="company-name"]`}
	locSelectors     = []string{".location", ".companyLocation", `[data-testid="text-location"]`}
	summarySelectors = []string{".summary", ".job-snippet"}
)

type IndeedScraper struct {
	fetcher *scraper.Fetcher
	opts    scraper.Options
	baseURL string
	log     logger.Logger
}

func NewIndeedScraper(f *scraper.Fetcher, opts scraper.Options, log logger.Logger) *IndeedScraper {
	return &IndeedScraper{
		fetcher: f,
		opts:    opts,
		baseURL: BaseURL,
		log:     log.With(zap.String("source", "Indeed")),
	}
}

// New is the registry factory.
func New(f *scraper.Fetcher, opts scraper.Options, log logger.Logger) scraper.Scraper {
	return NewIndeedScraper(f, opts, log)
}

// WithBaseURL points the scraper at another host. Used by tests.
func (s *IndeedScraper) WithBaseURL(base string) *IndeedScraper {
	s.baseURL = base
	return s
}

func (s *IndeedScraper) Name() string {
	return "Indeed"
}

// SearchURL builds the query URL for keywords in location.
func SearchURL(base, keywords, location string) string {
	params := url.Values{}
	params.Set("q", keywords)
	params.Set("l", location)
	params.Set("fromage", recencyDays)
	return base + "/jobs?" + params.Encode()
}

func (s *IndeedScraper) Scrape(ctx context.Context, location string) ([]scraper.Job, error) {
	searchURL := SearchURL(s.baseURL, s.opts.Keywords, location)
	s.log.Debug("🔍 Searching", zap.String("location", location), zap.String("url", searchURL))

	doc, err := s.fetcher.Document(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("indeed search %q: %w", location, err)
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

// ParseListings extracts one Job per card. Missing fields become "N/A", a missing
// location becomes the queried location and a missing link the search URL.
func ParseListings(doc *goquery.Document, lc scraper.ListingContext) []scraper.Job {
	var jobs []scraper.Job

	scraper.Cards(doc, cardSelector).EachWithBreak(func(_ int, card *goquery.Selection) bool {
		if lc.MaxResults > 0 && len(jobs) >= lc.MaxResults {
			return false
		}

		link := lc.SearchURL
		if href := scraper.FirstAttr(card, "href", "a[href]"); href != "" {
			link = scraper.ResolveURL(lc.BaseURL, href)
		}

		jobs = append(jobs, scraper.Job{
			Title:    scraper.OrDefault(scraper.FirstText(card, titleSelectors...), scraper.NotAvailable),
			Company:  scraper.OrDefault(scraper.FirstText(card, companySelectors...), scraper.NotAvailable),
			Location: scraper.OrDefault(scraper.FirstText(card, locSelectors...), lc.Location),
			Salary:   scraper.NotAvailable,
			URL:      link,
			Source:   "Indeed",
			Summary:  scraper.FirstText(card, summarySelectors...),
		})
		return true
	})

	return jobs
}
