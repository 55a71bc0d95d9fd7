// Define an interface for all job boards
// Ensure consistency

package scraper

import (
	"context"
	"time"
)

// NotAvailable is the placeholder for any field a board did not provide.
const NotAvailable = "N/A"

// Job is one normalised posting. URL is its identity; Summary is only used for
// filtering and never reaches the report.
type Job struct {
	Title    string
	Company  string
	Location string
	Salary   string
	URL      string
	Source   string
	Summary  string
}

// Scraper defines the interface that every board adapter implements.
type Scraper interface {
	// Scrape runs a single search for location and returns every listing found.
	// An error means the board could not be queried at all.
	Scrape(ctx context.Context, location string) ([]Job, error)

	// Name is the board name (Indeed, Wellfound, ...). Used as Job.Source.
	Name() string
}

// Options is the immutable search configuration handed to every adapter.
type Options struct {
	Keywords   string
	UserAgent  string
	Timeout    time.Duration
	MaxResults int
}

// ListingContext carries what a board's ParseListings needs besides the document.
type ListingContext struct {
	// Location is the queried location, used when a card names none.
	Location string
	// SearchURL is the link used when a card has none.
	SearchURL string
	// BaseURL resolves relative links.
	BaseURL string
	// MaxResults caps the cards read; 0 means no cap.
	MaxResults int
}
