// Package dedup merges the raw records of one run into the final job list.
package dedup

import (
	"net/url"
	"strings"

	"go-job-alert/internal/scraper"
)

// Predicate decides whether a record belongs in the report.
type Predicate interface {
	ShouldIncludeJob(job scraper.Job) bool
}

// PredicateFunc adapts a plain function to Predicate.
type PredicateFunc func(job scraper.Job) bool

func (f PredicateFunc) ShouldIncludeJob(job scraper.Job) bool { return f(job) }

// Consolidate keeps the first record seen for every link and drops records the
// predicate rejects. A link is claimed by its first occurrence even when that
// record is rejected, so a later duplicate cannot slip in. Input order is kept.
func Consolidate(jobs []scraper.Job, p Predicate) []scraper.Job {
	seen := make(map[string]struct{}, len(jobs))
	out := make([]scraper.Job, 0, len(jobs))

	for _, job := range jobs {
		key := Key(job.URL)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		if p != nil && !p.ShouldIncludeJob(job) {
			continue
		}
		out = append(out, job)
	}
	return out
}

// Key returns the identity used for duplicate detection: the link with
// scheme and host lowercased, the fragment dropped, tracking parameters
// removed and the query parameters sorted by name.
func Key(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""

	q := u.Query()
	for k := range q {
		if isTrackingParam(k) {
			q.Del(k)
		}
	}
	//Encode sorts by key and keeps the order of repeated values
	u.RawQuery = q.Encode()

	return u.String()
}

func isTrackingParam(k string) bool {
	lk := strings.ToLower(k)
	if strings.HasPrefix(lk, "utm_") {
		return true
	}
	switch lk {
	case "gclid", "fbclid", "msclkid", "mc_cid", "mc_eid", "mkt_tok":
		return true
	}
	return false
}
