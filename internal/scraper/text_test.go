package scraper

import (
	"context"
	"strings"
	"testing"

	"go-job-alert/internal/logger"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  Junior\n\t Developer  ", "Junior Developer"},
		{"AT&T", "AT&T"},
		{"Software Engineer <Junior>", "Software Engineer <Junior>"},
		{"R&D <intern>", "R&D <intern>"},
		{"a\u00a0b", "a b"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanText(tt.in), tt.in)
	}
}

func TestFirstTextAndAttr(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
<div class="card">
  <span class="companyName"> Acme </span>
  <a class="x" href=" /job/1 ">Apply</a>
</div>`))
	require.NoError(t, err)
	card := doc.Find(".card")

	assert.Equal(t, "Acme", FirstText(card, ".company", ".companyName"))
	assert.Equal(t, "", FirstText(card, ".missing"))
	assert.Equal(t, "/job/1", FirstAttr(card, "href", "a.none", "a.x"))
	assert.Equal(t, "", FirstAttr(card, "href", "a.none"))
}

func TestFirstText_KeepsDecodedAngleBrackets(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<div class="card"><a class="t">Software Engineer &lt;Junior&gt;</a></div>`))
	require.NoError(t, err)

	assert.Equal(t, "Software Engineer <Junior>", FirstText(doc.Find(".card"), "a.t"))
}

func TestCards_OutermostOnly(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
<div class="result"><div class="job_seen_beacon">one</div></div>
<div class="job_seen_beacon">two</div>
<div class="result">three</div>`))
	require.NoError(t, err)

	cards := Cards(doc, ".result, .job_seen_beacon")
	require.Equal(t, 3, cards.Length())
	assert.Equal(t, "one", CleanText(cards.Eq(0).Text()))
	assert.Equal(t, "two", CleanText(cards.Eq(1).Text()))
	assert.Equal(t, "three", CleanText(cards.Eq(2).Text()))
}

func TestResolveURL(t *testing.T) {
	assert.Equal(t, "https://www.indeed.com/rc/clk?jk=1", ResolveURL("https://www.indeed.com", "/rc/clk?jk=1"))
	assert.Equal(t, "https://x/a", ResolveURL("https://www.indeed.com", "https://x/a"))
	assert.Equal(t, "https://wellfound.com/jobs/1", ResolveURL("https://wellfound.com/jobs?q=1", "/jobs/1"))
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, NotAvailable, OrDefault("", NotAvailable))
	assert.Equal(t, "x", OrDefault("x", NotAvailable))
}

type stubScraper struct{ name string }

func (s stubScraper) Name() string { return s.name }
func (s stubScraper) Scrape(context.Context, string) ([]Job, error) {
	return nil, nil
}

func TestRegistryBuild(t *testing.T) {
	r := NewRegistry()
	r.Register("Indeed", func(*Fetcher, Options, logger.Logger) Scraper { return stubScraper{"Indeed"} })
	r.Register("wellfound", func(*Fetcher, Options, logger.Logger) Scraper { return stubScraper{"Wellfound"} })

	got, err := r.Build([]string{"wellfound", "INDEED"}, nil, Options{}, logger.NewNop())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Wellfound", got[0].Name())
	assert.Equal(t, "Indeed", got[1].Name())

	_, err = r.Build([]string{"monster"}, nil, Options{}, logger.NewNop())
	assert.ErrorIs(t, err, ErrUnknownSource)
}
