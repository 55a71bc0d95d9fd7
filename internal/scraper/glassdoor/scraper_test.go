package glassdoor

import (
	"context"
	"testing"

	"go-job-alert/internal/logger"
	"go-job-alert/internal/scraper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestScrape_AdvisoryOnly(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	//a nil fetcher proves no request is attempted
	s := New(nil, scraper.Options{}, logger.FromZap(zap.New(core)))

	jobs, err := s.Scrape(context.Background(), "Saudi Arabia")
	require.NoError(t, err)
	assert.Empty(t, jobs)
	assert.Equal(t, "Glassdoor", s.Name())

	entries := logs.FilterMessageSnippet("Glassdoor job alerts").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Saudi Arabia", entries[0].ContextMap()["location"])
}
