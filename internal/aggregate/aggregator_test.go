package aggregate

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go-job-alert/internal/logger"
	"go-job-alert/internal/scraper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeScraper struct {
	name  string
	err   error
	wait  time.Duration
	mu    sync.Mutex
	calls []string
}

func (f *fakeScraper) Name() string { return f.name }

func (f *fakeScraper) Scrape(ctx context.Context, location string) ([]scraper.Job, error) {
	f.mu.Lock()
	f.calls = append(f.calls, location)
	f.mu.Unlock()

	if f.wait > 0 {
		select {
		case <-time.After(f.wait):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return []scraper.Job{{Title: f.name + " job", URL: "https://x/" + f.name + "/" + location, Source: f.name, Location: location}}, nil
}

func titles(jobs []scraper.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.Source+"@"+j.Location)
	}
	return out
}

func TestRun_FixedOrder(t *testing.T) {
	a := &fakeScraper{name: "A"}
	b := &fakeScraper{name: "B"}
	agg := New([]scraper.Scraper{a, b}, Options{Locations: []string{"India", "Saudi Arabia"}}, logger.NewNop())

	jobs := agg.Run(context.Background())
	assert.Equal(t, []string{"A@India", "B@India", "A@Saudi Arabia", "B@Saudi Arabia"}, titles(jobs))
}

func TestRun_FailureIsolation(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	broken := &fakeScraper{name: "A", err: errors.New("timeout")}
	ok := &fakeScraper{name: "B"}
	agg := New([]scraper.Scraper{broken, ok}, Options{Locations: []string{"India"}}, logger.FromZap(zap.New(core)))

	jobs := agg.Run(context.Background())
	assert.Equal(t, []string{"B@India"}, titles(jobs))

	failed := logs.FilterMessageSnippet("Fetch failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.WarnLevel, failed[0].Level)
	assert.Equal(t, "A", failed[0].ContextMap()["source"])
}

func TestRun_AllAdaptersFail(t *testing.T) {
	a := &fakeScraper{name: "A", err: errors.New("403")}
	agg := New([]scraper.Scraper{a}, Options{Locations: []string{"India", "Saudi Arabia"}}, logger.NewNop())

	assert.Empty(t, agg.Run(context.Background()))
	assert.Equal(t, []string{"India", "Saudi Arabia"}, a.calls)
}

func TestRun_NoLocations(t *testing.T) {
	a := &fakeScraper{name: "A"}
	agg := New([]scraper.Scraper{a}, Options{}, logger.NewNop())

	assert.Empty(t, agg.Run(context.Background()))
	assert.Empty(t, a.calls)
}

func TestRun_DelayBetweenLocations(t *testing.T) {
	a := &fakeScraper{name: "A"}
	agg := New([]scraper.Scraper{a}, Options{Locations: []string{"X", "Y", "Z"}, Delay: 30 * time.Millisecond}, logger.NewNop())

	start := time.Now()
	jobs := agg.Run(context.Background())
	elapsed := time.Since(start)

	assert.Len(t, jobs, 3)
	assert.GreaterOrEqual(t, elapsed, 60*time.Millisecond)
}

func TestRun_CancelDuringDelay(t *testing.T) {
	a := &fakeScraper{name: "A"}
	agg := New([]scraper.Scraper{a}, Options{Locations: []string{"X", "Y"}, Delay: time.Hour}, logger.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	jobs := agg.Run(ctx)
	assert.Equal(t, []string{"A@X"}, titles(jobs))
	assert.Equal(t, []string{"X"}, a.calls)
}

func TestRun_ParallelKeepsOrder(t *testing.T) {
	slow := &fakeScraper{name: "A", wait: 40 * time.Millisecond}
	broken := &fakeScraper{name: "B", err: errors.New("boom")}
	fast := &fakeScraper{name: "C"}
	agg := New([]scraper.Scraper{slow, broken, fast},
		Options{Locations: []string{"India", "Saudi Arabia"}, Parallel: true}, logger.NewNop())

	jobs := agg.Run(context.Background())
	assert.Equal(t, []string{"A@India", "C@India", "A@Saudi Arabia", "C@Saudi Arabia"}, titles(jobs))
}
