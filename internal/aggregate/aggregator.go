// Package aggregate drives every source adapter over every configured location.
package aggregate

import (
	"context"
	"time"

	"go-job-alert/internal/logger"
	"go-job-alert/internal/scraper"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	Locations []string
	// Delay is the pause between two locations.
	Delay time.Duration
	// Parallel fans out the adapters of one location.
	Parallel bool
}

type Aggregator struct {
	scrapers []scraper.Scraper
	opts     Options
	log      logger.Logger
}

func New(scrapers []scraper.Scraper, opts Options, log logger.Logger) *Aggregator {
	return &Aggregator{
		scrapers: scrapers,
		opts:     opts,
		log:      logger.Component(log, "aggregator"),
	}
}

// Run returns the raw records of every (location, adapter) pair in fixed
// order. A failing adapter is logged and skipped. Cancelling ctx stops the
// run and returns what was gathered so far.
func (a *Aggregator) Run(ctx context.Context) []scraper.Job {
	var all []scraper.Job

	for i, location := range a.opts.Locations {
		if ctx.Err() != nil {
			a.log.Warn("⏹️ Run cancelled", zap.String("location", location), zap.Error(ctx.Err()))
			break
		}

		a.log.Info("📍 Searching location", zap.String("location", location))
		var batch []scraper.Job
		if a.opts.Parallel {
			batch = a.runParallel(ctx, location)
		} else {
			batch = a.runSequential(ctx, location)
		}
		all = append(all, batch...)

		if i < len(a.opts.Locations)-1 && !sleep(ctx, a.opts.Delay) {
			a.log.Warn("⏹️ Run cancelled during location delay", zap.Error(ctx.Err()))
			break
		}
	}

	a.log.Info("📦 Total jobs collected", zap.Int("count", len(all)))
	return all
}

func (a *Aggregator) runSequential(ctx context.Context, location string) []scraper.Job {
	var jobs []scraper.Job
	for _, s := range a.scrapers {
		jobs = append(jobs, a.scrapeOne(ctx, s, location)...)
	}
	return jobs
}

// runParallel keeps adapter order by writing into a slot per adapter.
func (a *Aggregator) runParallel(ctx context.Context, location string) []scraper.Job {
	results := make([][]scraper.Job, len(a.scrapers))

	var g errgroup.Group
	for i, s := range a.scrapers {
		i, s := i, s
		g.Go(func() error {
			results[i] = a.scrapeOne(ctx, s, location)
			//never fail the group, siblings keep running
			return nil
		})
	}
	_ = g.Wait()

	var jobs []scraper.Job
	for _, r := range results {
		jobs = append(jobs, r...)
	}
	return jobs
}

func (a *Aggregator) scrapeOne(ctx context.Context, s scraper.Scraper, location string) []scraper.Job {
	jobs, err := s.Scrape(ctx, location)
	if err != nil {
		a.log.Warn("❌ Fetch failed",
			zap.String("source", s.Name()),
			zap.String("location", location),
			zap.Error(err))
		return nil
	}
	a.log.Info("✅ Scraper finished",
		zap.String("source", s.Name()),
		zap.String("location", location),
		zap.Int("count", len(jobs)))
	return jobs
}

// sleep waits d or until ctx is done; it reports whether the full delay elapsed.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
