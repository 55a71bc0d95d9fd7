// Package app wires the pipeline: aggregate, consolidate, report, notify.
package app

import (
	"context"
	"fmt"

	"go-job-alert/internal/aggregate"
	"go-job-alert/internal/config"
	"go-job-alert/internal/dedup"
	"go-job-alert/internal/filter"
	"go-job-alert/internal/logger"
	"go-job-alert/internal/notifier"
	"go-job-alert/internal/reporter"
	"go-job-alert/internal/scraper"
	"go-job-alert/internal/scraper/glassdoor"
	"go-job-alert/internal/scraper/indeed"
	"go-job-alert/internal/scraper/linkedin"
	"go-job-alert/internal/scraper/wellfound"

	"go.uber.org/zap"
)

// Summary is what one run produced.
type Summary struct {
	Collected  int
	Jobs       []scraper.Job
	Report     reporter.Report
	Deliveries []notifier.Result
}

type App struct {
	cfg       *config.Config
	log       logger.Logger
	registry  *scraper.Registry
	notifiers []notifier.Notifier
}

type Option func(*App)

func WithRegistry(r *scraper.Registry) Option {
	return func(a *App) { a.registry = r }
}

func WithNotifiers(n ...notifier.Notifier) Option {
	return func(a *App) { a.notifiers = n }
}

// DefaultRegistry knows every supported board.
func DefaultRegistry() *scraper.Registry {
	r := scraper.NewRegistry()
	r.Register("indeed", indeed.New)
	r.Register("wellfound", wellfound.New)
	r.Register("glassdoor", glassdoor.New)
	r.Register("linkedin", linkedin.New)
	return r
}

func New(cfg *config.Config, log logger.Logger, opts ...Option) *App {
	a := &App{
		cfg:      cfg,
		log:      log,
		registry: DefaultRegistry(),
		notifiers: []notifier.Notifier{
			notifier.NewEmailNotifier(cfg.Email),
			notifier.NewTelegramNotifier(cfg.Telegram),
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run executes one pass. Only an unknown source or an unwritable report is an
// error; fetch and delivery problems are logged and reflected in the Summary.
func (a *App) Run(ctx context.Context) (Summary, error) {
	var sum Summary

	opts := scraper.Options{
		Keywords:   a.cfg.Search.Keywords,
		UserAgent:  a.cfg.Search.UserAgent,
		Timeout:    a.cfg.Search.Timeout,
		MaxResults: a.cfg.Sources.MaxResults,
	}

	var limiter *scraper.HostLimiter
	if a.cfg.Search.RequestsPerSecond > 0 {
		limiter = scraper.NewHostLimiter(a.cfg.Search.RequestsPerSecond, 1)
	}
	fetcher := scraper.NewFetcher(opts, limiter)

	scrapers, err := a.registry.Build(a.cfg.Sources.Enabled, fetcher, opts, a.log)
	if err != nil {
		return sum, fmt.Errorf("build sources: %w", err)
	}

	a.log.Info("🚀 Starting job search",
		zap.Strings("locations", a.cfg.Search.Locations),
		zap.Strings("sources", a.cfg.Sources.Enabled),
		zap.String("keywords", a.cfg.Search.Keywords))

	raw := aggregate.New(scrapers, aggregate.Options{
		Locations: a.cfg.Search.Locations,
		Delay:     a.cfg.Search.LocationDelay,
		Parallel:  a.cfg.Sources.Parallel,
	}, a.log).Run(ctx)
	sum.Collected = len(raw)

	sum.Jobs = dedup.Consolidate(raw, filter.NewMatcher(a.cfg.Filters))
	a.log.Info("🔍 Consolidated", zap.Int("collected", len(raw)), zap.Int("kept", len(sum.Jobs)))

	sum.Report, err = reporter.New(a.cfg.Output, a.log).Save(sum.Jobs)
	if err != nil {
		return sum, err
	}

	if sum.Report.Saved == 0 {
		a.log.Info("ℹ️ Nothing to deliver")
		return sum, nil
	}

	msg := notifier.NewMessage(sum.Report.Saved, sum.Report.Files())
	sum.Deliveries = notifier.Deliver(ctx, a.notifiers, msg, a.log)
	return sum, nil
}
