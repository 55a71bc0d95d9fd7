package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-job-alert/internal/app"
	"go-job-alert/internal/config"
	"go-job-alert/internal/logger"
	"go-job-alert/internal/reporter"

	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	//load config
	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to load config: %v\n", err)
		return 1
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to init logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	for _, w := range cfg.Validate().Warnings {
		log.Warn("⚠️ " + w)
	}
	log.Info("🔧 Config loaded",
		zap.Strings("locations", cfg.Search.Locations),
		zap.Bool("email", cfg.Email.Configured()),
		zap.Bool("telegram", cfg.Telegram.Configured()))

	//one pass must finish within 10 mins
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 10*time.Minute)
	defer cancel()

	summary, err := app.New(cfg, log).Run(ctx)
	if err != nil {
		log.Error("❌ Run failed", zap.Error(err))
		return 1
	}

	fmt.Print(reporter.Summary(summary.Jobs))
	log.Info("🏁 Execution finished.",
		zap.Int("collected", summary.Collected),
		zap.Int("saved", summary.Report.Saved))
	return 0
}
