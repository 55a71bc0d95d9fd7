// Prints the effective configuration and its validation warnings without
// fetching anything.
package main

import (
	"fmt"
	"os"
	"strings"

	"go-job-alert/internal/config"
)

func main() {
	path := config.Path()
	fmt.Printf("🔧 Testing config loading from %s...\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Config loaded successfully!\n")
	fmt.Printf("   Keywords: %s\n", cfg.Search.Keywords)
	fmt.Printf("   Locations: %s\n", strings.Join(cfg.Search.Locations, ", "))
	fmt.Printf("   Sources: %s (max %d each, parallel=%t)\n", strings.Join(cfg.Sources.Enabled, ", "), cfg.Sources.MaxResults, cfg.Sources.Parallel)
	fmt.Printf("   Experience keywords: %s\n", strings.Join(cfg.Filters.ExperienceKeywords, ", "))
	fmt.Printf("   Require work mode: %t %v\n", cfg.Filters.RequireWorkMode, cfg.Filters.WorkModes)
	fmt.Printf("   Output: %s, %s\n", cfg.Output.CSVPath, cfg.Output.HTMLPath)
	fmt.Printf("   Email: %s\n", configured(cfg.Email.Configured(), fmt.Sprintf("%s:%d -> %s", cfg.Email.Host, cfg.Email.Port, strings.Join(cfg.Email.To, ", "))))
	fmt.Printf("   Telegram: %s\n", configured(cfg.Telegram.Configured(), fmt.Sprintf("chat %d", cfg.Telegram.ChatID)))

	for _, w := range cfg.Validate().Warnings {
		fmt.Printf("⚠️ %s\n", w)
	}
}

func configured(ok bool, detail string) string {
	if !ok {
		return "not configured"
	}
	return detail
}
