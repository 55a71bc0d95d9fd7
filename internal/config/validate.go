package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Warnings []string
}

func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}

// normalize trims and case-insensitively dedups every list field in place.
func normalize(cfg *Config) {
	cfg.Search.Locations = trimList(cfg.Search.Locations)
	cfg.Filters.ExperienceKeywords = trimList(cfg.Filters.ExperienceKeywords)
	cfg.Filters.WorkModes = trimList(cfg.Filters.WorkModes)
	cfg.Email.To = trimList(cfg.Email.To)

	sources := trimList(cfg.Sources.Enabled)
	for i := range sources {
		sources[i] = strings.ToLower(sources[i])
	}
	cfg.Sources.Enabled = sources
}

func trimList(xs []string) []string {
	seen := map[string]bool{}
	ys := []string{}
	for _, x := range xs {
		x = strings.TrimSpace(x)
		if x == "" {
			continue
		}
		key := strings.ToLower(x)
		if seen[key] {
			continue
		}
		seen[key] = true
		ys = append(ys, x)
	}
	return ys
}

// Validate reports settings that are legal but will probably produce an empty report.
func (c *Config) Validate() Validation {
	var res Validation

	if len(c.Search.Locations) == 0 {
		res.addWarn("search.locations is empty; no boards will be queried")
	}
	if len(c.Filters.ExperienceKeywords) == 0 {
		res.addWarn("filters.experience_keywords is empty; every posting will be filtered out")
	}
	if c.Filters.RequireWorkMode && len(c.Filters.WorkModes) == 0 {
		res.addWarn("filters.require_work_mode is set but filters.work_modes is empty")
	}
	if len(c.Sources.Enabled) == 0 {
		res.addWarn("sources.enabled is empty")
	}
	if c.Search.RequestsPerSecond > 5 {
		res.addWarn("search.requests_per_second is high (%.1f) and may trigger anti-bot defenses", c.Search.RequestsPerSecond)
	}
	return res
}
