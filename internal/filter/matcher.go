package filter

import (
	"regexp"

	"go-job-alert/internal/config"
	"go-job-alert/internal/scraper"
)

// Matcher holds the compiled seniority and work-mode vocabularies. It is the
// single inclusion predicate shared by every source.
type Matcher struct {
	experience      *regexp.Regexp
	workMode        *regexp.Regexp
	requireWorkMode bool
}

func NewMatcher(cfg config.FilterConfig) *Matcher {
	return &Matcher{
		experience:      compileAny(cfg.ExperienceKeywords),
		workMode:        compileAny(cfg.WorkModes),
		requireWorkMode: cfg.RequireWorkMode,
	}
}

var defaultMatcher = NewMatcher(config.FilterConfig{
	ExperienceKeywords: config.DefaultExperienceKeywords,
	WorkModes:          config.DefaultWorkModes,
})

// MatchesExperience reports whether text carries an entry-level indicator.
func (m *Matcher) MatchesExperience(text string) bool {
	return m.experience != nil && m.experience.MatchString(normalizeText(text))
}

// MatchesWorkMode reports whether text names a recognised work arrangement.
func (m *Matcher) MatchesWorkMode(text string) bool {
	return m.workMode != nil && m.workMode.MatchString(normalizeText(text))
}

func (m *Matcher) ShouldIncludeJob(job scraper.Job) bool {
	if !m.MatchesExperience(job.Title + " " + job.Summary) {
		return false
	}
	if m.requireWorkMode && !m.MatchesWorkMode(job.Title+" "+job.Summary+" "+job.Location) {
		return false
	}
	return true
}

// MatchesExperience checks text against the default entry-level vocabulary.
func MatchesExperience(text string) bool {
	return defaultMatcher.MatchesExperience(text)
}

// MatchesWorkMode checks text against the default work-mode vocabulary.
func MatchesWorkMode(text string) bool {
	return defaultMatcher.MatchesWorkMode(text)
}
