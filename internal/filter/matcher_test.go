package filter

import (
	"testing"

	"go-job-alert/internal/config"
	"go-job-alert/internal/scraper"

	"github.com/stretchr/testify/assert"
)

func TestMatchesExperience(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"junior in title", "Junior Web Developer", true},
		{"upper case", "JUNIOR DEVELOPER", true},
		{"entry level with space", "Software Engineer - Entry Level", true},
		{"entry level with hyphen", "entry-level backend role", true},
		{"entry level with double space", "entry  level", true},
		{"graduate at end", "Join us as a graduate", true},
		{"intern", "Software Intern (Summer)", true},
		{"internship", "Web development internship", true},
		{"diacritics", "Désarrolladór Júnior", true},
		{"plural graduates", "Hiring 2026 graduates", true},
		{"plural interns", "Summer interns wanted", true},
		{"plural juniors", "Juniors welcome", true},
		{"plural internships", "Paid internships in Riyadh", true},
		{"senior", "Senior Architect", false},
		{"international is not intern", "International Sales Lead", false},
		{"internal is not intern", "Internal tools engineer", false},
		{"undergraduate is not graduate", "undergraduates welcome", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesExperience(tt.text))
		})
	}
}

func TestMatchesExperience_AnyPosition(t *testing.T) {
	for _, kw := range config.DefaultExperienceKeywords {
		for _, text := range []string{kw, "prefix " + kw, kw + " suffix", "a (" + kw + ") b"} {
			assert.True(t, MatchesExperience(text), text)
		}
	}
}

func TestMatchesWorkMode(t *testing.T) {
	assert.True(t, MatchesWorkMode("Fully Remote"))
	assert.True(t, MatchesWorkMode("hybrid, 3 days in office"))
	assert.True(t, MatchesWorkMode("On-site in Riyadh"))
	assert.False(t, MatchesWorkMode("Bangalore office"))
	assert.False(t, MatchesWorkMode("remoteness"))
}

func TestShouldIncludeJob(t *testing.T) {
	junior := scraper.Job{Title: "Junior Developer", Summary: "work from anywhere", Location: "India"}
	remote := scraper.Job{Title: "Junior Developer", Summary: "", Location: "Remote"}
	senior := scraper.Job{Title: "Senior Developer", Company: "Junior Achievement", Location: "Remote"}

	m := NewMatcher(config.FilterConfig{
		ExperienceKeywords: config.DefaultExperienceKeywords,
		WorkModes:          config.DefaultWorkModes,
	})
	assert.True(t, m.ShouldIncludeJob(junior))
	assert.True(t, m.ShouldIncludeJob(remote))
	assert.False(t, m.ShouldIncludeJob(senior), "company name is not part of the predicate")

	strict := NewMatcher(config.FilterConfig{
		ExperienceKeywords: config.DefaultExperienceKeywords,
		WorkModes:          config.DefaultWorkModes,
		RequireWorkMode:    true,
	})
	assert.False(t, strict.ShouldIncludeJob(junior))
	assert.True(t, strict.ShouldIncludeJob(remote))
}

func TestEmptyVocabulary(t *testing.T) {
	m := NewMatcher(config.FilterConfig{})
	assert.False(t, m.MatchesExperience("junior"))
	assert.False(t, m.MatchesWorkMode("remote"))
	assert.False(t, m.ShouldIncludeJob(scraper.Job{Title: "Junior"}))
}
