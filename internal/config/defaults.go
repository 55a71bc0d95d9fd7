package config

const (
	DefaultKeywords  = `software engineer OR "web developer" OR web dev`
	DefaultUserAgent = "Mozilla/5.0 (compatible; job-fetcher/1.0; +https://example.com/bot)"
)

var (
	DefaultLocations = []string{"India", "Saudi Arabia"}

	DefaultExperienceKeywords = []string{"junior", "entry level", "entry-level", "graduate", "intern", "internship"}

	DefaultWorkModes = []string{"remote", "hybrid", "on-site"}

	//fixed run order, advisory-only boards last
	DefaultSources = []string{"indeed", "wellfound", "glassdoor", "linkedin"}
)
