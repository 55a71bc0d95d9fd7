// Load envs from .env
// Load YAML config
// Apply env overrides and default values

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go-job-alert/internal/logger"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "configs/config.yaml"

type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Filters FilterConfig  `yaml:"filters"`
	Sources SourcesConfig `yaml:"sources"`
	Output  OutputConfig  `yaml:"output"`
	Log     logger.Config `yaml:"log"`

	//delivery credentials only ever come from the environment
	Email    EmailConfig    `yaml:"-"`
	Telegram TelegramConfig `yaml:"-"`
}

type SearchConfig struct {
	Keywords          string        `yaml:"keywords"`
	Locations         []string      `yaml:"locations"`
	UserAgent         string        `yaml:"user_agent"`
	Timeout           time.Duration `yaml:"timeout"`
	LocationDelay     time.Duration `yaml:"location_delay"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
}

type FilterConfig struct {
	ExperienceKeywords []string `yaml:"experience_keywords"`
	WorkModes          []string `yaml:"work_modes"`
	RequireWorkMode    bool     `yaml:"require_work_mode"`
}

type SourcesConfig struct {
	Enabled    []string `yaml:"enabled"`
	MaxResults int      `yaml:"max_results"`
	Parallel   bool     `yaml:"parallel"`
}

type OutputConfig struct {
	CSVPath  string `yaml:"csv_path"`
	HTMLPath string `yaml:"html_path"`
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	To       []string
}

// Configured reports whether every field needed to send mail is present.
func (e EmailConfig) Configured() bool {
	return e.Host != "" && e.User != "" && e.Password != "" && len(e.To) > 0
}

type TelegramConfig struct {
	Token  string
	ChatID int64
}

func (t TelegramConfig) Configured() bool {
	return t.Token != "" && t.ChatID != 0
}

// Load reads .env, the optional YAML file at path and the environment, in that
// order of increasing precedence. A missing YAML file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)
	normalize(cfg)
	return cfg, nil
}

// Path returns the YAML config path, honouring CONFIG_PATH.
func Path() string {
	if p := strings.TrimSpace(os.Getenv("CONFIG_PATH")); p != "" {
		return p
	}
	return DefaultPath
}

func applyEnv(cfg *Config) error {
	cfg.Email.Host = strings.TrimSpace(os.Getenv("EMAIL_SMTP_HOST"))
	cfg.Email.User = strings.TrimSpace(os.Getenv("EMAIL_USER"))
	cfg.Email.Password = os.Getenv("EMAIL_PASS")
	cfg.Email.To = splitList(os.Getenv("EMAIL_TO"))

	if port := strings.TrimSpace(os.Getenv("EMAIL_SMTP_PORT")); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil || p <= 0 || p > 65535 {
			return fmt.Errorf("invalid EMAIL_SMTP_PORT %q", port)
		}
		cfg.Email.Port = p
	}

	cfg.Telegram.Token = strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN"))
	if chatID := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.Telegram.ChatID = id
	}

	if locs := splitList(os.Getenv("JOB_LOCATIONS")); len(locs) > 0 {
		cfg.Search.Locations = locs
	}
	if kw := strings.TrimSpace(os.Getenv("JOB_KEYWORDS")); kw != "" {
		cfg.Search.Keywords = kw
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		cfg.Log.Format = format
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Search.Keywords == "" {
		cfg.Search.Keywords = DefaultKeywords
	}
	if len(cfg.Search.Locations) == 0 {
		cfg.Search.Locations = append([]string(nil), DefaultLocations...)
	}
	if cfg.Search.UserAgent == "" {
		cfg.Search.UserAgent = DefaultUserAgent
	}
	if cfg.Search.Timeout <= 0 {
		cfg.Search.Timeout = 15 * time.Second
	}
	if cfg.Search.LocationDelay <= 0 {
		cfg.Search.LocationDelay = time.Second
	}
	if cfg.Search.RequestsPerSecond <= 0 {
		cfg.Search.RequestsPerSecond = 1
	}

	if cfg.Filters.ExperienceKeywords == nil {
		cfg.Filters.ExperienceKeywords = append([]string(nil), DefaultExperienceKeywords...)
	}
	if cfg.Filters.WorkModes == nil {
		cfg.Filters.WorkModes = append([]string(nil), DefaultWorkModes...)
	}

	if len(cfg.Sources.Enabled) == 0 {
		cfg.Sources.Enabled = append([]string(nil), DefaultSources...)
	}
	if cfg.Sources.MaxResults <= 0 {
		cfg.Sources.MaxResults = 30
	}

	if cfg.Output.CSVPath == "" {
		cfg.Output.CSVPath = "jobs.csv"
	}
	if cfg.Output.HTMLPath == "" {
		cfg.Output.HTMLPath = "jobs.html"
	}

	if cfg.Email.Port == 0 {
		cfg.Email.Port = 587
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
