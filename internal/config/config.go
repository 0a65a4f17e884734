package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Backend BackendConfig
	UI      UIConfig
	Log     LogConfig
}

type BackendConfig struct {
	URL          string // empty selects the built-in fixture backend
	FixturesFile string
	Timeout      time.Duration
	FixtureAddr  string // listen address of followgo-fixtures
}

type UIConfig struct {
	RefreshInterval time.Duration
	Locale          language.Tag
	Theme           string
	ExportDir       string
}

type LogConfig struct {
	File string
}

// fileConfig is the optional YAML overlay. Environment variables win over it.
type fileConfig struct {
	BackendURL      string `yaml:"backend-url"`
	Fixtures        string `yaml:"fixtures"`
	RequestTimeout  string `yaml:"request-timeout"`
	FixtureAddr     string `yaml:"fixture-addr"`
	RefreshInterval string `yaml:"refresh-interval"`
	Locale          string `yaml:"locale"`
	Theme           string `yaml:"theme"`
	ExportDir       string `yaml:"export-dir"`
	LogFile         string `yaml:"log-file"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var fc fileConfig
	if path := os.Getenv("FOLLOWGO_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	timeout, err := getDuration("FOLLOWGO_REQUEST_TIMEOUT", or(fc.RequestTimeout, "30s"))
	if err != nil {
		return nil, err
	}
	refresh, err := getDuration("FOLLOWGO_REFRESH_INTERVAL", or(fc.RefreshInterval, "5m"))
	if err != nil {
		return nil, err
	}
	locale, err := language.Parse(getEnv("FOLLOWGO_LOCALE", or(fc.Locale, "en")))
	if err != nil {
		return nil, fmt.Errorf("FOLLOWGO_LOCALE: %w", err)
	}

	return &Config{
		Backend: BackendConfig{
			URL:          getEnv("FOLLOWGO_BACKEND_URL", fc.BackendURL),
			FixturesFile: getEnv("FOLLOWGO_FIXTURES", fc.Fixtures),
			Timeout:      timeout,
			FixtureAddr:  getEnv("FOLLOWGO_FIXTURE_ADDR", or(fc.FixtureAddr, ":8765")),
		},
		UI: UIConfig{
			RefreshInterval: refresh,
			Locale:          locale,
			Theme:           getEnv("FOLLOWGO_THEME", fc.Theme),
			ExportDir:       getEnv("FOLLOWGO_EXPORT_DIR", or(fc.ExportDir, ".")),
		},
		Log: LogConfig{
			File: getEnv("FOLLOWGO_LOG_FILE", or(fc.LogFile, "followgo.log")),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key, defaultValue string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %v", key, d)
	}
	return d, nil
}

func or(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
