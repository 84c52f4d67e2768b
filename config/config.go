package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Catalog struct {
		BaseURL   string `yaml:"base_url"`
		IndexPath string `yaml:"index_path"`
	} `yaml:"catalog"`

	Faculty struct {
		ArtsSciencesURL  string `yaml:"arts_sciences_url"`
		EngineeringURL   string `yaml:"engineering_url"`
		EngineeringPages int    `yaml:"engineering_pages"`
	} `yaml:"faculty"`

	Clubs struct {
		PagePath string `yaml:"page_path"`
	} `yaml:"clubs"`

	Scrape struct {
		Concurrency int    `yaml:"concurrency"`
		Timeout     string `yaml:"timeout"`
		Retries     int    `yaml:"retries"`
		UserAgent   string `yaml:"user_agent"`
	} `yaml:"scrape"`

	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`

	Output string `yaml:"output"`

	timeout time.Duration
}

func setDefaults(config *Config) {
	config.Catalog.BaseURL = "https://catalog.drexel.edu"
	config.Catalog.IndexPath = "/coursedescriptions/quarter/undergrad"

	config.Faculty.ArtsSciencesURL = "https://drexel.edu/coas/faculty-research/faculty-directory/"
	config.Faculty.EngineeringURL = "https://drexel.edu/engineering/about/faculty-staff/?q&sortBy=relevance&sortOrder=asc"
	config.Faculty.EngineeringPages = 22

	config.Clubs.PagePath = "data_generation/pages/clubs.html"

	config.Scrape.Concurrency = 8
	config.Scrape.Timeout = "30s"
	config.Scrape.Retries = 2

	config.Logging.Level = "info"
	config.Logging.Format = "text"

	config.Output = "drexel.json"
}

// Timeout is the scrape timeout parsed by Load. A Config that did not come
// from Load reports zero, which the fetch client treats as its default.
func (c *Config) Timeout() time.Duration {
	return c.timeout
}

func splitExt(name string) (string, string) {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext), ext
}

// LocalPath is where a config file's uncommitted overrides live,
// catalog.yaml -> catalog.local.yaml.
func LocalPath(path string) string {
	prefix, ext := splitExt(path)
	return prefix + ".local" + ext
}

// readFile decodes a YAML file and merges its non-zero fields over config.
// A missing file is not an error.
func readFile(config *Config, path string) (bool, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read config file: %w", err)
	}

	var override Config
	if err := yaml.Unmarshal(content, &override); err != nil {
		return false, fmt.Errorf("failed to parse %v: %w", path, err)
	}
	if err := mergo.Merge(config, override, mergo.WithOverride); err != nil {
		return false, fmt.Errorf("failed to merge %v: %w", path, err)
	}
	return true, nil
}

// Load builds the configuration from, in increasing priority: defaults, the
// YAML file at path, its .local override, a .env file next to it, and the
// environment.
func Load(path string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	found, err := readFile(config, path)
	if err != nil {
		return nil, err
	}
	if !found {
		slog.Debug("config file not found, using defaults", "path", path)
	}

	localPath := LocalPath(path)
	found, err = readFile(config, localPath)
	if err != nil {
		return nil, err
	}
	if found {
		slog.Info("merging config with local overrides", "local", localPath)
	}

	if err := loadDotEnv(filepath.Join(filepath.Dir(path), ".env")); err != nil {
		return nil, err
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// loadDotEnv never overrides variables that are already set.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("skipping .env", "path", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load %v: %w", path, err)
	}
	return nil
}

func loadFromEnv(config *Config) error {
	if value, exists := os.LookupEnv("DATABASE_CONNECTION_STRING"); exists {
		config.Database.URL = value
	}
	if value, exists := os.LookupEnv("CATALOG_BASE_URL"); exists {
		config.Catalog.BaseURL = value
	}
	if value, exists := os.LookupEnv("LOG_LEVEL"); exists {
		config.Logging.Level = value
	}
	if value, exists := os.LookupEnv("SCRAPE_CONCURRENCY"); exists {
		concurrency, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("SCRAPE_CONCURRENCY: %w", err)
		}
		config.Scrape.Concurrency = concurrency
	}
	return nil
}

func validateConfig(config *Config) error {
	baseURL, err := url.Parse(config.Catalog.BaseURL)
	if err != nil || baseURL.Scheme == "" || baseURL.Host == "" {
		return fmt.Errorf("catalog base url %q is not absolute", config.Catalog.BaseURL)
	}

	if config.Scrape.Concurrency < 1 {
		return fmt.Errorf("scrape concurrency must be positive, got %d", config.Scrape.Concurrency)
	}

	if config.Faculty.EngineeringPages < 0 {
		return fmt.Errorf("engineering pages must not be negative, got %d", config.Faculty.EngineeringPages)
	}

	timeout, err := time.ParseDuration(config.Scrape.Timeout)
	if err != nil {
		return fmt.Errorf("invalid scrape timeout format: %w", err)
	}
	if timeout <= 0 {
		return fmt.Errorf("scrape timeout must be positive, got %v", timeout)
	}
	config.timeout = timeout

	var level slog.Level
	if err := level.UnmarshalText([]byte(config.Logging.Level)); err != nil {
		return fmt.Errorf("invalid logging level: %w", err)
	}

	switch strings.ToLower(config.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("logging format must be text or json, got %q", config.Logging.Format)
	}

	return nil
}
