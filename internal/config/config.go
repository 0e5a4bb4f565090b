// Package config reads century's settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/century/internal/domain"
)

// Config holds the runtime settings of the century CLI.
type Config struct {
	// DBPath is the SQLite file holding stored schedules.
	DBPath string
	// TemplateDir optionally overrides catalog templates by id. Empty means
	// the embedded catalog only.
	TemplateDir string
	StartYear   int
	EndYear     int
	SiteFile    string
	ExportDir   string
	LogUseCases bool
}

// DefaultConfig returns the settings used when no environment variable is
// set. The database lives under ~/.century.
func DefaultConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	return Config{
		DBPath:    filepath.Join(home, ".century", "century.db"),
		StartYear: domain.DefaultStartYear,
		EndYear:   domain.DefaultLastYear,
		SiteFile:  domain.DefaultSiteFile,
		ExportDir: ".",
	}, nil
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset or unparsable values.
func Load() (Config, error) {
	cfg, err := DefaultConfig()
	if err != nil {
		return Config{}, err
	}

	if v := os.Getenv("CENTURY_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("CENTURY_TEMPLATES"); v != "" {
		cfg.TemplateDir = v
	}
	if n, ok := envYear("CENTURY_START_YEAR"); ok {
		cfg.StartYear = n
	}
	if n, ok := envYear("CENTURY_END_YEAR"); ok {
		cfg.EndYear = n
	}
	if v := os.Getenv("CENTURY_SITE_FILE"); v != "" {
		cfg.SiteFile = v
	}
	if v := os.Getenv("CENTURY_EXPORT_DIR"); v != "" {
		cfg.ExportDir = v
	}
	if v := os.Getenv("CENTURY_LOG_USECASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}

	if cfg.EndYear < cfg.StartYear {
		return Config{}, fmt.Errorf("CENTURY_END_YEAR %d precedes CENTURY_START_YEAR %d", cfg.EndYear, cfg.StartYear)
	}
	return cfg, nil
}

// GlobalParams returns the default global parameters for new schedules.
func (c Config) GlobalParams() domain.GlobalParams {
	p := domain.DefaultGlobalParams()
	p.StartYear = c.StartYear
	p.LastYear = c.EndYear
	p.SiteFile = c.SiteFile
	return p
}

func envYear(name string) (int, bool) {
	v := os.Getenv(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
