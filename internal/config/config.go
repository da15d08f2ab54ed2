// Package config is the single source of truth for the two pipeline filenames
// and the ambient runtime knobs. The cleaning job deliberately takes no flags
// or arguments; environment variables only tune logging and optional exports,
// never the data contract.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Fixed pipeline filenames. One input file in, one output file out.
const (
	InputFile  = "student_performance.csv"
	OutputFile = "student_performance_cleaned.csv"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `envconfig:"LOGGING"`
	Export  ExportConfig  `envconfig:"EXPORT"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `envconfig:"LEVEL" default:"info"`
	Format string `envconfig:"FORMAT" default:"text"`
}

// ExportConfig contains output artifact configuration
type ExportConfig struct {
	// ExcelCopy additionally writes the cleaned table as an .xlsx file
	// beside the CSV. The CSV remains the contractual artifact.
	ExcelCopy bool `envconfig:"EXCEL_COPY" default:"false"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("STUDENTPERF", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration values are usable
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}
	return nil
}
