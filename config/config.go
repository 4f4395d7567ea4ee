package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"

	DefaultAppLabel   = "polls"
	DefaultIndexLimit = 5
)

type Config struct {
	DatabaseURL  string `env:"DATABASE_URL"`
	DatabaseType string `env:"DATABASE_TYPE" envDefault:"sqlite"`
	AppLabel     string `env:"POLLS_APP_LABEL" envDefault:"polls"`
	IndexLimit   int    `env:"POLLS_INDEX_LIMIT" envDefault:"5"`
}

// Load reads .env (if present), then the environment, then args.
// Flags win over env variables.
func Load(args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse(args)
}

// Parse builds a Config from the environment and args without touching .env
func Parse(args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("polls", flag.ContinueOnError)

	// Defaults come from env so unset flags keep them
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.AppLabel, "app", cfg.AppLabel, "App label prefixing the question and choice tables")
	fs.IntVar(&cfg.IndexLimit, "limit", cfg.IndexLimit, "Questions shown on the index page (0 for all)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks required settings
func (c Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	switch c.DatabaseType {
	case DatabaseSQLite, DatabasePostgres:
	default:
		return fmt.Errorf("unsupported database type %q", c.DatabaseType)
	}
	if c.AppLabel == "" {
		return errors.New("app label must not be empty")
	}
	if c.IndexLimit < 0 {
		return errors.New("index limit must not be negative")
	}
	return nil
}
