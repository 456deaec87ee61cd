//-------------------------------------------------------------------------
//
// ticketgen - train ticket seed data generator
//
// Copyright (c) 2025 - 2026, Railtest Labs
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for ticketgen.
// Configuration is loaded from config files and CLI flags (no environment
// variables). CLI flags take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for ticketgen.
type Config struct {
	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Generate holds configuration for the generate subcommand.
	Generate GenerateConfig `mapstructure:"generate"`
}

// GenerateConfig holds configuration for dataset generation.
type GenerateConfig struct {
	// Records is the target total number of ticket records, split evenly
	// across the train categories.
	Records int `mapstructure:"records"`

	// DaysBefore and DaysAfter define the departure date window relative
	// to today. The window spans DaysBefore+DaysAfter days.
	DaysBefore int `mapstructure:"days_before"`
	DaysAfter  int `mapstructure:"days_after"`

	// Seed seeds the random source for reproducible runs. 0 derives a
	// seed from the current time.
	Seed uint64 `mapstructure:"seed"`

	// StockMin and StockMax bound the per-tier seat stock.
	StockMin int `mapstructure:"stock_min"`
	StockMax int `mapstructure:"stock_max"`

	// BatchSize is the number of rows per INSERT statement.
	BatchSize int `mapstructure:"batch_size"`

	// Dialect selects the SQL dialect of the seed script: mysql or sqlite.
	Dialect string `mapstructure:"dialect"`

	// FromStation and ToStation name the fixed route endpoints.
	FromStation string `mapstructure:"from_station"`
	ToStation   string `mapstructure:"to_station"`

	// SQLOut is the path of the generated seed script.
	SQLOut string `mapstructure:"sql_out"`

	// ReportOut is the path of the generated validation report.
	ReportOut string `mapstructure:"report_out"`
}

// DefaultConfig returns a Config with default values. The defaults mirror
// the canonical Beijing-Shanghai seed dataset: ~700 records over a 120-day
// window around today.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Generate: GenerateConfig{
			Records:     700,
			DaysBefore:  30,
			DaysAfter:   90,
			Seed:        0,
			StockMin:    50,
			StockMax:    500,
			BatchSize:   100,
			Dialect:     "mysql",
			FromStation: "北京",
			ToStation:   "上海",
			SQLOut:      "seed_tickets.sql",
			ReportOut:   "data_generation_report.md",
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./ticketgen.yaml
// 3. ~/.config/ticketgen/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("ticketgen")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "ticketgen"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// ValidateGenerate checks configuration required for the generate command.
func (c *Config) ValidateGenerate() error {
	g := c.Generate
	if g.Records < 1 {
		return fmt.Errorf("records must be at least 1")
	}
	if g.DaysBefore < 0 || g.DaysAfter < 0 {
		return fmt.Errorf("days_before and days_after must be non-negative")
	}
	if g.DaysBefore+g.DaysAfter < 1 {
		return fmt.Errorf("date window must span at least 1 day")
	}
	if g.StockMin < 0 {
		return fmt.Errorf("stock_min must be non-negative")
	}
	if g.StockMax < g.StockMin {
		return fmt.Errorf("stock_max must be >= stock_min")
	}
	if g.BatchSize < 1 {
		return fmt.Errorf("batch_size must be at least 1")
	}
	if g.Dialect != "mysql" && g.Dialect != "sqlite" {
		return fmt.Errorf("dialect must be 'mysql' or 'sqlite'")
	}
	if g.FromStation == "" || g.ToStation == "" {
		return fmt.Errorf("from_station and to_station are required")
	}
	if g.SQLOut == "" {
		return fmt.Errorf("sql_out path is required")
	}
	if g.ReportOut == "" {
		return fmt.Errorf("report_out path is required")
	}
	return nil
}
