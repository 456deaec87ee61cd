package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected LogLevel 'info', got '%s'", cfg.LogLevel)
	}

	if cfg.Generate.Records != 700 {
		t.Errorf("Expected Generate.Records 700, got %d", cfg.Generate.Records)
	}
	if cfg.Generate.DaysBefore != 30 {
		t.Errorf("Expected Generate.DaysBefore 30, got %d", cfg.Generate.DaysBefore)
	}
	if cfg.Generate.DaysAfter != 90 {
		t.Errorf("Expected Generate.DaysAfter 90, got %d", cfg.Generate.DaysAfter)
	}
	if cfg.Generate.StockMin != 50 || cfg.Generate.StockMax != 500 {
		t.Errorf("Expected stock range [50, 500], got [%d, %d]",
			cfg.Generate.StockMin, cfg.Generate.StockMax)
	}
	if cfg.Generate.BatchSize != 100 {
		t.Errorf("Expected Generate.BatchSize 100, got %d", cfg.Generate.BatchSize)
	}
	if cfg.Generate.Dialect != "mysql" {
		t.Errorf("Expected Generate.Dialect 'mysql', got '%s'", cfg.Generate.Dialect)
	}
	if cfg.Generate.FromStation != "北京" || cfg.Generate.ToStation != "上海" {
		t.Errorf("Unexpected default route: %s -> %s",
			cfg.Generate.FromStation, cfg.Generate.ToStation)
	}
	if cfg.Generate.SQLOut != "seed_tickets.sql" {
		t.Errorf("Expected Generate.SQLOut 'seed_tickets.sql', got '%s'", cfg.Generate.SQLOut)
	}
	if cfg.Generate.ReportOut != "data_generation_report.md" {
		t.Errorf("Expected Generate.ReportOut 'data_generation_report.md', got '%s'",
			cfg.Generate.ReportOut)
	}
}

func TestValidateGenerate(t *testing.T) {
	modify := func(fn func(*GenerateConfig)) *Config {
		cfg := DefaultConfig()
		fn(&cfg.Generate)
		return cfg
	}

	tests := []struct {
		name      string
		cfg       *Config
		wantError bool
	}{
		{
			name:      "defaults are valid",
			cfg:       DefaultConfig(),
			wantError: false,
		},
		{
			name:      "zero records",
			cfg:       modify(func(g *GenerateConfig) { g.Records = 0 }),
			wantError: true,
		},
		{
			name:      "negative days_before",
			cfg:       modify(func(g *GenerateConfig) { g.DaysBefore = -1 }),
			wantError: true,
		},
		{
			name: "empty date window",
			cfg: modify(func(g *GenerateConfig) {
				g.DaysBefore = 0
				g.DaysAfter = 0
			}),
			wantError: true,
		},
		{
			name: "inverted stock range",
			cfg: modify(func(g *GenerateConfig) {
				g.StockMin = 500
				g.StockMax = 50
			}),
			wantError: true,
		},
		{
			name:      "zero batch size",
			cfg:       modify(func(g *GenerateConfig) { g.BatchSize = 0 }),
			wantError: true,
		},
		{
			name:      "unknown dialect",
			cfg:       modify(func(g *GenerateConfig) { g.Dialect = "oracle" }),
			wantError: true,
		},
		{
			name:      "sqlite dialect is valid",
			cfg:       modify(func(g *GenerateConfig) { g.Dialect = "sqlite" }),
			wantError: false,
		},
		{
			name:      "missing station",
			cfg:       modify(func(g *GenerateConfig) { g.FromStation = "" }),
			wantError: true,
		},
		{
			name:      "missing sql_out",
			cfg:       modify(func(g *GenerateConfig) { g.SQLOut = "" }),
			wantError: true,
		},
		{
			name:      "missing report_out",
			cfg:       modify(func(g *GenerateConfig) { g.ReportOut = "" }),
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.ValidateGenerate()
			if tt.wantError && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Expected no error, got: %v", err)
			}
		})
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	defer os.Chdir(oldWd)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with no config file should use defaults, got: %v", err)
	}
	if cfg.Generate.Records != 700 {
		t.Errorf("Expected default records 700, got %d", cfg.Generate.Records)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ticketgen.yaml")

	content := []byte(`log_level: debug
generate:
  records: 40
  seed: 1234
  dialect: sqlite
  sql_out: out.sql
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("Expected LogLevel 'debug', got '%s'", cfg.LogLevel)
	}
	if cfg.Generate.Records != 40 {
		t.Errorf("Expected records 40, got %d", cfg.Generate.Records)
	}
	if cfg.Generate.Seed != 1234 {
		t.Errorf("Expected seed 1234, got %d", cfg.Generate.Seed)
	}
	if cfg.Generate.Dialect != "sqlite" {
		t.Errorf("Expected dialect 'sqlite', got '%s'", cfg.Generate.Dialect)
	}
	if cfg.Generate.SQLOut != "out.sql" {
		t.Errorf("Expected sql_out 'out.sql', got '%s'", cfg.Generate.SQLOut)
	}

	// Values absent from the file keep their defaults.
	if cfg.Generate.BatchSize != 100 {
		t.Errorf("Expected default batch_size 100, got %d", cfg.Generate.BatchSize)
	}
	if cfg.Generate.ReportOut != "data_generation_report.md" {
		t.Errorf("Expected default report_out, got '%s'", cfg.Generate.ReportOut)
	}
}
