package refdata

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Dir != "out" {
		t.Fatalf("default output dir: got=%q want=out", cfg.Output.Dir)
	}
	if !cfg.Output.JSON || !cfg.Output.Excel {
		t.Fatal("json and excel exports should default on")
	}
	if cfg.Output.PDF || cfg.Output.SQLite {
		t.Fatal("pdf and sqlite exports should default off")
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("default log level: got=%q want=info", cfg.Logging.Level)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dashboard.yaml")
	content := "output:\n  dir: reports\n  sqlite: true\ncharts:\n  width_cm: 30\nlogging:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Dir != "reports" {
		t.Fatalf("output dir: got=%q want=reports", cfg.Output.Dir)
	}
	if !cfg.Output.SQLite {
		t.Fatal("sqlite export should be enabled")
	}
	if cfg.Charts.WidthCM != 30 {
		t.Fatalf("chart width: got=%f want=30", cfg.Charts.WidthCM)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("log level: got=%q want=debug", cfg.Logging.Level)
	}
	// Unset keys keep their defaults.
	if cfg.Charts.HeightCM != 14 {
		t.Fatalf("chart height default: got=%f want=14", cfg.Charts.HeightCM)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestConfigValidation(t *testing.T) {
	cfg := &Config{
		Output:  OutputConfig{Dir: "out"},
		Charts:  ChartConfig{WidthCM: 24, HeightCM: 14},
		Logging: LoggingConfig{Level: "verbose"},
	}
	if err := cfg.ValidateConfig(); err == nil {
		t.Fatal("expected error for unknown log level")
	}
	cfg.Logging.Level = "warn"
	if err := cfg.ValidateConfig(); err != nil {
		t.Fatal(err)
	}
	cfg.Charts.WidthCM = 0
	if err := cfg.ValidateConfig(); err == nil {
		t.Fatal("expected error for zero chart width")
	}
}
