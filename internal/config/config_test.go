package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Export.Format != "xlsx" {
		t.Errorf("expected format xlsx, got %s", cfg.Export.Format)
	}
	if cfg.Export.SheetName != "Room Allotments" {
		t.Errorf("expected sheet name Room Allotments, got %s", cfg.Export.SheetName)
	}
	if cfg.Export.SeqWidth != 8 || cfg.Export.IDWidth != 20 {
		t.Errorf("expected widths 8/20, got %v/%v", cfg.Export.SeqWidth, cfg.Export.IDWidth)
	}
	if cfg.UI.Theme != "mocha" {
		t.Errorf("expected theme mocha, got %s", cfg.UI.Theme)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Export.Dir != "." {
		t.Errorf("expected default export dir, got %s", cfg.Export.Dir)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[storage]
db_path = "/tmp/test.db"

[export]
dir = "/tmp/exports"
format = "html"
sheet_name = "Exam Halls"
seq_width = 6
id_width = 24

[ui]
theme = "latte"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path /tmp/test.db, got %s", cfg.Storage.DBPath)
	}
	if cfg.Export.Dir != "/tmp/exports" {
		t.Errorf("expected dir /tmp/exports, got %s", cfg.Export.Dir)
	}
	if cfg.Export.Format != "html" {
		t.Errorf("expected format html, got %s", cfg.Export.Format)
	}
	if cfg.Export.SheetName != "Exam Halls" {
		t.Errorf("expected sheet name Exam Halls, got %s", cfg.Export.SheetName)
	}
	if cfg.Export.SeqWidth != 6 || cfg.Export.IDWidth != 24 {
		t.Errorf("expected widths 6/24, got %v/%v", cfg.Export.SeqWidth, cfg.Export.IDWidth)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("expected theme latte, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[storage]
db_path = "/tmp/test.db"

[export]
format = "xlsx"
sheet_name = "From File"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("ALLOT_DB_PATH", "/tmp/env.db")
	t.Setenv("ALLOT_EXPORT_FORMAT", "HTML")
	t.Setenv("ALLOT_EXPORT_ID_WIDTH", "30")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage.DBPath != "/tmp/env.db" {
		t.Errorf("expected db_path from env, got %s", cfg.Storage.DBPath)
	}
	if cfg.Export.Format != "html" {
		t.Errorf("expected format html from env, got %s", cfg.Export.Format)
	}
	if cfg.Export.IDWidth != 30 {
		t.Errorf("expected id_width 30 from env, got %v", cfg.Export.IDWidth)
	}
	// File value should be kept when no env override
	if cfg.Export.SheetName != "From File" {
		t.Errorf("expected sheet name from file, got %s", cfg.Export.SheetName)
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	if err := os.WriteFile(configPath, []byte("[export\nformat = "), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadFrom_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ALLOT_DB_PATH", "~/data/allot.db")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := filepath.Join(home, "data", "allot.db")
	if cfg.Storage.DBPath != want {
		t.Errorf("expected %s, got %s", want, cfg.Storage.DBPath)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"empty db path", func(c *Config) { c.Storage.DBPath = "" }},
		{"unknown format", func(c *Config) { c.Export.Format = "pdf" }},
		{"empty sheet name", func(c *Config) { c.Export.SheetName = "" }},
		{"long sheet name", func(c *Config) { c.Export.SheetName = "A sheet name that is far too long for excel" }},
		{"zero width", func(c *Config) { c.Export.SeqWidth = 0 }},
		{"id narrower than seq", func(c *Config) { c.Export.IDWidth = 4 }},
		{"unknown theme", func(c *Config) { c.UI.Theme = "neon" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.toml")

	cfg := Default()
	cfg.Export.Format = "html"
	cfg.UI.Theme = "latte"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if loaded.Export.Format != "html" {
		t.Errorf("expected format html, got %s", loaded.Export.Format)
	}
	if loaded.UI.Theme != "latte" {
		t.Errorf("expected theme latte, got %s", loaded.UI.Theme)
	}
}
