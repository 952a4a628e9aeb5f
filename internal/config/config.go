// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Export  ExportConfig  `toml:"export"`
	UI      UIConfig      `toml:"ui"`
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// ExportConfig holds spreadsheet export settings.
type ExportConfig struct {
	Dir       string  `toml:"dir"`        // output directory
	Format    string  `toml:"format"`     // "xlsx" or "html"
	SheetName string  `toml:"sheet_name"` // e.g., "Room Allotments"
	SeqWidth  float64 `toml:"seq_width"`  // sequence column width in characters
	IDWidth   float64 `toml:"id_width"`   // register number column width in characters
}

// UIConfig holds terminal settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "latte"
}

// Formats lists the supported export formats.
var Formats = []string{"xlsx", "html"}

// Themes lists the embedded board themes.
var Themes = []string{"mocha", "latte"}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		Export: ExportConfig{
			Dir:       ".",
			Format:    "xlsx",
			SheetName: "Room Allotments",
			SeqWidth:  8,
			IDWidth:   20,
		},
		UI: UIConfig{
			Theme: "mocha",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "allot.db"
	}
	return filepath.Join(home, ".local", "share", "allot", "allot.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "allot", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	cfg.Export.Dir = expandPath(cfg.Export.Dir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ALLOT_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}

	if v := os.Getenv("ALLOT_EXPORT_DIR"); v != "" {
		cfg.Export.Dir = v
	}
	if v := os.Getenv("ALLOT_EXPORT_FORMAT"); v != "" {
		cfg.Export.Format = strings.ToLower(v)
	}
	if v := os.Getenv("ALLOT_EXPORT_SHEET"); v != "" {
		cfg.Export.SheetName = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("ALLOT_EXPORT_ID_WIDTH"), 64); err == nil {
		cfg.Export.IDWidth = v
	}

	if v := os.Getenv("ALLOT_UI_THEME"); v != "" {
		cfg.UI.Theme = strings.ToLower(v)
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	if !contains(Formats, c.Export.Format) {
		return fmt.Errorf("invalid export format: %s (want one of %s)", c.Export.Format, strings.Join(Formats, ", "))
	}
	if c.Export.SheetName == "" {
		return errors.New("sheet_name must be set")
	}
	if len(c.Export.SheetName) > 31 {
		return fmt.Errorf("sheet_name must be at most 31 characters, got %d", len(c.Export.SheetName))
	}
	if c.Export.SeqWidth <= 0 || c.Export.IDWidth <= 0 {
		return errors.New("seq_width and id_width must be positive")
	}
	if c.Export.IDWidth <= c.Export.SeqWidth {
		return errors.New("id_width must be wider than seq_width")
	}
	if !contains(Themes, c.UI.Theme) {
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
