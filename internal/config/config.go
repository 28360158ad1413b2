// Package config holds the tinkerbox configuration, stored as YAML in the
// tinkerbox home directory (~/.tinkerbox by default).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all tinkerbox configuration.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	Store     StoreConfig     `yaml:"store"`
	Games     GamesConfig     `yaml:"games"`
	Organizer OrganizerConfig `yaml:"organizer"`
	Weather   WeatherConfig   `yaml:"weather"`
	Vault     VaultConfig     `yaml:"vault"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// StoreConfig configures the SQLite store.
type StoreConfig struct {
	// DatabasePath is relative to the home dir unless absolute.
	DatabasePath string `yaml:"database_path"`
	BusyTimeout  string `yaml:"busy_timeout"`
}

// GamesConfig configures the game apps.
type GamesConfig struct {
	// DecksDir holds extra quiz decks (*.yaml), relative to home.
	DecksDir      string `yaml:"decks_dir"`
	DefaultPlayer string `yaml:"default_player"`
	HighScoreRows int    `yaml:"high_score_rows"`
}

// OrganizerConfig configures the file organizer.
type OrganizerConfig struct {
	// Exclude patterns use doublestar globs, e.g. "**/*.tmp".
	Exclude []string `yaml:"exclude"`
	DryRun  bool     `yaml:"dry_run"`
	// MaxWorkers bounds the concurrent directory analysis.
	MaxWorkers int `yaml:"max_workers"`
}

// WeatherConfig configures the simulated weather app.
type WeatherConfig struct {
	CacheTTL string `yaml:"cache_ttl"`
	Units    string `yaml:"units"` // metric or imperial
}

// VaultConfig configures the password vault.
type VaultConfig struct {
	// ScryptN is the scrypt CPU/memory cost. Must be a power of two.
	ScryptN int `yaml:"scrypt_n"`
}

// LoggingConfig configures categorized debug logging.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Categories map[string]bool `yaml:"categories"`
	Level      string          `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "tinkerbox",
		Version: "0.3.0",

		Store: StoreConfig{
			DatabasePath: "tinkerbox.db",
			BusyTimeout:  "5s",
		},

		Games: GamesConfig{
			DecksDir:      "decks",
			DefaultPlayer: "player",
			HighScoreRows: 10,
		},

		Organizer: OrganizerConfig{
			Exclude:    []string{"**/.git/**", "**/*.tmp", "**/*.part"},
			DryRun:     false,
			MaxWorkers: 8,
		},

		Weather: WeatherConfig{
			CacheTTL: "10m",
			Units:    "metric",
		},

		Vault: VaultConfig{
			ScryptN: 32768,
		},

		Logging: LoggingConfig{
			DebugMode: false,
			Level:     "info",
		},
	}
}

// DefaultHome returns the default tinkerbox home directory (~/.tinkerbox).
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tinkerbox"
	}
	return filepath.Join(home, ".tinkerbox")
}

// Path returns the config file path inside the given home dir.
func Path(home string) string {
	return filepath.Join(home, "config.yaml")
}

// Load loads configuration from <home>/config.yaml, falling back to
// defaults when the file does not exist. TINK_* environment variables
// override file values.
func Load(home string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path(home))
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to <home>/config.yaml.
func (c *Config) Save(home string) error {
	if err := os.MkdirAll(home, 0755); err != nil {
		return fmt.Errorf("failed to create home directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(home), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// DatabasePath resolves the store path against the home dir.
func (c *Config) DatabasePath(home string) string {
	if filepath.IsAbs(c.Store.DatabasePath) {
		return c.Store.DatabasePath
	}
	return filepath.Join(home, c.Store.DatabasePath)
}

// DecksDir resolves the quiz decks dir against the home dir.
func (c *Config) DecksDir(home string) string {
	if filepath.IsAbs(c.Games.DecksDir) {
		return c.Games.DecksDir
	}
	return filepath.Join(home, c.Games.DecksDir)
}

// applyEnvOverrides applies TINK_* environment variables on top of the
// loaded values. Only a handful of knobs are exposed this way.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("TINK_DATABASE_PATH"); v != "" {
		c.Store.DatabasePath = v
	}
	if v := os.Getenv("TINK_PLAYER"); v != "" {
		c.Games.DefaultPlayer = v
	}
	if v := os.Getenv("TINK_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("TINK_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			c.Logging.DebugMode = b
		}
	}
	if v := os.Getenv("TINK_WEATHER_UNITS"); v != "" {
		c.Weather.Units = v
	}
}
