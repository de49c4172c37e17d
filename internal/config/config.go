// Package config handles persisted girlmath settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/girlmathhq/girlmath/internal/engine"
)

// Config holds all girlmath configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Baseline   BaselineConfig   `toml:"baseline"`
	Appearance AppearanceConfig `toml:"appearance"`
	Bonuses    BonusOverrides   `toml:"bonuses"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DefaultMode string `toml:"default_mode"`
	LogHistory  bool   `toml:"log_history"`
}

// BaselineConfig holds the optional personal budget baseline, used as the
// default for evaluations that don't override it on the command line.
type BaselineConfig struct {
	Income        string `toml:"income,omitempty"`
	BudgetPercent int    `toml:"budget_percent,omitempty"`
	SkipVibe      bool   `toml:"skip_vibe"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// BonusOverrides allows user-defined category bonuses.
type BonusOverrides struct {
	Overrides map[string]int `toml:"overrides,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultMode: string(engine.ModeSoftlife),
			LogHistory:  true,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "girlmath")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "girlmath")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the directory for the evaluation history database.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "girlmath")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "girlmath")
}

// HistoryPath returns the full path to the history database.
func HistoryPath() string {
	return filepath.Join(DataDir(), "history.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Ruleset builds the scoring ruleset with any configured category bonus
// overrides applied. Unknown category names are ignored.
func Ruleset(cfg Config) *engine.Ruleset {
	rules := engine.DefaultRuleset()
	for name, bonus := range cfg.Bonuses.Overrides {
		cat := engine.ParseCategory(name)
		if string(cat) != name {
			continue
		}
		if bonus < 0 {
			bonus = 0
		}
		rules.CategoryBonuses[cat] = bonus
	}
	return rules
}
