package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the complete journal configuration.
type Config struct {
	Account     AccountConfig      `json:"account" yaml:"account"`
	Journal     JournalConfig      `json:"journal" yaml:"journal"`
	Multipliers map[string]float64 `json:"multipliers,omitempty" yaml:"multipliers,omitempty"`
}

// AccountConfig describes the trading account the journal tracks.
type AccountConfig struct {
	ID       string  `json:"id" yaml:"id"`
	Currency string  `json:"currency" yaml:"currency"`
	Balance  float64 `json:"balance" yaml:"balance"`
	// CreatedAt anchors the equity curve ("2006-01-02").
	CreatedAt string `json:"created_at" yaml:"created_at"`
}

// JournalConfig contains storage parameters.
type JournalConfig struct {
	DBPath    string `json:"db_path" yaml:"db_path"`
	ExportDir string `json:"export_dir,omitempty" yaml:"export_dir,omitempty"`
}

// CreatedAtTime parses the account anchor date.
func (a AccountConfig) CreatedAtTime() (time.Time, error) {
	return time.Parse("2006-01-02", a.CreatedAt)
}

// LoadFromFile loads configuration from a file (JSON or YAML based on
// content), then applies environment overrides.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Load returns the default configuration with environment overrides
// applied, for running without a config file.
func Load() (*Config, error) {
	cfg := Default()
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// applyEnv overlays TRADEBOOK_* environment variables. A local .env file is
// honored when present.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("TRADEBOOK_DB"); v != "" {
		c.Journal.DBPath = v
	}
	if v := os.Getenv("TRADEBOOK_CURRENCY"); v != "" {
		c.Account.Currency = v
	}
	if v := os.Getenv("TRADEBOOK_BALANCE"); v != "" {
		if b, err := strconv.ParseFloat(v, 64); err == nil {
			c.Account.Balance = b
		}
	}
	if v := os.Getenv("TRADEBOOK_CREATED_AT"); v != "" {
		c.Account.CreatedAt = v
	}
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Account.Currency == "" {
		return fmt.Errorf("account.currency is required")
	}
	if c.Account.Balance <= 0 {
		return fmt.Errorf("account.balance must be positive")
	}
	if c.Account.CreatedAt == "" {
		return fmt.Errorf("account.created_at is required")
	}
	if _, err := c.Account.CreatedAtTime(); err != nil {
		return fmt.Errorf("account.created_at must be YYYY-MM-DD: %w", err)
	}
	if c.Journal.DBPath == "" {
		return fmt.Errorf("journal.db_path is required")
	}
	for symbol, mult := range c.Multipliers {
		if mult <= 0 {
			return fmt.Errorf("multipliers.%s must be positive", symbol)
		}
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			ID:        "ACCT-001",
			Currency:  "USD",
			Balance:   10000,
			CreatedAt: time.Now().UTC().Format("2006-01-02"),
		},
		Journal: JournalConfig{
			DBPath: "./tradebook.sqlite",
		},
	}
}
