package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application settings. Loaded from YAML, with sensitive
// values overridable through environment variables.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`

	Store struct {
		Driver string `yaml:"driver"` // memory | bolt
		Path   string `yaml:"path"`   // bolt file path
	} `yaml:"store"`

	Deposits struct {
		Provider      string `yaml:"provider"` // http | mock
		BaseURL       string `yaml:"base_url"`
		WebhookSecret string `yaml:"webhook_secret"`
	} `yaml:"deposits"`

	Auth struct {
		// Static room-credential tokens. Identity management proper is an
		// external concern; the room only needs to validate membership.
		Tokens []TokenEntry `yaml:"tokens"`
	} `yaml:"auth"`

	Logging struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"logging"`
}

// TokenEntry maps a credential token to the principal it represents.
type TokenEntry struct {
	Token    string `yaml:"token"`
	UserID   string `yaml:"user_id"`
	Username string `yaml:"username"`
	Admin    bool   `yaml:"admin"`
}

// Load reads and parses the config file, applies env overrides and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	overrideWithEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns a runnable configuration for when no config file is given.
func Default() *Config {
	var cfg Config
	cfg.Server.Port = ":8080"
	cfg.Store.Driver = "memory"
	cfg.Deposits.Provider = "mock"
	cfg.Logging.Level = "info"
	overrideWithEnv(&cfg)
	return &cfg
}

// Validate checks configuration validity.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if !strings.HasPrefix(c.Server.Port, ":") {
		c.Server.Port = ":" + c.Server.Port
	}

	switch c.Store.Driver {
	case "memory":
	case "bolt":
		if c.Store.Path == "" {
			return fmt.Errorf("store path is required for the bolt driver")
		}
	default:
		return fmt.Errorf("unknown store driver: %s", c.Store.Driver)
	}

	switch c.Deposits.Provider {
	case "mock":
	case "http":
		if !strings.HasPrefix(c.Deposits.BaseURL, "http://") && !strings.HasPrefix(c.Deposits.BaseURL, "https://") {
			return fmt.Errorf("invalid deposit service base URL: %s", c.Deposits.BaseURL)
		}
	default:
		return fmt.Errorf("unknown deposit provider: %s", c.Deposits.Provider)
	}

	return nil
}

// overrideWithEnv applies environment variable overrides when present.
func overrideWithEnv(cfg *Config) {
	if port := os.Getenv("AUCTION_PORT"); port != "" {
		cfg.Server.Port = port
	}
	if url := os.Getenv("AUCTION_DEPOSIT_URL"); url != "" {
		cfg.Deposits.BaseURL = url
	}
	if secret := os.Getenv("AUCTION_WEBHOOK_SECRET"); secret != "" {
		cfg.Deposits.WebhookSecret = secret
	}
}
