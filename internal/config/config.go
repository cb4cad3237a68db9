// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	ProviderNone    = "none"
	ProviderGemini  = "gemini"
	ProviderGateway = "gateway"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Catalog CatalogConfig `yaml:"catalog"`
	AI      AIConfig      `yaml:"ai"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// CatalogConfig points at an optional foods file that replaces the embedded
// catalogue and is reloaded when it changes.
type CatalogConfig struct {
	FoodsPath string `yaml:"foods_path"`
	Watch     bool   `yaml:"watch"`
}

type AIConfig struct {
	Provider   string `yaml:"provider"` // none, gemini, gateway
	APIKey     string `yaml:"api_key"`
	Model      string `yaml:"model"`
	GatewayURL string `yaml:"gateway_url"`
	Timeout    string `yaml:"timeout"`
}

type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8011,
		},
		Storage: StorageConfig{
			DBPath: "/data/ayur-diet.db",
		},
		Catalog: CatalogConfig{
			Watch: true,
		},
		AI: AIConfig{
			Timeout: "60s",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML config file over the defaults, then applies environment
// overrides. An empty or missing path yields defaults plus environment.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg, cfg.Validate()
}

func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		c.AI.APIKey = key
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.AI.APIKey = key
	}
	if c.AI.APIKey != "" && c.AI.Provider == "" {
		c.AI.Provider = ProviderGemini
	}

	if url := os.Getenv("MCP_PROXY_URL"); url != "" {
		c.AI.GatewayURL = url
		if c.AI.Provider == "" {
			c.AI.Provider = ProviderGateway
		}
	}
	if key := os.Getenv("MCP_PROXY_API_KEY"); key != "" && c.AI.Provider == ProviderGateway {
		c.AI.APIKey = key
	}
	if model := os.Getenv("OPENROUTER_MODEL"); model != "" && c.AI.Provider == ProviderGateway {
		c.AI.Model = model
	}

	if path := os.Getenv("AYUR_DB_PATH"); path != "" {
		c.Storage.DBPath = path
	}

	if c.AI.Provider == "" {
		c.AI.Provider = ProviderNone
	}
}

// AITimeout returns the model call timeout, 60s when unset or invalid.
func (c *Config) AITimeout() time.Duration {
	d, err := time.ParseDuration(c.AI.Timeout)
	if err != nil || d <= 0 {
		return 60 * time.Second
	}
	return d
}

func (c *Config) Validate() error {
	switch c.AI.Provider {
	case ProviderNone, ProviderGemini, ProviderGateway:
	default:
		return fmt.Errorf("invalid AI provider: %s (valid: none, gemini, gateway)", c.AI.Provider)
	}
	if c.AI.Provider == ProviderGemini && c.AI.APIKey == "" {
		return fmt.Errorf("gemini provider needs an API key (set GEMINI_API_KEY or GOOGLE_API_KEY)")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Storage.DBPath == "" {
		return fmt.Errorf("storage db_path is required")
	}
	return nil
}
