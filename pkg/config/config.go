package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Client configures the market data fetch client.
type Client struct {
	BaseURL   string        `yaml:"base_url"`
	ISINURL   string        `yaml:"isin_url"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
	ProxyURL  string        `yaml:"proxy_url"`
	Cookie    string        `yaml:"cookie"`
	Crumb     string        `yaml:"crumb"`
}

// Bridge selects how per-call scopes are admitted.
type Bridge struct {
	Mode    string `yaml:"mode"`    // per_call or pooled
	Workers int    `yaml:"workers"` // pooled only
}

// LogCollector configures aggregated error-log publishing to Kafka.
type LogCollector struct {
	Enabled        bool          `yaml:"enabled"`
	Brokers        []string      `yaml:"brokers"`
	Topic          string        `yaml:"topic"`
	Interval       time.Duration `yaml:"interval"`
	CountThreshold int           `yaml:"count_threshold"`
	Compression    string        `yaml:"compression"`
}

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
		RateLimit       struct {
			RPS   float64 `yaml:"rps"` // per client IP, 0 disables
			Burst int     `yaml:"burst"`
		} `yaml:"rate_limit"`
		CORS struct {
			AllowOrigins []string `yaml:"allow_origins"` // empty disables CORS
			AllowMethods []string `yaml:"allow_methods"`
		} `yaml:"cors"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Client       Client       `yaml:"client"`
	Bridge       Bridge       `yaml:"bridge"`
	LogCollector LogCollector `yaml:"log_collector"`
}

// Default returns the configuration used when no file is given. The client
// values are the fixed defaults of an unconfigured ticker.
func Default() *Config {
	c := &Config{Environment: "development"}
	c.Server.Port = 8080
	c.Server.ReadTimeout = 10 * time.Second
	c.Server.WriteTimeout = 30 * time.Second
	c.Server.ShutdownTimeout = 10 * time.Second
	c.Server.RateLimit.RPS = 5
	c.Server.RateLimit.Burst = 20
	c.Server.CORS.AllowOrigins = []string{"*"}
	c.Server.CORS.AllowMethods = []string{"GET", "OPTIONS"}
	c.Metrics.Enabled = true
	c.Metrics.Path = "/metrics"
	c.Logging.Level = "info"
	c.Logging.Format = "console"
	c.Logging.Output = "stdout"
	c.Client = Client{
		BaseURL:   "https://query2.finance.yahoo.com",
		ISINURL:   "https://markets.businessinsider.com/ajax/SearchController_Suggest",
		Timeout:   30 * time.Second,
		UserAgent: "Mozilla/5.0 (compatible; finframe/1.0)",
	}
	c.Bridge = Bridge{Mode: BridgePerCall, Workers: 8}
	c.LogCollector = LogCollector{
		Topic:          "finframe.errors",
		Interval:       30 * time.Second,
		CountThreshold: 100,
		Compression:    "gzip",
	}
	return c
}

const (
	BridgePerCall = "per_call"
	BridgePooled  = "pooled"
)

// Load reads and parses a YAML configuration file over Default.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
// An empty path or a missing file yields Default.
func LoadWithEnv(path string) (*Config, error) {
	c := Default()
	if path != "" {
		loaded, err := Load(path)
		switch {
		case err == nil:
			c = loaded
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, err
		}
	}

	// Override with environment variables
	if v := os.Getenv("APP_ENV"); v != "" {
		c.Environment = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if rps, err := strconv.ParseFloat(v, 64); err == nil {
			c.Server.RateLimit.RPS = rps
		}
	}
	if v := os.Getenv("CORS_ALLOW_ORIGINS"); v != "" {
		c.Server.CORS.AllowOrigins = strings.Split(v, ",")
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("CLIENT_BASE_URL"); v != "" {
		c.Client.BaseURL = v
	}
	if v := os.Getenv("CLIENT_PROXY_URL"); v != "" {
		c.Client.ProxyURL = v
	}
	if v := os.Getenv("CLIENT_COOKIE"); v != "" {
		c.Client.Cookie = v
	}
	if v := os.Getenv("CLIENT_CRUMB"); v != "" {
		c.Client.Crumb = v
	}
	if v := os.Getenv("BRIDGE_MODE"); v != "" {
		c.Bridge.Mode = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.LogCollector.Brokers = strings.Split(v, ",")
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Client.BaseURL == "" {
		return fmt.Errorf("client.base_url is required")
	}
	if c.Client.Timeout <= 0 {
		return fmt.Errorf("client.timeout must be positive")
	}
	if c.Server.RateLimit.RPS < 0 {
		return fmt.Errorf("server.rate_limit.rps cannot be negative")
	}
	if c.Bridge.Mode != BridgePerCall && c.Bridge.Mode != BridgePooled {
		return fmt.Errorf("bridge.mode must be '%s' or '%s', got '%s'", BridgePerCall, BridgePooled, c.Bridge.Mode)
	}
	if c.Bridge.Mode == BridgePooled && c.Bridge.Workers <= 0 {
		return fmt.Errorf("bridge.workers must be positive in pooled mode")
	}
	if c.LogCollector.Enabled {
		if len(c.LogCollector.Brokers) == 0 {
			return fmt.Errorf("log_collector.brokers cannot be empty when enabled")
		}
		if c.LogCollector.Topic == "" {
			return fmt.Errorf("log_collector.topic is required when enabled")
		}
	}
	return nil
}
