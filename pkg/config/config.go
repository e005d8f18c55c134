package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment" default:"development"`
	Server      struct {
		Port            int           `yaml:"port" default:"8080"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"15s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" default:"true"`
		Path    string `yaml:"path" default:"/metrics"`
	} `yaml:"metrics"`
	Forecast struct {
		DefaultHorizon    int           `yaml:"default_horizon" default:"7"`
		SupportedHorizons []int         `yaml:"supported_horizons"`
		ProviderTimeout   time.Duration `yaml:"provider_timeout" default:"10s"`
		Simulations       int           `yaml:"simulations" default:"10000"`
		SigmaWindow       int           `yaml:"sigma_window" default:"30"`
		MaxTickerLength   int           `yaml:"max_ticker_length" default:"10"`
	} `yaml:"forecast"`
	History struct {
		Source  string        `yaml:"source" default:"yahoo"` // yahoo or chart
		Range   string        `yaml:"range" default:"1y"`
		Timeout time.Duration `yaml:"timeout" default:"15s"`
	} `yaml:"history"`
	Cache struct {
		Enabled bool          `yaml:"enabled" default:"true"`
		TTL     time.Duration `yaml:"ttl" default:"15m"`
		Redis   struct {
			Enabled  bool   `yaml:"enabled"`
			Host     string `yaml:"host" default:"localhost"`
			Port     int    `yaml:"port" default:"6379"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix" default:"fincast"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	RateLimit struct {
		Enabled bool    `yaml:"enabled" default:"true"`
		RPS     float64 `yaml:"rps" default:"5"`
		Burst   int     `yaml:"burst" default:"10"`
	} `yaml:"ratelimit"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Fill unset fields from struct tags
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}
	if len(c.Forecast.SupportedHorizons) == 0 {
		c.Forecast.SupportedHorizons = []int{c.Forecast.DefaultHorizon}
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("SERVER_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("HISTORY_SOURCE"); v != "" {
		c.History.Source = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		host, port, ok := strings.Cut(v, ":")
		if ok {
			if p, err := strconv.Atoi(port); err == nil {
				c.Cache.Redis.Host = host
				c.Cache.Redis.Port = p
			}
		}
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Cache.Redis.Password = v
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.History.Source != "yahoo" && c.History.Source != "chart" {
		return fmt.Errorf("history.source must be 'yahoo' or 'chart', got '%s'", c.History.Source)
	}
	if c.Forecast.DefaultHorizon < 1 {
		return fmt.Errorf("forecast.default_horizon must be >= 1")
	}
	for _, h := range c.Forecast.SupportedHorizons {
		if h < 1 {
			return fmt.Errorf("forecast.supported_horizons entries must be >= 1, got %d", h)
		}
	}
	if !c.HorizonSupported(c.Forecast.DefaultHorizon) {
		return fmt.Errorf("forecast.default_horizon %d is not in supported_horizons", c.Forecast.DefaultHorizon)
	}
	if c.Forecast.Simulations < 1 {
		return fmt.Errorf("forecast.simulations must be >= 1")
	}
	if c.Forecast.SigmaWindow < 2 {
		return fmt.Errorf("forecast.sigma_window must be >= 2")
	}
	return nil
}

// HorizonSupported reports whether the deployment accepts the given horizon.
func (c *Config) HorizonSupported(days int) bool {
	for _, h := range c.Forecast.SupportedHorizons {
		if h == days {
			return true
		}
	}
	return false
}
