// Package config provides centralized configuration management.
//
// Configuration can be loaded from:
//  1. YAML file (config.yaml)
//  2. Environment variables (fallback)
//
// Example usage:
//
//	cfg := config.LoadOrEnv()
//	port := cfg.Server.Port
//	lookback := cfg.AutoPick.LookbackDays
package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config represents the entire application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	AutoPick AutoPickConfig `yaml:"autopick"`
}

// ServerConfig holds the HTTP server settings
type ServerConfig struct {
	Port int `yaml:"port"`
}

// AutoPickConfig holds the recommendation engine tunables
type AutoPickConfig struct {
	LookbackDays    int     `yaml:"lookback_days"`
	UnseenShare     float64 `yaml:"unseen_share"`
	DefaultTarget   float64 `yaml:"default_target"`
	DraftTTLMinutes int     `yaml:"draft_ttl_minutes"`
}

// Load reads and parses the config file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Expand environment variables (e.g., ${PORT})
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// LoadFromEnv loads configuration from environment variables only
func LoadFromEnv() *Config {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvInt("PORT", 8080),
		},
		AutoPick: AutoPickConfig{
			LookbackDays:    getEnvInt("AUTOPICK_LOOKBACK_DAYS", 90),
			UnseenShare:     getEnvFloat("AUTOPICK_UNSEEN_SHARE", 0.1),
			DefaultTarget:   getEnvFloat("AUTOPICK_DEFAULT_TARGET", 5000),
			DraftTTLMinutes: getEnvInt("AUTOPICK_DRAFT_TTL_MINUTES", 60),
		},
	}
	return cfg
}

// LoadOrEnv tries the YAML file first and falls back to environment
// variables when it is missing or unreadable.
func LoadOrEnv() *Config {
	if cfg, err := Load(getEnv("CONFIG_PATH", "config.yaml")); err == nil {
		return cfg
	}
	return LoadFromEnv()
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.AutoPick.LookbackDays == 0 {
		c.AutoPick.LookbackDays = 90
	}
	if c.AutoPick.UnseenShare == 0 {
		c.AutoPick.UnseenShare = 0.1
	}
	if c.AutoPick.DefaultTarget == 0 {
		c.AutoPick.DefaultTarget = 5000
	}
	if c.AutoPick.DraftTTLMinutes == 0 {
		c.AutoPick.DraftTTLMinutes = 60
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
