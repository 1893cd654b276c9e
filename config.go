package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ClickHouseConfig holds the optional ClickHouse mirror connection.
// The mirror is enabled only when Host is non-empty.
type ClickHouseConfig struct {
	Host     string `yaml:"host"`
	Database string `yaml:"database"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Secure   bool   `yaml:"secure"`
}

// Config represents the full service configuration.
type Config struct {
	Port           string           `yaml:"port"`
	DBPath         string           `yaml:"db_path"`
	BackendURL     string           `yaml:"backend_url"`
	BackendTimeout time.Duration    `yaml:"backend_timeout"`
	ClickHouse     ClickHouseConfig `yaml:"clickhouse"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Port:           "8080",
		DBPath:         "./crossword-solver.db",
		BackendURL:     "http://localhost:5000",
		BackendTimeout: 60 * time.Second,
		ClickHouse: ClickHouseConfig{
			Database: "default",
			User:     "default",
		},
	}
}

// LoadConfig reads configuration from a file, then applies environment
// overrides. If path is empty, default file names are searched; a
// missing file falls back to defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		for _, name := range []string{"crossword-solver.yaml", "solver.yaml"} {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				break
			}
		}
	}

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overlays environment variables on top of file values.
func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("DUCKDB_PATH"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("SOLVER_BACKEND_URL"); v != "" {
		c.BackendURL = v
	}
	if v := os.Getenv("CLICKHOUSE_HOST"); v != "" {
		c.ClickHouse.Host = v
	}
	if v := os.Getenv("CLICKHOUSE_DATABASE"); v != "" {
		c.ClickHouse.Database = v
	}
	if v := os.Getenv("CLICKHOUSE_USER"); v != "" {
		c.ClickHouse.User = v
	}
	if v := os.Getenv("CLICKHOUSE_PASSWORD"); v != "" {
		c.ClickHouse.Password = v
	}
	if os.Getenv("CLICKHOUSE_SECURE") == "true" {
		c.ClickHouse.Secure = true
	}
}
