package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "./crossword-solver.db", cfg.DBPath)
	assert.Equal(t, "http://localhost:5000", cfg.BackendURL)
	assert.Equal(t, 60*time.Second, cfg.BackendTimeout)
	assert.Empty(t, cfg.ClickHouse.Host)
	assert.Equal(t, "default", cfg.ClickHouse.Database)
	assert.Equal(t, "default", cfg.ClickHouse.User)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solver.yaml")
	data := `
port: "9090"
db_path: /var/lib/solver/runs.db
backend_url: http://solver:5000
backend_timeout: 30s
clickhouse:
  host: ch.internal:9000
  database: metrics
  user: solver
  password: secret
  secure: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/var/lib/solver/runs.db", cfg.DBPath)
	assert.Equal(t, "http://solver:5000", cfg.BackendURL)
	assert.Equal(t, 30*time.Second, cfg.BackendTimeout)
	assert.Equal(t, "ch.internal:9000", cfg.ClickHouse.Host)
	assert.Equal(t, "metrics", cfg.ClickHouse.Database)
	assert.Equal(t, "solver", cfg.ClickHouse.User)
	assert.Equal(t, "secret", cfg.ClickHouse.Password)
	assert.True(t, cfg.ClickHouse.Secure)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solver.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"3000\"\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "./crossword-solver.db", cfg.DBPath)
	assert.Equal(t, "http://localhost:5000", cfg.BackendURL)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solver.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [not a string\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solver.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"3000\"\n"), 0o644))

	t.Setenv("PORT", "4000")
	t.Setenv("DUCKDB_PATH", "/tmp/env.db")
	t.Setenv("SOLVER_BACKEND_URL", "http://env:5000")
	t.Setenv("CLICKHOUSE_HOST", "env-host:9440")
	t.Setenv("CLICKHOUSE_DATABASE", "env_db")
	t.Setenv("CLICKHOUSE_USER", "env_user")
	t.Setenv("CLICKHOUSE_PASSWORD", "env_pass")
	t.Setenv("CLICKHOUSE_SECURE", "true")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "/tmp/env.db", cfg.DBPath)
	assert.Equal(t, "http://env:5000", cfg.BackendURL)
	assert.Equal(t, "env-host:9440", cfg.ClickHouse.Host)
	assert.Equal(t, "env_db", cfg.ClickHouse.Database)
	assert.Equal(t, "env_user", cfg.ClickHouse.User)
	assert.Equal(t, "env_pass", cfg.ClickHouse.Password)
	assert.True(t, cfg.ClickHouse.Secure)
}
