package main

import (
	"context"
	"crypto/tls"
	"log"
	"strings"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/CSA2-Thesis/crossword-solver/models"
)

// MetricsMirror copies every stored run record into a ClickHouse table
// for long-term analytics. It is optional: when no ClickHouse host is
// configured the server runs on DuckDB alone.
type MetricsMirror struct {
	conn driver.Conn
}

// OpenClickHouse connects to ClickHouse using the native protocol.
// Secure connections are used for :9440 hosts or when cfg.Secure is set.
func OpenClickHouse(cfg ClickHouseConfig) (driver.Conn, error) {
	useSecure := cfg.Secure || strings.Contains(cfg.Host, ":9440")

	log.Println("=== ClickHouse Connection Details ===")
	log.Printf("Host: %s", cfg.Host)
	log.Printf("Database: %s", cfg.Database)
	log.Printf("User: %s", cfg.User)
	log.Printf("Password: %s", maskPassword(cfg.Password))
	log.Printf("Secure: %v", useSecure)
	log.Println("=====================================")

	options := &clickhouse.Options{
		Addr: []string{cfg.Host},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.User,
			Password: cfg.Password,
		},
		ClientInfo: clickhouse.ClientInfo{
			Products: []struct {
				Name    string
				Version string
			}{
				{Name: "crossword-solver", Version: "1.0"},
			},
		},
		Debug: false,
		Settings: clickhouse.Settings{
			"send_logs_level": "none",
		},
	}

	if useSecure {
		options.TLS = &tls.Config{
			InsecureSkipVerify: true,
		}
		log.Printf("Using secure connection to ClickHouse (TLS enabled, accepting invalid certificates)")
	}

	return clickhouse.Open(options)
}

// NewMetricsMirror wraps a ClickHouse connection and makes sure the
// target table exists.
func NewMetricsMirror(ctx context.Context, conn driver.Conn) (*MetricsMirror, error) {
	m := &MetricsMirror{conn: conn}
	if err := m.ensureTable(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *MetricsMirror) ensureTable(ctx context.Context) error {
	return m.conn.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS solver_runs (
			id String,
			timestamp DateTime64(3),
			algorithm LowCardinality(String),
			size UInt16,
			difficulty LowCardinality(String),
			cell_accuracy Float64,
			word_accuracy Float64,
			execution_time Float64,
			memory_usage Float64,
			words_placed UInt32
		)
		ENGINE = MergeTree
		ORDER BY (algorithm, size, timestamp)
	`)
}

// InsertRecord mirrors one stored record. Callers treat failures as
// best-effort: a ClickHouse outage must never fail a solve request.
func (m *MetricsMirror) InsertRecord(ctx context.Context, r *models.RunRecord) error {
	return m.conn.Exec(ctx, `
		INSERT INTO solver_runs (id, timestamp, algorithm, size, difficulty, cell_accuracy, word_accuracy, execution_time, memory_usage, words_placed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Timestamp, string(r.Algorithm), uint16(r.Size), string(r.Difficulty),
		r.CellAccuracy, r.WordAccuracy, r.ExecutionTime, r.MemoryUsage, uint32(r.WordsPlaced),
	)
}

// Ping checks connectivity with a bounded timeout.
func (m *MetricsMirror) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return m.conn.Ping(ctx)
}

func maskPassword(password string) string {
	if password == "" {
		return "<empty>"
	}
	if len(password) <= 2 {
		return password
	}
	return string(password[0]) + strings.Repeat("*", len(password)-2) + string(password[len(password)-1])
}
