package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"
)

type migration struct {
	version     int
	description string
	sql         string
}

// schemaMigrations holds every migration in ascending version order.
// The run_records base table is created by initSchema; migrations only
// layer tags and indexes on top of it.
var schemaMigrations = []migration{
	{
		version:     1,
		description: "Add record_tags table",
		sql: `
			CREATE TABLE IF NOT EXISTS record_tags (
				id VARCHAR PRIMARY KEY,
				record_id VARCHAR NOT NULL,
				tag_key VARCHAR NOT NULL,
				tag_value VARCHAR,
				created_at TIMESTAMP NOT NULL,
				FOREIGN KEY (record_id) REFERENCES run_records(id)
			);

			CREATE INDEX IF NOT EXISTS idx_tags_record ON record_tags(record_id);
			CREATE INDEX IF NOT EXISTS idx_tags_key ON record_tags(tag_key);
		`,
	},
	{
		version:     2,
		description: "Index run_records on dedup_key and algorithm",
		sql: `
			CREATE INDEX IF NOT EXISTS idx_records_dedup ON run_records(dedup_key);
			CREATE INDEX IF NOT EXISTS idx_records_algorithm ON run_records(algorithm);
		`,
	},
}

// runMigrations applies every migration newer than the recorded schema
// version, each inside its own transaction.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			description VARCHAR NOT NULL,
			applied_at TIMESTAMP NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	var currentVersion int
	if err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&currentVersion); err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	applied := 0
	for _, m := range schemaMigrations {
		if m.version <= currentVersion {
			continue
		}
		log.Printf("Applying migration %d: %s", m.version, m.description)
		if err := applyMigration(db, m); err != nil {
			return err
		}
		applied++
	}

	if applied > 0 {
		log.Printf("Applied %d migration(s)", applied)
	}
	return nil
}

func applyMigration(db *sql.DB, m migration) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for migration %d: %w", m.version, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(m.sql); err != nil {
		return fmt.Errorf("failed to execute migration %d: %w", m.version, err)
	}
	if _, err := tx.Exec(
		"INSERT INTO schema_migrations (version, description, applied_at) VALUES (?, ?, ?)",
		m.version, m.description, time.Now(),
	); err != nil {
		return fmt.Errorf("failed to record migration %d: %w", m.version, err)
	}
	return tx.Commit()
}
