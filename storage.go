package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/google/uuid"

	"github.com/CSA2-Thesis/crossword-solver/models"
)

type DuckDBStorage struct {
	db *sql.DB
}

func NewDuckDBStorage(dbPath string) (*DuckDBStorage, error) {
	db, err := sql.Open("duckdb", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}

	storage := &DuckDBStorage{db: db}
	if err := storage.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return storage, nil
}

func (s *DuckDBStorage) initSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS run_records (
			id VARCHAR PRIMARY KEY,
			dedup_key VARCHAR NOT NULL,
			timestamp TIMESTAMP NOT NULL,
			algorithm VARCHAR NOT NULL,
			size INTEGER NOT NULL,
			difficulty VARCHAR NOT NULL,
			cell_accuracy DOUBLE NOT NULL,
			word_accuracy DOUBLE NOT NULL,
			execution_time DOUBLE NOT NULL,
			memory_usage DOUBLE NOT NULL,
			words_placed INTEGER NOT NULL,
			puzzle_data TEXT
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Store persists a run record unless one with the same dedup key is
// already present. Returns true when the record was written.
func (s *DuckDBStorage) Store(record *models.RunRecord) (bool, error) {
	key := record.DedupKey()

	tx, err := s.db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRow("SELECT COUNT(*) FROM run_records WHERE dedup_key = ?", key).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check for duplicate record: %w", err)
	}
	if count > 0 {
		log.Printf("Skipping duplicate run record (key %s)", key)
		return false, nil
	}

	_, err = tx.Exec(
		`INSERT INTO run_records (id, dedup_key, timestamp, algorithm, size, difficulty, cell_accuracy, word_accuracy, execution_time, memory_usage, words_placed, puzzle_data)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, key, record.Timestamp, string(record.Algorithm), record.Size, string(record.Difficulty),
		record.CellAccuracy, record.WordAccuracy, record.ExecutionTime, record.MemoryUsage,
		record.WordsPlaced, nullString(string(record.PuzzleData)),
	)
	if err != nil {
		return false, err
	}

	return true, tx.Commit()
}

// GetAll returns every stored record, newest first, with tags attached.
func (s *DuckDBStorage) GetAll() ([]*models.RunRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, timestamp, algorithm, size, difficulty, cell_accuracy, word_accuracy, execution_time, memory_usage, words_placed, COALESCE(puzzle_data, '')
		FROM run_records
		ORDER BY timestamp DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var records []*models.RunRecord
	var recordIDs []string
	for rows.Next() {
		var r models.RunRecord
		var algorithm, difficulty, puzzleJSON string
		if err := rows.Scan(&r.ID, &r.Timestamp, &algorithm, &r.Size, &difficulty, &r.CellAccuracy, &r.WordAccuracy, &r.ExecutionTime, &r.MemoryUsage, &r.WordsPlaced, &puzzleJSON); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		r.Algorithm = models.Algorithm(algorithm)
		r.Difficulty = models.Difficulty(difficulty)
		if puzzleJSON != "" {
			r.PuzzleData = []byte(puzzleJSON)
		}

		r.Tags = []*models.RecordTag{}
		records = append(records, &r)
		recordIDs = append(recordIDs, r.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Load all tags for these records in one query
	if len(recordIDs) > 0 {
		tags, err := s.getTagsForRecords(recordIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load tags: %w", err)
		}

		tagsByRecord := make(map[string][]*models.RecordTag)
		for _, tag := range tags {
			tagsByRecord[tag.RecordID] = append(tagsByRecord[tag.RecordID], tag)
		}

		for _, record := range records {
			if tags, ok := tagsByRecord[record.ID]; ok {
				record.Tags = tags
			}
		}
	}

	return records, nil
}

// Clear removes all records and their tags.
func (s *DuckDBStorage) Clear() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM record_tags"); err != nil {
		return fmt.Errorf("failed to clear tags: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM run_records"); err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}

	return tx.Commit()
}

// AddTag adds a tag to a record.
func (s *DuckDBStorage) AddTag(recordID, tag string) (*models.RecordTag, error) {
	key, value, err := models.ParseTag(tag)
	if err != nil {
		return nil, err
	}

	var count int
	err = s.db.QueryRow(`
		SELECT COUNT(*) FROM run_records WHERE id = ?
	`, recordID).Scan(&count)
	if err != nil {
		return nil, fmt.Errorf("failed to check record: %w", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("record not found")
	}

	err = s.db.QueryRow(`
		SELECT COUNT(*) FROM record_tags
		WHERE record_id = ? AND tag_key = ? AND COALESCE(tag_value, '') = ?
	`, recordID, key, value).Scan(&count)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing tag: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("tag already exists on this record")
	}

	tagObj := &models.RecordTag{
		ID:        uuid.New().String(),
		RecordID:  recordID,
		TagKey:    key,
		TagValue:  value,
		CreatedAt: time.Now(),
	}

	_, err = s.db.Exec(`
		INSERT INTO record_tags (id, record_id, tag_key, tag_value, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, tagObj.ID, tagObj.RecordID, tagObj.TagKey, nullString(tagObj.TagValue), tagObj.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert tag: %w", err)
	}

	return tagObj, nil
}

// RemoveTag removes a tag from a record.
func (s *DuckDBStorage) RemoveTag(tagID string) error {
	result, err := s.db.Exec("DELETE FROM record_tags WHERE id = ?", tagID)
	if err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("tag not found")
	}

	return nil
}

// GetRecordTags gets all tags for a record.
func (s *DuckDBStorage) GetRecordTags(recordID string) ([]*models.RecordTag, error) {
	rows, err := s.db.Query(`
		SELECT id, record_id, tag_key, COALESCE(tag_value, ''), created_at
		FROM record_tags
		WHERE record_id = ?
		ORDER BY created_at ASC
	`, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	var tags []*models.RecordTag
	for rows.Next() {
		var tag models.RecordTag
		if err := rows.Scan(&tag.ID, &tag.RecordID, &tag.TagKey, &tag.TagValue, &tag.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, &tag)
	}

	return tags, rows.Err()
}

// ToggleStarred toggles the system:starred tag on a record.
func (s *DuckDBStorage) ToggleStarred(recordID string) (bool, error) {
	var tagID string
	err := s.db.QueryRow(`
		SELECT id FROM record_tags
		WHERE record_id = ? AND tag_key = 'system:starred'
	`, recordID).Scan(&tagID)

	if err == sql.ErrNoRows {
		if _, err := s.AddTag(recordID, "system:starred"); err != nil {
			return false, fmt.Errorf("failed to star record: %w", err)
		}
		return true, nil
	} else if err != nil {
		return false, fmt.Errorf("failed to check star status: %w", err)
	}

	if err := s.RemoveTag(tagID); err != nil {
		return false, fmt.Errorf("failed to unstar record: %w", err)
	}
	return false, nil
}

// getTagsForRecords loads tags for multiple records in one query.
func (s *DuckDBStorage) getTagsForRecords(recordIDs []string) ([]*models.RecordTag, error) {
	if len(recordIDs) == 0 {
		return []*models.RecordTag{}, nil
	}

	placeholders := make([]string, len(recordIDs))
	args := make([]interface{}, len(recordIDs))
	for i, id := range recordIDs {
		placeholders[i] = "?"
		args[i] = id
	}

	query := fmt.Sprintf(`
		SELECT id, record_id, tag_key, COALESCE(tag_value, ''), created_at
		FROM record_tags
		WHERE record_id IN (%s)
		ORDER BY created_at ASC
	`, joinPlaceholders(placeholders))

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []*models.RecordTag
	for rows.Next() {
		var tag models.RecordTag
		if err := rows.Scan(&tag.ID, &tag.RecordID, &tag.TagKey, &tag.TagValue, &tag.CreatedAt); err != nil {
			return nil, err
		}
		tags = append(tags, &tag)
	}

	return tags, rows.Err()
}

// joinPlaceholders joins "?" placeholders for a SQL IN clause.
func joinPlaceholders(placeholders []string) string {
	result := ""
	for i, p := range placeholders {
		if i > 0 {
			result += ", "
		}
		result += p
	}
	return result
}

func (s *DuckDBStorage) Close() error {
	return s.db.Close()
}

// nullString maps "" to NULL for nullable columns.
func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
