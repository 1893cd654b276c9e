package models

// Storage defines the persistence layer for solver run records.
//
// The primary implementation is DuckDBStorage which keeps records in a
// local DuckDB database.
//
// The interface is organized into two categories:
//   - Record management: Store, GetAll, Clear
//   - Tag management: AddTag, RemoveTag, GetRecordTags, ToggleStarred
//
// Thread Safety: Implementations should be safe for concurrent use.
type Storage interface {
	// Store persists a run record.
	//
	// Storage enforces the write-time uniqueness key (RunRecord.DedupKey):
	// if a record with the same key already exists, nothing is written
	// and Store returns false. Returns true when the record was stored.
	//
	// The record's ID must be set before calling this method.
	Store(record *RunRecord) (bool, error)

	// GetAll returns all stored records ordered by timestamp
	// (newest first), including their tags.
	//
	// Callers that aggregate should run DeduplicateRecords over the
	// result first; the write-time check uses a coarser key than the
	// read-time one.
	GetAll() ([]*RunRecord, error)

	// Clear removes every stored record and its tags.
	Clear() error

	// Close releases any resources held by the storage.
	//
	// After Close is called, the storage should not be used.
	Close() error

	// AddTag adds a tag to a record.
	//
	// Tag format can be:
	//   - Simple tag: "tagname" (e.g., "baseline", "thesis-run")
	//   - Key-value tag: "key=value" (e.g., "machine=lab-2")
	//
	// System tags (prefixed with "system:") are reserved for internal use.
	//
	// Returns the created tag or an error if:
	//   - Tag format is invalid
	//   - Record doesn't exist
	//   - Tag already exists on this record
	AddTag(recordID, tag string) (*RecordTag, error)

	// RemoveTag removes a tag by its ID.
	//
	// Returns an error if the tag doesn't exist.
	RemoveTag(tagID string) error

	// GetRecordTags returns all tags for a specific record.
	//
	// Returns an empty slice if the record has no tags.
	GetRecordTags(recordID string) ([]*RecordTag, error)

	// ToggleStarred toggles the "system:starred" tag on a record.
	//
	// If the record is starred, it becomes unstarred and vice versa.
	// Returns the new starred state (true if now starred).
	ToggleStarred(recordID string) (bool, error)
}
