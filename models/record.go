package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Algorithm identifies a solver algorithm.
type Algorithm string

const (
	AlgorithmDFS    Algorithm = "DFS"
	AlgorithmAStar  Algorithm = "A*"
	AlgorithmHybrid Algorithm = "HYBRID"
)

// AlgorithmOrder is the fixed enumeration order used wherever results
// are grouped per algorithm. It determines the display order of
// summaries, not their content.
func AlgorithmOrder() []Algorithm {
	return []Algorithm{AlgorithmDFS, AlgorithmAStar, AlgorithmHybrid}
}

// Difficulty is the requested puzzle difficulty.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// RunRecord is one persisted solve event: which algorithm ran, on what
// puzzle, and how it did. Records are immutable once stored.
type RunRecord struct {
	// ID is the unique identifier for this record (UUID).
	ID string `json:"id"`

	// Timestamp is when the solve completed. It is deliberately
	// excluded from both dedup keys: two runs differing only by
	// timestamp are the same event stored twice.
	Timestamp time.Time `json:"timestamp"`

	// Algorithm is the solver algorithm that produced this run.
	Algorithm Algorithm `json:"algorithm"`

	// Size is the grid dimension (a Size x Size puzzle).
	Size int `json:"size"`

	// Difficulty is the puzzle difficulty the run was generated at.
	Difficulty Difficulty `json:"difficulty"`

	// CellAccuracy and WordAccuracy are the distilled analysis
	// ratios in [0, 1].
	CellAccuracy float64 `json:"cellAccuracy"`
	WordAccuracy float64 `json:"wordAccuracy"`

	// ExecutionTime is the solver wall time in seconds.
	ExecutionTime float64 `json:"executionTime"`

	// MemoryUsage is the solver memory footprint in kilobytes.
	MemoryUsage float64 `json:"memoryUsage"`

	// WordsPlaced is how many words the solver managed to place.
	WordsPlaced int `json:"wordsPlaced"`

	// PuzzleData carries the puzzle (grid and clues) the run solved,
	// kept opaque here and stored as JSON text.
	PuzzleData json.RawMessage `json:"puzzleData,omitempty"`

	// Tags contains all tags attached to this record.
	Tags []*RecordTag `json:"tags,omitempty"`
}

// DedupKey is the write-time uniqueness key: algorithm, size and
// difficulty plus the metric values, with execution time and the two
// accuracies rounded to three decimals. A record whose key already
// exists in storage is a duplicate and is not stored twice.
func (r *RunRecord) DedupKey() string {
	return fmt.Sprintf("%s|%d|%s|%.3f|%g|%.3f|%.3f",
		r.Algorithm, r.Size, r.Difficulty,
		r.ExecutionTime, r.MemoryUsage, r.CellAccuracy, r.WordAccuracy)
}

// StrictKey is the tighter read-time key, rounding every metric to
// four decimals. A second dedup pass over GetAll output collapses any
// duplicates that slipped past the write-time check.
func (r *RunRecord) StrictKey() string {
	return fmt.Sprintf("%s-%d-%s-%.4f-%.4f-%.4f-%.4f",
		r.Algorithm, r.Size, r.Difficulty,
		r.ExecutionTime, r.MemoryUsage, r.CellAccuracy, r.WordAccuracy)
}
