package models

import (
	"fmt"
	"strconv"
	"strings"
)

// SolveRequest is the payload sent to the external solver service.
type SolveRequest struct {
	Grid                  Grid      `json:"grid"`
	Clues                 ClueSet   `json:"clues"`
	Algorithm             Algorithm `json:"algorithm"`
	EnableMemoryProfiling bool      `json:"enable_memory_profiling"`
}

// SolveMetrics carries the solver's self-reported metrics. The solver
// formats execution time as "<float>s" and words placed as
// "placed/total"; ParseExecutionTime and ParseWordsPlaced decode them.
type SolveMetrics struct {
	ExecutionTime      string  `json:"execution_time"`
	MemoryUsageKB      float64 `json:"memory_usage_kb"`
	PeakMemoryKB       float64 `json:"peak_memory_kb"`
	WordsPlaced        string  `json:"words_placed"`
	FallbackUsageCount int     `json:"fallback_usage_count"`
}

// SolveResponse is the solver service's reply.
type SolveResponse struct {
	Solution Grid         `json:"solution"`
	Method   string       `json:"method"`
	Success  bool         `json:"success"`
	Metrics  SolveMetrics `json:"metrics"`
}

// PuzzleStats describes a generated puzzle.
type PuzzleStats struct {
	WordCount  int        `json:"word_count"`
	Difficulty Difficulty `json:"difficulty"`
	Size       int        `json:"size"`
	Density    float64    `json:"density"`
}

// GeneratedPuzzle is the puzzle generator service's reply: the filled
// reference grid, the empty playing grid with clue numbers, and the
// clue list.
type GeneratedPuzzle struct {
	Success   bool        `json:"success"`
	Grid      Grid        `json:"grid"`
	EmptyGrid Grid        `json:"empty_grid"`
	Clues     ClueSet     `json:"clues"`
	Stats     PuzzleStats `json:"stats"`
	Error     string      `json:"error,omitempty"`
	Message   string      `json:"message,omitempty"`
}

// ParseExecutionTime decodes the solver's "<float>s" duration format
// into seconds, e.g. "0.1234s" -> 0.1234.
func ParseExecutionTime(s string) (float64, error) {
	trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "s"))
	if trimmed == "" {
		return 0, fmt.Errorf("empty execution time %q", s)
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid execution time %q: %w", s, err)
	}
	return v, nil
}

// ParseWordsPlaced decodes the solver's "placed/total" counter,
// e.g. "12/15" -> (12, 15). A bare number is read as placed with an
// unknown total.
func ParseWordsPlaced(s string) (placed, total int, err error) {
	parts := strings.SplitN(strings.TrimSpace(s), "/", 2)
	placed, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid words placed %q: %w", s, err)
	}
	if len(parts) == 1 {
		return placed, 0, nil
	}
	total, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid words placed %q: %w", s, err)
	}
	return placed, total, nil
}
