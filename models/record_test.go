package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testRecord() *RunRecord {
	return &RunRecord{
		ID:            "r1",
		Timestamp:     time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
		Algorithm:     AlgorithmAStar,
		Size:          15,
		Difficulty:    DifficultyHard,
		CellAccuracy:  0.9123,
		WordAccuracy:  0.85,
		ExecutionTime: 0.4512,
		MemoryUsage:   2048.5,
		WordsPlaced:   18,
	}
}

func TestDedupKeyIgnoresTimestampAndID(t *testing.T) {
	a := testRecord()
	b := testRecord()
	b.ID = "r2"
	b.Timestamp = a.Timestamp.Add(time.Hour)

	assert.Equal(t, a.DedupKey(), b.DedupKey())
	assert.Equal(t, a.StrictKey(), b.StrictKey())
}

func TestDedupKeyRounding(t *testing.T) {
	a := testRecord()
	b := testRecord()

	// A difference past the third decimal collapses under the coarse
	// key but survives the strict one.
	a.ExecutionTime = 0.45121
	b.ExecutionTime = 0.45128

	assert.Equal(t, a.DedupKey(), b.DedupKey())
	assert.NotEqual(t, a.StrictKey(), b.StrictKey())
}

func TestDedupKeyDistinguishesMetrics(t *testing.T) {
	base := testRecord()

	tests := []struct {
		name   string
		mutate func(*RunRecord)
	}{
		{name: "algorithm", mutate: func(r *RunRecord) { r.Algorithm = AlgorithmDFS }},
		{name: "size", mutate: func(r *RunRecord) { r.Size = 20 }},
		{name: "difficulty", mutate: func(r *RunRecord) { r.Difficulty = DifficultyEasy }},
		{name: "execution time", mutate: func(r *RunRecord) { r.ExecutionTime = 0.9 }},
		{name: "memory", mutate: func(r *RunRecord) { r.MemoryUsage = 4096 }},
		{name: "cell accuracy", mutate: func(r *RunRecord) { r.CellAccuracy = 0.5 }},
		{name: "word accuracy", mutate: func(r *RunRecord) { r.WordAccuracy = 0.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := testRecord()
			tt.mutate(other)
			assert.NotEqual(t, base.DedupKey(), other.DedupKey())
			assert.NotEqual(t, base.StrictKey(), other.StrictKey())
		})
	}
}

func TestAlgorithmOrder(t *testing.T) {
	assert.Equal(t, []Algorithm{AlgorithmDFS, AlgorithmAStar, AlgorithmHybrid}, AlgorithmOrder())
}
