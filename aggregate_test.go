package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CSA2-Thesis/crossword-solver/models"
)

func makeRecord(algo models.Algorithm, size int, execTime, memory, cellAcc, wordAcc float64) *models.RunRecord {
	return &models.RunRecord{
		ID:            "test",
		Timestamp:     time.Now(),
		Algorithm:     algo,
		Size:          size,
		Difficulty:    models.DifficultyMedium,
		CellAccuracy:  cellAcc,
		WordAccuracy:  wordAcc,
		ExecutionTime: execTime,
		MemoryUsage:   memory,
		WordsPlaced:   10,
	}
}

func TestAggregateByAlgorithmEmpty(t *testing.T) {
	assert.Empty(t, AggregateByAlgorithm(nil))
	assert.Empty(t, AggregateByAlgorithm([]*models.RunRecord{}))
}

func TestAggregateByAlgorithmMeans(t *testing.T) {
	records := []*models.RunRecord{
		makeRecord(models.AlgorithmDFS, 15, 0.2, 2000, 0.9, 0.8),
		makeRecord(models.AlgorithmDFS, 10, 0.4, 4000, 0.7, 0.6),
		makeRecord(models.AlgorithmDFS, 15, 0.6, 6000, 0.8, 0.7),
	}

	summaries := AggregateByAlgorithm(records)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, models.AlgorithmDFS, s.Algorithm)
	assert.Equal(t, 3, s.Count)
	assert.InDelta(t, 0.4, s.AvgExecutionTime, 1e-9)
	assert.InDelta(t, 4000, s.AvgMemoryUsage, 1e-9)
	assert.InDelta(t, 0.8, s.AvgAccuracy, 1e-9)
	assert.InDelta(t, 0.7, s.AvgWordAccuracy, 1e-9)

	// Distinct sizes, sorted ascending.
	assert.Equal(t, []int{10, 15}, s.Sizes)
}

func TestAggregateByAlgorithmOrderAndOmission(t *testing.T) {
	// No DFS records: the DFS bucket must be absent, not zeroed.
	records := []*models.RunRecord{
		makeRecord(models.AlgorithmHybrid, 15, 0.1, 1000, 0.95, 0.9),
		makeRecord(models.AlgorithmAStar, 15, 0.2, 2000, 0.9, 0.85),
		makeRecord(models.AlgorithmHybrid, 10, 0.3, 3000, 0.85, 0.8),
	}

	summaries := AggregateByAlgorithm(records)
	require.Len(t, summaries, 2)

	// Fixed order: DFS, A*, HYBRID.
	assert.Equal(t, models.AlgorithmAStar, summaries[0].Algorithm)
	assert.Equal(t, models.AlgorithmHybrid, summaries[1].Algorithm)
}

func TestAggregateBySize(t *testing.T) {
	records := []*models.RunRecord{
		makeRecord(models.AlgorithmDFS, 20, 0.5, 5000, 0.8, 0.7),
		makeRecord(models.AlgorithmAStar, 10, 0.1, 1000, 0.9, 0.85),
		makeRecord(models.AlgorithmHybrid, 20, 0.3, 3000, 0.9, 0.8),
	}

	summaries := AggregateBySize(records)
	require.Len(t, summaries, 2)

	assert.Equal(t, 10, summaries[0].Size)
	assert.Equal(t, 1, summaries[0].Count)
	assert.Equal(t, 20, summaries[1].Size)
	assert.Equal(t, 2, summaries[1].Count)
	assert.InDelta(t, 0.4, summaries[1].AvgExecutionTime, 1e-9)
	assert.InDelta(t, 0.85, summaries[1].AvgAccuracy, 1e-9)
}

func TestAggregateByAlgorithmAndSize(t *testing.T) {
	records := []*models.RunRecord{
		makeRecord(models.AlgorithmHybrid, 15, 0.1, 1000, 0.9, 0.8),
		makeRecord(models.AlgorithmDFS, 20, 0.4, 4000, 0.8, 0.7),
		makeRecord(models.AlgorithmDFS, 10, 0.2, 2000, 0.9, 0.8),
		makeRecord(models.AlgorithmDFS, 10, 0.4, 2000, 0.7, 0.6),
	}

	summaries := AggregateByAlgorithmAndSize(records)
	require.Len(t, summaries, 3)

	// Algorithm order first, sizes ascending within.
	assert.Equal(t, models.AlgorithmDFS, summaries[0].Algorithm)
	assert.Equal(t, 10, summaries[0].Size)
	assert.Equal(t, 2, summaries[0].Count)
	assert.InDelta(t, 0.3, summaries[0].AvgExecutionTime, 1e-9)

	assert.Equal(t, models.AlgorithmDFS, summaries[1].Algorithm)
	assert.Equal(t, 20, summaries[1].Size)

	assert.Equal(t, models.AlgorithmHybrid, summaries[2].Algorithm)
	assert.Equal(t, 15, summaries[2].Size)
}

func TestDeduplicateRecords(t *testing.T) {
	first := makeRecord(models.AlgorithmDFS, 15, 0.25, 2048, 0.9, 0.8)
	// Same run stored twice with a different timestamp.
	duplicate := makeRecord(models.AlgorithmDFS, 15, 0.25, 2048, 0.9, 0.8)
	duplicate.Timestamp = first.Timestamp.Add(time.Minute)
	// Differs in the fourth decimal of execution time.
	distinct := makeRecord(models.AlgorithmDFS, 15, 0.2503, 2048, 0.9, 0.8)

	unique := DeduplicateRecords([]*models.RunRecord{first, duplicate, distinct})

	assert.Len(t, unique, 2)
	assert.Same(t, first, unique[0])
	assert.Same(t, distinct, unique[1])
}

func TestDeduplicateRecordsEmpty(t *testing.T) {
	assert.Nil(t, DeduplicateRecords(nil))
	assert.Nil(t, DeduplicateRecords([]*models.RunRecord{}))
}
