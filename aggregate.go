package main

import (
	"sort"

	"github.com/CSA2-Thesis/crossword-solver/models"
)

// DeduplicateRecords collapses records sharing the same strict key,
// keeping the first occurrence of each. Storage already rejects
// duplicates at write time on a coarser key, so this is the second,
// tighter pass applied when records are read back for aggregation.
func DeduplicateRecords(records []*models.RunRecord) []*models.RunRecord {
	if len(records) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(records))
	var unique []*models.RunRecord
	for _, r := range records {
		key := r.StrictKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, r)
	}
	return unique
}

// AggregateByAlgorithm groups records per algorithm and returns one
// summary per non-empty bucket, in the fixed algorithm order.
func AggregateByAlgorithm(records []*models.RunRecord) []*models.AlgorithmSummary {
	buckets := make(map[models.Algorithm][]*models.RunRecord)
	for _, r := range records {
		buckets[r.Algorithm] = append(buckets[r.Algorithm], r)
	}

	var summaries []*models.AlgorithmSummary
	for _, algo := range models.AlgorithmOrder() {
		group := buckets[algo]
		if len(group) == 0 {
			continue
		}

		s := &models.AlgorithmSummary{
			Algorithm: algo,
			Count:     len(group),
		}
		sizeSet := make(map[int]bool)
		for _, r := range group {
			s.AvgExecutionTime += r.ExecutionTime
			s.AvgMemoryUsage += r.MemoryUsage
			s.AvgAccuracy += r.CellAccuracy
			s.AvgWordAccuracy += r.WordAccuracy
			sizeSet[r.Size] = true
		}
		n := float64(len(group))
		s.AvgExecutionTime /= n
		s.AvgMemoryUsage /= n
		s.AvgAccuracy /= n
		s.AvgWordAccuracy /= n

		s.Sizes = make([]int, 0, len(sizeSet))
		for size := range sizeSet {
			s.Sizes = append(s.Sizes, size)
		}
		sort.Ints(s.Sizes)

		summaries = append(summaries, s)
	}
	return summaries
}

// AggregateBySize groups records per grid size, ascending.
func AggregateBySize(records []*models.RunRecord) []*models.SizeSummary {
	buckets := make(map[int][]*models.RunRecord)
	for _, r := range records {
		buckets[r.Size] = append(buckets[r.Size], r)
	}

	sizes := make([]int, 0, len(buckets))
	for size := range buckets {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)

	var summaries []*models.SizeSummary
	for _, size := range sizes {
		group := buckets[size]
		s := &models.SizeSummary{
			Size:  size,
			Count: len(group),
		}
		for _, r := range group {
			s.AvgExecutionTime += r.ExecutionTime
			s.AvgMemoryUsage += r.MemoryUsage
			s.AvgAccuracy += r.CellAccuracy
			s.AvgWordAccuracy += r.WordAccuracy
		}
		n := float64(len(group))
		s.AvgExecutionTime /= n
		s.AvgMemoryUsage /= n
		s.AvgAccuracy /= n
		s.AvgWordAccuracy /= n

		summaries = append(summaries, s)
	}
	return summaries
}

// AggregateByAlgorithmAndSize groups records per (algorithm, size)
// pair: algorithms in fixed order, sizes ascending within each.
func AggregateByAlgorithmAndSize(records []*models.RunRecord) []*models.AlgorithmSizeSummary {
	type pair struct {
		algo models.Algorithm
		size int
	}
	buckets := make(map[pair][]*models.RunRecord)
	sizesPerAlgo := make(map[models.Algorithm]map[int]bool)
	for _, r := range records {
		buckets[pair{r.Algorithm, r.Size}] = append(buckets[pair{r.Algorithm, r.Size}], r)
		if sizesPerAlgo[r.Algorithm] == nil {
			sizesPerAlgo[r.Algorithm] = make(map[int]bool)
		}
		sizesPerAlgo[r.Algorithm][r.Size] = true
	}

	var summaries []*models.AlgorithmSizeSummary
	for _, algo := range models.AlgorithmOrder() {
		sizes := make([]int, 0, len(sizesPerAlgo[algo]))
		for size := range sizesPerAlgo[algo] {
			sizes = append(sizes, size)
		}
		sort.Ints(sizes)

		for _, size := range sizes {
			group := buckets[pair{algo, size}]
			s := &models.AlgorithmSizeSummary{
				Algorithm: algo,
				Size:      size,
				Count:     len(group),
			}
			for _, r := range group {
				s.AvgExecutionTime += r.ExecutionTime
				s.AvgMemoryUsage += r.MemoryUsage
				s.AvgAccuracy += r.CellAccuracy
				s.AvgWordAccuracy += r.WordAccuracy
			}
			n := float64(len(group))
			s.AvgExecutionTime /= n
			s.AvgMemoryUsage /= n
			s.AvgAccuracy /= n
			s.AvgWordAccuracy /= n

			summaries = append(summaries, s)
		}
	}
	return summaries
}
