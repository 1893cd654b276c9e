package main

import (
	"strings"

	"github.com/CSA2-Thesis/crossword-solver/models"
)

// ScoreGrid compares a solver's filled grid against the reference
// puzzle and returns cell-level and word-level accuracy along with the
// positional diffs used by the viewer.
//
// The reference grid defines the playable-cell universe. The solved
// grid may be ragged, smaller, or missing rows entirely; any absent
// cell reads as blank and simply scores as incorrect. The function is
// pure and never fails: malformed inputs degrade to empty defaults.
//
// The cell pass and the word pass are independent. A word only counts
// as correct when every one of its cells is filled in and matches,
// which is a stricter requirement than the per-cell ratio.
func ScoreGrid(solved, reference models.Grid, clues models.ClueSet) models.AnalysisResult {
	solved = models.NormalizeGrid(solved)
	reference = models.NormalizeGrid(reference)
	clues = models.NormalizeClueSet(clues)

	result := models.AnalysisResult{
		IncorrectPositions: []models.CellDiff{},
		CorrectPositions:   []models.CellPos{},
	}

	// Cell pass: every playable reference cell, case-insensitive.
	for y := range reference {
		for x := range reference[y] {
			if reference.IsBlack(x, y) {
				continue
			}
			result.TotalCells++

			expected := strings.ToUpper(strings.TrimSpace(reference[y][x]))
			got := strings.ToUpper(strings.TrimSpace(solved.CellAt(x, y)))
			if got == expected {
				result.CorrectCells++
				result.CorrectPositions = append(result.CorrectPositions, models.CellPos{X: x, Y: y})
			} else {
				result.IncorrectPositions = append(result.IncorrectPositions, models.CellDiff{
					X: x, Y: y, Expected: expected, Got: got,
				})
			}
		}
	}

	result.Accuracy = 1.0
	if result.TotalCells > 0 {
		result.Accuracy = float64(result.CorrectCells) / float64(result.TotalCells)
	}

	// Word pass: a clue that runs out of the reference grid is
	// incomplete, never fatal.
	for _, clue := range clues.All() {
		result.TotalWords++
		if wordSolved(solved, reference, clue) {
			result.CorrectWords++
		}
	}

	result.WordAccuracy = 1.0
	if result.TotalWords > 0 {
		result.WordAccuracy = float64(result.CorrectWords) / float64(result.TotalWords)
	}

	return result
}

// wordSolved walks the clue's cells and reports whether the solver
// filled every one of them with the reference letter.
func wordSolved(solved, reference models.Grid, clue models.Clue) bool {
	for _, pos := range clue.Cells() {
		if pos.Y < 0 || pos.Y >= len(reference) || pos.X < 0 || pos.X >= len(reference[pos.Y]) {
			return false
		}
		got := strings.TrimSpace(solved.CellAt(pos.X, pos.Y))
		if got == "" {
			return false
		}
		expected := strings.TrimSpace(reference[pos.Y][pos.X])
		if !strings.EqualFold(got, expected) {
			return false
		}
	}
	return true
}
