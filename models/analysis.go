package models

// CellPos identifies a single grid cell by zero-based column and row.
type CellPos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// CellDiff records a mismatched cell: where it is, what the reference
// grid holds and what the solver wrote (both uppercased; Got is empty
// when the solver left the cell blank or never reached it).
type CellDiff struct {
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Expected string `json:"expected"`
	Got      string `json:"got"`
}

// AnalysisResult is the outcome of comparing a solved grid against its
// reference puzzle. It is computed fresh per comparison and never
// mutated afterwards; only CellAccuracy/WordAccuracy are folded into a
// RunRecord for persistence.
type AnalysisResult struct {
	// CorrectCells and TotalCells count playable reference cells.
	CorrectCells int `json:"correctCells"`
	TotalCells   int `json:"totalCells"`

	// Accuracy is CorrectCells/TotalCells, 1.0 when there is
	// nothing to check.
	Accuracy float64 `json:"accuracy"`

	// CorrectWords and TotalWords count clues. A word is correct
	// only when every one of its cells is filled and matches.
	CorrectWords int     `json:"correctWords"`
	TotalWords   int     `json:"totalWords"`
	WordAccuracy float64 `json:"wordAccuracy"`

	// IncorrectPositions lists every mismatched playable cell;
	// CorrectPositions every matching one. Together they cover all
	// TotalCells positions.
	IncorrectPositions []CellDiff `json:"incorrectPositions"`
	CorrectPositions   []CellPos  `json:"correctPositions"`
}
