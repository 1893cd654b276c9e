// Package models defines the core data types for the crossword solver
// analytics service: puzzle grids and clues, solution analysis results,
// persisted run records and their aggregate summaries.
package models

import "strings"

// Direction indicates the orientation of a clue in the grid.
type Direction string

const (
	// DirectionAcross runs left to right from the clue's start cell.
	DirectionAcross Direction = "across"

	// DirectionDown runs top to bottom from the clue's start cell.
	DirectionDown Direction = "down"
)

// BlackCell is the grid value marking a non-playable cell.
const BlackCell = "."

// Grid is a rectangular crossword grid: rows of single-character cell
// values. A value of "." (or blank) is a non-playable black cell; any
// other value is a letter cell. Height and width are derived from the
// slice shape, never stored separately.
type Grid [][]string

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// Width returns the length of the first row, 0 for an empty grid.
// Reference grids are rectangular so every row has this length.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// CellAt returns the value at column x, row y. Reads outside the grid
// (including ragged or missing rows) return the empty string rather
// than panicking, so a partial solver output can be compared against a
// larger reference grid.
func (g Grid) CellAt(x, y int) string {
	if y < 0 || y >= len(g) {
		return ""
	}
	row := g[y]
	if x < 0 || x >= len(row) {
		return ""
	}
	return row[x]
}

// IsBlack reports whether the cell at (x, y) is non-playable.
func (g Grid) IsBlack(x, y int) bool {
	v := g.CellAt(x, y)
	return v == BlackCell || strings.TrimSpace(v) == ""
}

// Clue is a single crossword clue and its placement in the grid.
type Clue struct {
	// Number is the display number of the clue.
	Number int `json:"number"`

	// Direction is "across" or "down".
	Direction Direction `json:"direction"`

	// StartX and StartY are the zero-based column and row of the
	// clue's first cell.
	StartX int `json:"startX"`
	StartY int `json:"startY"`

	// Length is the number of cells the answer occupies.
	Length int `json:"length"`

	// Answer is the solution word, exactly Length letters.
	Answer string `json:"answer"`

	// Clue is the display text shown to the player.
	Clue string `json:"clue"`
}

// Cells returns the grid coordinates covered by the clue, walking
// Length cells from (StartX, StartY) along the clue's direction.
func (c Clue) Cells() []CellPos {
	cells := make([]CellPos, 0, c.Length)
	for i := 0; i < c.Length; i++ {
		x, y := c.StartX, c.StartY
		if c.Direction == DirectionDown {
			y += i
		} else {
			x += i
		}
		cells = append(cells, CellPos{X: x, Y: y})
	}
	return cells
}

// ClueSet groups the clues of one puzzle by direction.
type ClueSet struct {
	Across []Clue `json:"across"`
	Down   []Clue `json:"down"`
}

// All returns the across clues followed by the down clues.
func (cs ClueSet) All() []Clue {
	all := make([]Clue, 0, len(cs.Across)+len(cs.Down))
	all = append(all, cs.Across...)
	all = append(all, cs.Down...)
	return all
}

// Len returns the total number of clues.
func (cs ClueSet) Len() int {
	return len(cs.Across) + len(cs.Down)
}

// NormalizeGrid replaces a nil or empty grid with the canonical empty
// grid so downstream code never branches on missing input.
func NormalizeGrid(g Grid) Grid {
	if len(g) == 0 {
		return Grid{{}}
	}
	return g
}

// NormalizeClueSet replaces nil clue slices with empty ones.
func NormalizeClueSet(cs ClueSet) ClueSet {
	if cs.Across == nil {
		cs.Across = []Clue{}
	}
	if cs.Down == nil {
		cs.Down = []Clue{}
	}
	return cs
}
