package rounddomain

import "fmt"

// Grid is a row-major block of cell values copied out of a sheet. Cells hold
// a string, a float64 or a bool; absent cells are the empty string.
type Grid [][]any

// ColorTag marks a player's placing on one matchplay hole.
type ColorTag string

const (
	ColorNone   ColorTag = ""
	ColorGold   ColorTag = "gold"
	ColorSilver ColorTag = "silver"
	ColorBronze ColorTag = "bronze"
)

// ColorForScore maps a hole score to its medal colour.
func ColorForScore(score int) ColorTag {
	switch score {
	case 3:
		return ColorGold
	case 2:
		return ColorSilver
	case 1:
		return ColorBronze
	default:
		return ColorNone
	}
}

// ColorGrid is parallel in shape to the matchplay display grid.
type ColorGrid [][]ColorTag

// HoleScores maps a 1-based hole number to a score.
type HoleScores map[int]int

// ScoreMap maps a normalized player name to that player's hole scores.
type ScoreMap map[string]HoleScores

// Range is a rectangular block of cells in 1-based, inclusive sheet coordinates.
type Range struct {
	MinRow int `yaml:"min_row"`
	MaxRow int `yaml:"max_row"`
	MinCol int `yaml:"min_col"`
	MaxCol int `yaml:"max_col"`
}

// Rows returns the number of rows covered by r.
func (r Range) Rows() int { return r.MaxRow - r.MinRow + 1 }

// Cols returns the number of columns covered by r.
func (r Range) Cols() int { return r.MaxCol - r.MinCol + 1 }

// Valid reports whether r names at least one cell inside the sheet.
func (r Range) Valid() bool {
	return r.MinRow >= 1 && r.MinCol >= 1 && r.MaxRow >= r.MinRow && r.MaxCol >= r.MinCol
}

// Contains reports whether the absolute cell (row, col) lies inside r.
func (r Range) Contains(row, col int) bool {
	return row >= r.MinRow && row <= r.MaxRow && col >= r.MinCol && col <= r.MaxCol
}

// Within reports whether every cell of r is also inside outer.
func (r Range) Within(outer Range) bool {
	return outer.Contains(r.MinRow, r.MinCol) && outer.Contains(r.MaxRow, r.MaxCol)
}

func (r Range) String() string {
	return fmt.Sprintf("rows %d-%d, cols %d-%d", r.MinRow, r.MaxRow, r.MinCol, r.MaxCol)
}
