package rounddomain

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScoreBlock describes the hidden per-hole score table used to colour matchplay cells.
type ScoreBlock struct {
	MinRow       int `yaml:"min_row"`
	MaxRow       int `yaml:"max_row"`
	PlayerCol    int `yaml:"player_col"`
	FirstHoleCol int `yaml:"first_hole_col"`
	HoleCount    int `yaml:"hole_count"`
}

// Range returns the block read from the sheet. It always starts at column 1
// so that PlayerCol and FirstHoleCol index the row directly.
func (b ScoreBlock) Range() Range {
	return Range{
		MinRow: b.MinRow,
		MaxRow: b.MaxRow,
		MinCol: 1,
		MaxCol: max(b.PlayerCol, b.FirstHoleCol+b.HoleCount-1),
	}
}

// MatchplayLayout locates the matchplay display table and its colour inputs.
type MatchplayLayout struct {
	Display Range      `yaml:"display"`
	Colors  Range      `yaml:"colors"`
	Scores  ScoreBlock `yaml:"scores"`
}

// OverallBlock describes the "after N rounds" table. Its width grows with the
// number of rounds played; BaseColumns is the width before any round column.
type OverallBlock struct {
	MinRow      int `yaml:"min_row"`
	MaxRow      int `yaml:"max_row"`
	MinCol      int `yaml:"min_col"`
	BaseColumns int `yaml:"base_columns"`
}

// Range returns the overall table for roundCount rounds.
func (b OverallBlock) Range(roundCount int) Range {
	return Range{
		MinRow: b.MinRow,
		MaxRow: b.MaxRow,
		MinCol: b.MinCol,
		MaxCol: b.MinCol - 1 + b.BaseColumns + roundCount,
	}
}

// RoundSpec says which tables a round sheet carries.
type RoundSpec struct {
	Number        int    `yaml:"number"`
	Sheet         string `yaml:"sheet"`
	Matchplay     bool   `yaml:"matchplay"`
	OverallRounds int    `yaml:"overall_rounds"`
}

// Layout is the fixed cell schema shared by every round sheet.
type Layout struct {
	Standings Range           `yaml:"standings"`
	Strokes   Range           `yaml:"strokes"`
	Points    Range           `yaml:"points"`
	Matchplay MatchplayLayout `yaml:"matchplay"`
	Overall   OverallBlock    `yaml:"overall"`
	Rounds    []RoundSpec     `yaml:"rounds"`
}

// DefaultLayout returns the layout of the tour workbook.
func DefaultLayout() Layout {
	return Layout{
		Standings: Range{MinRow: 6, MaxRow: 14, MinCol: 1, MaxCol: 4},
		Strokes:   Range{MinRow: 22, MaxRow: 33, MinCol: 1, MaxCol: 23},
		Points:    Range{MinRow: 38, MaxRow: 49, MinCol: 1, MaxCol: 23},
		Matchplay: MatchplayLayout{
			Display: Range{MinRow: 54, MaxRow: 65, MinCol: 1, MaxCol: 22},
			Colors:  Range{MinRow: 58, MaxRow: 65, MinCol: 5, MaxCol: 22},
			Scores: ScoreBlock{
				MinRow:       99,
				MaxRow:       106,
				PlayerCol:    1,
				FirstHoleCol: 5,
				HoleCount:    18,
			},
		},
		// Rows 73-81: header plus eight players. Row 72 holds the title.
		Overall: OverallBlock{MinRow: 73, MaxRow: 81, MinCol: 1, BaseColumns: 4},
		Rounds: []RoundSpec{
			{Number: 1, Sheet: "Round1"},
			{Number: 2, Sheet: "Round2", Matchplay: true, OverallRounds: 2},
			{Number: 3, Sheet: "Round3", OverallRounds: 3},
			{Number: 4, Sheet: "Round4", OverallRounds: 4},
			{Number: 5, Sheet: "Round5", Matchplay: true, OverallRounds: 5},
			{Number: 6, Sheet: "Round6", OverallRounds: 6},
		},
	}
}

// Round returns the spec for round number n.
func (l Layout) Round(n int) (RoundSpec, bool) {
	for _, r := range l.Rounds {
		if r.Number == n {
			return r, true
		}
	}
	return RoundSpec{}, false
}

// Validate checks that every table is addressable and every round is distinct.
func (l Layout) Validate() error {
	var errs []error

	tables := []struct {
		name string
		r    Range
	}{
		{"standings", l.Standings},
		{"strokes", l.Strokes},
		{"points", l.Points},
		{"matchplay display", l.Matchplay.Display},
		{"matchplay colors", l.Matchplay.Colors},
		{"matchplay scores", l.Matchplay.Scores.Range()},
		{"overall", l.Overall.Range(1)},
	}
	for _, t := range tables {
		if !t.r.Valid() {
			errs = append(errs, fmt.Errorf("%s table has an invalid range (%s)", t.name, t.r))
		}
	}

	if !l.Matchplay.Colors.Within(l.Matchplay.Display) {
		errs = append(errs, fmt.Errorf("matchplay colour region (%s) must lie inside the display table (%s)", l.Matchplay.Colors, l.Matchplay.Display))
	}
	if l.Matchplay.Scores.PlayerCol < 1 || l.Matchplay.Scores.FirstHoleCol < 1 || l.Matchplay.Scores.HoleCount < 1 {
		errs = append(errs, errors.New("matchplay score block needs a player column, a first hole column and at least one hole"))
	}
	if l.Overall.BaseColumns < 0 {
		errs = append(errs, errors.New("overall base_columns cannot be negative"))
	}

	if len(l.Rounds) == 0 {
		errs = append(errs, errors.New("layout defines no rounds"))
	}
	seen := make(map[int]struct{}, len(l.Rounds))
	for _, r := range l.Rounds {
		if r.Number < 1 {
			errs = append(errs, fmt.Errorf("round number %d must be positive", r.Number))
		}
		if _, dup := seen[r.Number]; dup {
			errs = append(errs, fmt.Errorf("round %d is defined twice", r.Number))
		}
		seen[r.Number] = struct{}{}
		if r.Sheet == "" {
			errs = append(errs, fmt.Errorf("round %d has no sheet name", r.Number))
		}
		if r.OverallRounds < 0 {
			errs = append(errs, fmt.Errorf("round %d has a negative overall_rounds", r.Number))
		}
	}

	return errors.Join(errs...)
}

// LoadLayout reads a YAML layout file over the default layout. Keys missing
// from the file keep their default values. An empty filename returns the
// default layout.
func LoadLayout(filename string) (Layout, error) {
	layout := DefaultLayout()
	if filename == "" {
		return layout, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to read layout file: %w", err)
	}
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return Layout{}, fmt.Errorf("failed to unmarshal layout: %w", err)
	}
	if err := layout.Validate(); err != nil {
		return Layout{}, fmt.Errorf("invalid layout %q: %w", filename, err)
	}

	return layout, nil
}
