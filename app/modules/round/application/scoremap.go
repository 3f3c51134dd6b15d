package roundservice

import (
	"context"
	"math"
	"strconv"
	"strings"

	rounddomain "github.com/Black-And-White-Club/frolf-tour-board/app/modules/round/domain"
	"github.com/Black-And-White-Club/frolf-tour-board/app/modules/round/infrastructure/workbook"
)

// BuildScoreMap reads the hole-score block of sheet. The int result counts
// non-empty hole cells that could not be parsed and were scored 0.
func BuildScoreMap(ctx context.Context, sheet workbook.Sheet, block rounddomain.ScoreBlock) (rounddomain.ScoreMap, int, error) {
	grid, err := Extract(ctx, sheet, block.Range())
	if err != nil {
		return nil, 0, err
	}

	scores, defaulted := ParseScoreRows(grid, block)
	return scores, defaulted, nil
}

// ParseScoreRows builds a score map from rows that start at column 1.
// Rows without a player name are skipped; a repeated name keeps the last row.
func ParseScoreRows(grid rounddomain.Grid, block rounddomain.ScoreBlock) (rounddomain.ScoreMap, int) {
	scores := make(rounddomain.ScoreMap, len(grid))
	defaulted := 0

	for _, row := range grid {
		name := rounddomain.NormalizeName(cellAt(row, block.PlayerCol))
		if name == "" {
			continue
		}

		holes := make(rounddomain.HoleScores, block.HoleCount)
		for hole := 1; hole <= block.HoleCount; hole++ {
			score, ok := parseHoleScore(cellAt(row, block.FirstHoleCol+hole-1))
			if !ok {
				defaulted++
			}
			holes[hole] = score
		}
		scores[name] = holes
	}

	return scores, defaulted
}

// cellAt returns the cell in 1-based column col, or nil past the row end.
func cellAt(row []any, col int) any {
	if col < 1 || col > len(row) {
		return nil
	}
	return row[col-1]
}

// parseHoleScore turns a hole cell into a score. Blank cells score 0 and
// are not failures; anything else that is not an integer scores 0 and
// reports false.
func parseHoleScore(v any) (int, bool) {
	switch val := v.(type) {
	case nil:
		return 0, true
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return 0, false
		}
		return int(val), true
	case int:
		return val, true
	case bool:
		if val {
			return 1, true
		}
		return 0, true
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return 0, true
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
