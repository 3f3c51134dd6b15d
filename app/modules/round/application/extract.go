package roundservice

import (
	"context"
	"fmt"

	rounddomain "github.com/Black-And-White-Club/frolf-tour-board/app/modules/round/domain"
	"github.com/Black-And-White-Club/frolf-tour-board/app/modules/round/infrastructure/workbook"
)

// Extract copies r out of sheet. The grid always has r.Rows() rows of
// r.Cols() cells; absent cells become "".
func Extract(ctx context.Context, sheet workbook.Sheet, r rounddomain.Range) (rounddomain.Grid, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRange, r)
	}

	values, err := sheet.Values(ctx, r)
	if err != nil {
		return nil, err
	}

	return toGrid(values, r), nil
}

func toGrid(values [][]any, r rounddomain.Range) rounddomain.Grid {
	grid := make(rounddomain.Grid, r.Rows())
	for i := range grid {
		row := make([]any, r.Cols())
		for j := range row {
			row[j] = ""
			if i < len(values) && j < len(values[i]) && values[i][j] != nil {
				row[j] = values[i][j]
			}
		}
		grid[i] = row
	}
	return grid
}
