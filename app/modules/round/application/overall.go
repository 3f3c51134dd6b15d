package roundservice

import (
	"context"
	"fmt"

	rounddomain "github.com/Black-And-White-Club/frolf-tour-board/app/modules/round/domain"
	"github.com/Black-And-White-Club/frolf-tour-board/app/modules/round/infrastructure/workbook"
)

// ReadOverall extracts the "after roundCount rounds" table.
func ReadOverall(ctx context.Context, sheet workbook.Sheet, block rounddomain.OverallBlock, roundCount int) (rounddomain.Grid, error) {
	if roundCount < 1 {
		return nil, fmt.Errorf("%w: overall table needs at least one round, got %d", ErrInvalidRange, roundCount)
	}
	return Extract(ctx, sheet, block.Range(roundCount))
}
