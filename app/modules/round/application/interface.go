package roundservice

import (
	"context"

	rounddomain "github.com/Black-And-White-Club/frolf-tour-board/app/modules/round/domain"
)

// Service defines the interface for the round service.
type Service interface {
	// RoundReport reads every table of the round's sheet.
	RoundReport(ctx context.Context, round int) (*rounddomain.Report, error)
	// OverallTable reads only the overall table of the round's sheet.
	OverallTable(ctx context.Context, round int) (rounddomain.Grid, error)
	// Rounds lists the configured rounds in layout order.
	Rounds() []rounddomain.RoundSpec
}
