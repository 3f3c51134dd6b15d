package roundhandlers

import (
	"context"

	rounddomain "github.com/Black-And-White-Club/frolf-tour-board/app/modules/round/domain"
)

// FakeService provides a programmable stub for roundservice.Service.
type FakeService struct {
	RoundReportFunc  func(ctx context.Context, round int) (*rounddomain.Report, error)
	OverallTableFunc func(ctx context.Context, round int) (rounddomain.Grid, error)
	RoundsFunc       func() []rounddomain.RoundSpec
}

func (f *FakeService) RoundReport(ctx context.Context, round int) (*rounddomain.Report, error) {
	if f.RoundReportFunc != nil {
		return f.RoundReportFunc(ctx, round)
	}
	return &rounddomain.Report{Round: round}, nil
}

func (f *FakeService) OverallTable(ctx context.Context, round int) (rounddomain.Grid, error) {
	if f.OverallTableFunc != nil {
		return f.OverallTableFunc(ctx, round)
	}
	return rounddomain.Grid{}, nil
}

func (f *FakeService) Rounds() []rounddomain.RoundSpec {
	if f.RoundsFunc != nil {
		return f.RoundsFunc()
	}
	return rounddomain.DefaultLayout().Rounds
}
