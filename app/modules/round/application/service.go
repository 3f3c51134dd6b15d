package roundservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	rounddomain "github.com/Black-And-White-Club/frolf-tour-board/app/modules/round/domain"
	"github.com/Black-And-White-Club/frolf-tour-board/app/modules/round/infrastructure/workbook"
	roundmetrics "github.com/Black-And-White-Club/frolf-tour-board/app/observability/metrics/round"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// RoundService implements the Service interface.
type RoundService struct {
	source  workbook.Source
	layout  rounddomain.Layout
	logger  *slog.Logger
	metrics roundmetrics.RoundMetrics
	tracer  trace.Tracer
}

// NewRoundService creates a new RoundService.
func NewRoundService(
	source workbook.Source,
	layout rounddomain.Layout,
	logger *slog.Logger,
	metrics roundmetrics.RoundMetrics,
	tracer trace.Tracer,
) *RoundService {
	return &RoundService{
		source:  source,
		layout:  layout,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
	}
}

// Rounds lists the configured rounds.
func (s *RoundService) Rounds() []rounddomain.RoundSpec {
	out := make([]rounddomain.RoundSpec, len(s.layout.Rounds))
	copy(out, s.layout.Rounds)
	return out
}

// RoundReport opens the workbook and assembles every table of the round.
// Any failure discards the whole report.
func (s *RoundService) RoundReport(ctx context.Context, round int) (*rounddomain.Report, error) {
	return withTelemetry(ctx, s, "RoundReport", round, func(ctx context.Context) (*rounddomain.Report, error) {
		spec, err := s.roundSpec(round)
		if err != nil {
			return nil, err
		}

		var report *rounddomain.Report
		err = s.withSheet(ctx, spec, func(sheet workbook.Sheet) error {
			report, err = s.buildReport(ctx, spec, sheet)
			return err
		})
		if err != nil {
			return nil, err
		}
		return report, nil
	})
}

// OverallTable reads the overall table of the round without the other tables.
func (s *RoundService) OverallTable(ctx context.Context, round int) (rounddomain.Grid, error) {
	return withTelemetry(ctx, s, "OverallTable", round, func(ctx context.Context) (rounddomain.Grid, error) {
		spec, err := s.roundSpec(round)
		if err != nil {
			return nil, err
		}
		if spec.OverallRounds == 0 {
			return nil, fmt.Errorf("%w: round %d", ErrNoOverallTable, round)
		}

		var grid rounddomain.Grid
		err = s.withSheet(ctx, spec, func(sheet workbook.Sheet) error {
			grid, err = ReadOverall(ctx, sheet, s.layout.Overall, spec.OverallRounds)
			if err != nil {
				return fmt.Errorf("failed to read overall table: %w", err)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		return grid, nil
	})
}

func (s *RoundService) roundSpec(round int) (rounddomain.RoundSpec, error) {
	spec, ok := s.layout.Round(round)
	if !ok {
		return rounddomain.RoundSpec{}, fmt.Errorf("%w: %d", ErrUnknownRound, round)
	}
	return spec, nil
}

// withSheet opens a fresh workbook, resolves the round's sheet and runs fn.
// The workbook is closed before withSheet returns.
func (s *RoundService) withSheet(ctx context.Context, spec rounddomain.RoundSpec, fn func(workbook.Sheet) error) error {
	start := time.Now()
	wb, err := s.source.Open(ctx)
	s.metrics.RecordWorkbookOpen(s.source.Kind(), time.Since(start))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWorkbookUnavailable, err)
	}
	defer func() {
		if cerr := wb.Close(); cerr != nil {
			s.logger.WarnContext(ctx, "Failed to close workbook",
				slog.String("source", s.source.Kind()),
				slog.Any("error", cerr),
			)
		}
	}()

	sheet, err := wb.Sheet(ctx, spec.Sheet)
	if err != nil {
		return err
	}
	return fn(sheet)
}

func (s *RoundService) buildReport(ctx context.Context, spec rounddomain.RoundSpec, sheet workbook.Sheet) (*rounddomain.Report, error) {
	report := &rounddomain.Report{Round: spec.Number, Sheet: sheet.Name()}

	tables := []struct {
		name string
		r    rounddomain.Range
		dst  *rounddomain.Grid
	}{
		{"standings", s.layout.Standings, &report.Standings},
		{"strokes", s.layout.Strokes, &report.Strokes},
		{"points", s.layout.Points, &report.Points},
	}
	for _, t := range tables {
		grid, err := Extract(ctx, sheet, t.r)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s table: %w", t.name, err)
		}
		*t.dst = grid
	}

	if spec.Matchplay {
		if err := s.readMatchplay(ctx, spec, sheet, report); err != nil {
			return nil, err
		}
	}

	if spec.OverallRounds > 0 {
		grid, err := ReadOverall(ctx, sheet, s.layout.Overall, spec.OverallRounds)
		if err != nil {
			return nil, fmt.Errorf("failed to read overall table: %w", err)
		}
		report.Overall = grid
	}

	return report, nil
}

func (s *RoundService) readMatchplay(ctx context.Context, spec rounddomain.RoundSpec, sheet workbook.Sheet, report *rounddomain.Report) error {
	mp := s.layout.Matchplay

	display, err := Extract(ctx, sheet, mp.Display)
	if err != nil {
		return fmt.Errorf("failed to read matchplay table: %w", err)
	}

	scores, defaulted, err := BuildScoreMap(ctx, sheet, mp.Scores)
	if err != nil {
		return fmt.Errorf("failed to read hole scores: %w", err)
	}
	if defaulted > 0 {
		s.logger.DebugContext(ctx, "Unparsable hole scores counted as 0",
			slog.Int("round", spec.Number),
			slog.Int("cells", defaulted),
		)
	}

	colors, misses := Colorize(display, mp.Display, mp.Colors, scores)
	if len(misses) > 0 {
		s.metrics.RecordUnmatchedNames(spec.Number, len(misses))
		for _, name := range misses {
			s.logger.DebugContext(ctx, "Matchplay name has no hole scores",
				slog.Int("round", spec.Number),
				slog.String("name", name),
				slog.String("closest", closestName(name, scores)),
			)
		}
	}

	report.Matchplay = display
	report.MatchplayColors = colors
	return nil
}

// withTelemetry wraps a service operation with tracing, metrics, and panic recovery.
func withTelemetry[T any](
	ctx context.Context,
	s *RoundService,
	operationName string,
	round int,
	op func(ctx context.Context) (T, error),
) (result T, err error) {
	if ctx == nil {
		return result, errors.New("context cannot be nil")
	}

	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
		attribute.Int("round", round),
	))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			var zero T
			result = zero
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				slog.String("operation", operationName),
				slog.Int("round", round),
				slog.Any("error", err),
			)
		}

		status := rounddomain.StatusSuccess
		if err != nil {
			status = rounddomain.StatusError
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		s.metrics.RecordRoundRequest(round, status)
	}()

	result, err = op(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Operation failed with error",
			slog.String("operation", operationName),
			slog.Int("round", round),
			slog.Any("error", err),
		)
		return result, err
	}

	s.logger.InfoContext(ctx, "Operation completed successfully",
		slog.String("operation", operationName),
		slog.Int("round", round),
	)
	return result, nil
}
