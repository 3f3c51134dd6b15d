package round

import (
	"context"
	"fmt"
	"log/slog"

	roundservice "github.com/Black-And-White-Club/frolf-tour-board/app/modules/round/application"
	rounddomain "github.com/Black-And-White-Club/frolf-tour-board/app/modules/round/domain"
	roundhandlers "github.com/Black-And-White-Club/frolf-tour-board/app/modules/round/infrastructure/handlers"
	roundrouter "github.com/Black-And-White-Club/frolf-tour-board/app/modules/round/infrastructure/router"
	"github.com/Black-And-White-Club/frolf-tour-board/app/modules/round/infrastructure/workbook"
	"github.com/Black-And-White-Club/frolf-tour-board/app/observability"
	"github.com/Black-And-White-Club/frolf-tour-board/config"
	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
)

// Module represents the round module.
type Module struct {
	config   *config.Config
	service  roundservice.Service
	handlers roundhandlers.Handlers
	logger   *slog.Logger
}

// NewModule creates a new round module. When httpRouter is non-nil the
// round routes are mounted under /api.
func NewModule(
	ctx context.Context,
	cfg *config.Config,
	obs observability.Observability,
	httpRouter chi.Router,
) (*Module, error) {
	logger := obs.Logger
	tracer := obs.Tracer

	logger.InfoContext(ctx, "Initializing round module",
		slog.String("workbook_source", cfg.Workbook.Source),
	)

	layout, err := rounddomain.LoadLayout(cfg.LayoutFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load layout: %w", err)
	}

	source, err := workbook.NewSource(ctx, cfg.Workbook)
	if err != nil {
		return nil, fmt.Errorf("failed to create workbook source: %w", err)
	}

	service := roundservice.NewRoundService(source, layout, logger, obs.RoundMetrics, tracer)
	handlers := roundhandlers.NewRoundHandlers(service, logger, tracer)

	if httpRouter != nil {
		httpRouter.Route("/api", func(r chi.Router) {
			r.Use(roundhandlers.CORSMiddleware(cfg.HTTP.AllowedOrigins))
			if cfg.HTTP.RateLimit > 0 {
				limiter := roundhandlers.NewClientRateLimiter(rate.Limit(cfg.HTTP.RateLimit), cfg.HTTP.RateBurst)
				r.Use(roundhandlers.RateLimitMiddleware(limiter))
			}
			roundrouter.RegisterRoutes(r, service.Rounds(), handlers)
		})
	}

	return &Module{
		config:   cfg,
		service:  service,
		handlers: handlers,
		logger:   logger,
	}, nil
}

// Service exposes the round service for the CLI.
func (m *Module) Service() roundservice.Service {
	return m.service
}
