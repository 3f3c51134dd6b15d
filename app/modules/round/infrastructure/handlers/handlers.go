package roundhandlers

import (
	"log/slog"

	roundservice "github.com/Black-And-White-Club/frolf-tour-board/app/modules/round/application"
	"go.opentelemetry.io/otel/trace"
)

// RoundHandlers implements the Handlers interface for the round endpoints.
type RoundHandlers struct {
	service roundservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewRoundHandlers creates a new RoundHandlers instance.
func NewRoundHandlers(
	service roundservice.Service,
	logger *slog.Logger,
	tracer trace.Tracer,
) Handlers {
	return &RoundHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}
