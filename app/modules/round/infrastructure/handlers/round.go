package roundhandlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	rounddomain "github.com/Black-And-White-Club/frolf-tour-board/app/modules/round/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// HandleRound returns the JSON envelope for one round. The status code is
// always 200; failures are reported in the envelope.
func (h *RoundHandlers) HandleRound(round int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := h.tracer.Start(r.Context(), "HandleRound", trace.WithAttributes(
			attribute.Int("round", round),
			attribute.String("request_id", RequestIDFromContext(r.Context())),
		))
		defer span.End()

		report, err := h.service.RoundReport(ctx, round)
		if err != nil {
			h.logger.ErrorContext(ctx, "Round request failed",
				slog.Int("round", round),
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.Any("error", err),
			)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(rounddomain.NewEnvelope(report, err)); err != nil {
			h.logger.WarnContext(ctx, "Failed to write round response",
				slog.Int("round", round),
				slog.Any("error", err),
			)
		}
	}
}
