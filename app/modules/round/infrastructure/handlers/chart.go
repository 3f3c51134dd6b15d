package roundhandlers

import (
	"fmt"
	"log/slog"
	"net/http"

	rounddomain "github.com/Black-And-White-Club/frolf-tour-board/app/modules/round/domain"
	roundcharts "github.com/Black-And-White-Club/frolf-tour-board/app/modules/round/infrastructure/charts"
)

// HandleOverallChart renders the round's overall table as a PNG.
func (h *RoundHandlers) HandleOverallChart(spec rounddomain.RoundSpec) http.HandlerFunc {
	title := fmt.Sprintf("Standings after %d rounds", spec.OverallRounds)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := h.tracer.Start(r.Context(), "HandleOverallChart")
		defer span.End()

		grid, err := h.service.OverallTable(ctx, spec.Number)
		if err != nil {
			h.logger.ErrorContext(ctx, "Overall chart request failed",
				slog.Int("round", spec.Number),
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.Any("error", err),
			)
			http.Error(w, "failed to read overall table", http.StatusInternalServerError)
			return
		}

		png, err := roundcharts.RenderOverall(grid, title)
		if err != nil {
			h.logger.ErrorContext(ctx, "Overall chart render failed",
				slog.Int("round", spec.Number),
				slog.Any("error", err),
			)
			http.Error(w, "failed to render overall chart", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(png)
	}
}
