package app

import (
	"log/slog"
	"net/http"
	"time"

	roundhandlers "github.com/Black-And-White-Club/frolf-tour-board/app/modules/round/infrastructure/handlers"
	"github.com/Black-And-White-Club/frolf-tour-board/app/observability"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const readHeaderTimeout = 10 * time.Second

// newRouter builds the root router with the ambient routes. Modules mount
// their own routes on it.
func newRouter(obs observability.Observability) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(roundhandlers.RequestIDMiddleware)
	r.Use(requestLogger(obs.Logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(obs.Prometheus, promhttp.HandlerOpts{Registry: obs.Prometheus}))

	return r
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.DebugContext(r.Context(), "HTTP request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", roundhandlers.RequestIDFromContext(r.Context())),
			)
		})
	}
}
