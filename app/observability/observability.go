package observability

import (
	"io"
	"log/slog"
	"strings"

	roundmetrics "github.com/Black-And-White-Club/frolf-tour-board/app/observability/metrics/round"
	"github.com/Black-And-White-Club/frolf-tour-board/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const metricsNamespace = "leaderboard"

// Observability bundles the logger, metrics and tracer handed to modules.
type Observability struct {
	Logger       *slog.Logger
	Prometheus   *prometheus.Registry
	RoundMetrics roundmetrics.RoundMetrics
	Tracer       trace.Tracer
}

// New builds the observability stack for cfg. Logs go to w.
func New(cfg config.ObservabilityConfig, w io.Writer) Observability {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	logger := NewLogger(cfg.LogLevel, logFormat(cfg), w).With(
		slog.String("service", cfg.ServiceName),
		slog.String("environment", cfg.Environment),
	)

	return Observability{
		Logger:       logger,
		Prometheus:   reg,
		RoundMetrics: roundmetrics.NewPrometheusMetrics(reg, metricsNamespace),
		Tracer:       otel.Tracer(cfg.ServiceName),
	}
}

// NewLogger returns a JSON or text slog logger at the named level.
// Unknown levels fall back to info.
func NewLogger(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// logFormat picks JSON in production unless a format is set explicitly.
func logFormat(cfg config.ObservabilityConfig) string {
	if cfg.LogFormat != "" {
		return cfg.LogFormat
	}
	if strings.EqualFold(cfg.Environment, "production") {
		return "json"
	}
	return "text"
}
