package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Black-And-White-Club/frolf-tour-board/app/modules/round"
	"github.com/Black-And-White-Club/frolf-tour-board/app/observability"
	"github.com/Black-And-White-Club/frolf-tour-board/config"
	"github.com/go-chi/chi/v5"
)

// App wires the HTTP server to the round module.
type App struct {
	Config        *config.Config
	Observability observability.Observability
	Router        chi.Router
	RoundModule   *round.Module
	server        *http.Server
}

// NewApp initializes the application with the necessary modules and configuration.
func NewApp(ctx context.Context, cfg *config.Config, obs observability.Observability) (*App, error) {
	router := newRouter(obs)

	roundModule, err := round.NewModule(ctx, cfg, obs, router)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize round module: %w", err)
	}

	return &App{
		Config:        cfg,
		Observability: obs,
		Router:        router,
		RoundModule:   roundModule,
		server: &http.Server{
			Addr:              cfg.HTTP.Addr,
			Handler:           router,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}, nil
}
