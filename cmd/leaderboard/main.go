package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Black-And-White-Club/frolf-tour-board/app"
	"github.com/Black-And-White-Club/frolf-tour-board/app/modules/round"
	rounddomain "github.com/Black-And-White-Club/frolf-tour-board/app/modules/round/domain"
	"github.com/Black-And-White-Club/frolf-tour-board/app/observability"
	"github.com/Black-And-White-Club/frolf-tour-board/config"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	if err := newCLI(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newCLI(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "leaderboard",
		Usage:     "serve the frolf tour leaderboard from a spreadsheet",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Value:   "config.yaml",
				Usage:   "path to the configuration file",
				EnvVars: []string{"CONFIG_FILE"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the HTTP API",
				Action: func(c *cli.Context) error {
					cfg, err := config.LoadConfig(c.String("config"))
					if err != nil {
						return fmt.Errorf("failed to load config: %w", err)
					}
					obs := observability.New(cfg.Observability, stderr)

					ctx, stop := app.SignalContext(c.Context)
					defer stop()

					application, err := app.NewApp(ctx, cfg, obs)
					if err != nil {
						return err
					}
					return application.Start(ctx)
				},
			},
			{
				Name:  "dump",
				Usage: "print the JSON envelope of one round",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "round", Aliases: []string{"r"}, Required: true, Usage: "round number"},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.LoadConfig(c.String("config"))
					if err != nil {
						return fmt.Errorf("failed to load config: %w", err)
					}
					return dump(c.Context, cfg, c.Int("round"), stdout, stderr)
				},
			},
		},
	}
}

// dump writes the same envelope /api/round{N} would serve.
func dump(ctx context.Context, cfg *config.Config, roundNumber int, stdout, stderr io.Writer) error {
	obs := observability.New(cfg.Observability, stderr)

	module, err := round.NewModule(ctx, cfg, obs, nil)
	if err != nil {
		return err
	}

	report, err := module.Service().RoundReport(ctx, roundNumber)
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rounddomain.NewEnvelope(report, err))
}
