package main

import (
	"context"
	"dashboard/config"
	"dashboard/infras/otel"
	"dashboard/internal/commands"
	"dashboard/internal/domains/entry/repository"
	"dashboard/internal/domains/entry/service"
	"dashboard/shared/logger"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

func main() {
	logger.InitLoggerWithOutput(os.Stderr)

	cfg := config.Get()

	logger.SetLogLevel(cfg)

	ot := otel.New(cfg)
	svc := service.New(repository.New(cfg, ot), cfg, ot)

	app := &cli.Command{
		Name:  "entries",
		Usage: "Inspect the dashboard's project entries",
	}

	app = commands.NewEntriesCmd(svc).Register(app)

	err := app.Run(context.Background(), os.Args)

	if shutdownErr := ot.Shutdown(context.Background()); shutdownErr != nil {
		log.Warn().Err(shutdownErr).Msg("failed to flush traces")
	}

	if err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
