package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dantdj/business-hours/internal/config"
	"github.com/dantdj/business-hours/internal/schedule"
	"github.com/dantdj/business-hours/internal/web"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	level, _ := cfg.Level()
	zerolog.SetGlobalLevel(level)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	server, err := web.NewServer(web.Config{
		HTTPAddr: cfg.HTTPAddr,
		Clock:    schedule.SystemClock,
		Logger:   log.Logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build server")
	}

	log.Info().
		Bool("open", schedule.IsInOperatingHours(schedule.SystemClock)).
		Int("open_hour", schedule.OpenHour).
		Int("close_hour", schedule.CloseHour).
		Msg("site is only accessible Monday-Friday during opening hours")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to serve")
	}
}
