package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"go.uber.org/zap"

	"github.com/lexqna/lexqna/internal/app"
)

//	@title			LexQnA API
//	@version		1.0
//	@description	Legal Q&A marketplace API

// @host		localhost:8080
// @BasePath	/
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cancel); err != nil {
		zap.L().Fatal("Application terminated", zap.Error(err))
	}

	zap.L().Info("All systems closed without errors")
}

func run(ctx context.Context, cancel context.CancelFunc) error {
	a := app.New()
	if err := a.Start(ctx); err != nil {
		// Startup can fail before the zap globals are configured, so report
		// through zerolog as well.
		log.Error().Err(err).Msg("Can't start application")
		return err
	}

	return a.Wait(ctx, cancel)
}
