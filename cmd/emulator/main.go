package main

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"beacon/config"
	"beacon/internal/emulator"
	logs "beacon/internal/infra/log"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			newEmulator,
		),
		fx.Invoke(startServer),
	).Run()
}

// newEmulator creates the emulator with dependency injection
func newEmulator(cfg *config.Config, logger *slog.Logger) *emulator.Emulator {
	secret := "emulator-secret"
	tokenTTL := time.Hour
	if cfg.Emulator != nil {
		if cfg.Emulator.Secret != "" {
			secret = cfg.Emulator.Secret
		}
		if cfg.Emulator.TokenTTL > 0 {
			tokenTTL = cfg.Emulator.TokenTTL
		}
	}

	return emulator.New(secret, tokenTTL, logger)
}

type serverParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Config   *config.Config
	Emulator *emulator.Emulator
	Logger   *slog.Logger
}

func startServer(params serverParams) {
	port := 9099
	if params.Config.Emulator != nil && params.Config.Emulator.Port > 0 {
		port = params.Config.Emulator.Port
	}

	server := &http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           params.Emulator.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			params.Logger.Info("Starting auth emulator", slog.Int("port", port))

			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					params.Logger.Error("Emulator server failed", slog.Any("error", err))
					_ = params.Shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
}
