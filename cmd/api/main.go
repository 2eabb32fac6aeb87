package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"apikit/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring (ports + adapters + use cases).
// 3) Serve HTTP until SIGINT/SIGTERM.
//
// @title apikit contacts API
// @version 1.0
// @description Contact book served through the canonical response envelope.
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.BuildAPI(ctx)
	if err != nil {
		slog.Error("api bootstrap failed",
			"event", "api_bootstrap_failed",
			"module", "cmd/api",
			"layer", "platform",
			"error", err.Error(),
		)
		os.Exit(1)
	}
	defer func() {
		_ = app.Close()
	}()

	if err := app.Run(ctx); err != nil {
		slog.Error("api stopped with error",
			"event", "api_stopped_with_error",
			"module", "cmd/api",
			"layer", "platform",
			"error", err.Error(),
		)
		_ = app.Close()
		os.Exit(1)
	}
}
