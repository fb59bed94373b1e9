package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nfrund/backstory/internal/app"
	"github.com/nfrund/backstory/internal/config"
	"github.com/nfrund/backstory/internal/logging"
	"github.com/nfrund/backstory/internal/server"
)

func main() {
	logger := logging.New()
	cfg := config.New()

	s, err := server.New(app.New(app.Dependencies{Config: cfg, Logger: logger}))
	if err != nil {
		slog.Error("Failed to initialize server", "error", err)
		os.Exit(1)
	}
	s.RegisterRoutes()

	if err := s.Start(context.Background()); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
