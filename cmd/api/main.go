package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/backoffice/internal/client"
	"github.com/MrJamesThe3rd/backoffice/internal/config"
	"github.com/MrJamesThe3rd/backoffice/internal/dashboard"
	backofficeHttp "github.com/MrJamesThe3rd/backoffice/internal/http"
	dashboardHandler "github.com/MrJamesThe3rd/backoffice/internal/http/dashboard"
	"github.com/MrJamesThe3rd/backoffice/internal/logging"
)

func main() {
	_ = godotenv.Load()

	if err := run(); err != nil {
		slog.Error("api exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := logging.Setup(cfg.Log.Level, cfg.Log.Format, os.Stderr); err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}

	backend := client.New(cfg.Backend.URL,
		client.WithToken(cfg.Backend.Token),
		client.WithTimeout(cfg.Backend.Timeout),
	)

	ctrl := dashboard.NewController(backend,
		dashboard.WithLLC(cfg.Dashboard.LLCName),
		dashboard.WithSuggestionLimit(cfg.Dashboard.SuggestionLimit),
		dashboard.WithUploadLogSize(cfg.Dashboard.UploadLogSize),
		dashboard.WithUploadTimeout(cfg.Backend.Timeout),
	)
	defer ctrl.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := ctrl.Load(ctx); err != nil {
			slog.Warn("initial dashboard load failed", "error", err)
		}
	}()

	router := backofficeHttp.New(dashboardHandler.NewHandler(ctrl), backofficeHttp.Options{
		AllowedOrigins: cfg.Server.CORSOrigins,
		Timeout:        cfg.Server.Timeout,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shut down server", "error", err)
		}
	}()

	slog.Info("starting server", "app", cfg.App.Name, "port", srv.Addr, "backend", cfg.Backend.URL)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving http: %w", err)
	}

	return nil
}
