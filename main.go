package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/parisxmas/foreverfamily/internal/auth"
	"github.com/parisxmas/foreverfamily/internal/config"
	"github.com/parisxmas/foreverfamily/internal/db"
	"github.com/parisxmas/foreverfamily/internal/gelf"
	"github.com/parisxmas/foreverfamily/internal/handler"
	"github.com/parisxmas/foreverfamily/internal/logging"
	"github.com/parisxmas/foreverfamily/internal/repository"
	"github.com/parisxmas/foreverfamily/internal/router"
	"github.com/parisxmas/foreverfamily/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// GELF UDP logging
	var gelfWriter io.Writer
	if cfg.GelfAddr != "" {
		w, err := gelf.New(cfg.GelfAddr)
		if err != nil {
			logging.Init(cfg.LogLevel, cfg.LogFormat, nil)
			slog.Warn("GELF init failed", "error", err)
		} else {
			defer w.Close()
			gelfWriter = w
		}
	}
	logging.Init(cfg.LogLevel, cfg.LogFormat, gelfWriter)
	if gelfWriter != nil {
		slog.Info("GELF logging enabled", "addr", cfg.GelfAddr)
	}

	store, err := db.NewStore(cfg.DataDir)
	if err != nil {
		return err
	}
	slog.Info("Data directory ready", "dir", store.Dir())

	clock := clockwork.NewRealClock()

	var codec auth.TokenCodec = auth.Base64Codec{}
	if cfg.PortalTokenSecret != "" {
		codec = auth.NewJWTCodec(cfg.PortalTokenSecret, clock.Now)
		slog.Info("Portal tokens are signed")
	}
	if cfg.Permissive() {
		slog.Warn("Permissive mode: admin key check is disabled")
	} else if cfg.AdminKey == "" {
		slog.Warn("ADMIN_KEY is not set: admin routes will reject every request")
	}

	// Repositories
	subRepo := repository.NewSubmissionRepo(store)
	refRepo := repository.NewReferralRepo(store)
	stepRepo := repository.NewStepRepo(store)

	// Services
	intakeSvc := service.NewIntakeService(subRepo, refRepo, clock)
	portalSvc := service.NewPortalService(codec, clock)
	stepSvc := service.NewStepService(stepRepo, clock)

	// Handlers
	intakeH := handler.NewIntakeHandler(intakeSvc)
	portalH := handler.NewPortalHandler(portalSvc)
	stepH := handler.NewStepHandler(stepSvc)
	adminH := handler.NewAdminHandler(subRepo, refRepo)
	staticH := handler.NewStaticHandler(cfg.StaticDir)
	if err := staticH.CheckIndex(); err != nil {
		slog.Warn("Static fallback page missing", "dir", cfg.StaticDir, "error", err)
	}

	r := router.New(router.Options{
		AdminKey:       cfg.AdminKey,
		Permissive:     cfg.Permissive(),
		AllowedOrigins: cfg.AllowedOrigins(),
	}, intakeH, portalH, stepH, adminH, staticH)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Forever Family - Server running", "local", "http://localhost"+cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
