package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"mergingtonactivities/config"
	"mergingtonactivities/internal/adapters/email"
	"mergingtonactivities/internal/catalog"
	deliveryhttp "mergingtonactivities/internal/delivery/http"
	"mergingtonactivities/internal/delivery/http/controllers"
	"mergingtonactivities/internal/domain"
	"mergingtonactivities/internal/repository/memory"
	"mergingtonactivities/internal/repository/postgres"
	"mergingtonactivities/internal/services"
)

//go:generate swag init --parseInternal -d ../.. -g cmd/api/main.go -o ../../docs

// @title Mergington Activities API
// @version 1.0
// @description List extracurricular activities and sign students up or withdraw them by email.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeStore, err := newActivityRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:          cfg.Email.AWSRegion,
			AccessKeyID:     cfg.Email.AWSAccessKeyID,
			SecretAccessKey: cfg.Email.AWSSecretAccessKey,
		},
	}, logger)
	if err != nil {
		return fmt.Errorf("create mailer: %w", err)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)

	activityService := services.NewActivityService(repo, emailService, logger, 5*time.Second)
	activityController := controllers.NewActivityController(logger, activityService)
	mux := deliveryhttp.NewRouter(activityController)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           deliveryhttp.NewHandler(logger, cfg.AllowedOrigins, mux),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr, "store", cfg.StoreDriver, "env", cfg.Environment)
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

	logger.Info("shutting down", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newActivityRepository builds the configured store and seeds it with the
// catalogue. The returned func releases the store's resources.
func newActivityRepository(ctx context.Context, cfg *config.Config, logger *slog.Logger) (domain.ActivityRepository, func(), error) {
	if cfg.StoreDriver != config.StorePostgres {
		return memory.NewActivityRepository(catalog.Default()), func() {}, nil
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			logger.Warn("close database", "err", err)
		}
	}

	initCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(initCtx); err != nil {
		closeDB()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}
	if err := postgres.Migrate(initCtx, db); err != nil {
		closeDB()
		return nil, nil, err
	}
	if err := postgres.Seed(initCtx, db, catalog.Default()); err != nil {
		closeDB()
		return nil, nil, err
	}
	return postgres.NewActivityRepository(db), closeDB, nil
}
