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

	"github.com/go-chi/chi/v5"

	"github.com/Kishore8899/badminton-tournament-scorer/config"
	"github.com/Kishore8899/badminton-tournament-scorer/db"
	"github.com/Kishore8899/badminton-tournament-scorer/handlers"
	api "github.com/Kishore8899/badminton-tournament-scorer/routes"
	"github.com/Kishore8899/badminton-tournament-scorer/services"
	"github.com/Kishore8899/badminton-tournament-scorer/storage"
	"github.com/Kishore8899/badminton-tournament-scorer/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	ctx := context.Background()

	// Snapshot store: Postgres when a DATABASE_URL is configured, otherwise
	// a local JSON file.
	var snapshotStore store.SnapshotStore
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
		if err != nil {
			logger.Error("failed to connect to database", slog.Any("error", err))
			os.Exit(1)
		}
		defer func() {
			if err := dbConn.Close(); err != nil {
				logger.Error("failed to close database connection", slog.Any("error", err))
			}
		}()

		snapshotStore, err = store.NewPostgresSnapshotStore(ctx, dbConn)
		if err != nil {
			logger.Error("failed to initialize postgres snapshot store", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("using postgres snapshot store")
	} else {
		snapshotStore = store.NewFileSnapshotStore(cfg.SnapshotFile)
		logger.Info("using file snapshot store", slog.String("path", cfg.SnapshotFile))
	}

	// Export backup uploader (optional).
	var uploader storage.BackupUploader
	if cfg.BackupConfigured() {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize export backup uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("export backup uploader initialized")
	}

	state, err := services.NewTournamentState(ctx, snapshotStore, logger)
	if err != nil {
		logger.Error("failed to initialize tournament state", slog.Any("error", err))
		os.Exit(1)
	}

	rosterService := services.NewRosterService(state)
	groupService := services.NewGroupService(state)
	matchService := services.NewMatchService(state)
	leaderboardService := services.NewLeaderboardService(state)
	tournamentService := services.NewTournamentService(state, logger)
	exportService := services.NewExportService(state, uploader, logger)
	logger.Info("services initialized")

	tournamentHandler := handlers.NewTournamentHandler(tournamentService, exportService)
	playerHandler := handlers.NewPlayerHandler(rosterService)
	teamHandler := handlers.NewTeamHandler(rosterService)
	groupHandler := handlers.NewGroupHandler(groupService)
	matchHandler := handlers.NewMatchHandler(matchService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		tournamentHandler,
		playerHandler,
		teamHandler,
		groupHandler,
		matchHandler,
		leaderboardHandler,
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
