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
	"github.com/hmonterrosa/scoring-dashboard/config"
	"github.com/hmonterrosa/scoring-dashboard/db"
	"github.com/hmonterrosa/scoring-dashboard/handlers"
	"github.com/hmonterrosa/scoring-dashboard/leaderboard"
	"github.com/hmonterrosa/scoring-dashboard/livedata"
	"github.com/hmonterrosa/scoring-dashboard/repositories"
	api "github.com/hmonterrosa/scoring-dashboard/routes"
	"github.com/hmonterrosa/scoring-dashboard/services"
	"github.com/hmonterrosa/scoring-dashboard/storage"
	_ "github.com/lib/pq"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	cloudflareUploader, err := storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
		AccountID:       cfg.R2AccountID,
		AccessKeyID:     cfg.R2AccessKeyID,
		SecretAccessKey: cfg.R2SecretAccessKey,
		BucketName:      cfg.R2BucketName,
		PublicBaseURL:   cfg.R2PublicBaseURL,
	})
	if err != nil {
		logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Cloudflare R2 uploader initialized")

	wsHub := leaderboard.NewHub()
	go wsHub.Run()
	logger.Info("WebSocket hub started")

	gameRepo := repositories.NewPostgresGameRepository(dbConn)
	playerRepo := repositories.NewPostgresPlayerRepository(dbConn)
	scoreRepo := repositories.NewPostgresScoreRepository(dbConn)
	logger.Info("repositories initialized")

	liveStore := livedata.NewStore(gameRepo, playerRepo, scoreRepo, logger)
	if err := liveStore.Load(context.Background()); err != nil {
		logger.Error("failed to load live data store", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("live data store loaded", slog.Time("last_update", liveStore.LastUpdate()))

	authService := services.NewAuthService(services.AuthConfig{
		AdminUsername:     cfg.AdminUsername,
		AdminPasswordHash: cfg.AdminPasswordHash,
		AttendantPassword: cfg.AttendantPassword,
	})
	gameService := services.NewGameService(gameRepo, cloudflareUploader, liveStore)
	playerService := services.NewPlayerService(playerRepo, liveStore)
	scoringService := services.NewScoringService(repositories.NewTxBeginner(dbConn), scoreRepo, gameRepo, playerRepo, liveStore)
	leaderboardService := services.NewLeaderboardService(liveStore)
	logger.Info("services initialized")

	// Every collection change triggers a fresh ranking broadcast, so the
	// fullscreen boards track writes without polling.
	broadcast := func(collection livedata.Collection) {
		result, err := leaderboardService.Standings(context.Background(), leaderboard.FilterAll)
		if err != nil {
			logger.Error("failed to build standings for broadcast", slog.Any("error", err))
			return
		}
		wsHub.BroadcastToRoom(leaderboard.RoomLeaderboard, leaderboard.Message{
			Type:    "LEADERBOARD_UPDATED",
			Payload: result,
			Room:    leaderboard.RoomLeaderboard,
		})
	}
	liveStore.Subscribe(livedata.CollectionGames, broadcast)
	liveStore.Subscribe(livedata.CollectionPlayers, broadcast)
	liveStore.Subscribe(livedata.CollectionScores, broadcast)

	// Polling fallback for anything a push might have missed.
	go func() {
		ticker := time.NewTicker(cfg.RefreshInterval)
		defer ticker.Stop()
		logger.Info("live data refresh scheduler started", slog.Duration("interval", cfg.RefreshInterval))

		for range ticker.C {
			if err := liveStore.RefreshAll(context.Background()); err != nil {
				logger.Error("scheduled refresh failed", slog.Any("error", err))
			}
		}
	}()

	authHandler := handlers.NewAuthHandler(authService, cfg.JWTSecretKey)
	gameHandler := handlers.NewGameHandler(gameService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	scoringHandler := handlers.NewScoringHandler(scoringService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	webSocketHandler := handlers.NewWebSocketHandler(wsHub)
	logger.Info("HTTP handlers initialized")

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		cfg.JWTSecretKey,
		authHandler,
		gameHandler,
		playerHandler,
		scoringHandler,
		leaderboardHandler,
		webSocketHandler,
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
		} else {
			logger.Info("server stopped gracefully")
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		} else {
			logger.Info("server shutdown complete")
		}
	}
	logger.Info("application exited")
}
