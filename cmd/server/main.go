package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/quizboard/quizboard-backend/internal/bank"
	"github.com/quizboard/quizboard-backend/internal/config"
	"github.com/quizboard/quizboard-backend/internal/database"
	"github.com/quizboard/quizboard-backend/internal/handler"
	"github.com/quizboard/quizboard-backend/internal/logger"
	"github.com/quizboard/quizboard-backend/internal/repository"
	"github.com/quizboard/quizboard-backend/internal/router"
	"github.com/quizboard/quizboard-backend/internal/service"
	"github.com/quizboard/quizboard-backend/internal/store"
	"github.com/quizboard/quizboard-backend/internal/validator"
	"github.com/quizboard/quizboard-backend/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("banks_dir", cfg.BanksDir).
		Msg("Starting Quizboard Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Core Components ────────────────────────────────────
	fetcher := bank.NewFetcher(cfg.BanksDir, cfg.FetchTimeout)
	loader := bank.NewLoader(fetcher, log)
	stateStore := store.New(rdb, config.StateKey.GameStateKey(), log)
	historyRepo := repository.NewHistoryRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	bankService := service.NewBankService(loader, log)
	gameService := service.NewGameService(stateStore, loader, historyRepo, rdb, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Game: handler.NewGameHandler(gameService, bankService, cfg.HistoryLimit),
		Bank: handler.NewBankHandler(bankService, cfg.MaxUploadBytes),
		WS:   handler.NewWSHandler(rdb, log, cfg.AllowedOrigins),
	}

	// ─── Start Background Worker ──────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	archiveWorker := worker.NewArchiveWorker(historyRepo, rdb, log)
	go archiveWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop the archive worker and wait for the queue to drain.
	workerCancel()
	time.Sleep(2 * time.Second) // Allow the worker to drain.

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
