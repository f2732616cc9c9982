package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/quizboard/quizboard-backend/internal/config"
	"github.com/quizboard/quizboard-backend/internal/handler"
	"github.com/quizboard/quizboard-backend/internal/middleware"
	"github.com/quizboard/quizboard-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Game *handler.GameHandler
	Bank *handler.BankHandler
	WS   *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Serve the bank files statically so the board UI can fetch them
	// directly, with caching (1 hour; banks change rarely but do change).
	banksGroup := router.Group("/banks")
	banksGroup.Use(middleware.CacheControl(3600))
	{
		banksGroup.Static("/", cfg.BanksDir)
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for upload validation (20 requests per minute per IP).
	uploadLimiter := middleware.NewRateLimiter(20, time.Minute)

	// ─── Game API ──────────────────────────────────────────────────────
	api := router.Group("/api/v1")
	{
		api.POST("/game/setup", handlers.Game.SetupGame)
		api.GET("/game/state", handlers.Game.GetState)
		api.POST("/game/answer", handlers.Game.AnswerQuestion)
		api.POST("/game/restart", handlers.Game.RestartGame)
		api.GET("/history", handlers.Game.GetHistory)

		api.GET("/banks", handlers.Bank.ListBanks)
		api.POST("/banks/validate", uploadLimiter.Middleware(), handlers.Bank.ValidateBank)
	}

	// ─── Spectator Stream ──────────────────────────────────────────────
	ws := router.Group("/ws/v1")
	{
		ws.GET("/game/stream", handlers.WS.GameStream)
	}

	return router
}
