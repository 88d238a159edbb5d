package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/flamtime/SomeNerts/internal/auth"
	"github.com/flamtime/SomeNerts/internal/database"
	"github.com/flamtime/SomeNerts/internal/logger"
	"github.com/flamtime/SomeNerts/internal/metrics"
	"github.com/flamtime/SomeNerts/internal/services"
	"github.com/flamtime/SomeNerts/pkg/config"
)

// SetupRoutes configures all API routes
func SetupRoutes(r *gin.Engine, db *database.DB, cfg *config.Config, log logger.Logger, m *metrics.Metrics) error {
	svcs := services.NewServices(db.DB, cfg, log, m)
	registerRoutes(r, svcs, db, cfg.IsProduction())
	return nil
}

func registerRoutes(r *gin.Engine, svcs *services.Services, db HealthChecker, secureCookies bool) {
	authHandler := NewAuthHandler(svcs.Auth, secureCookies)
	gameHandler := NewGameHandler(svcs.Game)
	statsHandler := NewStatsHandler(svcs.Stats)
	healthHandler := NewHealthHandler(db)

	r.GET("/healthz", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes
	public := r.Group("/api/v1")
	{
		public.POST("/auth/login", authHandler.Login)
		public.POST("/auth/setup", authHandler.Setup)
		public.POST("/auth/refresh", authHandler.RefreshToken)
		public.POST("/auth/logout", authHandler.Logout)
	}

	// Protected routes
	protected := r.Group("/api/v1")
	protected.Use(auth.JWTMiddleware(svcs.Auth))
	{
		protected.POST("/games", gameHandler.CreateGame)
		protected.GET("/games", gameHandler.ListGames)
		protected.GET("/games/:id", gameHandler.GetGame)
		protected.DELETE("/games/:id", gameHandler.DeleteGame)
		protected.POST("/games/:id/rounds", gameHandler.AddRound)
		protected.GET("/games/:id/rounds", gameHandler.ListRounds)
		protected.GET("/games/:id/standings", gameHandler.GetStandings)
		protected.POST("/games/:id/end", gameHandler.EndGame)

		protected.GET("/stats/players", statsHandler.ListPlayers)
		protected.GET("/stats/players/:name", statsHandler.GetPlayer)
	}
}
