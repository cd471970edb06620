package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	cachepkg "github.com/agendly/booking-api/internal/cache"
	"github.com/agendly/booking-api/internal/config"
	dbpkg "github.com/agendly/booking-api/internal/db"
	"github.com/agendly/booking-api/internal/logger"
	"github.com/agendly/booking-api/internal/middleware"
	"github.com/agendly/booking-api/internal/routes"
)

func main() {

	cfg := config.Load()

	log := logger.New(cfg.Env)
	defer log.Sync()

	db := dbpkg.NewDB(cfg, log)

	redisClient := cachepkg.New(cfg, log)
	availCache := cachepkg.NewAvailabilityCache(redisClient)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, availCache, cfg, log)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
