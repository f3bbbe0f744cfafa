package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/TuneTutorsUK/tutor-scheduler/internal/config"
	dbpkg "github.com/TuneTutorsUK/tutor-scheduler/internal/db"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/logger"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/middleware"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/redisclient"
	"github.com/TuneTutorsUK/tutor-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()

	log := logger.New(cfg.Environment)
	defer log.Sync()

	db := dbpkg.NewDB(cfg)

	rdb, err := redisclient.New(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
		rdb = nil
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, rdb, log)

	log.Info("Server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
