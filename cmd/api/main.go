package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/adotapet/adota-pet-api/internal/config"
	dbpkg "github.com/adotapet/adota-pet-api/internal/db"
	"github.com/adotapet/adota-pet-api/internal/logger"
	"github.com/adotapet/adota-pet-api/internal/middleware"
	"github.com/adotapet/adota-pet-api/internal/routes"
)

func main() {

	cfg := config.Load()

	log := logger.New(cfg.Debug)
	defer log.Sync()

	db := dbpkg.NewDB(cfg)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.ErrorHandler(log, cfg.Debug))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
