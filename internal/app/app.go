package app

import (
	"fmt"

	"vahub_backend/internal/config"
	"vahub_backend/internal/database"
	"vahub_backend/internal/handlers"
	"vahub_backend/internal/logger"
	"vahub_backend/internal/metrics"
	"vahub_backend/internal/middleware"
	"vahub_backend/internal/routes"
	"vahub_backend/internal/services"
	"vahub_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter builds the full engine: middleware chain, services,
// handlers and routes. Shared between Run and the test harness.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.GetConfig()

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggingMiddleware())
	r.Use(metrics.NewHTTPMetrics("vahub_backend").Middleware())
	r.Use(middleware.CORSMiddleware())

	container := services.NewServiceContainer(db)
	appHandlers := handlers.NewAppHandlers(container, validator.New())
	routes.RegisterRoutes(r, appHandlers)

	return r
}

// Run wires everything together and blocks serving HTTP.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	db, err := database.Connect(cfg.Database.DSN, cfg.Server.Env)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	if err := Seed(db, cfg); err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	r := SetupRouter(db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "addr", addr, "env", cfg.Server.Env)
	return r.Run(addr)
}
