package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yoockh/workmatch/config"
	"github.com/yoockh/workmatch/internal/api/handlers"
	"github.com/yoockh/workmatch/internal/api/middleware"
	"github.com/yoockh/workmatch/internal/api/routes"
	"github.com/yoockh/workmatch/internal/bootstrap"
	"github.com/yoockh/workmatch/internal/logger"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()
	cfg := config.LoadAppConfig()
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	svc, err := bootstrap.Build(log, true)
	if err != nil {
		log.WithError(err).Fatal("init stores")
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))

	routes.RegisterRoutes(r, routes.Deps{
		Match:  handlers.NewMatchHandler(svc.Match),
		Worker: handlers.NewWorkerHandler(svc.Worker),
		Job:    handlers.NewJobHandler(svc.Job),
		Admin:  handlers.NewAdminHandler(svc.Weight, svc.Catalog, svc.Metrics, svc.Inv),
	})

	log.WithField("port", cfg.Port).Info("listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
