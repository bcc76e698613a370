package main

import (
	"log"

	"github.com/Ritesh-Sharma-Dev/trisikkim-bi-sub001/internal/config"
	"github.com/Ritesh-Sharma-Dev/trisikkim-bi-sub001/internal/db"
	"github.com/Ritesh-Sharma-Dev/trisikkim-bi-sub001/internal/handler"
	"github.com/Ritesh-Sharma-Dev/trisikkim-bi-sub001/internal/router"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := db.Init(cfg.DatabasePath); err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}

	// bootstrap the configured admin account if it does not exist yet
	if err := db.EnsureUser(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logger.Fatal("failed to ensure admin user", zap.Error(err))
	}

	api := handler.NewAPI(db.DB, cfg, logger)
	r := router.Setup(api, cfg)

	logger.Info("server listening", zap.String("addr", cfg.ListenAddr))
	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
