package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/arthur12320/flash-cards-simple/internal/config"
	"github.com/arthur12320/flash-cards-simple/internal/repository"
	"github.com/arthur12320/flash-cards-simple/internal/server"
	"github.com/arthur12320/flash-cards-simple/internal/service"
	"github.com/arthur12320/flash-cards-simple/internal/storage/cache"
	"github.com/arthur12320/flash-cards-simple/internal/storage/db"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync()

	db, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}

	repos := repository.NewRepository(db)
	sessions := cache.NewCache()
	services := service.InitServices(repos, sessions, logger)

	handlers := server.NewHandlers(services, logger)
	auth := server.NewAuthMiddleware(cfg.Auth.JWTSecret, logger)
	srv := server.NewServer(cfg.HTTP, handlers, auth, cfg.Env, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
