package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"agromart/internal/auth"
	"agromart/internal/commons"
	"agromart/internal/config"
	"agromart/internal/infrastructure/logger"
	"agromart/internal/infrastructure/mysql"
	"agromart/internal/notification"
	"agromart/internal/order"
	"agromart/internal/product"
	"agromart/internal/server"
	"agromart/internal/upload"
	userrepo "agromart/internal/user/repository"
)

func main() {
	// Best effort: a missing .env just means config comes from the
	// environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := commons.LoadConfigFile(path, cfg); err != nil {
			log.Fatalf("loading config file: %v", err)
		}
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	uploader := upload.NewHTTPUploader(cfg.Upload.Endpoint, cfg.Upload.PrivateKey, zapLogger)

	userRepo := userrepo.NewMySQLUserRepository(db)
	resolver := auth.NewResolver(cfg.Auth.JWTSecret, userRepo)
	authMW := auth.NewMiddleware(resolver, zapLogger)

	notifier, notificationCtrl := notification.NewModule(db, zapLogger)
	orderCtrl := order.NewModule(db, cfg, notifier, zapLogger)
	productCtrl := product.NewModule(db, uploader, zapLogger)

	router := server.NewRouter(authMW, orderCtrl, productCtrl, notificationCtrl, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
