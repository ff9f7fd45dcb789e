package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"nearbychat/config"
	"nearbychat/internal/api/handler"
	chatRepository "nearbychat/internal/chat/repository"
	chatUsecase "nearbychat/internal/chat/usecase"
	"nearbychat/internal/storage"
	userRepository "nearbychat/internal/user/repository"
	userUsecase "nearbychat/internal/user/usecase"
	"nearbychat/pkg/logger"
)

func main() {
	v, err := config.LoadConfig("config")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	appLogger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer appLogger.Sync()

	ctx := context.Background()

	db, err := storage.Connect(ctx, cfg.Bun.DSN)
	if err != nil {
		appLogger.Errorf("failed to connect to database: %v", err)
		return
	}
	defer db.Close()

	if err := storage.InitSchema(ctx, db); err != nil {
		appLogger.Errorf("failed to init schema: %v", err)
		return
	}

	userRepo := userRepository.NewUserRepository(db, *appLogger)
	chatRepo := chatRepository.NewChatRepository(db, *appLogger)

	// the general chat must exist before the first request
	if _, err := chatRepo.EnsureGeneralChat(ctx); err != nil {
		appLogger.Errorf("failed to bootstrap general chat: %v", err)
		return
	}

	users := userUsecase.NewUserUsecase(userRepo, *appLogger, *cfg)
	chats := chatUsecase.NewChatUsecase(chatRepo, userRepo, *appLogger, *cfg)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	h := handler.NewHandler(users, chats, *appLogger, *cfg)
	h.RegisterRoutes(r)

	server := &http.Server{
		Addr:           ":" + cfg.Server.Port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	appLogger.Info("server listening", "port", cfg.Server.Port, "env", cfg.Server.Environment)
	if err := server.ListenAndServe(); err != nil {
		appLogger.Errorf("server stopped: %v", err)
	}
}
