package main

import (
	"GiftKeeper/internal/config"
	"GiftKeeper/internal/handlers"
	"GiftKeeper/internal/middleware"
	"GiftKeeper/internal/repo"
	"GiftKeeper/internal/service"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	listRepo := repo.NewGiftListRepository(gormDB)
	itemRepo := repo.NewGiftItemRepository(gormDB)
	shareRepo := repo.NewSharedListRepository(gormDB)

	userService := service.NewUserService(userRepo)
	listService := service.NewGiftListService(listRepo, shareRepo)
	itemService := service.NewGiftItemService(itemRepo, listRepo, shareRepo)
	shareService := service.NewSharedListService(shareRepo, listRepo, userRepo)

	h := handlers.NewHandler(userService, listService, itemService, shareService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
