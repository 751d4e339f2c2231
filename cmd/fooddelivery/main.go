package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"

	"fooddelivery/internal/adapter/handler"
	"fooddelivery/internal/adapter/storage"
	"fooddelivery/internal/config"
	"fooddelivery/internal/core/domain"
	"fooddelivery/internal/core/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := buildLogger(cfg.Environment)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		sugar.Fatalw("create data directory", "dir", cfg.DataDir, "error", err)
	}

	catalogStore, err := storage.OpenCatalogStore(cfg.FoodPath(), sugar)
	if err != nil {
		sugar.Fatalw("open catalog store", "path", cfg.FoodPath(), "error", err)
	}
	userStore, err := storage.OpenUserStore(cfg.UserPath(), sugar)
	if err != nil {
		sugar.Fatalw("open user store", "path", cfg.UserPath(), "error", err)
	}

	// Admin credentials are reference data read once at startup and handed
	// to the façade explicitly.
	accounts, err := storage.LoadAdminAccounts(cfg.AdminPath())
	if err != nil {
		sugar.Fatalw("load admin credentials", "path", cfg.AdminPath(), "error", err)
	}
	adminAuth := service.NewAdminAuth(accounts, func() ([]domain.AdminAccount, error) {
		return storage.LoadAdminAccounts(cfg.AdminPath())
	})

	catalogService := service.NewCatalogService(catalogStore, sugar)
	userService := service.NewUserService(userStore, sugar)
	orderService := service.NewOrderService(catalogStore, userStore, sugar)

	cli := handler.NewCLIHandler(os.Stdin, os.Stdout, adminAuth, catalogService, userService, orderService)
	cli.Run(context.Background())
}

func buildLogger(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
