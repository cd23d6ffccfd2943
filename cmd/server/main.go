package main

import (
	"arova-be/internal/cart"
	"arova-be/internal/catalog"
	"arova-be/internal/checkout"
	"arova-be/internal/config"
	"arova-be/internal/handler"
	"arova-be/internal/logger"
	"arova-be/internal/middleware"
	"arova-be/internal/order"
	"arova-be/internal/storage"
	"arova-be/internal/wishlist"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.L().Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config) error {
	store, err := storage.NewStore(cfg.DataDir)
	if err != nil {
		return err
	}

	app, err := newServer(cfg, store)
	if err != nil {
		return err
	}

	logger.L().Info("🚀 storefront running",
		zap.String("port", cfg.AppPort),
		zap.String("env", cfg.AppEnv),
	)

	return app.Listen(":" + cfg.AppPort)
}

func newServer(cfg *config.Config, store *storage.Store) (*fiber.App, error) {
	catalogRepo, err := catalog.NewRepository()
	if err != nil {
		return nil, err
	}
	catalogSvc := catalog.NewService(catalogRepo)

	cartRepo := cart.NewMemoryRepository()
	cartSvc := cart.NewService(cartRepo, catalogRepo)

	wishlistRepo := wishlist.NewMemoryRepository()
	wishlistSvc := wishlist.NewService(wishlistRepo, catalogRepo)

	orderRepo := order.NewRepository(store)
	orderSvc := order.NewService(orderRepo)

	checkoutSvc := checkout.NewService(cartSvc, orderRepo, cfg.ShippingFlatRate)

	app := fiber.New(fiber.Config{
		AppName: "arova-be",
	})
	app.Use(logger.RequestID())
	app.Use(logger.Logging())
	app.Use(middleware.RateLimit())

	h := handler.New(catalogSvc, cartSvc, wishlistSvc, checkoutSvc, orderSvc)
	h.Register(app)

	return app, nil
}
