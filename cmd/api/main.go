package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"
	"github.com/vapetrack/kiosk-api/internal/application/auth"
	"github.com/vapetrack/kiosk-api/internal/application/inventory"
	"github.com/vapetrack/kiosk-api/internal/application/sales"
	"github.com/vapetrack/kiosk-api/internal/application/usecase"
	infrapdf "github.com/vapetrack/kiosk-api/internal/infrastructure/pdf"
	"github.com/vapetrack/kiosk-api/internal/infrastructure/postgres"
	"github.com/vapetrack/kiosk-api/internal/infrastructure/telegram"
	httpRouter "github.com/vapetrack/kiosk-api/internal/interfaces/http"
	"github.com/vapetrack/kiosk-api/pkg/config"
	"github.com/vapetrack/kiosk-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("database migrations")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	kioskRepo := postgres.NewKioskRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	sessionRepo := postgres.NewInventorySessionRepository(pool)
	itemRepo := postgres.NewInventoryItemRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	shiftRepo := postgres.NewShiftRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	var notifier inventory.Notifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		notifier = telegram.NewSender(log.Zerolog(), cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	} else {
		notifier = telegram.NewNoOpSender(log.Zerolog())
	}

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	kioskUC := usecase.NewKioskUseCase(kioskRepo)
	productUC := usecase.NewProductUseCase(productRepo, kioskRepo)
	inventoryUC := inventory.NewSessionUseCase(txRunner, sessionRepo, itemRepo, kioskRepo, notifier)
	saleUC := sales.NewUseCase(
		txRunner, saleRepo, kioskRepo,
		infrapdf.NewReceiptGenerator(), notifier,
		decimal.NewFromInt(int64(cfg.Telegram.LargeSaleUAH)),
	)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, kioskRepo)
	shiftUC := usecase.NewShiftUseCase(shiftRepo, kioskRepo, userRepo)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Kiosk API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		KioskUC:     kioskUC,
		ProductUC:   productUC,
		InventoryUC: inventoryUC,
		SaleUC:      saleUC,
		ExpenseUC:   expenseUC,
		ShiftUC:     shiftUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
