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

	"github.com/comandaki/comanda-api/internal/application/auth"
	"github.com/comandaki/comanda-api/internal/application/billing"
	"github.com/comandaki/comanda-api/internal/application/orders"
	"github.com/comandaki/comanda-api/internal/application/reporting"
	"github.com/comandaki/comanda-api/internal/application/stock"
	"github.com/comandaki/comanda-api/internal/application/usecase"
	infrapdf "github.com/comandaki/comanda-api/internal/infrastructure/pdf"
	"github.com/comandaki/comanda-api/internal/infrastructure/postgres"
	infraprinter "github.com/comandaki/comanda-api/internal/infrastructure/printer"
	httpRouter "github.com/comandaki/comanda-api/internal/interfaces/http"
	"github.com/comandaki/comanda-api/pkg/config"
	"github.com/comandaki/comanda-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	menuItemRepo := postgres.NewMenuItemRepository(pool)
	tableRepo := postgres.NewTableRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	stockItemRepo := postgres.NewStockItemRepository(pool)
	stockMovRepo := postgres.NewStockMovementRepository(pool)
	invoiceRepo := postgres.NewPurchaseInvoiceRepository(pool)
	promotionRepo := postgres.NewPromotionRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	menuUC := usecase.NewMenuUseCase(categoryRepo, menuItemRepo)
	tableUC := usecase.NewTableUseCase(tableRepo)
	promotionUC := usecase.NewPromotionUseCase(promotionRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	ordersUC := orders.NewUseCase(orderRepo, tableRepo, menuItemRepo)
	stockUC := stock.NewUseCase(txRunner, stockItemRepo, stockMovRepo)

	// Impressora térmica: stub controlado enquanto não há hardware.
	lprClient := infraprinter.NewLPRClient(cfg.Printer)
	checkoutUC := billing.NewCheckoutUseCase(txRunner, orderRepo, menuItemRepo, settingsRepo, lprClient, log)
	importUC := billing.NewImportInvoiceUseCase(txRunner, invoiceRepo, log)

	pdfGenerator := infrapdf.NewMarotoReportGenerator(cfg.App.Name)
	reportUC := reporting.NewUseCase(reportRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Comanda API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		MenuUC:      menuUC,
		TableUC:     tableUC,
		PromotionUC: promotionUC,
		SettingsUC:  settingsUC,
		OrdersUC:    ordersUC,
		CheckoutUC:  checkoutUC,
		ImportUC:    importUC,
		StockUC:     stockUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
