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

	"github.com/mvr-infra/materials-api/internal/application/auth"
	"github.com/mvr-infra/materials-api/internal/application/catalog"
	"github.com/mvr-infra/materials-api/internal/application/ledger"
	"github.com/mvr-infra/materials-api/internal/application/report"
	"github.com/mvr-infra/materials-api/internal/application/stock"
	infrapdf "github.com/mvr-infra/materials-api/internal/infrastructure/pdf"
	"github.com/mvr-infra/materials-api/internal/infrastructure/postgres"
	httpRouter "github.com/mvr-infra/materials-api/internal/interfaces/http"
	"github.com/mvr-infra/materials-api/pkg/config"
	"github.com/mvr-infra/materials-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	itemRepo := postgres.NewItemRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	catalogUC := catalog.NewCatalogUseCase(itemRepo)
	ledgerUC := ledger.NewLedgerUseCase(txRunner, ledgerRepo, itemRepo)
	stockUC := stock.NewStockUseCase(itemRepo, ledgerRepo)

	branding := report.Branding{
		CompanyName:  cfg.Report.CompanyName,
		GSTIN:        cfg.Report.GSTIN,
		UDYAM:        cfg.Report.UDYAM,
		Address:      cfg.Report.Address,
		ContactEmail: cfg.Report.ContactEmail,
		Website:      cfg.Report.Website,
	}
	pdfGen := infrapdf.NewMarotoStockReport()
	reportUC := report.NewReportUseCase(stockUC, ledgerUC, pdfGen, branding, cfg.Report.CSVFilename)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // PDF export is a long-ish synchronous render
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Materials API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		CatalogUC: catalogUC,
		LedgerUC:  ledgerUC,
		StockUC:   stockUC,
		ReportUC:  reportUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
