package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mvr-infra/materials-api/internal/application/auth"
	"github.com/mvr-infra/materials-api/internal/application/catalog"
	"github.com/mvr-infra/materials-api/internal/application/ledger"
	"github.com/mvr-infra/materials-api/internal/application/report"
	"github.com/mvr-infra/materials-api/internal/application/stock"
)

// RouterDeps are the router's dependencies.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	CatalogUC *catalog.CatalogUseCase
	LedgerUC  *ledger.LedgerUseCase
	StockUC   *stock.StockUseCase
	ReportUC  *report.ReportUseCase
	JWTSecret string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Everything below requires a bearer token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catalog
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	items := protected.Group("/catalog/:category/items")
	items.Post("/", catalogHandler.RegisterItem)
	items.Get("/", catalogHandler.ListItems)
	items.Get("/:name", catalogHandler.LookupItem)

	// Ledger
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	stockHandler := NewStockHandler(deps.StockUC, deps.ReportUC)
	ledgerGroup := protected.Group("/ledger")
	ledgerGroup.Post("/:category/events", ledgerHandler.RecordEvent)
	ledgerGroup.Get("/:category/events", ledgerHandler.ListEvents)
	ledgerGroup.Get("/:category/export/csv", stockHandler.ExportLedgerCSV)
	ledgerGroup.Put("/events/:id", RequireRole("stores"), ledgerHandler.EditEvent)
	ledgerGroup.Delete("/events/:id", RequireRole("stores"), ledgerHandler.DeleteEvent)

	// Stock overview + exports
	stocks := protected.Group("/stocks/:category")
	stocks.Get("/", stockHandler.GetStocks)
	stocks.Get("/export/csv", stockHandler.ExportStockCSV)
	stocks.Get("/export/pdf", stockHandler.ExportStockPDF)
}
