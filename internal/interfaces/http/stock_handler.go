package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/mvr-infra/materials-api/internal/application/dto"
	"github.com/mvr-infra/materials-api/internal/application/report"
	"github.com/mvr-infra/materials-api/internal/application/stock"
)

// StockHandler serves the reconciled stock overview and its exports. Exports
// always cover the full filtered set, not the visible page.
type StockHandler struct {
	stockUC  *stock.StockUseCase
	reportUC *report.ReportUseCase
}

// NewStockHandler builds the handler.
func NewStockHandler(stockUC *stock.StockUseCase, reportUC *report.ReportUseCase) *StockHandler {
	return &StockHandler{stockUC: stockUC, reportUC: reportUC}
}

// GetStocks godoc
// @Summary      Paginated stock overview for a category
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        category   path   string  true   "category"
// @Param        search     query  string  false  "case-insensitive item name substring"
// @Param        page       query  int     false  "1-indexed page"
// @Param        page_size  query  int     false  "rows per page"
// @Success      200  {object}  dto.StockListResponse
// @Failure      500  {object}  dto.ErrorResponse  "reconciliation failure"
// @Router       /api/stocks/{category} [get]
func (h *StockHandler) GetStocks(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid query parameters"})
	}
	resp, err := h.reportUC.StockPage(c.Params("category"), c.Query("search"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// ExportStockCSV godoc
// @Summary      Export the filtered stock overview as CSV
// @Tags         stocks
// @Security     Bearer
// @Produce      text/csv
// @Param        category  path   string  true   "category"
// @Param        search    query  string  false  "item name substring"
// @Success      200  {string}  string
// @Router       /api/stocks/{category}/export/csv [get]
func (h *StockHandler) ExportStockCSV(c *fiber.Ctx) error {
	category := c.Params("category")
	text, err := h.reportUC.StockCSV(category, c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", h.reportUC.CSVFilename(category)))
	return c.SendString(text)
}

// ExportStockPDF godoc
// @Summary      Export the filtered stock overview as a branded PDF
// @Tags         stocks
// @Security     Bearer
// @Produce      application/pdf
// @Param        category  path   string  true   "category"
// @Param        search    query  string  false  "item name substring"
// @Success      200  {string}  binary
// @Router       /api/stocks/{category}/export/pdf [get]
func (h *StockHandler) ExportStockPDF(c *fiber.Ctx) error {
	category := c.Params("category")
	data, err := h.reportUC.StockPDF(c.Context(), category, c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", category+"-stock-report.pdf"))
	return c.Send(data)
}

// ExportLedgerCSV godoc
// @Summary      Export a filtered event register as CSV
// @Tags         ledger
// @Security     Bearer
// @Produce      text/csv
// @Param        category  path  string  true  "category"
// @Success      200  {string}  string
// @Router       /api/ledger/{category}/export/csv [get]
func (h *StockHandler) ExportLedgerCSV(c *fiber.Ctx) error {
	var in dto.ListEventsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid query parameters"})
	}
	category := c.Params("category")
	text, err := h.reportUC.LedgerCSV(category, in)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", category+"-ledger.csv"))
	return c.SendString(text)
}
