// Package report is the read/aggregate/render pipeline: pagination, CSV and
// PDF exports with consistent totals. Exports always operate on the full
// filtered set, never on the page the operator happens to be looking at.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/mvr-infra/materials-api/internal/application/dto"
	"github.com/mvr-infra/materials-api/internal/application/ledger"
	"github.com/mvr-infra/materials-api/internal/application/stock"
	"github.com/mvr-infra/materials-api/internal/domain/entity"
)

// StockCSVHeaders are the export columns, in the order the site office
// expects them.
var StockCSVHeaders = []string{
	"Item Description", "Unit", "Total Issued", "Total Returned",
	"In Field", "Current Stock", "Status",
}

// LedgerCSVHeaders are the register export columns.
var LedgerCSVHeaders = []string{
	"Date", "Kind", "Item Description", "Quantity", "Unit",
	"Counterparty", "Source Document",
}

// ReportUseCase renders stock overviews and ledger registers.
type ReportUseCase struct {
	stockUC     *stock.StockUseCase
	ledgerUC    *ledger.LedgerUseCase
	pdfGen      StockPDFGenerator
	branding    Branding
	csvFilename string
}

// NewReportUseCase builds the use case.
func NewReportUseCase(stockUC *stock.StockUseCase, ledgerUC *ledger.LedgerUseCase, pdfGen StockPDFGenerator, branding Branding, csvFilename string) *ReportUseCase {
	return &ReportUseCase{
		stockUC:     stockUC,
		ledgerUC:    ledgerUC,
		pdfGen:      pdfGen,
		branding:    branding,
		csvFilename: csvFilename,
	}
}

// StockPage returns one page of the reconciled stock overview.
func (uc *ReportUseCase) StockPage(category, search string, page dto.PageRequest) (*dto.StockListResponse, error) {
	page.DefaultPage()
	snaps, err := uc.stockUC.ComputeAllSnapshots(category, search)
	if err != nil {
		return nil, err
	}
	pg := Paginate(snaps, page.Page, page.PageSize)
	rows := make([]dto.StockRowResponse, 0, len(pg.Rows))
	for _, s := range pg.Rows {
		rows = append(rows, toStockRow(s))
	}
	return &dto.StockListResponse{
		Rows: rows,
		Page: dto.PageResponse{
			Page:       page.Page,
			PageSize:   page.PageSize,
			TotalPages: pg.TotalPages,
			TotalCount: pg.TotalCount,
		},
	}, nil
}

// StockCSV renders the full filtered stock set as CSV.
func (uc *ReportUseCase) StockCSV(category, search string) (string, error) {
	snaps, err := uc.stockUC.ComputeAllSnapshots(category, search)
	if err != nil {
		return "", err
	}
	rows := make([][]string, 0, len(snaps))
	for _, s := range snaps {
		rows = append(rows, []string{
			s.ItemName, s.Unit,
			s.TotalIssued.String(), s.TotalReturned.String(),
			s.InField.String(), s.CurrentStock.String(),
			s.Status,
		})
	}
	return WriteCSV(StockCSVHeaders, rows), nil
}

// StockPDF renders the full filtered stock set as a branded multi-page PDF.
func (uc *ReportUseCase) StockPDF(ctx context.Context, category, search string) ([]byte, error) {
	snaps, err := uc.stockUC.ComputeAllSnapshots(category, search)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateStockReport(ctx, category, snaps, uc.branding)
}

// LedgerCSV renders a filtered event register as CSV.
func (uc *ReportUseCase) LedgerCSV(category string, in dto.ListEventsRequest) (string, error) {
	events, err := uc.ledgerUC.ListEvents(category, in)
	if err != nil {
		return "", err
	}
	rows := make([][]string, 0, len(events))
	for _, ev := range events {
		rows = append(rows, []string{
			ev.Timestamp.Format(time.DateOnly), ev.Kind, ev.ItemName,
			ev.Quantity.String(), ev.Unit, ev.CounterpartyRef, ev.SourceDocRef,
		})
	}
	return WriteCSV(LedgerCSVHeaders, rows), nil
}

// CSVFilename exposes the configured download name, e.g. for the
// Content-Disposition header.
func (uc *ReportUseCase) CSVFilename(category string) string {
	return fmt.Sprintf("%s-%s", category, uc.csvFilename)
}

func toStockRow(s *entity.StockSnapshot) dto.StockRowResponse {
	return dto.StockRowResponse{
		ItemName:       s.ItemName,
		Unit:           s.Unit,
		TotalPurchased: s.TotalPurchased,
		TotalIssued:    s.TotalIssued,
		TotalReturned:  s.TotalReturned,
		InField:        s.InField,
		CurrentStock:   s.CurrentStock,
		TotalWeight:    s.TotalWeight,
		Status:         s.Status,
		StatusColor:    StyleFor(s.Status).Hex(),
	}
}
