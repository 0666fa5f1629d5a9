package report_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvr-infra/materials-api/internal/application/dto"
	"github.com/mvr-infra/materials-api/internal/application/ledger"
	"github.com/mvr-infra/materials-api/internal/application/report"
	"github.com/mvr-infra/materials-api/internal/application/stock"
	"github.com/mvr-infra/materials-api/internal/domain/entity"
	"github.com/mvr-infra/materials-api/internal/infrastructure/memory"
)

type stubPDF struct {
	lastCategory string
	lastRows     int
}

func (s *stubPDF) GenerateStockReport(_ context.Context, category string, snaps []*entity.StockSnapshot, _ report.Branding) ([]byte, error) {
	s.lastCategory = category
	s.lastRows = len(snaps)
	return []byte("%PDF-stub"), nil
}

func newReportFixture(t *testing.T) (*report.ReportUseCase, *ledger.LedgerUseCase, *stubPDF) {
	t.Helper()
	store := memory.NewStore()
	itemRepo := memory.NewItemRepository(store)
	ledgerRepo := memory.NewLedgerRepository(store)
	ledgerUC := ledger.NewLedgerUseCase(memory.NewTxRunner(store), ledgerRepo, itemRepo)
	stockUC := stock.NewStockUseCase(itemRepo, ledgerRepo)
	pdf := &stubPDF{}
	uc := report.NewReportUseCase(stockUC, ledgerUC, pdf, report.Branding{CompanyName: "MVR Infra Projects Pvt. Ltd."}, "stock-report.csv")

	seed := []*entity.Item{
		{ID: "i1", Category: entity.CategoryScaffolding, Name: "Scaffold Pipe", Unit: "pcs", PerUnitWeight: decimal.NewFromFloat(2.5)},
		{ID: "i2", Category: entity.CategoryScaffolding, Name: "Base Plate", Unit: "pcs", PerUnitWeight: decimal.NewFromFloat(1.1)},
		{ID: "i3", Category: entity.CategoryScaffolding, Name: "Pipe Coupler", Unit: "pcs", PerUnitWeight: decimal.NewFromFloat(0.6)},
	}
	for _, it := range seed {
		require.NoError(t, itemRepo.Create(it))
	}

	record := func(kind, name string, qty int64) {
		_, err := ledgerUC.RecordEvent(context.Background(), entity.CategoryScaffolding, "u1", dto.RecordEventRequest{
			Kind: kind, ItemName: name, Quantity: decimal.NewFromInt(qty), Unit: "pcs",
		})
		require.NoError(t, err)
	}
	record(entity.KindOpening, "Scaffold Pipe", 100)
	record(entity.KindIssue, "Scaffold Pipe", 30)
	record(entity.KindOpening, "Base Plate", 50)
	return uc, ledgerUC, pdf
}

func TestStockCSV_SearchFiltersRows(t *testing.T) {
	uc, _, _ := newReportFixture(t)

	out, err := uc.StockCSV(entity.CategoryScaffolding, "Pipe")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3) // header + Pipe Coupler + Scaffold Pipe
	assert.Contains(t, lines[1], `"Pipe Coupler"`)
	assert.Contains(t, lines[2], `"Scaffold Pipe"`)
	assert.NotContains(t, out, "Base Plate")
}

func TestStockCSV_RowValuesAndQuoting(t *testing.T) {
	uc, _, _ := newReportFixture(t)

	out, err := uc.StockCSV(entity.CategoryScaffolding, "Scaffold")
	require.NoError(t, err)
	assert.Contains(t, out, `"Scaffold Pipe","pcs","30","0","30","70","HEALTHY"`)
}

func TestStockPage_PastEndPageIsEmpty(t *testing.T) {
	uc, _, _ := newReportFixture(t)

	resp, err := uc.StockPage(entity.CategoryScaffolding, "", dto.PageRequest{Page: 9, PageSize: 20})
	require.NoError(t, err)
	assert.Empty(t, resp.Rows)
	assert.Equal(t, 1, resp.Page.TotalPages)
	assert.Equal(t, 3, resp.Page.TotalCount)
}

// A row's color token matches the single shared style table.
func TestStockPage_StatusColorMatchesStyleTable(t *testing.T) {
	uc, _, _ := newReportFixture(t)

	resp, err := uc.StockPage(entity.CategoryScaffolding, "Scaffold", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	row := resp.Rows[0]
	assert.Equal(t, report.StyleFor(row.Status).Hex(), row.StatusColor)
}

func TestStockPDF_PassesFullFilteredSet(t *testing.T) {
	uc, _, pdf := newReportFixture(t)

	out, err := uc.StockPDF(context.Background(), entity.CategoryScaffolding, "")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Equal(t, entity.CategoryScaffolding, pdf.lastCategory)
	assert.Equal(t, 3, pdf.lastRows)
}

func TestLedgerCSV_RegisterColumns(t *testing.T) {
	uc, ledgerUC, _ := newReportFixture(t)

	ts := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	_, err := ledgerUC.RecordEvent(context.Background(), entity.CategoryScaffolding, "u1", dto.RecordEventRequest{
		Kind: entity.KindPurchase, ItemName: "Base Plate", Quantity: decimal.NewFromInt(12),
		Unit: "pcs", Timestamp: &ts, CounterpartyRef: "ACME Traders", SourceDocRef: "PO-1042",
	})
	require.NoError(t, err)

	out, err := uc.LedgerCSV(entity.CategoryScaffolding, dto.ListEventsRequest{ItemName: "Base Plate"})
	require.NoError(t, err)
	assert.Contains(t, out, `"Date","Kind","Item Description","Quantity","Unit","Counterparty","Source Document"`)
	assert.Contains(t, out, `"2026-03-14","PURCHASE","Base Plate","12","pcs","ACME Traders","PO-1042"`)
}

func TestCSVFilename_PrefixedWithCategory(t *testing.T) {
	uc, _, _ := newReportFixture(t)
	assert.Equal(t, "scaffolding-stock-report.csv", uc.CSVFilename(entity.CategoryScaffolding))
}
