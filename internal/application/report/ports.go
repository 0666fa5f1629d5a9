package report

import (
	"context"

	"github.com/mvr-infra/materials-api/internal/domain/entity"
)

// Branding is the fixed identity block printed on every report page and used
// in export filenames. These are configuration constants, never computed.
type Branding struct {
	CompanyName  string
	GSTIN        string
	UDYAM        string
	Address      string
	ContactEmail string
	Website      string
}

// StockPDFGenerator renders a branded multi-page stock report.
type StockPDFGenerator interface {
	GenerateStockReport(ctx context.Context, category string, rows []*entity.StockSnapshot, branding Branding) ([]byte, error)
}
