// Package pdf renders the branded stock report with Maroto v2.
//
// A4 page layout, repeated on every page:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Company name        │  GSTIN / UDYAM               │
//	│          Address · Email · Website                          │
//	│  ───────────────────────────────────────────────────────── │
//	│  STOCK REPORT — <CATEGORY>            generated <date>      │
//	│  TABLE: Item | Unit | Issued | Returned | In Field | Stock  │
//	│         | Status (status-colored)                           │
//	│  TOTALS row (last page only)                                │
//	│  ───────────────────────────────────────────────────────── │
//	│  FOOTER: contact line            Page X of Y                │
//	└─────────────────────────────────────────────────────────────┘
//
// Rendering is two-pass: rows are laid out into page chunks first, so the
// total page count is known before any "Page X of Y" footer is drawn. A
// single-pass renderer cannot know Y while drawing page 1.
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/mvr-infra/materials-api/internal/application/report"
	"github.com/mvr-infra/materials-api/internal/domain/entity"
)

// ── Palette ──

var (
	colorPrimary = &props.Color{Red: 21, Green: 67, Blue: 96}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Data rows that fit under the repeated header on one A4 page. The totals
// row takes one slot on the last page.
const rowsPerPage = 22

// MarotoStockReport implements report.StockPDFGenerator using Maroto v2.
type MarotoStockReport struct{}

var _ report.StockPDFGenerator = (*MarotoStockReport)(nil)

// NewMarotoStockReport builds the generator.
func NewMarotoStockReport() *MarotoStockReport { return &MarotoStockReport{} }

// GenerateStockReport renders the full row set and returns the PDF bytes.
func (g *MarotoStockReport) GenerateStockReport(
	_ context.Context,
	category string,
	rows []*entity.StockSnapshot,
	branding report.Branding,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Stock Report", true).
		WithAuthor(branding.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	// First pass: lay the rows out into page chunks. After this the final
	// page count is fixed and every footer can state it.
	chunks := layoutPages(rows)
	totalPages := len(chunks)
	generatedAt := time.Now()

	// Second pass: draw each page with the now-known denominator.
	for i, chunk := range chunks {
		p := page.New()
		p.Add(brandHeaderRows(category, branding, generatedAt)...)
		p.Add(tableHeaderRow())
		for _, snap := range chunk {
			p.Add(dataRow(snap))
		}
		if i == totalPages-1 {
			p.Add(totalsRow(rows))
		}
		p.Add(footerRows(branding, i+1, totalPages)...)
		m.AddPages(p)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// layoutPages splits rows into page chunks, reserving one slot on the last
// page for the totals row. An empty report still yields one page.
func layoutPages(rows []*entity.StockSnapshot) [][]*entity.StockSnapshot {
	var chunks [][]*entity.StockSnapshot
	rest := rows
	for len(rest) > 0 {
		n := rowsPerPage
		if n > len(rest) {
			n = len(rest)
		}
		chunks = append(chunks, rest[:n])
		rest = rest[n:]
	}
	if len(chunks) == 0 {
		return [][]*entity.StockSnapshot{{}}
	}
	if len(chunks[len(chunks)-1]) == rowsPerPage {
		// Totals would not fit under a full last page.
		chunks = append(chunks, []*entity.StockSnapshot{})
	}
	return chunks
}

// ── Sections ──

func brandHeaderRows(category string, b report.Branding, generatedAt time.Time) []core.Row {
	regLine := joinNonEmpty("   |   ",
		prefixed("GSTIN: ", b.GSTIN), prefixed("UDYAM: ", b.UDYAM))
	contactLine := joinNonEmpty("   |   ", b.Address, b.ContactEmail, b.Website)

	return []core.Row{
		row.New(16).Add(
			col.New(7).Add(
				text.New(b.CompanyName, props.Text{
					Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
				}),
				text.New(contactLine, props.Text{Size: 7.5, Top: 9, Color: colorGray}),
			),
			col.New(5).Add(
				text.New("MATERIALS STOCK REPORT", props.Text{
					Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
				}),
				text.New(strings.ToUpper(category), props.Text{
					Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 6,
				}),
				text.New(regLine, props.Text{Size: 7, Align: align.Right, Top: 12, Color: colorGray}),
			),
		),
		row.New(5).Add(col.New(12).Add(
			text.New("Generated: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 7.5, Align: align.Right, Color: colorGray,
			}),
		)),
		line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}),
	}
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Item Description", 4, align.Left),
		h("Unit", 1, align.Center),
		h("Issued", 1, align.Right),
		h("Returned", 2, align.Right),
		h("In Field", 1, align.Right),
		h("Current Stock", 2, align.Right),
		h("Status", 1, align.Center),
	)
}

func dataRow(s *entity.StockSnapshot) core.Row {
	cell := func(v string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(v, props.Text{Size: 8, Align: a, Top: 1}))
	}
	return row.New(7).Add(
		cell(s.ItemName, 4, align.Left),
		cell(s.Unit, 1, align.Center),
		cell(s.TotalIssued.String(), 1, align.Right),
		cell(s.TotalReturned.String(), 2, align.Right),
		cell(s.InField.String(), 1, align.Right),
		cell(s.CurrentStock.String(), 2, align.Right),
		col.New(1).Add(text.New(statusLabel(s.Status), props.Text{
			Size: 7.5, Align: align.Center, Top: 1,
			Style: fontstyle.Bold, Color: statusColor(s.Status),
		})),
	)
}

// totalsRow sums the quantity columns across the whole report, not the last
// page, so the printed totals match the CSV export.
func totalsRow(rows []*entity.StockSnapshot) core.Row {
	issued, returned, inField, current := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	for _, s := range rows {
		issued = issued.Add(s.TotalIssued)
		returned = returned.Add(s.TotalReturned)
		inField = inField.Add(s.InField)
		current = current.Add(s.CurrentStock)
	}
	cell := func(v string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(v, props.Text{
			Size: 8, Align: a, Top: 2, Style: fontstyle.Bold, Color: colorPrimary,
		}))
	}
	return row.New(9).Add(
		cell("TOTAL", 4, align.Left),
		col.New(1),
		cell(issued.String(), 1, align.Right),
		cell(returned.String(), 2, align.Right),
		cell(inField.String(), 1, align.Right),
		cell(current.String(), 2, align.Right),
		col.New(1),
	)
}

func footerRows(b report.Branding, pageNum, totalPages int) []core.Row {
	return []core.Row{
		line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}),
		row.New(6).Add(
			col.New(8).Add(text.New(
				joinNonEmpty("   |   ", b.CompanyName, b.ContactEmail),
				props.Text{Size: 7, Color: colorGray, Top: 1},
			)),
			col.New(4).Add(text.New(
				fmt.Sprintf("Page %d of %d", pageNum, totalPages),
				props.Text{Size: 7.5, Align: align.Right, Color: colorGray, Top: 1},
			)),
		),
	}
}

// ── helpers ──

// statusColor converts the shared status style table to a maroto color, so
// the PDF and the on-screen table can never disagree on a status color.
func statusColor(status string) *props.Color {
	st := report.StyleFor(status)
	return &props.Color{Red: st.R, Green: st.G, Blue: st.B}
}

func statusLabel(status string) string {
	switch status {
	case entity.StatusLowStock:
		return "Low"
	case entity.StatusCritical:
		return "Critical"
	default:
		return "Healthy"
	}
}

func prefixed(prefix, s string) string {
	if s == "" {
		return ""
	}
	return prefix + s
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
