package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mvr-infra/materials-api/internal/domain/entity"
)

func snaps(n int) []*entity.StockSnapshot {
	out := make([]*entity.StockSnapshot, n)
	for i := range out {
		out[i] = &entity.StockSnapshot{ItemName: "Item", Unit: "pcs", Status: entity.StatusHealthy}
	}
	return out
}

func TestLayoutPages_EmptyReportStillOnePage(t *testing.T) {
	chunks := layoutPages(nil)
	assert.Len(t, chunks, 1)
	assert.Empty(t, chunks[0])
}

func TestLayoutPages_PartialPage(t *testing.T) {
	chunks := layoutPages(snaps(5))
	assert.Len(t, chunks, 1)
	assert.Len(t, chunks[0], 5)
}

// A full last page cannot also hold the totals row, so an extra page is
// appended for it.
func TestLayoutPages_FullLastPageGetsTotalsPage(t *testing.T) {
	chunks := layoutPages(snaps(rowsPerPage))
	assert.Len(t, chunks, 2)
	assert.Len(t, chunks[0], rowsPerPage)
	assert.Empty(t, chunks[1])
}

func TestLayoutPages_SpillsAcrossPages(t *testing.T) {
	chunks := layoutPages(snaps(rowsPerPage + 3))
	assert.Len(t, chunks, 2)
	assert.Len(t, chunks[0], rowsPerPage)
	assert.Len(t, chunks[1], 3)
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Healthy", statusLabel(entity.StatusHealthy))
	assert.Equal(t, "Low", statusLabel(entity.StatusLowStock))
	assert.Equal(t, "Critical", statusLabel(entity.StatusCritical))
}

func TestJoinNonEmpty(t *testing.T) {
	assert.Equal(t, "a | b", joinNonEmpty(" | ", "a", "", "b"))
	assert.Equal(t, "", joinNonEmpty(" | "))
	assert.Equal(t, "GSTIN: X", prefixed("GSTIN: ", "X"))
	assert.Equal(t, "", prefixed("GSTIN: ", ""))
}
