package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mvr-infra/materials-api/internal/domain/entity"
)

func TestStyleFor_DistinctColorsPerStatus(t *testing.T) {
	healthy := StyleFor(entity.StatusHealthy)
	low := StyleFor(entity.StatusLowStock)
	critical := StyleFor(entity.StatusCritical)

	assert.NotEqual(t, healthy, low)
	assert.NotEqual(t, low, critical)
	assert.NotEqual(t, healthy, critical)
}

// The same status always maps to the same token; the JSON hex and the PDF
// RGB come from one table.
func TestStyleFor_StableHexToken(t *testing.T) {
	assert.Equal(t, "#2e7d32", StyleFor(entity.StatusHealthy).Hex())
	assert.Equal(t, "#ef6c00", StyleFor(entity.StatusLowStock).Hex())
	assert.Equal(t, "#c62828", StyleFor(entity.StatusCritical).Hex())
}

func TestStyleFor_UnknownFallsBackToHealthy(t *testing.T) {
	assert.Equal(t, StyleFor(entity.StatusHealthy), StyleFor("SOMETHING_ELSE"))
}
