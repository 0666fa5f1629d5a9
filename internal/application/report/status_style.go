package report

import (
	"fmt"

	"github.com/mvr-infra/materials-api/internal/domain/entity"
)

// StatusStyle is the color triple for one stock status. The on-screen table
// and the PDF renderer both read this table, so a status can never look
// green in one output and amber in the other.
type StatusStyle struct {
	R, G, B int
}

// Hex returns the CSS form of the color, e.g. "#2e7d32".
func (s StatusStyle) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", s.R, s.G, s.B)
}

var statusStyles = map[string]StatusStyle{
	entity.StatusHealthy:  {R: 46, G: 125, B: 50},  // green
	entity.StatusLowStock: {R: 239, G: 108, B: 0},  // amber
	entity.StatusCritical: {R: 198, G: 40, B: 40},  // red
}

// StyleFor returns the style for a status label. Unknown labels fall back to
// the Healthy style rather than panicking a render.
func StyleFor(status string) StatusStyle {
	if s, ok := statusStyles[status]; ok {
		return s
	}
	return statusStyles[entity.StatusHealthy]
}
