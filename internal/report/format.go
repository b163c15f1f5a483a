package report

import (
	"fmt"
	"math"
)

// formatScore renders a metric value as a percentage, or "n/a" when undefined.
func formatScore(value float64) string {
	if math.IsNaN(value) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", value*100)
}
