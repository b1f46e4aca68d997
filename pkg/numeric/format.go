package numeric

import (
	"fmt"
	"math"
)

// FormatUSD renders a canonical value as a compact USD display string,
// abbreviating billions and millions the same way the dashboard does.
func FormatUSD(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
	}
	abs := math.Abs(v)

	switch {
	case abs >= 1e9:
		return fmt.Sprintf("%s$%.2fB", sign, abs/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%s$%.2fM", sign, abs/1e6)
	default:
		return fmt.Sprintf("%s$%.2f", sign, abs)
	}
}
