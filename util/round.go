package util

import "math"

// Round rounds the value to the given number of decimal digits. Halves are rounded away from zero, negative zero
// becomes zero.
func Round(value float64, digits int) float64 {
	factor := math.Pow10(digits)
	rounded := math.Round(value*factor) / factor
	if rounded == 0 {
		return 0
	}
	return rounded
}
