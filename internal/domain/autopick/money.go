package autopick

import "math"

// Round2 rounds a monetary amount to 2 decimal places, half away from zero.
// Every line total is rounded before it enters a grand total so the stored
// sum always equals the sum of the stored lines.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
