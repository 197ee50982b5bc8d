package scoring

import "math"

// clampScore bounds a category or pulse score to [0,100].
func clampScore(value int) int {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}

// round2 rounds to two decimal places.
func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// roundScore rounds a weighted average to the nearest integer score.
func roundScore(value float64) int {
	return int(math.Round(value))
}
