package scoring

import (
	"math"
	"sort"
)

// AggregateScore combines the available category scores into the pulse
// score. The fixed weight table is renormalized over the available
// categories so the result always reflects a full weighting. The returned
// percentage table carries the renormalized weights as non-negative
// integers summing to exactly 100, with unavailable categories at 0.
func AggregateScore(categories map[Category]CategoryScore, weights Weights) (int, map[Category]int) {
	totalWeight := 0.0
	for _, category := range CategoryOrder {
		if categories[category].Available {
			totalWeight += weights[category]
		}
	}

	if totalWeight <= 0 {
		percentages := make(map[Category]int, len(CategoryOrder))
		for _, category := range CategoryOrder {
			percentages[category] = 0
		}
		return 0, percentages
	}

	weighted := 0.0
	for _, category := range CategoryOrder {
		score := categories[category]
		if score.Score == nil {
			continue
		}
		weighted += float64(*score.Score) * (weights[category] / totalWeight)
	}

	return clampScore(roundScore(weighted)), apportionPercentages(categories, weights, totalWeight)
}

// apportionPercentages converts renormalized weights into integer
// percentages by largest remainder so they sum to exactly 100. Ties go to
// the earlier category in declaration order.
func apportionPercentages(categories map[Category]CategoryScore, weights Weights, totalWeight float64) map[Category]int {
	type remainder struct {
		category Category
		fraction float64
	}

	percentages := make(map[Category]int, len(CategoryOrder))
	remainders := make([]remainder, 0, len(CategoryOrder))
	assigned := 0

	for _, category := range CategoryOrder {
		if !categories[category].Available {
			percentages[category] = 0
			continue
		}
		exact := weights[category] / totalWeight * 100
		floor := int(math.Floor(exact))
		percentages[category] = floor
		assigned += floor
		remainders = append(remainders, remainder{category, exact - float64(floor)})
	}

	sort.SliceStable(remainders, func(i, j int) bool {
		return remainders[i].fraction > remainders[j].fraction
	})

	for i := 0; i < 100-assigned && i < len(remainders); i++ {
		percentages[remainders[i].category]++
	}

	return percentages
}
