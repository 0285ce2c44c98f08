package scoring

import (
	"math"

	"scout-data-service/internal/domain"
)

// Score computes the 0-100 suitability of a player for a position. Overrides
// replace or extend the base profile weights for this call only. The function
// is pure: identical inputs always yield the identical score.
func Score(p domain.Player, position domain.Position, overrides map[domain.Attribute]float64) float64 {
	working := ProfileFor(position)
	for attr, w := range overrides {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			continue
		}
		working[attr] = w
	}

	totalWeight := 0.0
	for _, w := range working {
		totalWeight += w
	}
	if totalWeight == 0 {
		totalWeight = 1
	}

	sum := 0.0
	for attr, w := range working {
		// An attribute the record lacks contributes 0, never an error.
		sum += (p.AttributeValue(attr) / domain.RatingCeiling) * (w / totalWeight)
	}

	score := math.Round(sum*100*10000) / 10000
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
