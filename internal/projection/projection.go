package projection

import (
	"math"

	"scout-data-service/internal/domain"
)

// YearsToProject maps a player's age to the projection horizon. The brackets
// are a step function; the boundaries are part of the contract.
func YearsToProject(age int) int {
	switch {
	case age <= 20:
		return 5
	case age <= 25:
		return 4
	case age <= 30:
		return 3
	case age <= 35:
		return 2
	default:
		return 1
	}
}

// valueGrowthRate returns the yearly market-value multiplier for an age
// bracket. The bracket is fixed at the player's current age for the whole
// trajectory.
func valueGrowthRate(age int) float64 {
	switch {
	case age <= 20:
		return 0.35
	case age <= 25:
		return 0.20
	case age <= 30:
		return 0.12
	case age <= 35:
		return 0.07
	default:
		return 0.03
	}
}

// Project simulates the player's rating and market value for the given number
// of future years. It returns exactly `years` points with year offsets 1..n.
//
// Rating grows linearly from overall toward potential, capped at the rating
// ceiling each year; a player at or above potential does not regress. Value
// compounds at the age bracket's rate, and each year's rounded integer is the
// basis for the next year, so the trajectory is reproducible bit for bit.
func Project(p domain.Player, years int) []domain.ProjectionPoint {
	if years <= 0 {
		return []domain.ProjectionPoint{}
	}

	overall := p.AttributeValue(domain.AttrOverall)
	potential := p.AttributeValue(domain.AttrPotential)
	if potential <= 0 {
		potential = overall
	}
	age := int(p.AttributeValue(domain.AttrAge))

	increment := 0.0
	if potential > overall {
		increment = (potential - overall) / float64(years)
	}
	rate := valueGrowthRate(age)

	value := p.AttributeValue(domain.AttrValue)
	if value < 0 {
		value = 0
	}
	value = math.Round(value)

	points := make([]domain.ProjectionPoint, 0, years)
	for year := 1; year <= years; year++ {
		projected := overall + increment*float64(year)
		if projected > domain.RatingCeiling {
			projected = domain.RatingCeiling
		}

		value = math.Round(value * (1 + rate))
		if value < 0 {
			value = 0
		}

		points = append(points, domain.ProjectionPoint{
			YearOffset:       year,
			ProjectedOverall: math.Round(projected*10) / 10,
			ProjectedValue:   int64(value),
		})
	}
	return points
}
