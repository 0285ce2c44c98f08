package projection

import (
	"math"

	"scout-data-service/internal/domain"
)

const (
	minOfferFactor = 0.70
	maxOfferFactor = 1.05
)

// Negotiate derives an offer range from the current and projected market
// value. A non-positive current value yields {0, 0}: there is no basis for an
// offer. The max clause keeps the ceiling at least 5% above current value
// even when the projection predicts decline.
func Negotiate(currentValue, projectedValue float64) domain.NegotiationRange {
	if math.IsNaN(currentValue) || currentValue <= 0 {
		return domain.NegotiationRange{}
	}

	basis := projectedValue
	if currentValue > basis || math.IsNaN(basis) {
		basis = currentValue
	}

	return domain.NegotiationRange{
		MinOffer: int64(math.Round(currentValue * minOfferFactor)),
		MaxOffer: int64(math.Round(basis * maxOfferFactor)),
	}
}
