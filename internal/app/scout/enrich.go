package scout

import (
	"math"

	"scout-data-service/internal/domain"
	"scout-data-service/internal/projection"
)

const placeholderFaceURL = "https://via.placeholder.com/150"

const weeksPerYear = 52

// enrich builds the boundary-safe view for one record: it projects the
// player's trajectory over the age-derived horizon and derives the
// negotiation range from current and final projected value. When score is
// non-nil the view also carries the score and the projection points.
func (s *Service) enrich(p domain.Player, score *float64) domain.PlayerView {
	currentValue := p.AttributeValue(domain.AttrValue)

	horizon := projection.YearsToProject(int(p.AttributeValue(domain.AttrAge)))
	points := projection.Project(p, horizon)

	projectedValue := currentValue
	if len(points) > 0 {
		projectedValue = float64(points[len(points)-1].ProjectedValue)
	}
	offers := projection.Negotiate(currentValue, projectedValue)

	faceURL := p.FaceURL
	if faceURL == "" {
		faceURL = placeholderFaceURL
	}

	view := domain.PlayerView{
		Name:       p.DisplayName(),
		Position:   positionOrDefault(p.Position),
		Overall:    int(p.AttributeValue(domain.AttrOverall)),
		Potential:  int(p.AttributeValue(domain.AttrPotential)),
		Value:      int64(math.Round(currentValue)),
		FaceURL:    faceURL,
		MinOffer:   offers.MinOffer,
		MaxOffer:   offers.MaxOffer,
		Attributes: attributeBreakdown(p),
	}
	if score != nil {
		view.Score = score
		view.Projections = points
	}
	return view
}

func positionOrDefault(position string) string {
	if position == "" {
		return domain.UnknownName
	}
	return position
}

// attributeBreakdown mirrors the full-attribute payload of the reference
// service: display-cased keys, weekly wage expanded to a yearly figure, and
// every number passed through the finite-or-null sanitizer.
func attributeBreakdown(p domain.Player) map[string]any {
	return map[string]any{
		"Overall":           domain.SanitizeNumber(p.AttributeValue(domain.AttrOverall)),
		"Potential":         domain.SanitizeNumber(p.AttributeValue(domain.AttrPotential)),
		"Age":               domain.SanitizeNumber(p.AttributeValue(domain.AttrAge)),
		"Pace":              domain.SanitizeNumber(p.AttributeValue(domain.AttrPace)),
		"Shooting":          domain.SanitizeNumber(p.AttributeValue(domain.AttrShooting)),
		"Passing":           domain.SanitizeNumber(p.AttributeValue(domain.AttrPassing)),
		"Dribbling":         domain.SanitizeNumber(p.AttributeValue(domain.AttrDribbling)),
		"Defending":         domain.SanitizeNumber(p.AttributeValue(domain.AttrDefending)),
		"Physicality":       domain.SanitizeNumber(p.AttributeValue(domain.AttrPhysic)),
		"Club":              p.Club,
		"League":            p.League,
		"Value (GBP)":       domain.SanitizeNumber(p.AttributeValue(domain.AttrValue)),
		"Wage (YEARLY GBP)": domain.SanitizeNumber(p.AttributeValue(domain.AttrWage) * weeksPerYear),
	}
}
