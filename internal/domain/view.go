package domain

import "math"

// ProjectionPoint is one step of a projected trajectory. Values are fresh
// per request and never alias a stored record.
type ProjectionPoint struct {
	YearOffset       int     `json:"year_offset"`
	ProjectedOverall float64 `json:"projected_overall"`
	ProjectedValue   int64   `json:"projected_value"`
}

// NegotiationRange bounds a sensible opening and ceiling offer.
// MinOffer <= MaxOffer holds for every constructed range.
type NegotiationRange struct {
	MinOffer int64 `json:"min_offer"`
	MaxOffer int64 `json:"max_offer"`
}

// PlayerView is the enriched, boundary-safe shape returned to callers.
// Every numeric entry in Attributes is either a finite number or nil.
type PlayerView struct {
	Name        string            `json:"short_name"`
	Position    string            `json:"club_position"`
	Overall     int               `json:"overall"`
	Potential   int               `json:"potential"`
	Value       int64             `json:"value_eur"`
	FaceURL     string            `json:"player_face_url"`
	MinOffer    int64             `json:"min_offer"`
	MaxOffer    int64             `json:"max_offer"`
	Attributes  map[string]any    `json:"full_attributes"`
	Score       *float64          `json:"momentum_score,omitempty"`
	Projections []ProjectionPoint `json:"projections,omitempty"`
}

// SearchRequest is the payload for a name search.
type SearchRequest struct {
	PlayerName string `json:"player_name"`
}

// FilterRequest is the payload for a position filter query. Filters map a
// caller-chosen key to an inclusive [low, high] range; Weights may override
// or extend the position profile per request.
type FilterRequest struct {
	Position string               `json:"position"`
	Filters  map[string][]float64 `json:"filters"`
	Weights  map[string]*float64  `json:"weights"`
}

// FilterResponse wraps the ranked, enriched filter results.
type FilterResponse struct {
	Players []PlayerView `json:"players"`
}

// SanitizeNumber enforces the output boundary contract: a finite number
// passes through, anything else becomes an explicit null.
func SanitizeNumber(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}
