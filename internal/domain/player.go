package domain

import (
	"math"
	"strings"
)

// Position mirrors the canonical field-position codes used by the roster.
type Position string

const (
	PositionGK  Position = "GK"
	PositionCB  Position = "CB"
	PositionLB  Position = "LB"
	PositionRB  Position = "RB"
	PositionCDM Position = "CDM"
	PositionCM  Position = "CM"
	PositionCAM Position = "CAM"
	PositionLW  Position = "LW"
	PositionRW  Position = "RW"
	PositionST  Position = "ST"
	PositionCF  Position = "CF"
)

// Positions lists every canonical position code.
var Positions = []Position{
	PositionGK, PositionCB, PositionLB, PositionRB, PositionCDM, PositionCM,
	PositionCAM, PositionLW, PositionRW, PositionST, PositionCF,
}

// ParsePosition normalizes a raw position string to the canonical code.
func ParsePosition(raw string) (Position, bool) {
	candidate := Position(strings.ToUpper(strings.TrimSpace(raw)))
	for _, p := range Positions {
		if p == candidate {
			return p, true
		}
	}
	return "", false
}

// RatingCeiling is the maximum attribute rating in the dataset; scores are
// normalized against it and projections are capped at it.
const RatingCeiling = 99

// UnknownName is the display fallback for records without a short name.
const UnknownName = "N/A"

// Player is one roster record. Numeric fields are normalized at load time:
// a value that could not be parsed as a finite number is stored as 0, so
// downstream arithmetic never sees NaN or Inf.
type Player struct {
	Name     string `json:"short_name"`
	FullName string `json:"long_name"`
	AltName  string `json:"player_name"`
	Position string `json:"club_position"`

	Overall   float64 `json:"overall"`
	Potential float64 `json:"potential"`
	Age       float64 `json:"age"`
	Value     float64 `json:"value_eur"`
	Wage      float64 `json:"wage_eur"`

	Pace      float64 `json:"pace"`
	Shooting  float64 `json:"shooting"`
	Passing   float64 `json:"passing"`
	Dribbling float64 `json:"dribbling"`
	Defending float64 `json:"defending"`
	Physic    float64 `json:"physic"`

	Club    string `json:"club_name"`
	League  string `json:"league_name"`
	FaceURL string `json:"player_face_url"`

	// Extra holds position-specific sub-attributes (goalkeeping dives,
	// tackle accuracy, ...) keyed by the closed Attribute enumeration.
	Extra map[Attribute]float64 `json:"extra_attributes,omitempty"`
}

// DisplayName returns the short name or the UnknownName sentinel.
func (p Player) DisplayName() string {
	if strings.TrimSpace(p.Name) == "" {
		return UnknownName
	}
	return p.Name
}

// AttributeValue returns the named numeric attribute, or 0 when the attribute
// is absent or non-finite. It never fails; callers can rely on a finite value.
func (p Player) AttributeValue(attr Attribute) float64 {
	switch attr {
	case AttrOverall:
		return finite(p.Overall)
	case AttrPotential:
		return finite(p.Potential)
	case AttrAge:
		return finite(p.Age)
	case AttrValue:
		return finite(p.Value)
	case AttrWage:
		return finite(p.Wage)
	case AttrPace:
		return finite(p.Pace)
	case AttrShooting:
		return finite(p.Shooting)
	case AttrPassing:
		return finite(p.Passing)
	case AttrDribbling:
		return finite(p.Dribbling)
	case AttrDefending:
		return finite(p.Defending)
	case AttrPhysic:
		return finite(p.Physic)
	}
	if v, ok := p.Extra[attr]; ok {
		return finite(v)
	}
	return 0
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
