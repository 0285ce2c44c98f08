package scoring

import "scout-data-service/internal/domain"

// Profile maps attributes to positive weights. Weights need not sum to 100;
// they are re-normalized at scoring time.
type Profile map[domain.Attribute]float64

// positionProfiles holds the default weight profile per position code.
// Defined once at process start and never mutated; Score works on a copy.
var positionProfiles = map[domain.Position]Profile{
	domain.PositionGK: {
		domain.AttrGKDiving:      20,
		domain.AttrGKHandling:    20,
		domain.AttrGKKicking:     20,
		domain.AttrGKPositioning: 20,
		domain.AttrGKReflexes:    20,
	},
	domain.PositionCB: {
		domain.AttrDefending: 50,
		domain.AttrPhysic:    20,
		domain.AttrPace:      10,
		domain.AttrPassing:   10,
		domain.AttrDribbling: 10,
	},
	domain.PositionLB: {
		domain.AttrPace:      30,
		domain.AttrPassing:   20,
		domain.AttrDefending: 15,
		domain.AttrPhysic:    10,
		domain.AttrDribbling: 25,
	},
	domain.PositionRB: {
		domain.AttrPace:      30,
		domain.AttrPassing:   20,
		domain.AttrDefending: 15,
		domain.AttrPhysic:    10,
		domain.AttrDribbling: 25,
	},
	domain.PositionCDM: {
		domain.AttrDefending: 40,
		domain.AttrPassing:   20,
		domain.AttrPhysic:    15,
		domain.AttrPace:      15,
		domain.AttrDribbling: 10,
	},
	domain.PositionCM: {
		domain.AttrPassing:   30,
		domain.AttrDribbling: 20,
		domain.AttrDefending: 15,
		domain.AttrPace:      15,
		domain.AttrShooting:  10,
		domain.AttrPhysic:    10,
	},
	domain.PositionCAM: {
		domain.AttrPassing:   30,
		domain.AttrDribbling: 25,
		domain.AttrShooting:  25,
		domain.AttrPace:      10,
		domain.AttrPhysic:    10,
	},
	domain.PositionLW: {
		domain.AttrPace:      35,
		domain.AttrDribbling: 30,
		domain.AttrShooting:  20,
		domain.AttrPassing:   15,
	},
	domain.PositionRW: {
		domain.AttrPace:      35,
		domain.AttrDribbling: 30,
		domain.AttrShooting:  20,
		domain.AttrPassing:   15,
	},
	domain.PositionST: {
		domain.AttrShooting:  40,
		domain.AttrPace:      25,
		domain.AttrDribbling: 20,
		domain.AttrPhysic:    15,
	},
	domain.PositionCF: {
		domain.AttrShooting:  30,
		domain.AttrPassing:   25,
		domain.AttrDribbling: 25,
		domain.AttrPace:      20,
	},
}

// ProfileFor returns the default profile for a position, falling back to the
// CM profile for unknown codes. The returned map is a copy safe to mutate.
func ProfileFor(position domain.Position) Profile {
	base, ok := positionProfiles[position]
	if !ok {
		base = positionProfiles[domain.PositionCM]
	}
	working := make(Profile, len(base))
	for attr, w := range base {
		working[attr] = w
	}
	return working
}
