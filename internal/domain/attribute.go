package domain

// Attribute is the closed enumeration of numeric attributes a record carries.
// Scoring profiles, weight overrides, and range filters all resolve against
// this set; a key outside it is unknown by definition.
type Attribute string

const (
	AttrOverall   Attribute = "overall"
	AttrPotential Attribute = "potential"
	AttrAge       Attribute = "age"
	AttrValue     Attribute = "value_eur"
	AttrWage      Attribute = "wage_eur"

	AttrPace      Attribute = "pace"
	AttrShooting  Attribute = "shooting"
	AttrPassing   Attribute = "passing"
	AttrDribbling Attribute = "dribbling"
	AttrDefending Attribute = "defending"
	AttrPhysic    Attribute = "physic"

	AttrGKDiving      Attribute = "goalkeeping_diving"
	AttrGKHandling    Attribute = "goalkeeping_handling"
	AttrGKKicking     Attribute = "goalkeeping_kicking"
	AttrGKPositioning Attribute = "goalkeeping_positioning"
	AttrGKReflexes    Attribute = "goalkeeping_reflexes"
	AttrGKSpeed       Attribute = "goalkeeping_speed"

	AttrCrossing       Attribute = "attacking_crossing"
	AttrFinishing      Attribute = "attacking_finishing"
	AttrCurve          Attribute = "skill_curve"
	AttrFKAccuracy     Attribute = "skill_fk_accuracy"
	AttrAcceleration   Attribute = "movement_acceleration"
	AttrSprintSpeed    Attribute = "movement_sprint_speed"
	AttrShotPower      Attribute = "power_shot_power"
	AttrJumping        Attribute = "power_jumping"
	AttrStamina        Attribute = "power_stamina"
	AttrStrength       Attribute = "power_strength"
	AttrLongShots      Attribute = "power_long_shots"
	AttrInterceptions  Attribute = "mentality_interceptions"
	AttrPositioning    Attribute = "mentality_positioning"
	AttrVision         Attribute = "mentality_vision"
	AttrPenalties      Attribute = "mentality_penalties"
	AttrComposure      Attribute = "mentality_composure"
	AttrMarking        Attribute = "defending_marking_awareness"
	AttrStandingTackle Attribute = "defending_standing_tackle"
	AttrSlidingTackle  Attribute = "defending_sliding_tackle"
)

var knownAttributes = map[Attribute]struct{}{
	AttrOverall: {}, AttrPotential: {}, AttrAge: {}, AttrValue: {}, AttrWage: {},
	AttrPace: {}, AttrShooting: {}, AttrPassing: {}, AttrDribbling: {},
	AttrDefending: {}, AttrPhysic: {},
	AttrGKDiving: {}, AttrGKHandling: {}, AttrGKKicking: {},
	AttrGKPositioning: {}, AttrGKReflexes: {}, AttrGKSpeed: {},
	AttrCrossing: {}, AttrFinishing: {}, AttrCurve: {}, AttrFKAccuracy: {},
	AttrAcceleration: {}, AttrSprintSpeed: {}, AttrShotPower: {},
	AttrJumping: {}, AttrStamina: {}, AttrStrength: {}, AttrLongShots: {},
	AttrInterceptions: {}, AttrPositioning: {}, AttrVision: {},
	AttrPenalties: {}, AttrComposure: {}, AttrMarking: {},
	AttrStandingTackle: {}, AttrSlidingTackle: {},
}

// KnownAttribute reports whether the attribute belongs to the closed set.
func KnownAttribute(attr Attribute) bool {
	_, ok := knownAttributes[attr]
	return ok
}

// Attributes returns the closed attribute set; order is not significant.
func Attributes() []Attribute {
	out := make([]Attribute, 0, len(knownAttributes))
	for attr := range knownAttributes {
		out = append(out, attr)
	}
	return out
}
