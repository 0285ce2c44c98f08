package scoring

import (
	"math"
	"testing"

	"scout-data-service/internal/domain"
)

func samplePlayer() domain.Player {
	return domain.Player{
		Name:      "Sample",
		Overall:   80,
		Potential: 90,
		Age:       23,
		Value:     1_000_000,
		Pace:      75,
		Shooting:  70,
		Passing:   82,
		Dribbling: 78,
		Defending: 60,
		Physic:    72,
	}
}

func TestScoreWithinBounds(t *testing.T) {
	p := samplePlayer()
	for _, pos := range domain.Positions {
		score := Score(p, pos, nil)
		if score < 0 || score > 100 {
			t.Fatalf("score for %s out of bounds: %v", pos, score)
		}
	}
}

func TestScoreKnownValue(t *testing.T) {
	p := domain.Player{Pace: 80, Shooting: 60}
	overrides := map[domain.Attribute]float64{
		domain.AttrPace:     2,
		domain.AttrShooting: 1,
	}
	score := Score(p, domain.PositionGK, overrides)

	// GK profile weights plus the two overrides; compute expected directly.
	working := ProfileFor(domain.PositionGK)
	working[domain.AttrPace] = 2
	working[domain.AttrShooting] = 1
	total := 0.0
	for _, w := range working {
		total += w
	}
	expected := ((80.0/99)*(2/total) + (60.0/99)*(1/total)) * 100
	expected = math.Round(expected*10000) / 10000

	if score != expected {
		t.Fatalf("expected score %v, got %v", expected, score)
	}
}

func TestScoreRoundsToFourDecimals(t *testing.T) {
	p := domain.Player{Pace: 80, Shooting: 60}
	// A profile of exactly the two attributes: (80+2*... ) expected 74.0741.
	score := Score(p, domain.Position("NOPE"), map[domain.Attribute]float64{
		domain.AttrPace:      2,
		domain.AttrShooting:  1,
		domain.AttrPassing:   0,
		domain.AttrDribbling: 0,
		domain.AttrDefending: 0,
		domain.AttrPhysic:    0,
	})
	// Overrides zero out the CM fallback profile, leaving pace 2 / shooting 1.
	// sum = (80/99)*(2/3) + (60/99)*(1/3) = 220/297; *100 = 74.0740..., 4dp.
	if score != 74.0741 {
		t.Fatalf("expected 74.0741, got %v", score)
	}
}

func TestScoreUnknownPositionFallsBackToCM(t *testing.T) {
	p := samplePlayer()
	if got, want := Score(p, domain.Position("XX"), nil), Score(p, domain.PositionCM, nil); got != want {
		t.Fatalf("expected CM fallback score %v, got %v", want, got)
	}
}

func TestScoreOverrideOutsideBaseProfileApplies(t *testing.T) {
	p := samplePlayer()
	p.Extra = map[domain.Attribute]float64{domain.AttrVision: 90}

	base := Score(p, domain.PositionST, nil)
	withVision := Score(p, domain.PositionST, map[domain.Attribute]float64{domain.AttrVision: 50})
	if base == withVision {
		t.Fatalf("expected extending override to change the score")
	}
}

func TestScoreSkipsNonFiniteOverrides(t *testing.T) {
	p := samplePlayer()
	base := Score(p, domain.PositionCM, nil)
	got := Score(p, domain.PositionCM, map[domain.Attribute]float64{
		domain.AttrPace: math.NaN(),
	})
	if got != base {
		t.Fatalf("expected NaN override to be ignored, got %v vs %v", got, base)
	}
}

func TestScoreZeroTotalWeight(t *testing.T) {
	p := samplePlayer()
	overrides := map[domain.Attribute]float64{}
	for attr := range ProfileFor(domain.PositionCM) {
		overrides[attr] = 0
	}
	if got := Score(p, domain.PositionCM, overrides); got != 0 {
		t.Fatalf("expected zeroed profile to score 0, got %v", got)
	}
}

func TestScoreMissingAttributesContributeZero(t *testing.T) {
	var empty domain.Player
	for _, pos := range domain.Positions {
		if got := Score(empty, pos, nil); got != 0 {
			t.Fatalf("expected empty record to score 0 for %s, got %v", pos, got)
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	p := samplePlayer()
	overrides := map[domain.Attribute]float64{
		domain.AttrPace:      10,
		domain.AttrShooting:  20,
		domain.AttrDefending: 5,
	}
	first := Score(p, domain.PositionST, overrides)
	for i := 0; i < 50; i++ {
		if got := Score(p, domain.PositionST, overrides); got != first {
			t.Fatalf("expected deterministic score, got %v then %v", first, got)
		}
	}
}
