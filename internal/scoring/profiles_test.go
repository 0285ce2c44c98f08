package scoring

import (
	"testing"

	"scout-data-service/internal/domain"
)

func TestEveryPositionHasAProfile(t *testing.T) {
	for _, pos := range domain.Positions {
		profile := ProfileFor(pos)
		if len(profile) == 0 {
			t.Fatalf("expected non-empty profile for %s", pos)
		}
		for attr, w := range profile {
			if w <= 0 {
				t.Fatalf("profile %s has non-positive weight for %s", pos, attr)
			}
			if !domain.KnownAttribute(attr) {
				t.Fatalf("profile %s references unknown attribute %s", pos, attr)
			}
		}
	}
}

func TestProfileForReturnsACopy(t *testing.T) {
	first := ProfileFor(domain.PositionST)
	first[domain.AttrShooting] = 999

	second := ProfileFor(domain.PositionST)
	if second[domain.AttrShooting] == 999 {
		t.Fatal("expected ProfileFor to return an independent copy")
	}
}

func TestProfileForUnknownFallsBackToCM(t *testing.T) {
	unknown := ProfileFor(domain.Position("ZZ"))
	cm := ProfileFor(domain.PositionCM)
	if len(unknown) != len(cm) {
		t.Fatalf("expected CM fallback, got %d weights vs %d", len(unknown), len(cm))
	}
	for attr, w := range cm {
		if unknown[attr] != w {
			t.Fatalf("expected CM weight for %s, got %v", attr, unknown[attr])
		}
	}
}
