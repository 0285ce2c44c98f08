package domain

import (
	"math"
	"testing"
)

func TestAttributeValueNeverNonFinite(t *testing.T) {
	p := Player{
		Overall: math.NaN(),
		Pace:    math.Inf(1),
		Extra:   map[Attribute]float64{AttrVision: math.Inf(-1)},
	}
	for _, attr := range Attributes() {
		v := p.AttributeValue(attr)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("attribute %s returned non-finite %v", attr, v)
		}
	}
}

func TestAttributeValueDefaultsToZero(t *testing.T) {
	var p Player
	for _, attr := range Attributes() {
		if got := p.AttributeValue(attr); got != 0 {
			t.Fatalf("expected 0 for %s on empty record, got %v", attr, got)
		}
	}
	if got := p.AttributeValue(Attribute("no_such_attribute")); got != 0 {
		t.Fatalf("expected 0 for unknown attribute, got %v", got)
	}
}

func TestAttributeValueReadsExtras(t *testing.T) {
	p := Player{Extra: map[Attribute]float64{AttrGKDiving: 88}}
	if got := p.AttributeValue(AttrGKDiving); got != 88 {
		t.Fatalf("expected 88, got %v", got)
	}
}

func TestDisplayNameFallsBackToSentinel(t *testing.T) {
	if got := (Player{}).DisplayName(); got != UnknownName {
		t.Fatalf("expected %q, got %q", UnknownName, got)
	}
	if got := (Player{Name: "  "}).DisplayName(); got != UnknownName {
		t.Fatalf("expected %q for blank name, got %q", UnknownName, got)
	}
	if got := (Player{Name: "L. Messi"}).DisplayName(); got != "L. Messi" {
		t.Fatalf("expected short name, got %q", got)
	}
}

func TestParsePosition(t *testing.T) {
	if pos, ok := ParsePosition(" cam "); !ok || pos != PositionCAM {
		t.Fatalf("expected CAM, got %q ok=%v", pos, ok)
	}
	if _, ok := ParsePosition("XX"); ok {
		t.Fatal("expected unknown position to fail")
	}
}

func TestKnownAttributeCoversProfilesAndExtras(t *testing.T) {
	for _, attr := range []Attribute{AttrPace, AttrPhysic, AttrGKReflexes, AttrVision, AttrValue} {
		if !KnownAttribute(attr) {
			t.Fatalf("expected %s to be known", attr)
		}
	}
	if KnownAttribute(Attribute("made_up")) {
		t.Fatal("expected made_up attribute to be unknown")
	}
}
