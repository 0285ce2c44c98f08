package projection

import (
	"testing"

	"scout-data-service/internal/domain"
)

func TestYearsToProjectBrackets(t *testing.T) {
	cases := []struct {
		age  int
		want int
	}{
		{16, 5}, {20, 5},
		{21, 4}, {25, 4},
		{26, 3}, {30, 3},
		{31, 2}, {35, 2},
		{36, 1}, {40, 1},
	}
	for _, tc := range cases {
		if got := YearsToProject(tc.age); got != tc.want {
			t.Fatalf("YearsToProject(%d) = %d, want %d", tc.age, got, tc.want)
		}
	}
}

func TestProjectZeroYearsIsEmpty(t *testing.T) {
	p := domain.Player{Overall: 80, Potential: 90, Age: 23, Value: 1_000_000}
	if got := Project(p, 0); len(got) != 0 {
		t.Fatalf("expected empty projection, got %d points", len(got))
	}
	if got := Project(p, -3); len(got) != 0 {
		t.Fatalf("expected empty projection for negative years, got %d points", len(got))
	}
}

func TestProjectYearOffsetsAndMonotonicGrowth(t *testing.T) {
	p := domain.Player{Overall: 70, Potential: 88, Age: 19, Value: 500_000}
	years := YearsToProject(19)
	points := Project(p, years)

	if len(points) != years {
		t.Fatalf("expected %d points, got %d", years, len(points))
	}
	prevOverall := 0.0
	for i, point := range points {
		if point.YearOffset != i+1 {
			t.Fatalf("expected year offset %d, got %d", i+1, point.YearOffset)
		}
		if point.ProjectedOverall < prevOverall {
			t.Fatalf("expected non-decreasing overall, got %v after %v", point.ProjectedOverall, prevOverall)
		}
		prevOverall = point.ProjectedOverall
		if point.ProjectedValue < 0 {
			t.Fatalf("expected non-negative value, got %d", point.ProjectedValue)
		}
	}
}

func TestProjectCapsAtRatingCeiling(t *testing.T) {
	p := domain.Player{Overall: 95, Potential: 120, Age: 18, Value: 100}
	for _, point := range Project(p, 5) {
		if point.ProjectedOverall > domain.RatingCeiling {
			t.Fatalf("expected overall capped at %d, got %v", domain.RatingCeiling, point.ProjectedOverall)
		}
	}
}

func TestProjectNoRegressionAtOrAbovePotential(t *testing.T) {
	p := domain.Player{Overall: 85, Potential: 80, Age: 28, Value: 2_000_000}
	for _, point := range Project(p, 3) {
		if point.ProjectedOverall != 85 {
			t.Fatalf("expected flat overall 85, got %v", point.ProjectedOverall)
		}
	}
}

// Reference trajectory: overall 80, potential 90, age 23, value 1,000,000.
// Horizon 4 years, +2.5 overall and +20% value per year, value compounding on
// the rounded integer each year.
func TestProjectReferenceTrajectory(t *testing.T) {
	p := domain.Player{Overall: 80, Potential: 90, Age: 23, Value: 1_000_000}
	years := YearsToProject(23)
	if years != 4 {
		t.Fatalf("expected 4-year horizon for age 23, got %d", years)
	}

	points := Project(p, years)
	wantOverall := []float64{82.5, 85, 87.5, 90}
	wantValue := []int64{1_200_000, 1_440_000, 1_728_000, 2_073_600}
	for i, point := range points {
		if point.ProjectedOverall != wantOverall[i] {
			t.Fatalf("year %d: expected overall %v, got %v", i+1, wantOverall[i], point.ProjectedOverall)
		}
		if point.ProjectedValue != wantValue[i] {
			t.Fatalf("year %d: expected value %d, got %d", i+1, wantValue[i], point.ProjectedValue)
		}
	}
}

func TestProjectValueCompoundsOnRoundedBasis(t *testing.T) {
	// 1016 * 1.03 = 1046.48 -> 1046; 1046 * 1.03 = 1077.38 -> 1077.
	// Compounding on the unrounded value would give round(1016*1.03^2) = 1078.
	p := domain.Player{Overall: 70, Potential: 70, Age: 36, Value: 1016}
	points := Project(p, 2)
	if points[0].ProjectedValue != 1046 {
		t.Fatalf("expected year-1 value 1046, got %d", points[0].ProjectedValue)
	}
	if points[1].ProjectedValue != 1077 {
		t.Fatalf("expected year-2 value 1077, got %d", points[1].ProjectedValue)
	}
}

func TestProjectDefaultsForMissingInputs(t *testing.T) {
	var p domain.Player
	points := Project(p, 2)
	for _, point := range points {
		if point.ProjectedOverall != 0 {
			t.Fatalf("expected 0 overall for empty record, got %v", point.ProjectedOverall)
		}
		if point.ProjectedValue != 0 {
			t.Fatalf("expected 0 value for empty record, got %d", point.ProjectedValue)
		}
	}
}
