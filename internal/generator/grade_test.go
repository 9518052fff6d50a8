package generator

import (
	"testing"

	"github.com/prasetya/siaklake/internal/model"
)

func TestGrades_BandConsistency(t *testing.T) {
	registrations := make([]model.Registration, 1000)
	for i := range registrations {
		registrations[i] = model.Registration{ID: int64(i + 1)}
	}

	grades := Grades(testRand(), registrations)
	if len(grades) == 0 {
		t.Fatal("expected grades to be generated")
	}
	// Roughly 10% of registrations stay ungraded.
	if len(grades) < 800 || len(grades) >= 1000 {
		t.Fatalf("got %d grades for 1000 registrations, expected roughly 900", len(grades))
	}

	for _, g := range grades {
		band := bandByLetter(g.LetterGrade)
		if band.Letter != g.LetterGrade {
			t.Fatalf("grade %d has unknown letter %q", g.ID, g.LetterGrade)
		}
		if g.NumericGrade < band.Min || g.NumericGrade > band.Max {
			t.Errorf("grade %d: numeric %.2f outside band %s [%.2f, %.2f]",
				g.ID, g.NumericGrade, band.Letter, band.Min, band.Max)
		}
	}
}

func TestGradeScale_CoversZeroToHundred(t *testing.T) {
	if GradeScale[0].Max != 100 {
		t.Errorf("top band max = %.2f, want 100", GradeScale[0].Max)
	}
	if GradeScale[len(GradeScale)-1].Min != 0 {
		t.Errorf("bottom band min = %.2f, want 0", GradeScale[len(GradeScale)-1].Min)
	}
	// Bands are contiguous in descending order.
	for i := 1; i < len(GradeScale); i++ {
		upper := GradeScale[i-1]
		lower := GradeScale[i]
		if lower.Max >= upper.Min {
			t.Errorf("band %s max %.2f overlaps band %s min %.2f",
				lower.Letter, lower.Max, upper.Letter, upper.Min)
		}
		if upper.Point <= lower.Point && upper.Letter != "E" {
			t.Errorf("band %s point %.1f not above band %s point %.1f",
				upper.Letter, upper.Point, lower.Letter, lower.Point)
		}
	}
}

func TestGradePoint(t *testing.T) {
	if got := gradePoint("A"); got != 4.0 {
		t.Errorf("gradePoint(A) = %.1f, want 4.0", got)
	}
	if got := gradePoint("E"); got != 0.0 {
		t.Errorf("gradePoint(E) = %.1f, want 0.0", got)
	}
	if got := gradePoint("??"); got != 0.0 {
		t.Errorf("unknown letter should map to the failing band, got %.1f", got)
	}
}
