package generator

import (
	"testing"

	"github.com/prasetya/siaklake/internal/model"
)

func TestFeeTier_Stable(t *testing.T) {
	for id := int64(1); id <= 200; id++ {
		first := feeTier(id)
		if first < 1 || first > 8 {
			t.Fatalf("student %d assigned tier %d outside 1-8", id, first)
		}
		if second := feeTier(id); second != first {
			t.Fatalf("student %d tier changed between calls: %d then %d", id, first, second)
		}
	}
}

func TestBaseFee_Interpolation(t *testing.T) {
	band := feeBand{1_000_000, 8_000_000}
	if got := baseFee(band, 1); got != 1_000_000 {
		t.Errorf("tier 1 = %.0f, want band minimum", got)
	}
	if got := baseFee(band, 8); got != 8_000_000 {
		t.Errorf("tier 8 = %.0f, want band maximum", got)
	}
	if lo, hi := baseFee(band, 3), baseFee(band, 6); lo >= hi {
		t.Errorf("interpolation not increasing: tier 3 %.0f >= tier 6 %.0f", lo, hi)
	}
}

func TestSemesterFees_AmountsAndCausality(t *testing.T) {
	rng := testRand()
	faculties, _ := Faculties(rng, 5)
	programs, _ := Programs(rng, faculties, 10)
	students, _ := Students(rng, programs, 100, 2018, 2022)
	semesters := Semesters(rng, 8, 2018)

	fees, err := SemesterFees(rng, students, semesters, programs)
	if err != nil {
		t.Fatalf("SemesterFees error: %v", err)
	}
	if len(fees) == 0 {
		t.Fatal("expected fees to be generated")
	}

	studentByID := map[int64]model.Student{}
	for _, s := range students {
		studentByID[s.ID] = s
	}
	semesterByID := map[int64]model.Semester{}
	for _, s := range semesters {
		semesterByID[s.ID] = s
	}

	paid := 0
	amounts := map[int64][]int64{}
	for _, fee := range fees {
		if fee.FeeAmount <= 0 {
			t.Errorf("fee %d has non-positive amount %d", fee.ID, fee.FeeAmount)
		}
		if fee.FeeAmount%1000 != 0 {
			t.Errorf("fee %d amount %d not rounded to the nearest thousand", fee.ID, fee.FeeAmount)
		}

		student := studentByID[fee.StudentID]
		semester := semesterByID[fee.SemesterID]
		if semester.StartDate.Before(student.EnrollmentDate) {
			t.Errorf("fee %d bills semester before student %d enrolled", fee.ID, student.ID)
		}

		if fee.PaymentDate != nil {
			paid++
			days := semester.StartDate.Sub(*fee.PaymentDate).Hours() / 24
			if days < 1 || days > 30 {
				t.Errorf("fee %d paid %.0f days before term, want 1-30", fee.ID, days)
			}
		}

		amounts[fee.StudentID] = append(amounts[fee.StudentID], fee.FeeAmount)
	}

	// 95% of bills carry a payment date; leave slack for sampling noise.
	ratio := float64(paid) / float64(len(fees))
	if ratio < 0.9 || ratio > 0.99 {
		t.Errorf("paid ratio %.2f, expected about 0.95", ratio)
	}

	// Per-student bills only wobble ±2% around the stable tier amount,
	// so min and max stay within about 4% of each other.
	for studentID, perStudent := range amounts {
		lo, hi := perStudent[0], perStudent[0]
		for _, amount := range perStudent {
			if amount < lo {
				lo = amount
			}
			if amount > hi {
				hi = amount
			}
		}
		if float64(hi) > float64(lo)*1.05 {
			t.Errorf("student %d fee spread too wide: %d to %d", studentID, lo, hi)
		}
	}
}
