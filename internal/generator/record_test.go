package generator

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/prasetya/siaklake/internal/model"
	"github.com/prasetya/siaklake/internal/pkg/apperrors"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAcademicRecords_WeightedCumulativeGPA(t *testing.T) {
	students := []model.Student{{ID: 1, EnrollmentDate: date(2020, 8, 1)}}
	semesters := []model.Semester{
		{ID: 1, StartDate: date(2020, 8, 24), EndDate: date(2020, 12, 18)},
		{ID: 2, StartDate: date(2021, 1, 25), EndDate: date(2021, 5, 21)},
	}
	courses := []model.Course{
		{ID: 1, Credits: 3},
		{ID: 2, Credits: 2},
		{ID: 3, Credits: 4},
	}
	registrations := []model.Registration{
		{ID: 1, StudentID: 1, CourseID: 1, SemesterID: 1},
		{ID: 2, StudentID: 1, CourseID: 2, SemesterID: 1},
		{ID: 3, StudentID: 1, CourseID: 3, SemesterID: 2},
	}
	grades := []model.Grade{
		{ID: 1, RegistrationID: 1, NumericGrade: 90, LetterGrade: "A"}, // 4.0 x 3
		{ID: 2, RegistrationID: 2, NumericGrade: 72, LetterGrade: "B"}, // 3.0 x 2
		{ID: 3, RegistrationID: 3, NumericGrade: 40, LetterGrade: "E"}, // 0.0 x 4
	}

	records, err := AcademicRecords(students, semesters, registrations, grades, courses)
	if err != nil {
		t.Fatalf("AcademicRecords error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	first := records[0]
	// Semester 1: (4.0*3 + 3.0*2) / 5 = 3.6
	if math.Abs(first.SemesterGPA-3.6) > 1e-9 {
		t.Errorf("first semester GPA = %.2f, want 3.60", first.SemesterGPA)
	}
	if first.CumulativeGPA != first.SemesterGPA {
		t.Errorf("first cumulative GPA %.2f should equal semester GPA %.2f", first.CumulativeGPA, first.SemesterGPA)
	}
	if first.SemesterCredits != 5 || first.CreditsPassed != 5 || first.TotalCredits != 5 {
		t.Errorf("first semester credits = (%d, %d, %d), want (5, 5, 5)",
			first.SemesterCredits, first.CreditsPassed, first.TotalCredits)
	}

	second := records[1]
	// Semester 2: GPA 0 over 4 credits; cumulative (3.6*5 + 0*4) / 9 = 2.0
	if math.Abs(second.SemesterGPA-0) > 1e-9 {
		t.Errorf("second semester GPA = %.2f, want 0.00", second.SemesterGPA)
	}
	if math.Abs(second.CumulativeGPA-2.0) > 1e-9 {
		t.Errorf("cumulative GPA = %.2f, want 2.00", second.CumulativeGPA)
	}
	if second.CreditsPassed != 0 {
		t.Errorf("E grade counted as passed: %d", second.CreditsPassed)
	}
	if second.TotalCredits != 9 {
		t.Errorf("total credits = %d, want 9", second.TotalCredits)
	}
}

func TestAcademicRecords_SkipsUngradedSemesters(t *testing.T) {
	students := []model.Student{{ID: 1, EnrollmentDate: date(2020, 8, 1)}}
	semesters := []model.Semester{{ID: 1, StartDate: date(2020, 8, 24)}}
	courses := []model.Course{{ID: 1, Credits: 3}}
	registrations := []model.Registration{
		{ID: 1, StudentID: 1, CourseID: 1, SemesterID: 1},
	}

	// Registration exists but no grade: the semester yields no record.
	records, err := AcademicRecords(students, semesters, registrations, nil, courses)
	if err != nil {
		t.Fatalf("AcademicRecords error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records for ungraded semester, got %d", len(records))
	}
}

func TestAcademicRecords_RejectsOrphanGrade(t *testing.T) {
	grades := []model.Grade{{ID: 1, RegistrationID: 99, LetterGrade: "A"}}
	_, err := AcademicRecords(nil, nil, nil, grades, nil)
	if !errors.Is(err, apperrors.ErrMissingReference) {
		t.Fatalf("expected sequencing error, got %v", err)
	}
}

func TestAcademicRecords_MonotonicTotals(t *testing.T) {
	rng := testRand()
	faculties, _ := Faculties(rng, 5)
	programs, _ := Programs(rng, faculties, 10)
	students, _ := Students(rng, programs, 80, 2018, 2021)
	courses, _ := Courses(rng, programs, 60)
	semesters := Semesters(rng, 8, 2018)
	registrations := Registrations(rng, students, courses, semesters, 1500)
	grades := Grades(rng, registrations)

	records, err := AcademicRecords(students, semesters, registrations, grades, courses)
	if err != nil {
		t.Fatalf("AcademicRecords error: %v", err)
	}
	if len(records) == 0 {
		t.Fatal("expected academic records")
	}

	startByID := map[int64]time.Time{}
	for _, s := range semesters {
		startByID[s.ID] = s.StartDate
	}

	lastTotal := map[int64]int{}
	lastStart := map[int64]time.Time{}
	for _, rec := range records {
		if rec.SemesterGPA < 0 || rec.SemesterGPA > 4 {
			t.Errorf("record %d semester GPA %.2f out of [0, 4]", rec.ID, rec.SemesterGPA)
		}
		if rec.CumulativeGPA < 0 || rec.CumulativeGPA > 4 {
			t.Errorf("record %d cumulative GPA %.2f out of [0, 4]", rec.ID, rec.CumulativeGPA)
		}
		if rec.CreditsPassed > rec.SemesterCredits {
			t.Errorf("record %d passed %d of %d credits", rec.ID, rec.CreditsPassed, rec.SemesterCredits)
		}

		want := lastTotal[rec.StudentID] + rec.SemesterCredits
		if rec.TotalCredits != want {
			t.Errorf("student %d total credits %d, want running sum %d", rec.StudentID, rec.TotalCredits, want)
		}
		lastTotal[rec.StudentID] = rec.TotalCredits

		start := startByID[rec.SemesterID]
		if prev, ok := lastStart[rec.StudentID]; ok && !start.After(prev) {
			t.Errorf("student %d records not in chronological semester order", rec.StudentID)
		}
		lastStart[rec.StudentID] = start
	}
}
