package generator

import (
	"fmt"
	"sort"

	"github.com/prasetya/siaklake/internal/model"
	"github.com/prasetya/siaklake/internal/pkg/apperrors"
)

// studentSemesterKey groups registrations per student per semester.
type studentSemesterKey struct {
	studentID  int64
	semesterID int64
}

// AcademicRecords walks every student's semesters in chronological
// order and emits one record per semester in which the student has at
// least one graded registration. The cumulative GPA is a
// credit-weighted running average:
//
//	new = (prevGPA*prevCredits + semGPA*semCredits) / (prevCredits + semCredits)
//
// carried per student across the walk. Semesters with registrations but
// zero graded ones produce no record; ungraded registrations never
// contribute credits. A grade or registration referencing an unknown
// parent is a sequencing bug in the caller and fails the whole call.
func AcademicRecords(students []model.Student, semesters []model.Semester, registrations []model.Registration, grades []model.Grade, courses []model.Course) ([]model.AcademicRecord, error) {
	courseByID := make(map[int64]model.Course, len(courses))
	for _, c := range courses {
		courseByID[c.ID] = c
	}

	regByID := make(map[int64]model.Registration, len(registrations))
	regsByStudentSemester := make(map[studentSemesterKey][]model.Registration)
	for _, reg := range registrations {
		regByID[reg.ID] = reg
		key := studentSemesterKey{reg.StudentID, reg.SemesterID}
		regsByStudentSemester[key] = append(regsByStudentSemester[key], reg)
	}

	gradeByRegistration := make(map[int64]model.Grade, len(grades))
	for _, grade := range grades {
		if _, ok := regByID[grade.RegistrationID]; !ok {
			return nil, apperrors.NewSequencingError(
				fmt.Sprintf("grade %d references unknown registration %d", grade.ID, grade.RegistrationID))
		}
		gradeByRegistration[grade.RegistrationID] = grade
	}

	chronological := make([]model.Semester, len(semesters))
	copy(chronological, semesters)
	sort.Slice(chronological, func(i, j int) bool {
		return chronological[i].StartDate.Before(chronological[j].StartDate)
	})

	result := make([]model.AcademicRecord, 0, len(students))
	nextID := int64(1)

	for _, student := range students {
		// Per-student accumulator, discarded after the walk.
		cumulativeGPA := 0.0
		totalCredits := 0

		for _, semester := range chronological {
			regs := regsByStudentSemester[studentSemesterKey{student.ID, semester.ID}]
			if len(regs) == 0 {
				continue
			}

			gradePoints := 0.0
			semesterCredits := 0
			creditsPassed := 0
			for _, reg := range regs {
				grade, graded := gradeByRegistration[reg.ID]
				if !graded {
					continue
				}
				course, ok := courseByID[reg.CourseID]
				if !ok {
					return nil, apperrors.NewSequencingError(
						fmt.Sprintf("registration %d references unknown course %d", reg.ID, reg.CourseID))
				}
				gradePoints += gradePoint(grade.LetterGrade) * float64(course.Credits)
				semesterCredits += course.Credits
				if grade.LetterGrade != "E" {
					creditsPassed += course.Credits
				}
			}

			if semesterCredits == 0 {
				continue
			}

			semesterGPA := gradePoints / float64(semesterCredits)
			newTotal := totalCredits + semesterCredits
			cumulativeGPA = (cumulativeGPA*float64(totalCredits) + semesterGPA*float64(semesterCredits)) / float64(newTotal)
			totalCredits = newTotal

			result = append(result, model.AcademicRecord{
				ID:              nextID,
				StudentID:       student.ID,
				SemesterID:      semester.ID,
				SemesterGPA:     round2(semesterGPA),
				CumulativeGPA:   round2(cumulativeGPA),
				SemesterCredits: semesterCredits,
				CreditsPassed:   creditsPassed,
				TotalCredits:    totalCredits,
			})
			nextID++
		}
	}

	return result, nil
}
