package generator

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/prasetya/siaklake/internal/model"
)

type registrationKey struct {
	studentID  int64
	courseID   int64
	semesterID int64
}

// Registrations samples up to n unique (student, course, semester)
// registrations. 80% of draws favor courses inside the student's own
// program; candidate semesters never start before the student's
// enrollment date. Sampling is bounded at 3× the target: if valid
// unique tuples run out first, fewer records are returned.
func Registrations(rng *rand.Rand, students []model.Student, courses []model.Course, semesters []model.Semester, n int) []model.Registration {
	if len(students) == 0 || len(courses) == 0 || len(semesters) == 0 {
		return nil
	}

	coursesByProgram := make(map[int64][]model.Course)
	for _, c := range courses {
		coursesByProgram[c.ProgramID] = append(coursesByProgram[c.ProgramID], c)
	}

	// Semesters a student may register in, precomputed once.
	validSemesters := make(map[int64][]model.Semester, len(students))
	for _, s := range students {
		for _, sem := range semesters {
			if !sem.StartDate.Before(s.EnrollmentDate) {
				validSemesters[s.ID] = append(validSemesters[s.ID], sem)
			}
		}
	}

	result := make([]model.Registration, 0, n)
	used := make(map[registrationKey]struct{}, n)
	maxAttempts := n * 3

	for attempt := 0; attempt < maxAttempts && len(result) < n; attempt++ {
		student := students[rng.Intn(len(students))]
		course := courses[rng.Intn(len(courses))]

		if rng.Float64() < 0.8 {
			if own := coursesByProgram[student.ProgramID]; len(own) > 0 {
				course = own[rng.Intn(len(own))]
			}
		}

		candidates := validSemesters[student.ID]
		if len(candidates) == 0 {
			continue
		}
		semester := candidates[rng.Intn(len(candidates))]

		key := registrationKey{student.ID, course.ID, semester.ID}
		if _, taken := used[key]; taken {
			continue
		}
		used[key] = struct{}{}

		// Registration opens one to four weeks before the term starts.
		timestamp := semester.StartDate.AddDate(0, 0, -intBetween(rng, 7, 28))

		result = append(result, model.Registration{
			ID:             int64(len(result) + 1),
			RegistrationID: uuid.NewString(),
			StudentID:      student.ID,
			CourseID:       course.ID,
			SemesterID:     semester.ID,
			Timestamp:      timestamp,
		})
	}

	return result
}

// dedupeRegistrations merges shard outputs, dropping cross-shard
// duplicates and renumbering ids sequentially. Under-delivery is
// acceptable here; duplicate tuples are not.
func dedupeRegistrations(shards [][]model.Registration) []model.Registration {
	total := 0
	for _, shard := range shards {
		total += len(shard)
	}

	merged := make([]model.Registration, 0, total)
	used := make(map[registrationKey]struct{}, total)
	for _, shard := range shards {
		for _, reg := range shard {
			key := registrationKey{reg.StudentID, reg.CourseID, reg.SemesterID}
			if _, taken := used[key]; taken {
				continue
			}
			used[key] = struct{}{}
			reg.ID = int64(len(merged) + 1)
			merged = append(merged, reg)
		}
	}
	return merged
}

// registrationWindowOK reports whether ts falls inside the 7–28 day
// pre-term registration window.
func registrationWindowOK(ts, termStart time.Time) bool {
	days := termStart.Sub(ts).Hours() / 24
	return days >= 7 && days <= 28
}
