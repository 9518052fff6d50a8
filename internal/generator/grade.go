package generator

import (
	"math/rand"

	"github.com/prasetya/siaklake/internal/model"
)

// GradeBand is one row of the fixed grading scale: the numeric band a
// letter maps to and its GPA point value. Band bounds and points must
// stay aligned with the GPA computation in AcademicRecords.
type GradeBand struct {
	Letter string
	Min    float64
	Max    float64
	Point  float64
}

// GradeScale is the Indonesian university grading scale.
var GradeScale = []GradeBand{
	{"A", 85, 100, 4.0},
	{"A-", 80, 84.99, 3.7},
	{"B+", 75, 79.99, 3.3},
	{"B", 70, 74.99, 3.0},
	{"B-", 65, 69.99, 2.7},
	{"C+", 60, 64.99, 2.3},
	{"C", 55, 59.99, 2.0},
	{"D", 45, 54.99, 1.0},
	{"E", 0, 44.99, 0.0},
}

// Letter distribution shaped like a bell curve centered on B/B+.
var gradeWeights = []int{10, 15, 20, 25, 15, 7, 5, 2, 1}

// bandByLetter resolves a scale row; unknown letters return the failing
// band.
func bandByLetter(letter string) GradeBand {
	for _, band := range GradeScale {
		if band.Letter == letter {
			return band
		}
	}
	return GradeScale[len(GradeScale)-1]
}

func gradePoint(letter string) float64 {
	return bandByLetter(letter).Point
}

// Grades generates final grades for registrations. Roughly 10% of
// registrations are still in progress and get no grade row at all —
// absent, not zero. Graded rows draw a letter from the weighted scale
// and a uniform numeric grade inside that letter's band.
func Grades(rng *rand.Rand, registrations []model.Registration) []model.Grade {
	result := make([]model.Grade, 0, len(registrations))

	for _, registration := range registrations {
		if rng.Float64() < 0.1 {
			continue
		}

		band := GradeScale[weightedIndex(rng, gradeWeights)]
		numeric := round2(band.Min + rng.Float64()*(band.Max-band.Min))

		result = append(result, model.Grade{
			ID:             int64(len(result) + 1),
			RegistrationID: registration.ID,
			NumericGrade:   numeric,
			LetterGrade:    band.Letter,
		})
	}

	return result
}
