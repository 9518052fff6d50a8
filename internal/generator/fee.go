package generator

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/prasetya/siaklake/internal/model"
	"github.com/prasetya/siaklake/internal/pkg/apperrors"
)

// feeBand is the UKT fee range for a faculty: tier 1 pays min, tier 8
// pays max, intermediate tiers interpolate linearly.
type feeBand struct {
	min int64
	max int64
}

// Approximate per-faculty UKT ranges. Lookup happens by the first two
// characters of the program code, so faculties with longer codes fall
// through to the default band; that matches the published dataset.
var facultyFeeBands = map[string]feeBand{
	"FK": {1_000_000, 30_000_000},
	"FG": {1_000_000, 28_000_000},
	"FF": {1_000_000, 24_000_000},
	"FT": {1_000_000, 20_000_000},
	"FH": {1_000_000, 15_000_000},
}

var defaultFeeBand = feeBand{1_000_000, 16_000_000}

// Most students sit in the middle UKT tiers.
var feeTierWeights = []int{5, 10, 15, 20, 25, 15, 7, 3}

// feeTier assigns the student's UKT tier (1-8). The draw comes from a
// sub-stream derived from the student id, so the tier is identical
// every time it is computed for that student and independent of all
// other randomness.
func feeTier(studentID int64) int {
	return weightedIndex(derivedRand(studentID), feeTierWeights) + 1
}

// baseFee interpolates the tier-derived fee inside the faculty band,
// before noise.
func baseFee(band feeBand, tier int) float64 {
	step := float64(band.max-band.min) / 7
	return float64(band.min) + float64(tier-1)*step
}

// SemesterFees bills every student for every semester starting on or
// after their enrollment date. The tier-derived base amount is stable
// per student; each bill is perturbed ±2% and rounded to the nearest
// thousand rupiah. 95% of bills carry a payment date 1-30 days before
// the semester starts; the rest are unpaid.
func SemesterFees(rng *rand.Rand, students []model.Student, semesters []model.Semester, programs []model.Program) ([]model.SemesterFee, error) {
	if len(programs) == 0 {
		return nil, fmt.Errorf("semester fees: %w", apperrors.ErrEmptyInput)
	}

	programByID := make(map[int64]model.Program, len(programs))
	for _, p := range programs {
		programByID[p.ID] = p
	}

	result := make([]model.SemesterFee, 0, len(students)*len(semesters)/2)
	nextID := int64(1)

	for _, student := range students {
		program, ok := programByID[student.ProgramID]
		if !ok {
			return nil, apperrors.NewSequencingError(
				fmt.Sprintf("student %d references unknown program %d", student.ID, student.ProgramID))
		}

		band := defaultFeeBand
		if len(program.Code) >= 2 {
			if b, found := facultyFeeBands[program.Code[:2]]; found {
				band = b
			}
		}

		tier := feeTier(student.ID)
		base := baseFee(band, tier)

		for _, semester := range semesters {
			if semester.StartDate.Before(student.EnrollmentDate) {
				continue
			}

			amount := base * (0.98 + rng.Float64()*0.04)
			rounded := int64(math.Round(amount/1000)) * 1000

			fee := model.SemesterFee{
				ID:         nextID,
				StudentID:  student.ID,
				SemesterID: semester.ID,
				FeeAmount:  rounded,
			}
			if rng.Float64() < 0.95 {
				paid := semester.StartDate.AddDate(0, 0, -intBetween(rng, 1, 30))
				fee.PaymentDate = &paid
			}

			result = append(result, fee)
			nextID++
		}
	}

	return result, nil
}
