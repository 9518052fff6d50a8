package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/prasetya/siaklake/internal/model"
	"github.com/prasetya/siaklake/internal/pkg/apperrors"
)

// Lecturers generates n lecturer records, each attached to a random
// faculty. The employee number follows the NIP layout:
// YYYYMMDD + gender digit + 4-digit serial + check digit.
func Lecturers(rng *rand.Rand, faculties []model.Faculty, n int) ([]model.Lecturer, error) {
	if len(faculties) == 0 {
		return nil, fmt.Errorf("lecturers: %w", apperrors.ErrEmptyInput)
	}

	currentYear := time.Now().Year()
	result := make([]model.Lecturer, 0, n)

	for i := 1; i <= n; i++ {
		faculty := faculties[rng.Intn(len(faculties))]
		gender := rng.Intn(2)
		first, last := personName(rng, gender)

		name := first + " " + last
		if title := academicTitles[rng.Intn(len(academicTitles))]; title != "" {
			name = title + " " + name
		}
		if suffix := academicSuffixes[rng.Intn(len(academicSuffixes))]; suffix != "" {
			name = name + ", " + suffix
		}

		birthYear := intBetween(rng, currentYear-65, currentYear-30)
		birthMonth := intBetween(rng, 1, 12)
		birthDay := intBetween(rng, 1, 28)
		genderDigit := "0"
		if gender == genderFemale {
			genderDigit = "1"
		}
		nip := fmt.Sprintf("%04d%02d%02d%s%04d%d",
			birthYear, birthMonth, birthDay, genderDigit,
			intBetween(rng, 1, 9999), rng.Intn(10))

		result = append(result, model.Lecturer{
			ID:             int64(i),
			EmployeeNumber: nip,
			Name:           name,
			Email:          lecturerEmail(rng, first, last, faculty.Code),
			FacultyID:      faculty.ID,
		})
	}

	return result, nil
}

// lecturerEmail builds firstname.lastname addresses, 60% on the central
// domain and the rest on the faculty subdomain.
func lecturerEmail(rng *rand.Rand, first, last, facultyCode string) string {
	prefix := strings.ToLower(first) + "." + strings.ToLower(last)
	if rng.Float64() < 0.6 {
		return prefix + "@ui.ac.id"
	}
	domain, ok := facultyEmailDomains[facultyCode]
	if !ok {
		domain = strings.ToLower(facultyCode)
	}
	return prefix + "@" + domain + ".ui.ac.id"
}
