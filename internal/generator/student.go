package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/prasetya/siaklake/internal/model"
	"github.com/prasetya/siaklake/internal/pkg/apperrors"
)

// Students generates n student records with enrollment years drawn from
// [startYear, endYear]. Usernames are globally unique; student numbers
// follow the 10-digit NPM layout but the serial component wraps at
// 10000 and is not unique across programs or years. That weakness is
// part of the published format and is kept.
func Students(rng *rand.Rand, programs []model.Program, n, startYear, endYear int) ([]model.Student, error) {
	if len(programs) == 0 {
		return nil, fmt.Errorf("students: %w", apperrors.ErrEmptyInput)
	}

	usernames := make(map[string]struct{}, n)
	result := make([]model.Student, 0, n)
	currentYear := time.Now().Year()

	for i := 1; i <= n; i++ {
		program := programs[rng.Intn(len(programs))]
		enrollmentYear := intBetween(rng, startYear, endYear)

		gender := rng.Intn(2)
		first, last := personName(rng, gender)
		username := uniqueUsername(usernames, first, last)

		// Cohorts start in August or September.
		enrollmentDate := time.Date(enrollmentYear,
			time.Month(intBetween(rng, 8, 9)), intBetween(rng, 1, 28),
			0, 0, 0, 0, time.UTC)

		// Students past the standard four years have mostly moved on.
		isActive := true
		if currentYear-enrollmentYear >= 4 {
			isActive = rng.Float64() > 0.8
		}

		result = append(result, model.Student{
			ID:             int64(i),
			StudentNumber:  studentNumber(enrollmentYear, program.Code, i),
			Username:       username,
			Name:           first + " " + last,
			Email:          username + "@mahasiswa.ui.ac.id",
			EnrollmentDate: enrollmentDate,
			ProgramID:      program.ID,
			IsActive:       isActive,
		})
	}

	return result, nil
}

// studentNumber assembles the NPM: 2-digit year, 1-digit faculty code,
// 2-digit program code, 4-digit serial, sanitized to exactly 10 digits.
func studentNumber(enrollmentYear int, programCode string, ordinal int) string {
	yearCode := fmt.Sprintf("%02d", enrollmentYear%100)

	facultyCode := programCode
	if len(facultyCode) > 2 {
		facultyCode = facultyCode[:2]
	}
	facultyDigit, ok := facultyDigits[facultyCode]
	if !ok {
		facultyDigit = "0"
	}
	facultyDigit = facultyDigit[:1]

	programPart := "00"
	if len(programCode) > 2 {
		programPart = programCode[2:]
		if len(programPart) > 2 {
			programPart = programPart[:2]
		}
	}
	programDigitsStr := programDigits(programPart)

	serial := fmt.Sprintf("%04d", ordinal%10000)

	npm := yearCode + facultyDigit + programDigitsStr + serial
	npm = digitsOnly(npm)
	for len(npm) < 10 {
		npm = "0" + npm
	}
	return npm[:10]
}

// programDigits rewrites a program code fragment as exactly two digits:
// digits pass through, letters become their alphabet position.
func programDigits(part string) string {
	var b strings.Builder
	for _, ch := range part {
		switch {
		case ch >= '0' && ch <= '9':
			b.WriteRune(ch)
		case ch >= 'A' && ch <= 'Z':
			fmt.Fprintf(&b, "%d", ch-'A'+1)
		case ch >= 'a' && ch <= 'z':
			fmt.Fprintf(&b, "%d", ch-'a'+1)
		default:
			b.WriteByte('0')
		}
	}
	digits := b.String()
	for len(digits) < 2 {
		digits = "0" + digits
	}
	return digits[:2]
}

func digitsOnly(s string) string {
	out := []byte(s)
	for i, ch := range out {
		if ch < '0' || ch > '9' {
			out[i] = '0'
		}
	}
	return string(out)
}

// uniqueUsername builds first-initial + lastname, suffixing a counter
// until the result is unused.
func uniqueUsername(used map[string]struct{}, first, last string) string {
	base := strings.ToLower(first[:1] + last)
	username := base
	for counter := 1; ; counter++ {
		if _, taken := used[username]; !taken {
			break
		}
		username = fmt.Sprintf("%s%d", base, counter)
	}
	used[username] = struct{}{}
	return username
}
