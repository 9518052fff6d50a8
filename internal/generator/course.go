package generator

import (
	"fmt"
	"math/rand"

	"github.com/prasetya/siaklake/internal/model"
	"github.com/prasetya/siaklake/internal/pkg/apperrors"
)

// SKS credit distribution, weighted toward 3-credit courses.
var creditWeights = []int{5, 15, 50, 20, 8, 2} // credits 1..6

// Course code levels lean toward introductory courses.
var courseLevelWeights = []int{40, 30, 20, 10} // levels 1..4

// Courses generates n courses attached to random programs. Codes are
// globally unique: a faculty/program-derived prefix plus a four-digit
// number encoding level, area and sequence.
func Courses(rng *rand.Rand, programs []model.Program, n int) ([]model.Course, error) {
	if len(programs) == 0 {
		return nil, fmt.Errorf("courses: %w", apperrors.ErrEmptyInput)
	}

	result := make([]model.Course, 0, n)
	used := make(map[string]struct{}, n)

	for i := 1; i <= n; i++ {
		program := programs[rng.Intn(len(programs))]
		facultyCode, programSuffix := splitProgramCode(program.Code)
		prefix := coursePrefix(facultyCode, programSuffix)

		var level int
		code, err := uniqueDraw(rng, used, maxUniqueAttempts, func(r *rand.Rand) string {
			level = weightedIndex(r, courseLevelWeights) + 1
			area := r.Intn(10)
			sequence := intBetween(r, 1, 99)
			return fmt.Sprintf("%s%d%d%02d", prefix, level, area, sequence)
		})
		if err != nil {
			return nil, fmt.Errorf("generating course %d: %w", i, err)
		}

		name := courseName(rng, facultyCode, programSuffix)
		if rng.Float64() < 0.3 {
			name = fmt.Sprintf("%s %s", name, romanLevel(level))
		}

		credits := weightedIndex(rng, creditWeights) + 1

		result = append(result, model.Course{
			ID:        int64(i),
			Code:      code,
			Name:      name,
			Credits:   credits,
			ProgramID: program.ID,
		})
	}

	return result, nil
}

// splitProgramCode separates the faculty code from the program suffix
// by longest known-faculty prefix match.
func splitProgramCode(programCode string) (facultyCode, suffix string) {
	best := ""
	for _, opt := range facultyOptions {
		if len(opt.code) > len(best) && len(programCode) > len(opt.code) &&
			programCode[:len(opt.code)] == opt.code {
			best = opt.code
		}
	}
	if best == "" {
		if len(programCode) > 2 {
			return programCode[:2], programCode[2:]
		}
		return programCode, ""
	}
	return best, programCode[len(best):]
}

func coursePrefix(facultyCode, programSuffix string) string {
	if perProgram, ok := programCoursePrefixes[facultyCode]; ok {
		if prefix, ok := perProgram[programSuffix]; ok {
			return prefix
		}
		if prefix, ok := perProgram[""]; ok {
			return prefix
		}
	}
	if prefix, ok := facultyCoursePrefixes[facultyCode]; ok {
		return prefix
	}
	return facultyCode + "UI"
}

func courseName(rng *rand.Rand, facultyCode, programSuffix string) string {
	templates := defaultCourseTemplates
	if perProgram, ok := programCourseTemplates[facultyCode]; ok {
		if t, ok := perProgram[programSuffix]; ok {
			templates = t
		} else if t, ok := perProgram[""]; ok {
			templates = t
		}
	} else if t, ok := facultyCourseTemplates[facultyCode]; ok {
		templates = t
	}

	template := templates[rng.Intn(len(templates))]
	return fmt.Sprintf(template, courseSubjects[rng.Intn(len(courseSubjects))])
}

func romanLevel(level int) string {
	switch level {
	case 1:
		return "I"
	case 2:
		return "II"
	case 3:
		return "III"
	default:
		return "IV"
	}
}
