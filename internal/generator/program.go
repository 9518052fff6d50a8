package generator

import (
	"fmt"
	"math/rand"

	"github.com/prasetya/siaklake/internal/model"
	"github.com/prasetya/siaklake/internal/pkg/apperrors"
)

// Programs generates n study programs, each referencing one of the
// supplied faculties. Curated programs per faculty are emitted first;
// extra demand is met with random unique faculty-prefixed codes.
func Programs(rng *rand.Rand, faculties []model.Faculty, n int) ([]model.Program, error) {
	if len(faculties) == 0 {
		return nil, fmt.Errorf("programs: %w", apperrors.ErrEmptyInput)
	}

	result := make([]model.Program, 0, n)
	used := make(map[string]struct{}, n)
	nextID := int64(1)

	for _, faculty := range faculties {
		for _, opt := range programOptions[faculty.Code] {
			code := faculty.Code + opt.suffix
			if _, taken := used[code]; taken {
				continue
			}
			used[code] = struct{}{}
			result = append(result, model.Program{
				ID:        nextID,
				Code:      code,
				Name:      opt.name,
				FacultyID: faculty.ID,
			})
			nextID++
			if len(result) >= n {
				return result, nil
			}
		}
	}

	for len(result) < n {
		faculty := faculties[rng.Intn(len(faculties))]
		code, err := uniqueDraw(rng, used, maxUniqueAttempts, func(r *rand.Rand) string {
			return faculty.Code + string([]byte{randomUpperLetter(r), randomUpperLetter(r)})
		})
		if err != nil {
			return nil, fmt.Errorf("generating program %d: %w", nextID, err)
		}
		result = append(result, model.Program{
			ID:        nextID,
			Code:      code,
			Name:      fmt.Sprintf("Program %s %s", randomWord(rng), randomWord(rng)),
			FacultyID: faculty.ID,
		})
		nextID++
	}

	return result, nil
}
