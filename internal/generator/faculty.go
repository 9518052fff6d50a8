package generator

import (
	"fmt"
	"math/rand"

	"github.com/prasetya/siaklake/internal/model"
)

// Faculties generates n faculty records. The curated catalog is used
// first; any surplus gets a random unique two-letter code. Asking for
// more faculties than the code space holds is a configuration error.
func Faculties(rng *rand.Rand, n int) ([]model.Faculty, error) {
	result := make([]model.Faculty, 0, n)
	used := make(map[string]struct{}, n)

	for i := 0; i < n && i < len(facultyOptions); i++ {
		opt := facultyOptions[i]
		used[opt.code] = struct{}{}
		result = append(result, model.Faculty{
			ID:   int64(i + 1),
			Code: opt.code,
			Name: opt.name,
		})
	}

	for i := len(facultyOptions); i < n; i++ {
		code, err := uniqueDraw(rng, used, maxUniqueAttempts, func(r *rand.Rand) string {
			return string([]byte{randomUpperLetter(r), randomUpperLetter(r)})
		})
		if err != nil {
			return nil, fmt.Errorf("generating faculty %d: %w", i+1, err)
		}
		result = append(result, model.Faculty{
			ID:   int64(i + 1),
			Code: code,
			Name: fmt.Sprintf("Fakultas %s", randomWord(rng)),
		})
	}

	return result, nil
}
