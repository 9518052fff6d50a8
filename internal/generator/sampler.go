package generator

import (
	"fmt"
	"math/rand"

	"github.com/prasetya/siaklake/internal/pkg/apperrors"
)

// uniqueDraw repeatedly calls draw until it produces a value not yet in
// used, marking the winner as used. Exhausting maxAttempts means the
// caller asked for more unique values than the candidate space can
// yield at the configured volumes, which is a configuration error, not
// a runtime condition to recover from.
func uniqueDraw(rng *rand.Rand, used map[string]struct{}, maxAttempts int, draw func(*rand.Rand) string) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate := draw(rng)
		if _, taken := used[candidate]; !taken {
			used[candidate] = struct{}{}
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: no free value after %d attempts", apperrors.ErrCodeSpaceExhausted, maxAttempts)
}

// maxUniqueAttempts bounds every regenerate-on-collision loop. Large
// relative to the code spaces in play (two-letter codes, room/building
// pairs) so legitimate volumes never trip it.
const maxUniqueAttempts = 10000
