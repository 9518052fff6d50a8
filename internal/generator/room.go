package generator

import (
	"fmt"
	"math/rand"

	"github.com/prasetya/siaklake/internal/model"
)

// Rooms generates n rooms across the campus building catalog. The
// (room number, building) pair is unique; capacity follows a tiered
// distribution: 60% small rooms, 30% medium, 10% large halls.
func Rooms(rng *rand.Rand, n int) ([]model.Room, error) {
	result := make([]model.Room, 0, n)
	used := make(map[string]struct{}, n)

	for i := 1; i <= n; i++ {
		building := buildingOptions[rng.Intn(len(buildingOptions))]

		key, err := uniqueDraw(rng, used, maxUniqueAttempts, func(r *rand.Rand) string {
			// Floor digit followed by a two-digit room number.
			return fmt.Sprintf("%d%02d-%s", intBetween(r, 1, 5), intBetween(r, 1, 20), building)
		})
		if err != nil {
			return nil, fmt.Errorf("generating room %d: %w", i, err)
		}
		roomNumber := key[:3]

		var capacity int
		switch draw := rng.Float64(); {
		case draw < 0.1:
			capacity = intBetween(rng, 100, 300)
		case draw < 0.4:
			capacity = intBetween(rng, 40, 99)
		default:
			capacity = intBetween(rng, 20, 39)
		}

		result = append(result, model.Room{
			ID:         int64(i),
			RoomNumber: roomNumber,
			Building:   building,
			Capacity:   capacity,
		})
	}

	return result, nil
}
