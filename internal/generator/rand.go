package generator

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"math/rand"
	"time"
)

// NewRand returns a time-seeded randomness source. Generators never
// touch global random state; every draw goes through a source the
// caller passes in, so shards can run concurrently with independent
// sources.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Fork derives an independent child source from rng, for handing to a
// worker goroutine.
func Fork(rng *rand.Rand) *rand.Rand {
	return rand.New(rand.NewSource(rng.Int63()))
}

// derivedRand returns a deterministic sub-stream keyed by id. The fee
// generator uses this so a student's tier draw is reproducible for the
// same id without reseeding any shared state.
func derivedRand(id int64) *rand.Rand {
	h := fnv.New64a()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(id))
	h.Write(buf[:])
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

// weightedIndex picks an index with probability proportional to its
// weight. Weights must be positive; the sum must be > 0.
func weightedIndex(rng *rand.Rand, weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	draw := rng.Intn(total)
	for i, w := range weights {
		draw -= w
		if draw < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// intBetween returns a uniform integer in [lo, hi].
func intBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
