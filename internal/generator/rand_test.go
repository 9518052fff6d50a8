package generator

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/prasetya/siaklake/internal/pkg/apperrors"
)

func TestWeightedIndex_RespectsWeights(t *testing.T) {
	rng := testRand()
	weights := []int{0, 100}
	for i := 0; i < 50; i++ {
		if idx := weightedIndex(rng, weights); idx != 1 {
			t.Fatalf("zero-weight index %d drawn", idx)
		}
	}

	counts := make([]int, 3)
	for i := 0; i < 3000; i++ {
		counts[weightedIndex(rng, []int{1, 1, 8})]++
	}
	if counts[2] < counts[0] || counts[2] < counts[1] {
		t.Errorf("heaviest weight drawn least: %v", counts)
	}
}

func TestIntBetween_Inclusive(t *testing.T) {
	rng := testRand()
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		v := intBetween(rng, 3, 5)
		if v < 3 || v > 5 {
			t.Fatalf("intBetween(3, 5) = %d", v)
		}
		seen[v] = true
	}
	if !seen[3] || !seen[5] {
		t.Errorf("bounds never drawn: %v", seen)
	}
}

func TestDerivedRand_Deterministic(t *testing.T) {
	a := derivedRand(7).Int63()
	b := derivedRand(7).Int63()
	if a != b {
		t.Fatalf("derived stream not deterministic: %d vs %d", a, b)
	}
	if derivedRand(7).Int63() == derivedRand(8).Int63() {
		t.Error("different ids should derive different streams")
	}
}

func TestUniqueDraw_Exhaustion(t *testing.T) {
	rng := testRand()
	used := map[string]struct{}{"x": {}}

	_, err := uniqueDraw(rng, used, 10, func(r *rand.Rand) string { return "x" })
	if !errors.Is(err, apperrors.ErrCodeSpaceExhausted) {
		t.Fatalf("expected exhaustion error, got %v", err)
	}

	value, err := uniqueDraw(rng, used, 10, func(r *rand.Rand) string { return "y" })
	if err != nil {
		t.Fatalf("uniqueDraw error: %v", err)
	}
	if value != "y" {
		t.Fatalf("uniqueDraw = %q, want y", value)
	}
	if _, marked := used["y"]; !marked {
		t.Error("drawn value not recorded as used")
	}
}

func TestRound2(t *testing.T) {
	if got := round2(3.14159); got != 3.14 {
		t.Errorf("round2(3.14159) = %v", got)
	}
	if got := round2(9.876); got != 9.88 {
		t.Errorf("round2(9.876) = %v", got)
	}
}
