package policy

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/rocketbft/rocket/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRandomPartition_IsSetPartition tests that every draw is an exact
// set-partition of [0, n).
func TestRandomPartition_IsSetPartition(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 1; n <= 8; n++ {
		for draw := 0; draw < 200; draw++ {
			parts := randomPartition(rng, n)

			ids := utils.Flatten(parts)
			require.Len(t, ids, n)
			sort.Ints(ids)
			for i, id := range ids {
				require.Equal(t, i, id, "draw for n=%d is not a partition: %v", n, parts)
			}
			for _, part := range parts {
				require.NotEmpty(t, part)
			}
		}
	}
}

// TestRandomPartition_CoversSingletonAndFull tests that both extreme
// partitions occur for a small node count.
func TestRandomPartition_CoversSingletonAndFull(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	singleBlock, allSingletons := false, false
	for draw := 0; draw < 500 && !(singleBlock && allSingletons); draw++ {
		parts := randomPartition(rng, 3)
		switch len(parts) {
		case 1:
			singleBlock = true
		case 3:
			allSingletons = true
		}
	}
	assert.True(t, singleBlock, "one-block partition never drawn")
	assert.True(t, allSingletons, "all-singletons partition never drawn")
}

// TestRandomSubset_WithinRange tests element bounds and uniqueness.
func TestRandomSubset_WithinRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for draw := 0; draw < 200; draw++ {
		subset := randomSubset(rng, 5)
		seen := make(map[int]bool)
		for _, id := range subset {
			require.GreaterOrEqual(t, id, 0)
			require.Less(t, id, 5)
			require.False(t, seen[id], "duplicate element %d", id)
			seen[id] = true
		}
	}
}

// TestBellNumbers tests the known leading Bell numbers.
func TestBellNumbers(t *testing.T) {
	bell := bellNumbers(7)
	expected := []float64{1, 1, 2, 5, 15, 52, 203, 877}
	require.Len(t, bell, len(expected))
	for i, want := range expected {
		assert.InDelta(t, want, bell[i], 1e-9, "B(%d)", i)
	}
}
