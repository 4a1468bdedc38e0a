package scheduler

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistributeProportional_ExactConservation(t *testing.T) {
	tests := []struct {
		name    string
		total   time.Duration
		weights []time.Duration
	}{
		{"even split", 6 * time.Minute, []time.Duration{3 * time.Minute, 3 * time.Minute, 3 * time.Minute}},
		{"uneven weights", 10 * time.Minute, []time.Duration{7 * time.Minute, 11 * time.Minute, 3 * time.Minute}},
		{"rounding remainder", time.Minute, []time.Duration{7 * time.Second, 7 * time.Second, 7 * time.Second, 50 * time.Second}},
		{"single weight", 4 * time.Minute, []time.Duration{10 * time.Minute}},
		{"zero weights mixed in", 4 * time.Minute, []time.Duration{0, 10 * time.Minute, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares := DistributeProportional(tt.total, tt.weights)

			var sum time.Duration
			for i, s := range shares {
				sum += s
				assert.LessOrEqual(t, int64(s), int64(tt.weights[i]), "share %d exceeds its weight", i)
				assert.GreaterOrEqual(t, int64(s), int64(0))
			}
			assert.Equal(t, tt.total, sum, "shares must sum to exactly the total")
		})
	}
}

func TestDistributeProportional_RemainderGoesToFirstEligible(t *testing.T) {
	// 1 minute over three 7-second weights and one big weight: the floored
	// integer shares leave a remainder that must land deterministically.
	first := DistributeProportional(time.Minute, []time.Duration{7 * time.Second, 7 * time.Second, 7 * time.Second, 50 * time.Second})
	second := DistributeProportional(time.Minute, []time.Duration{7 * time.Second, 7 * time.Second, 7 * time.Second, 50 * time.Second})
	assert.Equal(t, first, second, "distribution is deterministic")
}

func TestDistributeProportional_SaturatesWhenTotalExceedsWeights(t *testing.T) {
	weights := []time.Duration{3 * time.Minute, 5 * time.Minute}
	shares := DistributeProportional(20*time.Minute, weights)

	assert.Equal(t, weights, shares, "every share saturates at its weight")
}

func TestDistributeProportional_Degenerate(t *testing.T) {
	assert.Equal(t, []time.Duration{0, 0}, DistributeProportional(0, []time.Duration{time.Minute, time.Minute}))
	assert.Equal(t, []time.Duration{0, 0}, DistributeProportional(5*time.Minute, []time.Duration{0, 0}))
	assert.Empty(t, DistributeProportional(5*time.Minute, nil))
}

// Property: for any random total and weights where sum(weights) >= total,
// the shares conserve the total exactly and never exceed their weight.
func TestDistributeProportional_ConservationProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 500; trial++ {
		n := 1 + rng.Intn(8)
		weights := make([]time.Duration, n)
		var totalWeight time.Duration
		for i := range weights {
			weights[i] = time.Duration(rng.Intn(120)) * time.Minute
			totalWeight += weights[i]
		}
		if totalWeight == 0 {
			continue
		}
		total := time.Duration(rng.Int63n(int64(totalWeight))) / time.Millisecond * time.Millisecond

		shares := DistributeProportional(total, weights)

		var sum time.Duration
		for i, s := range shares {
			require.LessOrEqual(t, int64(s), int64(weights[i]),
				"trial %d: share %d exceeds weight", trial, i)
			sum += s
		}
		require.Equal(t, total, sum, "trial %d: conservation violated", trial)
	}
}
