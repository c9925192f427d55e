package pund

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// TestExpandMarks_ClosesGaps: a hole smaller than the radius inside a run
// is filled, and marks do not cascade beyond one radius.
func TestExpandMarks_ClosesGaps(t *testing.T) {
	marked := make([]bool, 20)
	for _, i := range []int{8, 9, 12, 13} {
		marked[i] = true
	}

	out := expandMarks(marked, 2)

	for i := 6; i <= 15; i++ {
		assert.True(t, out[i], "index %d inside the expanded run", i)
	}
	assert.False(t, out[5], "expansion is one radius, not iterative")
	assert.False(t, out[16])
}

// TestExpandMarks_EdgesUntouched: samples within radius of either edge are
// never expanded into.
func TestExpandMarks_EdgesUntouched(t *testing.T) {
	marked := make([]bool, 10)
	marked[2] = true

	out := expandMarks(marked, 3)

	assert.False(t, out[0], "edge sample stays as marked originally")
	assert.True(t, out[2])
	assert.True(t, out[4], "non-edge neighbour within radius is marked")
}

// TestContiguousRuns covers interior runs and a run touching the end.
func TestContiguousRuns(t *testing.T) {
	marked := []bool{false, true, true, false, false, true}
	runs := contiguousRuns(marked)
	assert.Equal(t, []Pulse{{Start: 1, End: 3}, {Start: 5, End: 6}}, runs)

	assert.Empty(t, contiguousRuns([]bool{false, false}))
}

// TestCorrectBaseline_IgnoresNonFinite: dropout markers in the lead-in
// must not poison the offset estimate.
func TestCorrectBaseline_IgnoresNonFinite(t *testing.T) {
	cur := []float64{1, 1, math.NaN(), 1, 5}
	correctBaseline(cur, 4, zap.NewNop())

	assert.Equal(t, 0.0, cur[0])
	assert.Equal(t, 4.0, cur[4])
}
