package probability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculator_SwissStandings(t *testing.T) {
	calc := NewCalculator()

	standings := calc.SwissStandings(64, 6)
	require.Len(t, standings, 7)

	// Ordered from best record to worst.
	assert.Equal(t, 6, standings[0].Wins)
	assert.Equal(t, 0, standings[0].Losses)
	assert.Equal(t, 0, standings[6].Wins)
	assert.Equal(t, 6, standings[6].Losses)

	// One undefeated player expected out of 64 over 6 rounds.
	assert.InDelta(t, 1.0, standings[0].ExpectedCount, 1e-9)

	// Expected counts cover the whole field.
	sum := 0.0
	for _, s := range standings {
		assert.Equal(t, 6, s.Wins+s.Losses)
		sum += s.ExpectedCount
	}
	assert.InDelta(t, 64.0, sum, 1e-6)
}

func TestCalculator_SwissStandings_Bounds(t *testing.T) {
	calc := NewCalculator()

	t.Run("integral expectations collapse the bounds", func(t *testing.T) {
		for _, s := range calc.SwissStandings(64, 6) {
			assert.Equal(t, s.LowerBound, s.UpperBound, "wins=%d", s.Wins)
		}
	})

	t.Run("fractional expectations straddle", func(t *testing.T) {
		// 10 players over 2 rounds: 2.5 expected at 2-0 and 0-2.
		standings := calc.SwissStandings(10, 2)
		require.Len(t, standings, 3)
		assert.InDelta(t, 2.5, standings[0].ExpectedCount, 1e-9)
		assert.Equal(t, 2, standings[0].LowerBound)
		assert.Equal(t, 3, standings[0].UpperBound)
	})
}

func TestCalculator_TopRankProbability(t *testing.T) {
	calc := NewCalculator()

	t.Run("whole field cutoff", func(t *testing.T) {
		assert.Equal(t, 100.0, calc.TopRankProbability(64, 6, 64, 0, 0))
	})

	t.Run("record longer than the event", func(t *testing.T) {
		assert.Equal(t, 0.0, calc.TopRankProbability(64, 6, 8, 4, 3))
	})

	t.Run("fresh record chasing top 8", func(t *testing.T) {
		// 64 players, 6 rounds, expected records 1/6/15/20/15/6/1.
		// Top 8 takes all x-0 and x-1 players plus 1 of the 15 at 4-2,
		// so P = 1/64 + 6/64 + (15/64)*(1/15) = 12.5%.
		assert.InDelta(t, 12.5, calc.TopRankProbability(64, 6, 8, 0, 0), 0.005)
	})

	t.Run("undefeated partial record", func(t *testing.T) {
		// At 4-0 with two rounds left: win out (25%) or win one
		// (50%) and make it outright, or stay at 4 wins (25%) with a
		// 1-in-15 share of the last slot: 76.67%.
		assert.InDelta(t, 76.67, calc.TopRankProbability(64, 6, 8, 4, 0), 0.005)
	})

	t.Run("rounded to two decimals", func(t *testing.T) {
		result := calc.TopRankProbability(64, 6, 8, 2, 1)
		assert.Equal(t, result, float64(int(result*100+0.5))/100)
	})

	t.Run("idempotent", func(t *testing.T) {
		first := calc.TopRankProbability(128, 7, 16, 3, 2)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, calc.TopRankProbability(128, 7, 16, 3, 2))
		}
	})
}
