package probability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculator_BuildDrawTable(t *testing.T) {
	calc := NewCalculator()

	rows := calc.BuildDrawTable(40, 3, 5)
	require.Len(t, rows, 4)

	// Zero copies or more is a certainty.
	assert.Equal(t, 0, rows[0].Copies)
	assert.InDelta(t, 100.0, rows[0].AtLeastPercent, 1e-9)

	// Cumulative odds can only drop as the demanded copy count rises.
	for i := 1; i < len(rows); i++ {
		assert.Equal(t, i, rows[i].Copies)
		assert.LessOrEqual(t, rows[i].AtLeastPercent, rows[i-1].AtLeastPercent)
	}

	// The exact rows partition the outcome space.
	sum := 0.0
	for _, row := range rows {
		sum += row.ExactPercent
	}
	assert.InDelta(t, 100.0, sum, 1e-9)

	// At least one copy matches the known 3-of figure.
	assert.InDelta(t, 33.76, rows[1].AtLeastPercent, 0.005)
}

func TestCalculator_BuildDrawTable_CappedByHandSize(t *testing.T) {
	calc := NewCalculator()

	// 20 copies in the pool but only 5 hand slots.
	rows := calc.BuildDrawTable(40, 20, 5)
	assert.Len(t, rows, 6)
}

func TestCalculator_BuildDrawTable_ZeroTarget(t *testing.T) {
	calc := NewCalculator()

	// A target that is not in the pool yields the single trivial row.
	rows := calc.BuildDrawTable(40, 0, 5)
	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].Copies)
	assert.InDelta(t, 100.0, rows[0].ExactPercent, 1e-9)
	assert.InDelta(t, 100.0, rows[0].AtLeastPercent, 1e-9)
}
