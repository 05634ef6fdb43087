package probability

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculator_Combinations_KnownValues(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		name     string
		n, k     int
		expected string
	}{
		{"zero choose zero", 0, 0, "1"},
		{"n choose zero", 40, 0, "1"},
		{"n choose n", 40, 40, "1"},
		{"n choose one", 40, 1, "40"},
		{"small", 5, 2, "10"},
		{"deck opening hand", 40, 5, "658008"},
		{"full deck half draw", 60, 30, "118264581564861424"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expected, ok := new(big.Int).SetString(tt.expected, 10)
			require.True(t, ok)
			assert.Equal(t, 0, calc.Combinations(tt.n, tt.k).Cmp(expected))
		})
	}
}

func TestCalculator_Combinations_OutOfRange(t *testing.T) {
	calc := NewCalculator()

	assert.Equal(t, 0, calc.Combinations(10, -1).Sign())
	assert.Equal(t, 0, calc.Combinations(10, 11).Sign())
	assert.Equal(t, 0, calc.Combinations(0, 1).Sign())
}

func TestCalculator_Combinations_Symmetry(t *testing.T) {
	calc := NewCalculator()

	for n := 0; n <= 40; n++ {
		for k := 0; k <= n; k++ {
			left := calc.Combinations(n, k)
			right := calc.Combinations(n, n-k)
			assert.Equal(t, 0, left.Cmp(right), "C(%d,%d) != C(%d,%d)", n, k, n, n-k)
		}
	}
}

func TestCalculator_Combinations_RowSum(t *testing.T) {
	calc := NewCalculator()

	// Sum over a full Pascal row must equal 2^n exactly.
	for n := 0; n <= 40; n++ {
		sum := big.NewInt(0)
		for k := 0; k <= n; k++ {
			sum.Add(sum, calc.Combinations(n, k))
		}
		expected := new(big.Int).Lsh(big.NewInt(1), uint(n))
		assert.Equal(t, 0, sum.Cmp(expected), "row %d", n)
	}
}

func TestCalculator_Combinations_Idempotent(t *testing.T) {
	calc := NewCalculator()

	first := calc.Combinations(52, 17)
	second := calc.Combinations(52, 17)
	assert.Equal(t, 0, first.Cmp(second))

	// The symmetry-reduced pair hits the same cache entry.
	mirrored := calc.Combinations(52, 35)
	assert.Equal(t, 0, first.Cmp(mirrored))
}
