package probability

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculator_SolveConstraints_Unconstrained(t *testing.T) {
	calc := NewCalculator()

	// A single group covering the whole pool with open bounds always
	// satisfies the constraint.
	result := calc.SolveConstraints(40, 5, []Group{
		{Name: "anything", CountInPool: 40, MinDesired: 0, MaxDesired: 5},
	})
	assert.InDelta(t, 100.0, result, 1e-9)

	// No groups at all: every hand trivially satisfies the constraints.
	assert.InDelta(t, 100.0, calc.SolveConstraints(40, 5, nil), 1e-9)
}

func TestCalculator_SolveConstraints_AtLeastOneOfThree(t *testing.T) {
	calc := NewCalculator()

	// At least one copy of a 3-of in a 40 card deck, 5 card hand:
	// 1 - C(37,5)/C(40,5) = 33.7551%.
	result := calc.SolveConstraints(40, 5, []Group{
		{Name: "starter", CountInPool: 3, MinDesired: 1, MaxDesired: 3},
	})
	assert.InDelta(t, 33.76, result, 0.005)
}

func TestCalculator_SolveConstraints_MatchesClassicHypergeometric(t *testing.T) {
	calc := NewCalculator()

	// Exactly k successes from a single group must reduce to the
	// textbook formula C(K,k)*C(N-K,n-k)/C(N,n).
	const poolSize, groupCount, handSize = 40, 9, 5
	for k := 0; k <= handSize; k++ {
		expected := ratio(
			new(big.Int).Mul(
				calc.Combinations(groupCount, k),
				calc.Combinations(poolSize-groupCount, handSize-k),
			),
			calc.Combinations(poolSize, handSize),
		) * 100

		result := calc.SolveConstraints(poolSize, handSize, []Group{
			{CountInPool: groupCount, MinDesired: k, MaxDesired: k},
		})
		assert.InDelta(t, expected, result, 1e-9, "k=%d", k)
	}
}

func TestCalculator_SolveConstraints_TwoGroups_InclusionExclusion(t *testing.T) {
	calc := NewCalculator()

	// Independent derivation via inclusion-exclusion: at least one of a
	// 3-of and at least one of a 2-of in a 40 card deck, 5 card hand.
	total := ratioOf(calc, 40, 5)
	noA := ratioOf(calc, 37, 5)
	noB := ratioOf(calc, 38, 5)
	noAB := ratioOf(calc, 35, 5)
	expected := (1 - noA/total - noB/total + noAB/total) * 100

	result := calc.SolveConstraints(40, 5, []Group{
		{Name: "a", CountInPool: 3, MinDesired: 1, MaxDesired: 3},
		{Name: "b", CountInPool: 2, MinDesired: 1, MaxDesired: 2},
	})
	assert.InDelta(t, expected, result, 1e-9)
}

// ratioOf returns C(n,k) as a float64 for test-side arithmetic.
func ratioOf(calc *Calculator, n, k int) float64 {
	f, _ := new(big.Float).SetInt(calc.Combinations(n, k)).Float64()
	return f
}

func TestCalculator_SolveConstraints_DefinedZeroCases(t *testing.T) {
	calc := NewCalculator()

	t.Run("hand larger than pool", func(t *testing.T) {
		result := calc.SolveConstraints(5, 6, []Group{
			{CountInPool: 3, MinDesired: 0, MaxDesired: 3},
		})
		assert.Zero(t, result)
	})

	t.Run("groups overcommit the pool", func(t *testing.T) {
		result := calc.SolveConstraints(10, 5, []Group{
			{CountInPool: 7, MinDesired: 0, MaxDesired: 7},
			{CountInPool: 6, MinDesired: 0, MaxDesired: 6},
		})
		assert.Zero(t, result)
	})

	t.Run("unsatisfiable minimum", func(t *testing.T) {
		// Demanding 4 copies of a 3-of leaves no valid allocation.
		result := calc.SolveConstraints(40, 5, []Group{
			{CountInPool: 3, MinDesired: 4, MaxDesired: 5},
		})
		assert.Zero(t, result)
	})
}

func TestCalculator_SolveConstraints_Idempotent(t *testing.T) {
	calc := NewCalculator()

	groups := []Group{
		{Name: "a", CountInPool: 3, MinDesired: 1, MaxDesired: 3},
		{Name: "b", CountInPool: 10, MinDesired: 0, MaxDesired: 2},
	}

	first := calc.SolveConstraints(40, 5, groups)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, calc.SolveConstraints(40, 5, groups))
	}
}
