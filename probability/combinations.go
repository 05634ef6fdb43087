// Package probability computes exact draw odds for card pools and
// idealized Swiss tournament standings. All results are derived from
// arbitrary-precision combination counts; floating point enters only at
// the final ratio of two exact integers.
package probability

import (
	"math/big"
	"sync"
)

// Calculator computes combination counts and caches them for the lifetime
// of the process. The cache only grows, and recomputing an entry always
// yields the same value, so concurrent use is safe.
type Calculator struct {
	mu   sync.RWMutex
	memo map[comboKey]*big.Int
}

type comboKey struct {
	n, k int
}

// NewCalculator creates a calculator with an empty combination cache.
func NewCalculator() *Calculator {
	return &Calculator{
		memo: make(map[comboKey]*big.Int),
	}
}

// Combinations returns C(n, k) as an exact integer. Out-of-range inputs
// (k < 0 or k > n) return zero rather than an error. The returned value
// is shared with the cache and must not be mutated by the caller.
func (c *Calculator) Combinations(n, k int) *big.Int {
	if k < 0 || k > n {
		return big.NewInt(0)
	}
	if k == 0 || k == n {
		return big.NewInt(1)
	}

	// C(n,k) == C(n,n-k); always iterate over the smaller side.
	if n-k < k {
		k = n - k
	}

	key := comboKey{n: n, k: k}

	c.mu.RLock()
	cached, ok := c.memo[key]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	// C(n,i) = C(n,i-1) * (n-i+1) / i. The product is evenly divisible
	// at every step as long as the multiply happens before the divide.
	result := big.NewInt(1)
	for i := 1; i <= k; i++ {
		result.Mul(result, big.NewInt(int64(n-i+1)))
		result.Div(result, big.NewInt(int64(i)))
	}

	c.mu.Lock()
	c.memo[key] = result
	c.mu.Unlock()

	return result
}

// ratio converts two exact integers to a float64 quotient. This is the
// single point where precision is allowed to drop; num and den may both
// individually overflow a float64 without affecting the result.
func ratio(num, den *big.Int) float64 {
	q := new(big.Float).Quo(new(big.Float).SetInt(num), new(big.Float).SetInt(den))
	f, _ := q.Float64()
	return f
}
