package probability

import "math/big"

// Group is a named subset of the pool with its own draw-count bounds.
// The caller builds one per constrained card set; whatever part of the
// pool no group claims forms an implicit unconstrained remainder.
type Group struct {
	Name        string
	CountInPool int
	MinDesired  int
	MaxDesired  int
}

// SolveConstraints returns the percentage chance that a hand of handSize
// drawn from a pool of poolSize satisfies every group's [min,max] bound
// simultaneously. Out-of-domain input (hand larger than pool, groups
// overcommitting the pool, an empty combination space) yields 0 rather
// than an error.
func (c *Calculator) SolveConstraints(poolSize, handSize int, groups []Group) float64 {
	if handSize > poolSize {
		return 0
	}

	allocated := 0
	for _, g := range groups {
		allocated += g.CountInPool
	}
	if allocated > poolSize {
		return 0
	}
	otherCount := poolSize - allocated

	total := c.Combinations(poolSize, handSize)
	if total.Sign() == 0 {
		return 0
	}

	success := big.NewInt(0)
	c.countAllocations(groups, otherCount, 0, handSize, big.NewInt(1), success)

	return ratio(success, total) * 100
}

// countAllocations walks the groups depth-first, assigning each group a
// take within its bounds and multiplying the ways of making that take
// into the running product. Past the last group, the leftover hand slots
// must come out of the unconstrained remainder.
func (c *Calculator) countAllocations(groups []Group, otherCount, index, remaining int, ways, success *big.Int) {
	if remaining < 0 {
		return
	}

	if index == len(groups) {
		if remaining <= otherCount {
			success.Add(success, new(big.Int).Mul(ways, c.Combinations(otherCount, remaining)))
		}
		return
	}

	g := groups[index]
	low := g.MinDesired
	if low < 0 {
		low = 0
	}
	high := remaining
	if g.CountInPool < high {
		high = g.CountInPool
	}
	if g.MaxDesired < high {
		high = g.MaxDesired
	}

	for take := low; take <= high; take++ {
		w := c.Combinations(g.CountInPool, take)
		if w.Sign() == 0 {
			continue
		}
		c.countAllocations(groups, otherCount, index+1, remaining-take, new(big.Int).Mul(ways, w), success)
	}
}
