package probability

// DrawRow holds the odds of seeing a given number of copies of one card
// in the opening hand, both as an exact count and cumulatively.
type DrawRow struct {
	Copies         int
	ExactPercent   float64
	AtLeastPercent float64
}

// BuildDrawTable returns one row per possible copy count of a single
// target card, from zero up to min(targetCount, handSize). A target
// count of zero yields a single trivial row, never an error.
func (c *Calculator) BuildDrawTable(poolSize, targetCount, handSize int) []DrawRow {
	max := targetCount
	if handSize < max {
		max = handSize
	}

	rows := make([]DrawRow, 0, max+1)
	for copies := 0; copies <= max; copies++ {
		exact := c.SolveConstraints(poolSize, handSize, []Group{
			{CountInPool: targetCount, MinDesired: copies, MaxDesired: copies},
		})
		atLeast := c.SolveConstraints(poolSize, handSize, []Group{
			{CountInPool: targetCount, MinDesired: copies, MaxDesired: handSize},
		})
		rows = append(rows, DrawRow{
			Copies:         copies,
			ExactPercent:   exact,
			AtLeastPercent: atLeast,
		})
	}

	return rows
}
