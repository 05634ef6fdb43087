package probability

import (
	"math"
	"math/big"
)

// SwissStanding is the expected player count at one final win/loss
// record of a Swiss event, with the integer bounds shown to users.
type SwissStanding struct {
	Wins          int
	Losses        int
	ExpectedCount float64
	LowerBound    int
	UpperBound    int
}

// SwissStandings returns the expected field distribution of a Swiss
// event, one entry per win count ordered from numRounds wins down to
// zero. Each round is modeled as an independent fair coin flip; real
// pairings by record skew the true distribution, but this idealized
// binomial model is the documented contract.
func (c *Calculator) SwissStandings(numPlayers, numRounds int) []SwissStanding {
	totalOutcomes := new(big.Int).Lsh(big.NewInt(1), uint(numRounds))

	standings := make([]SwissStanding, 0, numRounds+1)
	for wins := numRounds; wins >= 0; wins-- {
		p := ratio(c.Combinations(numRounds, wins), totalOutcomes)
		expected := p * float64(numPlayers)

		lower := int(math.Floor(expected))
		upper := int(math.Ceil(expected))
		if upper < lower {
			upper = lower
		}

		standings = append(standings, SwissStanding{
			Wins:          wins,
			Losses:        numRounds - wins,
			ExpectedCount: expected,
			LowerBound:    lower,
			UpperBound:    upper,
		})
	}

	return standings
}

// TopRankProbability estimates the chance that a player with the given
// partial record finishes ranked at or above targetRank, as a percentage
// rounded to two decimal places. A record longer than the event returns
// 0; a cutoff covering the whole field returns 100.
func (c *Calculator) TopRankProbability(totalPlayers, totalRounds, targetRank, currentWins, currentLosses int) float64 {
	remaining := totalRounds - (currentWins + currentLosses)
	if remaining < 0 {
		return 0
	}
	if targetRank >= totalPlayers {
		return 100
	}

	// Chance that a player at each final win count makes the cutoff.
	// When the cutoff lands inside a tied bucket, the bucket's players
	// share the remaining slots evenly.
	makesCut := make(map[int]float64, totalRounds+1)
	cumulative := 0.0
	for _, s := range c.SwissStandings(totalPlayers, totalRounds) {
		before := cumulative
		cumulative += s.ExpectedCount

		switch {
		case cumulative <= float64(targetRank):
			makesCut[s.Wins] = 1
		case before >= float64(targetRank):
			makesCut[s.Wins] = 0
		default:
			makesCut[s.Wins] = (float64(targetRank) - before) / s.ExpectedCount
		}
	}

	totalOutcomes := new(big.Int).Lsh(big.NewInt(1), uint(remaining))

	chance := 0.0
	for additional := 0; additional <= remaining; additional++ {
		weight := ratio(c.Combinations(remaining, additional), totalOutcomes)
		chance += weight * makesCut[currentWins+additional]
	}

	return math.Round(chance*100*100) / 100
}
