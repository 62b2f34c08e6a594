package simulation

import (
	"slices"

	"github.com/signalnine/haikyu-sim/gosim/engine"
)

// Aggregate metric keys.
const (
	MetricAverageRallyLength = "average_rally_length"
	MetricMedianRallyLength  = "median_rally_length"
	MetricServerWinRate      = "server_win_rate"
	MetricSideoutRate        = "sideout_rate"
	MetricBlockAttemptRate   = "block_attempt_rate"
	MetricBlockSuccessRate   = "block_success_rate"
	MetricTwoTouchUsageRate  = "two_touch_usage_rate"
	MetricTwoTouchWinRate    = "two_touch_win_rate"
	MetricExhaustionEndRate  = "exhaustion_end_rate"
	MetricTeamAGameWinRate   = "team_a_game_win_rate"
	MetricReshufflesPerGame  = "average_reshuffles_per_game"
)

// Aggregate is the rate table of a run, keyed by metric name.
type Aggregate map[string]float64

// Keys returns the metric names in sorted order.
func (a Aggregate) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Counters accumulates raw rally and game counts. A game owns one while it
// plays; the runner merges them once each game has finished.
type Counters struct {
	RallyLengths []int `json:"-" yaml:"-"`

	ServerPoints  int `json:"server_points" yaml:"server_points"`
	SideoutPoints int `json:"sideout_points" yaml:"sideout_points"`

	BlockAttempts       int `json:"block_attempts" yaml:"block_attempts"`
	BlockSuccesses      int `json:"block_successes" yaml:"block_successes"`
	RalliesWithBlockTry int `json:"rallies_with_block_attempt" yaml:"rallies_with_block_attempt"`
	TwoTouchUsage       int `json:"two_touch_usage" yaml:"two_touch_usage"`
	TwoTouchWins        int `json:"two_touch_wins" yaml:"two_touch_wins"`
	ExhaustionEnds      int `json:"exhaustion_ends" yaml:"exhaustion_ends"`

	Games         int `json:"games" yaml:"games"`
	TeamAGameWins int `json:"team_a_game_wins" yaml:"team_a_game_wins"`
	Reshuffles    int `json:"reshuffles" yaml:"reshuffles"`
}

// Rallies is the number of rallies recorded.
func (c *Counters) Rallies() int { return len(c.RallyLengths) }

// TotalPoints is the number of points scored, one per rally.
func (c *Counters) TotalPoints() int { return c.ServerPoints + c.SideoutPoints }

// addRally records one finished rally.
func (c *Counters) addRally(res engine.RallyResult) {
	c.RallyLengths = append(c.RallyLengths, res.CardsPlayed)
	if res.Winner == res.Server {
		c.ServerPoints++
	} else {
		c.SideoutPoints++
	}
	c.BlockAttempts += res.BlockAttempts
	c.BlockSuccesses += res.BlockSuccesses
	if res.BlockAttempts > 0 {
		c.RalliesWithBlockTry++
	}
	if res.TwoTouchUsed() {
		c.TwoTouchUsage++
		if res.TwoTouchSide == res.Winner {
			c.TwoTouchWins++
		}
	}
	if res.Reason.IsExhaustion() {
		c.ExhaustionEnds++
	}
}

// Merge adds o into c.
func (c *Counters) Merge(o Counters) {
	c.RallyLengths = append(c.RallyLengths, o.RallyLengths...)
	c.ServerPoints += o.ServerPoints
	c.SideoutPoints += o.SideoutPoints
	c.BlockAttempts += o.BlockAttempts
	c.BlockSuccesses += o.BlockSuccesses
	c.RalliesWithBlockTry += o.RalliesWithBlockTry
	c.TwoTouchUsage += o.TwoTouchUsage
	c.TwoTouchWins += o.TwoTouchWins
	c.ExhaustionEnds += o.ExhaustionEnds
	c.Games += o.Games
	c.TeamAGameWins += o.TeamAGameWins
	c.Reshuffles += o.Reshuffles
}

// Aggregate computes the rate table. Every rate is 0 when its denominator
// is 0.
func (c *Counters) Aggregate() Aggregate {
	rallies := c.Rallies()
	points := c.TotalPoints()
	sum := 0
	for _, n := range c.RallyLengths {
		sum += n
	}

	return Aggregate{
		MetricAverageRallyLength: ratio(sum, rallies),
		MetricMedianRallyLength:  median(c.RallyLengths),
		MetricServerWinRate:      ratio(c.ServerPoints, points),
		MetricSideoutRate:        ratio(c.SideoutPoints, points),
		MetricBlockAttemptRate:   ratio(c.RalliesWithBlockTry, rallies),
		MetricBlockSuccessRate:   ratio(c.BlockSuccesses, c.BlockAttempts),
		MetricTwoTouchUsageRate:  ratio(c.TwoTouchUsage, rallies),
		MetricTwoTouchWinRate:    ratio(c.TwoTouchWins, c.TwoTouchUsage),
		MetricExhaustionEndRate:  ratio(c.ExhaustionEnds, rallies),
		MetricTeamAGameWinRate:   ratio(c.TeamAGameWins, c.Games),
		MetricReshufflesPerGame:  ratio(c.Reshuffles, c.Games),
	}
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// median returns the middle value, averaging the two middle values of an
// even-length slice.
func median(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return float64(sorted[mid-1]+sorted[mid]) / 2
	}
	return float64(sorted[mid])
}
