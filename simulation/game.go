package simulation

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/signalnine/haikyu-sim/gosim/config"
	"github.com/signalnine/haikyu-sim/gosim/engine"
)

// ErrGameOver is returned when a rally is requested after a team has won.
var ErrGameOver = errors.New("game is over")

// TeamNames are the team identities, indexed by side.
var TeamNames = [2]string{"A", "B"}

// RallyLog is the immutable record of one rally.
type RallyLog struct {
	GameID          int              `json:"game_id" yaml:"game_id"`
	RallyID         int              `json:"rally_id" yaml:"rally_id"`
	Server          string           `json:"server" yaml:"server"`
	CardsPlayed     int              `json:"cards_played" yaml:"cards_played"`
	Winner          string           `json:"winner" yaml:"winner"`
	EndReason       engine.EndReason `json:"end_reason" yaml:"end_reason"`
	BlockAttempted  bool             `json:"block_attempted" yaml:"block_attempted"`
	BlockSuccess    bool             `json:"block_success" yaml:"block_success"`
	TwoTouchUsedBy  string           `json:"two_touch_used_by,omitempty" yaml:"two_touch_used_by,omitempty"`
	TwoTouchStep    *engine.Step     `json:"two_touch_step,omitempty" yaml:"two_touch_step,omitempty"`
	TwoTouchSuccess *bool            `json:"two_touch_success,omitempty" yaml:"two_touch_success,omitempty"`
	StartHandSizes  map[string]int   `json:"start_hand_sizes" yaml:"start_hand_sizes"`
	EndHandSizes    map[string]int   `json:"end_hand_sizes" yaml:"end_hand_sizes"`
	Reshuffles      int              `json:"reshuffles" yaml:"reshuffles"`
}

// GameResult holds the outcome of a single game.
type GameResult struct {
	GameID     int    `json:"game_id" yaml:"game_id"`
	Seed       int64  `json:"seed" yaml:"seed"`
	Scores     [2]int `json:"scores" yaml:"scores"`
	Winner     string `json:"winner" yaml:"winner"`
	Rallies    int    `json:"rallies" yaml:"rallies"`
	Reshuffles int    `json:"reshuffles" yaml:"reshuffles"`

	Counters Counters   `json:"-" yaml:"-"`
	Logs     []RallyLog `json:"-" yaml:"-"`
}

// Game plays rallies between teams A and B until one reaches the winning
// score. It owns its random source, supply and hands, so games never share
// mutable state.
type Game struct {
	id        int
	seed      int64
	cfg       config.Config
	rules     engine.RallyRules
	handLimit int

	supply *engine.Supply
	teams  [2]engine.Team
	scores [2]int
	server int

	rallyID  int
	counters Counters
	logs     []RallyLog
}

// NewGame shuffles a fresh supply from seed and deals both hands. cfg is
// assumed to be validated.
func NewGame(cfg config.Config, id int, seed int64) (*Game, error) {
	kinds, err := cfg.Policies()
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))

	g := &Game{
		id:        id,
		seed:      seed,
		cfg:       cfg,
		rules:     cfg.RallyRules(),
		handLimit: cfg.TeamHandSize(),
		supply:    engine.NewSupply(cfg.IncludeSpecials, rng),
		server:    cfg.StartingServer,
	}
	for side, name := range TeamNames {
		policy, err := engine.NewPolicy(kinds[side], rng)
		if err != nil {
			return nil, err
		}
		g.teams[side] = engine.Team{Name: name, Policy: policy}
	}
	if err := g.replenish(); err != nil {
		return nil, fmt.Errorf("game %d: deal: %w", id, err)
	}
	return g, nil
}

// ID returns the game id.
func (g *Game) ID() int { return g.id }

// Over reports whether either team has reached the winning score.
func (g *Game) Over() bool {
	return max(g.scores[0], g.scores[1]) >= g.cfg.PointsToWin
}

// Scores returns the current score of teams A and B.
func (g *Game) Scores() [2]int { return g.scores }

// Server returns the side serving the next rally.
func (g *Game) Server() int { return g.server }

// HandSize returns the number of cards held by side.
func (g *Game) HandSize(side int) int { return g.teams[side].Hand.Len() }

// CardsAccounted counts every card of the game: draw pile, discard pile and
// both hands. It stays equal to the deck size for the whole game.
func (g *Game) CardsAccounted() int {
	return g.supply.Remaining() + g.supply.DiscardCount() + g.HandSize(engine.SideA) + g.HandSize(engine.SideB)
}

// PlayRally plays one point, scores it, rotates the serve and refills both
// hands.
func (g *Game) PlayRally() (RallyLog, error) {
	if g.Over() {
		return RallyLog{}, ErrGameOver
	}
	g.rallyID++

	res, err := engine.PlayRally(g.rules, g.supply, &g.teams, g.server)
	if err != nil {
		return RallyLog{}, fmt.Errorf("game %d rally %d: %w", g.id, g.rallyID, err)
	}

	g.scores[res.Winner]++
	g.counters.addRally(res)
	if res.Winner != g.server {
		g.server = res.Winner
	}

	log := g.rallyLog(res)
	if g.cfg.LogRallies {
		g.logs = append(g.logs, log)
	}

	if err := g.replenish(); err != nil {
		return log, fmt.Errorf("game %d rally %d: %w", g.id, g.rallyID, err)
	}
	return log, nil
}

// Play runs rallies until the game is over.
func (g *Game) Play() (GameResult, error) {
	for !g.Over() {
		if _, err := g.PlayRally(); err != nil {
			return GameResult{}, err
		}
	}
	return g.result(), nil
}

func (g *Game) result() GameResult {
	counters := g.counters
	counters.Games = 1
	if g.scores[engine.SideA] > g.scores[engine.SideB] {
		counters.TeamAGameWins = 1
	}
	counters.Reshuffles = g.supply.Reshuffles()

	winner := TeamNames[engine.SideB]
	if g.scores[engine.SideA] > g.scores[engine.SideB] {
		winner = TeamNames[engine.SideA]
	}
	return GameResult{
		GameID:     g.id,
		Seed:       g.seed,
		Scores:     g.scores,
		Winner:     winner,
		Rallies:    g.rallyID,
		Reshuffles: counters.Reshuffles,
		Counters:   counters,
		Logs:       g.logs,
	}
}

func (g *Game) rallyLog(res engine.RallyResult) RallyLog {
	log := RallyLog{
		GameID:         g.id,
		RallyID:        g.rallyID,
		Server:         TeamNames[res.Server],
		CardsPlayed:    res.CardsPlayed,
		Winner:         TeamNames[res.Winner],
		EndReason:      res.Reason,
		BlockAttempted: res.BlockAttempts > 0,
		BlockSuccess:   res.BlockSuccesses > 0,
		StartHandSizes: sizesByName(res.StartHands),
		EndHandSizes:   sizesByName(res.EndHands),
		Reshuffles:     g.supply.Reshuffles(),
	}
	if res.TwoTouchUsed() {
		won := res.TwoTouchSide == res.Winner
		log.TwoTouchUsedBy = TeamNames[res.TwoTouchSide]
		step := res.TwoTouchStep
		log.TwoTouchStep = &step
		log.TwoTouchSuccess = &won
	}
	return log
}

// replenish draws each team back up to the hand limit, A first.
func (g *Game) replenish() error {
	for side := range g.teams {
		hand := &g.teams[side].Hand
		for hand.Len() < g.handLimit {
			c, err := g.supply.Draw()
			if err != nil {
				return err
			}
			hand.Add(c)
		}
	}
	return nil
}

func sizesByName(sizes [2]int) map[string]int {
	return map[string]int{
		TeamNames[engine.SideA]: sizes[engine.SideA],
		TeamNames[engine.SideB]: sizes[engine.SideB],
	}
}
