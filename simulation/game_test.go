package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalnine/haikyu-sim/gosim/config"
	"github.com/signalnine/haikyu-sim/gosim/engine"
)

func singlePointConfig() config.Config {
	cfg := config.Default()
	cfg.NumGames = 1
	cfg.PointsToWin = 1
	cfg.PlayersPerTeam = 1
	return cfg.WithSeed(42)
}

func TestNewGameDealsBothHands(t *testing.T) {
	cfg := config.Default()
	g, err := NewGame(cfg, 1, 7)
	require.NoError(t, err)

	assert.Equal(t, 15, g.HandSize(engine.SideA))
	assert.Equal(t, 15, g.HandSize(engine.SideB))
	assert.Equal(t, engine.DeckSize(false), g.CardsAccounted())
	assert.Equal(t, [2]int{0, 0}, g.Scores())
	assert.Equal(t, engine.SideA, g.Server())
	assert.False(t, g.Over())
}

func TestGameSinglePoint(t *testing.T) {
	cfg := singlePointConfig()
	g, err := NewGame(cfg, 1, *cfg.Seed)
	require.NoError(t, err)

	res, err := g.Play()
	require.NoError(t, err)

	require.Len(t, res.Logs, 1)
	log := res.Logs[0]
	assert.Equal(t, 1, log.RallyID)
	assert.Equal(t, "A", log.Server)
	assert.GreaterOrEqual(t, log.CardsPlayed, 1)
	assert.LessOrEqual(t, log.CardsPlayed, 40)
	assert.Contains(t, []string{"A", "B"}, log.Winner)
	assert.Equal(t, log.Winner, res.Winner)
	assert.Equal(t, 1, res.Scores[0]+res.Scores[1])
	assert.Equal(t, map[string]int{"A": 5, "B": 5}, log.StartHandSizes)
	assert.True(t, g.Over())

	_, err = g.PlayRally()
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestGameServeRotation(t *testing.T) {
	cfg := config.Default()
	cfg.PointsToWin = 15
	g, err := NewGame(cfg, 1, 11)
	require.NoError(t, err)

	sideouts := 0
	for !g.Over() {
		server := g.Server()
		log, err := g.PlayRally()
		require.NoError(t, err)

		assert.Equal(t, TeamNames[server], log.Server)
		winner := engine.SideA
		if log.Winner == "B" {
			winner = engine.SideB
		}
		assert.Equal(t, winner, g.Server(), "the rally winner serves next")
		if winner != server {
			sideouts++
		}
	}
	res := g.result()
	assert.Equal(t, sideouts, res.Counters.SideoutPoints)
	assert.Equal(t, res.Rallies, res.Counters.ServerPoints+res.Counters.SideoutPoints)
	assert.Equal(t, 15, max(res.Scores[0], res.Scores[1]))
}

func TestGameStartingServer(t *testing.T) {
	cfg := singlePointConfig()
	cfg.StartingServer = engine.SideB
	g, err := NewGame(cfg, 1, 3)
	require.NoError(t, err)

	log, err := g.PlayRally()
	require.NoError(t, err)
	assert.Equal(t, "B", log.Server)
}

// Hands are refilled after every rally and no card is ever created or lost.
func TestGameCardConservation(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		cfg := config.Default()
		cfg.IncludeSpecials = seed%2 == 0
		cfg.BlockWindow = int(seed % 3)
		cfg.PolicyB = "random"
		total := engine.DeckSize(cfg.IncludeSpecials)

		g, err := NewGame(cfg, 1, seed)
		require.NoError(t, err)
		for !g.Over() {
			log, err := g.PlayRally()
			require.NoError(t, err, "seed %d", seed)
			require.Equal(t, total, g.CardsAccounted(), "seed %d rally %d", seed, log.RallyID)
			require.Equal(t, cfg.TeamHandSize(), g.HandSize(engine.SideA))
			require.Equal(t, cfg.TeamHandSize(), g.HandSize(engine.SideB))
			require.LessOrEqual(t, log.CardsPlayed, cfg.RallyCap)
		}
	}
}

func TestGameReshufflesAreLogged(t *testing.T) {
	cfg := config.Default()
	g, err := NewGame(cfg, 1, 5)
	require.NoError(t, err)
	res, err := g.Play()
	require.NoError(t, err)

	// 25+ points at one card or more each cycles a 52-card deck with 30 in hand.
	require.NotEmpty(t, res.Logs)
	assert.Positive(t, res.Reshuffles)
	last := 0
	for _, log := range res.Logs {
		assert.GreaterOrEqual(t, log.Reshuffles, last)
		last = log.Reshuffles
	}
}

func TestGameHandsLargerThanDeck(t *testing.T) {
	cfg := config.Default()
	cfg.PlayersPerTeam = 6
	_, err := NewGame(cfg, 1, 1)
	assert.ErrorIs(t, err, engine.ErrSupplyExhausted)
}

func TestGameWithoutRallyLogs(t *testing.T) {
	cfg := singlePointConfig()
	cfg.LogRallies = false
	g, err := NewGame(cfg, 1, 42)
	require.NoError(t, err)

	res, err := g.Play()
	require.NoError(t, err)
	assert.Empty(t, res.Logs)
	assert.Equal(t, 1, res.Counters.Rallies())
}

func TestRallyLogTwoTouchFields(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g, err := NewGame(config.Default(), 1, seed)
		require.NoError(t, err)
		res, err := g.Play()
		require.NoError(t, err)

		for _, log := range res.Logs {
			if log.TwoTouchUsedBy == "" {
				assert.Nil(t, log.TwoTouchSuccess)
				assert.Nil(t, log.TwoTouchStep)
				continue
			}
			require.NotNil(t, log.TwoTouchSuccess)
			assert.Equal(t, log.TwoTouchUsedBy == log.Winner, *log.TwoTouchSuccess)
			require.NotNil(t, log.TwoTouchStep)
			assert.Contains(t, []engine.Step{engine.StepReception, engine.StepPass}, *log.TwoTouchStep)
		}
	}
}
