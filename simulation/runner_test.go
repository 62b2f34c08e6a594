package simulation

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalnine/haikyu-sim/gosim/config"
	"github.com/signalnine/haikyu-sim/gosim/engine"
)

func runReport(t *testing.T, cfg config.Config, opts ...Option) *Report {
	t.Helper()
	r, err := NewRunner(cfg, opts...)
	require.NoError(t, err)
	report, err := r.Run(context.Background())
	require.NoError(t, err)
	return report
}

func TestRunSinglePointExample(t *testing.T) {
	report := runReport(t, singlePointConfig())

	require.Len(t, report.RallyLogs, 1)
	log := report.RallyLogs[0]
	assert.GreaterOrEqual(t, log.CardsPlayed, 1)
	assert.LessOrEqual(t, log.CardsPlayed, 40)
	assert.Contains(t, []string{"A", "B"}, log.Winner)
	assert.Equal(t, int64(42), report.Seed)
	require.Len(t, report.Games, 1)
	assert.Equal(t, 1, report.Totals.Rallies())
}

func TestRunDeterministic(t *testing.T) {
	cfg := config.Default().WithSeed(2024)
	cfg.NumGames = 5
	cfg.BlockWindow = 1
	cfg.PolicyA = "random"

	a := runReport(t, cfg)
	b := runReport(t, cfg)

	assert.NotEqual(t, a.RunID, b.RunID)
	a.RunID, b.RunID = "", ""
	ja, err := json.Marshal(a)
	require.NoError(t, err)
	jb, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, string(ja), string(jb))
	assert.Equal(t, a.RallyLogs, b.RallyLogs)
}

func TestRunSeedsDiffer(t *testing.T) {
	cfg := config.Default()
	cfg.NumGames = 3
	a := runReport(t, cfg.WithSeed(1))
	b := runReport(t, cfg.WithSeed(2))
	assert.NotEqual(t, a.RallyLogs, b.RallyLogs)
}

func TestRunRecordsGeneratedSeed(t *testing.T) {
	cfg := config.Default()
	cfg.NumGames = 2
	report := runReport(t, cfg)

	require.NotNil(t, report.Config.Seed)
	assert.Equal(t, report.Seed, *report.Config.Seed)
	_, err := uuid.Parse(report.RunID)
	assert.NoError(t, err)

	replay := runReport(t, cfg.WithSeed(report.Seed))
	assert.Equal(t, report.RallyLogs, replay.RallyLogs)
}

func TestRunRallyIDsRestartPerGame(t *testing.T) {
	cfg := config.Default().WithSeed(8)
	cfg.NumGames = 3
	cfg.PointsToWin = 5
	report := runReport(t, cfg)

	game, want := 0, 0
	for _, log := range report.RallyLogs {
		if log.GameID != game {
			require.Equal(t, game+1, log.GameID, "games are logged in order")
			game, want = log.GameID, 1
		}
		assert.Equal(t, want, log.RallyID)
		want++
	}
	assert.Equal(t, 3, game)
}

func TestRunRateBounds(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		cfg := config.Default().WithSeed(seed)
		cfg.NumGames = 3
		cfg.BlockWindow = int(seed % 4)
		cfg.TwoTouchPenaltyEnabled = seed%2 == 0
		cfg.RallyCap = 5 + int(seed)*3
		report := runReport(t, cfg)

		for key, v := range report.Aggregate {
			assert.GreaterOrEqual(t, v, 0.0, key)
			switch key {
			case MetricAverageRallyLength, MetricMedianRallyLength, MetricReshufflesPerGame:
			default:
				assert.LessOrEqual(t, v, 1.0, key)
			}
		}
		assert.InDelta(t, 1.0, report.Aggregate[MetricServerWinRate]+report.Aggregate[MetricSideoutRate], 1e-9)
		assert.LessOrEqual(t, report.Aggregate[MetricAverageRallyLength], float64(cfg.RallyCap))
	}
}

func TestRunWithoutRallyLogs(t *testing.T) {
	cfg := config.Default().WithSeed(3)
	cfg.NumGames = 2
	cfg.LogRallies = false
	report := runReport(t, cfg)

	assert.Empty(t, report.RallyLogs)
	assert.NotNil(t, report.RallyLogs)
	assert.Positive(t, report.Aggregate[MetricAverageRallyLength])
}

func TestNewRunnerValidates(t *testing.T) {
	cfg := config.Default()
	cfg.PointsToWin = 0
	_, err := NewRunner(cfg)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestRunPropagatesExhaustion(t *testing.T) {
	cfg := config.Default().WithSeed(1)
	cfg.PlayersPerTeam = 6

	for _, workers := range []int{0, 3} {
		r, err := NewRunner(cfg, WithWorkers(workers))
		require.NoError(t, err)
		_, err = r.Run(context.Background())
		assert.ErrorIs(t, err, engine.ErrSupplyExhausted, "workers=%d", workers)
	}
}

func TestRunLogsProgress(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := config.Default().WithSeed(5)
	cfg.NumGames = 2
	report := runReport(t, cfg, WithLogger(logger))

	out := buf.String()
	assert.Contains(t, out, `"msg":"simulation started"`)
	assert.Contains(t, out, `"msg":"simulation finished"`)
	assert.Contains(t, out, `"run_id":"`+report.RunID+`"`)
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte(`"msg":"game finished"`)))
}

func TestGameSeeds(t *testing.T) {
	a := GameSeeds(7, 5)
	assert.Equal(t, a, GameSeeds(7, 5))
	assert.Equal(t, a[:3], GameSeeds(7, 3), "adding games keeps earlier seeds")
	assert.NotEqual(t, a, GameSeeds(8, 5))
}

func BenchmarkRunSerial(b *testing.B) {
	cfg := config.Default().WithSeed(1)
	cfg.NumGames = 20
	r, err := NewRunner(cfg)
	require.NoError(b, err)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Run(context.Background()); err != nil {
			b.Fatal(err)
		}
	}
}
