package simulation

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/signalnine/haikyu-sim/gosim/config"
)

// Report is the outcome of a simulation run.
type Report struct {
	RunID     string        `json:"run_id" yaml:"run_id"`
	Seed      int64         `json:"seed" yaml:"seed"`
	Config    config.Config `json:"config" yaml:"config"`
	Aggregate Aggregate     `json:"aggregate" yaml:"aggregate"`
	Totals    Counters      `json:"totals" yaml:"totals"`
	Games     []GameResult  `json:"games" yaml:"games"`
	RallyLogs []RallyLog    `json:"rally_logs" yaml:"rally_logs"`
}

// Runner plays a configured number of independent games.
type Runner struct {
	cfg     config.Config
	logger  *slog.Logger
	workers int
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger for run and game progress.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithWorkers overrides the configured number of parallel workers. Zero or
// one runs games serially.
func WithWorkers(n int) Option {
	return func(r *Runner) { r.workers = n }
}

// NewRunner validates cfg and builds a runner for it.
func NewRunner(cfg config.Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{
		cfg:     cfg,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		workers: cfg.Workers,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Run plays every game and aggregates the results in game order. Without a
// configured seed a random one is drawn and recorded in the report.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	seed, err := r.runSeed()
	if err != nil {
		return nil, err
	}
	runID := uuid.NewString()
	logger := r.logger.With("run_id", runID)
	seeds := GameSeeds(seed, r.cfg.NumGames)

	logger.Info("simulation started",
		"seed", seed,
		"games", r.cfg.NumGames,
		"workers", max(r.workers, 1),
	)
	start := time.Now()

	var results []GameResult
	if r.workers > 1 {
		results, err = r.runParallel(ctx, logger, seeds)
	} else {
		results, err = r.runSerial(ctx, logger, seeds)
	}
	if err != nil {
		logger.Error("simulation failed", "error", err)
		return nil, err
	}

	report := &Report{
		RunID:     runID,
		Seed:      seed,
		Config:    r.cfg.WithSeed(seed),
		Games:     results,
		RallyLogs: []RallyLog{},
	}
	for _, res := range results {
		report.Totals.Merge(res.Counters)
		report.RallyLogs = append(report.RallyLogs, res.Logs...)
	}
	report.Aggregate = report.Totals.Aggregate()

	logger.Info("simulation finished",
		"games", report.Totals.Games,
		"rallies", report.Totals.Rallies(),
		"elapsed", time.Since(start),
	)
	return report, nil
}

func (r *Runner) runSeed() (int64, error) {
	if r.cfg.Seed != nil {
		return *r.cfg.Seed, nil
	}
	return NewSeed()
}

func (r *Runner) runSerial(ctx context.Context, logger *slog.Logger, seeds []int64) ([]GameResult, error) {
	results := make([]GameResult, len(seeds))
	for i, seed := range seeds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := r.playGame(logger, i+1, seed)
		if err != nil {
			return nil, err
		}
		results[i] = res
	}
	return results, nil
}

// playGame plays game id to completion.
func (r *Runner) playGame(logger *slog.Logger, id int, seed int64) (GameResult, error) {
	g, err := NewGame(r.cfg, id, seed)
	if err != nil {
		return GameResult{}, err
	}
	res, err := g.Play()
	if err != nil {
		return GameResult{}, err
	}
	logger.Debug("game finished",
		"game_id", id,
		"score_a", res.Scores[0],
		"score_b", res.Scores[1],
		"rallies", res.Rallies,
		"reshuffles", res.Reshuffles,
	)
	return res, nil
}
