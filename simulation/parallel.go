package simulation

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// runParallel plays games on a bounded pool of goroutines. Each game writes
// only its own slot, so results keep game order and match a serial run.
func (r *Runner) runParallel(ctx context.Context, logger *slog.Logger, seeds []int64) ([]GameResult, error) {
	results := make([]GameResult, len(seeds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, seed := range seeds {
		i, seed := i, seed
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := r.playGame(logger, i+1, seed)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// A cancelled run may have skipped games without any of them failing.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
