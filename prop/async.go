package prop

import (
	"context"

	"github.com/kestrel-labs/qcheck/gen"
	"github.com/kestrel-labs/qcheck/rng"
)

// ForAll1Async mirrors ForAll1 for a predicate whose result must be
// awaited: the predicate itself blocks on ctx, but iterations still run
// strictly sequentially (§5: no intra-run parallelism), so the shrink
// search below can reuse runShrink unchanged.
func ForAll1Async[A any](ctx context.Context, cfg Config, g gen.Generator[A], predicate func(context.Context, A) error) error {
	if cfg.numRuns <= 0 {
		return &ConfigurationError{Reason: "num_runs must be > 0"}
	}
	seed := cfg.effectiveSeed()
	r := rng.NewFromSeed(seed)
	skips := 0
	for i := 0; i < cfg.numRuns; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		saved := r.Clone()
		r.NextU64()
		sa, genErr := drawChecked(g, saved)
		if genErr != nil {
			return genErr
		}
		err := predicate(ctx, sa.Value)
		if err == nil {
			continue
		}
		if IsPrecondition(err) {
			skips++
			continue
		}
		args := []arg{Arg(sa)}
		minArgs, trace := runShrink(args, func(v []any) error { return predicate(ctx, v[0].(A)) })
		failure := &PropertyFailure{RunID: cfg.runID, ReplayCapsule: EncodeReplay(cfg.name, seed), Seed: seed, ExamplesRun: i + 1, ShrinkSteps: len(trace), Args: minArgs, Cause: err, Trace: trace}
		logRunFailure(cfg, failure)
		return failure
	}
	if tooManyPreconditions(skips, cfg.numRuns) {
		return tooManyPreconditionsFailure(cfg, seed, cfg.numRuns)
	}
	return nil
}
