package prop

import (
	"github.com/pkg/errors"

	"github.com/kestrel-labs/qcheck/gen"
	"github.com/kestrel-labs/qcheck/rng"
)

// tooManyPreconditions reports the spec's "too many preconditions"
// threshold: skips at or above half of num_runs overwhelm the run. Picking
// exactly 50% resolves the spec's own noted inconsistency (some source
// variants use 50%, others 100%) toward the stricter of the two.
func tooManyPreconditions(skips, numRuns int) bool {
	if numRuns <= 0 {
		return false
	}
	return skips*2 >= numRuns
}

func tooManyPreconditionsFailure(cfg Config, seed int64, numRuns int) error {
	return &PropertyFailure{
		RunID:         cfg.runID,
		ReplayCapsule: EncodeReplay(cfg.name, seed),
		Seed:          seed,
		ExamplesRun:   numRuns,
		Cause:         errors.New("too many preconditions"),
	}
}

func logRunStart(cfg Config, seed int64) {
	if cfg.verbosity >= 1 {
		cfg.log().Info().Int64("seed", seed).Int("num_runs", cfg.numRuns).Msg("for_all start")
	}
}

func logRunFailure(cfg Config, err error) {
	if cfg.verbosity < 1 {
		return
	}
	event := cfg.log().Warn().Err(err)
	if cfg.verbosity >= 2 {
		if pf, ok := err.(*PropertyFailure); ok {
			event = event.Str("replay", pf.ReplayCapsule)
		}
	}
	event.Msg("for_all failed")
}

// ForAll1 draws num_runs values from g and checks predicate against each,
// shrinking the first non-precondition failure to a local minimum.
func ForAll1[A any](cfg Config, g gen.Generator[A], predicate func(A) error) error {
	if cfg.numRuns <= 0 {
		return &ConfigurationError{Reason: "num_runs must be > 0"}
	}
	seed := cfg.effectiveSeed()
	r := rng.NewFromSeed(seed)
	logRunStart(cfg, seed)
	skips := 0
	for i := 0; i < cfg.numRuns; i++ {
		saved := r.Clone()
		r.NextU64()
		sa, genErr := drawChecked(g, saved)
		if genErr != nil {
			return genErr
		}
		err := predicate(sa.Value)
		if err == nil {
			continue
		}
		if IsPrecondition(err) {
			skips++
			continue
		}
		args := []arg{Arg(sa)}
		minArgs, trace := runShrink(args, func(v []any) error { return predicate(v[0].(A)) })
		failure := &PropertyFailure{RunID: cfg.runID, ReplayCapsule: EncodeReplay(cfg.name, seed), Seed: seed, ExamplesRun: i + 1, ShrinkSteps: len(trace), Args: minArgs, Cause: err, Trace: trace}
		logRunFailure(cfg, failure)
		return failure
	}
	if tooManyPreconditions(skips, cfg.numRuns) {
		return tooManyPreconditionsFailure(cfg, seed, cfg.numRuns)
	}
	return nil
}

// ForAll2 is ForAll1 generalized to two independently-shrinking arguments.
func ForAll2[A, B any](cfg Config, ga gen.Generator[A], gb gen.Generator[B], predicate func(A, B) error) error {
	if cfg.numRuns <= 0 {
		return &ConfigurationError{Reason: "num_runs must be > 0"}
	}
	seed := cfg.effectiveSeed()
	r := rng.NewFromSeed(seed)
	logRunStart(cfg, seed)
	skips := 0
	for i := 0; i < cfg.numRuns; i++ {
		saved := r.Clone()
		r.NextU64()
		sa, genErr := drawChecked(ga, saved)
		if genErr != nil {
			return genErr
		}
		sb, genErr := drawChecked(gb, saved)
		if genErr != nil {
			return genErr
		}
		err := predicate(sa.Value, sb.Value)
		if err == nil {
			continue
		}
		if IsPrecondition(err) {
			skips++
			continue
		}
		args := []arg{Arg(sa), Arg(sb)}
		minArgs, trace := runShrink(args, func(v []any) error { return predicate(v[0].(A), v[1].(B)) })
		failure := &PropertyFailure{RunID: cfg.runID, ReplayCapsule: EncodeReplay(cfg.name, seed), Seed: seed, ExamplesRun: i + 1, ShrinkSteps: len(trace), Args: minArgs, Cause: err, Trace: trace}
		logRunFailure(cfg, failure)
		return failure
	}
	if tooManyPreconditions(skips, cfg.numRuns) {
		return tooManyPreconditionsFailure(cfg, seed, cfg.numRuns)
	}
	return nil
}

// ForAll3 generalizes ForAll1 to three arguments.
func ForAll3[A, B, C any](cfg Config, ga gen.Generator[A], gb gen.Generator[B], gc gen.Generator[C], predicate func(A, B, C) error) error {
	if cfg.numRuns <= 0 {
		return &ConfigurationError{Reason: "num_runs must be > 0"}
	}
	seed := cfg.effectiveSeed()
	r := rng.NewFromSeed(seed)
	logRunStart(cfg, seed)
	skips := 0
	for i := 0; i < cfg.numRuns; i++ {
		saved := r.Clone()
		r.NextU64()
		sa, genErr := drawChecked(ga, saved)
		if genErr != nil {
			return genErr
		}
		sb, genErr := drawChecked(gb, saved)
		if genErr != nil {
			return genErr
		}
		sc, genErr := drawChecked(gc, saved)
		if genErr != nil {
			return genErr
		}
		err := predicate(sa.Value, sb.Value, sc.Value)
		if err == nil {
			continue
		}
		if IsPrecondition(err) {
			skips++
			continue
		}
		args := []arg{Arg(sa), Arg(sb), Arg(sc)}
		minArgs, trace := runShrink(args, func(v []any) error { return predicate(v[0].(A), v[1].(B), v[2].(C)) })
		failure := &PropertyFailure{RunID: cfg.runID, ReplayCapsule: EncodeReplay(cfg.name, seed), Seed: seed, ExamplesRun: i + 1, ShrinkSteps: len(trace), Args: minArgs, Cause: err, Trace: trace}
		logRunFailure(cfg, failure)
		return failure
	}
	if tooManyPreconditions(skips, cfg.numRuns) {
		return tooManyPreconditionsFailure(cfg, seed, cfg.numRuns)
	}
	return nil
}

// ForAll4 generalizes ForAll1 to four arguments.
func ForAll4[A, B, C, D any](cfg Config, ga gen.Generator[A], gb gen.Generator[B], gc gen.Generator[C], gd gen.Generator[D], predicate func(A, B, C, D) error) error {
	if cfg.numRuns <= 0 {
		return &ConfigurationError{Reason: "num_runs must be > 0"}
	}
	seed := cfg.effectiveSeed()
	r := rng.NewFromSeed(seed)
	logRunStart(cfg, seed)
	skips := 0
	for i := 0; i < cfg.numRuns; i++ {
		saved := r.Clone()
		r.NextU64()
		sa, genErr := drawChecked(ga, saved)
		if genErr != nil {
			return genErr
		}
		sb, genErr := drawChecked(gb, saved)
		if genErr != nil {
			return genErr
		}
		sc, genErr := drawChecked(gc, saved)
		if genErr != nil {
			return genErr
		}
		sd, genErr := drawChecked(gd, saved)
		if genErr != nil {
			return genErr
		}
		err := predicate(sa.Value, sb.Value, sc.Value, sd.Value)
		if err == nil {
			continue
		}
		if IsPrecondition(err) {
			skips++
			continue
		}
		args := []arg{Arg(sa), Arg(sb), Arg(sc), Arg(sd)}
		minArgs, trace := runShrink(args, func(v []any) error {
			return predicate(v[0].(A), v[1].(B), v[2].(C), v[3].(D))
		})
		failure := &PropertyFailure{RunID: cfg.runID, ReplayCapsule: EncodeReplay(cfg.name, seed), Seed: seed, ExamplesRun: i + 1, ShrinkSteps: len(trace), Args: minArgs, Cause: err, Trace: trace}
		logRunFailure(cfg, failure)
		return failure
	}
	if tooManyPreconditions(skips, cfg.numRuns) {
		return tooManyPreconditionsFailure(cfg, seed, cfg.numRuns)
	}
	return nil
}

// FromBool adapts a bool-returning predicate (the "truthy/falsy" form the
// spec also allows) into the error-returning form ForAll1 expects. It
// takes one argument only; ForAll2 and wider need an error-returning
// predicate directly.
func FromBool[A any](f func(A) bool) func(A) error {
	return func(a A) error {
		if f(a) {
			return nil
		}
		return errors.Errorf("property false for %s", FormatValue(a))
	}
}

// Example1 checks predicate against one concrete value directly — no
// generation, no shrink. A precondition skip is treated as a vacuous pass,
// since there is no population of other inputs to fall back to.
func Example1[A any](predicate func(A) error, a A) error {
	err := predicate(a)
	if err == nil || IsPrecondition(err) {
		return nil
	}
	return &PropertyFailure{Args: []any{a}, Cause: err}
}

// Example2 checks predicate against two concrete values directly.
func Example2[A, B any](predicate func(A, B) error, a A, b B) error {
	err := predicate(a, b)
	if err == nil || IsPrecondition(err) {
		return nil
	}
	return &PropertyFailure{Args: []any{a, b}, Cause: err}
}
