package stateful

import (
	"fmt"

	"github.com/kestrel-labs/qcheck/prop"
	"github.com/kestrel-labs/qcheck/rng"
	"github.com/kestrel-labs/qcheck/shrink"
)

// Failure reports a stateful sequence that failed, plus the minimal
// (initial object, action list) shrinking found.
type Failure[Obj, Model any] struct {
	RunID       string
	Seed        int64
	SequenceRun int
	InitObj     Obj
	Actions     []Action[Obj, Model]
	Cause       error
}

func (f *Failure[Obj, Model]) Error() string {
	names := make([]string, len(f.Actions))
	for i, a := range f.Actions {
		names[i] = a.Name
	}
	return fmt.Sprintf("stateful: sequence failed (run=%s, seed=%d, actions=%v): %v", f.RunID, f.Seed, names, f.Cause)
}

func (f *Failure[Obj, Model]) Unwrap() error { return f.Cause }

// Run draws cfg.NumRuns() sequences of length in
// [cfg.MinActions(), cfg.MaxActions()] and executes each against h. The
// first sequence whose actions (or post-check) return a non-nil error is
// shrunk per §4.6 and returned as a *Failure.
func Run[Obj, Model any](cfg prop.Config, h Harness[Obj, Model]) error {
	if cfg.NumRuns() <= 0 {
		return &prop.ConfigurationError{Reason: "num_runs must be > 0"}
	}
	if cfg.MaxActions() < cfg.MinActions() {
		return &prop.ConfigurationError{Reason: "max_actions must be >= min_actions"}
	}
	if h.PreHook == nil {
		h.PreHook = cfg.OnStartup()
	}
	if h.PostHook == nil {
		h.PostHook = cfg.OnCleanup()
	}
	seed := cfg.EffectiveSeed()
	r := rng.NewFromSeed(seed)
	for i := 0; i < cfg.NumRuns(); i++ {
		saved := r.Clone()
		r.NextU64()
		n := int(saved.Interval(int64(cfg.MinActions()), int64(cfg.MaxActions())))
		initS, actionS, err := h.drawShrinkable(saved, n)
		if err == nil {
			continue
		}
		minInit, minActions, _ := shrinkSequence(h, initS, actionS)
		return &Failure[Obj, Model]{
			RunID:       cfg.RunID(),
			Seed:        seed,
			SequenceRun: i + 1,
			InitObj:     minInit,
			Actions:     minActions,
			Cause:       err,
		}
	}
	return nil
}

// drawShrinkable draws and runs one sequence of n actions between the
// harness's PreHook and PostHook, keeping each action's Shrinkable tree
// around (rather than collapsing to its .Value immediately) so the shrink
// procedure in shrink.go has something to shrink each action against.
func (h Harness[Obj, Model]) drawShrinkable(r *rng.Random, n int) (shrink.Shrinkable[Obj], []shrink.Shrinkable[Action[Obj, Model]], error) {
	if h.PreHook != nil {
		h.PreHook()
	}
	defer func() {
		if h.PostHook != nil {
			h.PostHook()
		}
	}()
	initS := h.InitialState(r)
	obj := initS.Value
	model := h.Model(obj)
	actionS := make([]shrink.Shrinkable[Action[Obj, Model]], 0, n)
	for j := 0; j < n; j++ {
		ag := h.NextAction(obj, model)
		as := ag(r)
		actionS = append(actionS, as)
		nextObj, nextModel, err := as.Value.Run(obj, model)
		if err != nil {
			return initS, actionS, err
		}
		obj, model = nextObj, nextModel
	}
	if h.PostCheck != nil {
		if err := h.PostCheck(obj, model); err != nil {
			return initS, actionS, err
		}
	}
	return initS, actionS, nil
}
