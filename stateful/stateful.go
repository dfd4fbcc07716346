// Package stateful runs generated sequences of actions against a live
// object and a reference model, failing and shrinking the same way prop
// does but over whole command sequences instead of single arguments.
package stateful

import (
	"github.com/kestrel-labs/qcheck/gen"
	"github.com/kestrel-labs/qcheck/rng"
	"github.com/kestrel-labs/qcheck/shrink"
)

// Action is a named transformation applied to both the system under test
// and its reference model. Unlike the source implementation (which
// mutates obj/model in place), Run returns the next (obj, model) pair so
// replay during shrink only needs the initial state and the action list —
// no aliasing between a live run and a shrink replay.
type Action[Obj, Model any] struct {
	Name string
	Run  func(obj Obj, model Model) (Obj, Model, error)
}

// SimpleAction is an Action that doesn't need the model, for systems
// tested without a reference model.
func SimpleAction[Obj any](name string, run func(obj Obj) (Obj, error)) Action[Obj, struct{}] {
	return Action[Obj, struct{}]{
		Name: name,
		Run: func(obj Obj, model struct{}) (Obj, struct{}, error) {
			next, err := run(obj)
			return next, model, err
		},
	}
}

// Sequence is a drawn, not-yet-executed list of actions alongside the
// initial object/model pair they'll run against.
type Sequence[Obj, Model any] struct {
	InitObj   Obj
	InitModel Model
	Actions   []Action[Obj, Model]
}

// Harness bundles everything needed to draw and run one sequence: an
// initial-state generator, a model factory, and an action factory that
// sees the live (obj, model) pair and produces the next action's
// generator.
type Harness[Obj, Model any] struct {
	InitialState func(r *rng.Random) shrink.Shrinkable[Obj]
	Model        func(Obj) Model
	NextAction   func(obj Obj, model Model) gen.Generator[Action[Obj, Model]]
	PreHook      func()
	PostHook     func()
	PostCheck    func(obj Obj, model Model) error
}

// Execute replays a concrete sequence (an initial object plus a fixed
// action list) against fresh model state, used by every shrink candidate
// check (the draw loop in Run uses drawShrinkable instead).
func (h Harness[Obj, Model]) Execute(initObj Obj, actions []Action[Obj, Model]) error {
	if h.PreHook != nil {
		h.PreHook()
	}
	defer func() {
		if h.PostHook != nil {
			h.PostHook()
		}
	}()
	obj := initObj
	model := h.Model(obj)
	for _, a := range actions {
		next, nextModel, err := a.Run(obj, model)
		if err != nil {
			return err
		}
		obj, model = next, nextModel
	}
	if h.PostCheck != nil {
		return h.PostCheck(obj, model)
	}
	return nil
}
