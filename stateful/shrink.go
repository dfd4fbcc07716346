package stateful

import "github.com/kestrel-labs/qcheck/shrink"

// shrinkSequence implements §4.6's three-phase shrink: sequence length by
// binary prefix/suffix truncation, then each surviving action individually
// (earliest first), then the initial state, replaying the whole sequence
// at every candidate.
func shrinkSequence[Obj, Model any](h Harness[Obj, Model], initS shrink.Shrinkable[Obj], actionS []shrink.Shrinkable[Action[Obj, Model]]) (Obj, []Action[Obj, Model], bool) {
	initObj := initS.Value

	stillFails := func(obj Obj, actions []Action[Obj, Model]) bool {
		return h.Execute(obj, actions) != nil
	}

	actionS = shrinkLength(initObj, actionS, stillFails)
	actionS = shrinkActions(initObj, actionS, stillFails)
	initS, actionS = shrinkInitialState(initS, actionS, stillFails)

	actions := make([]Action[Obj, Model], len(actionS))
	for i, as := range actionS {
		actions[i] = as.Value
	}
	return initS.Value, actions, true
}

// shrinkLength tries removing contiguous runs of length n/2, n/4, ..., 1
// from the end and then from the start of the sequence — a prefix/suffix
// binary truncation, same halving policy the array shrinker uses for
// containers — keeping the first shorter sequence still found to fail and
// repeating until no removal keeps it failing.
func shrinkLength[Obj, Model any](initObj Obj, actionS []shrink.Shrinkable[Action[Obj, Model]], stillFails func(Obj, []Action[Obj, Model]) bool) []shrink.Shrinkable[Action[Obj, Model]] {
	cur := actionS
	for {
		n := len(cur)
		if n == 0 {
			return cur
		}
		reduced := false
		for k := n / 2; k >= 1; k /= 2 {
			if candidate := cur[:n-k]; stillFails(initObj, valuesOf(candidate)) {
				cur = candidate
				reduced = true
				break
			}
			if candidate := cur[k:]; stillFails(initObj, valuesOf(candidate)) {
				cur = candidate
				reduced = true
				break
			}
		}
		if !reduced {
			return cur
		}
	}
}

// shrinkActions greedily shrinks each surviving action's own generated
// Shrinkable, earliest index first, keeping whichever candidate keeps the
// sequence failing.
func shrinkActions[Obj, Model any](initObj Obj, actionS []shrink.Shrinkable[Action[Obj, Model]], stillFails func(Obj, []Action[Obj, Model]) bool) []shrink.Shrinkable[Action[Obj, Model]] {
	cur := append([]shrink.Shrinkable[Action[Obj, Model]]{}, actionS...)
	for i := range cur {
		for {
			it := cur[i].Shrinks().Iterator()
			found := false
			for {
				c, ok := it.Next()
				if !ok {
					break
				}
				trial := append([]shrink.Shrinkable[Action[Obj, Model]]{}, cur...)
				trial[i] = c
				if stillFails(initObj, valuesOf(trial)) {
					cur = trial
					found = true
					break
				}
			}
			if !found {
				break
			}
		}
	}
	return cur
}

// shrinkInitialState shrinks the initial object last, replaying the
// already-shrunk action list against each candidate initial state.
func shrinkInitialState[Obj, Model any](initS shrink.Shrinkable[Obj], actionS []shrink.Shrinkable[Action[Obj, Model]], stillFails func(Obj, []Action[Obj, Model]) bool) (shrink.Shrinkable[Obj], []shrink.Shrinkable[Action[Obj, Model]]) {
	cur := initS
	actions := valuesOf(actionS)
	for {
		it := cur.Shrinks().Iterator()
		found := false
		for {
			c, ok := it.Next()
			if !ok {
				break
			}
			if stillFails(c.Value, actions) {
				cur = c
				found = true
				break
			}
		}
		if !found {
			break
		}
	}
	return cur, actionS
}

func valuesOf[Obj, Model any](actionS []shrink.Shrinkable[Action[Obj, Model]]) []Action[Obj, Model] {
	out := make([]Action[Obj, Model], len(actionS))
	for i, as := range actionS {
		out[i] = as.Value
	}
	return out
}
