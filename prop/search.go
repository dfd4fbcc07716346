package prop

import "github.com/kestrel-labs/qcheck/shrink"

// arg erases a Shrinkable[T]'s type so the greedy search in runShrink can
// walk a heterogeneous list of arguments without reflection: only the
// predicate-dispatch layer (ForAll1..ForAll4) needs distinct generic
// overloads per the spec's design note; the search itself is untyped.
type arg interface {
	value() any
	children() []arg
}

type argBox[T any] struct {
	s shrink.Shrinkable[T]
}

func (b argBox[T]) value() any { return b.s.Value }

func (b argBox[T]) children() []arg {
	it := b.s.Shrinks().Iterator()
	var out []arg
	for {
		c, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, argBox[T]{s: c})
	}
	return out
}

// Arg wraps one generated Shrinkable as a search argument.
func Arg[T any](s shrink.Shrinkable[T]) arg { return argBox[T]{s: s} }

// runShrink implements §4.5's greedy, left-to-right, per-argument shrink
// search. check reports whether args (as a parallel []any of current
// values) still fails in a non-precondition way. It returns the minimal
// argument values found and the trace of accepted steps.
func runShrink(args []arg, check func(values []any) error) ([]any, []ShrinkStep) {
	values := make([]any, len(args))
	for i, a := range args {
		values[i] = a.value()
	}
	var trace []ShrinkStep
	for i := range args {
		candidates := args[i].children()
		for {
			found := false
			for _, c := range candidates {
				trial := append([]any(nil), values...)
				trial[i] = c.value()
				err := check(trial)
				if err != nil && !IsPrecondition(err) {
					values = trial
					args[i] = c
					trace = append(trace, ShrinkStep{ArgIndex: i, Args: append([]any(nil), values...)})
					candidates = c.children()
					found = true
					break
				}
			}
			if !found {
				break
			}
		}
	}
	return values, trace
}
