package prop

import (
	"github.com/kestrel-labs/qcheck/gen"
	"github.com/kestrel-labs/qcheck/rng"
	"github.com/kestrel-labs/qcheck/shrink"
)

// drawChecked runs g(r), converting the generation errors the gen and
// shrink packages signal by panicking (*gen.RetryExhausted, *gen.ConfigError,
// *shrink.FilterError) into a returned *GenerationError instead of letting
// them crash the run. Any other panic is not a generation error and
// propagates unchanged.
func drawChecked[T any](g gen.Generator[T], r *rng.Random) (s shrink.Shrinkable[T], err error) {
	defer func() {
		if rec := recover(); rec != nil {
			switch e := rec.(type) {
			case *gen.RetryExhausted:
				err = NewGenerationError(e.Op, e)
			case *gen.ConfigError:
				err = NewGenerationError("configure", e)
			case *shrink.FilterError:
				err = NewGenerationError(e.Predicate, e)
			default:
				panic(rec)
			}
		}
	}()
	return g(r), nil
}
