package prop

import (
	"fmt"
	"testing"
)

// Check runs a ForAllN-style call (anything returning the error protocol
// above) inside a *testing.T, translating a *PropertyFailure into a
// t.Fatalf carrying a replay seed, in the shape this module's teacher
// reported failures in.
func Check(t *testing.T, name string, run func() error) {
	t.Helper()
	t.Run(name, func(st *testing.T) {
		st.Helper()
		err := run()
		if err == nil {
			return
		}
		pf, ok := err.(*PropertyFailure)
		if !ok {
			st.Fatalf("[qcheck] %v", err)
			return
		}
		st.Fatalf("[qcheck] %s\nrun=%s seed=%d examples_run=%d shrunk_steps=%d\nreplay: go test -run %q -qcheck.seed=%d",
			FormatReport(pf), pf.RunID, pf.Seed, pf.ExamplesRun, pf.ShrinkSteps, fmt.Sprintf("^%s$", st.Name()), pf.Seed)
	})
}
