package prop

import (
	"flag"
	"time"

	"github.com/google/uuid"

	"github.com/kestrel-labs/qcheck/gen"
	"github.com/kestrel-labs/qcheck/internal/telemetry"
)

// Config controls for_all and stateful runs. Construct one with
// Default() and chain the Set* builder methods — the zero Config is not
// directly usable since NumRuns/MinActions/MaxActions would be zero.
type Config struct {
	runID        string
	name         string
	seed         int64
	numRuns      int
	minActions   int
	maxActions   int
	verbosity    int
	onStartup    func()
	onCleanup    func()
	postCheck    func() error
	logger       telemetry.Logger
	loggerIsUser bool
}

// newRunID mints a fresh run identity. Default() calls it once per Config,
// and every for_all or stateful run made with that Config (or a copy
// derived from it by the Set* methods) carries the same ID, so failure
// reports from separately built Configs logged to the same sink (e.g. concurrent external test binaries) stay attributable
// to a human reading combined output, matching how medusa tags each
// fuzzing campaign with a UUID.
func newRunID() string {
	return uuid.NewString()
}

var (
	flagSeed      = flag.Int64("qcheck.seed", 0, "seed for property test generation (0 = derive from time)")
	flagNumRuns   = flag.Int("qcheck.runs", gen.DefaultNumRuns, "number of examples per for_all run")
	flagVerbosity = flag.Int("qcheck.verbosity", 0, "0=silent, 1=start and failure lines, 2=also the replay capsule")
)

// Default returns a Config seeded from qcheck.* command-line flags, with
// stateful action bounds at the spec's documented default of 1..100.
func Default() Config {
	runID := newRunID()
	return Config{
		seed:       *flagSeed,
		numRuns:    *flagNumRuns,
		minActions: 1,
		maxActions: gen.DefaultStatefulNumRuns,
		verbosity:  *flagVerbosity,
		runID:      runID,
		logger:     telemetry.NewSubLogger("prop").With().Str("run_id", runID).Logger(),
	}
}

// SetName tags this run with a property name, embedded in every failure's
// replay capsule (see EncodeReplay) so --replay knows which property a
// pasted capsule belongs to. Optional; an empty name still round-trips.
func (c Config) SetName(name string) Config { c.name = name; return c }

// SetSeed fixes the run's seed; zero means "derive one from the current
// time," which Config.EffectiveSeed resolves lazily so it's captured once
// per run, not once per process.
func (c Config) SetSeed(seed int64) Config { c.seed = seed; return c }

// SetNumRuns sets how many examples for_all draws. The spec's default is
// 200 for for_all and 100 for stateful sequences; Default() above applies
// the for_all default, and stateful callers should override it.
func (c Config) SetNumRuns(n int) Config { c.numRuns = n; return c }

// SetMinActions and SetMaxActions bound how many actions a stateful
// sequence draws, inclusive on both ends.
func (c Config) SetMinActions(n int) Config { c.minActions = n; return c }
func (c Config) SetMaxActions(n int) Config { c.maxActions = n; return c }

// SetVerbosity controls how much Config.Logger's consumers log per run.
// 0 is silent; 1 logs a start line and, on failure, a failure line for
// each for_all run; 2 also adds the replay capsule to the failure line.
// No level logs individual examples.
func (c Config) SetVerbosity(v int) Config { c.verbosity = v; return c }

// SetOnStartup and SetOnCleanup register hooks that fire before/after
// every sequence attempt in a stateful run, including replays during
// shrink. Hooks must be idempotent since shrinking replays them.
func (c Config) SetOnStartup(f func()) Config { c.onStartup = f; return c }
func (c Config) SetOnCleanup(f func()) Config { c.onCleanup = f; return c }

// SetPostCheck stores an invariant on the Config. Neither the ForAllN
// runners nor stateful.Run call it; a stateful run checks its final state
// through Harness.PostCheck instead.
func (c Config) SetPostCheck(f func() error) Config { c.postCheck = f; return c }

// SetLogger overrides the structured logger runs report through. Default()
// installs a no-op logger, so library consumers opt into logging
// explicitly rather than qcheck writing to stderr by default.
func (c Config) SetLogger(l telemetry.Logger) Config { c.logger = l; c.loggerIsUser = true; return c }

func (c Config) effectiveSeed() int64 {
	if c.seed != 0 {
		return c.seed
	}
	return time.Now().UnixNano()
}

func (c Config) log() telemetry.Logger { return c.logger }

// EffectiveSeed returns the seed this run will use: the configured seed if
// non-zero, otherwise one derived from the current time. Exported so other
// packages building on Config (e.g. stateful) can drive their own PRNG
// from the same run identity.
func (c Config) EffectiveSeed() int64 { return c.effectiveSeed() }

// NumRuns, MinActions and MaxActions expose the corresponding builder
// fields read-only, for packages that compose Config without duplicating
// its fields (e.g. stateful.Run).
func (c Config) NumRuns() int      { return c.numRuns }
func (c Config) MinActions() int   { return c.minActions }
func (c Config) MaxActions() int   { return c.maxActions }
func (c Config) Verbosity() int    { return c.verbosity }
func (c Config) OnStartup() func() { return c.onStartup }
func (c Config) OnCleanup() func() { return c.onCleanup }

// Logger exposes the configured structured logger.
func (c Config) Logger() telemetry.Logger { return c.logger }

// RunID returns this Config's run identity, attached to every failure
// report and log line this run produces.
func (c Config) RunID() string { return c.runID }

// Name returns this Config's property name, as set by SetName.
func (c Config) Name() string { return c.name }
