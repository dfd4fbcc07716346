// Package telemetry provides the structured sub-logger that prop.Default()
// builds each Config's logger from. Disabled by default — a library
// should never write to stderr unless its caller opts in — and scoped by
// component via NewSubLogger so log lines are grep-able by component.
package telemetry

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is this module's logger type, an alias for zerolog.Logger rather
// than a wrapper around it: zerolog vends its own loggers by value
// everywhere (New, With, NewSubLogger below), so a distinct wrapper type
// would just add a conversion at every call site for no behavior.
type Logger = zerolog.Logger

// Global is the root logger. It is disabled (zerolog.Disabled) until a
// caller installs a real level and writer via Configure.
var Global = zerolog.New(io.Discard).Level(zerolog.Disabled)

// Configure installs a new root logger writing to w at the given level.
// Calling it again replaces the previous root; sub-loggers obtained
// before the call keep their own frozen context and level.
func Configure(level zerolog.Level, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	Global = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// NewSubLogger returns a logger carrying component as a "module" field, so
// a component's log lines carry its identity without every call site
// having to repeat it. prop is the only caller in this module, with
// component "prop".
func NewSubLogger(component string) zerolog.Logger {
	return Global.With().Str("module", component).Logger()
}
