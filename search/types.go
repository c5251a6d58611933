// Package search defines the functional options and sentinel errors shared by
// the shortest-path and breadth-first engines.
package search

import (
	"errors"
	"log/slog"
)

// ErrBadMaxCost indicates that MaxCost was set to a negative value.
var ErrBadMaxCost = errors.New("search: MaxCost must be non-negative")

// Options configures a single engine run.
//
// Logger  – receives one debug record per run summarising the work done.
// MaxCost – states whose cost would exceed this value are never admitted.
//
//	0 disables the limit. Default is 0.
type Options struct {
	Logger  *slog.Logger
	MaxCost int
}

// Option represents a functional option for configuring an engine run.
type Option func(*Options)

// DefaultOptions returns the options used when no Option is supplied:
//   - Logger:  discards everything.
//   - MaxCost: 0 (no limit; explore the whole reachable component).
func DefaultOptions() Options {
	return Options{
		Logger:  slog.New(slog.DiscardHandler),
		MaxCost: 0,
	}
}

// WithLogger routes the per-run summary to logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithMaxCost stops admitting states whose cost from the start exceeds max.
//
//	max > 0:  limit to max steps
//	max == 0: explicit no limit
//	max < 0:  panics with ErrBadMaxCost
func WithMaxCost(max int) Option {
	return func(o *Options) {
		if max < 0 {
			// invalid configuration is a programming error
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// buildOptions applies opts on top of DefaultOptions.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// admits reports whether a state at the given cost may enter a frontier.
func (o Options) admits(cost int) bool {
	return o.MaxCost == 0 || cost <= o.MaxCost
}
