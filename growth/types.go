// Package growth provides tunable options and error definitions for the
// expected-value growth simulator.
package growth

import (
	"errors"
	"fmt"
)

// Documented model defaults; override per call with options.
const (
	// DefaultInitialReferrers is the default active population size N0.
	DefaultInitialReferrers = 100

	// DefaultCapacity is the default per-referrer lifetime success cap C.
	DefaultCapacity = 10
)

// Sentinel errors for simulator execution.
var (
	// ErrInvalidProbability is returned when a probability lies outside [0,1].
	ErrInvalidProbability = errors.New("growth: probability must be within [0,1]")

	// ErrNegativeDays is returned when a negative day count is supplied.
	ErrNegativeDays = errors.New("growth: days must be non-negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("growth: invalid option supplied")
)

// Option configures simulator behavior via functional arguments.
// An invalid Option (e.g. negative population) is recorded internally and
// surfaced as ErrOptionViolation when the simulator runs.
type Option func(*Options)

// Options holds the model parameters for one simulator call.
type Options struct {
	// InitialReferrers is the population size N0: how many active
	// referrers exist on day 1. New hires never become referrers.
	InitialReferrers int

	// Capacity is the per-referrer success cap C. A referrer that has
	// accumulated C successes is absorbed and produces nothing further.
	Capacity int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the documented defaults:
// N0 = DefaultInitialReferrers, C = DefaultCapacity.
func DefaultOptions() Options {
	return Options{
		InitialReferrers: DefaultInitialReferrers,
		Capacity:         DefaultCapacity,
		err:              nil,
	}
}

// WithInitialReferrers overrides the population size N0.
//
//	n >= 0: use n referrers
//	n < 0:  invalid option → ErrOptionViolation
func WithInitialReferrers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: InitialReferrers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.InitialReferrers = n
	}
}

// WithCapacity overrides the per-referrer success cap C.
//
//	c >= 0: use cap c (c == 0 freezes every referrer immediately)
//	c < 0:  invalid option → ErrOptionViolation
func WithCapacity(c int) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: Capacity cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.Capacity = c
	}
}

// apply folds opts over the defaults and surfaces any recorded violation.
func apply(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
