// Package incentive provides tunable options and error definitions for the
// minimal-incentive search.
package incentive

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/nimesh0803/refnet/growth"
)

// Documented search defaults; override per call with options.
const (
	// DefaultStep is the incentive discretization step: incentives are
	// non-negative multiples of this amount.
	DefaultStep = 10

	// DefaultEpsilon is the numeric tolerance for "meets target" checks.
	DefaultEpsilon = 1e-3
)

// Sentinel errors for search execution.
var (
	// ErrNilAdoption is returned when no adoption function is supplied.
	ErrNilAdoption = errors.New("incentive: adoption function is nil")

	// ErrNegativeDays is returned when a negative day horizon is supplied.
	ErrNegativeDays = errors.New("incentive: days must be non-negative")

	// ErrNegativeTarget is returned when a negative hiring target is supplied.
	ErrNegativeTarget = errors.New("incentive: target must be non-negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("incentive: invalid option supplied")
)

// AdoptionFunc maps an incentive amount to an adoption probability in [0,1].
//
// The search requires it to be non-decreasing in the incentive. That
// precondition is documented, not enforced: the function is treated as a
// black-box oracle, and a non-monotone one yields meaningless results.
// Values slightly outside [0,1] are clamped defensively before simulation.
type AdoptionFunc func(incentive int) float64

// Option configures search behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the search runs.
type Option func(*Options)

// Options holds the parameters for one search call.
type Options struct {
	// Step is the incentive grid granularity; the result is a multiple of it.
	Step int

	// Epsilon is the tolerance used in every value-vs-target comparison
	// (value + Epsilon >= target) and in the saturation escape.
	Epsilon float64

	// InitialReferrers and Capacity are forwarded to the growth simulator.
	InitialReferrers int
	Capacity         int

	// Logger, when non-nil, receives debug records for each oracle probe.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the documented defaults:
// Step = DefaultStep, Epsilon = DefaultEpsilon, and the growth package's
// population defaults.
func DefaultOptions() Options {
	return Options{
		Step:             DefaultStep,
		Epsilon:          DefaultEpsilon,
		InitialReferrers: growth.DefaultInitialReferrers,
		Capacity:         growth.DefaultCapacity,
		Logger:           nil,
		err:              nil,
	}
}

// WithStep overrides the incentive discretization step.
//
//	s > 0:  use step s
//	s <= 0: invalid option → ErrOptionViolation
func WithStep(s int) Option {
	return func(o *Options) {
		if s <= 0 {
			o.err = fmt.Errorf("%w: Step must be positive (%d)", ErrOptionViolation, s)
			return
		}
		o.Step = s
	}
}

// WithEpsilon overrides the numeric tolerance.
//
//	eps >= 0: use tolerance eps
//	eps < 0:  invalid option → ErrOptionViolation
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 {
			o.err = fmt.Errorf("%w: Epsilon cannot be negative (%v)", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithInitialReferrers overrides the simulated population size N0.
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
func WithCapacity(c int) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: Capacity cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.Capacity = c
	}
}

// WithLogger attaches a structured logger for oracle-probe debugging.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
