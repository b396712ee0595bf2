// Package incentive: the two-phase minimal-incentive search.
//
// The search composes two monotone maps — incentive → adoption probability
// (caller-supplied) and probability → expected hires (the growth simulator)
// — and therefore only ever needs bracketing plus bisection. Monotonicity
// is a precondition of the composition, not something verified here.

package incentive

import (
	"fmt"

	"github.com/nimesh0803/refnet/growth"
)

// maxDoublings bounds the exponential bracketing phase. It is a safety
// valve against a non-monotone or never-saturating adoption oracle, not a
// tuning knob.
const maxDoublings = 60

// searcher holds one search invocation's parameters; nothing survives
// between invocations.
type searcher struct {
	opts     Options
	adoption AdoptionFunc
	days     int
	simOpts  []growth.Option
}

// MinIncentiveForTarget finds the minimal incentive, as a non-negative
// multiple of the configured step, whose expected cumulative hires by the
// end of `days` meet `target` within the configured tolerance.
//
// Outcomes:
//
//	(b, true, nil)  — b is the smallest qualifying grid incentive
//	(0, true, nil)  — target <= 0: nothing to do, no oracle evaluation
//	(0, false, nil) — unreachable: target exceeds the hard ceiling
//	                  N0 × min(days, C), or the adoption response
//	                  saturates toward 1 while expected hires stay short,
//	                  or bracketing exhausts its iteration bound
//	(0, false, err) — nil adoption, negative inputs, or option violations
//
// Algorithm: short-circuits, a direct probe at incentive 0, exponential
// doubling of the grid-unit counter until the target is bracketed, then
// binary search for the smallest qualifying unit. O(log B) simulator calls
// for a bracket of B units, each O(days × C).
func MinIncentiveForTarget(days, target int, adoption AdoptionFunc, opts ...Option) (int, bool, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, false, o.err
	}
	if adoption == nil {
		return 0, false, ErrNilAdoption
	}
	if days < 0 {
		return 0, false, ErrNegativeDays
	}
	if target < 0 {
		return 0, false, ErrNegativeTarget
	}
	if target == 0 {
		return 0, true, nil
	}

	// Hard ceiling regardless of probability: each referrer produces at
	// most one hire per day and at most C in a lifetime.
	ceiling := o.InitialReferrers * min(days, o.Capacity)
	if target > ceiling {
		o.logf("target above hard ceiling", "target", target, "ceiling", ceiling)
		return 0, false, nil
	}

	s := &searcher{
		opts:     o,
		adoption: adoption,
		days:     days,
		simOpts: []growth.Option{
			growth.WithInitialReferrers(o.InitialReferrers),
			growth.WithCapacity(o.Capacity),
		},
	}

	return s.run(float64(target))
}

// run executes probe-zero, bracketing, and bisection against target.
func (s *searcher) run(target float64) (int, bool, error) {
	eps := s.opts.Epsilon

	// Phase 0: maybe no incentive is needed at all.
	v0, err := s.expectedAt(0)
	if err != nil {
		return 0, false, err
	}
	if v0+eps >= target {
		return 0, true, nil
	}

	// Phase 1: exponential search doubling the unit counter until the
	// simulated value meets the target.
	hi := 1
	hiVal, err := s.expectedAt(hi * s.opts.Step)
	if err != nil {
		return 0, false, err
	}
	for it := 0; hiVal+eps < target && it < maxDoublings; it++ {
		hi *= 2
		if hiVal, err = s.expectedAt(hi * s.opts.Step); err != nil {
			return 0, false, err
		}
		s.opts.logf("bracketing", "units", hi, "expected", hiVal, "target", target)

		// Saturation escape: the response is as good as certain adoption
		// yet the expectation still falls short — no incentive can help.
		if s.adoption(hi*s.opts.Step) >= 1.0-eps && hiVal+eps < target {
			s.opts.logf("adoption saturated below target", "units", hi, "expected", hiVal)
			return 0, false, nil
		}
	}
	if hiVal+eps < target {
		// Iteration bound exhausted without a bracket; same unreachable
		// outcome as saturation.
		s.opts.logf("failed to bracket", "units", hi, "expected", hiVal)
		return 0, false, nil
	}

	// Phase 2: binary search over [0, hi] units for the smallest unit
	// whose value meets the target within eps.
	lo := 0
	for lo < hi {
		mid := (lo + hi) / 2
		mVal, mErr := s.expectedAt(mid * s.opts.Step)
		if mErr != nil {
			return 0, false, mErr
		}
		if mVal+eps >= target {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	s.opts.logf("minimal incentive found", "incentive", lo*s.opts.Step)

	return lo * s.opts.Step, true, nil
}

// expectedAt evaluates the composed oracle: clamp the adoption response
// into [0,1], simulate, and read the final day's cumulative expectation.
func (s *searcher) expectedAt(bonus int) (float64, error) {
	p := s.adoption(bonus)
	if p < 0.0 {
		p = 0.0
	}
	if p > 1.0 {
		p = 1.0
	}

	res, err := growth.Simulate(p, s.days, s.simOpts...)
	if err != nil {
		return 0, fmt.Errorf("incentive: simulate at bonus %d: %w", bonus, err)
	}

	return res[s.days], nil
}

// logf emits a debug record when a logger is configured.
func (o *Options) logf(msg string, args ...any) {
	if o.Logger != nil {
		o.Logger.Debug(msg, args...)
	}
}
