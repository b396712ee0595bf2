// Package growth: the absorbing-cap DP and the queries built on it.
//
// One referrer is a Markov chain over states 0..C = "successes so far",
// with C absorbing. All referrers are independent and identical, so the
// population's expected total is the single-referrer expectation scaled by
// N0 — linearity of expectation, no per-referrer bookkeeping.

package growth

// StepDistribution advances the single-referrer success distribution by one
// day. prev[k] is the probability of exactly k successes so far, for
// k in 0..cap where cap = len(prev)-1; p is the per-day success probability.
//
// Transitions: state 0 retains mass only on failure; each interior state k
// keeps (1−p)·prev[k] and gains p·prev[k−1]; the cap state keeps all its
// mass and gains p·prev[cap−1] (absorbing: inflow, no outflow).
//
// This is the DP kernel — it performs no validation; Simulate and
// DaysToTarget validate on behalf of their callers.
// Complexity: O(cap).
func StepDistribution(prev []float64, p float64) []float64 {
	limit := len(prev) - 1
	next := make([]float64, len(prev))
	if limit == 0 {
		// cap 0: the sole state is absorbing
		next[0] = prev[0]
		return next
	}

	next[0] = prev[0] * (1.0 - p)
	for k := 1; k < limit; k++ {
		next[k] = prev[k]*(1.0-p) + prev[k-1]*p
	}
	next[limit] = prev[limit] + prev[limit-1]*p

	return next
}

// Simulate returns the cumulative expected referral totals per day.
//
// The result has length days+1: index 0 is always 0 (no elapsed time), and
// index i is N0 × E[successes of one referrer after i days]. The sequence
// is non-decreasing and bounded above by N0 × C.
//
// Returns ErrInvalidProbability for p outside [0,1], ErrNegativeDays for
// days < 0, or ErrOptionViolation for bad options.
// Complexity: O(days × C) time, O(C) memory.
func Simulate(p float64, days int, opts ...Option) ([]float64, error) {
	o, err := apply(opts)
	if err != nil {
		return nil, err
	}
	if !(p >= 0.0 && p <= 1.0) { // written to reject NaN as well
		return nil, ErrInvalidProbability
	}
	if days < 0 {
		return nil, ErrNegativeDays
	}

	dist := freshDistribution(o.Capacity)
	out := make([]float64, days+1) // out[0] = 0
	for d := 1; d <= days; d++ {
		dist = StepDistribution(dist, p)
		out[d] = float64(o.InitialReferrers) * expectedSuccesses(dist)
	}

	return out, nil
}

// DaysToTarget returns the minimum day d with Simulate(p, d)[d] >= target.
//
// Outcomes:
//
//	(0, true, nil)  — target <= 0: already met before any activity
//	(d, true, nil)  — first day the cumulative expectation crosses target
//	(0, false, nil) — unreachable: target > N0×C, or p == 0 with a
//	                  positive target; a business outcome, not an error
//	(0, false, err) — invalid p or options
//
// The DP advances one day at a time and exits as soon as the target is
// crossed; no horizon needs to be chosen up front.
// Complexity: O(d × C) for the returned day d.
func DaysToTarget(p float64, target float64, opts ...Option) (int, bool, error) {
	o, err := apply(opts)
	if err != nil {
		return 0, false, err
	}
	if !(p >= 0.0 && p <= 1.0) {
		return 0, false, ErrInvalidProbability
	}
	if target <= 0 {
		return 0, true, nil
	}
	if target > float64(o.InitialReferrers)*float64(o.Capacity) {
		return 0, false, nil // provably unreachable at any horizon
	}
	if p == 0.0 {
		return 0, false, nil // no progress possible toward a positive target
	}

	dist := freshDistribution(o.Capacity)
	day := 0
	cum := 0.0
	for cum < target {
		day++
		dist = StepDistribution(dist, p)
		cum = float64(o.InitialReferrers) * expectedSuccesses(dist)
	}

	return day, true, nil
}

// freshDistribution builds the day-0 distribution: all mass on zero successes.
func freshDistribution(capacity int) []float64 {
	dist := make([]float64, capacity+1)
	dist[0] = 1.0

	return dist
}

// expectedSuccesses is the dot product of state index and state probability.
func expectedSuccesses(dist []float64) float64 {
	var e float64
	for k, prob := range dist {
		e += float64(k) * prob
	}

	return e
}
