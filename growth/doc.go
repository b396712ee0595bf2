// Package growth simulates referral-program growth as a closed-form
// expectation: a fixed population of identical referrers, each an absorbing
// Markov chain over accumulated successes, advanced one day at a time.
//
// What
//
//   - Simulate(p, days) — cumulative expected referral totals per day:
//     a slice of length days+1 whose index i holds
//     N0 × E[successes of one referrer after i days].
//   - DaysToTarget(p, target) — the first day the cumulative expectation
//     crosses target, with an explicit "unreachable" outcome.
//   - StepDistribution — the exposed DP kernel advancing a success
//     distribution by one day.
//
// Why
//
//	The model is deterministic: each referrer succeeds each day with
//	probability p until absorbed at C lifetime successes, and new hires
//	never become referrers. Because referrers are independent and
//	identical, the population total is one chain's expectation scaled by
//	N0 — no Monte Carlo sampling, no per-referrer state, and identical
//	results on every run.
//
// Model guarantees
//
//   - Simulate results are non-decreasing in the day index and, for a fixed
//     day, non-decreasing in p.
//   - Every value is bounded above by N0 × C.
//   - At p = 1 the model is exact: day i yields N0 × min(i, C).
//
// Defaults
//
//	N0 = 100 (DefaultInitialReferrers), C = 10 (DefaultCapacity); override
//	per call with WithInitialReferrers / WithCapacity.
//
// Complexity
//
//   - Simulate:     O(days × C) time, O(C) memory
//   - DaysToTarget: O(d × C) for the returned day d (early exit)
//
// Errors
//
//   - ErrInvalidProbability  if p lies outside [0,1].
//   - ErrNegativeDays        if days < 0.
//   - ErrOptionViolation     if an option is invalid (negative N0 or C).
//
// Unreachable targets are not errors: DaysToTarget reports them as a false
// second return, since unreachability is a valid business outcome.
package growth
