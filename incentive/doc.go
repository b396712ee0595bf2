// Package incentive finds the minimal referral bonus meeting a hiring
// target, treating the caller's adoption-probability response and the
// growth simulator as one composed monotone oracle.
//
// What
//
//	MinIncentiveForTarget(days, target, adoption) answers: what is the
//	smallest bonus — a non-negative multiple of the step grid (default
//	$10) — such that the expected cumulative hires by the end of `days`
//	reach `target`? Unreachable targets are reported as an explicit
//	outcome, never as an error.
//
// How
//
//  1. Short-circuit: target <= 0 costs nothing; a target above the hard
//     ceiling N0 × min(days, C) is unreachable at any price.
//  2. Probe incentive 0 directly.
//  3. Exponential search: double a grid-unit counter until the simulated
//     value meets the target. Two escapes end the phase early as
//     "unreachable": the adoption response is within epsilon of certain
//     (≥ 1 − eps) while the value still falls short, or 60 doublings pass
//     without a bracket.
//  4. Binary search the bracketed unit range for the smallest unit whose
//     value meets the target within epsilon; return unit × step.
//
// Preconditions
//
//	Both composed maps must be non-decreasing: adoption in the incentive,
//	and expected hires in the probability (the simulator guarantees the
//	latter). Monotonicity of the adoption function is the caller's
//	responsibility and is not verified.
//
// Numeric semantics
//
//	Every "meets target" check is the tolerant form value + eps >= target;
//	exact equality is never used. Default eps is 1e-3.
//
// Cost
//
//	O(log B) simulator calls for a bracket of B grid units, each call
//	O(days × C).
//
// Errors
//
//   - ErrNilAdoption     if no adoption function is supplied.
//   - ErrNegativeDays    if days < 0.
//   - ErrNegativeTarget  if target < 0.
//   - ErrOptionViolation if an option is invalid (non-positive step,
//     negative epsilon, negative population or capacity).
package incentive
