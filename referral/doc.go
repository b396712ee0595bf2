// Package referral provides the referral Network: a directed graph of
// referrer→candidate edges that is guaranteed, at all times, to be a forest.
//
// What
//
//   - Users are created implicitly by the first edge that references them,
//     or explicitly via AddUser; they are never deleted.
//   - AddReferral inserts one referrer→candidate edge, enforcing three
//     invariants before any mutation:
//   - no self-referral (referrer ≠ candidate)
//   - unique referrer (a candidate acquires at most one parent, ever;
//     re-inserting the identical edge is an idempotent no-op)
//   - acyclicity (the edge is rejected if referrer is already reachable
//     from candidate)
//   - Queries (DirectReferralsOf, ParentOf, Users, Roots) return sorted
//     results and treat unknown users as absent, never as errors.
//
// Why
//
//	Unique referrer + acyclicity together mean the network is a set of
//	rooted trees. Downstream analytics (see package influence) exploit this:
//	any path between two users is unique if it exists, enabling closed-form
//	centrality instead of all-pairs path enumeration.
//
// Determinism
//
//	All sequence-returning queries sort ascending by user ID, so repeated
//	calls on the same network produce identical output.
//
// Complexity (V = #users, E = #edges)
//
//   - AddUser, ParentOf, HasUser:  O(1)
//   - AddReferral:                 O(V + E)  (reachability check)
//   - DirectReferralsOf:           O(k log k)
//   - Users, Roots:                O(V log V)
//
// Errors
//
//   - ErrEmptyUserID      if an ID is the empty string.
//   - ErrSelfReferral     if referrer == candidate.
//   - ErrReferrerConflict if the candidate already has a different referrer.
//   - ErrCycle            if the insertion would close a cycle.
//
// A rejected insertion leaves the network exactly as it was: constraint
// checks complete before the first write (atomic check-then-commit).
package referral
