// Package influence provides read-only analytics over a referral.Network:
// downstream reach, top-k ranking, greedy coverage selection, and flow
// centrality.
//
// What
//
//   - ReachCount / ReachSet — distinct descendants of one user (BFS with a
//     visited set).
//   - TopKByReach — all users ranked by descending reach, ties by ascending
//     user ID, truncated to k.
//   - UniqueReachExpansion — greedy maximum coverage: up to k users picked
//     by largest marginal gain of not-yet-covered descendants.
//   - FlowCentrality — ancestors × descendants per user, the closed form
//     that the forest invariant makes exact.
//
// Why
//
//   - Reach ranking answers "who brought in the most people".
//   - Coverage selection answers "which k users jointly touch the most
//     people" without double-counting overlapping subtrees.
//   - Flow centrality answers "who sits on the most referral chains" —
//     brokers rather than volume leaders.
//
// Read-only contract
//
//	Nothing in this package mutates the network, and nothing is cached
//	between calls: every function recomputes from the network's current
//	state. Derived counts live in local maps, never on the network itself.
//
// Determinism
//
//	Every ranking sorts by (score desc, user ID asc); identical inputs
//	always produce identical output.
//
// Absence
//
//	Unknown users yield zero counts and empty sets; a nil network behaves
//	as an empty one. No "not found" errors exist here.
package influence
