// Package influence: greedy unique-reach coverage selection.

package influence

import "github.com/nimesh0803/refnet/referral"

// UniqueReachExpansion selects up to k users by greedy maximum coverage:
// at each step, pick the not-yet-chosen user whose descendant set adds the
// most users not already covered by earlier picks, breaking ties by the
// smallest user ID. Selection stops early once the best marginal gain
// drops to zero.
//
// This is the standard greedy approximation for submodular coverage, not
// an exact optimum — callers get the greedy contract above, nothing more.
// Complexity: O(V·(V+E)) to build reach sets, then O(k·V) selection sweeps
// with O(V) set arithmetic each.
func UniqueReachExpansion(n *referral.Network, k int) []Pick {
	if n == nil || k <= 0 || n.UserCount() == 0 {
		return nil
	}

	// 1) Materialize every user's descendant set once.
	users := n.Users()
	reach := make(map[string]map[string]struct{}, len(users))
	for _, u := range users {
		reach[u] = ReachSet(n, u)
	}

	// 2) Greedy sweeps: covered grows, remaining shrinks.
	covered := make(map[string]struct{})
	remaining := make(map[string]struct{}, len(users))
	for _, u := range users {
		remaining[u] = struct{}{}
	}

	picked := make([]Pick, 0, k)
	for len(remaining) > 0 && len(picked) < k {
		bestUser, bestGain := "", -1
		// Sweep in sorted order so equal gains resolve to the smallest ID.
		for _, u := range users {
			if _, ok := remaining[u]; !ok {
				continue
			}
			gain := 0
			for d := range reach[u] {
				if _, ok := covered[d]; !ok {
					gain++
				}
			}
			if gain > bestGain {
				bestUser, bestGain = u, gain
			}
		}
		if bestGain <= 0 {
			break // nothing new left to cover
		}

		picked = append(picked, Pick{User: bestUser, Gain: bestGain})
		for d := range reach[bestUser] {
			covered[d] = struct{}{}
		}
		delete(remaining, bestUser)
	}

	return picked
}
