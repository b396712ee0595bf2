// Package influence: downstream reach queries and top-k ranking.

package influence

import (
	"sort"

	"github.com/nimesh0803/refnet/referral"
)

// ReachCount returns the number of distinct users reachable from id by
// following referral edges downward (direct + indirect referrals).
// Unknown users and a nil network yield 0 — absence is not an error.
// Complexity: O(V + E) per call.
func ReachCount(n *referral.Network, id string) int {
	return len(ReachSet(n, id))
}

// ReachSet returns the set of all distinct descendants of id.
// Unknown users and a nil network yield an empty set.
//
// The traversal is an explicit-queue BFS with a visited set. The network is
// a forest, so paths never merge, but deduplication is kept anyway: it makes
// the function correct on any DAG and costs nothing here.
// Complexity: O(V + E) time, O(V) memory.
func ReachSet(n *referral.Network, id string) map[string]struct{} {
	seen := make(map[string]struct{})
	if n == nil || !n.HasUser(id) {
		return seen
	}

	queue := n.DirectReferralsOf(id)
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		queue = append(queue, n.DirectReferralsOf(v)...)
	}

	return seen
}

// TopKByReach ranks users by descending reach count, ties broken by
// ascending user ID, and returns the first k entries.
//
//	k <= 0           → empty result
//	k > #users       → the full ranking
//
// Complexity: O(V·(V+E) + V log V).
func TopKByReach(n *referral.Network, k int) []Ranked {
	if n == nil || k <= 0 {
		return nil
	}

	users := n.Users()
	pairs := make([]Ranked, 0, len(users))
	for _, u := range users {
		pairs = append(pairs, Ranked{User: u, Reach: ReachCount(n, u)})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Reach != pairs[j].Reach {
			return pairs[i].Reach > pairs[j].Reach
		}

		return pairs[i].User < pairs[j].User
	})

	if k > len(pairs) {
		k = len(pairs)
	}

	return pairs[:k]
}
