// Package influence: flow centrality in closed form.
//
// The referral network is a forest (unique referrer + no cycles), so any
// path s→t is unique if it exists, and a user v lies on it exactly when
// s is an ancestor of v and t is a descendant of v. That collapses flow
// centrality to
//
//	score(v) = #ancestors(v) × #descendants(v)
//
// computable in two linear passes instead of all-pairs path enumeration.

package influence

import (
	"sort"

	"github.com/nimesh0803/refnet/referral"
)

// FlowCentrality scores every user by ancestors × descendants and returns
// the ranking sorted by descending score, ties broken by ascending user ID.
// A nil network yields an empty result.
// Complexity: O(V log V + E) time, O(V) memory.
func FlowCentrality(n *referral.Network) []Centrality {
	if n == nil {
		return nil
	}

	users := n.Users()
	anc := ancestorCounts(n, users)
	desc := descendantCounts(n, users)

	out := make([]Centrality, 0, len(users))
	for _, u := range users {
		out = append(out, Centrality{User: u, Score: anc[u] * desc[u]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}

		return out[i].User < out[j].User
	})

	return out
}

// ancestorCounts returns, for each user, its distance to the root of its
// tree. Memoized upward walks: each parent chain is climbed until a node
// with a known count (or a root) is found, then the chain is unwound and
// filled in, so every user is resolved exactly once overall.
func ancestorCounts(n *referral.Network, users []string) map[string]int {
	counts := make(map[string]int, len(users))
	chain := make([]string, 0, len(users)) // reused climb stack

	for _, u := range users {
		chain = chain[:0]
		cur := u
		for {
			if _, done := counts[cur]; done {
				break
			}
			p, ok := n.ParentOf(cur)
			if !ok {
				counts[cur] = 0 // root
				break
			}
			chain = append(chain, cur)
			cur = p
		}
		// Unwind: each chain entry is one step below its parent.
		for i := len(chain) - 1; i >= 0; i-- {
			p, _ := n.ParentOf(chain[i])
			counts[chain[i]] = counts[p] + 1
		}
	}

	return counts
}

// descendantCounts returns, for each user, its number of descendants.
// A BFS from the roots yields an order with parents before children;
// walking that order backwards accumulates each child's subtree into its
// parent, giving all counts without recursion.
func descendantCounts(n *referral.Network, users []string) map[string]int {
	counts := make(map[string]int, len(users))
	for _, u := range users {
		counts[u] = 0
	}

	order := make([]string, 0, len(users))
	queue := n.Roots()
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)
		queue = append(queue, n.DirectReferralsOf(u)...)
	}

	for i := len(order) - 1; i >= 0; i-- {
		child := order[i]
		if p, ok := n.ParentOf(child); ok {
			counts[p] += 1 + counts[child]
		}
	}

	return counts
}
