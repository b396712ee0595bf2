// Package referral: Network mutation and query implementations.
//
// Mutations follow a strict check-then-commit discipline: every constraint
// is verified before the first map write, so a rejected AddReferral leaves
// the Network byte-for-byte unchanged.

package referral

import "sort"

// AddUser ensures a user with the given ID exists in the network.
// Returns ErrEmptyUserID if id is empty.
// If the user already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (n *Network) AddUser(id string) error {
	if id == "" {
		return ErrEmptyUserID
	}
	if _, exists := n.nodes[id]; exists {
		return nil // no-op for existing user
	}
	n.nodes[id] = struct{}{}

	return nil
}

// AddReferral records the directed referral referrer→candidate.
//
// Returns (true, nil) when a new edge is committed, (false, nil) when the
// exact edge already exists (duplicate insertions are idempotent), and
// (false, err) on any constraint violation:
//
//	ErrEmptyUserID      — either ID is the empty string
//	ErrSelfReferral     — referrer == candidate
//	ErrReferrerConflict — candidate already has a different referrer
//	ErrCycle            — referrer is reachable from candidate, so the new
//	                      edge would close a cycle
//
// All checks run before any mutation; a rejected call leaves the network
// unchanged. Both endpoints are registered as users only once every
// constraint has passed.
// Complexity: O(V + E) due to the reachability check.
func (n *Network) AddReferral(referrer, candidate string) (bool, error) {
	// 1) Validate IDs
	if referrer == "" || candidate == "" {
		return false, ErrEmptyUserID
	}
	// 2) No self-referrals
	if referrer == candidate {
		return false, ErrSelfReferral
	}
	// 3) Unique referrer: at most one parent per candidate, ever
	if existing, has := n.parent[candidate]; has {
		if existing == referrer {
			return false, nil // duplicate edge; idempotent
		}

		return false, ErrReferrerConflict
	}
	// 4) Acyclicity: referrer→candidate is illegal iff referrer is already
	//    reachable from candidate via existing child edges
	if n.reachable(candidate, referrer) {
		return false, ErrCycle
	}

	// 5) Commit: register both endpoints, then the edge in both directions
	n.nodes[referrer] = struct{}{}
	n.nodes[candidate] = struct{}{}
	kids, ok := n.children[referrer]
	if !ok {
		kids = make(map[string]struct{})
		n.children[referrer] = kids
	}
	kids[candidate] = struct{}{}
	n.parent[candidate] = referrer

	return true, nil
}

// reachable reports whether dst can be reached from src by following
// child edges. Breadth-first with an explicit queue and seen-set.
// Complexity: O(V + E).
func (n *Network) reachable(src, dst string) bool {
	if src == dst {
		return true
	}
	queue := []string{src}
	seen := map[string]struct{}{src: {}}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v := range n.children[u] {
			if v == dst {
				return true
			}
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				queue = append(queue, v)
			}
		}
	}

	return false
}

// HasUser reports whether a user with the given ID exists.
// Complexity: O(1).
func (n *Network) HasUser(id string) bool {
	_, exists := n.nodes[id]

	return exists
}

// DirectReferralsOf returns the IDs of id's immediate candidates, sorted
// ascending. Unknown users and users with no referrals both yield an empty
// slice — absence is never an error.
// Complexity: O(k log k) for k direct referrals.
func (n *Network) DirectReferralsOf(id string) []string {
	kids := n.children[id]
	out := make([]string, 0, len(kids))
	for c := range kids {
		out = append(out, c)
	}
	sort.Strings(out)

	return out
}

// ParentOf returns id's referrer and true, or ("", false) for roots and
// unknown users.
// Complexity: O(1).
func (n *Network) ParentOf(id string) (string, bool) {
	p, ok := n.parent[id]

	return p, ok
}

// Users returns every known user ID, sorted ascending.
// Complexity: O(V log V).
func (n *Network) Users() []string {
	out := make([]string, 0, len(n.nodes))
	for u := range n.nodes {
		out = append(out, u)
	}
	sort.Strings(out)

	return out
}

// UserCount returns the number of known users.
// Complexity: O(1).
func (n *Network) UserCount() int {
	return len(n.nodes)
}

// Roots returns every user without a referrer, sorted ascending.
// Every tree in the forest contributes exactly one root.
// Complexity: O(V log V).
func (n *Network) Roots() []string {
	out := make([]string, 0, len(n.nodes))
	for u := range n.nodes {
		if _, has := n.parent[u]; !has {
			out = append(out, u)
		}
	}
	sort.Strings(out)

	return out
}
