package referral_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/nimesh0803/refnet/referral"
)

// buildChain inserts the edge sequence and fails the test on any rejection.
func buildChain(t *testing.T, n *referral.Network, edges [][2]string) {
	t.Helper()
	for _, e := range edges {
		if added, err := n.AddReferral(e[0], e[1]); err != nil || !added {
			t.Fatalf("AddReferral(%s, %s) = (%v, %v); want (true, nil)", e[0], e[1], added, err)
		}
	}
}

// snapshot captures the externally observable state of a network.
func snapshot(n *referral.Network) map[string][]string {
	out := make(map[string][]string)
	for _, u := range n.Users() {
		out[u] = n.DirectReferralsOf(u)
	}

	return out
}

// TestAddUser_IdempotentAndValidated verifies user upsert semantics.
func TestAddUser_IdempotentAndValidated(t *testing.T) {
	n := referral.NewNetwork()
	if err := n.AddUser(""); !errors.Is(err, referral.ErrEmptyUserID) {
		t.Errorf("empty ID: want ErrEmptyUserID, got %v", err)
	}
	if err := n.AddUser("alice"); err != nil {
		t.Fatalf("AddUser(alice): %v", err)
	}
	if err := n.AddUser("alice"); err != nil {
		t.Errorf("second AddUser(alice): want nil, got %v", err)
	}
	if got := n.Users(); !reflect.DeepEqual(got, []string{"alice"}) {
		t.Errorf("Users() = %v; want [alice]", got)
	}
	if !n.HasUser("alice") || n.HasUser("bob") {
		t.Errorf("HasUser: alice=%v bob=%v; want true false", n.HasUser("alice"), n.HasUser("bob"))
	}
}

// TestAddReferral_CommitAndIdempotence covers the true/false return contract.
func TestAddReferral_CommitAndIdempotence(t *testing.T) {
	n := referral.NewNetwork()
	added, err := n.AddReferral("A", "B")
	if err != nil || !added {
		t.Fatalf("first insert = (%v, %v); want (true, nil)", added, err)
	}
	before := snapshot(n)

	// Exact duplicate: no error, no change.
	added, err = n.AddReferral("A", "B")
	if err != nil || added {
		t.Fatalf("duplicate insert = (%v, %v); want (false, nil)", added, err)
	}
	if after := snapshot(n); !reflect.DeepEqual(before, after) {
		t.Errorf("network changed on duplicate insert: %v -> %v", before, after)
	}
}

// TestAddReferral_ImplicitUsers verifies both endpoints are registered on commit.
func TestAddReferral_ImplicitUsers(t *testing.T) {
	n := referral.NewNetwork()
	buildChain(t, n, [][2]string{{"carol", "dave"}})
	if got := n.Users(); !reflect.DeepEqual(got, []string{"carol", "dave"}) {
		t.Errorf("Users() = %v; want [carol dave]", got)
	}
	if p, ok := n.ParentOf("dave"); !ok || p != "carol" {
		t.Errorf("ParentOf(dave) = (%q, %v); want (carol, true)", p, ok)
	}
	if _, ok := n.ParentOf("carol"); ok {
		t.Error("ParentOf(carol) should report no referrer for a root")
	}
}

// TestAddReferral_Violations checks each constraint and that the network is
// untouched after every rejected call.
func TestAddReferral_Violations(t *testing.T) {
	n := referral.NewNetwork()
	buildChain(t, n, [][2]string{{"A", "B"}, {"B", "C"}})
	before := snapshot(n)

	cases := []struct {
		name      string
		referrer  string
		candidate string
		want      error
	}{
		{"self referral", "A", "A", referral.ErrSelfReferral},
		{"empty referrer", "", "Z", referral.ErrEmptyUserID},
		{"empty candidate", "A", "", referral.ErrEmptyUserID},
		{"conflicting referrer", "C", "B", referral.ErrReferrerConflict},
		{"direct cycle", "B", "A", referral.ErrCycle},
		{"transitive cycle", "C", "A", referral.ErrCycle},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			added, err := n.AddReferral(tc.referrer, tc.candidate)
			if added || !errors.Is(err, tc.want) {
				t.Errorf("AddReferral(%q, %q) = (%v, %v); want (false, %v)",
					tc.referrer, tc.candidate, added, err, tc.want)
			}
			if after := snapshot(n); !reflect.DeepEqual(before, after) {
				t.Errorf("network changed after rejected insert: %v -> %v", before, after)
			}
		})
	}
}

// TestForestInvariant verifies parent/children stay mutual inverses after a
// mixed sequence of successful insertions.
func TestForestInvariant(t *testing.T) {
	n := referral.NewNetwork()
	buildChain(t, n, [][2]string{
		{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "E"}, {"F", "G"}, {"F", "H"},
	})

	for _, u := range n.Users() {
		for _, child := range n.DirectReferralsOf(u) {
			p, ok := n.ParentOf(child)
			if !ok || p != u {
				t.Errorf("ParentOf(%s) = (%q, %v); want (%s, true)", child, p, ok, u)
			}
		}
		if p, ok := n.ParentOf(u); ok {
			found := false
			for _, sib := range n.DirectReferralsOf(p) {
				if sib == u {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("%s has parent %s but is missing from its child list", u, p)
			}
		}
	}

	if got, want := n.Roots(), []string{"A", "F"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Roots() = %v; want %v", got, want)
	}
	if got := n.UserCount(); got != 8 {
		t.Errorf("UserCount() = %d; want 8", got)
	}
}

// TestQueries_UnknownUsers ensures absence is a sentinel, never an error.
func TestQueries_UnknownUsers(t *testing.T) {
	n := referral.NewNetwork()
	buildChain(t, n, [][2]string{{"A", "B"}})

	if got := n.DirectReferralsOf("ghost"); len(got) != 0 {
		t.Errorf("DirectReferralsOf(ghost) = %v; want empty", got)
	}
	if got := n.DirectReferralsOf("B"); len(got) != 0 {
		t.Errorf("DirectReferralsOf(B) = %v; want empty for a leaf", got)
	}
	if _, ok := n.ParentOf("ghost"); ok {
		t.Error("ParentOf(ghost) should report absence")
	}
}

// TestDirectReferralsOf_Sorted verifies deterministic child ordering.
func TestDirectReferralsOf_Sorted(t *testing.T) {
	n := referral.NewNetwork()
	buildChain(t, n, [][2]string{{"R", "c"}, {"R", "a"}, {"R", "b"}})
	if got, want := n.DirectReferralsOf("R"), []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("DirectReferralsOf(R) = %v; want %v", got, want)
	}
}
