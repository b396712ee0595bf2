package referral_test

import (
	"errors"
	"fmt"

	"github.com/nimesh0803/refnet/referral"
)

// ExampleNetwork_AddReferral demonstrates edge insertion, idempotence, and
// constraint rejection on a small two-tree network.
func ExampleNetwork_AddReferral() {
	n := referral.NewNetwork()

	// Build tree one: A refers B and C, B refers D.
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}} {
		if _, err := n.AddReferral(e[0], e[1]); err != nil {
			fmt.Println("unexpected:", err)
			return
		}
	}

	// Re-inserting an existing edge is a no-op, not an error.
	added, _ := n.AddReferral("A", "B")
	fmt.Println("duplicate added:", added)

	// D already descends from A, so referring A back would close a cycle.
	_, err := n.AddReferral("D", "A")
	fmt.Println("cycle rejected:", errors.Is(err, referral.ErrCycle))

	fmt.Println("users:", n.Users())
	fmt.Println("direct referrals of A:", n.DirectReferralsOf("A"))
	// Output:
	// duplicate added: false
	// cycle rejected: true
	// users: [A B C D]
	// direct referrals of A: [B C]
}
