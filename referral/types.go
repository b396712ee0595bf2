// Package referral defines the Network type and its sentinel errors.
//
// This file declares the Network storage layout, the constructor, and the
// constraint-violation errors surfaced by AddUser / AddReferral.
package referral

import "errors"

// Sentinel errors for referral network mutations.
var (
	// ErrEmptyUserID indicates an operation was given the empty string as a user ID.
	ErrEmptyUserID = errors.New("referral: user ID is empty")

	// ErrSelfReferral indicates an attempt to record a user referring themselves.
	ErrSelfReferral = errors.New("referral: self-referral not allowed")

	// ErrReferrerConflict indicates the candidate already has a different referrer.
	ErrReferrerConflict = errors.New("referral: candidate already has a referrer")

	// ErrCycle indicates the insertion would close a referral cycle.
	ErrCycle = errors.New("referral: referral would create a cycle")
)

// Network is the referral graph: a set of users plus directed
// referrer→candidate edges, constrained to remain a forest.
//
// Storage is three plain maps:
//
//	nodes    — membership set of every user ever referenced
//	children — adjacency: referrer ID → set of direct candidate IDs
//	parent   — reverse edge: candidate ID → its unique referrer ID
//
// children and parent are mutual inverses at all times; a rejected
// insertion leaves all three maps untouched.
//
// Network is not safe for concurrent use. Guard it externally if mutated
// from more than one goroutine.
type Network struct {
	nodes    map[string]struct{}
	children map[string]map[string]struct{}
	parent   map[string]string
}

// NewNetwork creates an empty referral Network.
// Complexity: O(1).
func NewNetwork() *Network {
	return &Network{
		nodes:    make(map[string]struct{}),
		children: make(map[string]map[string]struct{}),
		parent:   make(map[string]string),
	}
}
