// Package influence declares the result types shared by the analytics
// functions in this package.
package influence

// Ranked pairs a user with their total downstream reach.
type Ranked struct {
	// User is the ranked user's ID.
	User string

	// Reach is the number of distinct descendants (direct + indirect).
	Reach int
}

// Pick is one step of the greedy unique-reach selection.
type Pick struct {
	// User is the selected user's ID.
	User string

	// Gain is the number of descendants not covered by earlier picks.
	Gain int
}

// Centrality pairs a user with their flow-centrality score.
type Centrality struct {
	// User is the scored user's ID.
	User string

	// Score counts the (s, t) pairs whose unique path passes through User:
	// ancestors × descendants in a forest.
	Score int
}
