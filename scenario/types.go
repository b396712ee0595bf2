package scenario

// Referral is one seed edge replayed into the referral network.
type Referral struct {
	Referrer  string `yaml:"referrer"`
	Candidate string `yaml:"candidate"`
}

// Campaign is a declarative description of one referral campaign: the
// population model, the planning horizon and target, the incentive grid,
// and optional seed referrals for the analytics half.
type Campaign struct {
	// Population model (growth simulator parameters).
	InitialReferrers int `yaml:"initial_referrers"`
	Capacity         int `yaml:"capacity"`

	// Planning inputs.
	Days        int `yaml:"days"`
	TargetHires int `yaml:"target_hires"`

	// Incentive search knobs.
	BonusStep int     `yaml:"bonus_step"`
	Epsilon   float64 `yaml:"epsilon"`

	// Seeds are existing referral edges, replayed in order.
	Seeds []Referral `yaml:"seeds,omitempty"`
}
