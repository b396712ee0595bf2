package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nimesh0803/refnet/growth"
	"github.com/nimesh0803/refnet/incentive"
	"github.com/nimesh0803/refnet/referral"
)

// Load reads and parses a campaign file.
func Load(path string) (*Campaign, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: failed to read campaign file %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario: failed to parse campaign file %s: %w", path, err)
	}

	return c, nil
}

// Parse decodes a YAML campaign, fills defaults for omitted fields, and
// validates the result. Zero-valued knobs fall back to the model defaults
// (N0=100, C=10, step=$10, epsilon=1e-3).
func Parse(data []byte) (*Campaign, error) {
	var c Campaign
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("scenario: invalid YAML: %w", err)
	}
	applyDefaults(&c)
	if err := validate(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

func applyDefaults(c *Campaign) {
	if c.InitialReferrers == 0 {
		c.InitialReferrers = growth.DefaultInitialReferrers
	}
	if c.Capacity == 0 {
		c.Capacity = growth.DefaultCapacity
	}
	if c.BonusStep == 0 {
		c.BonusStep = incentive.DefaultStep
	}
	if c.Epsilon == 0 {
		c.Epsilon = incentive.DefaultEpsilon
	}
}

func validate(c *Campaign) error {
	if c.InitialReferrers < 0 {
		return fmt.Errorf("scenario: initial_referrers cannot be negative (%d)", c.InitialReferrers)
	}
	if c.Capacity < 0 {
		return fmt.Errorf("scenario: capacity cannot be negative (%d)", c.Capacity)
	}
	if c.Days < 0 {
		return fmt.Errorf("scenario: days cannot be negative (%d)", c.Days)
	}
	if c.TargetHires < 0 {
		return fmt.Errorf("scenario: target_hires cannot be negative (%d)", c.TargetHires)
	}
	if c.BonusStep <= 0 {
		return fmt.Errorf("scenario: bonus_step must be positive (%d)", c.BonusStep)
	}
	if c.Epsilon < 0 {
		return fmt.Errorf("scenario: epsilon cannot be negative (%v)", c.Epsilon)
	}
	for i, s := range c.Seeds {
		if s.Referrer == "" || s.Candidate == "" {
			return fmt.Errorf("scenario: seed %d is missing a referrer or candidate", i)
		}
	}

	return nil
}

// GrowthOptions translates the campaign's population model into simulator
// options.
func (c *Campaign) GrowthOptions() []growth.Option {
	return []growth.Option{
		growth.WithInitialReferrers(c.InitialReferrers),
		growth.WithCapacity(c.Capacity),
	}
}

// SearchOptions translates the campaign into incentive-search options.
func (c *Campaign) SearchOptions() []incentive.Option {
	return []incentive.Option{
		incentive.WithStep(c.BonusStep),
		incentive.WithEpsilon(c.Epsilon),
		incentive.WithInitialReferrers(c.InitialReferrers),
		incentive.WithCapacity(c.Capacity),
	}
}

// BuildNetwork replays the campaign's seed referrals into a fresh network.
// Duplicate seeds are tolerated (AddReferral is idempotent); any constraint
// violation aborts with the offending edge identified.
func (c *Campaign) BuildNetwork() (*referral.Network, error) {
	n := referral.NewNetwork()
	for i, s := range c.Seeds {
		if _, err := n.AddReferral(s.Referrer, s.Candidate); err != nil {
			return nil, fmt.Errorf("scenario: seed %d (%s→%s): %w", i, s.Referrer, s.Candidate, err)
		}
	}

	return n, nil
}
