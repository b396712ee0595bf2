package scenario_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimesh0803/refnet/incentive"
	"github.com/nimesh0803/refnet/influence"
	"github.com/nimesh0803/refnet/referral"
	"github.com/nimesh0803/refnet/scenario"
)

const fullCampaign = `
initial_referrers: 50
capacity: 4
days: 14
target_hires: 120
bonus_step: 25
epsilon: 0.01
seeds:
  - referrer: alice
    candidate: bob
  - referrer: alice
    candidate: carol
  - referrer: bob
    candidate: dave
`

func TestParse_FullCampaign(t *testing.T) {
	c, err := scenario.Parse([]byte(fullCampaign))
	require.NoError(t, err)

	assert.Equal(t, 50, c.InitialReferrers)
	assert.Equal(t, 4, c.Capacity)
	assert.Equal(t, 14, c.Days)
	assert.Equal(t, 120, c.TargetHires)
	assert.Equal(t, 25, c.BonusStep)
	assert.Equal(t, 0.01, c.Epsilon)
	assert.Len(t, c.Seeds, 3)
}

func TestParse_DefaultsApplied(t *testing.T) {
	c, err := scenario.Parse([]byte("days: 7\ntarget_hires: 200\n"))
	require.NoError(t, err)

	assert.Equal(t, 100, c.InitialReferrers)
	assert.Equal(t, 10, c.Capacity)
	assert.Equal(t, incentive.DefaultStep, c.BonusStep)
	assert.Equal(t, incentive.DefaultEpsilon, c.Epsilon)
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"malformed yaml", "days: [not a number"},
		{"negative days", "days: -1"},
		{"negative target", "target_hires: -5"},
		{"negative population", "initial_referrers: -10"},
		{"negative capacity", "capacity: -1"},
		{"negative step", "bonus_step: -10"},
		{"negative epsilon", "epsilon: -0.5"},
		{"incomplete seed", "seeds:\n  - referrer: alice"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenario.Parse([]byte(tc.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campaign.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fullCampaign), 0o644))

	c, err := scenario.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 14, c.Days)

	_, err = scenario.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestBuildNetwork(t *testing.T) {
	c, err := scenario.Parse([]byte(fullCampaign))
	require.NoError(t, err)

	n, err := c.BuildNetwork()
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob", "carol", "dave"}, n.Users())
	assert.Equal(t, 3, influence.ReachCount(n, "alice"))
}

func TestBuildNetwork_ViolatingSeed(t *testing.T) {
	c, err := scenario.Parse([]byte(`
seeds:
  - referrer: a
    candidate: b
  - referrer: b
    candidate: a
`))
	require.NoError(t, err)

	_, err = c.BuildNetwork()
	assert.ErrorIs(t, err, referral.ErrCycle)
}

func TestSearchOptions_FeedTheSearch(t *testing.T) {
	// Campaign: 50 referrers, cap 4, 14 days → ceiling 50×4 = 200 ≥ 120.
	// Expected hires at p=1 plateau at 200; linear adoption reaching 1 at
	// $100 must find a qualifying bonus on the $25 grid.
	c, err := scenario.Parse([]byte(fullCampaign))
	require.NoError(t, err)

	adoption := func(bonus int) float64 {
		p := float64(bonus) / 100.0
		if p > 1.0 {
			p = 1.0
		}
		return p
	}
	bonus, ok, err := incentive.MinIncentiveForTarget(c.Days, c.TargetHires, adoption, c.SearchOptions()...)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Positive(t, bonus)
	assert.Zero(t, bonus%c.BonusStep, "result must sit on the campaign's grid")
}
