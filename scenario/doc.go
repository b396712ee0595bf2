// Package scenario loads declarative campaign descriptions from YAML and
// translates them into options for the growth simulator and incentive
// search, plus an optional seeded referral network.
//
// A campaign file looks like:
//
//	initial_referrers: 100
//	capacity: 10
//	days: 30
//	target_hires: 600
//	bonus_step: 10
//	epsilon: 0.001
//	seeds:
//	  - referrer: alice
//	    candidate: bob
//	  - referrer: alice
//	    candidate: carol
//
// Omitted numeric knobs fall back to the documented model defaults.
// Validation mirrors the core packages' own input contracts, so a campaign
// that parses cleanly will not trip InvalidArgument errors downstream.
package scenario
