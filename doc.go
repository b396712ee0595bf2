// Package refnet models a referral program end to end — from the referral
// graph itself, through influence analytics, to growth forecasting and
// incentive optimization.
//
// 🚀 What is refnet?
//
//	A deterministic, in-memory library that brings together:
//		• Referral graph: implicit user creation, one referrer per user,
//		  self-referrals and cycles rejected before any mutation
//		• Influence analytics: reach counts/sets, top-k ranking,
//		  greedy unique-reach coverage, flow centrality
//		• Growth simulation: per-referrer absorbing Markov chain,
//		  closed-form expected hires per day (no Monte Carlo)
//		• Incentive search: minimal bonus on a step grid meeting a
//		  hiring target, via exponential bracket + binary search
//
// ✨ Why choose refnet?
//
//   - Hard guarantees – the network is always a forest; every constraint is
//     checked atomically before commit
//   - Deterministic – sorted output everywhere, ties broken by user ID,
//     identical results on every run
//   - Pure Go – a closed-form expectation model, no sampling, no cgo
//   - Composable – graph analytics and growth/incentive planning are
//     independent halves you wire together in your caller
//
// Everything is organized under five subpackages:
//
//	referral/  — the forest-constrained referral graph and its invariants
//	influence/ — read-only reach, coverage, and centrality analytics
//	growth/    — expected-value growth simulator with absorbing capacity
//	incentive/ — minimal-incentive search over a monotone adoption response
//	scenario/  — YAML campaign configuration tying both halves together
//
// Quick ASCII example:
//
//	    A          F
//	   ╱ ╲         │
//	  B   C        G
//	  │   │
//	  D   E
//
//	two referral trees: A reaches 4 users, F reaches 1.
//
// Dive into examples/ for complete campaign and incentive-planning
// walkthroughs.
//
//	go get github.com/nimesh0803/refnet
package refnet
