// Package tally computes vote totals and pass/fail status for a ballot.
// Everything here is pure: callers load the counts and ballot settings,
// tally does the math.
package tally

import (
	"math"

	"github.com/openquorum/ballot-service/internal/entity"
)

type Counts struct {
	Yea     int `json:"yea"`
	Nay     int `json:"nay"`
	Abstain int `json:"abstain"`
	Total   int `json:"total"`
}

type PassingStatus struct {
	IsPassing           bool    `json:"is_passing"`
	VotesNeeded         int     `json:"votes_needed"`
	RequiredVotes       int     `json:"required_votes"`
	TotalEligibleVoters int     `json:"total_eligible_voters"`
	ThresholdPercentage float64 `json:"threshold_percentage"`
	CurrentPercentage   float64 `json:"current_percentage"`
	TotalVotesCast      int     `json:"total_votes_cast"`
	VoteCounts          Counts  `json:"vote_counts"`
	QuorumRequired      *int    `json:"quorum_required,omitempty"`
	QuorumMet           bool    `json:"quorum_met"`
	QuorumNeeded        *int    `json:"quorum_needed,omitempty"`
}

// RequiredVotes returns the number of yea votes needed to pass.
// A nil custom percentage falls back to requiring every eligible voter;
// ballot creation rejects that combination, so the fallback only guards
// rows written before validation existed.
func RequiredVotes(totalEligible int, threshold entity.VotingThreshold, customPct *float64) int {
	switch threshold {
	case entity.ThresholdSimpleMajority:
		return totalEligible/2 + 1
	case entity.ThresholdSupermajority:
		return (totalEligible*2 + 2) / 3
	case entity.ThresholdUnanimous:
		return totalEligible
	case entity.ThresholdCustom:
		if customPct == nil {
			return totalEligible
		}
		return int(math.Ceil(float64(totalEligible) * (*customPct / 100)))
	default:
		return totalEligible/2 + 1
	}
}

// ThresholdPercentage returns the display percentage for a threshold.
func ThresholdPercentage(threshold entity.VotingThreshold, customPct *float64) float64 {
	switch threshold {
	case entity.ThresholdSimpleMajority:
		return 50.01
	case entity.ThresholdSupermajority:
		return 66.67
	case entity.ThresholdUnanimous:
		return 100
	case entity.ThresholdCustom:
		if customPct == nil {
			return 50.01
		}
		return *customPct
	default:
		return 50.01
	}
}

// Evaluate combines counts, the eligible-voter total and the ballot's
// threshold/quorum settings into a passing status. A ballot passes when
// yea meets the threshold AND quorum (when required) is met. With zero
// eligible voters required votes may be zero and the ballot reports
// passing immediately; that matches the stored settings rather than
// guessing an intent.
func Evaluate(counts Counts, totalEligible int, threshold entity.VotingThreshold, customPct *float64, quorumRequired *int) PassingStatus {
	required := RequiredVotes(totalEligible, threshold, customPct)

	currentPct := 0.0
	if totalEligible > 0 {
		currentPct = float64(counts.Yea) / float64(totalEligible) * 100
	}

	quorumMet := true
	var quorumNeeded *int
	if quorumRequired != nil {
		quorumMet = counts.Total >= *quorumRequired
		needed := max(0, *quorumRequired-counts.Total)
		quorumNeeded = &needed
	}

	return PassingStatus{
		IsPassing:           counts.Yea >= required && quorumMet,
		VotesNeeded:         max(0, required-counts.Yea),
		RequiredVotes:       required,
		TotalEligibleVoters: totalEligible,
		ThresholdPercentage: ThresholdPercentage(threshold, customPct),
		CurrentPercentage:   currentPct,
		TotalVotesCast:      counts.Total,
		VoteCounts:          counts,
		QuorumRequired:      quorumRequired,
		QuorumMet:           quorumMet,
		QuorumNeeded:        quorumNeeded,
	}
}
