package entity

import "time"

type BallotStatus string

const (
	BallotStatusDraft  BallotStatus = "draft"
	BallotStatusOpen   BallotStatus = "open"
	BallotStatusClosed BallotStatus = "closed"
)

type VotingThreshold string

const (
	ThresholdSimpleMajority VotingThreshold = "simple_majority"
	ThresholdSupermajority  VotingThreshold = "supermajority"
	ThresholdUnanimous      VotingThreshold = "unanimous"
	ThresholdCustom         VotingThreshold = "custom"
)

type Ballot struct {
	ID                  string
	Title               string
	Description         string
	CreatorID           string
	VoterListID         *string
	CreatedAt           time.Time
	VotingOpensAt       time.Time
	VotingClosesAt      time.Time
	VotingThreshold     VotingThreshold
	ThresholdPercentage *float64
	QuorumRequired      *int
	// EligibleAtOpen holds the eligible-voter count recorded when the ballot
	// opened. Used instead of a live count when freeze mode is configured.
	EligibleAtOpen *int
	Status         BallotStatus
}
