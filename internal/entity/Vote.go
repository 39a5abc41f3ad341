package entity

import "time"

type VoteChoice string

const (
	VoteYea     VoteChoice = "yea"
	VoteNay     VoteChoice = "nay"
	VoteAbstain VoteChoice = "abstain"
)

type ActorRole string

const (
	ActorRoleUser  ActorRole = "user"
	ActorRoleAdmin ActorRole = "admin"
	ActorRoleOwner ActorRole = "owner"
)

type VoteEventType string

const (
	VoteEventCast     VoteEventType = "cast"
	VoteEventOverride VoteEventType = "override"
	VoteEventClear    VoteEventType = "clear"
)

// Vote is the single current vote for a (ballot, voter) pair. A unique
// index on that pair is what enforces one vote per voter.
type Vote struct {
	ID        string
	BallotID  string
	VoterID   string
	Choice    VoteChoice
	VotedAt   time.Time
	UpdatedAt time.Time
}

// VoteEvent is an append-only audit row. Rows are never updated or deleted;
// the latest event per voter tells who last touched the vote and why.
type VoteEvent struct {
	ID             string
	BallotID       string
	VoterID        string
	ActorUserID    string
	ActorRole      ActorRole
	EventType      VoteEventType
	PreviousChoice *VoteChoice
	NewChoice      *VoteChoice
	Reason         *string
	CreatedAt      time.Time
}
