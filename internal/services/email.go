package services

import (
	"context"
	"time"

	"github.com/openquorum/ballot-service/internal/entity"
)

type ReminderKind string

const (
	ReminderOpen  ReminderKind = "open"
	ReminderClose ReminderKind = "close"
)

type InvitationEmail struct {
	BallotID            string
	BallotTitle         string
	BallotDescription   string
	VoterEmail          string
	VoterName           *string
	VotingOpensAt       time.Time
	VotingClosesAt      time.Time
	VotingThreshold     entity.VotingThreshold
	ThresholdPercentage *float64
}

type ReminderEmail struct {
	Kind        ReminderKind
	BallotID    string
	BallotTitle string
	VoterEmail  string
	VoterName   *string
	When        time.Time
	Minutes     int
}

type OpenedEmail struct {
	BallotID    string
	BallotTitle string
	VoterEmail  string
	VoterName   *string
	ClosesAt    time.Time
}

type ClosedEmail struct {
	BallotID    string
	BallotTitle string
	VoterEmail  string
	VoterName   *string
}

// EmailSender is the outbound mail transport. It is fallible and
// non-transactional: a false or an error means the message may not have
// been delivered and nothing should be recorded as sent.
type EmailSender interface {
	SendVoterInvitation(ctx context.Context, data InvitationEmail) (bool, error)
	SendReminder(ctx context.Context, data ReminderEmail) (bool, error)
	SendOpened(ctx context.Context, data OpenedEmail) (bool, error)
	SendClosed(ctx context.Context, data ClosedEmail) (bool, error)
}
