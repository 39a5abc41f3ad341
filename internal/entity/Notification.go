package entity

import "time"

type NotificationType string

const (
	NotificationNewBallot      NotificationType = "new_ballot"
	NotificationVotingReminder NotificationType = "voting_reminder"
	NotificationVotingClosed   NotificationType = "voting_closed"
	NotificationVotingOpened   NotificationType = "voting_opened"
)

type Notification struct {
	ID       string
	UserID   string
	BallotID *string
	Type     NotificationType
	Message  string
	// IdempotencyKey dedupes scheduler sends per (user, ballot, event,
	// occurrence). Nil for notifications created outside the scheduler.
	IdempotencyKey *string
	SentAt         time.Time
	ReadAt         *time.Time
}
