package entity

import "time"

// Voter is keyed by email. UserID links the voter to a registered account
// and stays nil for voters invited by email only.
type Voter struct {
	ID        string
	Email     string
	Name      *string
	UserID    *string
	CreatedAt time.Time
}

// NotifyKey is the identity notifications are recorded against: the linked
// user account when one exists, otherwise the voter row itself.
func (v Voter) NotifyKey() string {
	if v.UserID != nil {
		return *v.UserID
	}
	return v.ID
}
