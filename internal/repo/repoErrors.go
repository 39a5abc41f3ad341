package repo

import "errors"

var (
	ErrBallotNotFound        = errors.New("ballot not found")
	ErrVoterNotFound         = errors.New("voter not found")
	ErrVoteNotFound          = errors.New("vote not found")
	ErrVoteExists            = errors.New("vote already exists")
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrNotificationDuplicate = errors.New("notification already recorded")
)
