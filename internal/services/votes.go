package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/openquorum/ballot-service/internal/entity"
	"github.com/openquorum/ballot-service/internal/repo"
	"github.com/openquorum/ballot-service/internal/tally"
)

type VoteStorage interface {
	SaveVote(ctx context.Context, ballotID, voterID string, choice entity.VoteChoice) (entity.Vote, error)
	VoteByBallotAndVoter(ctx context.Context, ballotID, voterID string) (entity.Vote, error)
	UpdateVoteChoice(ctx context.Context, ballotID, voterID string, choice entity.VoteChoice) (entity.Vote, error)
	VotesByBallot(ctx context.Context, ballotID string) ([]entity.Vote, error)
	VoteCounts(ctx context.Context, ballotID string) (tally.Counts, error)
}

type VoteEventStorage interface {
	SaveVoteEvent(ctx context.Context, event entity.VoteEvent) (string, error)
	VoteEventsByBallot(ctx context.Context, ballotID string) ([]entity.VoteEvent, error)
}

// VoteLedger enforces one current vote per voter per ballot and keeps the
// append-only audit trail of every mutation.
type VoteLedger struct {
	log          *slog.Logger
	voteStorage  VoteStorage
	eventStorage VoteEventStorage
	voterStorage VoterStorage
}

func NewVoteLedger(
	log *slog.Logger,
	voteStorage VoteStorage,
	eventStorage VoteEventStorage,
	voterStorage VoterStorage,
) *VoteLedger {
	return &VoteLedger{
		log:          log,
		voteStorage:  voteStorage,
		eventStorage: eventStorage,
		voterStorage: voterStorage,
	}
}

// CastVote records the acting user's one vote on a ballot. When a vote
// already exists it is returned unchanged with alreadyVoted true; the
// ledger never overwrites a user-cast vote, the API boundary decides how
// to surface the conflict.
func (l *VoteLedger) CastVote(ctx context.Context, ballotID, userID string, choice entity.VoteChoice) (vote entity.Vote, alreadyVoted bool, err error) {
	const op = "VoteLedger.CastVote"

	voter, err := l.voterStorage.VoterByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrVoterNotFound) {
			return entity.Vote{}, false, fmt.Errorf("%s: %w", op, ErrNotEligible)
		}
		return entity.Vote{}, false, fmt.Errorf("%s: %w", op, err)
	}

	eligible, err := l.voterStorage.IsEligible(ctx, ballotID, voter.ID)
	if err != nil {
		return entity.Vote{}, false, fmt.Errorf("%s: %w", op, err)
	}
	if !eligible {
		return entity.Vote{}, false, fmt.Errorf("%s: %w", op, ErrNotEligible)
	}

	existing, err := l.voteStorage.VoteByBallotAndVoter(ctx, ballotID, voter.ID)
	if err == nil {
		return existing, true, nil
	}
	if !errors.Is(err, repo.ErrVoteNotFound) {
		return entity.Vote{}, false, fmt.Errorf("%s: %w", op, err)
	}

	vote, err = l.voteStorage.SaveVote(ctx, ballotID, voter.ID, choice)
	if err != nil {
		// Lost a concurrent cast race: the unique index picked the winner,
		// report this attempt as already voted.
		if errors.Is(err, repo.ErrVoteExists) {
			existing, lookupErr := l.voteStorage.VoteByBallotAndVoter(ctx, ballotID, voter.ID)
			if lookupErr != nil {
				return entity.Vote{}, false, fmt.Errorf("%s: %w", op, lookupErr)
			}
			return existing, true, nil
		}
		return entity.Vote{}, false, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := l.eventStorage.SaveVoteEvent(ctx, entity.VoteEvent{
		BallotID:    ballotID,
		VoterID:     voter.ID,
		ActorUserID: userID,
		ActorRole:   entity.ActorRoleUser,
		EventType:   entity.VoteEventCast,
		NewChoice:   &choice,
	}); err != nil {
		return entity.Vote{}, false, fmt.Errorf("%s: %w", op, err)
	}

	l.log.Info("vote cast",
		slog.String("op", op), slog.String("ballotID", ballotID), slog.String("voterID", voter.ID))

	return vote, false, nil
}

// AdminSetVote is the privileged override path. It inserts a vote when the
// voter has none, updates it when the choice differs, and always leaves an
// override event behind, except for a re-affirmed choice without a reason,
// which changes nothing and logs nothing.
func (l *VoteLedger) AdminSetVote(ctx context.Context, ballotID, voterID string, newChoice entity.VoteChoice, actorUserID string, actorRole entity.ActorRole, reason *string) (entity.Vote, error) {
	const op = "VoteLedger.AdminSetVote"

	if actorRole != entity.ActorRoleAdmin && actorRole != entity.ActorRoleOwner {
		return entity.Vote{}, fmt.Errorf("%s: %w: %s", op, ErrForbidden, actorRole)
	}

	existing, err := l.voteStorage.VoteByBallotAndVoter(ctx, ballotID, voterID)
	if err != nil {
		if !errors.Is(err, repo.ErrVoteNotFound) {
			return entity.Vote{}, fmt.Errorf("%s: %w", op, err)
		}

		vote, err := l.voteStorage.SaveVote(ctx, ballotID, voterID, newChoice)
		if err != nil {
			return entity.Vote{}, fmt.Errorf("%s: %w", op, err)
		}

		if _, err := l.eventStorage.SaveVoteEvent(ctx, entity.VoteEvent{
			BallotID:    ballotID,
			VoterID:     voterID,
			ActorUserID: actorUserID,
			ActorRole:   actorRole,
			EventType:   entity.VoteEventOverride,
			NewChoice:   &newChoice,
			Reason:      reason,
		}); err != nil {
			return entity.Vote{}, fmt.Errorf("%s: %w", op, err)
		}

		return vote, nil
	}

	if existing.Choice == newChoice {
		// No data change. A supplied reason still gets an audit row so
		// re-affirmed overrides stay visible.
		if reason != nil && *reason != "" {
			if _, err := l.eventStorage.SaveVoteEvent(ctx, entity.VoteEvent{
				BallotID:       ballotID,
				VoterID:        voterID,
				ActorUserID:    actorUserID,
				ActorRole:      actorRole,
				EventType:      entity.VoteEventOverride,
				PreviousChoice: &existing.Choice,
				NewChoice:      &existing.Choice,
				Reason:         reason,
			}); err != nil {
				return entity.Vote{}, fmt.Errorf("%s: %w", op, err)
			}
		}
		return existing, nil
	}

	updated, err := l.voteStorage.UpdateVoteChoice(ctx, ballotID, voterID, newChoice)
	if err != nil {
		return entity.Vote{}, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := l.eventStorage.SaveVoteEvent(ctx, entity.VoteEvent{
		BallotID:       ballotID,
		VoterID:        voterID,
		ActorUserID:    actorUserID,
		ActorRole:      actorRole,
		EventType:      entity.VoteEventOverride,
		PreviousChoice: &existing.Choice,
		NewChoice:      &newChoice,
		Reason:         reason,
	}); err != nil {
		return entity.Vote{}, fmt.Errorf("%s: %w", op, err)
	}

	l.log.Info("vote overridden",
		slog.String("op", op), slog.String("ballotID", ballotID), slog.String("voterID", voterID),
		slog.String("actorRole", string(actorRole)))

	return updated, nil
}

// EnrichedVote is a current vote annotated with who last set it, taken
// from the newest audit event for that voter.
type EnrichedVote struct {
	entity.Vote
	LastSetByRole entity.ActorRole
	LastSetAt     time.Time
}

// BallotVotesForAdmin joins current votes with the most recent audit event
// per voter. Votes created before event logging existed fall back to the
// user role and the vote's own update time.
func (l *VoteLedger) BallotVotesForAdmin(ctx context.Context, ballotID string) ([]EnrichedVote, tally.Counts, error) {
	const op = "VoteLedger.BallotVotesForAdmin"

	votes, err := l.voteStorage.VotesByBallot(ctx, ballotID)
	if err != nil {
		return nil, tally.Counts{}, fmt.Errorf("%s: %w", op, err)
	}

	counts, err := l.voteStorage.VoteCounts(ctx, ballotID)
	if err != nil {
		return nil, tally.Counts{}, fmt.Errorf("%s: %w", op, err)
	}

	events, err := l.eventStorage.VoteEventsByBallot(ctx, ballotID)
	if err != nil {
		return nil, tally.Counts{}, fmt.Errorf("%s: %w", op, err)
	}

	// Events arrive newest first; the first one seen per voter wins.
	lastByVoter := make(map[string]entity.VoteEvent, len(events))
	for _, event := range events {
		if _, seen := lastByVoter[event.VoterID]; !seen {
			lastByVoter[event.VoterID] = event
		}
	}

	enriched := make([]EnrichedVote, 0, len(votes))
	for _, vote := range votes {
		ev := EnrichedVote{Vote: vote, LastSetByRole: entity.ActorRoleUser, LastSetAt: vote.UpdatedAt}
		if event, ok := lastByVoter[vote.VoterID]; ok {
			ev.LastSetByRole = event.ActorRole
			ev.LastSetAt = event.CreatedAt
		}
		enriched = append(enriched, ev)
	}

	return enriched, counts, nil
}
