package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/openquorum/ballot-service/internal/entity"
	"github.com/openquorum/ballot-service/internal/repo"
	"github.com/openquorum/ballot-service/internal/tally"
)

const uniqueViolation = "23505"

// SaveVote inserts the first vote for a (ballot, voter) pair. The unique
// index on that pair serializes concurrent casts: losers get ErrVoteExists.
func (s *Storage) SaveVote(ctx context.Context, ballotID, voterID string, choice entity.VoteChoice) (entity.Vote, error) {
	const op = "storage.postgres.SaveVote"

	query := `INSERT INTO votes (id, ballot_id, voter_id, vote_choice)
		VALUES ($1, $2, $3, $4)
		RETURNING id, ballot_id, voter_id, vote_choice, voted_at, updated_at`

	var vote entity.Vote
	err := s.db.QueryRowContext(ctx, query, uuid.NewString(), ballotID, voterID, choice).
		Scan(&vote.ID, &vote.BallotID, &vote.VoterID, &vote.Choice, &vote.VotedAt, &vote.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return entity.Vote{}, fmt.Errorf("%s: %w", op, repo.ErrVoteExists)
		}
		return entity.Vote{}, fmt.Errorf("%s: %w", op, err)
	}

	return vote, nil
}

func (s *Storage) VoteByBallotAndVoter(ctx context.Context, ballotID, voterID string) (entity.Vote, error) {
	const op = "storage.postgres.VoteByBallotAndVoter"

	query := `SELECT id, ballot_id, voter_id, vote_choice, voted_at, updated_at
		FROM votes WHERE ballot_id = $1 AND voter_id = $2`

	var vote entity.Vote
	err := s.db.QueryRowContext(ctx, query, ballotID, voterID).
		Scan(&vote.ID, &vote.BallotID, &vote.VoterID, &vote.Choice, &vote.VotedAt, &vote.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Vote{}, fmt.Errorf("%s: %w", op, repo.ErrVoteNotFound)
		}
		return entity.Vote{}, fmt.Errorf("%s: %w", op, err)
	}

	return vote, nil
}

func (s *Storage) UpdateVoteChoice(ctx context.Context, ballotID, voterID string, choice entity.VoteChoice) (entity.Vote, error) {
	const op = "storage.postgres.UpdateVoteChoice"

	query := `UPDATE votes SET vote_choice = $3, updated_at = NOW()
		WHERE ballot_id = $1 AND voter_id = $2
		RETURNING id, ballot_id, voter_id, vote_choice, voted_at, updated_at`

	var vote entity.Vote
	err := s.db.QueryRowContext(ctx, query, ballotID, voterID, choice).
		Scan(&vote.ID, &vote.BallotID, &vote.VoterID, &vote.Choice, &vote.VotedAt, &vote.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Vote{}, fmt.Errorf("%s: %w", op, repo.ErrVoteNotFound)
		}
		return entity.Vote{}, fmt.Errorf("%s: %w", op, err)
	}

	return vote, nil
}

func (s *Storage) VotesByBallot(ctx context.Context, ballotID string) ([]entity.Vote, error) {
	const op = "storage.postgres.VotesByBallot"

	query := `SELECT id, ballot_id, voter_id, vote_choice, voted_at, updated_at
		FROM votes WHERE ballot_id = $1 ORDER BY voted_at DESC`

	rows, err := s.db.QueryContext(ctx, query, ballotID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var votes []entity.Vote
	for rows.Next() {
		var vote entity.Vote
		if err := rows.Scan(&vote.ID, &vote.BallotID, &vote.VoterID, &vote.Choice, &vote.VotedAt, &vote.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		votes = append(votes, vote)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return votes, nil
}

func (s *Storage) VoteCounts(ctx context.Context, ballotID string) (tally.Counts, error) {
	const op = "storage.postgres.VoteCounts"

	query := `SELECT vote_choice, COUNT(*) FROM votes WHERE ballot_id = $1 GROUP BY vote_choice`

	rows, err := s.db.QueryContext(ctx, query, ballotID)
	if err != nil {
		return tally.Counts{}, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var counts tally.Counts
	for rows.Next() {
		var choice entity.VoteChoice
		var n int
		if err := rows.Scan(&choice, &n); err != nil {
			return tally.Counts{}, fmt.Errorf("%s: scan: %w", op, err)
		}
		switch choice {
		case entity.VoteYea:
			counts.Yea = n
		case entity.VoteNay:
			counts.Nay = n
		case entity.VoteAbstain:
			counts.Abstain = n
		}
		counts.Total += n
	}

	if err := rows.Err(); err != nil {
		return tally.Counts{}, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return counts, nil
}

func (s *Storage) SaveVoteEvent(ctx context.Context, event entity.VoteEvent) (string, error) {
	const op = "storage.postgres.SaveVoteEvent"

	query := `INSERT INTO vote_events
		(id, ballot_id, voter_id, actor_user_id, actor_role, event_type, previous_choice, new_choice, reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id string
	err := s.db.QueryRowContext(ctx, query, uuid.NewString(), event.BallotID, event.VoterID,
		event.ActorUserID, event.ActorRole, event.EventType,
		event.PreviousChoice, event.NewChoice, event.Reason).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) VoteEventsByBallot(ctx context.Context, ballotID string) ([]entity.VoteEvent, error) {
	const op = "storage.postgres.VoteEventsByBallot"

	query := `SELECT id, ballot_id, voter_id, actor_user_id, actor_role, event_type,
		previous_choice, new_choice, reason, created_at
		FROM vote_events WHERE ballot_id = $1 ORDER BY created_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query, ballotID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var events []entity.VoteEvent
	for rows.Next() {
		var event entity.VoteEvent
		if err := rows.Scan(&event.ID, &event.BallotID, &event.VoterID, &event.ActorUserID,
			&event.ActorRole, &event.EventType, &event.PreviousChoice, &event.NewChoice,
			&event.Reason, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return events, nil
}
