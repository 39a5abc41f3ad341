package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/openquorum/ballot-service/internal/entity"
	"github.com/openquorum/ballot-service/internal/repo"
)

const ballotColumns = `id, title, description, creator_id, voter_list_id, created_at,
	voting_opens_at, voting_closes_at, voting_threshold, threshold_percentage,
	quorum_required, eligible_at_open, status`

func scanBallot(row interface{ Scan(...any) error }) (entity.Ballot, error) {
	var b entity.Ballot
	err := row.Scan(
		&b.ID, &b.Title, &b.Description, &b.CreatorID, &b.VoterListID, &b.CreatedAt,
		&b.VotingOpensAt, &b.VotingClosesAt, &b.VotingThreshold, &b.ThresholdPercentage,
		&b.QuorumRequired, &b.EligibleAtOpen, &b.Status,
	)
	return b, err
}

// CreateBallot inserts the ballot, lazily upserts a voter row per email and
// links each voter to the ballot, all in one transaction.
func (s *Storage) CreateBallot(ctx context.Context, ballot entity.Ballot, voterEmails []string) (entity.Ballot, error) {
	const op = "storage.postgres.CreateBallot"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return entity.Ballot{}, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	ballot.ID = uuid.NewString()

	const insertBallot = `INSERT INTO ballots
		(id, title, description, creator_id, voter_list_id, voting_opens_at, voting_closes_at,
		 voting_threshold, threshold_percentage, quorum_required, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + ballotColumns

	created, err := scanBallot(tx.QueryRowContext(ctx, insertBallot,
		ballot.ID, ballot.Title, ballot.Description, ballot.CreatorID, ballot.VoterListID,
		ballot.VotingOpensAt, ballot.VotingClosesAt, ballot.VotingThreshold,
		ballot.ThresholdPercentage, ballot.QuorumRequired, entity.BallotStatusDraft))
	if err != nil {
		return entity.Ballot{}, fmt.Errorf("%s: %w", op, err)
	}

	const upsertVoter = `INSERT INTO voters (id, email) VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id`
	const linkVoter = `INSERT INTO ballot_voters (id, ballot_id, voter_id) VALUES ($1, $2, $3)
		ON CONFLICT (ballot_id, voter_id) DO NOTHING`

	for _, email := range voterEmails {
		var voterID string
		if err := tx.QueryRowContext(ctx, upsertVoter, uuid.NewString(), email).Scan(&voterID); err != nil {
			return entity.Ballot{}, fmt.Errorf("%s: upsert voter: %w", op, err)
		}
		if _, err := tx.ExecContext(ctx, linkVoter, uuid.NewString(), created.ID, voterID); err != nil {
			return entity.Ballot{}, fmt.Errorf("%s: link voter: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return entity.Ballot{}, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (s *Storage) BallotByID(ctx context.Context, id string) (entity.Ballot, error) {
	const op = "storage.postgres.BallotByID"

	query := `SELECT ` + ballotColumns + ` FROM ballots WHERE id = $1`

	ballot, err := scanBallot(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Ballot{}, fmt.Errorf("%s: %w", op, repo.ErrBallotNotFound)
		}
		return entity.Ballot{}, fmt.Errorf("%s: %w", op, err)
	}

	return ballot, nil
}

// OpenVoting transitions a draft ballot to open with an adjusted voting
// window, recording the eligible-voter count at the moment of opening.
// The status guard makes concurrent opens apply at most once.
func (s *Storage) OpenVoting(ctx context.Context, id string, opensAt, closesAt time.Time) (entity.Ballot, error) {
	const op = "storage.postgres.OpenVoting"

	query := `UPDATE ballots
		SET status = 'open', voting_opens_at = $2, voting_closes_at = $3,
		    eligible_at_open = (SELECT COUNT(*) FROM ballot_voters WHERE ballot_id = $1)
		WHERE id = $1 AND status = 'draft'
		RETURNING ` + ballotColumns

	ballot, err := scanBallot(s.db.QueryRowContext(ctx, query, id, opensAt, closesAt))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Ballot{}, fmt.Errorf("%s: %w", op, repo.ErrBallotNotFound)
		}
		return entity.Ballot{}, fmt.Errorf("%s: %w", op, err)
	}

	return ballot, nil
}

// UpdateBallotStatus overwrites the status unconditionally. Administrative
// correction only: no guard, no notifications.
func (s *Storage) UpdateBallotStatus(ctx context.Context, id string, status entity.BallotStatus) (entity.Ballot, error) {
	const op = "storage.postgres.UpdateBallotStatus"

	query := `UPDATE ballots SET status = $2 WHERE id = $1 RETURNING ` + ballotColumns

	ballot, err := scanBallot(s.db.QueryRowContext(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Ballot{}, fmt.Errorf("%s: %w", op, repo.ErrBallotNotFound)
		}
		return entity.Ballot{}, fmt.Errorf("%s: %w", op, err)
	}

	return ballot, nil
}

// MarkBallotOpen is the scheduler's compare-and-swap draft -> open. It
// reports false when the ballot already left draft, which makes overlapping
// ticks and manual opens race-safe.
func (s *Storage) MarkBallotOpen(ctx context.Context, id string) (bool, error) {
	const op = "storage.postgres.MarkBallotOpen"

	query := `UPDATE ballots
		SET status = 'open',
		    eligible_at_open = (SELECT COUNT(*) FROM ballot_voters WHERE ballot_id = $1)
		WHERE id = $1 AND status = 'draft'`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// MarkBallotClosed is the compare-and-swap open -> closed.
func (s *Storage) MarkBallotClosed(ctx context.Context, id string) (bool, error) {
	const op = "storage.postgres.MarkBallotClosed"

	query := `UPDATE ballots SET status = 'closed' WHERE id = $1 AND status = 'open'`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (s *Storage) queryBallots(ctx context.Context, op, query string, args ...any) ([]entity.Ballot, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var ballots []entity.Ballot
	for rows.Next() {
		ballot, err := scanBallot(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		ballots = append(ballots, ballot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return ballots, nil
}

// BallotsOpeningBetween returns ballots of any status whose opening time
// falls inside [from, to], for open reminders.
func (s *Storage) BallotsOpeningBetween(ctx context.Context, from, to time.Time, limit int) ([]entity.Ballot, error) {
	const op = "storage.postgres.BallotsOpeningBetween"

	query := `SELECT ` + ballotColumns + ` FROM ballots
		WHERE voting_opens_at >= $1 AND voting_opens_at <= $2
		ORDER BY voting_opens_at ASC LIMIT $3`

	return s.queryBallots(ctx, op, query, from, to, limit)
}

// OpenBallotsClosingBetween returns open ballots whose closing time falls
// inside [from, to], for close reminders.
func (s *Storage) OpenBallotsClosingBetween(ctx context.Context, from, to time.Time, limit int) ([]entity.Ballot, error) {
	const op = "storage.postgres.OpenBallotsClosingBetween"

	query := `SELECT ` + ballotColumns + ` FROM ballots
		WHERE status = 'open' AND voting_closes_at >= $1 AND voting_closes_at <= $2
		ORDER BY voting_closes_at ASC LIMIT $3`

	return s.queryBallots(ctx, op, query, from, to, limit)
}

func (s *Storage) DraftBallotsDueToOpen(ctx context.Context, now time.Time, limit int) ([]entity.Ballot, error) {
	const op = "storage.postgres.DraftBallotsDueToOpen"

	query := `SELECT ` + ballotColumns + ` FROM ballots
		WHERE status = 'draft' AND voting_opens_at <= $1
		ORDER BY voting_opens_at ASC LIMIT $2`

	return s.queryBallots(ctx, op, query, now, limit)
}

func (s *Storage) OpenBallotsDueToClose(ctx context.Context, now time.Time, limit int) ([]entity.Ballot, error) {
	const op = "storage.postgres.OpenBallotsDueToClose"

	query := `SELECT ` + ballotColumns + ` FROM ballots
		WHERE status = 'open' AND voting_closes_at <= $1
		ORDER BY voting_closes_at ASC LIMIT $2`

	return s.queryBallots(ctx, op, query, now, limit)
}
