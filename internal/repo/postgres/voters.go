package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/openquorum/ballot-service/internal/entity"
	"github.com/openquorum/ballot-service/internal/repo"
)

func (s *Storage) UpsertVoterByEmail(ctx context.Context, email string) (entity.Voter, error) {
	const op = "storage.postgres.UpsertVoterByEmail"

	query := `INSERT INTO voters (id, email) VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id, email, name, user_id, created_at`

	var voter entity.Voter
	err := s.db.QueryRowContext(ctx, query, uuid.NewString(), email).
		Scan(&voter.ID, &voter.Email, &voter.Name, &voter.UserID, &voter.CreatedAt)
	if err != nil {
		return entity.Voter{}, fmt.Errorf("%s: %w", op, err)
	}

	return voter, nil
}

func (s *Storage) VoterByUserID(ctx context.Context, userID string) (entity.Voter, error) {
	const op = "storage.postgres.VoterByUserID"

	query := `SELECT id, email, name, user_id, created_at FROM voters WHERE user_id = $1`

	var voter entity.Voter
	err := s.db.QueryRowContext(ctx, query, userID).
		Scan(&voter.ID, &voter.Email, &voter.Name, &voter.UserID, &voter.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Voter{}, fmt.Errorf("%s: %w", op, repo.ErrVoterNotFound)
		}
		return entity.Voter{}, fmt.Errorf("%s: %w", op, err)
	}

	return voter, nil
}

func (s *Storage) AddBallotVoter(ctx context.Context, ballotID, voterID string) error {
	const op = "storage.postgres.AddBallotVoter"

	query := `INSERT INTO ballot_voters (id, ballot_id, voter_id) VALUES ($1, $2, $3)
		ON CONFLICT (ballot_id, voter_id) DO NOTHING`

	if _, err := s.db.ExecContext(ctx, query, uuid.NewString(), ballotID, voterID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) BallotVoters(ctx context.Context, ballotID string) ([]entity.Voter, error) {
	const op = "storage.postgres.BallotVoters"

	query := `SELECT v.id, v.email, v.name, v.user_id, v.created_at
		FROM voters v
		INNER JOIN ballot_voters bv ON bv.voter_id = v.id
		WHERE bv.ballot_id = $1
		ORDER BY v.email ASC`

	rows, err := s.db.QueryContext(ctx, query, ballotID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var voters []entity.Voter
	for rows.Next() {
		var voter entity.Voter
		if err := rows.Scan(&voter.ID, &voter.Email, &voter.Name, &voter.UserID, &voter.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		voters = append(voters, voter)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return voters, nil
}

func (s *Storage) CountBallotVoters(ctx context.Context, ballotID string) (int, error) {
	const op = "storage.postgres.CountBallotVoters"

	query := `SELECT COUNT(*) FROM ballot_voters WHERE ballot_id = $1`

	var total int
	if err := s.db.QueryRowContext(ctx, query, ballotID).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return total, nil
}

func (s *Storage) IsEligible(ctx context.Context, ballotID, voterID string) (bool, error) {
	const op = "storage.postgres.IsEligible"

	query := `SELECT EXISTS (SELECT 1 FROM ballot_voters WHERE ballot_id = $1 AND voter_id = $2)`

	var eligible bool
	if err := s.db.QueryRowContext(ctx, query, ballotID, voterID).Scan(&eligible); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return eligible, nil
}

func (s *Storage) VoterListEmails(ctx context.Context, listID string) ([]string, error) {
	const op = "storage.postgres.VoterListEmails"

	query := `SELECT v.email
		FROM voters v
		INNER JOIN voter_list_members m ON m.voter_id = v.id
		WHERE m.voter_list_id = $1`

	rows, err := s.db.QueryContext(ctx, query, listID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		emails = append(emails, email)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return emails, nil
}
