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
)

// SaveNotification records a dispatched message. When an idempotency key
// is set, the unique (user_id, idempotency_key) index rejects a repeat
// record with ErrNotificationDuplicate, which overlapping scheduler ticks
// treat as already-sent.
func (s *Storage) SaveNotification(ctx context.Context, n entity.Notification) (entity.Notification, error) {
	const op = "storage.postgres.SaveNotification"

	query := `INSERT INTO notifications (id, user_id, ballot_id, type, message, idempotency_key)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, ballot_id, type, message, idempotency_key, sent_at, read_at`

	var saved entity.Notification
	err := s.db.QueryRowContext(ctx, query, uuid.NewString(), n.UserID, n.BallotID, n.Type, n.Message, n.IdempotencyKey).
		Scan(&saved.ID, &saved.UserID, &saved.BallotID, &saved.Type, &saved.Message,
			&saved.IdempotencyKey, &saved.SentAt, &saved.ReadAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return entity.Notification{}, fmt.Errorf("%s: %w", op, repo.ErrNotificationDuplicate)
		}
		return entity.Notification{}, fmt.Errorf("%s: %w", op, err)
	}

	return saved, nil
}

func (s *Storage) NotificationsByUser(ctx context.Context, userID string) ([]entity.Notification, error) {
	const op = "storage.postgres.NotificationsByUser"

	query := `SELECT id, user_id, ballot_id, type, message, idempotency_key, sent_at, read_at
		FROM notifications WHERE user_id = $1 ORDER BY sent_at DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var notifications []entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.BallotID, &n.Type, &n.Message,
			&n.IdempotencyKey, &n.SentAt, &n.ReadAt); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return notifications, nil
}

// MarkNotificationRead is scoped to the owning user so a guessed ID
// belonging to someone else matches no row and writes nothing.
func (s *Storage) MarkNotificationRead(ctx context.Context, id, userID string) (entity.Notification, error) {
	const op = "storage.postgres.MarkNotificationRead"

	query := `UPDATE notifications SET read_at = NOW() WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, ballot_id, type, message, idempotency_key, sent_at, read_at`

	var n entity.Notification
	err := s.db.QueryRowContext(ctx, query, id, userID).
		Scan(&n.ID, &n.UserID, &n.BallotID, &n.Type, &n.Message, &n.IdempotencyKey, &n.SentAt, &n.ReadAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Notification{}, fmt.Errorf("%s: %w", op, repo.ErrNotificationNotFound)
		}
		return entity.Notification{}, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

// NotifiedUserIDs returns which of the given users already have a
// notification recorded for this ballot, type and idempotency key.
func (s *Storage) NotifiedUserIDs(ctx context.Context, ballotID string, typ entity.NotificationType, key string, userIDs []string) (map[string]struct{}, error) {
	const op = "storage.postgres.NotifiedUserIDs"

	notified := make(map[string]struct{})
	if len(userIDs) == 0 {
		return notified, nil
	}

	query := `SELECT user_id FROM notifications
		WHERE ballot_id = $1 AND type = $2 AND idempotency_key = $3 AND user_id = ANY($4)`

	rows, err := s.db.QueryContext(ctx, query, ballotID, typ, key, pq.Array(userIDs))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		notified[userID] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return notified, nil
}
