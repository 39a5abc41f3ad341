package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openquorum/ballot-service/internal/entity"
)

// Notifications exposes a user's in-app notification feed.
type Notifications struct {
	log     *slog.Logger
	storage NotificationStorage
}

func NewNotifications(log *slog.Logger, storage NotificationStorage) *Notifications {
	return &Notifications{log: log, storage: storage}
}

func (s *Notifications) UserNotifications(ctx context.Context, userID string) ([]entity.Notification, error) {
	const op = "Notifications.UserNotifications"

	notifications, err := s.storage.NotificationsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return notifications, nil
}

// MarkRead marks one of userID's own notifications as read. A notification
// belonging to another user is reported as not found, never touched.
func (s *Notifications) MarkRead(ctx context.Context, id, userID string) (entity.Notification, error) {
	const op = "Notifications.MarkRead"

	notification, err := s.storage.MarkNotificationRead(ctx, id, userID)
	if err != nil {
		return entity.Notification{}, fmt.Errorf("%s: %w", op, err)
	}

	return notification, nil
}
