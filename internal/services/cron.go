package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/openquorum/ballot-service/internal/entity"
	"github.com/openquorum/ballot-service/internal/repo"
)

type NotificationStorage interface {
	SaveNotification(ctx context.Context, n entity.Notification) (entity.Notification, error)
	NotificationsByUser(ctx context.Context, userID string) ([]entity.Notification, error)
	MarkNotificationRead(ctx context.Context, id, userID string) (entity.Notification, error)
	NotifiedUserIDs(ctx context.Context, ballotID string, typ entity.NotificationType, key string, userIDs []string) (map[string]struct{}, error)
}

type CronConfig struct {
	OpenReminderMinutes  int
	CloseReminderMinutes int
	BatchSize            int
	MaxIterations        int
	// DryRun suppresses every write and send while still reporting what a
	// real tick would have done.
	DryRun bool
}

const (
	defaultReminderMinutes = 15
	defaultBatchSize       = 50
	defaultMaxIterations   = 10
)

func (c CronConfig) normalized() CronConfig {
	if c.OpenReminderMinutes <= 0 {
		c.OpenReminderMinutes = defaultReminderMinutes
	}
	if c.CloseReminderMinutes <= 0 {
		c.CloseReminderMinutes = defaultReminderMinutes
	}
	if c.BatchSize <= 0 {
		c.BatchSize = defaultBatchSize
	}
	if c.MaxIterations <= 0 {
		c.MaxIterations = defaultMaxIterations
	}
	return c
}

type ReminderBatch struct {
	BallotID string `json:"ballot_id"`
	Count    int    `json:"count"`
}

type CronResult struct {
	Now            time.Time       `json:"now"`
	Opened         []string        `json:"opened"`
	Closed         []string        `json:"closed"`
	OpenReminders  []ReminderBatch `json:"open_reminders"`
	CloseReminders []ReminderBatch `json:"close_reminders"`
	Skipped        int             `json:"skipped"`
	Errors         int             `json:"errors"`
}

// BallotCron is the time-driven sweep over ballots: reminders before a
// window boundary, then the guarded draft->open and open->closed
// transitions, each with exactly-once notifications per event occurrence.
// A tick never returns an error; failures are isolated per phase and per
// recipient and surface only in the Errors counter.
type BallotCron struct {
	log           *slog.Logger
	ballotStorage BallotStorage
	voterStorage  VoterStorage
	notifStorage  NotificationStorage
	email         EmailSender
	now           func() time.Time
}

func NewBallotCron(
	log *slog.Logger,
	ballotStorage BallotStorage,
	voterStorage VoterStorage,
	notifStorage NotificationStorage,
	email EmailSender,
) *BallotCron {
	return &BallotCron{
		log:           log,
		ballotStorage: ballotStorage,
		voterStorage:  voterStorage,
		notifStorage:  notifStorage,
		email:         email,
		now:           time.Now,
	}
}

func idempotencyKey(ballotID string, event string, ts time.Time) string {
	return fmt.Sprintf("ballot:%s:%s:%s", ballotID, event, ts.UTC().Format(time.RFC3339))
}

type recipient struct {
	key   string
	email string
	name  *string
}

func (c *BallotCron) recipients(ctx context.Context, ballotID string) ([]recipient, error) {
	voters, err := c.voterStorage.BallotVoters(ctx, ballotID)
	if err != nil {
		return nil, err
	}
	out := make([]recipient, 0, len(voters))
	for _, v := range voters {
		if v.Email == "" {
			continue
		}
		out = append(out, recipient{key: v.NotifyKey(), email: v.Email, name: v.Name})
	}
	return out, nil
}

// Tick runs the four scheduler phases once. Safe to invoke concurrently
// with itself or with manual admin actions: status moves are
// compare-and-swap and notifications are keyed, so overlap costs skipped
// work, never duplicates.
func (c *BallotCron) Tick(ctx context.Context, config CronConfig) CronResult {
	const op = "BallotCron.Tick"

	cfg := config.normalized()
	now := c.now()
	result := CronResult{
		Now:            now,
		Opened:         []string{},
		Closed:         []string{},
		OpenReminders:  []ReminderBatch{},
		CloseReminders: []ReminderBatch{},
	}

	log := c.log.With(slog.String("op", op), slog.Bool("dryRun", cfg.DryRun))

	if err := c.openReminderPhase(ctx, cfg, now, &result); err != nil {
		log.Error("open reminder phase failed", slog.String("error", err.Error()))
		result.Errors++
	}
	if err := c.closeReminderPhase(ctx, cfg, now, &result); err != nil {
		log.Error("close reminder phase failed", slog.String("error", err.Error()))
		result.Errors++
	}
	if err := c.openTransitionPhase(ctx, cfg, now, &result); err != nil {
		log.Error("open transition phase failed", slog.String("error", err.Error()))
		result.Errors++
	}
	if err := c.closeTransitionPhase(ctx, cfg, now, &result); err != nil {
		log.Error("close transition phase failed", slog.String("error", err.Error()))
		result.Errors++
	}

	log.Info("tick complete",
		slog.Int("opened", len(result.Opened)),
		slog.Int("closed", len(result.Closed)),
		slog.Int("skipped", result.Skipped),
		slog.Int("errors", result.Errors))

	return result
}

// iterateBatches re-runs fn while it reports a full page, bounded by the
// iteration cap so a backlog cannot pin a single tick forever.
func (c *BallotCron) iterateBatches(maxIterations int, fn func() (bool, error)) error {
	for i := 0; i < maxIterations; i++ {
		fullPage, err := fn()
		if err != nil {
			return err
		}
		if !fullPage {
			return nil
		}
	}
	return nil
}

func (c *BallotCron) openReminderPhase(ctx context.Context, cfg CronConfig, now time.Time, result *CronResult) error {
	windowEnd := now.Add(time.Duration(cfg.OpenReminderMinutes) * time.Minute)

	return c.iterateBatches(cfg.MaxIterations, func() (bool, error) {
		ballots, err := c.ballotStorage.BallotsOpeningBetween(ctx, now, windowEnd, cfg.BatchSize)
		if err != nil {
			return false, err
		}
		for _, b := range ballots {
			count := c.sendReminders(ctx, cfg, now, b, ReminderOpen, b.VotingOpensAt, result)
			result.OpenReminders = append(result.OpenReminders, ReminderBatch{BallotID: b.ID, Count: count})
		}
		return len(ballots) == cfg.BatchSize, nil
	})
}

func (c *BallotCron) closeReminderPhase(ctx context.Context, cfg CronConfig, now time.Time, result *CronResult) error {
	windowEnd := now.Add(time.Duration(cfg.CloseReminderMinutes) * time.Minute)

	return c.iterateBatches(cfg.MaxIterations, func() (bool, error) {
		ballots, err := c.ballotStorage.OpenBallotsClosingBetween(ctx, now, windowEnd, cfg.BatchSize)
		if err != nil {
			return false, err
		}
		for _, b := range ballots {
			count := c.sendReminders(ctx, cfg, now, b, ReminderClose, b.VotingClosesAt, result)
			result.CloseReminders = append(result.CloseReminders, ReminderBatch{BallotID: b.ID, Count: count})
		}
		return len(ballots) == cfg.BatchSize, nil
	})
}

func (c *BallotCron) sendReminders(ctx context.Context, cfg CronConfig, now time.Time, b entity.Ballot, kind ReminderKind, when time.Time, result *CronResult) int {
	key := idempotencyKey(b.ID, string(kind)+"-reminder", when)

	recipients, err := c.recipients(ctx, b.ID)
	if err != nil {
		c.log.Error("failed to load reminder recipients",
			slog.String("ballotID", b.ID), slog.String("error", err.Error()))
		result.Errors++
		return 0
	}

	sent, err := c.alreadyNotified(ctx, b.ID, entity.NotificationVotingReminder, key, recipients)
	if err != nil {
		c.log.Error("failed to load sent reminders",
			slog.String("ballotID", b.ID), slog.String("error", err.Error()))
		result.Errors++
		return 0
	}

	minutes := minutesUntil(now, when)
	count := 0
	for _, r := range recipients {
		if _, done := sent[r.key]; done {
			result.Skipped++
			continue
		}
		if cfg.DryRun {
			count++
			continue
		}

		ok, err := c.email.SendReminder(ctx, ReminderEmail{
			Kind:        kind,
			BallotID:    b.ID,
			BallotTitle: b.Title,
			VoterEmail:  r.email,
			VoterName:   r.name,
			When:        when,
			Minutes:     minutes,
		})
		if err != nil {
			c.log.Warn("reminder email failed",
				slog.String("ballotID", b.ID), slog.String("kind", string(kind)), slog.String("error", err.Error()))
			result.Errors++
			continue
		}
		if !ok {
			// Not delivered and no record written; the next tick retries.
			continue
		}

		message := fmt.Sprintf("Ballot %ss in %d minute%s", kind, minutes, plural(minutes))
		if c.record(ctx, r.key, b.ID, entity.NotificationVotingReminder, key, message, result) {
			count++
		}
	}
	return count
}

func (c *BallotCron) openTransitionPhase(ctx context.Context, cfg CronConfig, now time.Time, result *CronResult) error {
	return c.iterateBatches(cfg.MaxIterations, func() (bool, error) {
		ballots, err := c.ballotStorage.DraftBallotsDueToOpen(ctx, now, cfg.BatchSize)
		if err != nil {
			return false, err
		}
		for _, b := range ballots {
			transitioned := cfg.DryRun
			if !cfg.DryRun {
				transitioned, err = c.ballotStorage.MarkBallotOpen(ctx, b.ID)
				if err != nil {
					return false, err
				}
			}
			if !transitioned {
				continue
			}
			result.Opened = append(result.Opened, b.ID)
			c.notifyTransition(ctx, cfg, b, entity.NotificationVotingOpened,
				idempotencyKey(b.ID, "opened", b.VotingOpensAt), "Voting is now open", result)
		}
		return len(ballots) == cfg.BatchSize, nil
	})
}

func (c *BallotCron) closeTransitionPhase(ctx context.Context, cfg CronConfig, now time.Time, result *CronResult) error {
	return c.iterateBatches(cfg.MaxIterations, func() (bool, error) {
		ballots, err := c.ballotStorage.OpenBallotsDueToClose(ctx, now, cfg.BatchSize)
		if err != nil {
			return false, err
		}
		for _, b := range ballots {
			transitioned := cfg.DryRun
			if !cfg.DryRun {
				transitioned, err = c.ballotStorage.MarkBallotClosed(ctx, b.ID)
				if err != nil {
					return false, err
				}
			}
			if !transitioned {
				continue
			}
			result.Closed = append(result.Closed, b.ID)
			c.notifyTransition(ctx, cfg, b, entity.NotificationVotingClosed,
				idempotencyKey(b.ID, "closed", b.VotingClosesAt), "Voting is now closed", result)
		}
		return len(ballots) == cfg.BatchSize, nil
	})
}

func (c *BallotCron) notifyTransition(ctx context.Context, cfg CronConfig, b entity.Ballot, typ entity.NotificationType, key, message string, result *CronResult) {
	recipients, err := c.recipients(ctx, b.ID)
	if err != nil {
		c.log.Error("failed to load transition recipients",
			slog.String("ballotID", b.ID), slog.String("error", err.Error()))
		result.Errors++
		return
	}

	sent, err := c.alreadyNotified(ctx, b.ID, typ, key, recipients)
	if err != nil {
		c.log.Error("failed to load sent notifications",
			slog.String("ballotID", b.ID), slog.String("error", err.Error()))
		result.Errors++
		return
	}

	for _, r := range recipients {
		if _, done := sent[r.key]; done {
			result.Skipped++
			continue
		}
		if cfg.DryRun {
			continue
		}

		var ok bool
		switch typ {
		case entity.NotificationVotingOpened:
			ok, err = c.email.SendOpened(ctx, OpenedEmail{
				BallotID:    b.ID,
				BallotTitle: b.Title,
				VoterEmail:  r.email,
				VoterName:   r.name,
				ClosesAt:    b.VotingClosesAt,
			})
		default:
			ok, err = c.email.SendClosed(ctx, ClosedEmail{
				BallotID:    b.ID,
				BallotTitle: b.Title,
				VoterEmail:  r.email,
				VoterName:   r.name,
			})
		}
		if err != nil {
			c.log.Warn("transition email failed",
				slog.String("ballotID", b.ID), slog.String("type", string(typ)), slog.String("error", err.Error()))
			result.Errors++
			continue
		}
		if !ok {
			continue
		}

		c.record(ctx, r.key, b.ID, typ, key, message, result)
	}
}

func (c *BallotCron) alreadyNotified(ctx context.Context, ballotID string, typ entity.NotificationType, key string, recipients []recipient) (map[string]struct{}, error) {
	userIDs := make([]string, 0, len(recipients))
	for _, r := range recipients {
		userIDs = append(userIDs, r.key)
	}
	return c.notifStorage.NotifiedUserIDs(ctx, ballotID, typ, key, userIDs)
}

// record persists the notification row that marks this recipient as sent.
// A duplicate-key error means a concurrent tick won; that still counts as
// recorded.
func (c *BallotCron) record(ctx context.Context, userID, ballotID string, typ entity.NotificationType, key, message string, result *CronResult) bool {
	_, err := c.notifStorage.SaveNotification(ctx, entity.Notification{
		UserID:         userID,
		BallotID:       &ballotID,
		Type:           typ,
		Message:        message,
		IdempotencyKey: &key,
	})
	if err != nil {
		if errors.Is(err, repo.ErrNotificationDuplicate) {
			result.Skipped++
			return true
		}
		c.log.Error("failed to record notification",
			slog.String("ballotID", ballotID), slog.String("error", err.Error()))
		result.Errors++
		return false
	}
	return true
}

func minutesUntil(now, when time.Time) int {
	minutes := int(math.Ceil(when.Sub(now).Minutes()))
	if minutes < 1 {
		return 1
	}
	return minutes
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
