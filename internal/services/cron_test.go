package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openquorum/ballot-service/internal/entity"
	"github.com/openquorum/ballot-service/internal/repo"
)

// The scheduler tests run against stateful in-memory fakes instead of
// gomock: idempotency across overlapping ticks is about what the second
// tick observes after the first one wrote, which per-call expectations
// cannot express.

type fakeBallotStore struct {
	mu      sync.Mutex
	ballots map[string]*entity.Ballot
}

func newFakeBallotStore(ballots ...entity.Ballot) *fakeBallotStore {
	s := &fakeBallotStore{ballots: make(map[string]*entity.Ballot)}
	for i := range ballots {
		b := ballots[i]
		s.ballots[b.ID] = &b
	}
	return s
}

func (s *fakeBallotStore) status(id string) entity.BallotStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ballots[id].Status
}

func (s *fakeBallotStore) CreateBallot(ctx context.Context, ballot entity.Ballot, voterEmails []string) (entity.Ballot, error) {
	panic("not used in scheduler tests")
}

func (s *fakeBallotStore) BallotByID(ctx context.Context, id string) (entity.Ballot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.ballots[id]
	if !ok {
		return entity.Ballot{}, repo.ErrBallotNotFound
	}
	return *b, nil
}

func (s *fakeBallotStore) OpenVoting(ctx context.Context, id string, opensAt, closesAt time.Time) (entity.Ballot, error) {
	panic("not used in scheduler tests")
}

func (s *fakeBallotStore) UpdateBallotStatus(ctx context.Context, id string, status entity.BallotStatus) (entity.Ballot, error) {
	panic("not used in scheduler tests")
}

func (s *fakeBallotStore) MarkBallotOpen(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.ballots[id]
	if !ok || b.Status != entity.BallotStatusDraft {
		return false, nil
	}
	b.Status = entity.BallotStatusOpen
	return true, nil
}

func (s *fakeBallotStore) MarkBallotClosed(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.ballots[id]
	if !ok || b.Status != entity.BallotStatusOpen {
		return false, nil
	}
	b.Status = entity.BallotStatusClosed
	return true, nil
}

func (s *fakeBallotStore) sorted(filter func(entity.Ballot) bool, limit int) []entity.Ballot {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.Ballot
	for _, b := range s.ballots {
		if filter(*b) {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (s *fakeBallotStore) BallotsOpeningBetween(ctx context.Context, from, to time.Time, limit int) ([]entity.Ballot, error) {
	return s.sorted(func(b entity.Ballot) bool {
		return !b.VotingOpensAt.Before(from) && !b.VotingOpensAt.After(to)
	}, limit), nil
}

func (s *fakeBallotStore) OpenBallotsClosingBetween(ctx context.Context, from, to time.Time, limit int) ([]entity.Ballot, error) {
	return s.sorted(func(b entity.Ballot) bool {
		return b.Status == entity.BallotStatusOpen && !b.VotingClosesAt.Before(from) && !b.VotingClosesAt.After(to)
	}, limit), nil
}

func (s *fakeBallotStore) DraftBallotsDueToOpen(ctx context.Context, now time.Time, limit int) ([]entity.Ballot, error) {
	return s.sorted(func(b entity.Ballot) bool {
		return b.Status == entity.BallotStatusDraft && !b.VotingOpensAt.After(now)
	}, limit), nil
}

func (s *fakeBallotStore) OpenBallotsDueToClose(ctx context.Context, now time.Time, limit int) ([]entity.Ballot, error) {
	return s.sorted(func(b entity.Ballot) bool {
		return b.Status == entity.BallotStatusOpen && !b.VotingClosesAt.After(now)
	}, limit), nil
}

type fakeVoterStore struct {
	votersByBallot map[string][]entity.Voter
}

func (s *fakeVoterStore) UpsertVoterByEmail(ctx context.Context, email string) (entity.Voter, error) {
	panic("not used in scheduler tests")
}

func (s *fakeVoterStore) VoterByUserID(ctx context.Context, userID string) (entity.Voter, error) {
	panic("not used in scheduler tests")
}

func (s *fakeVoterStore) AddBallotVoter(ctx context.Context, ballotID, voterID string) error {
	panic("not used in scheduler tests")
}

func (s *fakeVoterStore) BallotVoters(ctx context.Context, ballotID string) ([]entity.Voter, error) {
	return s.votersByBallot[ballotID], nil
}

func (s *fakeVoterStore) CountBallotVoters(ctx context.Context, ballotID string) (int, error) {
	return len(s.votersByBallot[ballotID]), nil
}

func (s *fakeVoterStore) IsEligible(ctx context.Context, ballotID, voterID string) (bool, error) {
	panic("not used in scheduler tests")
}

func (s *fakeVoterStore) VoterListEmails(ctx context.Context, listID string) ([]string, error) {
	panic("not used in scheduler tests")
}

type fakeNotifStore struct {
	mu    sync.Mutex
	saved []entity.Notification
}

func (s *fakeNotifStore) SaveNotification(ctx context.Context, n entity.Notification) (entity.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n.IdempotencyKey != nil {
		for _, existing := range s.saved {
			if existing.UserID == n.UserID && existing.IdempotencyKey != nil && *existing.IdempotencyKey == *n.IdempotencyKey {
				return entity.Notification{}, repo.ErrNotificationDuplicate
			}
		}
	}
	n.ID = fmt.Sprintf("notif-%d", len(s.saved)+1)
	s.saved = append(s.saved, n)
	return n, nil
}

func (s *fakeNotifStore) NotificationsByUser(ctx context.Context, userID string) ([]entity.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.Notification
	for _, n := range s.saved {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *fakeNotifStore) MarkNotificationRead(ctx context.Context, id, userID string) (entity.Notification, error) {
	panic("not used in scheduler tests")
}

func (s *fakeNotifStore) NotifiedUserIDs(ctx context.Context, ballotID string, typ entity.NotificationType, key string, userIDs []string) (map[string]struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wanted := make(map[string]struct{}, len(userIDs))
	for _, id := range userIDs {
		wanted[id] = struct{}{}
	}
	notified := make(map[string]struct{})
	for _, n := range s.saved {
		if n.BallotID == nil || *n.BallotID != ballotID || n.Type != typ {
			continue
		}
		if n.IdempotencyKey == nil || *n.IdempotencyKey != key {
			continue
		}
		if _, ok := wanted[n.UserID]; ok {
			notified[n.UserID] = struct{}{}
		}
	}
	return notified, nil
}

func (s *fakeNotifStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.saved)
}

type fakeEmailSender struct {
	mu           sync.Mutex
	reminders    int
	opened       int
	closed       int
	failReminder error
}

func (f *fakeEmailSender) SendVoterInvitation(ctx context.Context, data InvitationEmail) (bool, error) {
	panic("not used in scheduler tests")
}

func (f *fakeEmailSender) SendReminder(ctx context.Context, data ReminderEmail) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failReminder != nil {
		return false, f.failReminder
	}
	f.reminders++
	return true, nil
}

func (f *fakeEmailSender) SendOpened(ctx context.Context, data OpenedEmail) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opened++
	return true, nil
}

func (f *fakeEmailSender) SendClosed(ctx context.Context, data ClosedEmail) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed++
	return true, nil
}

func testVoters(n int) []entity.Voter {
	voters := make([]entity.Voter, 0, n)
	for i := 0; i < n; i++ {
		userID := fmt.Sprintf("user-%d", i+1)
		voters = append(voters, entity.Voter{
			ID:     fmt.Sprintf("voter-%d", i+1),
			Email:  fmt.Sprintf("voter%d@example.com", i+1),
			UserID: &userID,
		})
	}
	return voters
}

func newTestCron(t *testing.T, ballots *fakeBallotStore, voters *fakeVoterStore, notifs *fakeNotifStore, email *fakeEmailSender, now time.Time) *BallotCron {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cron := NewBallotCron(log, ballots, voters, notifs, email)
	cron.now = func() time.Time { return now }
	return cron
}

func TestBallotCron_OpensDueBallotExactlyOnce(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ballots := newFakeBallotStore(entity.Ballot{
		ID:             "ballot-1",
		Title:          "Budget vote",
		Status:         entity.BallotStatusDraft,
		VotingOpensAt:  now.Add(-time.Minute),
		VotingClosesAt: now.Add(24 * time.Hour),
	})
	voters := &fakeVoterStore{votersByBallot: map[string][]entity.Voter{"ballot-1": testVoters(3)}}
	notifs := &fakeNotifStore{}
	email := &fakeEmailSender{}

	cron := newTestCron(t, ballots, voters, notifs, email, now)

	result := cron.Tick(context.Background(), CronConfig{})
	assert.Equal(t, []string{"ballot-1"}, result.Opened)
	assert.Equal(t, 0, result.Errors)
	assert.Equal(t, entity.BallotStatusOpen, ballots.status("ballot-1"))
	assert.Equal(t, 3, email.opened)
	assert.Equal(t, 3, notifs.count())

	// Second tick: the ballot already left draft, nothing sends again and
	// nothing is recorded twice.
	result = cron.Tick(context.Background(), CronConfig{})
	assert.Empty(t, result.Opened)
	assert.Equal(t, 0, result.Errors)
	assert.Equal(t, 3, email.opened)
	assert.Equal(t, 3, notifs.count())
}

func TestBallotCron_ClosesDueBallotExactlyOnce(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ballots := newFakeBallotStore(entity.Ballot{
		ID:             "ballot-1",
		Title:          "Budget vote",
		Status:         entity.BallotStatusOpen,
		VotingOpensAt:  now.Add(-24 * time.Hour),
		VotingClosesAt: now.Add(-time.Minute),
	})
	voters := &fakeVoterStore{votersByBallot: map[string][]entity.Voter{"ballot-1": testVoters(2)}}
	notifs := &fakeNotifStore{}
	email := &fakeEmailSender{}

	cron := newTestCron(t, ballots, voters, notifs, email, now)

	result := cron.Tick(context.Background(), CronConfig{})
	assert.Equal(t, []string{"ballot-1"}, result.Closed)
	assert.Equal(t, entity.BallotStatusClosed, ballots.status("ballot-1"))
	assert.Equal(t, 2, email.closed)
	assert.Equal(t, 2, notifs.count())

	result = cron.Tick(context.Background(), CronConfig{})
	assert.Empty(t, result.Closed)
	assert.Equal(t, entity.BallotStatusClosed, ballots.status("ballot-1"))
	assert.Equal(t, 2, email.closed)
	assert.Equal(t, 2, notifs.count())
}

func TestBallotCron_RemindersAreIdempotent(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ballots := newFakeBallotStore(entity.Ballot{
		ID:             "ballot-1",
		Title:          "Budget vote",
		Status:         entity.BallotStatusDraft,
		VotingOpensAt:  now.Add(10 * time.Minute),
		VotingClosesAt: now.Add(24 * time.Hour),
	})
	voters := &fakeVoterStore{votersByBallot: map[string][]entity.Voter{"ballot-1": testVoters(3)}}
	notifs := &fakeNotifStore{}
	email := &fakeEmailSender{}

	cron := newTestCron(t, ballots, voters, notifs, email, now)

	result := cron.Tick(context.Background(), CronConfig{})
	require.Len(t, result.OpenReminders, 1)
	assert.Equal(t, 3, result.OpenReminders[0].Count)
	assert.Equal(t, 3, email.reminders)
	assert.Equal(t, 3, notifs.count())

	result = cron.Tick(context.Background(), CronConfig{})
	require.Len(t, result.OpenReminders, 1)
	assert.Equal(t, 0, result.OpenReminders[0].Count)
	assert.Equal(t, 3, result.Skipped)
	assert.Equal(t, 3, email.reminders)
	assert.Equal(t, 3, notifs.count())
}

func TestBallotCron_ReminderFailureRetriesNextTick(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ballots := newFakeBallotStore(entity.Ballot{
		ID:             "ballot-1",
		Title:          "Budget vote",
		Status:         entity.BallotStatusDraft,
		VotingOpensAt:  now.Add(10 * time.Minute),
		VotingClosesAt: now.Add(24 * time.Hour),
	})
	voters := &fakeVoterStore{votersByBallot: map[string][]entity.Voter{"ballot-1": testVoters(2)}}
	notifs := &fakeNotifStore{}
	email := &fakeEmailSender{failReminder: errors.New("provider down")}

	cron := newTestCron(t, ballots, voters, notifs, email, now)

	result := cron.Tick(context.Background(), CronConfig{})
	assert.Equal(t, 2, result.Errors)
	assert.Equal(t, 0, notifs.count())

	// Provider recovers; with no record written the next tick resends.
	email.failReminder = nil
	result = cron.Tick(context.Background(), CronConfig{})
	assert.Equal(t, 0, result.Errors)
	assert.Equal(t, 2, email.reminders)
	assert.Equal(t, 2, notifs.count())
}

func TestBallotCron_DryRunWritesNothing(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ballots := newFakeBallotStore(
		entity.Ballot{
			ID:             "ballot-1",
			Status:         entity.BallotStatusDraft,
			VotingOpensAt:  now.Add(-time.Minute),
			VotingClosesAt: now.Add(24 * time.Hour),
		},
		entity.Ballot{
			ID:             "ballot-2",
			Status:         entity.BallotStatusOpen,
			VotingOpensAt:  now.Add(-24 * time.Hour),
			VotingClosesAt: now.Add(-time.Minute),
		},
	)
	voters := &fakeVoterStore{votersByBallot: map[string][]entity.Voter{
		"ballot-1": testVoters(2),
		"ballot-2": testVoters(2),
	}}
	notifs := &fakeNotifStore{}
	email := &fakeEmailSender{}

	cron := newTestCron(t, ballots, voters, notifs, email, now)

	result := cron.Tick(context.Background(), CronConfig{DryRun: true})
	assert.Equal(t, []string{"ballot-1"}, result.Opened)
	assert.Equal(t, []string{"ballot-2"}, result.Closed)

	assert.Equal(t, entity.BallotStatusDraft, ballots.status("ballot-1"))
	assert.Equal(t, entity.BallotStatusOpen, ballots.status("ballot-2"))
	assert.Equal(t, 0, email.opened)
	assert.Equal(t, 0, email.closed)
	assert.Equal(t, 0, notifs.count())
}

func TestBallotCron_BatchingDrainsBacklogWithinIterationCap(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var due []entity.Ballot
	for i := 0; i < 7; i++ {
		due = append(due, entity.Ballot{
			ID:             fmt.Sprintf("ballot-%d", i+1),
			Status:         entity.BallotStatusDraft,
			VotingOpensAt:  now.Add(-time.Minute),
			VotingClosesAt: now.Add(24 * time.Hour),
		})
	}
	ballots := newFakeBallotStore(due...)
	voters := &fakeVoterStore{votersByBallot: map[string][]entity.Voter{}}
	notifs := &fakeNotifStore{}
	email := &fakeEmailSender{}

	cron := newTestCron(t, ballots, voters, notifs, email, now)

	result := cron.Tick(context.Background(), CronConfig{BatchSize: 2, MaxIterations: 10})
	assert.Len(t, result.Opened, 7)
	for _, b := range due {
		assert.Equal(t, entity.BallotStatusOpen, ballots.status(b.ID))
	}
}

func TestBallotCron_CappedIterationsLeaveBacklogForNextTick(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var due []entity.Ballot
	for i := 0; i < 5; i++ {
		due = append(due, entity.Ballot{
			ID:             fmt.Sprintf("ballot-%d", i+1),
			Status:         entity.BallotStatusDraft,
			VotingOpensAt:  now.Add(-time.Minute),
			VotingClosesAt: now.Add(24 * time.Hour),
		})
	}
	ballots := newFakeBallotStore(due...)
	voters := &fakeVoterStore{votersByBallot: map[string][]entity.Voter{}}
	notifs := &fakeNotifStore{}
	email := &fakeEmailSender{}

	cron := newTestCron(t, ballots, voters, notifs, email, now)

	result := cron.Tick(context.Background(), CronConfig{BatchSize: 2, MaxIterations: 2})
	assert.Len(t, result.Opened, 4)

	result = cron.Tick(context.Background(), CronConfig{BatchSize: 2, MaxIterations: 2})
	assert.Len(t, result.Opened, 1)
}

func TestIdempotencyKeyFormat(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 30, 0, 0, time.FixedZone("UTC+3", 3*60*60))
	key := idempotencyKey("ballot-1", "opened", ts)
	assert.Equal(t, "ballot:ballot-1:opened:2026-03-01T09:30:00Z", key)
}

func TestMinutesUntil(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 10, minutesUntil(now, now.Add(10*time.Minute)))
	assert.Equal(t, 10, minutesUntil(now, now.Add(9*time.Minute+30*time.Second)))
	assert.Equal(t, 1, minutesUntil(now, now.Add(10*time.Second)))
	assert.Equal(t, 1, minutesUntil(now, now.Add(-time.Minute)))
}
