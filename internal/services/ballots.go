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

var (
	ErrValidation        = errors.New("validation error")
	ErrNotEligible       = errors.New("user is not an eligible voter")
	ErrInvalidTransition = errors.New("invalid ballot status transition")
	ErrForbidden         = errors.New("actor role not permitted")
)

type BallotStorage interface {
	CreateBallot(ctx context.Context, ballot entity.Ballot, voterEmails []string) (entity.Ballot, error)
	BallotByID(ctx context.Context, id string) (entity.Ballot, error)
	OpenVoting(ctx context.Context, id string, opensAt, closesAt time.Time) (entity.Ballot, error)
	UpdateBallotStatus(ctx context.Context, id string, status entity.BallotStatus) (entity.Ballot, error)
	MarkBallotOpen(ctx context.Context, id string) (bool, error)
	MarkBallotClosed(ctx context.Context, id string) (bool, error)
	BallotsOpeningBetween(ctx context.Context, from, to time.Time, limit int) ([]entity.Ballot, error)
	OpenBallotsClosingBetween(ctx context.Context, from, to time.Time, limit int) ([]entity.Ballot, error)
	DraftBallotsDueToOpen(ctx context.Context, now time.Time, limit int) ([]entity.Ballot, error)
	OpenBallotsDueToClose(ctx context.Context, now time.Time, limit int) ([]entity.Ballot, error)
}

type VoterStorage interface {
	UpsertVoterByEmail(ctx context.Context, email string) (entity.Voter, error)
	VoterByUserID(ctx context.Context, userID string) (entity.Voter, error)
	AddBallotVoter(ctx context.Context, ballotID, voterID string) error
	BallotVoters(ctx context.Context, ballotID string) ([]entity.Voter, error)
	CountBallotVoters(ctx context.Context, ballotID string) (int, error)
	IsEligible(ctx context.Context, ballotID, voterID string) (bool, error)
	VoterListEmails(ctx context.Context, listID string) ([]string, error)
}

// Ballots owns ballot creation and the draft -> open -> closed lifecycle.
type Ballots struct {
	log               *slog.Logger
	ballotStorage     BallotStorage
	voterStorage      VoterStorage
	voteStorage       VoteStorage
	email             EmailSender
	freezeEligibility bool
}

// NewBallots returns the ballot service. When freezeEligibility is set,
// passing/quorum math uses the eligible-voter count recorded when voting
// opened instead of re-counting current assignments.
func NewBallots(
	log *slog.Logger,
	ballotStorage BallotStorage,
	voterStorage VoterStorage,
	voteStorage VoteStorage,
	email EmailSender,
	freezeEligibility bool,
) *Ballots {
	return &Ballots{
		log:               log,
		ballotStorage:     ballotStorage,
		voterStorage:      voterStorage,
		voteStorage:       voteStorage,
		email:             email,
		freezeEligibility: freezeEligibility,
	}
}

type CreateBallotParams struct {
	Title               string
	Description         string
	CreatorID           string
	VotingOpensAt       time.Time
	VotingClosesAt      time.Time
	VotingThreshold     entity.VotingThreshold
	ThresholdPercentage *float64
	QuorumRequired      *int
	VoterListID         *string
	VoterEmails         []string
}

func (s *Ballots) CreateBallot(ctx context.Context, params CreateBallotParams) (entity.Ballot, error) {
	const op = "Ballots.CreateBallot"

	if params.Title == "" || params.Description == "" {
		return entity.Ballot{}, fmt.Errorf("%w: title and description are required", ErrValidation)
	}
	if !params.VotingClosesAt.After(params.VotingOpensAt) {
		return entity.Ballot{}, fmt.Errorf("%w: voting close time must be after open time", ErrValidation)
	}
	if params.VotingThreshold == "" {
		params.VotingThreshold = entity.ThresholdSimpleMajority
	}
	if params.VotingThreshold == entity.ThresholdCustom &&
		(params.ThresholdPercentage == nil || *params.ThresholdPercentage <= 0) {
		return entity.Ballot{}, fmt.Errorf("%w: custom threshold requires a percentage above zero", ErrValidation)
	}
	if params.QuorumRequired != nil && *params.QuorumRequired < 1 {
		return entity.Ballot{}, fmt.Errorf("%w: quorum must be at least 1 voter", ErrValidation)
	}
	if params.VoterListID == nil && len(params.VoterEmails) == 0 {
		return entity.Ballot{}, fmt.Errorf("%w: a voter list or voter emails must be provided", ErrValidation)
	}

	emails := append([]string(nil), params.VoterEmails...)
	if params.VoterListID != nil {
		listEmails, err := s.voterStorage.VoterListEmails(ctx, *params.VoterListID)
		if err != nil {
			return entity.Ballot{}, fmt.Errorf("%s: %w", op, err)
		}
		emails = append(emails, listEmails...)
	}

	ballot, err := s.ballotStorage.CreateBallot(ctx, entity.Ballot{
		Title:               params.Title,
		Description:         params.Description,
		CreatorID:           params.CreatorID,
		VoterListID:         params.VoterListID,
		VotingOpensAt:       params.VotingOpensAt,
		VotingClosesAt:      params.VotingClosesAt,
		VotingThreshold:     params.VotingThreshold,
		ThresholdPercentage: params.ThresholdPercentage,
		QuorumRequired:      params.QuorumRequired,
		Status:              entity.BallotStatusDraft,
	}, emails)
	if err != nil {
		return entity.Ballot{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("ballot created",
		slog.String("op", op),
		slog.String("ballotID", ballot.ID),
		slog.Int("voters", len(emails)))

	return ballot, nil
}

func (s *Ballots) Ballot(ctx context.Context, id string) (entity.Ballot, error) {
	const op = "Ballots.Ballot"

	ballot, err := s.ballotStorage.BallotByID(ctx, id)
	if err != nil {
		return entity.Ballot{}, fmt.Errorf("%s: %w", op, err)
	}

	return ballot, nil
}

// OpenVoting transitions a draft ballot to open with an adjusted voting
// window and, when requested, emails every eligible voter an invitation.
// Invitation failures are logged, never fatal.
func (s *Ballots) OpenVoting(ctx context.Context, id string, opensAt, closesAt time.Time, sendInvitations bool) (entity.Ballot, error) {
	const op = "Ballots.OpenVoting"

	if !closesAt.After(opensAt) {
		return entity.Ballot{}, fmt.Errorf("%w: voting close time must be after open time", ErrValidation)
	}

	current, err := s.ballotStorage.BallotByID(ctx, id)
	if err != nil {
		return entity.Ballot{}, fmt.Errorf("%s: %w", op, err)
	}
	if current.Status != entity.BallotStatusDraft {
		return entity.Ballot{}, fmt.Errorf("%s: %w: ballot is %s", op, ErrInvalidTransition, current.Status)
	}

	ballot, err := s.ballotStorage.OpenVoting(ctx, id, opensAt, closesAt)
	if err != nil {
		// A concurrent open between the read and the guarded update loses the
		// race; report it the same way as the status check above.
		if errors.Is(err, repo.ErrBallotNotFound) {
			return entity.Ballot{}, fmt.Errorf("%s: %w", op, ErrInvalidTransition)
		}
		return entity.Ballot{}, fmt.Errorf("%s: %w", op, err)
	}

	if sendInvitations {
		s.sendVoterInvitations(ctx, ballot)
	}

	return ballot, nil
}

func (s *Ballots) sendVoterInvitations(ctx context.Context, ballot entity.Ballot) {
	const op = "Ballots.sendVoterInvitations"

	voters, err := s.voterStorage.BallotVoters(ctx, ballot.ID)
	if err != nil {
		s.log.Error("failed to load voters for invitations",
			slog.String("op", op), slog.String("ballotID", ballot.ID), slog.String("error", err.Error()))
		return
	}

	sent := 0
	for _, voter := range voters {
		ok, err := s.email.SendVoterInvitation(ctx, InvitationEmail{
			BallotID:            ballot.ID,
			BallotTitle:         ballot.Title,
			BallotDescription:   ballot.Description,
			VoterEmail:          voter.Email,
			VoterName:           voter.Name,
			VotingOpensAt:       ballot.VotingOpensAt,
			VotingClosesAt:      ballot.VotingClosesAt,
			VotingThreshold:     ballot.VotingThreshold,
			ThresholdPercentage: ballot.ThresholdPercentage,
		})
		if err != nil {
			s.log.Warn("invitation send failed",
				slog.String("op", op), slog.String("ballotID", ballot.ID), slog.String("error", err.Error()))
			continue
		}
		if ok {
			sent++
		}
	}

	s.log.Info("voter invitations sent",
		slog.String("op", op), slog.String("ballotID", ballot.ID),
		slog.Int("sent", sent), slog.Int("voters", len(voters)))
}

// UpdateStatus is the raw administrative overwrite: no transition guard,
// no notifications, no audit trail beyond the stored status itself.
func (s *Ballots) UpdateStatus(ctx context.Context, id string, status entity.BallotStatus) (entity.Ballot, error) {
	const op = "Ballots.UpdateStatus"

	ballot, err := s.ballotStorage.UpdateBallotStatus(ctx, id, status)
	if err != nil {
		return entity.Ballot{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Warn("ballot status overwritten",
		slog.String("op", op), slog.String("ballotID", id), slog.String("status", string(status)))

	return ballot, nil
}

func (s *Ballots) VoteCounts(ctx context.Context, ballotID string) (tally.Counts, error) {
	const op = "Ballots.VoteCounts"

	counts, err := s.voteStorage.VoteCounts(ctx, ballotID)
	if err != nil {
		return tally.Counts{}, fmt.Errorf("%s: %w", op, err)
	}

	return counts, nil
}

func (s *Ballots) PassingStatus(ctx context.Context, ballotID string) (tally.PassingStatus, error) {
	const op = "Ballots.PassingStatus"

	ballot, err := s.ballotStorage.BallotByID(ctx, ballotID)
	if err != nil {
		return tally.PassingStatus{}, fmt.Errorf("%s: %w", op, err)
	}

	counts, err := s.voteStorage.VoteCounts(ctx, ballotID)
	if err != nil {
		return tally.PassingStatus{}, fmt.Errorf("%s: %w", op, err)
	}

	eligible, err := s.totalEligible(ctx, ballot)
	if err != nil {
		return tally.PassingStatus{}, fmt.Errorf("%s: %w", op, err)
	}

	return tally.Evaluate(counts, eligible, ballot.VotingThreshold, ballot.ThresholdPercentage, ballot.QuorumRequired), nil
}

func (s *Ballots) totalEligible(ctx context.Context, ballot entity.Ballot) (int, error) {
	if s.freezeEligibility && ballot.EligibleAtOpen != nil {
		return *ballot.EligibleAtOpen, nil
	}
	return s.voterStorage.CountBallotVoters(ctx, ballot.ID)
}

func (s *Ballots) BallotVoters(ctx context.Context, ballotID string) ([]entity.Voter, error) {
	const op = "Ballots.BallotVoters"

	voters, err := s.voterStorage.BallotVoters(ctx, ballotID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return voters, nil
}

func (s *Ballots) IsEligible(ctx context.Context, ballotID, userID string) (bool, error) {
	const op = "Ballots.IsEligible"

	voter, err := s.voterStorage.VoterByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrVoterNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}

	eligible, err := s.voterStorage.IsEligible(ctx, ballotID, voter.ID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return eligible, nil
}
