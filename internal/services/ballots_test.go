package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openquorum/ballot-service/internal/entity"
	"github.com/openquorum/ballot-service/internal/repo"
	"github.com/openquorum/ballot-service/internal/services"
	"github.com/openquorum/ballot-service/internal/services/mocks"
)

type ballotsTestDeps struct {
	ballotStorage *mocks.MockBallotStorage
	voterStorage  *mocks.MockVoterStorage
	voteStorage   *mocks.MockVoteStorage
	email         *mocks.MockEmailSender
}

func newTestBallots(ctrl *gomock.Controller, freezeEligibility bool) (*services.Ballots, ballotsTestDeps) {
	deps := ballotsTestDeps{
		ballotStorage: mocks.NewMockBallotStorage(ctrl),
		voterStorage:  mocks.NewMockVoterStorage(ctrl),
		voteStorage:   mocks.NewMockVoteStorage(ctrl),
		email:         mocks.NewMockEmailSender(ctrl),
	}
	svc := services.NewBallots(discardLogger(), deps.ballotStorage, deps.voterStorage, deps.voteStorage, deps.email, freezeEligibility)
	return svc, deps
}

func validCreateParams() services.CreateBallotParams {
	opens := time.Now().Add(time.Hour)
	return services.CreateBallotParams{
		Title:          gofakeit.Sentence(4),
		Description:    gofakeit.Paragraph(1, 2, 8, " "),
		CreatorID:      gofakeit.UUID(),
		VotingOpensAt:  opens,
		VotingClosesAt: opens.Add(24 * time.Hour),
		VoterEmails:    []string{gofakeit.Email(), gofakeit.Email()},
	}
}

func TestBallots_CreateBallot_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestBallots(ctrl, false)

	tests := []struct {
		name   string
		mutate func(*services.CreateBallotParams)
	}{
		{"missing title", func(p *services.CreateBallotParams) { p.Title = "" }},
		{"missing description", func(p *services.CreateBallotParams) { p.Description = "" }},
		{"closes before opens", func(p *services.CreateBallotParams) { p.VotingClosesAt = p.VotingOpensAt.Add(-time.Hour) }},
		{"closes equals opens", func(p *services.CreateBallotParams) { p.VotingClosesAt = p.VotingOpensAt }},
		{"custom threshold without percentage", func(p *services.CreateBallotParams) { p.VotingThreshold = entity.ThresholdCustom }},
		{"custom threshold with zero percentage", func(p *services.CreateBallotParams) {
			p.VotingThreshold = entity.ThresholdCustom
			zero := 0.0
			p.ThresholdPercentage = &zero
		}},
		{"quorum below one", func(p *services.CreateBallotParams) {
			zero := 0
			p.QuorumRequired = &zero
		}},
		{"no voters at all", func(p *services.CreateBallotParams) { p.VoterEmails = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validCreateParams()
			tt.mutate(&params)

			_, err := svc.CreateBallot(context.Background(), params)
			require.Error(t, err)
			assert.ErrorIs(t, err, services.ErrValidation)
		})
	}
}

func TestBallots_CreateBallot_MergesVoterListEmails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestBallots(ctrl, false)

	listID := gofakeit.UUID()
	params := validCreateParams()
	params.VoterEmails = []string{"direct@example.com"}
	params.VoterListID = &listID

	deps.voterStorage.EXPECT().VoterListEmails(gomock.Any(), listID).Return([]string{"list-a@example.com", "list-b@example.com"}, nil)
	deps.ballotStorage.EXPECT().CreateBallot(gomock.Any(), gomock.Any(), []string{"direct@example.com", "list-a@example.com", "list-b@example.com"}).
		DoAndReturn(func(_ context.Context, ballot entity.Ballot, _ []string) (entity.Ballot, error) {
			assert.Equal(t, entity.BallotStatusDraft, ballot.Status)
			assert.Equal(t, entity.ThresholdSimpleMajority, ballot.VotingThreshold)
			ballot.ID = gofakeit.UUID()
			return ballot, nil
		})

	created, err := svc.CreateBallot(context.Background(), params)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func TestBallots_OpenVoting_RejectsNonDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestBallots(ctrl, false)

	opens := time.Now()
	closes := opens.Add(time.Hour)

	deps.ballotStorage.EXPECT().BallotByID(gomock.Any(), "ballot-1").
		Return(entity.Ballot{ID: "ballot-1", Status: entity.BallotStatusOpen}, nil)

	_, err := svc.OpenVoting(context.Background(), "ballot-1", opens, closes, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
}

func TestBallots_OpenVoting_LostRaceIsInvalidTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestBallots(ctrl, false)

	opens := time.Now()
	closes := opens.Add(time.Hour)

	deps.ballotStorage.EXPECT().BallotByID(gomock.Any(), "ballot-1").
		Return(entity.Ballot{ID: "ballot-1", Status: entity.BallotStatusDraft}, nil)
	// Another actor opened the ballot between the read and the guarded
	// update; the storage guard matches no row.
	deps.ballotStorage.EXPECT().OpenVoting(gomock.Any(), "ballot-1", opens, closes).
		Return(entity.Ballot{}, repo.ErrBallotNotFound)

	_, err := svc.OpenVoting(context.Background(), "ballot-1", opens, closes, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
}

func TestBallots_OpenVoting_SendsInvitations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestBallots(ctrl, false)

	opens := time.Now()
	closes := opens.Add(time.Hour)
	opened := entity.Ballot{ID: "ballot-1", Title: "Annual budget", Status: entity.BallotStatusOpen, VotingOpensAt: opens, VotingClosesAt: closes}
	voters := []entity.Voter{
		{ID: "voter-1", Email: "alice@example.com"},
		{ID: "voter-2", Email: "bob@example.com"},
	}

	deps.ballotStorage.EXPECT().BallotByID(gomock.Any(), "ballot-1").
		Return(entity.Ballot{ID: "ballot-1", Status: entity.BallotStatusDraft}, nil)
	deps.ballotStorage.EXPECT().OpenVoting(gomock.Any(), "ballot-1", opens, closes).Return(opened, nil)
	deps.voterStorage.EXPECT().BallotVoters(gomock.Any(), "ballot-1").Return(voters, nil)
	deps.email.EXPECT().SendVoterInvitation(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)

	ballot, err := svc.OpenVoting(context.Background(), "ballot-1", opens, closes, true)
	require.NoError(t, err)
	assert.Equal(t, entity.BallotStatusOpen, ballot.Status)
}

func TestBallots_PassingStatus_LiveEligibleCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestBallots(ctrl, false)

	frozen := 4
	ballot := entity.Ballot{
		ID:              "ballot-1",
		Status:          entity.BallotStatusOpen,
		VotingThreshold: entity.ThresholdSimpleMajority,
		EligibleAtOpen:  &frozen,
	}

	deps.ballotStorage.EXPECT().BallotByID(gomock.Any(), "ballot-1").Return(ballot, nil)
	deps.voteStorage.EXPECT().VoteCounts(gomock.Any(), "ballot-1").Return(tallyCounts(6, 2, 1), nil)
	// Freeze mode off: the snapshot must be ignored in favor of a live count.
	deps.voterStorage.EXPECT().CountBallotVoters(gomock.Any(), "ballot-1").Return(10, nil)

	status, err := svc.PassingStatus(context.Background(), "ballot-1")
	require.NoError(t, err)
	assert.Equal(t, 10, status.TotalEligibleVoters)
	assert.Equal(t, 6, status.RequiredVotes)
	assert.True(t, status.IsPassing)
}

func TestBallots_PassingStatus_FrozenEligibleCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestBallots(ctrl, true)

	frozen := 10
	ballot := entity.Ballot{
		ID:              "ballot-1",
		Status:          entity.BallotStatusOpen,
		VotingThreshold: entity.ThresholdSimpleMajority,
		EligibleAtOpen:  &frozen,
	}

	deps.ballotStorage.EXPECT().BallotByID(gomock.Any(), "ballot-1").Return(ballot, nil)
	deps.voteStorage.EXPECT().VoteCounts(gomock.Any(), "ballot-1").Return(tallyCounts(6, 2, 1), nil)

	status, err := svc.PassingStatus(context.Background(), "ballot-1")
	require.NoError(t, err)
	assert.Equal(t, 10, status.TotalEligibleVoters)
	assert.True(t, status.IsPassing)
}

func TestBallots_IsEligible_UnknownUserIsNotEligible(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestBallots(ctrl, false)

	deps.voterStorage.EXPECT().VoterByUserID(gomock.Any(), "ghost").Return(entity.Voter{}, repo.ErrVoterNotFound)

	eligible, err := svc.IsEligible(context.Background(), "ballot-1", "ghost")
	require.NoError(t, err)
	assert.False(t, eligible)
}
