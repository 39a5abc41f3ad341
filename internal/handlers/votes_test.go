package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/openquorum/ballot-service/internal/entity"
	"github.com/openquorum/ballot-service/internal/repo"
	"github.com/openquorum/ballot-service/internal/services"
	"github.com/openquorum/ballot-service/internal/services/mocks"
	"github.com/openquorum/ballot-service/internal/tally"
)

type castVoteFixture struct {
	handler       *BallotHandler
	ballotStorage *mocks.MockBallotStorage
	voterStorage  *mocks.MockVoterStorage
	voteStorage   *mocks.MockVoteStorage
	eventStorage  *mocks.MockVoteEventStorage
}

func newCastVoteFixture(ctrl *gomock.Controller) castVoteFixture {
	f := castVoteFixture{
		ballotStorage: mocks.NewMockBallotStorage(ctrl),
		voterStorage:  mocks.NewMockVoterStorage(ctrl),
		voteStorage:   mocks.NewMockVoteStorage(ctrl),
		eventStorage:  mocks.NewMockVoteEventStorage(ctrl),
	}
	email := mocks.NewMockEmailSender(ctrl)
	ballots := services.NewBallots(discardLogger(), f.ballotStorage, f.voterStorage, f.voteStorage, email, false)
	ledger := services.NewVoteLedger(discardLogger(), f.voteStorage, f.eventStorage, f.voterStorage)
	f.handler = NewBallotHandler(ballots, ledger)
	return f
}

func castVoteRequest(t *testing.T, choice string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	w, c := newAuthedContext(t, "user-1", entity.ActorRoleUser)
	c.Request = httptest.NewRequest(http.MethodPost, "/ballots/ballot-1/vote",
		strings.NewReader(`{"vote_choice":"`+choice+`"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "ballot-1"}}
	return w, c
}

func openBallot(opensAt, closesAt time.Time) entity.Ballot {
	return entity.Ballot{
		ID:              "ballot-1",
		Title:           "Budget vote",
		Status:          entity.BallotStatusOpen,
		VotingOpensAt:   opensAt,
		VotingClosesAt:  closesAt,
		VotingThreshold: entity.ThresholdSimpleMajority,
	}
}

func TestBallotHandler_CastVote_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCastVoteFixture(ctrl)
	now := time.Now()
	userID := "user-1"
	voter := entity.Voter{ID: "voter-1", Email: "alice@example.com", UserID: &userID}
	saved := entity.Vote{ID: "vote-1", BallotID: "ballot-1", VoterID: voter.ID, Choice: entity.VoteYea}

	f.ballotStorage.EXPECT().BallotByID(gomock.Any(), "ballot-1").Return(openBallot(now.Add(-time.Hour), now.Add(time.Hour)), nil)
	f.voterStorage.EXPECT().VoterByUserID(gomock.Any(), userID).Return(voter, nil).AnyTimes()
	f.voterStorage.EXPECT().IsEligible(gomock.Any(), "ballot-1", voter.ID).Return(true, nil).AnyTimes()
	f.voteStorage.EXPECT().VoteByBallotAndVoter(gomock.Any(), "ballot-1", voter.ID).Return(entity.Vote{}, repo.ErrVoteNotFound)
	f.voteStorage.EXPECT().SaveVote(gomock.Any(), "ballot-1", voter.ID, entity.VoteYea).Return(saved, nil)
	f.eventStorage.EXPECT().SaveVoteEvent(gomock.Any(), gomock.Any()).Return("event-1", nil)
	f.voteStorage.EXPECT().VoteCounts(gomock.Any(), "ballot-1").Return(tally.Counts{Yea: 1, Total: 1}, nil)

	w, c := castVoteRequest(t, "yea")
	f.handler.CastVote(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"vote_counts"`)
}

func TestBallotHandler_CastVote_RepeatVoteConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCastVoteFixture(ctrl)
	now := time.Now()
	userID := "user-1"
	voter := entity.Voter{ID: "voter-1", Email: "alice@example.com", UserID: &userID}
	existing := entity.Vote{ID: "vote-1", BallotID: "ballot-1", VoterID: voter.ID, Choice: entity.VoteNay}

	f.ballotStorage.EXPECT().BallotByID(gomock.Any(), "ballot-1").Return(openBallot(now.Add(-time.Hour), now.Add(time.Hour)), nil)
	f.voterStorage.EXPECT().VoterByUserID(gomock.Any(), userID).Return(voter, nil).AnyTimes()
	f.voterStorage.EXPECT().IsEligible(gomock.Any(), "ballot-1", voter.ID).Return(true, nil).AnyTimes()
	f.voteStorage.EXPECT().VoteByBallotAndVoter(gomock.Any(), "ballot-1", voter.ID).Return(existing, nil)

	w, c := castVoteRequest(t, "yea")
	f.handler.CastVote(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already voted")
}

func TestBallotHandler_CastVote_OutsideWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCastVoteFixture(ctrl)
	now := time.Now()
	userID := "user-1"
	voter := entity.Voter{ID: "voter-1", Email: "alice@example.com", UserID: &userID}

	f.ballotStorage.EXPECT().BallotByID(gomock.Any(), "ballot-1").Return(openBallot(now.Add(time.Hour), now.Add(2*time.Hour)), nil)
	f.voterStorage.EXPECT().VoterByUserID(gomock.Any(), userID).Return(voter, nil)
	f.voterStorage.EXPECT().IsEligible(gomock.Any(), "ballot-1", voter.ID).Return(true, nil)

	w, c := castVoteRequest(t, "yea")
	f.handler.CastVote(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not started")
}

func TestBallotHandler_CastVote_NotEligibleIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCastVoteFixture(ctrl)
	now := time.Now()

	f.ballotStorage.EXPECT().BallotByID(gomock.Any(), "ballot-1").Return(openBallot(now.Add(-time.Hour), now.Add(time.Hour)), nil)
	f.voterStorage.EXPECT().VoterByUserID(gomock.Any(), "user-1").Return(entity.Voter{}, repo.ErrVoterNotFound)

	w, c := castVoteRequest(t, "yea")
	f.handler.CastVote(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
