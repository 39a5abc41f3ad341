package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openquorum/ballot-service/internal/entity"
	"github.com/openquorum/ballot-service/internal/middleware"
	"github.com/openquorum/ballot-service/internal/repo"
	"github.com/openquorum/ballot-service/internal/services"
)

type BallotHandler struct {
	ballots *services.Ballots
	ledger  *services.VoteLedger
}

func NewBallotHandler(ballots *services.Ballots, ledger *services.VoteLedger) *BallotHandler {
	return &BallotHandler{ballots: ballots, ledger: ledger}
}

type CreateBallotRequest struct {
	Title               string    `json:"title" binding:"required,max=255"`
	Description         string    `json:"description" binding:"required"`
	VotingOpensAt       time.Time `json:"voting_opens_at" binding:"required"`
	VotingClosesAt      time.Time `json:"voting_closes_at" binding:"required"`
	VotingThreshold     string    `json:"voting_threshold" binding:"omitempty,oneof=simple_majority supermajority unanimous custom"`
	ThresholdPercentage *float64  `json:"threshold_percentage" binding:"omitempty,gt=0,lte=100"`
	QuorumRequired      *int      `json:"quorum_required" binding:"omitempty,min=1"`
	VoterListID         *string   `json:"voter_list_id" binding:"omitempty,uuid"`
	VoterEmails         []string  `json:"voter_emails" binding:"omitempty,dive,email"`
}

func userID(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return "", false
	}
	id, ok := v.(string)
	if !ok || id == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid user id in context"})
		return "", false
	}
	return id, true
}

func userRole(c *gin.Context) entity.ActorRole {
	if v, exists := c.Get(middleware.ContextUserRole); exists {
		if role, ok := v.(entity.ActorRole); ok {
			return role
		}
	}
	return entity.ActorRoleUser
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repo.ErrBallotNotFound), errors.Is(err, repo.ErrNotificationNotFound),
		errors.Is(err, repo.ErrVoteNotFound), errors.Is(err, services.ErrNotEligible):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, services.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "invalid status transition"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (h *BallotHandler) CreateBallot(c *gin.Context) {
	var req CreateBallotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	uid, ok := userID(c)
	if !ok {
		return
	}

	ballot, err := h.ballots.CreateBallot(c.Request.Context(), services.CreateBallotParams{
		Title:               req.Title,
		Description:         req.Description,
		CreatorID:           uid,
		VotingOpensAt:       req.VotingOpensAt,
		VotingClosesAt:      req.VotingClosesAt,
		VotingThreshold:     entity.VotingThreshold(req.VotingThreshold),
		ThresholdPercentage: req.ThresholdPercentage,
		QuorumRequired:      req.QuorumRequired,
		VoterListID:         req.VoterListID,
		VoterEmails:         req.VoterEmails,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ballot": ballot})
}

func (h *BallotHandler) GetBallot(c *gin.Context) {
	ballotID := c.Param("id")

	ballot, err := h.ballots.Ballot(c.Request.Context(), ballotID)
	if err != nil {
		respondError(c, err)
		return
	}

	counts, err := h.ballots.VoteCounts(c.Request.Context(), ballotID)
	if err != nil {
		respondError(c, err)
		return
	}

	passing, err := h.ballots.PassingStatus(c.Request.Context(), ballotID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ballot":         ballot,
		"vote_counts":    counts,
		"passing_status": passing,
	})
}

// UpdateBallot handles the PATCH actions: opening voting with an adjusted
// window, or the raw administrative status overwrite.
func (h *BallotHandler) UpdateBallot(c *gin.Context) {
	ballotID := c.Param("id")

	role := userRole(c)
	if role != entity.ActorRoleAdmin && role != entity.ActorRoleOwner {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	if action, _ := raw["action"].(string); action == "open_voting" {
		h.openVoting(c, ballotID, raw)
		return
	}

	status, _ := raw["status"].(string)
	switch entity.BallotStatus(status) {
	case entity.BallotStatusDraft, entity.BallotStatusOpen, entity.BallotStatusClosed:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}

	ballot, err := h.ballots.UpdateStatus(c.Request.Context(), ballotID, entity.BallotStatus(status))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ballot": ballot})
}

func (h *BallotHandler) openVoting(c *gin.Context, ballotID string, raw map[string]any) {
	opensAt, err1 := parseTimeField(raw, "voting_opens_at")
	closesAt, err2 := parseTimeField(raw, "voting_closes_at")
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid voting window"})
		return
	}

	sendNotifications := true
	if v, ok := raw["send_notifications"].(bool); ok {
		sendNotifications = v
	}

	ballot, err := h.ballots.OpenVoting(c.Request.Context(), ballotID, opensAt, closesAt, sendNotifications)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ballot": ballot})
}

func parseTimeField(raw map[string]any, key string) (time.Time, error) {
	s, _ := raw[key].(string)
	return time.Parse(time.RFC3339, s)
}
