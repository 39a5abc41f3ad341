package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openquorum/ballot-service/internal/entity"
)

type CastVoteRequest struct {
	VoteChoice string `json:"vote_choice" binding:"required,oneof=yea nay abstain"`
}

type AdminSetVoteRequest struct {
	VoteChoice string  `json:"vote_choice" binding:"required,oneof=yea nay abstain"`
	Reason     *string `json:"reason" binding:"omitempty,max=500"`
}

// CastVote is the end-user voting endpoint. Window and status checks live
// here at the boundary; the ledger below it never rejects a repeat vote,
// it reports one, and this handler turns that into a conflict.
func (h *BallotHandler) CastVote(c *gin.Context) {
	ballotID := c.Param("id")

	var req CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	uid, ok := userID(c)
	if !ok {
		return
	}

	ballot, err := h.ballots.Ballot(c.Request.Context(), ballotID)
	if err != nil {
		respondError(c, err)
		return
	}

	eligible, err := h.ballots.IsEligible(c.Request.Context(), ballotID, uid)
	if err != nil {
		respondError(c, err)
		return
	}
	if !eligible {
		c.JSON(http.StatusNotFound, gin.H{"error": "ballot not found or access denied"})
		return
	}

	now := time.Now()
	if now.Before(ballot.VotingOpensAt) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "voting has not started yet"})
		return
	}
	if now.After(ballot.VotingClosesAt) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "voting has ended"})
		return
	}
	if ballot.Status != entity.BallotStatusOpen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "voting is not open for this ballot"})
		return
	}

	vote, alreadyVoted, err := h.ledger.CastVote(c.Request.Context(), ballotID, uid, entity.VoteChoice(req.VoteChoice))
	if err != nil {
		respondError(c, err)
		return
	}
	if alreadyVoted {
		c.JSON(http.StatusConflict, gin.H{"error": "you have already voted on this ballot, votes cannot be changed"})
		return
	}

	counts, err := h.ballots.VoteCounts(c.Request.Context(), ballotID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vote": vote, "vote_counts": counts})
}

// GetBallotVotes returns all votes enriched with last-set audit info.
// Admin only.
func (h *BallotHandler) GetBallotVotes(c *gin.Context) {
	ballotID := c.Param("id")

	role := userRole(c)
	if role != entity.ActorRoleAdmin && role != entity.ActorRoleOwner {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	votes, counts, err := h.ledger.BallotVotesForAdmin(c.Request.Context(), ballotID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"votes": votes, "vote_counts": counts})
}

// AdminSetVote sets or overrides a voter's vote on behalf of an admin.
func (h *BallotHandler) AdminSetVote(c *gin.Context) {
	ballotID := c.Param("id")
	voterID := c.Param("voterID")

	var req AdminSetVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	uid, ok := userID(c)
	if !ok {
		return
	}

	role := userRole(c)
	if role != entity.ActorRoleAdmin && role != entity.ActorRoleOwner {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	if _, err := h.ballots.Ballot(c.Request.Context(), ballotID); err != nil {
		respondError(c, err)
		return
	}

	vote, err := h.ledger.AdminSetVote(c.Request.Context(), ballotID, voterID,
		entity.VoteChoice(req.VoteChoice), uid, role, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	counts, err := h.ballots.VoteCounts(c.Request.Context(), ballotID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vote": vote, "vote_counts": counts})
}
