package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SeaS7/mentor-verse/backend/internal/models"
)

type VoteHandler struct {
	db *gorm.DB
}

func NewVoteHandler(db *gorm.DB) *VoteHandler {
	return &VoteHandler{db: db}
}

// countVotes returns the current (upvotes, downvotes) pair for a target.
func countVotes(db *gorm.DB, target models.VoteTarget, typeID int) (int, int, error) {
	var up, down int64
	if err := db.Model(&models.Vote{}).
		Where("type = ? AND type_id = ? AND vote_status = ?", target, typeID, models.Upvoted).
		Count(&up).Error; err != nil {
		return 0, 0, err
	}
	if err := db.Model(&models.Vote{}).
		Where("type = ? AND type_id = ? AND vote_status = ?", target, typeID, models.Downvoted).
		Count(&down).Error; err != nil {
		return 0, 0, err
	}
	return int(up), int(down), nil
}

// targetExists checks the vote/comment target actually references a row.
func targetExists(db *gorm.DB, target models.VoteTarget, typeID int) (bool, error) {
	var count int64
	var err error
	switch target {
	case models.TargetQuestion:
		err = db.Model(&models.Question{}).Where("id = ?", typeID).Count(&count).Error
	case models.TargetAnswer:
		err = db.Model(&models.Answer{}).Where("id = ?", typeID).Count(&count).Error
	}
	return count > 0, err
}

// CastVote creates, flips or removes a vote — one vote per user per target.
// The toggle and the recount run in a single transaction so the returned
// net score always matches the stored votes.
func (h *VoteHandler) CastVote(c *gin.Context) {
	var input struct {
		VotedByID  int    `json:"votedById" binding:"required"`
		VoteStatus string `json:"voteStatus" binding:"required"`
		Type       string `json:"type" binding:"required"`
		TypeID     int    `json:"typeId" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "votedById, voteStatus, type and typeId are required")
		return
	}

	target := models.VoteTarget(input.Type)
	status := models.VoteStatus(input.VoteStatus)
	if !target.Valid() {
		fail(c, http.StatusBadRequest, "Type must be question or answer")
		return
	}
	if !status.Valid() {
		fail(c, http.StatusBadRequest, "Vote status must be upvoted or downvoted")
		return
	}

	// Votes may only be cast as the authenticated user
	if userID, ok := extractUserID(c); ok && userID != input.VotedByID {
		fail(c, http.StatusForbidden, "You can only vote as yourself")
		return
	}

	exists, err := targetExists(h.db, target, input.TypeID)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to cast vote")
		return
	}
	if !exists {
		fail(c, http.StatusNotFound, "Vote target not found")
		return
	}

	var (
		message string
		removed bool
		vote    models.Vote
		up      int
		down    int
	)

	txErr := h.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Vote
		err := tx.Where("type = ? AND type_id = ? AND voted_by_id = ?", target, input.TypeID, input.VotedByID).
			First(&existing).Error

		switch {
		case err == nil && existing.VoteStatus == status:
			// Same vote again - remove it (toggle off)
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			message = "Vote removed"
			removed = true
		case err == nil:
			// Opposite vote - flip it in place
			existing.VoteStatus = status
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			message = "Vote updated"
			vote = existing
		case errors.Is(err, gorm.ErrRecordNotFound):
			vote = models.Vote{
				Type:       target,
				TypeID:     input.TypeID,
				VotedByID:  input.VotedByID,
				VoteStatus: status,
			}
			if err := tx.Create(&vote).Error; err != nil {
				return err
			}
			message = "Vote recorded"
		default:
			return err
		}

		up, down, err = countVotes(tx, target, input.TypeID)
		return err
	})
	if txErr != nil {
		fail(c, http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	resp := gin.H{
		"success":    true,
		"message":    message,
		"voteResult": up - down,
	}
	if !removed {
		resp["vote"] = vote
	}

	c.JSON(http.StatusOK, resp)
}

// GetVotes lists the votes on a target, newest first.
func (h *VoteHandler) GetVotes(c *gin.Context) {
	target := models.VoteTarget(c.Query("type"))
	if !target.Valid() {
		fail(c, http.StatusBadRequest, "Type must be question or answer")
		return
	}

	typeID, err := strconv.Atoi(c.Query("typeId"))
	if err != nil || typeID <= 0 {
		fail(c, http.StatusBadRequest, "typeId must be a positive integer")
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			fail(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
	}

	var votes []models.Vote
	if err := h.db.Where("type = ? AND type_id = ?", target, typeID).
		Order("created_at desc").
		Limit(limit).
		Find(&votes).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch votes")
		return
	}

	if votes == nil {
		votes = []models.Vote{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    votes,
	})
}
