package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SeaS7/mentor-verse/backend/internal/models"
)

type CommentHandler struct {
	db *gorm.DB
}

func NewCommentHandler(db *gorm.DB) *CommentHandler {
	return &CommentHandler{db: db}
}

// GetComments returns all comments on a question or answer, oldest first
func (h *CommentHandler) GetComments(c *gin.Context) {
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

	var comments []models.Comment
	if err := h.db.Where("type = ? AND type_id = ?", target, typeID).
		Preload("Author").
		Order("created_at asc").
		Find(&comments).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch comments")
		return
	}

	if comments == nil {
		comments = []models.Comment{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    comments,
	})
}

// CreateComment creates a comment on a question or answer (PROTECTED)
func (h *CommentHandler) CreateComment(c *gin.Context) {
	authorID, ok := requireUserID(c)
	if !ok {
		return
	}

	var input struct {
		Content string `json:"content" binding:"required"`
		Type    string `json:"type" binding:"required"`
		TypeID  int    `json:"typeId" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Content, type and typeId are required")
		return
	}

	target := models.VoteTarget(input.Type)
	if !target.Valid() {
		fail(c, http.StatusBadRequest, "Type must be question or answer")
		return
	}

	exists, err := targetExists(h.db, target, input.TypeID)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to create comment")
		return
	}
	if !exists {
		fail(c, http.StatusNotFound, "Comment target not found")
		return
	}

	comment := models.Comment{
		Content:  input.Content,
		Type:     target,
		TypeID:   input.TypeID,
		AuthorID: authorID,
	}

	if err := h.db.Create(&comment).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to create comment")
		return
	}

	h.db.Preload("Author").First(&comment, comment.ID)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Comment added",
		"data":    comment,
	})
}

// DeleteComment deletes a comment (PROTECTED - owner only)
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID := c.Param("id")

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var comment models.Comment
	if err := h.db.First(&comment, commentID).Error; err != nil {
		fail(c, http.StatusNotFound, "Comment not found")
		return
	}

	if comment.AuthorID != userID {
		fail(c, http.StatusForbidden, "You can only delete your own comments")
		return
	}

	if err := h.db.Delete(&comment).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to delete comment")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Comment deleted successfully",
	})
}
