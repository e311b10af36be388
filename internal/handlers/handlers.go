package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler combines all handler types
type Handler struct {
	Auth         *AuthHandler
	Question     *QuestionHandler
	Answer       *AnswerHandler
	Vote         *VoteHandler
	Comment      *CommentHandler
	User         *UserHandler
	Notification *NotificationHandler
	Verify       *VerifyHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(db),
		Question:     NewQuestionHandler(db),
		Answer:       NewAnswerHandler(db),
		Vote:         NewVoteHandler(db),
		Comment:      NewCommentHandler(db),
		User:         NewUserHandler(db),
		Notification: NewNotificationHandler(db),
		Verify:       NewVerifyHandler(db),
	}
}

// fail writes the error envelope every endpoint shares.
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

func extractUserID(c *gin.Context) (int, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	switch v := raw.(type) {
	case int:
		return v, true
	case uint:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func requireUserID(c *gin.Context) (int, bool) {
	id, ok := extractUserID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "User not authenticated")
	}
	return id, ok
}
