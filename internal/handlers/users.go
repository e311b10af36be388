package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SeaS7/mentor-verse/backend/internal/models"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// GetUserProfile returns a user's public profile with activity counts
func (h *UserHandler) GetUserProfile(c *gin.Context) {
	userID := c.Param("id")

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		fail(c, http.StatusNotFound, "User not found")
		return
	}

	var questionCount, answerCount, acceptedCount int64
	h.db.Model(&models.Question{}).Where("author_id = ?", user.ID).Count(&questionCount)
	h.db.Model(&models.Answer{}).Where("author_id = ?", user.ID).Count(&answerCount)
	h.db.Model(&models.Answer{}).Where("author_id = ? AND is_accepted = ?", user.ID, true).Count(&acceptedCount)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"user": gin.H{
				"id":         user.ID,
				"username":   user.Username,
				"role":       user.Role,
				"reputation": user.Reputation,
				"bio":        user.Bio,
				"avatar":     user.Avatar,
				"verified":   user.Verified,
				"created_at": user.CreatedAt,
			},
			"questionCount": questionCount,
			"answerCount":   answerCount,
			"acceptedCount": acceptedCount,
		},
	})
}

// UpdateUserProfile updates a user's own profile (PROTECTED)
func (h *UserHandler) UpdateUserProfile(c *gin.Context) {
	userID := c.Param("id")

	authUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	if fmt.Sprintf("%d", authUserID) != userID {
		fail(c, http.StatusForbidden, "You can only update your own profile")
		return
	}

	var input struct {
		Bio    string `json:"bio"`
		Avatar string `json:"avatar"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		fail(c, http.StatusNotFound, "User not found")
		return
	}

	if input.Bio != "" {
		user.Bio = input.Bio
	}
	if input.Avatar != "" {
		user.Avatar = input.Avatar
	}

	if err := h.db.Save(&user).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    user,
	})
}

// GetTopContributors lists users ranked by reputation
func (h *UserHandler) GetTopContributors(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		l, err := strconv.Atoi(raw)
		if err != nil || l <= 0 {
			fail(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = l
	}

	var users []models.User
	if err := h.db.Order("reputation desc, created_at asc").Limit(limit).Find(&users).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch contributors")
		return
	}

	if users == nil {
		users = []models.User{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    users,
	})
}
