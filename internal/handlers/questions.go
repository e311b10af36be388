package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/SeaS7/mentor-verse/backend/internal/models"
)

type QuestionHandler struct {
	db *gorm.DB
}

func NewQuestionHandler(db *gorm.DB) *QuestionHandler {
	return &QuestionHandler{db: db}
}

// questionStats attaches the per-question counts. Counted at request time so
// the numbers always reflect the stored rows.
func (h *QuestionHandler) questionStats(question models.Question) (models.QuestionStats, error) {
	var answerCount int64
	if err := h.db.Model(&models.Answer{}).Where("question_id = ?", question.ID).Count(&answerCount).Error; err != nil {
		return models.QuestionStats{}, err
	}

	up, down, err := countVotes(h.db, models.TargetQuestion, question.ID)
	if err != nil {
		return models.QuestionStats{}, err
	}

	return models.QuestionStats{
		Question:    question,
		AnswerCount: int(answerCount),
		NetScore:    up - down,
	}, nil
}

// GetPaginatedQuestions lists questions newest first with per-item answer
// counts and net scores. `total` counts the whole filtered set, not the page.
func (h *QuestionHandler) GetPaginatedQuestions(c *gin.Context) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || p <= 0 {
			fail(c, http.StatusBadRequest, "page must be a positive integer")
			return
		}
		page = p
	}

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		l, err := strconv.Atoi(raw)
		if err != nil || l <= 0 {
			fail(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = l
	}

	tag := c.Query("tag")
	search := c.Query("search")

	filter := func(db *gorm.DB) *gorm.DB {
		if tag != "" {
			db = db.Where("? = ANY(tags)", tag)
		}
		if search != "" {
			pattern := "%" + search + "%"
			db = db.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
		}
		return db
	}

	var total int64
	if err := h.db.Model(&models.Question{}).Scopes(filter).Count(&total).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch questions")
		return
	}

	var questions []models.Question
	if err := h.db.Scopes(filter).
		Preload("Author").
		Order("created_at desc").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&questions).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch questions")
		return
	}

	data := make([]models.QuestionStats, 0, len(questions))
	for _, question := range questions {
		stats, err := h.questionStats(question)
		if err != nil {
			fail(c, http.StatusInternalServerError, "Failed to fetch questions")
			return
		}
		data = append(data, stats)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
		"total":   total,
	})
}

// GetQuestion returns a single question with its stats
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	questionID := c.Param("id")

	var question models.Question
	if err := h.db.Preload("Author").First(&question, questionID).Error; err != nil {
		fail(c, http.StatusNotFound, "Question not found")
		return
	}

	stats, err := h.questionStats(question)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch question")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}

// CreateQuestion creates a new question (PROTECTED)
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	authorID, ok := requireUserID(c)
	if !ok {
		return
	}

	var input struct {
		Title      string   `json:"title" binding:"required"`
		Content    string   `json:"content" binding:"required"`
		Tags       []string `json:"tags"`
		Attachment string   `json:"attachment"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Title and content are required")
		return
	}

	question := models.Question{
		Title:      input.Title,
		Content:    input.Content,
		Tags:       pq.StringArray(input.Tags),
		Attachment: input.Attachment,
		AuthorID:   authorID,
	}

	if err := h.db.Create(&question).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to create question")
		return
	}

	h.db.Preload("Author").First(&question, question.ID)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Question created",
		"data":    question,
	})
}

// UpdateQuestion updates a question (PROTECTED - owner only)
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	questionID := c.Param("id")

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var input struct {
		Title      string   `json:"title"`
		Content    string   `json:"content"`
		Tags       []string `json:"tags"`
		Attachment string   `json:"attachment"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	var question models.Question
	if err := h.db.First(&question, questionID).Error; err != nil {
		fail(c, http.StatusNotFound, "Question not found")
		return
	}

	if question.AuthorID != userID {
		fail(c, http.StatusForbidden, "You can only edit your own questions")
		return
	}

	if input.Title != "" {
		question.Title = input.Title
	}
	if input.Content != "" {
		question.Content = input.Content
	}
	if input.Tags != nil {
		question.Tags = pq.StringArray(input.Tags)
	}
	if input.Attachment != "" {
		question.Attachment = input.Attachment
	}

	if err := h.db.Save(&question).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to update question")
		return
	}
	h.db.Preload("Author").First(&question, question.ID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Question updated",
		"data":    question,
	})
}

// DeleteQuestion deletes a question together with its answers, votes and
// comments (PROTECTED - owner only). The original left orphaned votes and
// comments behind; the cascade closes that gap.
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.Param("id")

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var question models.Question
	if err := h.db.First(&question, questionID).Error; err != nil {
		fail(c, http.StatusNotFound, "Question not found")
		return
	}

	if question.AuthorID != userID {
		fail(c, http.StatusForbidden, "You can only delete your own questions")
		return
	}

	txErr := h.db.Transaction(func(tx *gorm.DB) error {
		var answerIDs []int
		if err := tx.Model(&models.Answer{}).Where("question_id = ?", question.ID).
			Pluck("id", &answerIDs).Error; err != nil {
			return err
		}

		if len(answerIDs) > 0 {
			if err := tx.Where("type = ? AND type_id IN ?", models.TargetAnswer, answerIDs).
				Delete(&models.Vote{}).Error; err != nil {
				return err
			}
			if err := tx.Where("type = ? AND type_id IN ?", models.TargetAnswer, answerIDs).
				Delete(&models.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("question_id = ?", question.ID).Delete(&models.Answer{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("type = ? AND type_id = ?", models.TargetQuestion, question.ID).
			Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("type = ? AND type_id = ?", models.TargetQuestion, question.ID).
			Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		return tx.Delete(&question).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "Question not found")
			return
		}
		fail(c, http.StatusInternalServerError, "Failed to delete question")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Question deleted successfully",
	})
}
