package models

import (
	"time"

	"github.com/lib/pq"
)

type Question struct {
	ID         int            `gorm:"primaryKey" json:"id"`
	Title      string         `gorm:"not null" json:"title"`
	Content    string         `gorm:"type:text;not null" json:"content"`
	Tags       pq.StringArray `gorm:"type:text[]" json:"tags"`
	Attachment string         `json:"attachment,omitempty"` // hosted image URL, optional
	AuthorID   int            `gorm:"index" json:"authorId"`
	Author     User           `gorm:"foreignKey:AuthorID" json:"author"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// QuestionStats is a question enriched with the counts the list endpoints
// attach per item. Counts are computed at request time, never cached.
type QuestionStats struct {
	Question
	AnswerCount int `json:"answerCount"`
	NetScore    int `json:"netScore"`
}

type CreateQuestionRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Tags       []string `json:"tags"`
	Attachment string   `json:"attachment"`
}
