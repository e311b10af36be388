package models

import "time"

// Notification types
const (
	NotifyAnswerAccepted = "answer_accepted"
	NotifyNewAnswer      = "new_answer"
	NotifyNewComment     = "new_comment"
)

type Notification struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	UserID    int       `gorm:"not null;index" json:"userId"`
	Type      string    `gorm:"not null" json:"type"`
	SourceID  int       `json:"sourceId"` // entity that triggered it
	Message   string    `json:"message"`
	IsRead    bool      `gorm:"default:false" json:"isRead"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
