package models

import "time"

// ReputationForAcceptedAnswer is granted to an answer's author when the
// question owner accepts the answer.
const ReputationForAcceptedAnswer = 15

type Answer struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	AuthorID   int       `gorm:"index" json:"authorId"`
	Author     User      `gorm:"foreignKey:AuthorID" json:"author"`
	QuestionID int       `gorm:"index" json:"questionId"`
	IsAccepted bool      `gorm:"default:false" json:"isAccepted"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
