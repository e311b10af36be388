package models

import "time"

type Comment struct {
	ID        int        `gorm:"primaryKey" json:"id"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	Type      VoteTarget `gorm:"type:varchar(16);not null;index:idx_comments_target" json:"type"`
	TypeID    int        `gorm:"not null;index:idx_comments_target" json:"typeId"`
	AuthorID  int        `gorm:"index" json:"authorId"`
	Author    User       `gorm:"foreignKey:AuthorID" json:"author"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CreateCommentRequest struct {
	Content string `json:"content"`
	Type    string `json:"type"`
	TypeID  int    `json:"typeId"`
}
