package models

import "time"

// User roles
const (
	RoleAdmin   = "admin"
	RoleMentor  = "mentor"
	RoleStudent = "student"
)

type User struct {
	ID         int    `gorm:"primaryKey" json:"id"`
	Username   string `gorm:"unique;not null" json:"username"`
	Email      string `gorm:"unique;not null" json:"email"`
	Password   string `gorm:"not null" json:"-"`
	Role       string `gorm:"default:student" json:"role"` // "admin", "mentor", "student"
	Reputation int    `gorm:"default:0" json:"reputation"`
	Bio        string `json:"bio"`
	Avatar     string `json:"avatar"`

	// Phone verification (Twilio Verify)
	Phone    string `json:"phone,omitempty"`
	Verified bool   `gorm:"default:false" json:"verified"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
