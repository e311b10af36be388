package models

import "time"

// VoteTarget is the kind of entity a vote or comment attaches to. The wire
// format keeps the "question"/"answer" strings clients already send.
type VoteTarget string

const (
	TargetQuestion VoteTarget = "question"
	TargetAnswer   VoteTarget = "answer"
)

func (t VoteTarget) Valid() bool {
	return t == TargetQuestion || t == TargetAnswer
}

type VoteStatus string

const (
	Upvoted   VoteStatus = "upvoted"
	Downvoted VoteStatus = "downvoted"
)

func (s VoteStatus) Valid() bool {
	return s == Upvoted || s == Downvoted
}

// Vote model - at most one vote per (type, typeId, voter) tuple
type Vote struct {
	ID         int        `gorm:"primaryKey" json:"id"`
	Type       VoteTarget `gorm:"type:varchar(16);not null;uniqueIndex:idx_votes_target_voter" json:"type"`
	TypeID     int        `gorm:"not null;uniqueIndex:idx_votes_target_voter" json:"typeId"`
	VotedByID  int        `gorm:"not null;uniqueIndex:idx_votes_target_voter" json:"votedById"`
	VoteStatus VoteStatus `gorm:"type:varchar(16);not null" json:"voteStatus"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
