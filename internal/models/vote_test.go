package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVoteTargetValid(t *testing.T) {
	assert.True(t, TargetQuestion.Valid())
	assert.True(t, TargetAnswer.Valid())
	assert.False(t, VoteTarget("user").Valid())
	assert.False(t, VoteTarget("").Valid())
	assert.False(t, VoteTarget("Question").Valid())
}

func TestVoteStatusValid(t *testing.T) {
	assert.True(t, Upvoted.Valid())
	assert.True(t, Downvoted.Valid())
	assert.False(t, VoteStatus("liked").Valid())
	assert.False(t, VoteStatus("").Valid())
}
