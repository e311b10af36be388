package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeaS7/mentor-verse/backend/internal/models"
)

func castVote(t *testing.T, voter models.User, target models.VoteTarget, typeID int, status models.VoteStatus) map[string]any {
	t.Helper()
	router := newTestRouter(voter.ID)
	w := performRequest(router, http.MethodPost, "/api/votes", map[string]any{
		"votedById":  voter.ID,
		"voteStatus": string(status),
		"type":       string(target),
		"typeId":     typeID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decodeBody(t, w)
}

func voteCount(t *testing.T, target models.VoteTarget, typeID, voterID int) int64 {
	t.Helper()
	var count int64
	require.NoError(t, testDB.Model(&models.Vote{}).
		Where("type = ? AND type_id = ? AND voted_by_id = ?", target, typeID, voterID).
		Count(&count).Error)
	return count
}

func TestCastVoteCreatesVote(t *testing.T) {
	resetTables(t)

	author := createTestUser(t, "author")
	voter := createTestUser(t, "voter")
	question := createTestQuestion(t, author, "How do goroutines work?", "Details inside", nil, time.Now())

	body := castVote(t, voter, models.TargetQuestion, question.ID, models.Upvoted)

	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Vote recorded", body["message"])
	assert.Equal(t, float64(1), body["voteResult"])
	assert.NotNil(t, body["vote"])
	assert.Equal(t, int64(1), voteCount(t, models.TargetQuestion, question.ID, voter.ID))
}

func TestCastVoteToggleOff(t *testing.T) {
	resetTables(t)

	author := createTestUser(t, "author")
	voter := createTestUser(t, "voter")
	question := createTestQuestion(t, author, "Toggle me", "Body", nil, time.Now())

	castVote(t, voter, models.TargetQuestion, question.ID, models.Upvoted)
	body := castVote(t, voter, models.TargetQuestion, question.ID, models.Upvoted)

	assert.Equal(t, "Vote removed", body["message"])
	assert.Equal(t, float64(0), body["voteResult"])
	assert.NotContains(t, body, "vote")
	assert.Equal(t, int64(0), voteCount(t, models.TargetQuestion, question.ID, voter.ID))
}

func TestCastVoteFlip(t *testing.T) {
	resetTables(t)

	author := createTestUser(t, "author")
	voter := createTestUser(t, "voter")
	question := createTestQuestion(t, author, "Flip me", "Body", nil, time.Now())

	castVote(t, voter, models.TargetQuestion, question.ID, models.Upvoted)
	body := castVote(t, voter, models.TargetQuestion, question.ID, models.Downvoted)

	assert.Equal(t, "Vote updated", body["message"])
	assert.Equal(t, float64(-1), body["voteResult"])

	var votes []models.Vote
	require.NoError(t, testDB.Where("type = ? AND type_id = ?", models.TargetQuestion, question.ID).Find(&votes).Error)
	require.Len(t, votes, 1)
	assert.Equal(t, models.Downvoted, votes[0].VoteStatus)
	assert.Equal(t, voter.ID, votes[0].VotedByID)
}

func TestCastVoteNetScoreAcrossVoters(t *testing.T) {
	resetTables(t)

	author := createTestUser(t, "author")
	question := createTestQuestion(t, author, "Net score", "Body", nil, time.Now())

	for i := 0; i < 3; i++ {
		voter := createTestUser(t, fmt.Sprintf("upvoter%d", i))
		castVote(t, voter, models.TargetQuestion, question.ID, models.Upvoted)
	}
	downvoter := createTestUser(t, "downvoter")
	body := castVote(t, downvoter, models.TargetQuestion, question.ID, models.Downvoted)

	// 3 upvotes - 1 downvote
	assert.Equal(t, float64(2), body["voteResult"])
}

func TestCastVoteOnAnswer(t *testing.T) {
	resetTables(t)

	author := createTestUser(t, "author")
	answerer := createTestUser(t, "answerer")
	voter := createTestUser(t, "voter")
	question := createTestQuestion(t, author, "Answer votes", "Body", nil, time.Now())
	answer := createTestAnswer(t, answerer, question, "An answer")

	body := castVote(t, voter, models.TargetAnswer, answer.ID, models.Upvoted)

	assert.Equal(t, float64(1), body["voteResult"])
	assert.Equal(t, int64(1), voteCount(t, models.TargetAnswer, answer.ID, voter.ID))
	// Question votes are unaffected
	assert.Equal(t, int64(0), voteCount(t, models.TargetQuestion, question.ID, voter.ID))
}

func TestCastVoteValidation(t *testing.T) {
	resetTables(t)

	voter := createTestUser(t, "voter")
	router := newTestRouter(voter.ID)

	// Missing fields
	w := performRequest(router, http.MethodPost, "/api/votes", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Invalid target type
	w = performRequest(router, http.MethodPost, "/api/votes", map[string]any{
		"votedById":  voter.ID,
		"voteStatus": "upvoted",
		"type":       "user",
		"typeId":     1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Invalid vote status
	w = performRequest(router, http.MethodPost, "/api/votes", map[string]any{
		"votedById":  voter.ID,
		"voteStatus": "liked",
		"type":       "question",
		"typeId":     1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCastVoteTargetNotFound(t *testing.T) {
	resetTables(t)

	voter := createTestUser(t, "voter")
	router := newTestRouter(voter.ID)

	w := performRequest(router, http.MethodPost, "/api/votes", map[string]any{
		"votedById":  voter.ID,
		"voteStatus": "upvoted",
		"type":       "question",
		"typeId":     99999,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCastVoteAsAnotherUser(t *testing.T) {
	resetTables(t)

	author := createTestUser(t, "author")
	voter := createTestUser(t, "voter")
	other := createTestUser(t, "other")
	question := createTestQuestion(t, author, "Impersonation", "Body", nil, time.Now())

	router := newTestRouter(voter.ID)
	w := performRequest(router, http.MethodPost, "/api/votes", map[string]any{
		"votedById":  other.ID,
		"voteStatus": "upvoted",
		"type":       "question",
		"typeId":     question.ID,
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, int64(0), voteCount(t, models.TargetQuestion, question.ID, other.ID))
}

func TestGetVotes(t *testing.T) {
	resetTables(t)

	author := createTestUser(t, "author")
	question := createTestQuestion(t, author, "List votes", "Body", nil, time.Now())

	for i := 0; i < 3; i++ {
		voter := createTestUser(t, fmt.Sprintf("voter%d", i))
		castVote(t, voter, models.TargetQuestion, question.ID, models.Upvoted)
	}

	router := newTestRouter(0)
	w := performRequest(router, http.MethodGet,
		fmt.Sprintf("/api/votes?type=question&typeId=%d&limit=2", question.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["data"], 2)
}
