package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeaS7/mentor-verse/backend/internal/models"
)

func listQuestions(t *testing.T, query string) map[string]any {
	t.Helper()
	router := newTestRouter(0)
	w := performRequest(router, http.MethodGet, "/api/questions/pagenated-ques"+query, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decodeBody(t, w)
}

func TestPaginatedQuestionsFirstPage(t *testing.T) {
	resetTables(t)

	author := createTestUser(t, "author")
	base := time.Now().Add(-24 * time.Hour)
	for i := 0; i < 12; i++ {
		createTestQuestion(t, author,
			fmt.Sprintf("Question %d", i), "Body", nil,
			base.Add(time.Duration(i)*time.Minute))
	}

	body := listQuestions(t, "?page=1&limit=10")

	assert.Equal(t, float64(12), body["total"])
	data := body["data"].([]any)
	require.Len(t, data, 10)

	// Newest first
	first := data[0].(map[string]any)
	assert.Equal(t, "Question 11", first["title"])
	last := data[9].(map[string]any)
	assert.Equal(t, "Question 2", last["title"])
}

func TestPaginatedQuestionsSecondPage(t *testing.T) {
	resetTables(t)

	author := createTestUser(t, "author")
	base := time.Now().Add(-24 * time.Hour)
	for i := 0; i < 12; i++ {
		createTestQuestion(t, author,
			fmt.Sprintf("Question %d", i), "Body", nil,
			base.Add(time.Duration(i)*time.Minute))
	}

	body := listQuestions(t, "?page=2&limit=10")

	assert.Equal(t, float64(12), body["total"])
	data := body["data"].([]any)
	require.Len(t, data, 2)
	assert.Equal(t, "Question 1", data[0].(map[string]any)["title"])
	assert.Equal(t, "Question 0", data[1].(map[string]any)["title"])
}

func TestPaginatedQuestionsSearchCaseInsensitive(t *testing.T) {
	resetTables(t)

	author := createTestUser(t, "author")
	now := time.Now()
	createTestQuestion(t, author, "React hooks confusion", "useEffect runs twice", nil, now)
	createTestQuestion(t, author, "Go channels", "Deadlock when reading", nil, now.Add(time.Minute))
	createTestQuestion(t, author, "State management", "Should I reach for react context?", nil, now.Add(2*time.Minute))

	body := listQuestions(t, "?search=react")

	// Matches title "React ..." and content "... react context", not the Go one
	assert.Equal(t, float64(2), body["total"])
	assert.Len(t, body["data"], 2)
}

func TestPaginatedQuestionsTagFilter(t *testing.T) {
	resetTables(t)

	author := createTestUser(t, "author")
	now := time.Now()
	createTestQuestion(t, author, "Tagged go", "Body", []string{"go", "concurrency"}, now)
	createTestQuestion(t, author, "Tagged react", "Body", []string{"react"}, now.Add(time.Minute))
	createTestQuestion(t, author, "Untagged", "Body", nil, now.Add(2*time.Minute))

	body := listQuestions(t, "?tag=go")

	assert.Equal(t, float64(1), body["total"])
	data := body["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "Tagged go", data[0].(map[string]any)["title"])
}

func TestPaginatedQuestionsTagAndSearchCombined(t *testing.T) {
	resetTables(t)

	author := createTestUser(t, "author")
	now := time.Now()
	createTestQuestion(t, author, "Go generics", "Type parameters", []string{"go"}, now)
	createTestQuestion(t, author, "Go modules", "Vendoring question", []string{"go"}, now.Add(time.Minute))
	createTestQuestion(t, author, "Rust generics", "Trait bounds", []string{"rust"}, now.Add(2*time.Minute))

	body := listQuestions(t, "?tag=go&search=generics")

	assert.Equal(t, float64(1), body["total"])
	data := body["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "Go generics", data[0].(map[string]any)["title"])
}

func TestPaginatedQuestionsStats(t *testing.T) {
	resetTables(t)

	author := createTestUser(t, "author")
	answerer := createTestUser(t, "answerer")
	question := createTestQuestion(t, author, "With stats", "Body", nil, time.Now())
	createTestAnswer(t, answerer, question, "First")
	createTestAnswer(t, answerer, question, "Second")

	for i := 0; i < 2; i++ {
		voter := createTestUser(t, fmt.Sprintf("up%d", i))
		castVote(t, voter, models.TargetQuestion, question.ID, models.Upvoted)
	}
	downvoter := createTestUser(t, "down")
	castVote(t, downvoter, models.TargetQuestion, question.ID, models.Downvoted)

	body := listQuestions(t, "")

	data := body["data"].([]any)
	require.Len(t, data, 1)
	item := data[0].(map[string]any)
	assert.Equal(t, float64(2), item["answerCount"])
	assert.Equal(t, float64(1), item["netScore"]) // 2 up - 1 down
}

func TestPaginatedQuestionsTotalCountsFilteredSet(t *testing.T) {
	resetTables(t)

	author := createTestUser(t, "author")
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		createTestQuestion(t, author, fmt.Sprintf("Match %d", i), "Body", nil, base.Add(time.Duration(i)*time.Minute))
	}
	createTestQuestion(t, author, "Other", "Body", nil, base.Add(10*time.Minute))

	body := listQuestions(t, "?search=match&page=1&limit=2")

	// total reflects the filtered set, not the page
	assert.Equal(t, float64(5), body["total"])
	assert.Len(t, body["data"], 2)
}

func TestGetQuestionWithStats(t *testing.T) {
	resetTables(t)

	author := createTestUser(t, "author")
	answerer := createTestUser(t, "answerer")
	question := createTestQuestion(t, author, "Single question", "Body", []string{"go"}, time.Now())
	createTestAnswer(t, answerer, question, "An answer")

	router := newTestRouter(0)
	w := performRequest(router, http.MethodGet, "/api/questions/"+strconv.Itoa(question.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	data := body["data"].(map[string]any)
	assert.Equal(t, "Single question", data["title"])
	assert.Equal(t, float64(1), data["answerCount"])
	assert.Equal(t, float64(0), data["netScore"])
}

func TestGetQuestionNotFound(t *testing.T) {
	resetTables(t)

	router := newTestRouter(0)
	w := performRequest(router, http.MethodGet, "/api/questions/99999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
