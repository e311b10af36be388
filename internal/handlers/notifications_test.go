package handlers

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeaS7/mentor-verse/backend/internal/models"
)

func TestGetNotificationsUnreadFirst(t *testing.T) {
	resetTables(t)

	user := createTestUser(t, "recipient")

	read := models.Notification{UserID: user.ID, Type: models.NotifyNewAnswer, Message: "old", IsRead: true}
	require.NoError(t, testDB.Create(&read).Error)
	unread := models.Notification{UserID: user.ID, Type: models.NotifyAnswerAccepted, Message: "new"}
	require.NoError(t, testDB.Create(&unread).Error)

	router := newTestRouter(user.ID)
	w := performRequest(router, http.MethodGet, "/api/notifications", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["unread"])
	data := body["data"].([]any)
	require.Len(t, data, 2)
	assert.Equal(t, false, data[0].(map[string]any)["isRead"])
}

func TestMarkNotificationRead(t *testing.T) {
	resetTables(t)

	user := createTestUser(t, "recipient")
	notification := models.Notification{UserID: user.ID, Type: models.NotifyNewAnswer, Message: "hi"}
	require.NoError(t, testDB.Create(&notification).Error)

	router := newTestRouter(user.ID)
	w := performRequest(router, http.MethodPatch,
		"/api/notifications/"+strconv.Itoa(notification.ID)+"/read", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Notification
	require.NoError(t, testDB.First(&stored, notification.ID).Error)
	assert.True(t, stored.IsRead)
}

func TestMarkNotificationReadOtherUser(t *testing.T) {
	resetTables(t)

	owner := createTestUser(t, "owner")
	other := createTestUser(t, "other")
	notification := models.Notification{UserID: owner.ID, Type: models.NotifyNewAnswer, Message: "hi"}
	require.NoError(t, testDB.Create(&notification).Error)

	router := newTestRouter(other.ID)
	w := performRequest(router, http.MethodPatch,
		"/api/notifications/"+strconv.Itoa(notification.ID)+"/read", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var stored models.Notification
	require.NoError(t, testDB.First(&stored, notification.ID).Error)
	assert.False(t, stored.IsRead)
}
