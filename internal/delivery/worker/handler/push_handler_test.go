package handler

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"regain/config"
	"regain/internal/domain/constants"
	"regain/internal/domain/entity"
	"regain/internal/domain/service"
	mockRepo "regain/internal/mocks/repository"
	mockSvc "regain/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockSvc.MockNotificationService, *mockRepo.MockDeviceRepository) {
	notificationSvc := mockSvc.NewMockNotificationService(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvDevelop

	h := NewPushHandler(PushHandlerParams{
		Config:          cfg,
		Logger:          slog.New(slog.DiscardHandler),
		NotificationSvc: notificationSvc,
		DeviceRepo:      deviceRepo,
	})

	return h, notificationSvc, deviceRepo
}

func newPushRequest(t *testing.T, event *service.StreakEvent) *http.Request {
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	pushMsg.Message.MessageID = "msg-1"

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestPushHandler_HandlePush_DeliversMilestoneEvent(t *testing.T) {
	h, notificationSvc, deviceRepo := newTestPushHandler(t)

	userID := uuid.New()
	event := &service.StreakEvent{
		EventID:    uuid.New().String(),
		Kind:       service.StreakEventMilestone,
		UserID:     userID.String(),
		StreakDays: 30,
	}

	deviceRepo.EXPECT().
		FindActiveDevicesByUser(mock.Anything, userID).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: userID, FCMToken: "token-a"},
			{ID: uuid.New(), UserID: userID, FCMToken: "token-b"},
		}, nil)

	notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"token-a", "token-b"}, "Milestone reached!", mock.AnythingOfType("string"), mock.Anything).
		Return(2, 0, nil, nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(newPushRequest(t, event), rec)

	err := h.HandlePush(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_RemovesInvalidTokens(t *testing.T) {
	h, notificationSvc, deviceRepo := newTestPushHandler(t)

	userID := uuid.New()
	staleDeviceID := uuid.New()
	event := &service.StreakEvent{
		EventID:    uuid.New().String(),
		Kind:       service.StreakEventReset,
		UserID:     userID.String(),
		StreakDays: 12,
	}

	deviceRepo.EXPECT().
		FindActiveDevicesByUser(mock.Anything, userID).
		Return([]*entity.UserDevice{
			{ID: staleDeviceID, UserID: userID, FCMToken: "stale-token"},
		}, nil)

	notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"stale-token"}, "A fresh start", mock.AnythingOfType("string"), mock.Anything).
		Return(0, 1, []string{"stale-token"}, nil)

	deviceRepo.EXPECT().
		DeleteDevice(mock.Anything, staleDeviceID).
		Return(nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(newPushRequest(t, event), rec)

	err := h.HandlePush(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_NoDevicesAcks(t *testing.T) {
	h, _, deviceRepo := newTestPushHandler(t)

	userID := uuid.New()
	event := &service.StreakEvent{
		EventID: uuid.New().String(),
		Kind:    service.StreakEventMilestone,
		UserID:  userID.String(),
	}

	deviceRepo.EXPECT().
		FindActiveDevicesByUser(mock.Anything, userID).
		Return([]*entity.UserDevice{}, nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(newPushRequest(t, event), rec)

	err := h.HandlePush(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_RepositoryFailureRequestsRetry(t *testing.T) {
	h, _, deviceRepo := newTestPushHandler(t)

	userID := uuid.New()
	event := &service.StreakEvent{
		EventID: uuid.New().String(),
		Kind:    service.StreakEventMilestone,
		UserID:  userID.String(),
	}

	deviceRepo.EXPECT().
		FindActiveDevicesByUser(mock.Anything, userID).
		Return(nil, assert.AnError)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(newPushRequest(t, event), rec)

	err := h.HandlePush(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_BadUserIDAcksPermanently(t *testing.T) {
	h, _, _ := newTestPushHandler(t)

	event := &service.StreakEvent{
		EventID: uuid.New().String(),
		Kind:    service.StreakEventMilestone,
		UserID:  "not-a-uuid",
	}

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(newPushRequest(t, event), rec)

	err := h.HandlePush(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_MalformedDataRejected(t *testing.T) {
	h, _, _ := newTestPushHandler(t)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = "not base64!!"

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err = h.HandlePush(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_ExtractRequestID_PrefersAttributes(t *testing.T) {
	h, _, _ := newTestPushHandler(t)

	var pushMsg PubSubMessage
	pushMsg.Message.Attributes = map[string]string{"request_id": "attr-id"}

	event := &service.StreakEvent{RequestID: "event-id"}

	assert.Equal(t, "attr-id", h.extractRequestID(t.Context(), &pushMsg, event))

	pushMsg.Message.Attributes = nil
	assert.Equal(t, "event-id", h.extractRequestID(t.Context(), &pushMsg, event))

	event.RequestID = ""
	generated := h.extractRequestID(t.Context(), &pushMsg, event)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}

func TestPrepareNotificationContent(t *testing.T) {
	h, _, _ := newTestPushHandler(t)

	title, body, data := h.prepareNotificationContent(&service.StreakEvent{
		Kind:       service.StreakEventMilestone,
		StreakDays: 30,
	})
	assert.Equal(t, "Milestone reached!", title)
	assert.Contains(t, body, "30 days")
	assert.Equal(t, "30", data["streak_days"])

	title, body, _ = h.prepareNotificationContent(&service.StreakEvent{
		Kind:       service.StreakEventReset,
		StreakDays: 7,
	})
	assert.Equal(t, "A fresh start", title)
	assert.Contains(t, body, "7 day streak")

	title, body, _ = h.prepareNotificationContent(&service.StreakEvent{Kind: service.StreakEventReset})
	assert.Equal(t, "A fresh start", title)
	assert.Contains(t, body, "Day one starts now")

	title, _, _ = h.prepareNotificationContent(&service.StreakEvent{Kind: "unknown"})
	assert.Equal(t, "Streak update", title)
}
