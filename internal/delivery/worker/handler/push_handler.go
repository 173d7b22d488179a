package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"regain/config"
	deliverycontext "regain/internal/delivery/context"
	"regain/internal/domain/constants"
	"regain/internal/domain/entity"
	"regain/internal/domain/repository"
	"regain/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub push messages carrying streak events
type PushHandler struct {
	verifyPushAuth  bool
	logger          *slog.Logger
	notificationSvc service.NotificationService
	deviceRepo      repository.DeviceRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
	DeviceRepo      repository.DeviceRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only verify push auth when messages actually come from Google Pub/Sub.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
		deviceRepo:      params.DeviceRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.StreakEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse streak event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing.
	// Priority: message attributes > event field > existing context.
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing streak event",
		slog.String("event_id", event.EventID),
		slog.String("kind", event.Kind),
		slog.String("user_id", event.UserID),
	)

	if err := h.processStreakEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process streak event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 triggers a Pub/Sub retry; 200 acknowledges permanently bad
		// messages so they don't loop forever.
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Streak event processed successfully",
		slog.String("event_id", event.EventID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.StreakEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processStreakEvent delivers a streak event to the user's active devices
func (h *PushHandler) processStreakEvent(ctx context.Context, event *service.StreakEvent) error {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	devices, err := h.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	if len(devices) == 0 {
		h.logger.Info("[Worker] No active devices for user",
			slog.String("event_id", event.EventID),
			slog.String("user_id", event.UserID),
		)

		return nil
	}

	title, body, data := h.prepareNotificationContent(event)

	tokens := make([]string, 0, len(devices))
	deviceMap := make(map[string]*entity.UserDevice, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
		deviceMap[device.FCMToken] = device
	}

	successCount, failureCount, invalidTokens, sendErr := h.notificationSvc.SendBatchNotification(
		ctx, tokens, title, body, data,
	)
	if sendErr != nil {
		return newRetryableError(errors.WithStack(sendErr))
	}

	h.cleanupInvalidTokens(ctx, invalidTokens, deviceMap)

	h.logger.Info("[Worker] Streak notification sending completed",
		slog.String("event_id", event.EventID),
		slog.Int("total_sent", successCount),
		slog.Int("total_failed", failureCount),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)

	return nil
}

// prepareNotificationContent creates the push title, body, and data payload
func (h *PushHandler) prepareNotificationContent(event *service.StreakEvent) (title, body string, data map[string]string) {
	switch event.Kind {
	case service.StreakEventMilestone:
		title = "Milestone reached!"
		body = fmt.Sprintf("You have stayed on track for %d days. Keep going!", event.StreakDays)
	case service.StreakEventReset:
		title = "A fresh start"
		if event.StreakDays > 0 {
			body = fmt.Sprintf("Your %d day streak has ended. Day one starts now.", event.StreakDays)
		} else {
			body = "Your streak was reset. Day one starts now."
		}
	default:
		title = "Streak update"
		body = "Your streak status has changed."
	}

	data = map[string]string{
		"event_id":    event.EventID,
		"kind":        event.Kind,
		"user_id":     event.UserID,
		"streak_days": fmt.Sprintf("%d", event.StreakDays),
	}

	return title, body, data
}

// cleanupInvalidTokens removes devices whose FCM tokens are no longer valid
func (h *PushHandler) cleanupInvalidTokens(ctx context.Context, invalidTokens []string, deviceMap map[string]*entity.UserDevice) {
	for _, token := range invalidTokens {
		if device, ok := deviceMap[token]; ok {
			if err := h.deviceRepo.DeleteDevice(ctx, device.ID); err != nil {
				h.logger.Warn("[Worker] Failed to delete invalid device",
					slog.String("device_id", device.ID.String()),
					slog.Any("error", err),
				)
			}
		}
	}
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The expected audience is the URL of this push endpoint.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
