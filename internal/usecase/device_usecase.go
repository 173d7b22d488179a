package usecase

import (
	"context"

	"regain/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo is the payload a client sends when registering for pushes.
type DeviceInfo struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required"`
	Platform string `json:"platform" validate:"required"`
}

// DeviceUsecase manages a user's push notification devices.
type DeviceUsecase interface {
	// RegisterDevice registers a device, or refreshes the FCM token when the
	// device is already known.
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*entity.UserDevice, error)

	// GetUserDevices lists the caller's registered devices.
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateDevice removes a device so it stops receiving pushes.
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
