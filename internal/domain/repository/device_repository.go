package repository

import (
	"context"

	"regain/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrDeviceNotFound is returned when no device matches the given ID.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when a (user, device) pair is registered twice.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository persists push notification device registrations.
type DeviceRepository interface {
	// CreateDevice stores a new device registration.
	CreateDevice(ctx context.Context, device *entity.UserDevice) error

	// FindDeviceByID loads a device by primary key.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// FindDevicesByUser lists all of a user's devices, active or not.
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// FindActiveDevicesByUser lists the devices that should receive pushes.
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// UpdateFCMToken replaces the FCM token on an existing registration.
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error

	// DeleteDevice soft-deletes a device registration.
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
