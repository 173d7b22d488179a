package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "regain/internal/delivery/context"
	"regain/internal/domain/entity"
	domainerrors "regain/internal/domain/errors"
	"regain/internal/domain/repository"
	"regain/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for deviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterDevice registers a new device or refreshes the FCM token of an
// existing one. The client's device_id is the idempotency key.
func (srv *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	devices, err := srv.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	for _, device := range devices {
		if device.DeviceID == deviceInfo.DeviceID {
			if err := srv.deviceRepo.UpdateFCMToken(ctx, device.ID, deviceInfo.FCMToken); err != nil {
				return nil, errors.Wrap(err, "failed to update FCM token")
			}

			updatedDevice, err := srv.deviceRepo.FindDeviceByID(ctx, device.ID)
			if err != nil {
				return nil, errors.Wrap(err, "failed to find device by ID")
			}

			return updatedDevice, nil
		}
	}

	device := &entity.UserDevice{
		ID:        uuid.New(),
		UserID:    userID,
		FCMToken:  deviceInfo.FCMToken,
		DeviceID:  deviceInfo.DeviceID,
		Platform:  deviceInfo.Platform,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := srv.deviceRepo.CreateDevice(ctx, device); err != nil {
		srv.log(ctx).Error("Failed to create device", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create device")
	}

	return device, nil
}

// GetUserDevices retrieves all active devices for a user.
func (srv *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := srv.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	return devices, nil
}

// DeactivateDevice removes a device the user owns from push delivery.
func (srv *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	device, err := srv.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound.WrapMessage("device not found")
		}

		return errors.Wrap(err, "failed to find device by ID")
	}

	if device.UserID != userID {
		return domainerrors.ErrForbidden.WrapMessage("device belongs to another user")
	}

	if err := srv.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}
