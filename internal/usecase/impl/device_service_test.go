package impl

import (
	"context"
	"testing"

	"regain/internal/domain/entity"
	domainerrors "regain/internal/domain/errors"
	"regain/internal/domain/repository"
	mockRepo "regain/internal/mocks/repository"
	"regain/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	svc := NewDeviceService(DeviceServiceParams{
		DeviceRepo: deviceRepo,
		Logger:     newDiscardLogger(),
	})

	return deviceServiceFixtures{
		service:    svc,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_CreatesNewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	info := &usecase.DeviceInfo{
		FCMToken: "fcm-token",
		DeviceID: "device-abc",
		Platform: "ios",
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{}, nil)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.MatchedBy(func(device *entity.UserDevice) bool {
			return device.UserID == userID &&
				device.DeviceID == info.DeviceID &&
				device.FCMToken == info.FCMToken &&
				device.IsActive
		})).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, info)

	require.NoError(t, err)
	assert.Equal(t, info.DeviceID, device.DeviceID)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_UpdatesExistingToken(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	existingID := uuid.New()
	info := &usecase.DeviceInfo{
		FCMToken: "new-fcm-token",
		DeviceID: "device-abc",
		Platform: "android",
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{
			{ID: existingID, UserID: userID, DeviceID: "device-abc", FCMToken: "old-fcm-token"},
		}, nil)

	fx.deviceRepo.EXPECT().
		UpdateFCMToken(ctx, existingID, "new-fcm-token").
		Return(nil)

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, existingID).
		Return(&entity.UserDevice{ID: existingID, UserID: userID, DeviceID: "device-abc", FCMToken: "new-fcm-token"}, nil)

	device, err := fx.service.RegisterDevice(ctx, userID, info)

	require.NoError(t, err)
	assert.Equal(t, existingID, device.ID)
	assert.Equal(t, "new-fcm-token", device.FCMToken)
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.UserDevice{{ID: uuid.New(), UserID: userID}}

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return(expected, nil)

	devices, err := fx.service.GetUserDevices(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, devices)
}

func TestDeviceService_DeactivateDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)

	fx.deviceRepo.EXPECT().
		DeleteDevice(ctx, deviceID).
		Return(nil)

	err := fx.service.DeactivateDevice(ctx, userID, deviceID)

	require.NoError(t, err)
}

func TestDeviceService_DeactivateDevice_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(nil, repository.ErrDeviceNotFound)

	err := fx.service.DeactivateDevice(ctx, uuid.New(), deviceID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestDeviceService_DeactivateDevice_ForbiddenForOtherUser(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

	err := fx.service.DeactivateDevice(ctx, uuid.New(), deviceID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
