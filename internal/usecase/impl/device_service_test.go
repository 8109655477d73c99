package impl

import (
	"context"
	"testing"
	"time"

	"petwelfare/internal/domain/entity"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/domain/repository"
	mockRepo "petwelfare/internal/mocks/repository"
	"petwelfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestDeviceService(t *testing.T) (*deviceService, *mockRepo.MockDeviceRepository) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewDeviceService(deviceRepo, newDiscardLogger()).(*deviceService)
	svc.now = func() time.Time { return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) }

	return svc, deviceRepo
}

func TestDeviceService_RegisterDevice(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("new install is created active", func(t *testing.T) {
		svc, deviceRepo := newTestDeviceService(t)
		deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"tok-1"}).Return(nil)
		deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(nil, nil)
		deviceRepo.EXPECT().CreateDevice(ctx, mock.MatchedBy(func(d *entity.UserDevice) bool {
			return d.UserID == userID && d.FCMToken == "tok-1" && d.Platform == entity.PlatformAndroid && d.IsActive
		})).Return(nil)

		device, err := svc.RegisterDevice(ctx, userID, &usecase.DeviceInfo{FCMToken: " tok-1 ", DeviceID: "pixel-7", Platform: "Android"})
		require.NoError(t, err)
		assert.Equal(t, "pixel-7", device.DeviceID)
		assert.Equal(t, svc.now(), device.CreatedAt)
	})

	t.Run("known install gets its token refreshed", func(t *testing.T) {
		svc, deviceRepo := newTestDeviceService(t)
		existing := &entity.UserDevice{ID: uuid.New(), UserID: userID, DeviceID: "iphone-15", FCMToken: "old"}
		refreshed := &entity.UserDevice{ID: existing.ID, UserID: userID, DeviceID: "iphone-15", FCMToken: "new", IsActive: true}

		deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"new"}).Return(nil)
		deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: userID, DeviceID: "ipad"},
			existing,
		}, nil)
		deviceRepo.EXPECT().UpdateFCMToken(ctx, existing.ID, "new").Return(nil)
		deviceRepo.EXPECT().FindDeviceByID(ctx, existing.ID).Return(refreshed, nil)

		device, err := svc.RegisterDevice(ctx, userID, &usecase.DeviceInfo{FCMToken: "new", DeviceID: "iphone-15", Platform: "ios"})
		require.NoError(t, err)
		assert.Same(t, refreshed, device)
	})

	tests := []struct {
		name    string
		info    usecase.DeviceInfo
		wantErr error
	}{
		{name: "unknown platform", info: usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "symbian"}, wantErr: domainerrors.ErrValidationFailed},
		{name: "blank token", info: usecase.DeviceInfo{FCMToken: "  ", DeviceID: "d", Platform: "web"}, wantErr: domainerrors.ErrValidationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestDeviceService(t)

			_, err := svc.RegisterDevice(ctx, userID, &tt.info)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("repository failure surfaces as database error", func(t *testing.T) {
		svc, deviceRepo := newTestDeviceService(t)
		deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"t"}).Return(nil)
		deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(nil, errors.New("connection refused"))

		_, err := svc.RegisterDevice(ctx, userID, &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "ios"})
		require.Error(t, err)
		assert.True(t, domainerrors.IsAppError(err))
	})
}

func TestDeviceService_OwnershipChecks(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	deviceID := uuid.New()
	owned := &entity.UserDevice{ID: deviceID, UserID: owner}

	tests := []struct {
		name    string
		caller  uuid.UUID
		found   *entity.UserDevice
		findErr error
		wantErr error
	}{
		{name: "owner", caller: owner, found: owned},
		{name: "someone else", caller: uuid.New(), found: owned, wantErr: domainerrors.ErrDeviceNotFound},
		{name: "missing", caller: owner, findErr: repository.ErrNotFound, wantErr: domainerrors.ErrDeviceNotFound},
	}

	for _, tt := range tests {
		t.Run("update token/"+tt.name, func(t *testing.T) {
			svc, deviceRepo := newTestDeviceService(t)
			deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(tt.found, tt.findErr)
			if tt.wantErr == nil {
				deviceRepo.EXPECT().UpdateFCMToken(ctx, deviceID, "rotated").Return(nil)
			}

			err := svc.UpdateFCMToken(ctx, tt.caller, deviceID, "rotated ")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
		})

		t.Run("deactivate/"+tt.name, func(t *testing.T) {
			svc, deviceRepo := newTestDeviceService(t)
			deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(tt.found, tt.findErr)
			if tt.wantErr == nil {
				deviceRepo.EXPECT().DeleteDevice(ctx, deviceID).Return(nil)
			}

			err := svc.DeactivateDevice(ctx, tt.caller, deviceID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, deviceRepo := newTestDeviceService(t)

	active := []*entity.UserDevice{{ID: uuid.New(), UserID: userID, IsActive: true}}
	deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(active, nil)

	devices, err := svc.GetUserDevices(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, active, devices)
}
