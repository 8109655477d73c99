package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "petwelfare/internal/delivery/context"
	"petwelfare/internal/domain/entity"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/domain/repository"
	"petwelfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
	now        func() time.Time
}

// NewDeviceService creates the device registry used for push notifications.
func NewDeviceService(deviceRepo repository.DeviceRepository, logger *slog.Logger) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// RegisterDevice upserts by the app's install ID. A token is only ever live on
// one device, so a phone that changes hands stops receiving the previous
// owner's adoption and order updates.
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, info *usecase.DeviceInfo) (*entity.UserDevice, error) {
	platform, err := normalizePlatform(info.Platform)
	if err != nil {
		return nil, err
	}
	token := strings.TrimSpace(info.FCMToken)
	if token == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("fcmToken is required")
	}

	if err := s.deviceRepo.DeactivateByTokens(ctx, []string{token}); err != nil {
		return nil, domainerrors.FromRepository(err, nil, "release fcm token")
	}

	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.FromRepository(err, nil, "find devices by user")
	}

	for _, device := range devices {
		if device.DeviceID != info.DeviceID {
			continue
		}
		if err := s.deviceRepo.UpdateFCMToken(ctx, device.ID, token); err != nil {
			return nil, domainerrors.FromRepository(err, domainerrors.ErrDeviceNotFound, "update fcm token")
		}

		refreshed, err := s.deviceRepo.FindDeviceByID(ctx, device.ID)
		if err != nil {
			return nil, domainerrors.FromRepository(err, domainerrors.ErrDeviceNotFound, "find device by id")
		}

		return refreshed, nil
	}

	now := s.now()
	device := &entity.UserDevice{
		ID:        uuid.New(),
		UserID:    userID,
		FCMToken:  token,
		DeviceID:  info.DeviceID,
		Platform:  platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, domainerrors.FromRepository(err, nil, "create device")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Device registered",
		slog.String("device_id", device.ID.String()),
		slog.String("platform", platform),
	)

	return device, nil
}

func (s *deviceService) UpdateFCMToken(ctx context.Context, userID, deviceID uuid.UUID, fcmToken string) error {
	if _, err := s.ownedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateFCMToken(ctx, deviceID, strings.TrimSpace(fcmToken)); err != nil {
		return domainerrors.FromRepository(err, domainerrors.ErrDeviceNotFound, "update fcm token")
	}

	return nil
}

func (s *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.FromRepository(err, nil, "find active devices by user")
	}

	return devices, nil
}

// DeactivateDevice is called on logout from a device.
func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if _, err := s.ownedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return domainerrors.FromRepository(err, domainerrors.ErrDeviceNotFound, "delete device")
	}

	return nil
}

// ownedDevice hides other users' devices behind ErrDeviceNotFound.
func (s *deviceService) ownedDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.UserDevice, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.FromRepository(err, domainerrors.ErrDeviceNotFound, "find device by id"), "failed to load device")
	}
	if device.UserID != userID {
		return nil, domainerrors.ErrDeviceNotFound
	}

	return device, nil
}

func normalizePlatform(platform string) (string, error) {
	switch p := strings.ToLower(strings.TrimSpace(platform)); p {
	case entity.PlatformIOS, entity.PlatformAndroid, entity.PlatformWeb:
		return p, nil
	default:
		return "", domainerrors.ErrValidationFailed.WithDetails("platform must be ios, android or web")
	}
}
