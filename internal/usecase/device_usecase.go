package usecase

import (
	"context"

	"petwelfare/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string
	DeviceID string
	Platform string
}

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a new device or refreshes the token of a known one
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*entity.UserDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device
	UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error

	// GetUserDevices retrieves all active devices for a user
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateDevice deactivates a device (soft delete)
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}

// NotificationDispatchUsecase delivers queued notification events to devices.
type NotificationDispatchUsecase interface {
	// Dispatch sends event to every active device of its users.
	// Errors wrapping ErrDispatchRetryable should be retried by the caller.
	Dispatch(ctx context.Context, event *DispatchEvent) (*DispatchResult, error)
}

// DispatchEvent is the worker-side view of a notification event.
type DispatchEvent struct {
	EventID string
	Kind    entity.NotificationKind
	UserIDs []string
	Title   string
	Body    string
	Data    map[string]string
}

// DispatchResult summarises one dispatch.
type DispatchResult struct {
	Devices       int
	Sent          int
	Failed        int
	InvalidTokens int
}

// ErrDispatchRetryable marks dispatch failures that a later redelivery may fix.
var ErrDispatchRetryable = errors.New("notification dispatch should be retried")
