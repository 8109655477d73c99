package impl

import (
	"context"
	"log/slog"
	"slices"

	deliverycontext "petwelfare/internal/delivery/context"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/domain/repository"
	"petwelfare/internal/domain/service"
	"petwelfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500
)

type notificationService struct {
	logger          *slog.Logger
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
}

// NewNotificationService creates the worker-side dispatcher of notification events.
func NewNotificationService(
	logger *slog.Logger,
	deviceRepo repository.DeviceRepository,
	notificationSvc service.NotificationService,
) usecase.NotificationDispatchUsecase {
	return &notificationService{
		logger:          logger,
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
	}
}

// Dispatch sends event to every active device of its users in Firebase sized batches.
func (s *notificationService) Dispatch(ctx context.Context, event *usecase.DispatchEvent) (*usecase.DispatchResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	userIDs := make([]uuid.UUID, 0, len(event.UserIDs))
	for _, raw := range event.UserIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			logger.Warn("Skipping malformed user id", slog.String("event_id", event.EventID), slog.String("user_id", raw))

			continue
		}
		userIDs = append(userIDs, id)
	}

	result := &usecase.DispatchResult{}
	if len(userIDs) == 0 {
		return result, nil
	}

	tokens, err := s.deviceRepo.FindActiveTokensByUsers(ctx, userIDs)
	if err != nil {
		return nil, errors.Wrap(usecase.ErrDispatchRetryable, domainerrors.FromRepository(err, nil, "find device tokens").Error())
	}

	result.Devices = len(tokens)
	if len(tokens) == 0 {
		logger.Debug("No active devices for event", slog.String("event_id", event.EventID))

		return result, nil
	}

	data := make(map[string]string, len(event.Data)+2)
	for k, v := range event.Data {
		data[k] = v
	}
	data["event_id"] = event.EventID
	data["kind"] = string(event.Kind)
	msg := service.PushMessage{Title: event.Title, Body: event.Body, Data: data}

	var (
		invalidTokens []string
		failedBatches int
		batches       int
	)

	for batch := range slices.Chunk(tokens, firebaseBatchSize) {
		batches++

		report, err := s.notificationSvc.SendToTokens(ctx, batch, msg)
		if err != nil {
			// keep going, later batches may still succeed
			logger.Error("Failed to send notification batch",
				slog.String("event_id", event.EventID),
				slog.Int("batch_size", len(batch)),
				errAttr(err),
			)
			result.Failed += len(batch)
			failedBatches++

			continue
		}

		result.Sent += report.Sent
		result.Failed += report.Failed
		invalidTokens = append(invalidTokens, report.InvalidTokens...)
	}

	if len(invalidTokens) > 0 {
		result.InvalidTokens = len(invalidTokens)
		if err := s.deviceRepo.DeactivateByTokens(ctx, invalidTokens); err != nil {
			logger.Warn("Failed to deactivate invalid device tokens", slog.Int("count", len(invalidTokens)), errAttr(err))
		}
	}

	if failedBatches == batches {
		return result, errors.Wrap(usecase.ErrDispatchRetryable, "every notification batch failed")
	}

	return result, nil
}
