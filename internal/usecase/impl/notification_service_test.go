package impl

import (
	"context"
	"fmt"
	"testing"

	"petwelfare/internal/domain/entity"
	"petwelfare/internal/domain/service"
	mockRepo "petwelfare/internal/mocks/repository"
	mockSvc "petwelfare/internal/mocks/service"
	"petwelfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (
	usecase.NotificationDispatchUsecase,
	*mockRepo.MockDeviceRepository,
	*mockSvc.MockNotificationService,
) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)

	return NewNotificationService(newDiscardLogger(), deviceRepo, notificationSvc), deviceRepo, notificationSvc
}

func newDispatchEvent(userIDs ...uuid.UUID) *usecase.DispatchEvent {
	ids := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		ids = append(ids, id.String())
	}

	return &usecase.DispatchEvent{
		EventID: "evt-1",
		Kind:    entity.NotificationOrderStatus,
		UserIDs: ids,
		Title:   "Order shipped",
		Body:    "ORD-20250310-0001 is on its way",
		Data:    map[string]string{"orderId": "o-1"},
	}
}

func TestNotificationService_Dispatch_Success(t *testing.T) {
	dispatcher, deviceRepo, notificationSvc := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	tokens := []string{"token-a", "token-b"}

	deviceRepo.EXPECT().FindActiveTokensByUsers(ctx, []uuid.UUID{userID}).Return(tokens, nil)
	notificationSvc.EXPECT().
		SendToTokens(ctx, tokens, mock.MatchedBy(func(msg service.PushMessage) bool {
			return msg.Title == "Order shipped" &&
				msg.Body == "ORD-20250310-0001 is on its way" &&
				msg.Data["orderId"] == "o-1" &&
				msg.Data["event_id"] == "evt-1" &&
				msg.Data["kind"] == string(entity.NotificationOrderStatus)
		})).
		Return(&service.PushReport{Sent: 2}, nil)

	result, err := dispatcher.Dispatch(ctx, newDispatchEvent(userID))
	require.NoError(t, err)
	assert.Equal(t, &usecase.DispatchResult{Devices: 2, Sent: 2}, result)
}

func TestNotificationService_Dispatch_NoDevices(t *testing.T) {
	dispatcher, deviceRepo, _ := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().FindActiveTokensByUsers(ctx, []uuid.UUID{userID}).Return(nil, nil)

	result, err := dispatcher.Dispatch(ctx, newDispatchEvent(userID))
	require.NoError(t, err)
	assert.Zero(t, result.Devices)
}

func TestNotificationService_Dispatch_SkipsMalformedUserIDs(t *testing.T) {
	dispatcher, _, _ := createTestNotificationService(t)

	event := newDispatchEvent()
	event.UserIDs = []string{"not-a-uuid"}

	result, err := dispatcher.Dispatch(context.Background(), event)
	require.NoError(t, err)
	assert.Zero(t, result.Devices)
}

func TestNotificationService_Dispatch_InvalidTokensDeactivated(t *testing.T) {
	dispatcher, deviceRepo, notificationSvc := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	tokens := []string{"good", "stale"}

	deviceRepo.EXPECT().FindActiveTokensByUsers(ctx, []uuid.UUID{userID}).Return(tokens, nil)
	notificationSvc.EXPECT().
		SendToTokens(ctx, tokens, mock.Anything).
		Return(&service.PushReport{Sent: 1, Failed: 1, InvalidTokens: []string{"stale"}}, nil)
	deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"stale"}).Return(nil)

	result, err := dispatcher.Dispatch(ctx, newDispatchEvent(userID))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.InvalidTokens)
}

func TestNotificationService_Dispatch_Batches(t *testing.T) {
	dispatcher, deviceRepo, notificationSvc := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	tokens := make([]string, firebaseBatchSize+20)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("token-%d", i)
	}

	deviceRepo.EXPECT().FindActiveTokensByUsers(ctx, []uuid.UUID{userID}).Return(tokens, nil)
	notificationSvc.EXPECT().
		SendToTokens(ctx, tokens[:firebaseBatchSize], mock.Anything).
		Return(nil, errors.New("firebase unavailable")).Once()
	notificationSvc.EXPECT().
		SendToTokens(ctx, tokens[firebaseBatchSize:], mock.Anything).
		Return(&service.PushReport{Sent: 20}, nil).Once()

	result, err := dispatcher.Dispatch(ctx, newDispatchEvent(userID))
	require.NoError(t, err, "a partial failure is not retried")
	assert.Equal(t, 20, result.Sent)
	assert.Equal(t, firebaseBatchSize, result.Failed)
}

func TestNotificationService_Dispatch_Retryable(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("token lookup fails", func(t *testing.T) {
		dispatcher, deviceRepo, _ := createTestNotificationService(t)
		deviceRepo.EXPECT().FindActiveTokensByUsers(ctx, []uuid.UUID{userID}).Return(nil, errors.New("connection reset"))

		_, err := dispatcher.Dispatch(ctx, newDispatchEvent(userID))
		assert.ErrorIs(t, err, usecase.ErrDispatchRetryable)
	})

	t.Run("every batch fails", func(t *testing.T) {
		dispatcher, deviceRepo, notificationSvc := createTestNotificationService(t)
		deviceRepo.EXPECT().FindActiveTokensByUsers(ctx, []uuid.UUID{userID}).Return([]string{"t"}, nil)
		notificationSvc.EXPECT().
			SendToTokens(ctx, []string{"t"}, mock.Anything).
			Return(nil, errors.New("quota"))

		_, err := dispatcher.Dispatch(ctx, newDispatchEvent(userID))
		assert.ErrorIs(t, err, usecase.ErrDispatchRetryable)
	})
}
