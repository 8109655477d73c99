package impl

import (
	"context"
	"log/slog"

	deliverycontext "petwelfare/internal/delivery/context"
	"petwelfare/internal/domain/entity"
	"petwelfare/internal/domain/service"

	"github.com/google/uuid"
)

// notifier publishes push notification events after a state change has been committed.
// Publishing is best effort: failures are logged and never undo the change.
type notifier struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func newNotifier(publisher service.EventPublisher, logger *slog.Logger) notifier {
	return notifier{publisher: publisher, logger: logger}
}

func (n notifier) notify(ctx context.Context, kind entity.NotificationKind, userIDs []uuid.UUID, title, body string, data map[string]string) {
	if n.publisher == nil || len(userIDs) == 0 {
		return
	}

	ids := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		ids = append(ids, id.String())
	}

	event := &service.NotificationEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventID:   uuid.NewString(),
		Kind:      kind,
		UserIDs:   ids,
		Title:     title,
		Body:      body,
		Data:      data,
	}

	if err := n.publisher.PublishNotificationEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, n.logger).Warn("Failed to publish notification event",
			slog.String("kind", string(kind)),
			slog.String("event_id", event.EventID),
			errAttr(err),
		)
	}
}
