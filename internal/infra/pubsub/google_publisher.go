package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"

	deliverycontext "petwelfare/internal/delivery/context"
	"petwelfare/internal/domain/service"
)

// maxRecipientsPerMessage keeps broadcast events (e.g. a new pet listed for
// every adopter) well below the Pub/Sub message size limit.
const maxRecipientsPerMessage = 1000

type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher fails fast when the topic does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)
	// Notifications are user facing, favour latency over batching.
	publisher.PublishSettings.DelayThreshold = 20 * time.Millisecond
	publisher.PublishSettings.CountThreshold = 50

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishNotificationEvent publishes the event, split by recipients when needed,
// and waits for every server ID.
func (p *googlePubSubPublisher) PublishNotificationEvent(ctx context.Context, event *service.NotificationEvent) error {
	parts := splitRecipients(event, maxRecipientsPerMessage)

	results := make([]*pubsub.PublishResult, 0, len(parts))
	for _, part := range parts {
		data, err := json.Marshal(part)
		if err != nil {
			return errors.WithStack(err)
		}
		results = append(results, p.publisher.Publish(ctx, &pubsub.Message{
			Data:       data,
			Attributes: eventAttributes(part),
		}))
	}

	for i, result := range results {
		if _, err := result.Get(ctx); err != nil {
			return errors.Wrapf(err, "publish %s", parts[i].EventID)
		}
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Info("[GooglePubSub] Event published",
		slog.String("event_id", event.EventID),
		slog.String("kind", string(event.Kind)),
		slog.Int("recipient_count", len(event.UserIDs)),
		slog.Int("messages", len(parts)),
	)

	return nil
}

func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}

// splitRecipients copies event once per chunk of at most limit user IDs. Parts
// get "<event id>#<n>" IDs so the worker logs can be correlated.
func splitRecipients(event *service.NotificationEvent, limit int) []*service.NotificationEvent {
	if len(event.UserIDs) <= limit {
		return []*service.NotificationEvent{event}
	}

	parts := make([]*service.NotificationEvent, 0, (len(event.UserIDs)+limit-1)/limit)
	for start := 0; start < len(event.UserIDs); start += limit {
		part := *event
		part.UserIDs = event.UserIDs[start:min(start+limit, len(event.UserIDs))]
		part.EventID = fmt.Sprintf("%s#%d", event.EventID, len(parts)+1)
		parts = append(parts, &part)
	}

	return parts
}
