// Package notification sends push notifications to registered devices.
package notification

import (
	"context"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"

	"petwelfare/config"
	deliverycontext "petwelfare/internal/delivery/context"
	"petwelfare/internal/domain/service"
)

// MaxBatchSize is the FCM multicast token limit.
const MaxBatchSize = 500

const androidChannelID = "petwelfare_default"

type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicastSender
	logger *slog.Logger
}

// Params holds dependencies for the notification service
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New returns the Firebase sender when credentials are configured and a
// logging sender otherwise, so local workers run without a Firebase project.
func New(params Params) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Warn("Firebase not configured, push notifications will only be logged")

		return &logOnlyService{logger: params.Logger}, nil
	}

	return NewFirebaseService(params.Ctx, cfg, params.Logger)
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.NotificationService, error) {
	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client, logger: logger}, nil
}

// SendToTokens sends one FCM multicast of at most MaxBatchSize tokens.
func (s *firebaseService) SendToTokens(ctx context.Context, tokens []string, msg service.PushMessage) (*service.PushReport, error) {
	if len(tokens) == 0 {
		return &service.PushReport{}, nil
	}
	if len(tokens) > MaxBatchSize {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), MaxBatchSize)
	}

	response, err := s.client.SendEachForMulticast(ctx, toMulticast(tokens, msg))
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	report := &service.PushReport{
		Sent:          response.SuccessCount,
		Failed:        response.FailureCount,
		InvalidTokens: make([]string, 0),
	}
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			report.InvalidTokens = append(report.InvalidTokens, tokens[idx])
		}
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("FCM multicast sent",
		slog.Int("success", report.Sent),
		slog.Int("failure", report.Failed),
		slog.Int("invalid", len(report.InvalidTokens)),
	)

	return report, nil
}

// toMulticast builds the FCM payload. Android gets the default channel so
// notifications show while the app is backgrounded.
func toMulticast(tokens []string, msg service.PushMessage) *messaging.MulticastMessage {
	return &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: &messaging.Notification{Title: msg.Title, Body: msg.Body},
		Data:         msg.Data,
		Android: &messaging.AndroidConfig{
			Priority:     "high",
			Notification: &messaging.AndroidNotification{ChannelID: androidChannelID},
		},
	}
}

// logOnlyService reports every token as delivered.
type logOnlyService struct {
	logger *slog.Logger
}

func (s *logOnlyService) SendToTokens(ctx context.Context, tokens []string, msg service.PushMessage) (*service.PushReport, error) {
	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("[Push] notification",
		slog.Int("tokens", len(tokens)),
		slog.String("title", msg.Title),
		slog.String("body", msg.Body),
		slog.Any("data", msg.Data),
	)

	return &service.PushReport{Sent: len(tokens)}, nil
}
