package service

import "context"

// PushMessage is what a device shows plus the data the app uses to deep-link.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushReport is the outcome of one provider batch.
// InvalidTokens lists tokens the provider rejected as unregistered or malformed.
type PushReport struct {
	Sent          int
	Failed        int
	InvalidTokens []string
}

// NotificationService delivers push messages to registered device tokens.
type NotificationService interface {
	// SendToTokens delivers msg to one provider batch. Callers split larger token sets.
	SendToTokens(ctx context.Context, tokens []string, msg PushMessage) (*PushReport, error)
}
