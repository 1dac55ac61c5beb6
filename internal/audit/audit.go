// Package audit attaches a structured-log subscriber to the application
// event bus. It is the only consumer of session and preference events today;
// an external telemetry sink could subscribe the same way without touching
// the publishers.
package audit

import (
	"context"
	"log/slog"

	"github.com/psalmos/web/internal/pubsub"
)

var topics = []string{
	pubsub.TopicSessionSignedIn,
	pubsub.TopicSessionSignedOut,
	pubsub.TopicProfileUpdated,
	pubsub.TopicPreferencesSaved,
}

// Register subscribes the audit logger to every application topic.
func Register(ctx context.Context, sub pubsub.Subscriber) error {
	for _, topic := range topics {
		if err := sub.Subscribe(ctx, topic, logEvent); err != nil {
			return err
		}
	}
	return nil
}

func logEvent(ctx context.Context, msg pubsub.Message) error {
	attrs := []any{"topic", msg.Topic, "user_id", msg.UserID}
	for k, v := range msg.Metadata {
		attrs = append(attrs, k, v)
	}
	slog.InfoContext(ctx, "audit event", attrs...)
	return nil
}
