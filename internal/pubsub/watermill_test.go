package pubsub_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psalmos/web/internal/pubsub"
)

func TestWatermillBridgeRoundtrip(t *testing.T) {
	bridge := pubsub.NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	received := make(chan pubsub.Message, 1)
	err := bridge.Subscribe(ctx, pubsub.TopicPreferencesSaved, func(_ context.Context, msg pubsub.Message) error {
		received <- msg
		return nil
	})
	require.NoError(t, err)

	sent := pubsub.Message{
		Topic:    pubsub.TopicPreferencesSaved,
		UserID:   "user:ada",
		Payload:  []byte(`{"category":"privacy"}`),
		Metadata: map[string]string{"category": "privacy"},
	}
	require.NoError(t, bridge.Publish(ctx, sent))

	select {
	case msg := <-received:
		assert.Equal(t, sent.Topic, msg.Topic)
		assert.Equal(t, sent.UserID, msg.UserID)
		assert.Equal(t, sent.Payload, msg.Payload)
		assert.Equal(t, "privacy", msg.Metadata["category"])
	case <-ctx.Done():
		t.Fatal("timed out waiting for the published message")
	}
}

func TestWatermillBridgeTopicIsolation(t *testing.T) {
	bridge := pubsub.NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	signedIn := make(chan pubsub.Message, 1)
	err := bridge.Subscribe(ctx, pubsub.TopicSessionSignedIn, func(_ context.Context, msg pubsub.Message) error {
		signedIn <- msg
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, bridge.Publish(ctx, pubsub.Message{Topic: pubsub.TopicSessionSignedOut}))
	require.NoError(t, bridge.Publish(ctx, pubsub.Message{Topic: pubsub.TopicSessionSignedIn, UserID: "user:ada"}))

	select {
	case msg := <-signedIn:
		assert.Equal(t, pubsub.TopicSessionSignedIn, msg.Topic)
		assert.Equal(t, "user:ada", msg.UserID)
	case <-ctx.Done():
		t.Fatal("timed out waiting for the signed-in message")
	}

	select {
	case msg := <-signedIn:
		t.Fatalf("received a message from the wrong topic: %q", msg.Topic)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestTopicsCatalog(t *testing.T) {
	topics := pubsub.Topics()
	require.NotEmpty(t, topics)

	names := make(map[string]bool, len(topics))
	for _, topic := range topics {
		assert.NotEmpty(t, topic.Name)
		assert.NotEmpty(t, topic.Description)
		names[topic.Name] = true
	}

	assert.True(t, names[pubsub.TopicSessionSignedIn])
	assert.True(t, names[pubsub.TopicSessionSignedOut])
	assert.True(t, names[pubsub.TopicProfileUpdated])
	assert.True(t, names[pubsub.TopicPreferencesSaved])
}
