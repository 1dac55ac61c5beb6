package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/psalmos/web/internal/auth"
	"github.com/psalmos/web/internal/domain"
	"github.com/psalmos/web/internal/pubsub"
)

// fakeUsers is an in-memory UserRepository.
type fakeUsers struct {
	signInErr error
	user      *domain.User
}

func (f *fakeUsers) SignUp(_ context.Context, user *domain.User, _ string) (string, error) {
	id := surrealmodels.NewRecordID("user", "fake")
	user.ID = &id
	return "signup-token", nil
}

func (f *fakeUsers) SignIn(_ context.Context, email, _ string) (string, error) {
	if f.signInErr != nil {
		return "", f.signInErr
	}
	return "signin-token", nil
}

func (f *fakeUsers) Authenticate(_ context.Context, token string) (*domain.User, error) {
	if f.user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	return f.user, nil
}

func (f *fakeUsers) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	if f.user != nil {
		return f.user, nil
	}
	return &domain.User{Email: email}, nil
}

func (f *fakeUsers) UpdateProfile(_ context.Context, id *surrealmodels.RecordID, update domain.ProfileUpdate) (*domain.User, error) {
	updated := &domain.User{ID: id, Email: "ada@example.com"}
	updated.DisplayName = update.DisplayName
	updated.AvatarURL = update.AvatarURL
	return updated, nil
}

// capturingPublisher collects bus messages.
type capturingPublisher struct {
	messages []pubsub.Message
}

func (p *capturingPublisher) Publish(_ context.Context, msg pubsub.Message) error {
	p.messages = append(p.messages, msg)
	return nil
}

func (p *capturingPublisher) Close() error { return nil }

func TestProviderEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("login notifies subscribers", func(t *testing.T) {
		provider := auth.NewProvider(&fakeUsers{})

		var events []auth.Event
		unsubscribe := provider.Subscribe(func(e auth.Event) { events = append(events, e) })
		defer unsubscribe()

		token, err := provider.Login(ctx, "ada@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "signin-token", token)

		require.Len(t, events, 1)
		assert.Equal(t, auth.EventSignedIn, events[0].Type)
		assert.Equal(t, "ada@example.com", events[0].User.Email)
	})

	t.Run("failed login emits nothing", func(t *testing.T) {
		provider := auth.NewProvider(&fakeUsers{signInErr: domain.ErrInvalidCredentials})

		var events []auth.Event
		defer provider.Subscribe(func(e auth.Event) { events = append(events, e) })()

		_, err := provider.Login(ctx, "ada@example.com", "wrong")
		require.Error(t, err)
		assert.Empty(t, events)
	})

	t.Run("register emits a signed-in event", func(t *testing.T) {
		provider := auth.NewProvider(&fakeUsers{})

		var events []auth.Event
		defer provider.Subscribe(func(e auth.Event) { events = append(events, e) })()

		token, err := provider.Register(ctx, "new@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "signup-token", token)

		require.Len(t, events, 1)
		assert.Equal(t, auth.EventSignedIn, events[0].Type)
		assert.Equal(t, "new@example.com", events[0].User.Email)
	})

	t.Run("logout emits a signed-out event", func(t *testing.T) {
		provider := auth.NewProvider(&fakeUsers{})

		var events []auth.Event
		defer provider.Subscribe(func(e auth.Event) { events = append(events, e) })()

		provider.Logout(ctx, &domain.User{Email: "ada@example.com"})

		require.Len(t, events, 1)
		assert.Equal(t, auth.EventSignedOut, events[0].Type)
	})

	t.Run("profile update emits the refreshed user", func(t *testing.T) {
		provider := auth.NewProvider(&fakeUsers{})

		var events []auth.Event
		defer provider.Subscribe(func(e auth.Event) { events = append(events, e) })()

		name := "Ada Lovelace"
		id := surrealmodels.NewRecordID("user", "ada")
		user := &domain.User{ID: &id, Email: "ada@example.com"}

		updated, err := provider.UpdateProfile(ctx, user, domain.ProfileUpdate{DisplayName: &name})
		require.NoError(t, err)
		require.NotNil(t, updated.DisplayName)
		assert.Equal(t, "Ada Lovelace", *updated.DisplayName)

		require.Len(t, events, 1)
		assert.Equal(t, auth.EventProfileUpdated, events[0].Type)
		assert.Equal(t, "Ada Lovelace", *events[0].User.DisplayName)
	})
}

func TestProviderUnsubscribe(t *testing.T) {
	ctx := context.Background()
	provider := auth.NewProvider(&fakeUsers{})

	var events []auth.Event
	unsubscribe := provider.Subscribe(func(e auth.Event) { events = append(events, e) })

	provider.Logout(ctx, &domain.User{Email: "ada@example.com"})
	require.Len(t, events, 1)

	unsubscribe()
	provider.Logout(ctx, &domain.User{Email: "ada@example.com"})
	assert.Len(t, events, 1, "no events after unsubscribing")

	// A second unsubscribe is harmless.
	unsubscribe()
}

func TestPublishSessionEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("session changes reach the bus with the matching topic", func(t *testing.T) {
		provider := auth.NewProvider(&fakeUsers{})
		publisher := &capturingPublisher{}
		detach := auth.PublishSessionEvents(provider, publisher)
		defer detach()

		_, err := provider.Login(ctx, "ada@example.com", "password123")
		require.NoError(t, err)

		id := surrealmodels.NewRecordID("user", "ada")
		user := &domain.User{ID: &id, Email: "ada@example.com"}
		name := "Ada Lovelace"
		_, err = provider.UpdateProfile(ctx, user, domain.ProfileUpdate{DisplayName: &name})
		require.NoError(t, err)

		provider.Logout(ctx, user)

		require.Len(t, publisher.messages, 3)
		assert.Equal(t, pubsub.TopicSessionSignedIn, publisher.messages[0].Topic)
		assert.Equal(t, "ada@example.com", publisher.messages[0].Metadata["email"])
		assert.Equal(t, pubsub.TopicProfileUpdated, publisher.messages[1].Topic)
		assert.Equal(t, id.String(), publisher.messages[1].UserID)
		assert.Equal(t, pubsub.TopicSessionSignedOut, publisher.messages[2].Topic)
	})

	t.Run("detaching stops publication", func(t *testing.T) {
		provider := auth.NewProvider(&fakeUsers{})
		publisher := &capturingPublisher{}
		detach := auth.PublishSessionEvents(provider, publisher)

		provider.Logout(ctx, &domain.User{Email: "ada@example.com"})
		require.Len(t, publisher.messages, 1)

		detach()
		provider.Logout(ctx, &domain.User{Email: "ada@example.com"})
		assert.Len(t, publisher.messages, 1, "no messages after detaching")
	})
}
